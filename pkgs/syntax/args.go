package syntax

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

var escapes = strings.NewReplacer(`\\`, `\`, `\n`, "\n", `\t`, "\t", `\r`, "\r", `\e`, "\x1b")

// Unescape turns the backslash sequences a shell leaves untouched (\n, \t,
// \r, \e and \\) into the characters they stand for.
func Unescape(s string) string {
	return escapes.Replace(s)
}

// ParseArgs converts command line words into typed values for the format
// engine. A word may carry a type prefix:
//
//	s:text  string        i:-12  int64     u:42  uint64
//	f:1.5   float64       b:yes  bool      c:A   rune
//
// Words without a prefix become int64, float64 or bool when they parse as
// such, and strings otherwise.
func ParseArgs(words []string) ([]any, error) {
	result := make([]any, 0, len(words))
	for _, word := range words {
		value, err := ParseArg(word)
		if err != nil {
			return nil, err
		}
		result = append(result, value)
	}
	return result, nil
}

func ParseArg(word string) (any, error) {
	if len(word) >= 2 && word[1] == ':' {
		raw := word[2:]
		switch word[0] {
		case 's':
			return Unescape(raw), nil
		case 'i':
			v, err := strconv.ParseInt(raw, 0, 64)
			if err != nil {
				return nil, fmt.Errorf("invalid integer argument: %s", raw)
			}
			return v, nil
		case 'u':
			v, err := strconv.ParseUint(raw, 0, 64)
			if err != nil {
				return nil, fmt.Errorf("invalid unsigned argument: %s", raw)
			}
			return v, nil
		case 'f':
			v, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				return nil, fmt.Errorf("invalid float argument: %s", raw)
			}
			return v, nil
		case 'b':
			v, err := parseBool(raw)
			if err != nil {
				return nil, fmt.Errorf("invalid bool argument: %s", raw)
			}
			return v, nil
		case 'c':
			r, size := utf8.DecodeRuneInString(raw)
			if r == utf8.RuneError || size != len(raw) {
				return nil, fmt.Errorf("invalid character argument: %s", raw)
			}
			return r, nil
		}
	}

	if v, err := strconv.ParseInt(word, 0, 64); err == nil {
		return v, nil
	}
	if strings.IndexFunc(word, unicode.IsDigit) != -1 {
		if v, err := strconv.ParseFloat(word, 64); err == nil {
			return v, nil
		}
	}
	if word == "true" || word == "false" {
		return word == "true", nil
	}
	return Unescape(word), nil
}

func parseBool(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "yes", "on":
		return true, nil
	case "no", "off":
		return false, nil
	}
	return strconv.ParseBool(s)
}
