package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/keskad/chprintf/pkgs/syntax"
)

// parseFormatArgs splits the command line into the format string and typed
// arguments. A trailing "-" appends one argument per line read from stdin.
func parseFormatArgs(args []string) (string, []any, error) {
	return parseFormatArgsFrom(args, os.Stdin)
}

func parseFormatArgsFrom(args []string, stdin io.Reader) (string, []any, error) {
	var stdinArgs []string
	if len(args) >= 1 && args[len(args)-1] == "-" {
		// remove "-" from the arguments
		args = args[:len(args)-1]

		scanner := bufio.NewScanner(stdin)
		for scanner.Scan() {
			line := strings.TrimRight(scanner.Text(), "\r")
			if line == "" {
				continue
			}
			stdinArgs = append(stdinArgs, line)
		}
		if err := scanner.Err(); err != nil {
			return "", nil, fmt.Errorf("failed to read from stdin: %v", err)
		}
	}

	if len(args) == 0 {
		return "", nil, fmt.Errorf("no format argument provided")
	}

	values, err := syntax.ParseArgs(append(args[1:], stdinArgs...))
	if err != nil {
		return "", nil, err
	}
	return syntax.Unescape(args[0]), values, nil
}
