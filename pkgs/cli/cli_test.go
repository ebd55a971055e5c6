package cli

import (
	"strings"
	"testing"

	"github.com/keskad/chprintf/pkgs/app"
	"github.com/keskad/chprintf/pkgs/config"
	"github.com/stretchr/testify/assert"
)

func TestParseFormatArgs_SimpleArgs(t *testing.T) {
	format, values, err := parseFormatArgsFrom([]string{`cv%d=%d\n`, "1", "3"}, strings.NewReader(""))
	assert.Equal(t, nil, err, "unexpected error")
	assert.Equal(t, "cv%d=%d\n", format, "format mismatch")
	assert.Equal(t, []any{int64(1), int64(3)}, values, "values mismatch")
}

func TestParseFormatArgs_EmptyArgs(t *testing.T) {
	_, _, err := parseFormatArgsFrom([]string{}, strings.NewReader(""))
	assert.NotNil(t, err, "expected error for empty args")
}

func TestParseFormatArgs_Stdin(t *testing.T) {
	format, values, err := parseFormatArgsFrom([]string{"%s %d %d", "s:x", "-"}, strings.NewReader("12\n\n34\r\n"))
	assert.Equal(t, nil, err, "unexpected error")
	assert.Equal(t, "%s %d %d", format)
	assert.Equal(t, []any{"x", int64(12), int64(34)}, values, "expected stdin content in values")
}

func TestParseFormatArgs_OnlyStdinDash(t *testing.T) {
	_, _, err := parseFormatArgsFrom([]string{"-"}, strings.NewReader("1\n"))
	assert.NotNil(t, err, "expected error when format is missing")
}

func TestParseFormatArgs_InvalidTypedArg(t *testing.T) {
	_, _, err := parseFormatArgsFrom([]string{"%d", "i:x"}, strings.NewReader(""))
	assert.NotNil(t, err, "expected error for invalid typed argument")
}

func TestFileArgs_FlagsOverrideConfig(t *testing.T) {
	cfg, err := config.FromReader("fat:\n  image: sd.img\n  size: 32MiB\n")
	assert.Equal(t, nil, err)
	a := &app.PrintApp{Config: cfg}

	fa, err := fileArgs(a, func(name string) bool { return name == "path" }, "ignored.img", "LOG.TXT", "1GiB")
	assert.Equal(t, nil, err, "unexpected error")
	assert.Equal(t, "sd.img", fa.Image)
	assert.Equal(t, "LOG.TXT", fa.Path)
	assert.Equal(t, int64(32*1024*1024), fa.Size)
	assert.Equal(t, "CHPRINTF", fa.Label)
}

func TestFileArgs_InvalidSize(t *testing.T) {
	cfg, _ := config.FromReader("")
	a := &app.PrintApp{Config: cfg}
	_, err := fileArgs(a, func(name string) bool { return name == "size" }, "", "", "huge")
	assert.NotNil(t, err, "expected error for invalid size")
}

func TestNewRootCommand_Subcommands(t *testing.T) {
	root := NewRootCommand(&app.PrintApp{})
	for _, name := range []string{"print", "stream", "channel", "buffer", "file"} {
		cmd, _, err := root.Find([]string{name})
		assert.Equal(t, nil, err, "unexpected error for %s", name)
		assert.Equal(t, name, cmd.Name())
	}
}
