package format

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFmtFormat(t *testing.T) {
	tests := []struct {
		name     string
		format   string
		args     []any
		expected string
	}{
		{name: "literal", format: "hello world", expected: "hello world"},
		{name: "integer", format: "%d", args: []any{42}, expected: "42"},
		{name: "padding", format: "[%5s|%-3d]", args: []any{"ab", 7}, expected: "[   ab|7  ]"},
		{name: "hex", format: "0x%04X", args: []any{0xbeef}, expected: "0xBEEF"},
		{name: "float", format: "%.2f", args: []any{3.14159}, expected: "3.14"},
		{name: "percent", format: "100%%", expected: "100%"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			n, err := Fmt{}.Format(&buf, tt.format, tt.args)
			assert.Nil(t, err, "unexpected error")
			assert.Equal(t, tt.expected, buf.String())
			assert.Equal(t, len(tt.expected), n)
		})
	}
}

func TestFmtFormat_LenientKeepsMarkers(t *testing.T) {
	var buf bytes.Buffer
	_, err := Fmt{}.Format(&buf, "%d", []any{"x"})
	assert.Nil(t, err)
	assert.Equal(t, "%!d(string=x)", buf.String())
}

func TestFmtFormat_StrictRejectsConversionErrors(t *testing.T) {
	tests := []struct {
		name   string
		format string
		args   []any
	}{
		{name: "bad verb", format: "%d", args: []any{"x"}},
		{name: "missing operand", format: "%d %d", args: []any{1}},
		{name: "extra operand", format: "%d", args: []any{1, 2}},
		{name: "no verb", format: "100%"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			_, err := Fmt{Strict: true}.Format(&buf, tt.format, tt.args)
			assert.True(t, errors.Is(err, ErrConversion), "expected conversion error, got %v", err)
			assert.Equal(t, 0, buf.Len(), "nothing should reach the writer")
		})
	}
}

func TestFmtFormat_StrictPassesValidOutput(t *testing.T) {
	var buf bytes.Buffer
	n, err := Fmt{Strict: true}.Format(&buf, "%s=%d", []any{"cv1", 3})
	assert.Nil(t, err)
	assert.Equal(t, 5, n)
	assert.Equal(t, "cv1=3", buf.String())
}

func TestFmtFormat_StrictRejectsLiteralMarkers(t *testing.T) {
	for _, tt := range []struct {
		format string
		args   []any
	}{
		{"100%%!(x)", nil},
		{"%s", []any{"%!(x)"}},
	} {
		var buf bytes.Buffer
		_, err := Fmt{Strict: true}.Format(&buf, tt.format, tt.args)
		assert.True(t, errors.Is(err, ErrConversion), "format %q", tt.format)
		assert.Equal(t, 0, buf.Len())

		n, err := Fmt{}.Format(&buf, tt.format, tt.args)
		assert.Nil(t, err)
		assert.Equal(t, buf.Len(), n)
	}
}

func TestFmtFormat_PropagatesWriterError(t *testing.T) {
	failure := errors.New("sink gone")
	w := WriterFunc(func(p []byte) (int, error) { return 0, failure })

	_, err := Fmt{}.Format(w, "abc", nil)
	assert.True(t, errors.Is(err, failure))

	_, err = Fmt{Strict: true}.Format(w, "abc", nil)
	assert.True(t, errors.Is(err, failure))
}
