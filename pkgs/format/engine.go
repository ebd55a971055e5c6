// Package format is the boundary to the formatting engine. The engine parses
// the format string, converts the arguments and pushes the produced text into
// an io.Writer supplied by the caller. It never knows what the writer is.
package format

import (
	"errors"
	"fmt"
	"io"
	"regexp"
)

// ErrConversion is reported by a strict engine when the format string and the
// arguments do not agree (bad verb, missing or extra operands).
var ErrConversion = errors.New("conversion error")

type Engine interface {
	// Format writes the text produced from format and args into w and
	// returns the number of bytes produced.
	Format(w io.Writer, format string, args []any) (int, error)
}

// Default is the engine used when no other one is configured.
var Default Engine = Fmt{}

// fmt reports conversion problems inline, e.g. "%!d(string=x)",
// "%!(EXTRA int=1)" or "%!(NOVERB)".
var conversionMarker = regexp.MustCompile(`%!(?:[A-Za-z]\(|\()`)

// Fmt is an Engine backed by the fmt package verbs.
//
// With Strict set, output carrying a conversion marker is rejected with
// ErrConversion before anything reaches the writer. Markers are recognised in
// the produced text, so a literal "%!(" is rejected too, whether it comes from
// an argument value or from the format itself as in "100%%!(x)".
type Fmt struct {
	Strict bool
}

func (e Fmt) Format(w io.Writer, format string, args []any) (int, error) {
	if !e.Strict {
		return fmt.Fprintf(w, format, args...)
	}
	return fmt.Fprintf(&strictWriter{w: w}, format, args...)
}

// strictWriter inspects every chunk before handing it on.
type strictWriter struct {
	w io.Writer
}

func (s *strictWriter) Write(p []byte) (int, error) {
	if loc := conversionMarker.FindIndex(p); loc != nil {
		return 0, fmt.Errorf("%w: %q", ErrConversion, p[loc[0]:])
	}
	return s.w.Write(p)
}

// WriterFunc allows an ordinary function to be used as the byte consumer of
// an Engine.
type WriterFunc func(p []byte) (int, error)

func (f WriterFunc) Write(p []byte) (int, error) { return f(p) }
