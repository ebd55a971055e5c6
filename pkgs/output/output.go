// Package output routes printf style formatted text to a sink: a stream, a
// channel with write timeout, a memory buffer or a file on a FAT volume.
//
// Every call binds the destination to a byte sink, lets the formatting engine
// produce the text into it and returns the number of characters written. A
// failed call returns -1 together with an error matching ErrEmit, whether the
// engine or the sink failed.
package output

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/keskad/chprintf/pkgs/channel"
	"github.com/keskad/chprintf/pkgs/format"
	"github.com/keskad/chprintf/pkgs/sink"
)

// Failed is the count returned together with an error.
const Failed = -1

var ErrEmit = errors.New("formatted output failed")

// Adapter connects a formatting engine to sinks. It holds no per-call state
// and may be used from several goroutines at once.
type Adapter struct {
	Engine format.Engine
}

var std = &Adapter{}

// New returns an adapter using engine, or the default engine when nil.
func New(engine format.Engine) *Adapter {
	return &Adapter{Engine: engine}
}

func (a *Adapter) engine() format.Engine {
	if a == nil || a.Engine == nil {
		return format.Default
	}
	return a.Engine
}

// Emit formats args according to format into the destination described by d.
func (a *Adapter) Emit(d sink.Descriptor, format string, args []any) (int, error) {
	n, _, err := a.emit(d, format, args)
	return n, err
}

func (a *Adapter) emit(d sink.Descriptor, format string, args []any) (n int, truncated bool, err error) {
	s, err := sink.Bind(d)
	if err != nil {
		return Failed, false, fail(d, err)
	}

	n, err = a.engine().Format(s, format, args)
	if b, ok := s.(*sink.BufferSink); ok {
		n = b.Terminate()
		truncated = b.Truncated()
	}
	if err != nil {
		return Failed, truncated, fail(d, err)
	}
	return n, truncated, nil
}

func (a *Adapter) Vprintf(w io.Writer, format string, args []any) (int, error) {
	return a.Emit(sink.Stream(w), format, args)
}

func (a *Adapter) Printf(w io.Writer, format string, args ...any) (int, error) {
	return a.Vprintf(w, format, args)
}

func (a *Adapter) Vprintft(c channel.Channel, timeout time.Duration, format string, args []any) (int, error) {
	return a.Emit(sink.Channel(c, timeout), format, args)
}

func (a *Adapter) Printft(c channel.Channel, timeout time.Duration, format string, args ...any) (int, error) {
	return a.Vprintft(c, timeout, format, args)
}

func (a *Adapter) Vsnprintf(buf []byte, format string, args []any) (int, error) {
	n, _, err := a.VsnprintfTruncated(buf, format, args)
	return n, err
}

// VsnprintfTruncated is Vsnprintf that also reports whether the text had to
// be cut off to fit buf.
func (a *Adapter) VsnprintfTruncated(buf []byte, format string, args []any) (n int, truncated bool, err error) {
	return a.emit(sink.Buffer(buf), format, args)
}

func (a *Adapter) Snprintf(buf []byte, format string, args ...any) (int, error) {
	return a.Vsnprintf(buf, format, args)
}

// Printf writes to a stream.
func Printf(w io.Writer, format string, args ...any) (int, error) {
	return std.Vprintf(w, format, args)
}

// Vprintf is Printf with a prepared argument list.
func Vprintf(w io.Writer, format string, args []any) (int, error) {
	return std.Vprintf(w, format, args)
}

// Printft writes to a channel. Each write to the channel may block up to
// timeout, see channel.Immediate and channel.Infinite.
func Printft(c channel.Channel, timeout time.Duration, format string, args ...any) (int, error) {
	return std.Vprintft(c, timeout, format, args)
}

// Vprintft is Printft with a prepared argument list.
func Vprintft(c channel.Channel, timeout time.Duration, format string, args []any) (int, error) {
	return std.Vprintft(c, timeout, format, args)
}

// Snprintf writes into buf and terminates the text with a zero byte. It
// returns the number of characters before the terminator. Text that does not
// fit in len(buf)-1 bytes is cut off.
func Snprintf(buf []byte, format string, args ...any) (int, error) {
	return std.Vsnprintf(buf, format, args)
}

// Vsnprintf is Snprintf with a prepared argument list.
func Vsnprintf(buf []byte, format string, args []any) (int, error) {
	return std.Vsnprintf(buf, format, args)
}

func fail(d sink.Descriptor, err error) error {
	return fmt.Errorf("%w to %s: %w", ErrEmit, d.Kind(), err)
}
