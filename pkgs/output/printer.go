package output

import (
	"os"

	"github.com/keskad/chprintf/pkgs/sink"
)

type Printer interface {
	Printf(format string, a ...any) (n int, err error)
}

type ConsolePrinter struct{}

func (c ConsolePrinter) Printf(format string, a ...any) (n int, err error) {
	return Printf(os.Stdout, format, a...)
}

// SinkPrinter is a Printer bound to a fixed destination.
type SinkPrinter struct {
	Adapter *Adapter
	Sink    sink.Descriptor
}

func (p SinkPrinter) Printf(format string, a ...any) (n int, err error) {
	return p.Adapter.Emit(p.Sink, format, a)
}
