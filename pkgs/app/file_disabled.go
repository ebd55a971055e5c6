//go:build nofatfs

package app

import "github.com/keskad/chprintf/pkgs/sink"

type FileArgs struct {
	Image  string
	Path   string
	Append bool
	Mkfs   bool
	Size   int64
	Label  string
}

func (app *PrintApp) FileAction(fa FileArgs, format string, args []any) error {
	return sink.ErrUnsupported
}
