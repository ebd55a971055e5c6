//go:build !nofatfs

package output

import (
	"github.com/keskad/chprintf/pkgs/fatfs"
	"github.com/keskad/chprintf/pkgs/sink"
)

func (a *Adapter) Vfprintf(f fatfs.File, format string, args []any) (int, error) {
	return a.Emit(sink.File(f), format, args)
}

func (a *Adapter) Fprintf(f fatfs.File, format string, args ...any) (int, error) {
	return a.Vfprintf(f, format, args)
}

// Fprintf writes to a file opened on a FAT volume.
func Fprintf(f fatfs.File, format string, args ...any) (int, error) {
	return std.Vfprintf(f, format, args)
}

// Vfprintf is Fprintf with a prepared argument list.
func Vfprintf(f fatfs.File, format string, args []any) (int, error) {
	return std.Vfprintf(f, format, args)
}
