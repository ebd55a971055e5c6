//go:build !nofatfs

package app

import (
	"errors"
	"fmt"
	"os"

	"github.com/keskad/chprintf/pkgs/fatfs"
	"github.com/sirupsen/logrus"
)

type FileArgs struct {
	Image  string
	Path   string
	Append bool
	// Mkfs formats a new image of Size bytes when the image does not exist
	Mkfs  bool
	Size  int64
	Label string
}

// FileAction prints into a file on a FAT image.
func (app *PrintApp) FileAction(fa FileArgs, format string, args []any) error {
	volume, err := openVolume(fa)
	if err != nil {
		return err
	}
	defer volume.Close()

	f, err := volume.OpenFile(fa.Path, fa.Append)
	if err != nil {
		return err
	}

	n, err := app.adapter().Vfprintf(f, format, args)
	if closeErr := f.Close(); err == nil && closeErr != nil {
		return fmt.Errorf("cannot close %s: %w", fa.Path, closeErr)
	}
	if err != nil {
		return err
	}
	logrus.Debugf("Written %d characters to %s:%s", n, fa.Image, fa.Path)
	return nil
}

func openVolume(fa FileArgs) (*fatfs.Volume, error) {
	_, statErr := os.Stat(fa.Image)
	if errors.Is(statErr, os.ErrNotExist) && fa.Mkfs {
		return fatfs.Create(fa.Image, fa.Size, fa.Label)
	}
	return fatfs.Open(fa.Image)
}
