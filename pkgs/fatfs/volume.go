//go:build !nofatfs

// Package fatfs gives access to files on a FAT formatted disk image.
//
// It is left out of builds tagged nofatfs, together with the file sink.
package fatfs

import (
	"fmt"
	"io"
	"os"
	"strings"

	diskfs "github.com/diskfs/go-diskfs"
	"github.com/diskfs/go-diskfs/disk"
	"github.com/diskfs/go-diskfs/filesystem"
	"github.com/sirupsen/logrus"
)

// File is the write side of an open file handle.
type File interface {
	io.Writer
}

// Volume is a FAT32 filesystem living in a raw disk image.
type Volume struct {
	image string
	disk  *disk.Disk
	fs    filesystem.FileSystem
}

// Create makes a new raw image of size bytes and formats it as FAT32.
func Create(image string, size int64, label string) (*Volume, error) {
	logrus.Debugf("Creating FAT32 image %s (%d bytes)", image, size)
	d, err := diskfs.Create(image, size, diskfs.Raw, diskfs.SectorSizeDefault)
	if err != nil {
		return nil, fmt.Errorf("cannot create disk image %q: %w", image, err)
	}
	fs, err := d.CreateFilesystem(disk.FilesystemSpec{
		Partition:   0,
		FSType:      filesystem.TypeFat32,
		VolumeLabel: label,
	})
	if err != nil {
		_ = d.File.Close()
		return nil, fmt.Errorf("cannot format %q as FAT32: %w", image, err)
	}
	return &Volume{image: image, disk: d, fs: fs}, nil
}

// Open opens an existing FAT formatted image.
func Open(image string) (*Volume, error) {
	logrus.Debugf("Opening FAT image %s", image)
	d, err := diskfs.Open(image)
	if err != nil {
		return nil, fmt.Errorf("cannot open disk image %q: %w", image, err)
	}
	fs, err := d.GetFilesystem(0)
	if err != nil {
		_ = d.File.Close()
		return nil, fmt.Errorf("cannot read filesystem of %q: %w", image, err)
	}
	if fs.Type() != filesystem.TypeFat32 {
		_ = d.File.Close()
		return nil, fmt.Errorf("%q does not hold a FAT32 filesystem", image)
	}
	return &Volume{image: image, disk: d, fs: fs}, nil
}

// OpenFile opens name for writing, creating it when missing. With appendMode
// writes start at the current end of the file, otherwise the file is
// truncated first.
func (v *Volume) OpenFile(name string, appendMode bool) (filesystem.File, error) {
	flag := os.O_CREATE | os.O_RDWR
	if appendMode {
		flag |= os.O_APPEND
	} else {
		flag |= os.O_TRUNC
	}
	f, err := v.fs.OpenFile(absolute(name), flag)
	if err != nil {
		return nil, fmt.Errorf("cannot open %s on %s: %w", name, v.image, err)
	}
	return f, nil
}

// ReadFile returns the content of name.
func (v *Volume) ReadFile(name string) ([]byte, error) {
	f, err := v.fs.OpenFile(absolute(name), os.O_RDONLY)
	if err != nil {
		return nil, fmt.Errorf("cannot open %s on %s: %w", name, v.image, err)
	}
	defer f.Close()
	return io.ReadAll(f)
}

func (v *Volume) Close() error {
	logrus.Debugf("Closing FAT image %s", v.image)
	return v.disk.File.Close()
}

func absolute(name string) string {
	if !strings.HasPrefix(name, "/") {
		return "/" + name
	}
	return name
}
