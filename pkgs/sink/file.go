//go:build !nofatfs

package sink

import (
	"fmt"
	"io"

	"github.com/keskad/chprintf/pkgs/fatfs"
)

// File describes an open file on a FAT volume.
func File(f fatfs.File) Descriptor {
	return Descriptor{kind: KindFile, file: f}
}

// FileSink forwards every chunk to a file. A short write means the volume is
// full and fails the chunk.
type FileSink struct {
	f fatfs.File
}

func (s *FileSink) Write(p []byte) (int, error) {
	n, err := s.f.Write(p)
	if err == nil && n < len(p) {
		err = io.ErrShortWrite
	}
	return n, err
}

func (s *FileSink) Kind() Kind { return KindFile }

func bindFile(d Descriptor) (ByteSink, error) {
	if d.file == nil {
		return nil, fmt.Errorf("%w: nil file", ErrInvalidDescriptor)
	}
	return &FileSink{f: d.file}, nil
}
