// Package memstream implements a sequential stream over a caller supplied,
// fixed capacity byte buffer.
package memstream

import (
	"errors"
	"io"
)

// ErrFull is returned when a write does not fit in the remaining capacity.
var ErrFull = errors.New("memory stream full")

// MemoryStream writes at the end-of-stream offset and reads from a separate
// read offset. It never grows the underlying buffer.
type MemoryStream struct {
	buf    []byte
	eos    int // end of written data
	offset int // next byte to read
}

// New initializes a stream over buf. eos is the amount of data already present
// in buf, usually zero for a write stream or len(buf) for a read stream.
func New(buf []byte, eos int) *MemoryStream {
	eos = min(max(eos, 0), len(buf))
	return &MemoryStream{buf: buf, eos: eos}
}

// Write copies as much of p as fits. A truncated write returns the number of
// bytes stored together with ErrFull.
func (ms *MemoryStream) Write(p []byte) (int, error) {
	n := copy(ms.buf[ms.eos:], p)
	ms.eos += n
	if n < len(p) {
		return n, ErrFull
	}
	return n, nil
}

// Put appends a single byte.
func (ms *MemoryStream) Put(b byte) error {
	if ms.eos >= len(ms.buf) {
		return ErrFull
	}
	ms.buf[ms.eos] = b
	ms.eos++
	return nil
}

func (ms *MemoryStream) WriteByte(b byte) error { return ms.Put(b) }

// Read drains written but not yet read data.
func (ms *MemoryStream) Read(p []byte) (int, error) {
	if ms.offset >= ms.eos {
		return 0, io.EOF
	}
	n := copy(p, ms.buf[ms.offset:ms.eos])
	ms.offset += n
	return n, nil
}

// Get reads a single byte.
func (ms *MemoryStream) Get() (byte, error) {
	if ms.offset >= ms.eos {
		return 0, io.EOF
	}
	b := ms.buf[ms.offset]
	ms.offset++
	return b, nil
}

func (ms *MemoryStream) ReadByte() (byte, error) { return ms.Get() }

// EOS returns the end-of-stream offset, i.e. the number of bytes written.
func (ms *MemoryStream) EOS() int { return ms.eos }

// Cap returns the capacity of the underlying buffer.
func (ms *MemoryStream) Cap() int { return len(ms.buf) }

// Available returns the number of bytes that can still be written.
func (ms *MemoryStream) Available() int { return len(ms.buf) - ms.eos }

// Bytes returns the written part of the buffer. It aliases the caller buffer.
func (ms *MemoryStream) Bytes() []byte { return ms.buf[:ms.eos] }

// Reset rewinds both offsets, the buffer content is left untouched.
func (ms *MemoryStream) Reset() {
	ms.eos = 0
	ms.offset = 0
}
