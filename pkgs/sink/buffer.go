package sink

import (
	"github.com/keskad/chprintf/pkgs/memstream"
)

// BufferSink writes into a caller buffer through a memory stream. The last
// byte of the buffer is kept for the terminator, so it is always written,
// even when the content had to be truncated.
type BufferSink struct {
	ms      *memstream.MemoryStream
	dropped bool
}

func NewBufferSink(buf []byte) *BufferSink {
	return &BufferSink{ms: memstream.New(buf, 0)}
}

// Write never fails: what does not fit is dropped.
func (s *BufferSink) Write(p []byte) (int, error) {
	chunk := p
	if room := max(s.ms.Available()-1, 0); room < len(chunk) {
		chunk = chunk[:room]
		s.dropped = true
	}
	if _, err := s.ms.Write(chunk); err != nil {
		return 0, err
	}
	return len(p), nil
}

func (s *BufferSink) Kind() Kind { return KindBuffer }

// Terminate appends the zero byte and returns the number of characters
// stored before it. An empty buffer gets no terminator.
func (s *BufferSink) Terminate() int {
	if err := s.ms.Put(0); err != nil {
		return 0
	}
	return s.ms.EOS() - 1
}

// Truncated reports whether content was dropped.
func (s *BufferSink) Truncated() bool {
	return s.dropped
}
