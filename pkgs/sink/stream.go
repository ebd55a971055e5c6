package sink

import "io"

// StreamSink forwards every chunk to a sequential stream.
type StreamSink struct {
	w io.Writer
}

func (s *StreamSink) Write(p []byte) (int, error) {
	n, err := s.w.Write(p)
	if err == nil && n < len(p) {
		err = io.ErrShortWrite
	}
	return n, err
}

func (s *StreamSink) Kind() Kind { return KindStream }
