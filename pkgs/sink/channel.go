package sink

import (
	"io"
	"time"

	"github.com/keskad/chprintf/pkgs/channel"
)

// ChannelSink forwards every chunk to a channel. Each chunk may block up to
// the timeout; a timeout fails the chunk, nothing is retried.
type ChannelSink struct {
	c       channel.Channel
	timeout time.Duration
}

func (s *ChannelSink) Write(p []byte) (int, error) {
	n, err := s.c.WriteTimeout(p, s.timeout)
	if err == nil && n < len(p) {
		err = io.ErrShortWrite
	}
	return n, err
}

func (s *ChannelSink) Kind() Kind { return KindChannel }
