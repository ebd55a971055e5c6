package channel

import (
	"errors"
	"fmt"
	"net"
	"os"
	"time"

	"github.com/sirupsen/logrus"
)

// datagram payload that fits an ethernet frame without fragmentation
const defaultMaxChunk = 1472

// a past deadline fails even writes that would not block
const immediateDeadline = time.Millisecond

// Conn is a Channel on top of a network connection. Timeouts are enforced
// with write deadlines.
type Conn struct {
	conn     net.Conn
	maxChunk int
}

// Dial connects to address on the given network ("udp", "tcp", "unix", ...).
func Dial(network, address string, options ...DialOption) (*Conn, error) {
	ctx := DialContext{timeout: 10 * time.Second, maxChunk: defaultMaxChunk}
	if err := applyOptions(&ctx, options); err != nil {
		return nil, fmt.Errorf("cannot dial %s %s: %w", network, address, err)
	}

	logrus.Debugf("Connecting channel to %s://%s", network, address)
	conn, err := net.DialTimeout(network, address, ctx.timeout)
	if err != nil {
		return nil, fmt.Errorf("%s dial error while connecting to %s: %w", network, address, err)
	}
	return &Conn{conn: conn, maxChunk: ctx.maxChunk}, nil
}

// NewConn wraps an already established connection.
func NewConn(conn net.Conn, options ...DialOption) (*Conn, error) {
	ctx := DialContext{maxChunk: defaultMaxChunk}
	if err := applyOptions(&ctx, options); err != nil {
		return nil, err
	}
	return &Conn{conn: conn, maxChunk: ctx.maxChunk}, nil
}

func (c *Conn) WriteTimeout(p []byte, timeout time.Duration) (int, error) {
	var deadline time.Time
	switch {
	case timeout == Immediate:
		deadline = time.Now().Add(immediateDeadline)
	case timeout > 0:
		deadline = time.Now().Add(timeout)
	}
	if err := c.conn.SetWriteDeadline(deadline); err != nil {
		return 0, fmt.Errorf("cannot set write deadline: %w", err)
	}

	written := 0
	for written < len(p) {
		end := min(written+c.maxChunk, len(p))
		n, err := c.conn.Write(p[written:end])
		written += n
		if err != nil {
			if isTimeout(err) {
				return written, fmt.Errorf("%w after %s", ErrTimeout, timeout)
			}
			return written, err
		}
	}
	return written, nil
}

func (c *Conn) Close() error {
	logrus.Debugf("Closing channel to %s", c.conn.RemoteAddr())
	return c.conn.Close()
}

func (c *Conn) RemoteAddr() net.Addr {
	return c.conn.RemoteAddr()
}

func isTimeout(err error) bool {
	if errors.Is(err, os.ErrDeadlineExceeded) {
		return true
	}
	var ne net.Error
	return errors.As(err, &ne) && ne.Timeout()
}
