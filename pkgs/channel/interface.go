// Package channel provides byte channels whose writes are bounded by a
// timeout: an in-memory output queue and a network connection.
package channel

import (
	"errors"
	"io"
	"time"
)

// Special timeout values understood by every Channel.
const (
	// Immediate does not wait for room, only what fits right now is written.
	Immediate time.Duration = 0
	// Infinite waits until the whole buffer has been written.
	Infinite time.Duration = -1
)

var (
	// ErrTimeout is returned when a write could not complete in time.
	ErrTimeout = errors.New("channel write timeout")
	// ErrClosed is returned when writing to a closed channel.
	ErrClosed = errors.New("channel closed")
)

type Channel interface {
	// WriteTimeout writes p, waiting at most timeout for the channel to
	// accept it. It returns the number of bytes accepted; a short count is
	// always accompanied by an error.
	WriteTimeout(p []byte, timeout time.Duration) (int, error)
	io.Closer
}

//
// Dial options
//

type DialOption func(*DialContext) error

type DialContext struct {
	timeout  time.Duration
	maxChunk int
}

// DialTimeout limits how long establishing the connection may take.
func DialTimeout(timeout time.Duration) func(*DialContext) error {
	return func(ctx *DialContext) error {
		if timeout < 0 {
			return errors.New("dial timeout cannot be negative")
		}
		ctx.timeout = timeout
		return nil
	}
}

// MaxChunk splits writes into pieces of at most size bytes, one datagram per
// piece on packet oriented networks.
func MaxChunk(size int) func(*DialContext) error {
	return func(ctx *DialContext) error {
		if size <= 0 {
			return errors.New("chunk size must be positive")
		}
		ctx.maxChunk = size
		return nil
	}
}

func applyOptions(ctx *DialContext, options []DialOption) error {
	for _, option := range options {
		if err := option(ctx); err != nil {
			return err
		}
	}
	return nil
}

// --- End of dial options ---
