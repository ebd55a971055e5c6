// Package sink binds output destinations to the byte consumer interface the
// formatting engine writes into.
package sink

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/keskad/chprintf/pkgs/channel"
)

var (
	// ErrInvalidDescriptor is returned for zero value descriptors or
	// descriptors carrying a nil handle.
	ErrInvalidDescriptor = errors.New("invalid sink descriptor")
	// ErrUnsupported is returned for sink kinds left out of the build.
	ErrUnsupported = errors.New("sink kind not supported by this build")
)

// Kind identifies the destination type of a Descriptor.
type Kind int

const (
	KindInvalid Kind = iota
	KindStream
	KindChannel
	KindBuffer
	KindFile
)

func (k Kind) String() string {
	switch k {
	case KindStream:
		return "stream"
	case KindChannel:
		return "channel"
	case KindBuffer:
		return "buffer"
	case KindFile:
		return "file"
	default:
		return "invalid"
	}
}

// ParseKind converts a name as printed by Kind.String back to a Kind.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "stream":
		return KindStream, nil
	case "channel":
		return KindChannel, nil
	case "buffer":
		return KindBuffer, nil
	case "file":
		return KindFile, nil
	}
	return KindInvalid, fmt.Errorf("unknown sink kind %q, must be one of: stream, channel, buffer, file", s)
}

// Descriptor names a destination and carries what is needed to write to it.
// Handles are borrowed: they have to stay valid for the duration of a call
// and are never closed here.
type Descriptor struct {
	kind    Kind
	stream  io.Writer
	channel channel.Channel
	timeout time.Duration
	buf     []byte
	file    io.Writer
}

// Stream describes a sequential stream without timeout.
func Stream(w io.Writer) Descriptor {
	return Descriptor{kind: KindStream, stream: w}
}

// Channel describes a channel whose every write may block up to timeout.
func Channel(c channel.Channel, timeout time.Duration) Descriptor {
	return Descriptor{kind: KindChannel, channel: c, timeout: timeout}
}

// Buffer describes a fixed capacity memory buffer. The content is followed
// by a zero byte, so at most len(buf)-1 characters are stored.
func Buffer(buf []byte) Descriptor {
	return Descriptor{kind: KindBuffer, buf: buf}
}

func (d Descriptor) Kind() Kind { return d.kind }

// ByteSink accepts the bytes produced by the formatting engine.
type ByteSink interface {
	io.Writer
	Kind() Kind
}

// Bind creates the byte sink for d.
func Bind(d Descriptor) (ByteSink, error) {
	switch d.kind {
	case KindStream:
		if d.stream == nil {
			return nil, fmt.Errorf("%w: nil stream", ErrInvalidDescriptor)
		}
		return &StreamSink{w: d.stream}, nil
	case KindChannel:
		if d.channel == nil {
			return nil, fmt.Errorf("%w: nil channel", ErrInvalidDescriptor)
		}
		return &ChannelSink{c: d.channel, timeout: d.timeout}, nil
	case KindBuffer:
		return NewBufferSink(d.buf), nil
	case KindFile:
		return bindFile(d)
	}
	return nil, fmt.Errorf("%w: kind %s", ErrInvalidDescriptor, d.kind)
}
