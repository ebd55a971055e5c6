package app

import (
	"fmt"
	"time"

	"github.com/keskad/chprintf/pkgs/channel"
	"github.com/keskad/chprintf/pkgs/output"
	"github.com/keskad/chprintf/pkgs/sink"
	"github.com/sirupsen/logrus"
)

// StreamAction prints to the standard output or error stream.
func (app *PrintApp) StreamAction(target string, format string, args []any) error {
	w, err := app.stream(target)
	if err != nil {
		return err
	}

	printer := output.SinkPrinter{Adapter: app.adapter(), Sink: sink.Stream(w)}
	n, err := printer.Printf(format, args...)
	if err != nil {
		return err
	}
	logrus.Debugf("Written %d characters to %s", n, target)
	return nil
}

// ChannelAction connects to a network channel and prints to it, every write
// bounded by timeout.
func (app *PrintApp) ChannelAction(network string, endpoint string, timeout time.Duration, format string, args []any) error {
	var options []channel.DialOption
	if timeout > 0 {
		options = append(options, channel.DialTimeout(timeout))
	}
	ch, err := channel.Dial(network, endpoint, options...)
	if err != nil {
		return fmt.Errorf("cannot open channel: %w", err)
	}
	defer ch.Close()

	n, err := app.adapter().Vprintft(ch, timeout, format, args)
	if err != nil {
		return err
	}
	logrus.Debugf("Written %d characters to %s://%s", n, network, endpoint)
	return nil
}

// BufferAction formats into a memory buffer of the given size and reports
// the buffer content and the character count.
func (app *PrintApp) BufferAction(size int, format string, args []any) error {
	if size < 0 {
		return fmt.Errorf("invalid buffer size: %d", size)
	}
	buf := make([]byte, size)

	n, truncated, err := app.adapter().VsnprintfTruncated(buf, format, args)
	if err != nil {
		return err
	}
	if truncated {
		logrus.Debugf("Output truncated to %d characters, buffer holds %d bytes", n, size)
	}

	_, _ = app.printer().Printf("%s\n", buf[:n])
	_, _ = app.printer().Printf("%d\n", n)
	return nil
}

// PrintAction prints to the sink kind named by kind, everything else about
// the sink comes from the configuration. An empty kind selects the
// configured default sink.
func (app *PrintApp) PrintAction(kind string, format string, args []any) error {
	if kind == "" {
		kind = app.Config.Sink
	}
	k, err := sink.ParseKind(kind)
	if err != nil {
		return err
	}
	logrus.Debugf("Printing to the %s sink", k)

	switch k {
	case sink.KindStream:
		return app.StreamAction("stdout", format, args)
	case sink.KindChannel:
		settings := app.Config.Channel
		return app.ChannelAction(settings.Network, settings.Endpoint(), settings.Timeout, format, args)
	case sink.KindBuffer:
		return app.BufferAction(app.Config.Buffer.Size, format, args)
	case sink.KindFile:
		fat := app.Config.Fat
		size, err := fat.ImageSize()
		if err != nil {
			return err
		}
		return app.FileAction(FileArgs{
			Image:  fat.Image,
			Path:   fat.Path,
			Append: fat.Append,
			Mkfs:   fat.Mkfs,
			Size:   size,
			Label:  fat.Label,
		}, format, args)
	}
	return fmt.Errorf("%w: %s", sink.ErrInvalidDescriptor, k)
}
