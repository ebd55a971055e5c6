package cli

import (
	"time"

	"github.com/keskad/chprintf/pkgs/app"
	"github.com/spf13/cobra"
)

func NewPrintCommand(app *app.PrintApp) *cobra.Command {
	type PrintArgs struct {
		Sink string
	}

	cmdArgs := PrintArgs{}
	command := &cobra.Command{
		Use:   "print FORMAT [ARGS...]",
		Short: "Print to the sink selected with --sink or in the configuration",
		Long: `Print to the sink selected with --sink or the "sink" configuration key.
Sink settings (address, buffer size, FAT image...) come from the configuration.

Examples:
  chprintf print --sink buffer '%08x\n' u:3054
  CHPRINTF_SINK=channel chprintf print 'boot %d\n' 1`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(command *cobra.Command, args []string) error {
			if err := app.Initialize(); err != nil {
				return err
			}

			format, values, err := parseFormatArgs(args)
			if err != nil {
				return err
			}
			return app.PrintAction(cmdArgs.Sink, format, values)
		},
	}

	command.Flags().StringVarP(&cmdArgs.Sink, "sink", "k", "", "Sink kind: stream, channel, buffer or file (default from configuration)")

	return command
}

func NewStreamCommand(app *app.PrintApp) *cobra.Command {
	type StreamArgs struct {
		Target string
	}

	cmdArgs := StreamArgs{}
	command := &cobra.Command{
		Use:   "stream FORMAT [ARGS...]",
		Short: "Print to a sequential stream (stdout or stderr)",
		Long: `Print to a sequential stream (stdout or stderr).

Arguments are typed automatically, or explicitly with a prefix:
  s:text  i:-12  u:42  f:1.5  b:yes  c:A

Examples:
  chprintf stream 'cv%d=%d\n' 1 3
  chprintf stream --target stderr '%s\n' s:042
  seq 3 | chprintf stream '%d %d %d\n' -`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(command *cobra.Command, args []string) error {
			if err := app.Initialize(); err != nil {
				return err
			}

			format, values, err := parseFormatArgs(args)
			if err != nil {
				return err
			}
			return app.StreamAction(cmdArgs.Target, format, values)
		},
	}

	command.Flags().StringVarP(&cmdArgs.Target, "target", "t", "stdout", "Stream to print to: 'stdout' or 'stderr'")

	return command
}

func NewChannelCommand(app *app.PrintApp) *cobra.Command {
	type ChannelArgs struct {
		Network string
		Address string
		Port    uint16
		Timeout time.Duration
	}

	cmdArgs := ChannelArgs{}
	command := &cobra.Command{
		Use:   "channel FORMAT [ARGS...]",
		Short: "Print to a network channel, every write bounded by a timeout",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(command *cobra.Command, args []string) error {
			if err := app.Initialize(); err != nil {
				return err
			}

			// flags take precedence over the configuration file
			settings := app.Config.Channel
			if command.Flags().Changed("network") {
				settings.Network = cmdArgs.Network
			}
			if command.Flags().Changed("address") {
				settings.Address = cmdArgs.Address
			}
			if command.Flags().Changed("port") {
				settings.Port = cmdArgs.Port
			}
			if command.Flags().Changed("timeout") {
				settings.Timeout = cmdArgs.Timeout
			}

			format, values, err := parseFormatArgs(args)
			if err != nil {
				return err
			}
			return app.ChannelAction(settings.Network, settings.Endpoint(), settings.Timeout, format, values)
		},
	}

	command.Flags().StringVarP(&cmdArgs.Network, "network", "n", "udp", "Network type: udp, tcp or unix")
	command.Flags().StringVarP(&cmdArgs.Address, "address", "a", "127.0.0.1", "Remote address")
	command.Flags().Uint16VarP(&cmdArgs.Port, "port", "p", 21105, "Remote port")
	command.Flags().DurationVarP(&cmdArgs.Timeout, "timeout", "", time.Second, "Timeout of every write, 0 does not wait, -1ns waits forever")

	return command
}

func NewBufferCommand(app *app.PrintApp) *cobra.Command {
	type BufferArgs struct {
		Size int
	}

	cmdArgs := BufferArgs{}
	command := &cobra.Command{
		Use:   "buffer FORMAT [ARGS...]",
		Short: "Print into a fixed size memory buffer and show what was stored",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(command *cobra.Command, args []string) error {
			if err := app.Initialize(); err != nil {
				return err
			}

			size := app.Config.Buffer.Size
			if command.Flags().Changed("size") {
				size = cmdArgs.Size
			}

			format, values, err := parseFormatArgs(args)
			if err != nil {
				return err
			}
			return app.BufferAction(size, format, values)
		},
	}

	command.Flags().IntVarP(&cmdArgs.Size, "size", "s", 256, "Buffer capacity in bytes, including the terminating zero")

	return command
}

func NewFileCommand(app *app.PrintApp) *cobra.Command {
	type FileArgs struct {
		Image  string
		Path   string
		Append bool
		Mkfs   bool
		Size   string
	}

	cmdArgs := FileArgs{}
	command := &cobra.Command{
		Use:   "file FORMAT [ARGS...]",
		Short: "Print into a file on a FAT32 disk image",
		Long: `Print into a file on a FAT32 disk image.

Examples:
  chprintf file --image sd.img --mkfs --size 64MiB --path LOG.TXT --append 'boot %d\n' 1`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(command *cobra.Command, args []string) error {
			if err := app.Initialize(); err != nil {
				return err
			}

			fa, err := fileArgs(app, command.Flags().Changed, cmdArgs.Image, cmdArgs.Path, cmdArgs.Size)
			if err != nil {
				return err
			}
			fa.Append = cmdArgs.Append
			fa.Mkfs = cmdArgs.Mkfs

			format, values, err := parseFormatArgs(args)
			if err != nil {
				return err
			}
			return app.FileAction(fa, format, values)
		},
	}

	command.Flags().StringVarP(&cmdArgs.Image, "image", "i", "fat.img", "Path to the raw FAT32 disk image")
	command.Flags().StringVarP(&cmdArgs.Path, "path", "p", "OUTPUT.TXT", "File on the FAT volume")
	command.Flags().BoolVarP(&cmdArgs.Append, "append", "", false, "Append instead of writing from the beginning of the file")
	command.Flags().BoolVarP(&cmdArgs.Mkfs, "mkfs", "", false, "Create and format the image if it does not exist")
	command.Flags().StringVarP(&cmdArgs.Size, "size", "", "64MiB", "Size of a newly created image")

	return command
}

// fileArgs merges the file flags with the configuration
func fileArgs(a *app.PrintApp, changed func(string) bool, image, path, size string) (app.FileArgs, error) {
	fat := a.Config.Fat
	if changed("image") {
		fat.Image = image
	}
	if changed("path") {
		fat.Path = path
	}
	if changed("size") {
		fat.Size = size
	}

	bytes, err := fat.ImageSize()
	if err != nil {
		return app.FileArgs{}, err
	}
	return app.FileArgs{Image: fat.Image, Path: fat.Path, Size: bytes, Label: fat.Label}, nil
}
