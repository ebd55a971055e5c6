package cli

import (
	"github.com/keskad/chprintf/pkgs/app"
	"github.com/spf13/cobra"
)

func NewRootCommand(app *app.PrintApp) *cobra.Command {
	command := &cobra.Command{
		Use:   "chprintf",
		Short: "Formatted output to streams, channels, memory buffers and FAT files",
		RunE: func(command *cobra.Command, args []string) error {
			return command.Help()
		},
		SilenceUsage: true,
	}

	command.PersistentFlags().BoolVarP(&app.Debug, "debug", "v", false, "Increase verbosity to the debug level")
	command.PersistentFlags().BoolVarP(&app.Strict, "strict", "", false, "Fail on conversion errors instead of printing %!verb markers")

	command.AddCommand(NewPrintCommand(app))
	command.AddCommand(NewStreamCommand(app))
	command.AddCommand(NewChannelCommand(app))
	command.AddCommand(NewBufferCommand(app))
	command.AddCommand(NewFileCommand(app))

	return command
}
