package main

import (
	"os"

	"github.com/keskad/chprintf/pkgs/app"
	"github.com/keskad/chprintf/pkgs/cli"
	"github.com/keskad/chprintf/pkgs/output"
)

func main() {
	app := app.PrintApp{P: output.ConsolePrinter{}}
	cmd := cli.NewRootCommand(&app)
	args := os.Args
	if args != nil {
		args = args[1:]
		cmd.SetArgs(args)
	}
	err := cmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
