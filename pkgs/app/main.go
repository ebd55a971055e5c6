package app

import (
	"fmt"
	"io"
	"os"

	"github.com/keskad/chprintf/pkgs/config"
	"github.com/keskad/chprintf/pkgs/format"
	"github.com/keskad/chprintf/pkgs/output"
	"github.com/sirupsen/logrus"
)

type PrintApp struct {
	Config *config.Configuration
	P      output.Printer

	// streams available to the stream sink
	Stdout io.Writer
	Stderr io.Writer

	// runtime parameters
	Debug  bool
	Strict bool
}

// Initialize is running after parsing the arguments, so we know how to configure the app
func (app *PrintApp) Initialize() error {
	// logging
	if app.Debug {
		logrus.SetLevel(logrus.DebugLevel)
	}

	// configuration
	logrus.Debug("Reading configuration files")
	cfg, cfgErr := config.NewConfig()
	app.Config = cfg
	if cfgErr != nil {
		return fmt.Errorf("cannot initialize app: %s", cfgErr)
	}
	return nil
}

// adapter returns the output adapter, strict when requested on the command
// line or in the configuration.
func (app *PrintApp) adapter() *output.Adapter {
	strict := app.Strict
	if app.Config != nil && app.Config.Format.Strict {
		strict = true
	}
	if strict {
		logrus.Debug("Using strict format engine")
	}
	return output.New(format.Fmt{Strict: strict})
}

func (app *PrintApp) printer() output.Printer {
	if app.P == nil {
		return output.ConsolePrinter{}
	}
	return app.P
}

func (app *PrintApp) stream(name string) (io.Writer, error) {
	switch name {
	case "", "stdout":
		if app.Stdout != nil {
			return app.Stdout, nil
		}
		return os.Stdout, nil
	case "stderr":
		if app.Stderr != nil {
			return app.Stderr, nil
		}
		return os.Stderr, nil
	}
	return nil, fmt.Errorf("unknown stream '%s', must be either 'stdout' or 'stderr'", name)
}
