package main

import (
	"fmt"
	"io"

	flag "github.com/spf13/pflag"
)

type parseResult int

const (
	parseStop     parseResult = iota // No error, but don't continue
	parseContinue                    // No errors and continue
	parseFailed                      // Errors, do not continue
)

type options struct {
	configPath string
	level      string
	priority   string
	debug      bool
	showConfig bool
	time       bool
	message    []string
}

func parseOptions(args []string, output io.Writer) (*options, parseResult) {
	var helpFlag bool
	opts := &options{}

	name := programName
	if len(args) > 0 {
		name = args[0]
	}

	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(output)
	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), "Consider '-h' for command-line usage")
	}

	fs.BoolVarP(&helpFlag, "help", "h", false, "Print command-line usage")
	fs.StringVarP(&opts.configPath, "config", "c", "",
		"Configuration template (default $DOCBASE_CONFIG or config/docbase.toml beside the executable)")
	fs.StringVarP(&opts.level, "level", "l", "",
		"Override logging.level with a severity name or number")
	fs.StringVarP(&opts.priority, "priority", "p", "info",
		"Severity of the messages: emergency, alert, critical, error, warning, notice, info or debug")
	fs.BoolVarP(&opts.debug, "debug", "d", false,
		"Write to the debug log only, same as --priority debug")
	fs.BoolVar(&opts.showConfig, "show-config", false,
		"Print the loaded configuration and effective level")
	fs.BoolVarP(&opts.time, "time", "t", false,
		"Write the run time to the debug log when done")

	if len(args) > 1 {
		if err := fs.Parse(args[1:]); err != nil {
			return nil, parseFailed
		}
	}

	if helpFlag {
		fmt.Fprintf(fs.Output(), "Usage: %s [flags] [message...]\n\n", name)
		fmt.Fprintln(fs.Output(), "With no message, each line of standard input is logged.")
		fmt.Fprintln(fs.Output())
		fs.PrintDefaults()
		return nil, parseStop
	}

	opts.message = fs.Args()
	return opts, parseContinue
}
