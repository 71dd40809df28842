// Command docbase writes messages through the toolchain's shared logging
// facility so that shell steps of the documentation build log to the same
// destinations as the Go components.
//
//	docbase -p warning "stale cross-reference in api/index.md"
//	generate-pages | docbase -d
//	docbase --show-config
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/willibrandon/docbase"
	"github.com/willibrandon/docbase/core"
)

const programName = "docbase"

func main() {
	os.Exit(run(os.Args, os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	opts, result := parseOptions(args, stderr)
	switch result {
	case parseStop:
		return 0
	case parseFailed:
		return 2
	case parseContinue:
	}

	var options []docbase.Option
	if opts.configPath != "" {
		options = append(options, docbase.WithConfigPath(opts.configPath))
	}
	f := docbase.New(options...)
	defer func() {
		if err := f.Close(); err != nil {
			reportError(stderr, err)
		}
	}()
	b := docbase.NewBase(f)

	if opts.level != "" {
		var level any = opts.level
		if n, err := strconv.Atoi(opts.level); err == nil {
			level = n
		}
		if err := f.SetLogLevel(level); err != nil {
			reportError(stderr, err)
			return 1
		}
	}

	if opts.showConfig {
		if err := showConfig(f, stdout); err != nil {
			reportError(stderr, err)
			return 1
		}
		if len(opts.message) == 0 {
			return 0
		}
	}

	priority := core.InfoSeverity
	if opts.debug {
		priority = core.DebugSeverity
	} else if opts.priority != "" {
		p, err := core.ParseSeverity(opts.priority)
		if err != nil {
			reportError(stderr, err)
			return 1
		}
		priority = p
	}

	count := 0
	emit := func(message string) bool {
		if err := b.Log(message, priority); err != nil {
			reportError(stderr, err)
			return false
		}
		count++
		return true
	}

	if len(opts.message) > 0 {
		if !emit(strings.Join(opts.message, " ")) {
			return 1
		}
	} else {
		scanner := bufio.NewScanner(stdin)
		for scanner.Scan() {
			if line := scanner.Text(); line != "" && !emit(line) {
				return 1
			}
		}
		if err := scanner.Err(); err != nil {
			reportError(stderr, err)
			return 1
		}
	}

	if opts.time {
		if err := b.DebugTimer(fmt.Sprintf("%s logged %d messages", programName, count), ""); err != nil {
			reportError(stderr, err)
			return 1
		}
	}

	return 0
}

func showConfig(f *docbase.Facility, w io.Writer) error {
	c, err := f.Config()
	if err != nil {
		return err
	}
	level, err := f.LogLevel()
	if err != nil {
		return err
	}
	fmt.Fprintln(w, "# path:", c.Path)
	fmt.Fprintln(w, "# level:", level)
	fmt.Fprintln(w, "# default_file:", c.Logging.DefaultFile)
	fmt.Fprintln(w, "# error_file:", c.Logging.ErrorFile)
	fmt.Fprint(w, c.String())
	return nil
}

func reportError(w io.Writer, err error) {
	fmt.Fprintf(w, "%s: %v\n", programName, err)
}
