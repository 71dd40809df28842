package sinks

import (
	"io"
	"os"
	"strings"
	"sync"

	"github.com/fatih/color"
	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
	"github.com/willibrandon/docbase/core"
	"github.com/willibrandon/docbase/selflog"
)

// ConsoleSink writes log events to a stream, normally standard output.
type ConsoleSink struct {
	threshold
	output   io.Writer
	mu       sync.Mutex
	theme    ConsoleTheme
	useColor bool
}

// ConsoleTheme maps severities to the color their label is printed in.
type ConsoleTheme map[core.Severity]*color.Color

// DefaultTheme returns the theme used by new console sinks.
func DefaultTheme() ConsoleTheme {
	return ConsoleTheme{
		core.EmergencySeverity: color.New(color.FgHiWhite, color.BgRed, color.Bold),
		core.AlertSeverity:     color.New(color.FgHiRed, color.Bold),
		core.CriticalSeverity:  color.New(color.FgHiRed, color.Bold),
		core.ErrorSeverity:     color.New(color.FgRed),
		core.WarningSeverity:   color.New(color.FgYellow),
		core.NoticeSeverity:    color.New(color.FgCyan),
		core.InfoSeverity:      color.New(color.FgGreen),
		core.DebugSeverity:     color.New(color.FgHiBlack),
	}
}

// NewConsoleSink creates a console sink that writes to stdout.
func NewConsoleSink() *ConsoleSink {
	return NewConsoleSinkWithWriter(os.Stdout)
}

// NewConsoleSinkWithWriter creates a console sink with a custom writer.
// Colored terminal output goes through go-colorable so that Windows
// consoles render the escape sequences.
func NewConsoleSinkWithWriter(w io.Writer) *ConsoleSink {
	useColor := shouldUseColor(w)
	if f, ok := w.(*os.File); ok && useColor {
		w = colorable.NewColorable(f)
	}
	return &ConsoleSink{
		output:   w,
		theme:    DefaultTheme(),
		useColor: useColor,
	}
}

// SetUseColor enables or disables color output.
func (cs *ConsoleSink) SetUseColor(useColor bool) {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	cs.useColor = useColor
}

// Emit writes the event to the console.
func (cs *ConsoleSink) Emit(event *core.LogEvent) {
	if !cs.accepts(event.Severity) {
		return
	}

	cs.mu.Lock()
	defer cs.mu.Unlock()

	label := event.Severity.String()
	if c, ok := cs.theme[event.Severity]; ok && cs.useColor {
		c.EnableColor()
		label = c.Sprint(label)
	}

	if err := writeEvent(cs.output, event, label); err != nil {
		selflog.Printf("[console] write failed: %v", err)
	}
}

// Close does nothing; the console stream is owned by the process.
func (cs *ConsoleSink) Close() error {
	return nil
}

// shouldUseColor reports whether w is a terminal that should get ANSI colors.
// DOCBASE_FORCE_COLOR overrides the detection either way.
func shouldUseColor(w io.Writer) bool {
	if force := os.Getenv("DOCBASE_FORCE_COLOR"); force != "" {
		switch strings.ToLower(force) {
		case "none", "0", "false", "off":
			return false
		case "1", "true", "on":
			return true
		}
	}

	if color.NoColor {
		return false
	}

	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
