package handler

import (
	"strings"

	"github.com/go-logr/logr"
	"github.com/willibrandon/docbase/core"
)

// LogrSink implements logr.LogSink backed by a docbase facility.
type LogrSink struct {
	logger Logger
	name   string
	values []any
}

var _ logr.LogSink = (*LogrSink)(nil)

// NewLogrSink creates a new logr.LogSink that writes to logger.
func NewLogrSink(logger Logger) *LogrSink {
	return &LogrSink{
		logger: logger,
	}
}

// Init receives optional information about the logr library.
func (s *LogrSink) Init(logr.RuntimeInfo) {}

// Enabled tests whether this LogSink is enabled at the given V-level.
func (s *LogrSink) Enabled(level int) bool {
	return enabled(s.logger, LogrLevelToSeverity(level))
}

// Info logs a non-error message with the given key/value pairs.
func (s *LogrSink) Info(level int, msg string, keysAndValues ...any) {
	write(s.logger, "logr", s.format(msg, nil, keysAndValues), LogrLevelToSeverity(level))
}

// Error logs an error message with the given key/value pairs.
func (s *LogrSink) Error(err error, msg string, keysAndValues ...any) {
	write(s.logger, "logr", s.format(msg, err, keysAndValues), core.ErrorSeverity)
}

// WithValues returns a new LogSink with additional key/value pairs.
func (s *LogrSink) WithValues(keysAndValues ...any) logr.LogSink {
	values := make([]any, 0, len(s.values)+len(keysAndValues))
	values = append(values, s.values...)
	values = append(values, keysAndValues...)
	return &LogrSink{
		logger: s.logger,
		name:   s.name,
		values: values,
	}
}

// WithName returns a new LogSink with the specified name appended.
// Names are joined with dots.
func (s *LogrSink) WithName(name string) logr.LogSink {
	newName := name
	if s.name != "" {
		newName = s.name + "." + name
	}
	return &LogrSink{
		logger: s.logger,
		name:   newName,
		values: s.values,
	}
}

func (s *LogrSink) format(msg string, err error, keysAndValues []any) string {
	var b strings.Builder
	if s.name != "" {
		b.WriteString(s.name)
		b.WriteString(": ")
	}
	b.WriteString(msg)
	if err != nil {
		appendPair(&b, "error", err.Error())
	}
	appendKeysAndValues(&b, "", s.values)
	appendKeysAndValues(&b, "", keysAndValues)
	return b.String()
}

// LogrLevelToSeverity converts logr V-levels: V(0) is INFO and anything more
// verbose is DEBUG.
func LogrLevelToSeverity(level int) core.Severity {
	if level <= 0 {
		return core.InfoSeverity
	}
	return core.DebugSeverity
}
