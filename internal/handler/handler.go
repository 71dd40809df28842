// Package handler adapts docbase facilities to the slog and logr interfaces.
package handler

import (
	"fmt"
	"strings"

	"github.com/willibrandon/docbase/core"
	"github.com/willibrandon/docbase/selflog"
)

// Logger is the part of a facility the adapters need.
type Logger interface {
	Log(message string, priority core.Severity) error
	LogLevel() (core.Severity, error)
}

// enabled reports whether priority passes the logger's threshold. When the
// threshold cannot be resolved the message is let through so that the error
// surfaces on write.
func enabled(logger Logger, priority core.Severity) bool {
	threshold, err := logger.LogLevel()
	if err != nil {
		return true
	}
	return priority.Enabled(threshold)
}

// write logs message and reports failures through selflog, since neither
// logr nor slog callers look at errors from the sink.
func write(logger Logger, component, message string, priority core.Severity) error {
	err := logger.Log(message, priority)
	if err != nil {
		selflog.Printf("[%s] log failed: %v", component, err)
	}
	return err
}

// appendPair writes " key=value" to b, quoting values containing spaces.
func appendPair(b *strings.Builder, key string, value any) {
	b.WriteByte(' ')
	b.WriteString(key)
	b.WriteByte('=')
	s := fmt.Sprint(value)
	if strings.ContainsAny(s, " \t\n\"") {
		s = fmt.Sprintf("%q", s)
	}
	b.WriteString(s)
}

// appendKeysAndValues writes alternating key/value pairs. A trailing key
// without a value is written with a nil value.
func appendKeysAndValues(b *strings.Builder, prefix string, keysAndValues []any) {
	for i := 0; i < len(keysAndValues); i += 2 {
		key := prefix + fmt.Sprint(keysAndValues[i])
		var value any
		if i+1 < len(keysAndValues) {
			value = keysAndValues[i+1]
		}
		appendPair(b, key, value)
	}
}
