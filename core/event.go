package core

import "time"

// LogEvent represents a single log message.
type LogEvent struct {
	// Timestamp is when the event occurred.
	Timestamp time.Time

	// Severity is the priority of the event.
	Severity Severity

	// Ident names the program or component writing the event.
	Ident string

	// Message is the rendered text.
	Message string
}

// NewLogEvent creates an event stamped with the current time.
func NewLogEvent(ident string, severity Severity, message string) *LogEvent {
	return &LogEvent{
		Timestamp: time.Now(),
		Severity:  severity,
		Ident:     ident,
		Message:   message,
	}
}
