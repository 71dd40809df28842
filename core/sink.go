package core

// Sink writes log events to a destination. Each sink carries its own
// threshold and silently drops events that do not pass it.
type Sink interface {
	// Emit writes the event if its severity passes the sink's threshold.
	Emit(event *LogEvent)

	// SetThreshold changes the least severe priority the sink accepts.
	SetThreshold(threshold Severity)

	// Threshold returns the current threshold.
	Threshold() Severity

	// Close releases any resources held by the sink.
	Close() error
}

// Destination sentinels that name a process stream instead of a file.
const (
	StdoutDestination = "stdout"
	StderrDestination = "stderr"
)

// IsStreamDestination reports whether destination names a process stream.
func IsStreamDestination(destination string) bool {
	switch destination {
	case StdoutDestination, StderrDestination:
		return true
	}
	return false
}
