package docbase

import (
	"sync"

	"github.com/willibrandon/docbase/configuration"
	"github.com/willibrandon/docbase/core"
)

var (
	defaultMu       sync.Mutex
	defaultFacility *Facility
)

// Default returns the process-wide facility, creating it with the default
// configuration location on first use.
func Default() *Facility {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	if defaultFacility == nil {
		defaultFacility = New()
	}
	return defaultFacility
}

// SetDefault replaces the process-wide facility and returns the previous one,
// which may be nil. Passing nil makes the next Default call create a fresh one.
func SetDefault(f *Facility) *Facility {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	prev := defaultFacility
	defaultFacility = f
	return prev
}

// Log writes a message through the default facility.
func Log(message string, priority core.Severity) error {
	return Default().Log(message, priority)
}

// Debug writes a debug message through the default facility.
func Debug(message any) error {
	return Default().Debug(message)
}

// Config returns the default facility's configuration.
func Config() (*configuration.Configuration, error) {
	return Default().Config()
}

// LogLevel returns the default facility's threshold.
func LogLevel() (core.Severity, error) {
	return Default().LogLevel()
}

// SetLogLevel sets the default facility's threshold.
func SetLogLevel(level any) error {
	return Default().SetLogLevel(level)
}
