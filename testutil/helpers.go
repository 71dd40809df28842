// Package testutil holds test doubles and assertions shared by docbase tests.
package testutil

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/willibrandon/docbase/configuration"
	"github.com/willibrandon/docbase/core"
	"github.com/willibrandon/docbase/sinks"
)

// Destinations used by NewConfig.
const (
	PrimaryFile = "primary.log"
	ErrorFile   = "error.log"
)

// NewConfig returns a configuration with the given level and the
// PrimaryFile and ErrorFile destinations.
func NewConfig(level any) *configuration.Configuration {
	return &configuration.Configuration{
		Logging: configuration.Logging{
			Level:       level,
			Ident:       "test",
			DefaultFile: PrimaryFile,
			ErrorFile:   ErrorFile,
		},
	}
}

// StaticLoader returns Config (or Err) and counts how often it was asked.
type StaticLoader struct {
	Config *configuration.Configuration
	Err    error
	calls  atomic.Int32
}

// Load implements configuration.Loader.
func (l *StaticLoader) Load() (*configuration.Configuration, error) {
	l.calls.Add(1)
	return l.Config, l.Err
}

// Calls returns the number of Load calls.
func (l *StaticLoader) Calls() int {
	return int(l.calls.Load())
}

// MemorySinks is a sink opener that hands out a MemorySink per destination.
type MemorySinks struct {
	mu     sync.Mutex
	sinks  map[string]*sinks.MemorySink
	opened map[string]int
	fail   map[string]error
}

// NewMemorySinks creates an empty opener.
func NewMemorySinks() *MemorySinks {
	return &MemorySinks{
		sinks:  make(map[string]*sinks.MemorySink),
		opened: make(map[string]int),
		fail:   make(map[string]error),
	}
}

// Open implements sinks.Opener.
func (m *MemorySinks) Open(destination string) (core.Sink, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.fail[destination]; err != nil {
		return nil, err
	}
	sink := sinks.NewMemorySink()
	m.sinks[destination] = sink
	m.opened[destination]++
	return sink, nil
}

// FailOn makes opening destination return err.
func (m *MemorySinks) FailOn(destination string, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.fail[destination] = err
}

// Get returns the latest sink opened for destination, or nil.
func (m *MemorySinks) Get(destination string) *sinks.MemorySink {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.sinks[destination]
}

// Messages returns the messages stored for destination. A destination that
// was never opened has none.
func (m *MemorySinks) Messages(destination string) []string {
	sink := m.Get(destination)
	if sink == nil {
		return nil
	}
	return sink.Messages()
}

// Opened returns how many times destination was opened.
func (m *MemorySinks) Opened(destination string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.opened[destination]
}

// AssertNoError fails the test if err is not nil.
func AssertNoError(t *testing.T, err error, message string) {
	t.Helper()
	if err != nil {
		if message != "" {
			t.Fatalf("%s: %v", message, err)
		} else {
			t.Fatalf("Unexpected error: %v", err)
		}
	}
}

// AssertErrorIs fails the test unless err wraps target.
func AssertErrorIs(t *testing.T, err, target error, message string) {
	t.Helper()
	if !errors.Is(err, target) {
		if message != "" {
			t.Fatalf("%s: expected %v, got %v", message, target, err)
		} else {
			t.Fatalf("Expected %v, got %v", target, err)
		}
	}
}

// AssertEqual fails the test if actual != expected.
func AssertEqual[T comparable](t *testing.T, actual, expected T, message string) {
	t.Helper()
	if actual != expected {
		if message != "" {
			t.Fatalf("%s: expected %v, got %v", message, expected, actual)
		} else {
			t.Fatalf("Expected %v, got %v", expected, actual)
		}
	}
}

// AssertMessages fails the test unless actual holds exactly expected, in order.
func AssertMessages(t *testing.T, actual []string, expected ...string) {
	t.Helper()
	if len(actual) != len(expected) {
		t.Fatalf("Expected %d messages %q, got %d %q", len(expected), expected, len(actual), actual)
	}
	for i := range expected {
		if actual[i] != expected[i] {
			t.Fatalf("Message %d: expected %q, got %q", i, expected[i], actual[i])
		}
	}
}
