package sinks

import (
	"sync"

	"github.com/willibrandon/docbase/core"
)

// MemorySink stores accepted log events in memory for testing purposes.
type MemorySink struct {
	threshold
	events []core.LogEvent
	closed bool
	mu     sync.RWMutex
}

// NewMemorySink creates a new memory sink.
func NewMemorySink() *MemorySink {
	return &MemorySink{
		events: make([]core.LogEvent, 0),
	}
}

// Emit stores the event in memory if it passes the threshold.
func (m *MemorySink) Emit(event *core.LogEvent) {
	if !m.accepts(event.Severity) {
		return
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.events = append(m.events, *event)
}

// Close marks the sink closed. Stored events remain readable.
func (m *MemorySink) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	return nil
}

// Closed reports whether Close has been called.
func (m *MemorySink) Closed() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.closed
}

// Events returns a copy of all stored events.
func (m *MemorySink) Events() []core.LogEvent {
	m.mu.RLock()
	defer m.mu.RUnlock()

	result := make([]core.LogEvent, len(m.events))
	copy(result, m.events)
	return result
}

// Messages returns the text of all stored events in order.
func (m *MemorySink) Messages() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	result := make([]string, len(m.events))
	for i := range m.events {
		result[i] = m.events[i].Message
	}
	return result
}

// Clear removes all stored events.
func (m *MemorySink) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.events = m.events[:0]
}

// Count returns the number of stored events.
func (m *MemorySink) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.events)
}

// LastEvent returns the most recent event, or nil if no events.
func (m *MemorySink) LastEvent() *core.LogEvent {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if len(m.events) == 0 {
		return nil
	}

	event := m.events[len(m.events)-1]
	return &event
}
