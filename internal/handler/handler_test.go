package handler_test

import (
	"errors"
	"sync"

	"github.com/willibrandon/docbase/core"
)

type entry struct {
	message  string
	priority core.Severity
}

// recorder is a Logger that keeps every message passing its threshold.
type recorder struct {
	mu        sync.Mutex
	threshold core.Severity
	levelErr  error
	logErr    error
	entries   []entry
}

func newRecorder(threshold core.Severity) *recorder {
	return &recorder{threshold: threshold}
}

func (r *recorder) Log(message string, priority core.Severity) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.logErr != nil {
		return r.logErr
	}
	if priority.Enabled(r.threshold) {
		r.entries = append(r.entries, entry{message, priority})
	}
	return nil
}

func (r *recorder) LogLevel() (core.Severity, error) {
	return r.threshold, r.levelErr
}

func (r *recorder) all() []entry {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]entry(nil), r.entries...)
}

var errBroken = errors.New("broken")
