package sinks

import (
	"sync/atomic"

	"github.com/willibrandon/docbase/core"
)

// threshold holds a sink's minimum priority. The zero value accepts every
// severity.
type threshold struct {
	// set is false until SetThreshold is first called
	set   atomic.Bool
	level atomic.Int64
}

// SetThreshold updates the least severe priority the sink accepts.
func (t *threshold) SetThreshold(level core.Severity) {
	t.level.Store(int64(level))
	t.set.Store(true)
}

// Threshold returns the current threshold.
func (t *threshold) Threshold() core.Severity {
	if !t.set.Load() {
		return core.DebugSeverity
	}
	return core.Severity(t.level.Load())
}

func (t *threshold) accepts(severity core.Severity) bool {
	return severity.Enabled(t.Threshold())
}
