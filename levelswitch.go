package docbase

import (
	"sync"
	"sync/atomic"

	"github.com/willibrandon/docbase/core"
)

// LevelSwitch holds a facility's current threshold. A new switch is unset;
// the facility fills it from configuration the first time it is needed.
//
// Facilities attach their sinks to the switch, so a level set through any
// facility sharing the switch, or directly with SetLevel, reaches every sink.
type LevelSwitch struct {
	level atomic.Int64
	set   atomic.Bool

	mu    sync.Mutex
	sinks map[core.Sink]struct{}
}

// NewLevelSwitch creates a switch already set to level.
func NewLevelSwitch(level core.Severity) *LevelSwitch {
	ls := &LevelSwitch{}
	ls.SetLevel(level)
	return ls
}

// Level returns the current threshold and whether one has been set.
func (ls *LevelSwitch) Level() (core.Severity, bool) {
	if !ls.set.Load() {
		return 0, false
	}
	return core.Severity(ls.level.Load()), true
}

// SetLevel updates the threshold and pushes it to every attached sink.
func (ls *LevelSwitch) SetLevel(level core.Severity) {
	ls.mu.Lock()
	defer ls.mu.Unlock()

	ls.level.Store(int64(level))
	ls.set.Store(true)
	for sink := range ls.sinks {
		sink.SetThreshold(level)
	}
}

// Clear returns the switch to the unset state. Attached sinks keep their
// last threshold.
func (ls *LevelSwitch) Clear() {
	ls.set.Store(false)
}

// IsEnabled returns true if a message at level passes the threshold. An
// unset switch passes everything.
func (ls *LevelSwitch) IsEnabled(level core.Severity) bool {
	threshold, ok := ls.Level()
	return !ok || level.Enabled(threshold)
}

// attach registers sink for future level changes and applies the current
// level to it.
func (ls *LevelSwitch) attach(sink core.Sink) {
	ls.mu.Lock()
	defer ls.mu.Unlock()

	if ls.sinks == nil {
		ls.sinks = make(map[core.Sink]struct{})
	}
	ls.sinks[sink] = struct{}{}
	if ls.set.Load() {
		sink.SetThreshold(core.Severity(ls.level.Load()))
	}
}

// detach stops pushing level changes to sink.
func (ls *LevelSwitch) detach(sink core.Sink) {
	ls.mu.Lock()
	defer ls.mu.Unlock()
	delete(ls.sinks, sink)
}
