package docbase

import (
	"fmt"
	"time"

	"github.com/pkg/errors"
	"github.com/willibrandon/docbase/configuration"
	"github.com/willibrandon/docbase/core"
)

// DefaultTimer is the timer used when no name is given.
const DefaultTimer = "default"

// ErrUnknownTimer is returned when a timer is read before it was ever reset.
var ErrUnknownTimer = errors.New("unknown timer")

// Base is embedded by toolchain components. It gives each component its own
// named timers and access to the shared facility. A Base is not safe for
// concurrent use; the facility it points at is.
type Base struct {
	facility *Facility
	now      func() time.Time
	timers   map[string]time.Time
}

// BaseOption configures a Base.
type BaseOption func(*Base)

// WithClock replaces time.Now as the source of timer readings.
func WithClock(now func() time.Time) BaseOption {
	return func(b *Base) {
		b.now = now
	}
}

// NewBase creates a Base bound to f, or to Default when f is nil. The
// default timer is started immediately.
func NewBase(f *Facility, options ...BaseOption) *Base {
	if f == nil {
		f = Default()
	}
	b := &Base{
		facility: f,
		now:      time.Now,
		timers:   make(map[string]time.Time),
	}
	for _, opt := range options {
		opt(b)
	}
	b.ResetTimer(DefaultTimer)
	return b
}

// Facility returns the facility the Base logs through.
func (b *Base) Facility() *Facility {
	return b.facility
}

// ResetTimer starts or restarts the named timer. An empty name means
// DefaultTimer.
func (b *Base) ResetTimer(name string) {
	b.timers[timerName(name)] = b.now()
}

// ElapsedTime returns the time since the named timer was last reset.
func (b *Base) ElapsedTime(name string) (time.Duration, error) {
	name = timerName(name)
	start, ok := b.timers[name]
	if !ok {
		return 0, errors.Wrapf(ErrUnknownTimer, "%q", name)
	}
	return b.now().Sub(start), nil
}

// DebugTimer writes "<message> in <seconds> seconds" at DEBUG and restarts
// the named timer.
func (b *Base) DebugTimer(message, name string) error {
	name = timerName(name)
	elapsed, err := b.ElapsedTime(name)
	if err != nil {
		return err
	}

	if m := b.facility.metrics; m != nil {
		m.AddSample([]string{"timer", name}, float32(elapsed)/float32(time.Millisecond))
	}

	err = b.facility.Debug(fmt.Sprintf("%s in %.4f seconds", message, elapsed.Seconds()))
	b.ResetTimer(name)
	return err
}

// Log writes message at priority through the facility.
func (b *Base) Log(message string, priority core.Severity) error {
	return b.facility.Log(message, priority)
}

// Debug writes a debug message through the facility.
func (b *Base) Debug(message any) error {
	return b.facility.Debug(message)
}

// LogLevel returns the facility's threshold.
func (b *Base) LogLevel() (core.Severity, error) {
	return b.facility.LogLevel()
}

// SetLogLevel sets the facility's threshold.
func (b *Base) SetLogLevel(level any) error {
	return b.facility.SetLogLevel(level)
}

// Config returns the facility's configuration.
func (b *Base) Config() (*configuration.Configuration, error) {
	return b.facility.Config()
}

func timerName(name string) string {
	if name == "" {
		return DefaultTimer
	}
	return name
}
