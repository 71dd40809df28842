package docbase

import (
	"sync"

	metrics "github.com/armon/go-metrics"
	"github.com/pkg/errors"
	"github.com/willibrandon/docbase/configuration"
	"github.com/willibrandon/docbase/core"
	"github.com/willibrandon/docbase/selflog"
	"github.com/willibrandon/docbase/sinks"
)

// Facility owns the shared logging and configuration state: the loaded
// configuration, the current threshold and up to three sinks. Everything is
// created on first use and reused until Reset.
//
// Messages below DEBUG go to the primary sink (logging.default_file) and to
// standard output. DEBUG messages go only to the debug sink
// (logging.error_file).
type Facility struct {
	mu      sync.Mutex
	loader  configuration.Loader
	open    sinks.Opener
	metrics *metrics.Metrics
	level   *LevelSwitch

	config  *configuration.Configuration
	primary core.Sink
	stdout  core.Sink
	debug   core.Sink
}

// New creates a facility. Nothing is loaded or opened until first use.
func New(options ...Option) *Facility {
	f := &Facility{
		open:  sinks.Open,
		level: &LevelSwitch{},
	}
	for _, opt := range options {
		opt(f)
	}
	if f.loader == nil {
		f.loader = configuration.DefaultLoader()
	}
	return f
}

// Config returns the configuration, loading it on the first call. Later calls
// return the same value without consulting the loader again.
func (f *Facility) Config() (*configuration.Configuration, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.configLocked()
}

func (f *Facility) configLocked() (*configuration.Configuration, error) {
	if f.config != nil {
		return f.config, nil
	}
	c, err := f.loader.Load()
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, errors.New("configuration loader returned no configuration")
	}
	f.config = c
	return c, nil
}

// LogLevel returns the current threshold. The first call may perform
// initialization: with no threshold set it loads the configuration and
// applies logging.level as if passed to SetLogLevel.
func (f *Facility) LogLevel() (core.Severity, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.logLevelLocked()
}

func (f *Facility) logLevelLocked() (core.Severity, error) {
	if level, ok := f.level.Level(); ok {
		return level, nil
	}
	c, err := f.configLocked()
	if err != nil {
		return 0, err
	}
	return f.setLogLevelLocked(c.Logging.Level)
}

// SetLogLevel sets the threshold for every sink, present and future. level
// is a core.Severity, an integer, or a severity name in any case. An
// unrecognised name returns core.ErrInvalidLevelName and changes nothing.
func (f *Facility) SetLogLevel(level any) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, err := f.setLogLevelLocked(level)
	return err
}

func (f *Facility) setLogLevelLocked(level any) (core.Severity, error) {
	s, err := core.ResolveSeverity(level)
	if err != nil {
		return 0, err
	}
	// Reaches the sinks of every facility sharing the switch.
	f.level.SetLevel(s)
	return s, nil
}

// Log writes message at priority to the primary and stdout sinks, opening
// both on first use. DEBUG messages are handed to Debug instead. Messages
// filtered by the threshold are dropped without error.
func (f *Facility) Log(message string, priority core.Severity) error {
	if priority == core.DebugSeverity {
		return f.Debug(message)
	}

	f.mu.Lock()
	if f.primary == nil || f.stdout == nil {
		if err := f.openLogSinksLocked(); err != nil {
			f.mu.Unlock()
			return err
		}
	}
	primary, stdout := f.primary, f.stdout
	ident := f.config.Logging.Ident
	f.mu.Unlock()

	event := core.NewLogEvent(ident, priority, message)
	primary.Emit(event)
	stdout.Emit(event)
	return nil
}

// Debug writes message at DEBUG to the debug sink, opening it on first use.
// Values that are not already text are rendered as a structural dump.
func (f *Facility) Debug(message any) error {
	text := render(message)

	f.mu.Lock()
	if f.debug == nil {
		if err := f.openDebugSinkLocked(); err != nil {
			f.mu.Unlock()
			return err
		}
	}
	debug := f.debug
	ident := f.config.Logging.Ident
	f.mu.Unlock()

	debug.Emit(core.NewLogEvent(ident, core.DebugSeverity, text))
	return nil
}

// openLogSinksLocked opens the primary and stdout sinks together.
func (f *Facility) openLogSinksLocked() error {
	c, err := f.configLocked()
	if err != nil {
		return err
	}
	level, err := f.logLevelLocked()
	if err != nil {
		return err
	}

	primary, err := f.open(c.Logging.DefaultFile)
	if err != nil {
		return err
	}
	stdout, err := f.open(core.StdoutDestination)
	if err != nil {
		f.closeSink(primary)
		return err
	}

	f.closeSink(f.primary)
	f.closeSink(f.stdout)

	primary.SetThreshold(level)
	stdout.SetThreshold(level)
	f.level.attach(primary)
	f.level.attach(stdout)
	f.primary, f.stdout = primary, stdout
	return nil
}

// openDebugSinkLocked opens the debug sink and applies the current threshold.
func (f *Facility) openDebugSinkLocked() error {
	c, err := f.configLocked()
	if err != nil {
		return err
	}
	level, err := f.logLevelLocked()
	if err != nil {
		return err
	}

	debug, err := f.open(c.Logging.ErrorFile)
	if err != nil {
		return err
	}
	debug.SetThreshold(level)
	f.level.attach(debug)
	f.debug = debug
	return nil
}

func (f *Facility) sinksLocked() []core.Sink {
	result := make([]core.Sink, 0, 3)
	for _, sink := range []core.Sink{f.primary, f.stdout, f.debug} {
		if sink != nil {
			result = append(result, sink)
		}
	}
	return result
}

// Close closes every open sink. The next message opens them again. The
// configuration and threshold are kept.
func (f *Facility) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.closeLocked()
}

// Reset closes every open sink and forgets the configuration and threshold,
// returning the facility to its newly constructed state.
func (f *Facility) Reset() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	err := f.closeLocked()
	f.config = nil
	f.level.Clear()
	return err
}

func (f *Facility) closeLocked() error {
	var first error
	for _, sink := range f.sinksLocked() {
		f.level.detach(sink)
		if err := sink.Close(); err != nil {
			if first == nil {
				first = err
			} else {
				selflog.Printf("[facility] close failed: %v", err)
			}
		}
	}
	f.primary, f.stdout, f.debug = nil, nil, nil
	return first
}

func (f *Facility) closeSink(sink core.Sink) {
	if sink == nil {
		return
	}
	f.level.detach(sink)
	if err := sink.Close(); err != nil {
		selflog.Printf("[facility] close failed: %v", err)
	}
}
