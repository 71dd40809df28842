package docbase

import (
	metrics "github.com/armon/go-metrics"
	"github.com/willibrandon/docbase/configuration"
	"github.com/willibrandon/docbase/sinks"
)

// Option is a functional option for configuring a facility.
type Option func(*Facility)

// WithLoader sets where the configuration comes from. The default reads
// configuration.DefaultPath.
func WithLoader(loader configuration.Loader) Option {
	return func(f *Facility) {
		f.loader = loader
	}
}

// WithConfigPath reads the configuration template from path.
func WithConfigPath(path string) Option {
	return WithLoader(configuration.FileLoader{Path: path})
}

// WithConfig uses an already loaded configuration.
func WithConfig(config *configuration.Configuration) Option {
	return WithLoader(configuration.LoaderFunc(func() (*configuration.Configuration, error) {
		return config, nil
	}))
}

// WithSinkOpener replaces the function used to construct sinks.
func WithSinkOpener(open sinks.Opener) Option {
	return func(f *Facility) {
		f.open = open
	}
}

// WithLevelSwitch shares a threshold between facilities or with callers that
// want lock-free level checks.
func WithLevelSwitch(levelSwitch *LevelSwitch) Option {
	return func(f *Facility) {
		f.level = levelSwitch
	}
}

// WithMetrics records timer durations reported through Base.DebugTimer.
func WithMetrics(m *metrics.Metrics) Option {
	return func(f *Facility) {
		f.metrics = m
	}
}
