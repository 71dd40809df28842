package docbase

import (
	"github.com/go-logr/logr"
	"github.com/willibrandon/docbase/internal/handler"
)

// NewLogrLogger creates a logr.Logger that writes through f.
func NewLogrLogger(f *Facility) logr.Logger {
	return logr.New(f.LogrSink())
}

// LogrSink returns the facility as a logr.LogSink.
func (f *Facility) LogrSink() logr.LogSink {
	return handler.NewLogrSink(f)
}
