package docbase

import (
	"log/slog"

	"github.com/willibrandon/docbase/internal/handler"
)

// NewSlogLogger creates a slog.Logger that writes through f.
func NewSlogLogger(f *Facility) *slog.Logger {
	return slog.New(f.SlogHandler())
}

// SlogHandler returns the facility as an slog.Handler.
func (f *Facility) SlogHandler() slog.Handler {
	return handler.NewSlogHandler(f)
}
