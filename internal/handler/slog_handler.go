package handler

import (
	"context"
	"log/slog"
	"strings"

	"github.com/willibrandon/docbase/core"
)

// SlogHandler implements slog.Handler backed by a docbase facility.
// Attributes are appended to the message as key=value pairs.
type SlogHandler struct {
	logger Logger
	attrs  []slog.Attr
	groups []string
}

// NewSlogHandler creates a new slog.Handler that writes to logger.
func NewSlogHandler(logger Logger) *SlogHandler {
	return &SlogHandler{
		logger: logger,
	}
}

// Enabled reports whether the handler handles records at the given level.
func (h *SlogHandler) Enabled(_ context.Context, level slog.Level) bool {
	return enabled(h.logger, SlogLevelToSeverity(level))
}

// Handle writes the record.
func (h *SlogHandler) Handle(_ context.Context, record slog.Record) error {
	var b strings.Builder
	b.WriteString(record.Message)

	for _, attr := range h.attrs {
		h.appendAttr(&b, "", attr)
	}
	prefix := h.groupPrefix()
	record.Attrs(func(attr slog.Attr) bool {
		h.appendAttr(&b, prefix, attr)
		return true
	})

	return write(h.logger, "slog", b.String(), SlogLevelToSeverity(record.Level))
}

// WithAttrs returns a new Handler whose attributes consist of
// both the receiver's attributes and the arguments.
func (h *SlogHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	prefix := h.groupPrefix()
	newAttrs := make([]slog.Attr, len(h.attrs), len(h.attrs)+len(attrs))
	copy(newAttrs, h.attrs)
	for _, attr := range attrs {
		attr.Key = prefix + attr.Key
		newAttrs = append(newAttrs, attr)
	}
	return &SlogHandler{
		logger: h.logger,
		attrs:  newAttrs,
		groups: h.groups,
	}
}

// WithGroup returns a new Handler with the given group appended to
// the receiver's existing groups.
func (h *SlogHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	newGroups := make([]string, len(h.groups)+1)
	copy(newGroups, h.groups)
	newGroups[len(h.groups)] = name
	return &SlogHandler{
		logger: h.logger,
		attrs:  h.attrs,
		groups: newGroups,
	}
}

func (h *SlogHandler) groupPrefix() string {
	if len(h.groups) == 0 {
		return ""
	}
	return strings.Join(h.groups, ".") + "."
}

func (h *SlogHandler) appendAttr(b *strings.Builder, prefix string, attr slog.Attr) {
	value := attr.Value.Resolve()
	if value.Kind() == slog.KindGroup {
		group := prefix
		if attr.Key != "" {
			group += attr.Key + "."
		}
		for _, a := range value.Group() {
			h.appendAttr(b, group, a)
		}
		return
	}
	if attr.Equal(slog.Attr{}) {
		return
	}
	appendPair(b, prefix+attr.Key, value.Any())
}

// SlogLevelToSeverity converts slog levels to severities. Levels between
// Info and Warn map to NOTICE and levels above Error to CRITICAL.
func SlogLevelToSeverity(level slog.Level) core.Severity {
	switch {
	case level < slog.LevelInfo:
		return core.DebugSeverity
	case level == slog.LevelInfo:
		return core.InfoSeverity
	case level < slog.LevelWarn:
		return core.NoticeSeverity
	case level < slog.LevelError:
		return core.WarningSeverity
	case level == slog.LevelError:
		return core.ErrorSeverity
	default:
		return core.CriticalSeverity
	}
}
