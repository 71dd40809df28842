package core

import (
	"math"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Severity specifies the priority of a log message. Lower values are more severe.
type Severity int

const (
	// EmergencySeverity means the system is unusable.
	EmergencySeverity Severity = iota

	// AlertSeverity means action must be taken immediately.
	AlertSeverity

	// CriticalSeverity is for critical conditions.
	CriticalSeverity

	// ErrorSeverity is for error conditions.
	ErrorSeverity

	// WarningSeverity is for warnings.
	WarningSeverity

	// NoticeSeverity is for normal but significant conditions.
	NoticeSeverity

	// InfoSeverity is for informational messages.
	InfoSeverity

	// DebugSeverity is for debugging information.
	DebugSeverity
)

// ErrInvalidLevelName is returned when a severity name is not recognised.
var ErrInvalidLevelName = errors.New("invalid level name")

var severityNames = [...]string{
	EmergencySeverity: "emergency",
	AlertSeverity:     "alert",
	CriticalSeverity:  "critical",
	ErrorSeverity:     "error",
	WarningSeverity:   "warning",
	NoticeSeverity:    "notice",
	InfoSeverity:      "info",
	DebugSeverity:     "debug",
}

// severityByName is keyed by upper-case name and includes the syslog short forms.
var severityByName = map[string]Severity{
	"EMERGENCY": EmergencySeverity,
	"EMERG":     EmergencySeverity,
	"ALERT":     AlertSeverity,
	"CRITICAL":  CriticalSeverity,
	"CRIT":      CriticalSeverity,
	"ERROR":     ErrorSeverity,
	"ERR":       ErrorSeverity,
	"WARNING":   WarningSeverity,
	"WARN":      WarningSeverity,
	"NOTICE":    NoticeSeverity,
	"INFO":      InfoSeverity,
	"DEBUG":     DebugSeverity,
}

// String returns the lower-case name of the severity. Values outside the
// scale are rendered as their number.
func (s Severity) String() string {
	if s >= EmergencySeverity && s <= DebugSeverity {
		return severityNames[s]
	}
	return "severity(" + strconv.Itoa(int(s)) + ")"
}

// Enabled reports whether a message at s passes the given threshold.
func (s Severity) Enabled(threshold Severity) bool {
	return s <= threshold
}

// ParseSeverity looks up a severity by name, ignoring case.
func ParseSeverity(name string) (Severity, error) {
	if s, ok := severityByName[strings.ToUpper(strings.TrimSpace(name))]; ok {
		return s, nil
	}
	return 0, errors.Wrapf(ErrInvalidLevelName, "%q", name)
}

// ResolveSeverity converts a configured level into a Severity. Numbers are
// used as-is and strings are looked up by name.
func ResolveSeverity(level any) (Severity, error) {
	switch v := level.(type) {
	case Severity:
		return v, nil
	case int:
		return Severity(v), nil
	case int8:
		return Severity(v), nil
	case int16:
		return Severity(v), nil
	case int32:
		return Severity(v), nil
	case int64:
		return Severity(v), nil
	case uint:
		return Severity(v), nil
	case uint8:
		return Severity(v), nil
	case uint16:
		return Severity(v), nil
	case uint32:
		return Severity(v), nil
	case uint64:
		return Severity(v), nil
	case float64:
		// Config decoders hand back whole numbers as floats.
		if v == math.Trunc(v) {
			return Severity(v), nil
		}
	case string:
		return ParseSeverity(v)
	}
	return 0, errors.Wrapf(ErrInvalidLevelName, "%v (%T)", level, level)
}
