package core

import (
	"errors"
	"testing"
)

func TestParseSeverity(t *testing.T) {
	testCases := []struct {
		name     string
		expected Severity
	}{
		{"emergency", EmergencySeverity},
		{"EMERG", EmergencySeverity},
		{"Alert", AlertSeverity},
		{"critical", CriticalSeverity},
		{"crit", CriticalSeverity},
		{"ERROR", ErrorSeverity},
		{"err", ErrorSeverity},
		{"Warning", WarningSeverity},
		{"warn", WarningSeverity},
		{"notice", NoticeSeverity},
		{"iNfO", InfoSeverity},
		{" debug ", DebugSeverity},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s, err := ParseSeverity(tc.name)
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if s != tc.expected {
				t.Errorf("Expected %v, got %v", tc.expected, s)
			}
		})
	}
}

func TestParseSeverityInvalid(t *testing.T) {
	for _, name := range []string{"", "not-a-level", "verbose", "7", "PEAR_LOG_INFO"} {
		_, err := ParseSeverity(name)
		if !errors.Is(err, ErrInvalidLevelName) {
			t.Errorf("ParseSeverity(%q): expected ErrInvalidLevelName, got %v", name, err)
		}
	}
}

func TestResolveSeverity(t *testing.T) {
	testCases := []struct {
		name     string
		level    any
		expected Severity
	}{
		{"severity", WarningSeverity, WarningSeverity},
		{"int", 3, ErrorSeverity},
		{"int64 from toml", int64(7), DebugSeverity},
		{"uint8", uint8(5), NoticeSeverity},
		{"whole float", float64(6), InfoSeverity},
		{"out of range number", 42, Severity(42)},
		{"name", "Critical", CriticalSeverity},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s, err := ResolveSeverity(tc.level)
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if s != tc.expected {
				t.Errorf("Expected %v, got %v", tc.expected, s)
			}
		})
	}
}

func TestResolveSeverityInvalid(t *testing.T) {
	for _, level := range []any{nil, "nope", 2.5, true, []string{"info"}} {
		if _, err := ResolveSeverity(level); !errors.Is(err, ErrInvalidLevelName) {
			t.Errorf("ResolveSeverity(%#v): expected ErrInvalidLevelName, got %v", level, err)
		}
	}
}

func TestSeverityOrdering(t *testing.T) {
	ordered := []Severity{
		EmergencySeverity, AlertSeverity, CriticalSeverity, ErrorSeverity,
		WarningSeverity, NoticeSeverity, InfoSeverity, DebugSeverity,
	}
	for i, s := range ordered {
		if int(s) != i {
			t.Errorf("Expected %v to be %d, got %d", s, i, int(s))
		}
	}
}

func TestSeverityEnabled(t *testing.T) {
	testCases := []struct {
		severity  Severity
		threshold Severity
		expected  bool
	}{
		{EmergencySeverity, EmergencySeverity, true},
		{ErrorSeverity, WarningSeverity, true},
		{WarningSeverity, WarningSeverity, true},
		{NoticeSeverity, WarningSeverity, false},
		{DebugSeverity, InfoSeverity, false},
		{DebugSeverity, DebugSeverity, true},
		{EmergencySeverity, Severity(-1), false},
	}

	for _, tc := range testCases {
		if got := tc.severity.Enabled(tc.threshold); got != tc.expected {
			t.Errorf("%v.Enabled(%v): expected %v, got %v", tc.severity, tc.threshold, tc.expected, got)
		}
	}
}

func TestSeverityString(t *testing.T) {
	if InfoSeverity.String() != "info" {
		t.Errorf("Wrong info string %q", InfoSeverity.String())
	}
	if EmergencySeverity.String() != "emergency" {
		t.Errorf("Wrong emergency string %q", EmergencySeverity.String())
	}
	if Severity(12).String() != "severity(12)" {
		t.Errorf("Wrong out of range string %q", Severity(12).String())
	}

	// Every name round trips through ParseSeverity.
	for s := EmergencySeverity; s <= DebugSeverity; s++ {
		parsed, err := ParseSeverity(s.String())
		if err != nil || parsed != s {
			t.Errorf("Round trip of %v gave %v, %v", s, parsed, err)
		}
	}
}

func TestIsStreamDestination(t *testing.T) {
	if !IsStreamDestination(StdoutDestination) || !IsStreamDestination(StderrDestination) {
		t.Error("Sentinels should be stream destinations")
	}
	if IsStreamDestination("log/stdout") {
		t.Error("A file path is not a stream destination")
	}
}
