package docbase

import "github.com/willibrandon/docbase/core"

// Emergency writes an emergency-level message.
func (f *Facility) Emergency(message string) error {
	return f.Log(message, core.EmergencySeverity)
}

// Alert writes an alert-level message.
func (f *Facility) Alert(message string) error {
	return f.Log(message, core.AlertSeverity)
}

// Critical writes a critical-level message.
func (f *Facility) Critical(message string) error {
	return f.Log(message, core.CriticalSeverity)
}

// Error writes an error-level message.
func (f *Facility) Error(message string) error {
	return f.Log(message, core.ErrorSeverity)
}

// Warning writes a warning-level message.
func (f *Facility) Warning(message string) error {
	return f.Log(message, core.WarningSeverity)
}

// Notice writes a notice-level message.
func (f *Facility) Notice(message string) error {
	return f.Log(message, core.NoticeSeverity)
}

// Info writes an info-level message. INFO is the priority callers use when
// they have no reason to pick another.
func (f *Facility) Info(message string) error {
	return f.Log(message, core.InfoSeverity)
}
