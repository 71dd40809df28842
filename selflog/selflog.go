// Package selflog reports failures inside docbase itself: sink writes that
// fail, files that cannot be closed, bridges whose facility refused a message.
// None of these can be logged through the facility that produced them, so
// they are dropped unless selflog has somewhere to send them.
//
//	selflog.Enable(os.Stderr)
//	defer selflog.Disable()
//
// Lines look like
//
//	2026-03-02T15:30:45Z [file] write to log/docbase.log failed: disk full
//
// Setting DOCBASE_SELFLOG to "stderr", "stdout" or a file path enables
// selflog when the package is loaded.
package selflog

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/mitchellh/go-homedir"
	"github.com/pkg/errors"
)

// EnvVar names the environment variable read by EnableFromEnv.
const EnvVar = "DOCBASE_SELFLOG"

// output is where diagnostics go; exactly one field is set.
type output struct {
	w  io.Writer
	fn func(string)
}

var current atomic.Pointer[output]

// Enable sends diagnostics to w. Wrap w with Sync unless it is already safe
// for concurrent writes. A nil w is ignored.
func Enable(w io.Writer) {
	if w != nil {
		current.Store(&output{w: w})
	}
}

// EnableFunc sends each diagnostic line to fn. A nil fn is ignored.
func EnableFunc(fn func(string)) {
	if fn != nil {
		current.Store(&output{fn: fn})
	}
}

// EnableFromEnv enables selflog as described by the DOCBASE_SELFLOG
// variable. An unset variable leaves selflog as it is.
func EnableFromEnv() error {
	dest := strings.TrimSpace(os.Getenv(EnvVar))
	switch strings.ToLower(dest) {
	case "":
		return nil
	case "stderr":
		Enable(os.Stderr)
		return nil
	case "stdout":
		Enable(os.Stdout)
		return nil
	}

	path, err := homedir.Expand(dest)
	if err != nil {
		return errors.Wrapf(err, "%s=%s", EnvVar, dest)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return errors.Wrapf(err, "%s=%s", EnvVar, dest)
	}
	Enable(Sync(f))
	return nil
}

// Disable drops diagnostics again.
func Disable() {
	current.Store(nil)
}

// IsEnabled reports whether diagnostics are being kept.
func IsEnabled() bool {
	return current.Load() != nil
}

// Printf records a diagnostic. By convention the format starts with the
// reporting component in brackets, e.g. "[file] write failed: %v".
func Printf(format string, args ...any) {
	out := current.Load()
	if out == nil {
		return
	}

	line := time.Now().UTC().Format(time.RFC3339) + " " + fmt.Sprintf(format, args...)
	if out.fn != nil {
		out.fn(line)
		return
	}
	fmt.Fprintln(out.w, line)
}

type syncWriter struct {
	mu sync.Mutex
	w  io.Writer
}

func (s *syncWriter) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.w.Write(p)
}

// Sync serialises writes to w.
func Sync(w io.Writer) io.Writer {
	return &syncWriter{w: w}
}

func init() {
	if err := EnableFromEnv(); err != nil {
		fmt.Fprintln(os.Stderr, "selflog:", err)
	}
}
