package sinks

import (
	"os"
	"path/filepath"
	"sync"

	"github.com/pkg/errors"
	"github.com/willibrandon/docbase/core"
	"github.com/willibrandon/docbase/selflog"
)

// FileSink appends log events to a file.
type FileSink struct {
	threshold
	path   string
	file   *os.File
	mu     sync.Mutex
	isOpen bool
}

// NewFileSink opens path for appending, creating it and its directory if needed.
func NewFileSink(path string) (*FileSink, error) {
	fs := &FileSink{path: path}
	if err := fs.open(); err != nil {
		return nil, err
	}
	return fs, nil
}

// Path returns the file the sink writes to.
func (fs *FileSink) Path() string {
	return fs.path
}

// Emit writes the event to the file.
func (fs *FileSink) Emit(event *core.LogEvent) {
	if !fs.accepts(event.Severity) {
		return
	}

	fs.mu.Lock()
	defer fs.mu.Unlock()

	if !fs.isOpen {
		return
	}

	if err := writeEvent(fs.file, event, event.Severity.String()); err != nil {
		selflog.Printf("[file] write to %s failed: %v", fs.path, err)
	}
}

// Close flushes and closes the file.
func (fs *FileSink) Close() error {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	if !fs.isOpen {
		return nil
	}

	fs.isOpen = false

	if err := fs.file.Sync(); err != nil {
		selflog.Printf("[file] sync of %s failed: %v", fs.path, err)
	}

	if err := fs.file.Close(); err != nil {
		return errors.Wrap(err, "failed to close log file")
	}

	return nil
}

// open creates or opens the log file.
func (fs *FileSink) open() error {
	dir := filepath.Dir(fs.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return errors.Wrap(err, "failed to create log directory")
	}

	file, err := os.OpenFile(fs.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return errors.Wrap(err, "failed to open log file")
	}

	fs.file = file
	fs.isOpen = true

	return nil
}
