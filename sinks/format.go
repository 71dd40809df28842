package sinks

import (
	"io"

	"github.com/willibrandon/docbase/core"
)

// timestampFormat is the syslog style stamp written at the start of each line.
const timestampFormat = "Jan 02 15:04:05"

// formatBuffer is a reusable buffer for formatting without allocations.
type formatBuffer struct {
	buf [256]byte
}

// format lays out an event as: TIMESTAMP IDENT [SEVERITY] MESSAGE
func (fb *formatBuffer) format(event *core.LogEvent, severity string) []byte {
	b := fb.buf[:0]
	b = event.Timestamp.AppendFormat(b, timestampFormat)
	b = append(b, ' ')
	b = append(b, event.Ident...)
	b = append(b, ' ', '[')
	b = append(b, severity...)
	b = append(b, ']', ' ')
	b = append(b, event.Message...)
	b = append(b, '\n')
	return b
}

// writeEvent formats and writes a single event.
func writeEvent(w io.Writer, event *core.LogEvent, severity string) error {
	var fb formatBuffer
	_, err := w.Write(fb.format(event, severity))
	return err
}
