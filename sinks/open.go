package sinks

import (
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/willibrandon/docbase/core"
)

// Opener constructs a sink for a destination.
type Opener func(destination string) (core.Sink, error)

// Open returns a console sink for the core.StdoutDestination and
// core.StderrDestination sentinels and an append-mode file sink for anything
// else.
func Open(destination string) (core.Sink, error) {
	switch strings.ToLower(strings.TrimSpace(destination)) {
	case "":
		return nil, errors.New("empty log destination")
	case core.StdoutDestination:
		return NewConsoleSink(), nil
	case core.StderrDestination:
		return NewConsoleSinkWithWriter(os.Stderr), nil
	}

	fs, err := NewFileSink(destination)
	if err != nil {
		return nil, errors.Wrapf(err, "opening %s", destination)
	}
	return fs, nil
}
