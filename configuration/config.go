// Package configuration loads the toolchain's TOML configuration template.
//
// Only the [logging] section is interpreted here. Other sections are kept in
// the parsed tree so each toolchain component can decode its own part:
//
//	var opts struct {
//	    OutputDir string `toml:"output_dir"`
//	}
//	err := cfg.Unmarshal("generator", &opts)
package configuration

import (
	toml "github.com/pelletier/go-toml"
	"github.com/pkg/errors"
)

// Defaults applied to an absent or empty [logging] section.
const (
	DefaultLevel        = "info"
	DefaultIdent        = "docbase"
	DefaultLogFile      = "log/docbase.log"
	DefaultErrorLogFile = "log/docbase-error.log"
)

// Logging is the [logging] section.
type Logging struct {
	// Level is a severity name or number. It is read from the tree directly
	// because TOML allows either type.
	Level any `toml:"-"`

	// Ident is written on every log line.
	Ident string `toml:"ident"`

	// DefaultFile receives every message that is not debug output.
	DefaultFile string `toml:"default_file"`

	// ErrorFile receives debug output.
	ErrorFile string `toml:"error_file"`
}

// Configuration is the loaded template. It is never modified after Load.
type Configuration struct {
	Logging Logging

	// Path is the file the configuration was read from, if any.
	Path string

	tree *toml.Tree
}

// Has reports whether key (a dotted path) is present.
func (c *Configuration) Has(key string) bool {
	return c.tree != nil && c.tree.Has(key)
}

// Get returns the value at key (a dotted path), or nil.
func (c *Configuration) Get(key string) any {
	if c.tree == nil {
		return nil
	}
	return c.tree.Get(key)
}

// Unmarshal decodes the named section into v. A missing section leaves v
// untouched.
func (c *Configuration) Unmarshal(section string, v any) error {
	if c.tree == nil {
		return nil
	}
	sub, ok := c.tree.Get(section).(*toml.Tree)
	if !ok {
		return nil
	}
	if err := sub.Unmarshal(v); err != nil {
		return errors.Wrapf(err, "cannot unmarshal config section %q", section)
	}
	return nil
}

// String renders the configuration back to TOML.
func (c *Configuration) String() string {
	if c.tree == nil {
		return ""
	}
	s, _ := c.tree.ToTomlString()
	return s
}
