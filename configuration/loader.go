package configuration

import (
	"io"
	"os"
	"path/filepath"

	"github.com/mitchellh/go-homedir"
	toml "github.com/pelletier/go-toml"
	"github.com/pkg/errors"
	"github.com/willibrandon/docbase/core"
)

// EnvConfigPath overrides the template location returned by DefaultPath.
const EnvConfigPath = "DOCBASE_CONFIG"

// Loader produces a configuration. Implementations are called at most once
// per facility.
type Loader interface {
	Load() (*Configuration, error)
}

// LoaderFunc adapts a function to the Loader interface.
type LoaderFunc func() (*Configuration, error)

// Load implements Loader.
func (f LoaderFunc) Load() (*Configuration, error) {
	return f()
}

// FileLoader reads the configuration template from Path.
type FileLoader struct {
	Path string
}

// Load implements Loader.
func (l FileLoader) Load() (*Configuration, error) {
	file, err := os.Open(l.Path)
	if err != nil {
		return nil, errors.Wrap(err, "config file cannot be opened")
	}
	defer file.Close()

	c, err := Load(file, filepath.Dir(l.Path))
	if err != nil {
		return nil, errors.Wrapf(err, "loading %s", l.Path)
	}
	c.Path = l.Path
	return c, nil
}

// DefaultPath returns the fixed template location: $DOCBASE_CONFIG when set,
// otherwise config/docbase.toml next to the running executable.
func DefaultPath() string {
	if p := os.Getenv(EnvConfigPath); p != "" {
		return p
	}
	exe, err := os.Executable()
	if err != nil {
		return filepath.Join("config", "docbase.toml")
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Join(filepath.Dir(exe), "config", "docbase.toml")
}

// DefaultLoader reads the template at DefaultPath.
func DefaultLoader() Loader {
	return FileLoader{Path: DefaultPath()}
}

// Load parses a TOML template. Relative log paths are resolved against
// baseDir unless it is empty.
func Load(r io.Reader, baseDir string) (*Configuration, error) {
	t, err := toml.LoadReader(r)
	if err != nil {
		return nil, errors.Wrap(err, "error loading config tree")
	}
	expandEnv(t)

	c := &Configuration{tree: t}
	if sub, ok := t.Get("logging").(*toml.Tree); ok {
		if err := sub.Unmarshal(&c.Logging); err != nil {
			return nil, errors.Wrap(err, "cannot unmarshal logging section")
		}
		c.Logging.Level = sub.Get("level")
	}

	applyDefaults(&c.Logging)

	if c.Logging.DefaultFile, err = resolvePath(c.Logging.DefaultFile, baseDir); err != nil {
		return nil, err
	}
	if c.Logging.ErrorFile, err = resolvePath(c.Logging.ErrorFile, baseDir); err != nil {
		return nil, err
	}

	return c, nil
}

// LoadFile is shorthand for FileLoader{Path: path}.Load().
func LoadFile(path string) (*Configuration, error) {
	return FileLoader{Path: path}.Load()
}

func applyDefaults(l *Logging) {
	if l.Level == nil || l.Level == "" {
		l.Level = DefaultLevel
	}
	if l.Ident == "" {
		l.Ident = DefaultIdent
	}
	if l.DefaultFile == "" {
		l.DefaultFile = DefaultLogFile
	}
	if l.ErrorFile == "" {
		l.ErrorFile = DefaultErrorLogFile
	}
}

func resolvePath(p, baseDir string) (string, error) {
	if core.IsStreamDestination(p) {
		return p, nil
	}
	expanded, err := homedir.Expand(p)
	if err != nil {
		return "", errors.Wrapf(err, "expanding %s", p)
	}
	if baseDir != "" && !filepath.IsAbs(expanded) {
		expanded = filepath.Join(baseDir, expanded)
	}
	return expanded, nil
}
