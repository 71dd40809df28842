package configuration

import (
	"os"
	"strings"

	toml "github.com/pelletier/go-toml"
)

const envPrefix = "$"

// ValueOf returns the environment variable named by s when s starts with "$",
// otherwise s itself.
//
//	docs             -> docs
//	$DOCBASE_LOG_DIR -> /var/log/docbase
func ValueOf(s string) string {
	if strings.HasPrefix(s, envPrefix) && len(s) > 1 {
		return os.Getenv(s[1:])
	}
	return s
}

// ValuesOf applies ValueOf to a string or to each string in a slice.
func ValuesOf(v any) any {
	switch v := v.(type) {
	case string:
		return ValueOf(v)
	case []any:
		r := make([]any, len(v))
		for i := range v {
			r[i] = ValuesOf(v[i])
		}
		return r
	}
	return v
}

// expandEnv replaces every "$NAME" string in t, recursively.
func expandEnv(t *toml.Tree) {
	for _, key := range t.Keys() {
		path := []string{key}
		switch v := t.GetPath(path).(type) {
		case *toml.Tree:
			expandEnv(v)
		case []*toml.Tree:
			for _, sub := range v {
				expandEnv(sub)
			}
		default:
			t.SetPath(path, ValuesOf(v))
		}
	}
}
