package glob

import (
	"path/filepath"
	"strings"

	"github.com/gobwas/glob"
)

// Matcher is a compiled glob pattern.
//
// Patterns without a `/` are matched against the base name only, so `*.apk`
// accepts `repo/apk/a.apk`.
type Matcher struct {
	pattern string
	g       glob.Glob
}

func Compile(pattern string) (*Matcher, error) {
	g, err := glob.Compile(pattern, '/')
	if err != nil {
		return nil, err
	}

	return &Matcher{pattern: pattern, g: g}, nil
}

func (m *Matcher) Pattern() string {
	return m.pattern
}

func (m *Matcher) Match(name string) bool {
	return Match(m.pattern, m.g, name)
}

func Match(pattern string, g glob.Glob, name string) bool {
	if strings.Contains(pattern, "/") {
		return g.Match(filepath.ToSlash(name))
	} else {
		return g.Match(filepath.Base(name))
	}
}
