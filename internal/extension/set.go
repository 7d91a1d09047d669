package extension

import (
	"log/slog"

	"github.com/ImSingee/go-ex/ee"
	"github.com/ImSingee/go-ex/mr"

	"github.com/dokushohq/extensions/internal/lib/glob"
)

// Set binds apk files to the extensions declared for a repository.
type Set struct {
	configs  []*Config
	matchers []*glob.Matcher
}

// NewSet compiles the match pattern of every config. configs must not be empty.
func NewSet(configs []*Config) (*Set, error) {
	if len(configs) == 0 {
		return nil, ee.New("no extension declared")
	}

	s := &Set{
		configs:  configs,
		matchers: make([]*glob.Matcher, 0, len(configs)),
	}

	for _, c := range configs {
		if c == nil {
			return nil, ee.New("nil extension config")
		}
		c.ApplyDefaults()

		m, err := glob.Compile(c.Match)
		if err != nil {
			return nil, ee.Wrapf(err, "invalid match pattern of extension %s", c.Pkg)
		}
		s.matchers = append(s.matchers, m)
	}

	return s, nil
}

func (s *Set) Configs() []*Config {
	return s.configs
}

// Patterns returns the match pattern of every config, in declaration order.
func (s *Set) Patterns() []string {
	return mr.Map(s.matchers, func(m *glob.Matcher, _index int) string {
		return m.Pattern()
	})
}

// For returns the first config whose pattern accepts path, or the first config if none does.
func (s *Set) For(path string) *Config {
	for i, m := range s.matchers {
		if m.Match(path) {
			return s.configs[i]
		}
	}

	slog.Debug("No extension matches, using the first one", "path", path, "patterns", s.Patterns())
	return s.configs[0]
}

func (s *Set) Extract(path string) *Record {
	return Extract(path, s.For(path))
}

// ExtractAll returns one record per path, in the order of paths.
func (s *Set) ExtractAll(paths []string) []*Record {
	return mr.Map(paths, func(path string, _index int) *Record {
		return s.Extract(path)
	})
}
