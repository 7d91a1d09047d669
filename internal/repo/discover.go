package repo

import (
	"os"
	"path/filepath"

	"github.com/ImSingee/go-ex/ee"

	"github.com/dokushohq/extensions/internal/lib/glob"
)

// Discover lists the files of dir whose name matches pattern, without recursion.
//
// Paths are returned in file name order. Directories are skipped, dot files are not.
func Discover(dir string, pattern string) ([]string, error) {
	m, err := glob.Compile(pattern)
	if err != nil {
		return nil, ee.Wrapf(err, "invalid pattern %s", pattern)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, ee.Wrapf(err, "cannot read directory %s", dir)
	}

	files := make([]string, 0, len(entries))
	for _, entry := range entries {
		name := entry.Name()

		if entry.IsDir() {
			continue
		}
		if !m.Match(name) {
			continue
		}

		files = append(files, filepath.Join(dir, name))
	}

	return files, nil
}
