package repo

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dokushohq/extensions/internal/config"
)

// newRepo creates repo/apk in a temp dir with the given empty files and returns
// a default config pointing at it
func newRepo(t *testing.T, apks ...string) *config.Config {
	t.Helper()

	root := t.TempDir()
	c := config.Default()
	c.RepoDir = filepath.Join(root, "repo")

	require.NoError(t, os.MkdirAll(c.ApkPath(), 0755))
	for _, apk := range apks {
		require.NoError(t, os.WriteFile(filepath.Join(c.ApkPath(), apk), nil, 0644))
	}

	return c
}

func readFile(t *testing.T, name string) string {
	t.Helper()

	data, err := os.ReadFile(name)
	require.NoError(t, err)
	return string(data)
}
