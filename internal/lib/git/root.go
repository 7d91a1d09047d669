package git

import (
	"path/filepath"

	"github.com/ImSingee/go-ex/ee"
	"github.com/go-git/go-git/v5"
)

var ErrNotRepository = git.ErrRepositoryNotExists

// Root returns the top level directory of the work tree containing dir.
func Root(dir string) (string, error) {
	if dir == "" {
		dir = "."
	}

	repo, err := git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return "", ee.Wrapf(err, "cannot open git repository at %s", dir)
	}

	wt, err := repo.Worktree()
	if err != nil {
		return "", ee.Wrap(err, "cannot get git work tree")
	}

	root, err := filepath.Abs(wt.Filesystem.Root())
	if err != nil {
		return "", ee.Wrapf(err, "cannot get absolute path of %s", wt.Filesystem.Root())
	}

	return root, nil
}
