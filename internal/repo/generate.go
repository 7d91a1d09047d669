package repo

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/ImSingee/go-ex/ee"

	"github.com/dokushohq/extensions/internal/config"
	"github.com/dokushohq/extensions/internal/extension"
)

// Result is what a Generate run produced.
type Result struct {
	Records    []*extension.Record
	Files      []string
	Collisions []*extension.Collision
	Inversions []*extension.Inversion
}

// Summary is the line printed once the repository files are written.
func (r *Result) Summary() string {
	return fmt.Sprintf("Generated index with %d extension(s)", len(r.Records))
}

// Generate rebuilds the repository files described by c.
//
// Discovery, extraction and writing run one after another, the first error aborts the run.
// Version code collisions are logged, never corrected.
func Generate(c *config.Config) (*Result, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	apkDir := c.ApkPath()

	files, err := Discover(apkDir, c.Pattern)
	if err != nil {
		return nil, ee.Wrap(err, "cannot discover packages")
	}
	slog.Debug("Discovered packages", "dir", apkDir, "pattern", c.Pattern, "count", len(files))

	set, err := extension.NewSet(c.Extensions)
	if err != nil {
		return nil, err
	}

	records := set.ExtractAll(files)
	for _, r := range records {
		slog.Debug("Extracted record", "apk", r.Apk, "pkg", r.Pkg, "version", r.Version, "code", r.Code)
	}

	result := &Result{
		Records:    records,
		Collisions: extension.FindCodeCollisions(records),
		Inversions: extension.FindCodeInversions(records),
	}
	for _, col := range result.Collisions {
		slog.Warn("Version code shared by different versions", "pkg", col.Pkg, "code", col.Code, "versions", col.Versions, "apks", col.Apks)
	}
	for _, inv := range result.Inversions {
		slog.Warn("Newer version has a lower version code", "pkg", inv.Pkg, "older", inv.Older, "olderCode", inv.OlderCode, "newer", inv.Newer, "newerCode", inv.NewerCode)
	}

	page := NewPage(c.Repository, set.Configs(), records)
	page.ApkBase = apkBase(c.RepoDir, apkDir)

	written, err := NewWriter(c.RepoDir).Write(records, NewDescriptor(c.Repository), page)
	result.Files = written
	if err != nil {
		return result, err
	}

	return result, nil
}

// apkBase returns the apk directory as a link relative to the repo dir
func apkBase(repoDir, apkDir string) string {
	rel, err := filepath.Rel(repoDir, apkDir)
	if err != nil {
		return filepath.ToSlash(apkDir)
	}
	return filepath.ToSlash(rel)
}
