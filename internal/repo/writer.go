package repo

import (
	"os"
	"path/filepath"

	"github.com/ImSingee/go-ex/ee"

	"github.com/dokushohq/extensions/internal/extension"
)

const (
	IndexFile    = "index.json"
	MinIndexFile = "index.min.json"
	RepoFile     = "repo.json"
	HTMLFile     = "index.html"
)

// Writer writes the repository files into Dir.
//
// Every file is truncated and rewritten. Files are written one after another and the
// first failure stops the run, files written before it are kept.
type Writer struct {
	Dir  string
	Perm os.FileMode
}

func NewWriter(dir string) *Writer {
	return &Writer{Dir: dir, Perm: 0644}
}

// Write writes the four repository files and returns their paths.
func (w *Writer) Write(records []*extension.Record, descriptor *Descriptor, page *Page) ([]string, error) {
	if records == nil {
		records = []*extension.Record{}
	}

	index, err := EncodeIndent(records)
	if err != nil {
		return nil, ee.Wrap(err, "cannot encode index")
	}
	minIndex, err := EncodeCompact(records)
	if err != nil {
		return nil, ee.Wrap(err, "cannot encode minified index")
	}
	repo, err := EncodeIndent(descriptor)
	if err != nil {
		return nil, ee.Wrap(err, "cannot encode repository descriptor")
	}
	html, err := page.Render()
	if err != nil {
		return nil, err
	}

	files := []struct {
		name string
		data []byte
	}{
		{IndexFile, index},
		{MinIndexFile, minIndex},
		{RepoFile, repo},
		{HTMLFile, html},
	}

	written := make([]string, 0, len(files))
	for _, f := range files {
		p, err := w.writeFile(f.name, f.data)
		if err != nil {
			return written, err
		}
		written = append(written, p)
	}

	return written, nil
}

func (w *Writer) writeFile(name string, data []byte) (string, error) {
	p := filepath.Join(w.Dir, name)

	perm := w.Perm
	if perm == 0 {
		perm = 0644
	}

	if err := os.WriteFile(p, data, perm); err != nil {
		return "", ee.Wrapf(err, "cannot write %s", p)
	}

	return p, nil
}
