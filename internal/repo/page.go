package repo

import (
	"bytes"
	_ "embed"
	"html/template"
	"strings"

	"github.com/ImSingee/go-ex/ee"
	"github.com/ImSingee/semver"

	"github.com/dokushohq/extensions/internal/config"
	"github.com/dokushohq/extensions/internal/extension"
)

//go:embed "templates/index.html.tmpl"
var pageTemplate string

var pageTmpl = template.Must(template.New("index.html").Parse(pageTemplate))

// Page is the landing page of the repository, one section per declared extension.
type Page struct {
	Repository config.Repository
	Extensions []*PageExtension

	// ApkBase is the apk directory relative to the page, used in download links
	ApkBase string
}

type PageExtension struct {
	Title        string
	Pkg          string
	Lang         string
	NSFW         bool
	Description  string
	Requirements []string
	Setup        []string

	// Version is the highest version found among Apks, empty if nothing is published
	Version string
	Code    int
	Apks    []string
}

// NewPage describes the configured extensions with the records published for them.
//
// Extensions sharing a package are listed once.
func NewPage(repository config.Repository, configs []*extension.Config, records []*extension.Record) *Page {
	p := &Page{Repository: repository, ApkBase: "apk"}

	byPkg := make(map[string]*PageExtension, len(configs))
	for _, c := range configs {
		if _, ok := byPkg[c.Pkg]; ok {
			continue
		}

		e := &PageExtension{
			Title:        displayName(c.Name),
			Pkg:          c.Pkg,
			Lang:         c.Lang,
			NSFW:         c.NSFW,
			Description:  c.Description,
			Requirements: c.Requirements,
			Setup:        c.Setup,
		}
		byPkg[c.Pkg] = e
		p.Extensions = append(p.Extensions, e)
	}

	latest := make(map[string]*semver.Version)
	for _, r := range records {
		e, ok := byPkg[r.Pkg]
		if !ok {
			continue
		}
		e.Apks = append(e.Apks, r.Apk)

		v, err := semver.NewVersion(r.Version)
		if err != nil {
			if e.Version == "" {
				e.Version, e.Code = r.Version, r.Code
			}
			continue
		}
		if cur := latest[r.Pkg]; cur == nil || cur.LessThan(v) {
			latest[r.Pkg] = v
			e.Version, e.Code = r.Version, r.Code
		}
	}

	return p
}

// displayName strips the client prefix every extension name carries
func displayName(name string) string {
	return strings.TrimPrefix(name, "Tachiyomi: ")
}

func (p *Page) Render() ([]byte, error) {
	var buf bytes.Buffer

	if err := pageTmpl.Execute(&buf, p); err != nil {
		return nil, ee.Wrap(err, "cannot render index.html")
	}

	return buf.Bytes(), nil
}
