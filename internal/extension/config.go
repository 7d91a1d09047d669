package extension

import (
	"github.com/ImSingee/go-ex/mr"
)

const (
	DefaultLang      = "all"
	DefaultMatch     = "*.apk"
	DefaultCode      = 1
	DefaultVersionID = 1
)

// Config declares the identity of one extension hosted in the repository.
//
// Every record extracted for the extension starts from these values, the apk file name
// may then override Version and Code.
type Config struct {
	Name    string `json:"name" yaml:"name" validate:"required"`
	Pkg     string `json:"pkg" yaml:"pkg" validate:"required"`
	Lang    string `json:"lang,omitempty" yaml:"lang,omitempty"`
	Version string `json:"version" yaml:"version" validate:"required,semver"`
	Code    *int   `json:"code,omitempty" yaml:"code,omitempty" validate:"omitempty,min=0"`
	NSFW    bool   `json:"nsfw,omitempty" yaml:"nsfw,omitempty"`

	// Match is a glob on the apk base name selecting the files of this extension
	Match string `json:"match,omitempty" yaml:"match,omitempty"`

	// landing page copy
	Description  string   `json:"description,omitempty" yaml:"description,omitempty"`
	Requirements []string `json:"requirements,omitempty" yaml:"requirements,omitempty"`
	Setup        []string `json:"setup,omitempty" yaml:"setup,omitempty"`

	Sources []*SourceConfig `json:"sources" yaml:"sources" validate:"required,min=1,dive,required"`
}

type SourceConfig struct {
	Name string `json:"name" yaml:"name" validate:"required"`
	Lang string `json:"lang,omitempty" yaml:"lang,omitempty"`

	// ID is derived from name, lang and version id when empty
	ID        string `json:"id,omitempty" yaml:"id,omitempty" validate:"omitempty,numeric"`
	BaseURL   string `json:"baseUrl,omitempty" yaml:"baseUrl,omitempty"`
	VersionID int    `json:"versionId,omitempty" yaml:"versionId,omitempty" validate:"min=0"`
}

// ApplyDefaults fills every optional field left empty.
func (c *Config) ApplyDefaults() {
	if c.Lang == "" {
		c.Lang = DefaultLang
	}
	if c.Match == "" {
		c.Match = DefaultMatch
	}
	if c.Code == nil {
		code := DefaultCode
		c.Code = &code
	}

	for _, s := range c.Sources {
		if s == nil {
			continue
		}
		if s.Lang == "" {
			s.Lang = c.Lang
		}
		if s.VersionID == 0 {
			s.VersionID = DefaultVersionID
		}
		if s.ID == "" {
			s.ID = DeriveSourceID(s.Name, s.Lang, s.VersionID)
		}
	}
}

func (c *Config) defaultCode() int {
	if c.Code == nil {
		return DefaultCode
	}
	return *c.Code
}

func (c *Config) nsfw() int {
	if c.NSFW {
		return 1
	}
	return 0
}

// newRecord returns a record holding only the declared defaults.
//
// Sources are copied so records never share memory with each other or with c.
func (c *Config) newRecord() *Record {
	return &Record{
		Name:    c.Name,
		Pkg:     c.Pkg,
		Lang:    c.Lang,
		Code:    c.defaultCode(),
		Version: c.Version,
		NSFW:    c.nsfw(),
		Sources: mr.Map(c.Sources, func(s *SourceConfig, _index int) *Source {
			return &Source{
				Name:      s.Name,
				Lang:      s.Lang,
				ID:        s.ID,
				BaseURL:   s.BaseURL,
				VersionID: s.VersionID,
			}
		}),
	}
}
