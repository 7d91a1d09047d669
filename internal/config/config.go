package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/ImSingee/go-ex/ee"
	"github.com/ImSingee/go-ex/exjson"
	"github.com/ysmood/gson"
	"gopkg.in/yaml.v3"

	"github.com/dokushohq/extensions/internal/extension"
)

// Debug enables debug output, set by the --debug flag
var Debug bool

var ConfigFileNames = []string{
	".repoindexrc",
	"repoindex.json",
	"repoindex.yaml",
	"repoindex.yml",
}

// ConfigEnv names a config file and skips the search in the working directory
const ConfigEnv = "REPOINDEX_CONFIG"

type Config struct {
	// RepoDir receives the generated files
	RepoDir string `json:"repoDir" validate:"required"`
	// ApkDir holds the packages, relative paths are resolved against RepoDir
	ApkDir  string `json:"apkDir" validate:"required"`
	Pattern string `json:"pattern" validate:"required"`

	Repository Repository          `json:"repository"`
	Extensions []*extension.Config `json:"extensions" validate:"required,min=1,dive,required"`
}

type Repository struct {
	Name    string `json:"name" validate:"required"`
	Website string `json:"website" validate:"required,url"`

	// URL is the address users add to their client
	URL         string `json:"url,omitempty" validate:"omitempty,url"`
	Description string `json:"description,omitempty"`
}

// ApkPath returns the directory scanned for packages.
func (c *Config) ApkPath() string {
	if filepath.IsAbs(c.ApkDir) {
		return c.ApkDir
	}
	return filepath.Join(c.RepoDir, c.ApkDir)
}

// Find returns the config file to use in dir.
//
// The ConfigEnv variable takes precedence over the search. ErrNotExist is returned
// if there is no config file.
func Find(dir string) (string, error) {
	if f := os.Getenv(ConfigEnv); f != "" {
		return f, nil
	}

	for _, name := range ConfigFileNames {
		f := filepath.Join(dir, name)
		if _, err := os.Stat(f); err == nil {
			return f, nil
		} else if !os.IsNotExist(err) {
			return "", ee.Wrapf(err, "cannot stat %s", f)
		}
	}

	return "", ErrNotExist
}

// Get loads the config file (or the one found in the working directory if filename is empty),
// falling back to Default when no config file exists.
//
// The returned filename is empty when the default config is used.
func Get(filename string) (*Config, string, error) {
	if filename == "" {
		f, err := Find(".")
		if err != nil {
			if IsNotExist(err) {
				c := Default()
				return c, "", c.Validate()
			}
			return nil, "", err
		}
		filename = f
	}

	c, err := Load(filename)
	if err != nil {
		return nil, filename, err
	}

	return c, filename, nil
}

// Load reads filename on top of Default.
//
// Top level keys replace the defaults, `extensions` replaces the whole extension list.
func Load(filename string) (*Config, error) {
	m, err := Read(filename)
	if err != nil {
		return nil, ee.Wrapf(err, "cannot read config file %s", filename)
	}

	c := Default()
	if err := c.patch(m); err != nil {
		return nil, ee.Wrapf(err, "invalid config file %s", filename)
	}

	if err := c.Validate(); err != nil {
		return nil, ee.Wrapf(err, "invalid config file %s", filename)
	}

	return c, nil
}

// Read parses a JSON or YAML config file, chosen by its extension.
func Read(filename string) (map[string]gson.JSON, error) {
	var obj map[string]any

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".yaml", ".yml":
		data, err := os.ReadFile(filename)
		if err != nil {
			return nil, err
		}
		if err := yaml.Unmarshal(data, &obj); err != nil {
			return nil, ee.Wrap(err, "invalid yaml")
		}
	default:
		if err := exjson.Read(filename, &obj); err != nil {
			return nil, err
		}
	}

	return gson.New(obj).Map(), nil
}

func (c *Config) patch(m map[string]gson.JSON) error {
	var err error

	if c.RepoDir, err = stringKey(m, "repoDir", c.RepoDir); err != nil {
		return err
	}
	if c.ApkDir, err = stringKey(m, "apkDir", c.ApkDir); err != nil {
		return err
	}
	if c.Pattern, err = stringKey(m, "pattern", c.Pattern); err != nil {
		return err
	}

	if repository, ok := m["repository"]; ok {
		r, ok := repository.Val().(map[string]any)
		if !ok {
			return ee.New("`repository` must be an object")
		}
		rm := gson.New(r).Map()

		if c.Repository.Name, err = stringKey(rm, "name", c.Repository.Name); err != nil {
			return ee.Wrap(err, "invalid `repository`")
		}
		if c.Repository.Website, err = stringKey(rm, "website", c.Repository.Website); err != nil {
			return ee.Wrap(err, "invalid `repository`")
		}
		if c.Repository.URL, err = stringKey(rm, "url", c.Repository.URL); err != nil {
			return ee.Wrap(err, "invalid `repository`")
		}
		if c.Repository.Description, err = stringKey(rm, "description", c.Repository.Description); err != nil {
			return ee.Wrap(err, "invalid `repository`")
		}
	}

	if extensions, ok := m["extensions"]; ok {
		if _, ok := extensions.Val().([]any); !ok {
			return ee.New("`extensions` must be a list")
		}

		// round trip through json to get the typed form
		data, err := json.Marshal(extensions.Val())
		if err != nil {
			return ee.Wrap(err, "cannot encode `extensions`")
		}

		var parsed []*extension.Config
		if err := json.Unmarshal(data, &parsed); err != nil {
			return ee.Wrap(err, "invalid `extensions`")
		}
		c.Extensions = parsed
	}

	return nil
}

func stringKey(m map[string]gson.JSON, key string, def string) (string, error) {
	v, ok := m[key]
	if !ok || v.Val() == nil {
		return def, nil
	}

	s, ok := v.Val().(string)
	if !ok {
		return "", ee.Errorf("`%s` must be a string", key)
	}

	return s, nil
}
