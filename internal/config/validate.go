package config

import (
	"errors"
	"strings"

	"github.com/ImSingee/go-ex/ee"
	"github.com/go-playground/validator/v10"

	"github.com/dokushohq/extensions/internal/lib/glob"
)

var validate = validator.New()

// Validate checks c and fills the optional extension fields with their defaults.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return ee.Wrap(ErrInvalid, formatValidationError(err))
	}

	if _, err := glob.Compile(c.Pattern); err != nil {
		return ee.Wrapf(ErrInvalid, "pattern %q: %v", c.Pattern, err)
	}

	pkgs := make(map[string]bool, len(c.Extensions))
	for _, e := range c.Extensions {
		e.ApplyDefaults()

		if _, err := glob.Compile(e.Match); err != nil {
			return ee.Wrapf(ErrInvalid, "match pattern %q of extension %s: %v", e.Match, e.Pkg, err)
		}

		// several extensions may share a pkg only when they select different files
		key := e.Pkg + "\x00" + e.Match
		if pkgs[key] {
			return ee.Wrapf(ErrInvalid, "extension %s is declared twice", e.Pkg)
		}
		pkgs[key] = true
	}

	return nil
}

func formatValidationError(err error) string {
	var errs validator.ValidationErrors
	if !errors.As(err, &errs) {
		return err.Error()
	}

	msgs := make([]string, 0, len(errs))
	for _, e := range errs {
		field := strings.TrimPrefix(e.Namespace(), "Config.")
		if e.Param() != "" {
			msgs = append(msgs, field+" failed on "+e.Tag()+"="+e.Param())
		} else {
			msgs = append(msgs, field+" failed on "+e.Tag())
		}
	}

	return strings.Join(msgs, "; ")
}
