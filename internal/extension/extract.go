package extension

import (
	"log/slog"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
)

// versionPattern matches `-v1.2.3.apk` and `-v1.2.3-release.apk` at the end of a path
var versionPattern = regexp.MustCompile(`-v(\d+\.\d+\.\d+)(?:-release)?\.apk$`)

// ParseVersion extracts the version encoded in an apk path.
//
// ok is false when the path does not carry a version. code is the patch component of the
// version, or -1 if it cannot be represented as an int.
func ParseVersion(path string) (name string, code int, ok bool) {
	m := versionPattern.FindStringSubmatch(path)
	if m == nil {
		return "", -1, false
	}

	name = m[1]
	code = -1

	// the pattern guarantees three parts, but keep the guard for looser patterns
	parts := strings.Split(name, ".")
	if len(parts) >= 3 {
		if c, err := strconv.Atoi(parts[2]); err == nil {
			code = c
		}
	}

	return name, code, true
}

// Extract builds the record for the apk at path.
//
// A file name without a version is not an error: the record keeps the version and code
// declared by c.
func Extract(path string, c *Config) *Record {
	r := c.newRecord()
	r.Apk = filepath.Base(path)

	name, code, ok := ParseVersion(path)
	if !ok {
		slog.Debug("No version in apk name, using defaults", "apk", r.Apk, "version", r.Version, "code", r.Code)
		return r
	}

	r.Version = name
	if code >= 0 {
		r.Code = code
	}

	return r
}
