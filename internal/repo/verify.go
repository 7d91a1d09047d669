package repo

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"reflect"

	"github.com/ImSingee/go-ex/ee"
	"github.com/ysmood/gson"
)

// VerifyReport lists what is wrong with the files of a repository.
type VerifyReport struct {
	Records  int
	Problems []string
}

func (r *VerifyReport) OK() bool {
	return len(r.Problems) == 0
}

func (r *VerifyReport) addf(format string, args ...any) {
	r.Problems = append(r.Problems, fmt.Sprintf(format, args...))
}

// Verify reads back the files written to dir and checks that they are consistent.
//
// An error is returned only when a file cannot be read or is not JSON.
func Verify(dir string) (*VerifyReport, error) {
	index, err := readJSON(filepath.Join(dir, IndexFile))
	if err != nil {
		return nil, err
	}
	minIndex, err := readJSON(filepath.Join(dir, MinIndexFile))
	if err != nil {
		return nil, err
	}
	descriptor, err := readJSON(filepath.Join(dir, RepoFile))
	if err != nil {
		return nil, err
	}

	report := &VerifyReport{}

	if !reflect.DeepEqual(index.Val(), minIndex.Val()) {
		report.addf("%s and %s differ", IndexFile, MinIndexFile)
	}

	records, ok := index.Val().([]any)
	if !ok {
		report.addf("%s is not a list", IndexFile)
	} else {
		report.Records = len(records)
		verifyRecords(report, records)
	}

	verifyDescriptor(report, descriptor)

	return report, nil
}

func verifyRecords(report *VerifyReport, records []any) {
	seen := make(map[string]int, len(records))

	for i, item := range records {
		m, ok := item.(map[string]any)
		if !ok {
			report.addf("record %d is not an object", i)
			continue
		}
		r := gson.New(m).Map()

		apk, ok := r["apk"].Val().(string)
		if !ok || apk == "" {
			report.addf("record %d has no apk", i)
		} else if j, dup := seen[apk]; dup {
			report.addf("record %d duplicates apk %s of record %d", i, apk, j)
		} else {
			seen[apk] = i
		}

		code, ok := r["code"].Val().(float64)
		if !ok || code < 0 || code != math.Trunc(code) {
			report.addf("record %d has invalid code %v", i, r["code"].Val())
		}

		if v, ok := r["version"].Val().(string); !ok || v == "" {
			report.addf("record %d has no version", i)
		}

		if sources, ok := r["sources"].Val().([]any); !ok || len(sources) == 0 {
			report.addf("record %d has no sources", i)
		}
	}
}

func verifyDescriptor(report *VerifyReport, descriptor gson.JSON) {
	root, ok := descriptor.Val().(map[string]any)
	if !ok {
		report.addf("%s is not an object", RepoFile)
		return
	}

	meta, ok := root["meta"].(map[string]any)
	if !ok {
		report.addf("%s has no meta", RepoFile)
		return
	}

	for _, key := range []string{"name", "website"} {
		if v, ok := meta[key].(string); !ok || v == "" {
			report.addf("%s has no meta.%s", RepoFile, key)
		}
	}
}

func readJSON(filename string) (gson.JSON, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return gson.New(nil), ee.Wrapf(err, "cannot read %s", filename)
	}

	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return gson.New(nil), ee.Wrapf(err, "invalid json in %s", filename)
	}

	return gson.New(v), nil
}
