package extension

import (
	"sort"

	"github.com/ImSingee/go-ex/exstrings"
	"github.com/ImSingee/semver"
)

// Collision is a set of records of one package that share a version code
// while carrying different versions.
type Collision struct {
	Pkg      string
	Code     int
	Versions []string
	Apks     []string
}

// FindCodeCollisions reports version codes reused by different versions of the same package.
//
// Codes are derived from the patch component only, so 1.4.1 and 2.9.1 collide.
// Collisions are returned in order of first appearance.
func FindCodeCollisions(records []*Record) []*Collision {
	type key struct {
		pkg  string
		code int
	}

	groups := make(map[key]*Collision)
	order := make([]key, 0)

	for _, r := range records {
		k := key{r.Pkg, r.Code}
		c, ok := groups[k]
		if !ok {
			c = &Collision{Pkg: r.Pkg, Code: r.Code}
			groups[k] = c
			order = append(order, k)
		}

		c.Apks = append(c.Apks, r.Apk)
		if !exstrings.InStringList(c.Versions, r.Version) {
			c.Versions = append(c.Versions, r.Version)
		}
	}

	result := make([]*Collision, 0)
	for _, k := range order {
		if c := groups[k]; len(c.Versions) > 1 {
			result = append(result, c)
		}
	}

	return result
}

// Inversion is a pair of versions of one package where the newer version has the lower code.
type Inversion struct {
	Pkg string

	Older     string
	OlderCode int
	Newer     string
	NewerCode int
}

// FindCodeInversions reports newer versions whose code is lower than the code of an older
// version of the same package. Versions that are not valid semver are ignored.
func FindCodeInversions(records []*Record) []*Inversion {
	type entry struct {
		v *semver.Version
		r *Record
	}

	byPkg := make(map[string][]entry)
	pkgs := make([]string, 0)

	for _, r := range records {
		v, err := semver.NewVersion(r.Version)
		if err != nil {
			continue
		}
		if _, ok := byPkg[r.Pkg]; !ok {
			pkgs = append(pkgs, r.Pkg)
		}
		byPkg[r.Pkg] = append(byPkg[r.Pkg], entry{v, r})
	}

	result := make([]*Inversion, 0)
	for _, pkg := range pkgs {
		entries := byPkg[pkg]
		sort.SliceStable(entries, func(i, j int) bool {
			return entries[i].v.LessThan(entries[j].v)
		})

		for i := 1; i < len(entries); i++ {
			prev, cur := entries[i-1], entries[i]
			if prev.v.Equal(cur.v) {
				continue
			}
			if cur.r.Code < prev.r.Code {
				result = append(result, &Inversion{
					Pkg:       pkg,
					Older:     prev.r.Version,
					OlderCode: prev.r.Code,
					Newer:     cur.r.Version,
					NewerCode: cur.r.Code,
				})
			}
		}
	}

	return result
}
