package repo

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/ImSingee/tt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dokushohq/extensions/internal/extension"
)

const expectedSingleIndex = `[
  {
    "name": "Tachiyomi: Dokusho",
    "pkg": "eu.kanade.tachiyomi.extension.all.dokusho",
    "apk": "dokusho-v1.4.1-release.apk",
    "lang": "all",
    "code": 1,
    "version": "1.4.1",
    "nsfw": 0,
    "sources": [
      {
        "name": "Dokusho",
        "lang": "all",
        "id": "8524619729907384860",
        "baseUrl": "",
        "versionId": 1
      }
    ]
  }
]`

const expectedSingleMinIndex = `[{"name":"Tachiyomi: Dokusho","pkg":"eu.kanade.tachiyomi.extension.all.dokusho","apk":"dokusho-v1.4.1-release.apk","lang":"all","code":1,"version":"1.4.1","nsfw":0,"sources":[{"name":"Dokusho","lang":"all","id":"8524619729907384860","baseUrl":"","versionId":1}]}]`

const expectedRepo = `{
  "meta": {
    "name": "Dokusho Extensions",
    "website": "https://github.com/dokushohq/extensions"
  }
}`

func TestGenerate(t *testing.T) {
	t.Run("single release", func(t *testing.T) {
		c := newRepo(t, "dokusho-v1.4.1-release.apk")

		result, err := Generate(c)
		require.NoError(t, err)

		tt.AssertEqual(t, "Generated index with 1 extension(s)", result.Summary())
		assert.Equal(t, []string{
			filepath.Join(c.RepoDir, IndexFile),
			filepath.Join(c.RepoDir, MinIndexFile),
			filepath.Join(c.RepoDir, RepoFile),
			filepath.Join(c.RepoDir, HTMLFile),
		}, result.Files)

		assert.Equal(t, expectedSingleIndex, readFile(t, filepath.Join(c.RepoDir, IndexFile)))
		assert.Equal(t, expectedSingleMinIndex, readFile(t, filepath.Join(c.RepoDir, MinIndexFile)))
		assert.Equal(t, expectedRepo, readFile(t, filepath.Join(c.RepoDir, RepoFile)))

		html := readFile(t, filepath.Join(c.RepoDir, HTMLFile))
		assert.Contains(t, html, "<title>Dokusho Extensions</title>")
		assert.Contains(t, html, `<a href="apk/dokusho-v1.4.1-release.apk">`)
	})

	t.Run("mixed names", func(t *testing.T) {
		c := newRepo(t, "dokusho-v2.0.9.apk", "legacy-build.apk", "readme.txt")

		result, err := Generate(c)
		require.NoError(t, err)
		require.Len(t, result.Records, 2)

		var records []*extension.Record
		require.NoError(t, json.Unmarshal([]byte(readFile(t, filepath.Join(c.RepoDir, IndexFile))), &records))
		require.Len(t, records, 2)

		assert.Equal(t, "dokusho-v2.0.9.apk", records[0].Apk)
		assert.Equal(t, "2.0.9", records[0].Version)
		assert.Equal(t, 9, records[0].Code)

		assert.Equal(t, "legacy-build.apk", records[1].Apk)
		assert.Equal(t, "1.4.1", records[1].Version)
		assert.Equal(t, 1, records[1].Code)
	})

	t.Run("empty directory", func(t *testing.T) {
		c := newRepo(t)

		result, err := Generate(c)
		require.NoError(t, err)

		tt.AssertEqual(t, "Generated index with 0 extension(s)", result.Summary())
		assert.Equal(t, "[]", readFile(t, filepath.Join(c.RepoDir, IndexFile)))
		assert.Equal(t, "[]", readFile(t, filepath.Join(c.RepoDir, MinIndexFile)))
		assert.Contains(t, readFile(t, filepath.Join(c.RepoDir, HTMLFile)), "No package published yet.")
	})

	t.Run("missing apk directory", func(t *testing.T) {
		c := newRepo(t)
		require.NoError(t, os.RemoveAll(c.ApkPath()))

		_, err := Generate(c)
		require.Error(t, err)

		_, statErr := os.Stat(filepath.Join(c.RepoDir, IndexFile))
		assert.True(t, os.IsNotExist(statErr), "nothing must be written")
	})

	t.Run("idempotent", func(t *testing.T) {
		c := newRepo(t, "dokusho-v1.4.1.apk", "dokusho-v1.4.2-release.apk", "other.apk")

		_, err := Generate(c)
		require.NoError(t, err)
		first := readFile(t, filepath.Join(c.RepoDir, IndexFile))
		firstMin := readFile(t, filepath.Join(c.RepoDir, MinIndexFile))

		_, err = Generate(c)
		require.NoError(t, err)
		assert.Equal(t, first, readFile(t, filepath.Join(c.RepoDir, IndexFile)))
		assert.Equal(t, firstMin, readFile(t, filepath.Join(c.RepoDir, MinIndexFile)))
	})

	t.Run("overwrites previous output", func(t *testing.T) {
		c := newRepo(t, "dokusho-v1.4.1.apk")
		require.NoError(t, os.WriteFile(filepath.Join(c.RepoDir, IndexFile), []byte("garbage that is longer than the new index ..............................................................................................................................................................................................................................................................................................................................................................................................................................................................................................."), 0644))

		_, err := Generate(c)
		require.NoError(t, err)

		var v any
		require.NoError(t, json.Unmarshal([]byte(readFile(t, filepath.Join(c.RepoDir, IndexFile))), &v))
	})

	t.Run("reports collisions", func(t *testing.T) {
		c := newRepo(t, "dokusho-v1.4.1.apk", "dokusho-v2.9.1.apk")

		result, err := Generate(c)
		require.NoError(t, err)
		require.Len(t, result.Collisions, 1)
		assert.Equal(t, 1, result.Collisions[0].Code)

		// codes are left as derived
		assert.Equal(t, 1, result.Records[0].Code)
		assert.Equal(t, 1, result.Records[1].Code)
	})

	t.Run("dot files", func(t *testing.T) {
		c := newRepo(t, ".dokusho-v1.0.2.apk", "dokusho-v1.4.1.apk")

		result, err := Generate(c)
		require.NoError(t, err)
		require.Len(t, result.Records, 2)

		tt.AssertEqual(t, "Generated index with 2 extension(s)", result.Summary())
		assert.Equal(t, ".dokusho-v1.0.2.apk", result.Records[0].Apk)
		assert.Equal(t, 2, result.Records[0].Code)
	})

	t.Run("non-ascii names", func(t *testing.T) {
		c := newRepo(t, "café-v1.0.5.apk", "dokusho😀-v1.0.6.apk")

		_, err := Generate(c)
		require.NoError(t, err)

		minIndex := readFile(t, filepath.Join(c.RepoDir, MinIndexFile))
		assert.Contains(t, minIndex, `"apk":"caf\u00e9-v1.0.5.apk"`)
		assert.Contains(t, minIndex, `"apk":"dokusho\ud83d\ude00-v1.0.6.apk"`)
		assert.Contains(t, readFile(t, filepath.Join(c.RepoDir, IndexFile)), `"apk": "caf\u00e9-v1.0.5.apk"`)

		var records []*extension.Record
		require.NoError(t, json.Unmarshal([]byte(minIndex), &records))
		require.Len(t, records, 2)
		assert.Equal(t, "café-v1.0.5.apk", records[0].Apk)
		assert.Equal(t, "dokusho😀-v1.0.6.apk", records[1].Apk)
	})

	t.Run("custom apk dir", func(t *testing.T) {
		c := newRepo(t)
		c.ApkDir = "packages"
		require.NoError(t, os.MkdirAll(c.ApkPath(), 0755))
		require.NoError(t, os.WriteFile(filepath.Join(c.ApkPath(), "dokusho-v1.0.3.apk"), nil, 0644))

		result, err := Generate(c)
		require.NoError(t, err)
		require.Len(t, result.Records, 1)
		assert.Contains(t, readFile(t, filepath.Join(c.RepoDir, HTMLFile)), `<a href="packages/dokusho-v1.0.3.apk">`)
	})
}

func TestCompactMatchesIndent(t *testing.T) {
	c := newRepo(t, "dokusho-v1.4.1.apk", "dokusho-v2.0.9-release.apk", "x & <y>.apk")

	_, err := Generate(c)
	require.NoError(t, err)

	var pretty, compact any
	require.NoError(t, json.Unmarshal([]byte(readFile(t, filepath.Join(c.RepoDir, IndexFile))), &pretty))
	require.NoError(t, json.Unmarshal([]byte(readFile(t, filepath.Join(c.RepoDir, MinIndexFile))), &compact))
	assert.Equal(t, pretty, compact)

	assert.Contains(t, readFile(t, filepath.Join(c.RepoDir, MinIndexFile)), `"apk":"x & <y>.apk"`)
}

func TestEscapeNonASCII(t *testing.T) {
	cases := []struct {
		in, out string
	}{
		{`"plain & <ascii>"`, `"plain & <ascii>"`},
		{`"é"`, `"\u00e9"`},
		{`"日本"`, `"\u65e5\u672c"`},
		{`"😀"`, `"\ud83d\ude00"`},
		{"\"\x7f\"", `"\u007f"`},
	}

	for _, c := range cases {
		tt.AssertEqual(t, c.out, string(escapeNonASCII([]byte(c.in))))
	}
}
