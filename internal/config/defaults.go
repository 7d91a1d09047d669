package config

import "github.com/dokushohq/extensions/internal/extension"

const (
	DefaultRepoDir = "repo"
	DefaultApkDir  = "apk" // relative to the repo dir
	DefaultPattern = "*.apk"
)

// Default returns the configuration of the Dokusho repository.
//
// Running without a config file uses it, so the generated index stays identical
// to what the repository has always published.
func Default() *Config {
	code := 1

	return &Config{
		RepoDir: DefaultRepoDir,
		ApkDir:  DefaultApkDir,
		Pattern: DefaultPattern,
		Repository: Repository{
			Name:        "Dokusho Extensions",
			Website:     "https://github.com/dokushohq/extensions",
			URL:         "https://dokushohq.github.io/extensions",
			Description: "Tachiyomi/Mihon extension for Dokusho - a self-hosted manga server.",
		},
		Extensions: []*extension.Config{
			{
				Name:    "Tachiyomi: Dokusho",
				Pkg:     "eu.kanade.tachiyomi.extension.all.dokusho",
				Lang:    "all",
				Version: "1.4.1",
				Code:    &code,
				NSFW:    false,
				Match:   "*.apk",

				Description: "Connect to your Dokusho server to read manga from your personal library.",
				Requirements: []string{
					"A running Dokusho server",
					"An API key from your Dokusho dashboard",
				},
				Setup: []string{
					"Install the extension from the repository",
					"Go to extension settings",
					"Enter your Dokusho server URL",
					"Enter your API key",
				},

				Sources: []*extension.SourceConfig{
					{
						Name:      "Dokusho",
						Lang:      "all",
						ID:        "8524619729907384860",
						BaseURL:   "",
						VersionID: 1,
					},
				},
			},
		},
	}
}
