package version

import "fmt"

// set with -ldflags "-X github.com/dokushohq/extensions/internal/version.version=..."
var (
	version = "DEV"
	commit  = ""
	buildAt = ""
)

func GetVersionString() string {
	if commit == "" && buildAt == "" {
		return version
	}
	return fmt.Sprintf("%s\nCommit: %s\nBuild At: %s", version, commit, buildAt)
}
