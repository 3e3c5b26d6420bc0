// Where: cli/internal/version/version.go
// What: Version information retrieval.
// Why: Provide build-time version information (release tag or Git state) to the CLI.
package version

import (
	"fmt"
	"runtime/debug"
)

// Release is stamped by the release pipeline via -ldflags. Empty for
// source builds, where VCS build info is used instead.
var Release = ""

// GetVersion returns the version string shown by `vsb version`.
// Release builds report the stamped tag; source builds report the short
// VCS revision, appended with "(dirty)" when the tree was modified.
func GetVersion() string {
	if Release != "" {
		return Release
	}

	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "dev"
	}

	var revision string
	var modified bool

	for _, setting := range info.Settings {
		switch setting.Key {
		case "vcs.revision":
			revision = setting.Value
			if len(revision) > 7 {
				revision = revision[:7]
			}
		case "vcs.modified":
			if setting.Value == "true" {
				modified = true
			}
		}
	}

	if revision == "" {
		return "dev"
	}

	if modified {
		return fmt.Sprintf("%s (dirty)", revision)
	}
	return revision
}
