// Where: cli/internal/state/artifacts.go
// What: Build artifact detection helpers for state resolution.
// Why: Determine whether an output directory indicates a successful build.
package state

import (
	"os"
	"path/filepath"
	"strings"
)

// HasBuildArtifacts reports whether the output directory contains the
// expected build artifacts for a built state. A finished build always has
// the rendered index.html plus at least one emitted script bundle.
func HasBuildArtifacts(outputDir string) (bool, error) {
	index := filepath.Join(outputDir, "index.html")
	if !isFile(index) {
		return false, nil
	}
	return hasBundle(outputDir)
}

func isFile(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

func hasBundle(root string) (bool, error) {
	info, err := os.Stat(root)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	if !info.IsDir() {
		return false, nil
	}

	found := false
	err = filepath.WalkDir(root, func(_ string, entry os.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if entry.IsDir() {
			return nil
		}
		if strings.HasSuffix(entry.Name(), ".js") {
			found = true
			return filepath.SkipAll
		}
		return nil
	})
	if err != nil {
		return false, err
	}
	return found, nil
}
