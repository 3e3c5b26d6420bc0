// Where: cli/internal/staging/staging.go
// What: Shared helpers for the workspace staging directory layout.
// Why: Keep executors aligned on where generated overlays, caches, and locks land.
package staging

import (
	"path/filepath"
	"strings"

	"github.com/poruru-code/vue-serve-box/cli/internal/meta"
)

// Key returns a filesystem-safe staging key for the provided name, falling
// back to a predictable value when the input is empty.
func Key(name string) string {
	key := strings.TrimSpace(name)
	if key == "" {
		return "default"
	}
	key = strings.ReplaceAll(key, string(filepath.Separator), "-")
	key = strings.ReplaceAll(key, "/", "-")
	return key
}

// BaseDir returns the staging directory at the workspace root (.vsb).
func BaseDir(workspaceRoot string) string {
	return filepath.Join(workspaceRoot, meta.StagingDir)
}

// TargetDir returns the staging directory for one project/target pair.
func TargetDir(workspaceRoot, project, target string) string {
	return filepath.Join(BaseDir(workspaceRoot), Key(project), Key(target))
}

// OverlayPath returns where the generated service config overlay lands.
func OverlayPath(workspaceRoot, project, target string) string {
	return filepath.Join(TargetDir(workspaceRoot, project, target), "vue.config.js")
}

// CacheDir returns the webpack filesystem cache directory for a target.
func CacheDir(workspaceRoot, project, target string) string {
	return filepath.Join(TargetDir(workspaceRoot, project, target), "cache", "webpack")
}

// LockPath returns the serve session lock file for a target.
func LockPath(workspaceRoot, project, target string) string {
	return filepath.Join(TargetDir(workspaceRoot, project, target), "serve.lock.yaml")
}
