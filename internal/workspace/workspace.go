// Where: cli/internal/workspace/workspace.go
// What: Workspace discovery and workspace file helpers.
// Why: Centralize logic to find the workspace root from env, config, or file system.
package workspace

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/poruru-code/vue-serve-box/cli/internal/constants"
	"github.com/poruru-code/vue-serve-box/cli/internal/envutil"
	"github.com/poruru-code/vue-serve-box/cli/internal/meta"
	"gopkg.in/yaml.v3"
)

// File represents the vsb.workspace.yaml at the workspace root.
// It registers the workspace's projects by name.
type File struct {
	Version        int               `yaml:"version"`
	Name           string            `yaml:"name,omitempty"`
	DefaultProject string            `yaml:"default_project,omitempty"`
	Projects       map[string]string `yaml:"projects,omitempty"`
}

// ProjectDir returns the absolute directory of a registered project.
func (f File) ProjectDir(root, name string) (string, bool) {
	dir, ok := f.Projects[name]
	if !ok {
		return "", false
	}
	if !filepath.IsAbs(dir) {
		dir = filepath.Join(root, dir)
	}
	return filepath.Clean(dir), true
}

// ResolveRoot determines the workspace root path.
// Priority:
// 1. Brand-prefixed WORKSPACE environment variable (validated as root or searched upward)
// 2. Upward search for vsb.workspace.yaml from startDir
// 3. workspace_path in global config (~/.vsb/config.yaml) (validated as root or searched upward)
func ResolveRoot(startDir string) (string, error) {
	// 1. Try environment variable
	if ws := strings.TrimSpace(envutil.GetHostEnv(constants.HostSuffixWorkspace)); ws != "" {
		if root, ok := findRoot(ws); ok {
			return root, nil
		}
	}

	// 2. Search upwards from start directory (inside the workspace tree)
	if startDir != "" {
		if root, ok := findRoot(startDir); ok {
			return root, nil
		}
	}

	// 3. Try global configuration
	if cfgPath, err := GlobalConfigPath(); err == nil {
		if cfg, err := LoadGlobalConfig(cfgPath); err == nil && cfg.WorkspacePath != "" {
			if root, ok := findRoot(cfg.WorkspacePath); ok {
				return root, nil
			}
		}
	}

	return "", fmt.Errorf("workspace root not found. Please run 'vsb config set-workspace <path>' or set %s.", envutil.HostEnvKey(constants.HostSuffixWorkspace)) //nolint:revive
}

// ResolveRootFromPath determines the workspace root using only the supplied path.
func ResolveRootFromPath(path string) (string, error) {
	if root, ok := findRoot(path); ok {
		return root, nil
	}
	return "", fmt.Errorf("workspace root not found at %s", path)
}

// findRoot searches upward from the given path to find
// a directory containing vsb.workspace.yaml.
func findRoot(path string) (string, bool) {
	dir, err := filepath.Abs(path)
	if err != nil {
		return "", false
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, meta.WorkspaceFile)); err == nil {
			return dir, true
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false
}

// LoadFile reads the workspace file from the given workspace root.
func LoadFile(root string) (File, error) {
	payload, err := os.ReadFile(filepath.Join(root, meta.WorkspaceFile))
	if err != nil {
		return File{}, err
	}

	var file File
	if err := yaml.Unmarshal(payload, &file); err != nil {
		return File{}, err
	}
	return file, nil
}

// SaveFile writes the workspace file under the given workspace root.
func SaveFile(root string, file File) error {
	payload, err := yaml.Marshal(&file)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(root, 0o755); err != nil {
		return err
	}

	return os.WriteFile(filepath.Join(root, meta.WorkspaceFile), payload, 0o644)
}
