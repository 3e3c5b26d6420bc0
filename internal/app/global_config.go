// Where: cli/internal/app/global_config.go
// What: Global config helpers for CLI commands.
// Why: Centralize ~/.vsb/config.yaml handling and defaults.
package app

import (
	"os"
	"time"

	"github.com/poruru-code/vue-serve-box/cli/internal/workspace"
)

// loadGlobalConfig loads the global configuration from the specified path.
// Returns a default config if the file doesn't exist.
func loadGlobalConfig(path string) (workspace.GlobalConfig, error) {
	cfg, err := workspace.LoadGlobalConfig(path)
	if err != nil {
		if os.IsNotExist(err) {
			return workspace.DefaultGlobalConfig(), nil
		}
		return workspace.GlobalConfig{}, err
	}
	return workspace.NormalizeGlobalConfig(cfg), nil
}

func loadGlobalConfigOrDefault() (workspace.GlobalConfig, error) {
	path, err := workspace.GlobalConfigPath()
	if err != nil {
		return workspace.GlobalConfig{}, err
	}
	return loadGlobalConfig(path)
}

func loadGlobalConfigWithPath() (string, workspace.GlobalConfig, error) {
	path, err := workspace.GlobalConfigPath()
	if err != nil {
		return "", workspace.GlobalConfig{}, err
	}
	cfg, err := loadGlobalConfig(path)
	if err != nil {
		return "", workspace.GlobalConfig{}, err
	}
	return path, cfg, nil
}

// now returns the current time using the injected Now function from deps,
// or time.Now() if not configured. Enables time mocking in tests.
func now(deps Dependencies) time.Time {
	if deps.Now != nil {
		return deps.Now()
	}
	return time.Now()
}
