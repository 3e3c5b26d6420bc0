// Where: cli/internal/workspace/global.go
// What: Global config load/save helpers.
// Why: Manage ~/.vsb/config.yaml consistently.
package workspace

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/poruru-code/vue-serve-box/cli/internal/constants"
	"github.com/poruru-code/vue-serve-box/cli/internal/envutil"
	"github.com/poruru-code/vue-serve-box/cli/internal/meta"
	"gopkg.in/yaml.v3"
)

// GlobalConfig represents the ~/.vsb/config.yaml global configuration.
// It tracks registered project paths and last usage.
type GlobalConfig struct {
	Version        int                       `yaml:"version"`
	WorkspacePath  string                    `yaml:"workspace_path,omitempty"`
	ActiveProject  string                    `yaml:"active_project,omitempty"`
	Projects       map[string]ProjectEntry   `yaml:"projects,omitempty"`
	TargetDefaults map[string]TargetDefaults `yaml:"target_defaults,omitempty"`
}

// ProjectEntry stores a project's directory path and last-used timestamp.
type ProjectEntry struct {
	Path     string `yaml:"path"`
	LastUsed string `yaml:"last_used"`
}

// TargetDefaults stores last-used run inputs for a project.
type TargetDefaults struct {
	Target        string `yaml:"target,omitempty"`
	Configuration string `yaml:"configuration,omitempty"`
	Mode          string `yaml:"mode,omitempty"`
}

// DefaultGlobalConfig returns an initialized GlobalConfig with version set.
func DefaultGlobalConfig() GlobalConfig {
	return GlobalConfig{
		Version:        1,
		Projects:       map[string]ProjectEntry{},
		TargetDefaults: map[string]TargetDefaults{},
	}
}

// NormalizeGlobalConfig fills nil maps so callers can update entries in place.
func NormalizeGlobalConfig(cfg GlobalConfig) GlobalConfig {
	if cfg.Projects == nil {
		cfg.Projects = map[string]ProjectEntry{}
	}
	if cfg.TargetDefaults == nil {
		cfg.TargetDefaults = map[string]TargetDefaults{}
	}
	return cfg
}

// GlobalConfigPath returns the path to the global config file.
// Respects brand-specific CONFIG_PATH and CONFIG_HOME environment variables.
func GlobalConfigPath() (string, error) {
	if override := strings.TrimSpace(envutil.GetHostEnv(constants.HostSuffixConfigPath)); override != "" {
		path := override
		if !filepath.IsAbs(path) {
			if abs, err := filepath.Abs(path); err == nil {
				path = abs
			}
		}
		return path, nil
	}
	if override := strings.TrimSpace(envutil.GetHostEnv(constants.HostSuffixConfigHome)); override != "" {
		return filepath.Join(override, "config.yaml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, meta.HomeDir, "config.yaml"), nil
}

// EnsureGlobalConfig creates the global config file if it doesn't exist.
func EnsureGlobalConfig() error {
	path, err := GlobalConfigPath()
	if err != nil {
		return err
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return SaveGlobalConfig(path, DefaultGlobalConfig())
		}
		return err
	}
	return nil
}

// LoadGlobalConfig reads and parses the global configuration file.
func LoadGlobalConfig(path string) (GlobalConfig, error) {
	payload, err := os.ReadFile(path)
	if err != nil {
		return GlobalConfig{}, err
	}

	var cfg GlobalConfig
	if err := yaml.Unmarshal(payload, &cfg); err != nil {
		return GlobalConfig{}, err
	}
	return cfg, nil
}

// SaveGlobalConfig writes a GlobalConfig to the specified path.
func SaveGlobalConfig(path string, cfg GlobalConfig) error {
	payload, err := yaml.Marshal(&cfg)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	return os.WriteFile(path, payload, 0o644)
}
