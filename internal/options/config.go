// Where: cli/internal/options/config.go
// What: Project-local option file loading (vsb.config.yaml).
// Why: Give projects a checked-in override layer between defaults and invocation options.
package options

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/poruru-code/vue-serve-box/cli/internal/meta"
	"gopkg.in/yaml.v3"
)

// ProjectConfig is the parsed vsb.config.yaml. Both sections are optional;
// a missing file behaves like an empty one.
type ProjectConfig struct {
	Serve map[string]any `yaml:"serve,omitempty"`
	Build map[string]any `yaml:"build,omitempty"`
}

// ProjectConfigPath returns the option file path inside projectDir.
func ProjectConfigPath(projectDir string) string {
	return filepath.Join(projectDir, meta.ProjectConfigFile)
}

// LoadProjectConfig reads projectDir's vsb.config.yaml. A missing file is
// not an error.
func LoadProjectConfig(projectDir string) (ProjectConfig, error) {
	payload, err := os.ReadFile(ProjectConfigPath(projectDir))
	if err != nil {
		if os.IsNotExist(err) {
			return ProjectConfig{}, nil
		}
		return ProjectConfig{}, err
	}

	var cfg ProjectConfig
	if err := yaml.Unmarshal(payload, &cfg); err != nil {
		return ProjectConfig{}, fmt.Errorf("parse %s: %w", meta.ProjectConfigFile, err)
	}
	return cfg, nil
}

// SaveProjectConfig writes projectDir's vsb.config.yaml.
func SaveProjectConfig(projectDir string, cfg ProjectConfig) error {
	payload, err := yaml.Marshal(&cfg)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(projectDir, 0o755); err != nil {
		return err
	}

	return os.WriteFile(ProjectConfigPath(projectDir), payload, 0o644)
}
