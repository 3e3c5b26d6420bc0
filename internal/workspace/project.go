// Where: cli/internal/workspace/project.go
// What: Project file model shared between the CLI and the executors.
// Why: Keep the target declaration shape centralized without relying on files.
package workspace

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/poruru-code/vue-serve-box/cli/internal/meta"
	"gopkg.in/yaml.v3"
)

// ProjectFile captures a project's target declarations (project.yaml).
type ProjectFile struct {
	Version int               `yaml:"version"`
	App     AppConfig         `yaml:"app"`
	Targets map[string]Target `yaml:"targets,omitempty"`
}

// AppConfig contains the application name and optional last-used target.
type AppConfig struct {
	Name       string `yaml:"name"`
	LastTarget string `yaml:"last_target,omitempty"`
}

// Target declares one runnable unit: which executor runs it, the options
// passed to that executor, and named configuration overlays.
type Target struct {
	Executor       string                    `yaml:"executor"`
	Options        map[string]any            `yaml:"options,omitempty"`
	Configurations map[string]map[string]any `yaml:"configurations,omitempty"`
}

// Target returns the named target declaration.
func (p ProjectFile) Target(name string) (Target, bool) {
	t, ok := p.Targets[name]
	return t, ok
}

// TargetNames returns the declared target names in map order.
func (p ProjectFile) TargetNames() []string {
	names := make([]string, 0, len(p.Targets))
	for name := range p.Targets {
		names = append(names, name)
	}
	return names
}

// DefaultProjectFile returns a minimal project file for a fresh registration.
// It declares the serve and build targets with the stock executors.
func DefaultProjectFile(name string) ProjectFile {
	return ProjectFile{
		Version: 1,
		App:     AppConfig{Name: name},
		Targets: map[string]Target{
			"app": {
				Executor: meta.ExecutorServe,
				Options: map[string]any{
					"buildTarget": name + ":production",
				},
			},
			"production": {
				Executor: meta.ExecutorBuild,
				Options: map[string]any{
					"main":  "src/main.js",
					"index": "public/index.html",
				},
			},
		},
	}
}

// ProjectFilePath returns the path of the project file inside projectDir.
func ProjectFilePath(projectDir string) string {
	return filepath.Join(projectDir, meta.ProjectFile)
}

// LoadProjectFile reads and parses projectDir's project.yaml.
func LoadProjectFile(projectDir string) (ProjectFile, error) {
	payload, err := os.ReadFile(ProjectFilePath(projectDir))
	if err != nil {
		return ProjectFile{}, err
	}

	var file ProjectFile
	if err := yaml.Unmarshal(payload, &file); err != nil {
		return ProjectFile{}, fmt.Errorf("parse %s: %w", meta.ProjectFile, err)
	}
	return file, nil
}

// SaveProjectFile writes projectDir's project.yaml.
func SaveProjectFile(projectDir string, file ProjectFile) error {
	payload, err := yaml.Marshal(&file)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(projectDir, 0o755); err != nil {
		return err
	}

	return os.WriteFile(ProjectFilePath(projectDir), payload, 0o644)
}

// FindProjectDir searches upward from the given path for a directory
// containing project.yaml.
func FindProjectDir(path string) (string, bool) {
	dir, err := filepath.Abs(path)
	if err != nil {
		return "", false
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, meta.ProjectFile)); err == nil {
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
