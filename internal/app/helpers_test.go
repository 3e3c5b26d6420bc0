// Where: cli/internal/app/helpers_test.go
// What: Shared fixtures and fakes for app command tests.
// Why: Build workspace/project/global-config trees without repeating setup.
package app

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/poruru-code/vue-serve-box/cli/internal/cliservice"
	"github.com/poruru-code/vue-serve-box/cli/internal/devserver"
	"github.com/poruru-code/vue-serve-box/cli/internal/ports"
	"github.com/poruru-code/vue-serve-box/cli/internal/state"
	"github.com/poruru-code/vue-serve-box/cli/internal/workspace"
)

var errBoom = errors.New("boom")

// setupWorkspace writes a workspace file registering one project and points
// the workspace env var at the root. Returns the root and the project dir.
func setupWorkspace(t *testing.T, project string) (string, string) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	root := t.TempDir()
	projectDir := filepath.Join(root, project)
	if err := os.MkdirAll(projectDir, 0o755); err != nil {
		t.Fatalf("mkdir project dir: %v", err)
	}
	ws := workspace.File{
		Version:  1,
		Name:     "demo-workspace",
		Projects: map[string]string{project: project},
	}
	if err := workspace.SaveFile(root, ws); err != nil {
		t.Fatalf("save workspace file: %v", err)
	}
	t.Setenv("VSB_WORKSPACE", root)
	return root, projectDir
}

// writeProjectFixture writes a project.yaml declaring a serve target "dev"
// linked to a build target "app".
func writeProjectFixture(t *testing.T, projectDir, lastTarget string) {
	t.Helper()
	decl := workspace.ProjectFile{
		Version: 1,
		App:     workspace.AppConfig{Name: filepath.Base(projectDir), LastTarget: lastTarget},
		Targets: map[string]workspace.Target{
			"dev": {
				Executor: "serve",
				Options:  map[string]any{"buildTarget": "app"},
			},
			"app": {
				Executor: "build",
				Options:  map[string]any{"mode": "production"},
			},
		},
	}
	if err := workspace.SaveProjectFile(projectDir, decl); err != nil {
		t.Fatalf("save project file: %v", err)
	}
}

// seedGlobalProjects registers projects directly in the global config.
func seedGlobalProjects(t *testing.T, entries map[string]workspace.ProjectEntry) string {
	t.Helper()
	path, err := workspace.GlobalConfigPath()
	if err != nil {
		t.Fatalf("global config path: %v", err)
	}
	cfg := workspace.DefaultGlobalConfig()
	for name, entry := range entries {
		cfg.Projects[name] = entry
	}
	if err := workspace.SaveGlobalConfig(path, cfg); err != nil {
		t.Fatalf("save global config: %v", err)
	}
	return path
}

type fakeDetector struct {
	state state.State
	err   error
}

func (f fakeDetector) Detect() (state.State, error) {
	return f.state, f.err
}

type recordStager struct {
	request ports.StageRequest
	path    string
	err     error
}

func (s *recordStager) Stage(request ports.StageRequest) (string, error) {
	s.request = request
	if s.err != nil {
		return "", s.err
	}
	if s.path == "" {
		return "/staging/vue.config.js", nil
	}
	return s.path, nil
}

type recordServer struct {
	request devserver.Request
	result  *devserver.Result
	err     error
}

func (s *recordServer) Serve(_ context.Context, request devserver.Request, onResult func(devserver.Result)) error {
	s.request = request
	if s.result != nil && onResult != nil {
		onResult(*s.result)
	}
	return s.err
}

type recordBuilder struct {
	request cliservice.BuildRequest
	err     error
}

func (b *recordBuilder) Build(_ context.Context, request cliservice.BuildRequest) error {
	b.request = request
	return b.err
}
