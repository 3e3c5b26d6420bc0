// Where: cli/internal/app/project_test.go
// What: Tests for project management commands.
// Why: Ensure the registry list/add/use/remove flows behave.
package app

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/poruru-code/vue-serve-box/cli/internal/interaction"
	"github.com/poruru-code/vue-serve-box/cli/internal/workspace"
)

type stubPrompter struct {
	input       string
	selected    string
	selectedVal string
	err         error
}

func (p stubPrompter) Input(string, []string) (string, error) { return p.input, p.err }

func (p stubPrompter) Select(string, []string) (string, error) { return p.selected, p.err }

func (p stubPrompter) SelectValue(string, []interaction.SelectOption) (string, error) {
	return p.selectedVal, p.err
}

func setTerminal(t *testing.T, value bool) {
	t.Helper()
	orig := interaction.IsTerminal
	interaction.IsTerminal = func(*os.File) bool { return value }
	t.Cleanup(func() { interaction.IsTerminal = orig })
}

func TestRunProjectsListEmpty(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	var out bytes.Buffer
	exitCode := Run([]string{"projects", "list"}, Dependencies{Out: &out})
	if exitCode != 0 {
		t.Fatalf("expected exit code 0, got %d", exitCode)
	}
	if !strings.Contains(out.String(), "No projects registered.") {
		t.Fatalf("unexpected output: %q", out.String())
	}
}

func TestRunProjectsListMarksActive(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	path := seedGlobalProjects(t, map[string]workspace.ProjectEntry{
		"alpha": {Path: "/tmp/alpha"},
		"beta":  {Path: "/tmp/beta"},
	})
	cfg, err := workspace.LoadGlobalConfig(path)
	if err != nil {
		t.Fatalf("load global config: %v", err)
	}
	cfg.ActiveProject = "beta"
	if err := workspace.SaveGlobalConfig(path, cfg); err != nil {
		t.Fatalf("save global config: %v", err)
	}

	var out bytes.Buffer
	exitCode := Run([]string{"projects", "list"}, Dependencies{Out: &out})
	if exitCode != 0 {
		t.Fatalf("expected exit code 0, got %d", exitCode)
	}
	if !strings.Contains(out.String(), "📦  beta") {
		t.Fatalf("expected active marker on beta, got %q", out.String())
	}
	if !strings.Contains(out.String(), "    alpha") {
		t.Fatalf("expected plain alpha entry, got %q", out.String())
	}
}

func TestRunProjectsAddCreatesProjectFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	dir := t.TempDir()

	var out bytes.Buffer
	exitCode := Run([]string{"projects", "add", dir, "-n", "demo"}, Dependencies{Out: &out})
	if exitCode != 0 {
		t.Fatalf("expected exit code 0, got %d\noutput: %s", exitCode, out.String())
	}
	if !strings.Contains(out.String(), "Created project.yaml") {
		t.Fatalf("expected created notice, got %q", out.String())
	}
	if !strings.Contains(out.String(), "Registered project 'demo'.") {
		t.Fatalf("expected registration notice, got %q", out.String())
	}
	if _, err := os.Stat(filepath.Join(dir, "project.yaml")); err != nil {
		t.Fatalf("expected project.yaml: %v", err)
	}

	cfg, err := loadGlobalConfigOrDefault()
	if err != nil {
		t.Fatalf("load global config: %v", err)
	}
	if cfg.Projects["demo"].Path == "" {
		t.Fatalf("expected demo registered, got %+v", cfg.Projects)
	}
}

func TestRunProjectsAddExistingProjectFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	dir := t.TempDir()
	writeProjectFixture(t, dir, "")

	var out bytes.Buffer
	exitCode := Run([]string{"projects", "add", dir}, Dependencies{Out: &out})
	if exitCode != 0 {
		t.Fatalf("expected exit code 0, got %d\noutput: %s", exitCode, out.String())
	}
	if strings.Contains(out.String(), "Created project.yaml") {
		t.Fatalf("did not expect created notice, got %q", out.String())
	}
	if !strings.Contains(out.String(), "Registered project") {
		t.Fatalf("expected registration notice, got %q", out.String())
	}
}

func TestRunProjectsUseSwitchesActive(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	path := seedGlobalProjects(t, map[string]workspace.ProjectEntry{
		"alpha": {Path: "/tmp/alpha"},
		"beta":  {Path: "/tmp/beta"},
	})

	var out bytes.Buffer
	exitCode := Run([]string{"projects", "use", "beta"}, Dependencies{Out: &out})
	if exitCode != 0 {
		t.Fatalf("expected exit code 0, got %d\noutput: %s", exitCode, out.String())
	}
	if !strings.Contains(out.String(), "Switched to project 'beta'") {
		t.Fatalf("unexpected output: %q", out.String())
	}

	cfg, err := workspace.LoadGlobalConfig(path)
	if err != nil {
		t.Fatalf("load global config: %v", err)
	}
	if cfg.ActiveProject != "beta" {
		t.Fatalf("unexpected active project: %s", cfg.ActiveProject)
	}
}

func TestRunProjectsUseUnknownProject(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	seedGlobalProjects(t, map[string]workspace.ProjectEntry{
		"alpha": {Path: "/tmp/alpha"},
	})

	var out bytes.Buffer
	exitCode := Run([]string{"projects", "use", "ghost"}, Dependencies{Out: &out})
	if exitCode == 0 {
		t.Fatalf("expected non-zero exit code for unknown project")
	}
	if !strings.Contains(out.String(), "Project 'ghost' not found.") {
		t.Fatalf("unexpected output: %q", out.String())
	}
	if !strings.Contains(out.String(), "alpha") {
		t.Fatalf("expected available names, got %q", out.String())
	}
}

func TestRunProjectsUseNonInteractiveRequiresName(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	seedGlobalProjects(t, map[string]workspace.ProjectEntry{
		"alpha": {Path: "/tmp/alpha"},
	})
	setTerminal(t, false)

	var out bytes.Buffer
	exitCode := Run([]string{"projects", "use"}, Dependencies{Out: &out})
	if exitCode == 0 {
		t.Fatalf("expected non-zero exit code without a name")
	}
	if !strings.Contains(out.String(), "Project name required (non-interactive mode).") {
		t.Fatalf("unexpected output: %q", out.String())
	}
}

func TestRunProjectsUseInteractivePrompt(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	path := seedGlobalProjects(t, map[string]workspace.ProjectEntry{
		"alpha": {Path: "/tmp/alpha"},
		"beta":  {Path: "/tmp/beta"},
	})
	setTerminal(t, true)

	var out bytes.Buffer
	deps := Dependencies{Out: &out, Prompter: stubPrompter{selectedVal: "alpha"}}
	exitCode := Run([]string{"projects", "use"}, deps)
	if exitCode != 0 {
		t.Fatalf("expected exit code 0, got %d\noutput: %s", exitCode, out.String())
	}

	cfg, err := workspace.LoadGlobalConfig(path)
	if err != nil {
		t.Fatalf("load global config: %v", err)
	}
	if cfg.ActiveProject != "alpha" {
		t.Fatalf("unexpected active project: %s", cfg.ActiveProject)
	}
}

func TestRunProjectsRemove(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	path := seedGlobalProjects(t, map[string]workspace.ProjectEntry{
		"alpha": {Path: "/tmp/alpha"},
		"beta":  {Path: "/tmp/beta"},
	})

	var out bytes.Buffer
	exitCode := Run([]string{"projects", "remove", "alpha"}, Dependencies{Out: &out})
	if exitCode != 0 {
		t.Fatalf("expected exit code 0, got %d\noutput: %s", exitCode, out.String())
	}
	if !strings.Contains(out.String(), "Removed project 'alpha'") {
		t.Fatalf("unexpected output: %q", out.String())
	}

	cfg, err := workspace.LoadGlobalConfig(path)
	if err != nil {
		t.Fatalf("load global config: %v", err)
	}
	if _, ok := cfg.Projects["alpha"]; ok {
		t.Fatalf("expected alpha removed, got %+v", cfg.Projects)
	}
	if _, ok := cfg.Projects["beta"]; !ok {
		t.Fatalf("expected beta kept, got %+v", cfg.Projects)
	}
}

func TestResolveProjectSelectorIndex(t *testing.T) {
	cfg := workspace.GlobalConfig{
		Projects: map[string]workspace.ProjectEntry{
			"old": {LastUsed: "2026-01-01T00:00:00Z"},
			"new": {LastUsed: "2026-02-01T00:00:00Z"},
		},
	}

	name, err := resolveProjectSelector(cfg, "1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if name != "new" {
		t.Fatalf("expected most recent project, got %s", name)
	}

	if _, err := resolveProjectSelector(cfg, "9"); err == nil {
		t.Fatalf("expected error for out-of-range index")
	}
}
