// Where: cli/internal/app/complete_test.go
// What: Tests for the hidden __complete helper.
// Why: Shell completion candidates must be sorted and failure-silent.
package app

import (
	"bytes"
	"testing"

	"github.com/poruru-code/vue-serve-box/cli/internal/workspace"
)

func TestRunCompleteProject(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	seedGlobalProjects(t, map[string]workspace.ProjectEntry{
		"storefront": {Path: "/tmp/storefront"},
		"admin":      {Path: "/tmp/admin"},
	})

	var out bytes.Buffer
	exitCode := Run([]string{"__complete", "project"}, Dependencies{Out: &out})
	if exitCode != 0 {
		t.Fatalf("expected exit code 0, got %d", exitCode)
	}
	if out.String() != "admin\nstorefront\n" {
		t.Fatalf("unexpected candidates: %q", out.String())
	}
}

func TestRunCompleteTarget(t *testing.T) {
	root, projectDir := setupWorkspace(t, "demo")
	writeProjectFixture(t, projectDir, "")

	var out bytes.Buffer
	exitCode := Run([]string{"__complete", "target"}, Dependencies{Out: &out, WorkDir: root})
	if exitCode != 0 {
		t.Fatalf("expected exit code 0, got %d", exitCode)
	}
	if out.String() != "app\ndev\n" {
		t.Fatalf("unexpected candidates: %q", out.String())
	}
}

func TestRunCompleteTargetSilentWithoutWorkspace(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("VSB_WORKSPACE", "")

	var out bytes.Buffer
	exitCode := Run([]string{"__complete", "target"}, Dependencies{Out: &out})
	if exitCode != 0 {
		t.Fatalf("expected exit code 0, got %d", exitCode)
	}
	if out.String() != "" {
		t.Fatalf("expected no candidates, got %q", out.String())
	}
}
