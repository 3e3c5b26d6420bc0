// Where: cli/internal/app/config_cmd_test.go
// What: Tests for the config set-workspace command.
package app

import (
	"bytes"
	"strings"
	"testing"

	"github.com/poruru-code/vue-serve-box/cli/internal/workspace"
)

func TestRunConfigSetWorkspace(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	root := t.TempDir()
	if err := workspace.SaveFile(root, workspace.File{Version: 1, Name: "demo"}); err != nil {
		t.Fatalf("save workspace file: %v", err)
	}

	var out bytes.Buffer
	exitCode := Run([]string{"config", "set-workspace", root}, Dependencies{Out: &out})
	if exitCode != 0 {
		t.Fatalf("expected exit code 0, got %d\noutput: %s", exitCode, out.String())
	}
	if !strings.Contains(out.String(), "updated workspace_path: "+root) {
		t.Fatalf("unexpected output: %q", out.String())
	}

	path, err := workspace.GlobalConfigPath()
	if err != nil {
		t.Fatalf("global config path: %v", err)
	}
	cfg, err := workspace.LoadGlobalConfig(path)
	if err != nil {
		t.Fatalf("load global config: %v", err)
	}
	if cfg.WorkspacePath != root {
		t.Fatalf("unexpected workspace path: %s", cfg.WorkspacePath)
	}
}

func TestRunConfigSetWorkspaceWarnsWithoutWorkspaceFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	dir := t.TempDir()

	var out bytes.Buffer
	exitCode := Run([]string{"config", "set-workspace", dir}, Dependencies{Out: &out})
	if exitCode != 0 {
		t.Fatalf("expected exit code 0, got %d\noutput: %s", exitCode, out.String())
	}
	if !strings.Contains(out.String(), "Warning") {
		t.Fatalf("expected warning, got %q", out.String())
	}
	if !strings.Contains(out.String(), "updated workspace_path:") {
		t.Fatalf("expected update notice, got %q", out.String())
	}
}

func TestRunConfigSetWorkspaceRequiresPath(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	var out bytes.Buffer
	exitCode := Run([]string{"config", "set-workspace"}, Dependencies{Out: &out})
	if exitCode == 0 {
		t.Fatalf("expected non-zero exit code without a path")
	}
	if !strings.Contains(out.String(), "Workspace path required.") {
		t.Fatalf("unexpected output: %q", out.String())
	}
}
