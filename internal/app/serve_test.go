// Where: cli/internal/app/serve_test.go
// What: Tests for the serve command handler.
// Why: Ensure target selection, flag overrides, and bookkeeping work end to end.
package app

import (
	"bytes"
	"strings"
	"testing"

	"github.com/poruru-code/vue-serve-box/cli/internal/devserver"
	"github.com/poruru-code/vue-serve-box/cli/internal/workspace"
)

func TestRunServeHappyPath(t *testing.T) {
	root, projectDir := setupWorkspace(t, "demo")
	writeProjectFixture(t, projectDir, "")

	stager := &recordStager{}
	server := &recordServer{result: &devserver.Result{Success: true, BaseURL: "http://localhost:8080/"}}

	var out bytes.Buffer
	deps := Dependencies{
		Out:     &out,
		WorkDir: root,
		Stager:  stager,
		Server:  server,
	}

	exitCode := Run([]string{"serve", "dev"}, deps)
	if exitCode != 0 {
		t.Fatalf("expected exit code 0, got %d\noutput: %s", exitCode, out.String())
	}
	if server.request.TargetRef != "demo:dev" {
		t.Fatalf("unexpected target ref: %s", server.request.TargetRef)
	}
	if server.request.ProjectDir != projectDir {
		t.Fatalf("unexpected project dir: %s", server.request.ProjectDir)
	}
	if !strings.Contains(out.String(), "Dev server stopped") {
		t.Fatalf("expected stop message, got %q", out.String())
	}
}

func TestRunServeRecordsSelection(t *testing.T) {
	root, projectDir := setupWorkspace(t, "demo")
	writeProjectFixture(t, projectDir, "")

	var out bytes.Buffer
	deps := Dependencies{
		Out:     &out,
		WorkDir: root,
		Stager:  &recordStager{},
		Server:  &recordServer{},
	}

	if exitCode := Run([]string{"serve", "dev"}, deps); exitCode != 0 {
		t.Fatalf("expected exit code 0, got %d\noutput: %s", exitCode, out.String())
	}

	decl, err := workspace.LoadProjectFile(projectDir)
	if err != nil {
		t.Fatalf("load project file: %v", err)
	}
	if decl.App.LastTarget != "dev" {
		t.Fatalf("expected last_target dev, got %q", decl.App.LastTarget)
	}

	path, err := workspace.GlobalConfigPath()
	if err != nil {
		t.Fatalf("global config path: %v", err)
	}
	cfg, err := workspace.LoadGlobalConfig(path)
	if err != nil {
		t.Fatalf("load global config: %v", err)
	}
	if cfg.TargetDefaults["demo"].Target != "dev" {
		t.Fatalf("expected target default dev, got %q", cfg.TargetDefaults["demo"].Target)
	}
	if cfg.Projects["demo"].LastUsed == "" {
		t.Fatalf("expected last_used stamp")
	}
}

func TestRunServeFlagOverrides(t *testing.T) {
	root, projectDir := setupWorkspace(t, "demo")
	writeProjectFixture(t, projectDir, "")

	stager := &recordStager{}
	var out bytes.Buffer
	deps := Dependencies{
		Out:     &out,
		WorkDir: root,
		Stager:  stager,
		Server:  &recordServer{},
	}

	exitCode := Run([]string{"serve", "dev", "--port", "4000", "--mode", "staging"}, deps)
	if exitCode != 0 {
		t.Fatalf("expected exit code 0, got %d\noutput: %s", exitCode, out.String())
	}
	if stager.request.Serve == nil {
		t.Fatalf("expected serve options in stage request")
	}
	if stager.request.Serve.Port != 4000 {
		t.Fatalf("unexpected port: %d", stager.request.Serve.Port)
	}
	if stager.request.Serve.Mode != "staging" {
		t.Fatalf("unexpected mode: %s", stager.request.Serve.Mode)
	}
	if stager.request.Serve.Host != "0.0.0.0" {
		t.Fatalf("expected default host, got %s", stager.request.Serve.Host)
	}
}

func TestRunServeUsesLastTarget(t *testing.T) {
	root, projectDir := setupWorkspace(t, "demo")
	writeProjectFixture(t, projectDir, "dev")

	server := &recordServer{}
	var out bytes.Buffer
	deps := Dependencies{
		Out:     &out,
		WorkDir: root,
		Stager:  &recordStager{},
		Server:  server,
	}

	if exitCode := Run([]string{"serve"}, deps); exitCode != 0 {
		t.Fatalf("expected exit code 0, got %d\noutput: %s", exitCode, out.String())
	}
	if server.request.TargetRef != "demo:dev" {
		t.Fatalf("unexpected target ref: %s", server.request.TargetRef)
	}
}

func TestRunServeTargetFlag(t *testing.T) {
	root, projectDir := setupWorkspace(t, "demo")
	writeProjectFixture(t, projectDir, "")

	server := &recordServer{}
	var out bytes.Buffer
	deps := Dependencies{
		Out:     &out,
		WorkDir: root,
		Stager:  &recordStager{},
		Server:  server,
	}

	if exitCode := Run([]string{"-t", "dev", "serve"}, deps); exitCode != 0 {
		t.Fatalf("expected exit code 0, got %d\noutput: %s", exitCode, out.String())
	}
	if server.request.TargetRef != "demo:dev" {
		t.Fatalf("unexpected target ref: %s", server.request.TargetRef)
	}
}

func TestRunServeRejectsBuildTarget(t *testing.T) {
	root, projectDir := setupWorkspace(t, "demo")
	writeProjectFixture(t, projectDir, "")

	var out bytes.Buffer
	deps := Dependencies{
		Out:     &out,
		WorkDir: root,
		Stager:  &recordStager{},
		Server:  &recordServer{},
	}

	exitCode := Run([]string{"serve", "app"}, deps)
	if exitCode == 0 {
		t.Fatalf("expected non-zero exit code for a build target")
	}
	if !strings.Contains(out.String(), "declares executor") {
		t.Fatalf("unexpected output: %q", out.String())
	}
}

func TestRunServeNoActiveTarget(t *testing.T) {
	root, projectDir := setupWorkspace(t, "demo")
	writeProjectFixture(t, projectDir, "")

	var out bytes.Buffer
	deps := Dependencies{
		Out:     &out,
		WorkDir: root,
		Stager:  &recordStager{},
		Server:  &recordServer{},
	}

	exitCode := Run([]string{"serve"}, deps)
	if exitCode == 0 {
		t.Fatalf("expected non-zero exit code without an active target")
	}
	if !strings.Contains(out.String(), "No active target") {
		t.Fatalf("unexpected output: %q", out.String())
	}
}
