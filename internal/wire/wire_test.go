// Where: cli/internal/wire/wire_test.go
// What: Tests for CLI dependency wiring.
// Why: Ensure BuildDependencies behaves under various init scenarios.
package wire

import (
	"bytes"
	"errors"
	"testing"
)

func TestBuildDependenciesSuccess(t *testing.T) {
	origGetwd := Getwd
	t.Cleanup(func() {
		Getwd = origGetwd
	})

	Getwd = func() (string, error) {
		return "/project", nil
	}

	deps, err := BuildDependencies()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if deps.WorkDir != "/project" {
		t.Fatalf("unexpected work dir: %s", deps.WorkDir)
	}
	if deps.Out == nil {
		t.Fatalf("expected output writer to be wired")
	}
	if deps.Prompter == nil {
		t.Fatalf("expected prompter to be wired")
	}
	if deps.DetectorFactory == nil {
		t.Fatalf("expected detector factory to be wired")
	}
	if deps.Stager == nil || deps.Server == nil || deps.Builder == nil {
		t.Fatalf("expected stager, server, and builder to be wired")
	}
}

func TestBuildDependenciesGetwdError(t *testing.T) {
	origGetwd := Getwd
	t.Cleanup(func() {
		Getwd = origGetwd
	})

	Getwd = func() (string, error) {
		return "", errors.New("getwd failed")
	}

	if _, err := BuildDependencies(); err == nil {
		t.Fatalf("expected error when Getwd fails")
	}
}

func TestWarnfWritesToStderr(t *testing.T) {
	origStderr := Stderr
	t.Cleanup(func() {
		Stderr = origStderr
	})

	var buf bytes.Buffer
	Stderr = &buf

	warnf("lock file unreadable")
	if got := buf.String(); got != "⚠️  lock file unreadable\n" {
		t.Fatalf("unexpected warning output: %q", got)
	}
}
