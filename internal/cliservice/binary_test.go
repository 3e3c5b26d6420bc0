// Where: cli/internal/cliservice/binary_test.go
// What: Tests for delegate binary resolution.
// Why: Validate the project-local, hoisted, and PATH fallback order.
package cliservice

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/poruru-code/vue-serve-box/cli/internal/meta"
)

func TestResolveBinaryPrefersProjectInstall(t *testing.T) {
	t.Setenv("VSB_SERVICE_BIN", "")
	root := t.TempDir()
	projectDir := filepath.Join(root, "apps", "storefront")
	projectBin := writeServiceBinary(t, projectDir)
	writeServiceBinary(t, root)

	path, err := ResolveBinary(projectDir, root)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if path != projectBin {
		t.Fatalf("expected project binary %s, got %s", projectBin, path)
	}
}

func TestResolveBinaryFallsBackToWorkspace(t *testing.T) {
	t.Setenv("VSB_SERVICE_BIN", "")
	root := t.TempDir()
	projectDir := filepath.Join(root, "apps", "storefront")
	rootBin := writeServiceBinary(t, root)

	path, err := ResolveBinary(projectDir, root)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if path != rootBin {
		t.Fatalf("expected hoisted binary %s, got %s", rootBin, path)
	}
}

func TestResolveBinaryEnvOverrideWins(t *testing.T) {
	root := t.TempDir()
	projectDir := filepath.Join(root, "apps", "storefront")
	writeServiceBinary(t, projectDir)

	override := filepath.Join(t.TempDir(), "custom-cli-service")
	if err := os.WriteFile(override, []byte("#!/bin/sh\n"), 0o755); err != nil {
		t.Fatalf("write override: %v", err)
	}
	t.Setenv("VSB_SERVICE_BIN", override)

	path, err := ResolveBinary(projectDir, root)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if path != override {
		t.Fatalf("expected override %s, got %s", override, path)
	}
}

func TestResolveBinaryEnvOverrideMustExist(t *testing.T) {
	t.Setenv("VSB_SERVICE_BIN", filepath.Join(t.TempDir(), "missing"))

	_, err := ResolveBinary(t.TempDir(), t.TempDir())
	if err == nil {
		t.Fatalf("expected error for dangling override")
	}
}

func TestResolveBinaryUsesPath(t *testing.T) {
	t.Setenv("VSB_SERVICE_BIN", "")
	pathDir := t.TempDir()
	bin := filepath.Join(pathDir, meta.ServiceBinary)
	if err := os.WriteFile(bin, []byte("#!/bin/sh\n"), 0o755); err != nil {
		t.Fatalf("write binary: %v", err)
	}
	t.Setenv("PATH", pathDir)

	path, err := ResolveBinary(t.TempDir(), t.TempDir())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if path != bin {
		t.Fatalf("expected PATH binary %s, got %s", bin, path)
	}
}

func TestResolveBinaryNotFound(t *testing.T) {
	t.Setenv("VSB_SERVICE_BIN", "")
	t.Setenv("PATH", t.TempDir())

	_, err := ResolveBinary(t.TempDir(), t.TempDir())
	if err == nil {
		t.Fatalf("expected error when no binary is installed")
	}
}

func writeServiceBinary(t *testing.T, dir string) string {
	t.Helper()
	binDir := filepath.Join(dir, "node_modules", ".bin")
	if err := os.MkdirAll(binDir, 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", binDir, err)
	}
	path := filepath.Join(binDir, meta.ServiceBinary)
	if err := os.WriteFile(path, []byte("#!/bin/sh\n"), 0o755); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}
