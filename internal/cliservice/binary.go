// Where: cli/internal/cliservice/binary.go
// What: Locates the vue-cli-service binary for a project.
// Why: Prefer project-local installs over workspace hoisting and PATH.
package cliservice

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/poruru-code/vue-serve-box/cli/internal/constants"
	"github.com/poruru-code/vue-serve-box/cli/internal/envutil"
	"github.com/poruru-code/vue-serve-box/cli/internal/meta"
)

// ResolveBinary finds the delegate binary for the given project. Resolution
// order: VSB_SERVICE_BIN override, the project's node_modules/.bin, the
// workspace root's hoisted node_modules/.bin, then PATH.
func ResolveBinary(projectDir, workspaceRoot string) (string, error) {
	if override := strings.TrimSpace(envutil.GetHostEnv(constants.HostSuffixServiceBin)); override != "" {
		if _, err := os.Stat(override); err != nil {
			return "", fmt.Errorf("%s points to %s: %w", constants.EnvVSBServiceBin, override, err)
		}
		return override, nil
	}

	candidates := []string{
		filepath.Join(projectDir, "node_modules", ".bin", meta.ServiceBinary),
		filepath.Join(workspaceRoot, "node_modules", ".bin", meta.ServiceBinary),
	}
	for _, path := range candidates {
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path, nil
		}
	}

	if path, err := exec.LookPath(meta.ServiceBinary); err == nil {
		return path, nil
	}

	return "", fmt.Errorf(
		"%s not found. Install @vue/cli-service in the project or set %s.",
		meta.ServiceBinary, constants.EnvVSBServiceBin,
	)
}
