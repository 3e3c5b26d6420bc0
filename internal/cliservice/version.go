// Where: cli/internal/cliservice/version.go
// What: Delegate version probing.
// Why: Let info surface which vue-cli-service build a project runs.
package cliservice

import (
	"context"
	"fmt"
	"strings"
)

// Version asks the delegate binary for its version string.
func Version(ctx context.Context, runner CommandRunner, dir, binary string) (string, error) {
	if runner == nil {
		return "", fmt.Errorf("command runner is nil")
	}
	out, err := runner.RunOutput(ctx, dir, nil, binary, "--version")
	if err != nil {
		return "", fmt.Errorf("probe %s version: %w", binary, err)
	}
	return strings.TrimSpace(string(out)), nil
}
