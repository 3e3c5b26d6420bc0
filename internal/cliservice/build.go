// Where: cli/internal/cliservice/build.go
// What: One-shot delegate build invocation.
// Why: Provide a minimal, testable entry point for running production builds.
package cliservice

import (
	"context"
	"fmt"

	"github.com/poruru-code/vue-serve-box/cli/internal/options"
)

// BuildRequest carries everything a delegate build run needs.
type BuildRequest struct {
	ProjectDir    string
	WorkspaceRoot string
	// Binary overrides delegate resolution when set.
	Binary      string
	OverlayPath string
	OutputDir   string
	Options     options.BuildOptions
}

// RunBuild executes vue-cli-service build in the project directory with the
// staged overlay wired through the environment.
func RunBuild(ctx context.Context, runner CommandRunner, req BuildRequest) error {
	if runner == nil {
		return fmt.Errorf("command runner is nil")
	}

	binary := req.Binary
	if binary == "" {
		resolved, err := ResolveBinary(req.ProjectDir, req.WorkspaceRoot)
		if err != nil {
			return err
		}
		binary = resolved
	}

	args := BuildArgs(req.Options, req.OutputDir)
	env := Env(req.OverlayPath, req.Options.Mode)
	return runner.Run(ctx, req.ProjectDir, env, binary, args...)
}
