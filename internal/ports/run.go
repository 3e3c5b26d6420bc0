// Where: cli/internal/ports/run.go
// What: Ports needed by the serve and build workflows.
// Why: Provide stable contracts between CLI and orchestration logic.
package ports

import (
	"context"

	"github.com/poruru-code/vue-serve-box/cli/internal/devserver"
	"github.com/poruru-code/vue-serve-box/cli/internal/options"
	"github.com/poruru-code/vue-serve-box/cli/internal/target"
)

// TargetResolver looks up a target reference in the workspace and applies
// its configuration overlay.
type TargetResolver interface {
	Resolve(ref target.Ref) (target.Resolved, error)
}

// OptionValidator checks an options bag against an executor's schema.
type OptionValidator interface {
	Validate(executor string, opts map[string]any) error
}

// OptionResolver collapses defaults, the project option file, and the
// invocation options into typed executor options.
type OptionResolver interface {
	ResolveServe(in options.ServeInputs) (options.ServeResolution, error)
	ResolveBuild(in options.Inputs) (options.BuildOptions, error)
}

// StageRequest contains the parameters needed to stage a config overlay.
type StageRequest struct {
	WorkspaceRoot string
	// ProjectDir is the directory of the project the delegate runs in.
	ProjectDir string
	// Project and Target key the staging directory the overlay lands in.
	Project string
	Target  string
	// Serve is nil for a standalone build.
	Serve *options.ServeOptions
	Build options.BuildOptions
}

// Stager renders the service config overlay and writes it under the
// workspace staging directory, returning the written path.
type Stager interface {
	Stage(request StageRequest) (string, error)
}

// Server runs a dev server session until it stops. onResult receives the
// ready signal at most once.
type Server interface {
	Serve(ctx context.Context, request devserver.Request, onResult func(devserver.Result)) error
}
