// Where: cli/internal/workflows/run.go
// What: Generic target execution dispatch.
// Why: Route a resolved target to the workflow its executor names.
package workflows

import (
	"context"
	"fmt"

	"github.com/poruru-code/vue-serve-box/cli/internal/meta"
	"github.com/poruru-code/vue-serve-box/cli/internal/target"
)

// RunRequest captures the inputs required to run an arbitrary target.
type RunRequest struct {
	WorkspaceRoot string
	Ref           target.Ref
	Resolved      target.Resolved
	Overrides     map[string]any
}

// RunWorkflow dispatches a target to the serve or build workflow based on the
// executor its declaration names.
type RunWorkflow struct {
	Serve ServeWorkflow
	Build BuildWorkflow
}

// NewRunWorkflow constructs a RunWorkflow.
func NewRunWorkflow(serve ServeWorkflow, build BuildWorkflow) RunWorkflow {
	return RunWorkflow{Serve: serve, Build: build}
}

// Run executes the target's executor. Unknown executor names are invocation
// errors.
func (w RunWorkflow) Run(ctx context.Context, req RunRequest) error {
	switch req.Resolved.Target.Executor {
	case meta.ExecutorServe:
		_, err := w.Serve.Run(ctx, ServeRequest{
			WorkspaceRoot: req.WorkspaceRoot,
			Ref:           req.Ref,
			Resolved:      req.Resolved,
			Overrides:     req.Overrides,
		})
		return err
	case meta.ExecutorBuild:
		_, err := w.Build.Run(ctx, BuildRequest{
			WorkspaceRoot: req.WorkspaceRoot,
			Ref:           req.Ref,
			Resolved:      req.Resolved,
			Overrides:     req.Overrides,
		})
		return err
	default:
		return fmt.Errorf("unknown executor: %s", req.Resolved.Target.Executor)
	}
}
