// Where: cli/internal/app/run.go
// What: Run command handler.
// Why: Execute an arbitrary target through the executor its declaration names.
package app

import (
	"io"

	"github.com/poruru-code/vue-serve-box/cli/internal/workflows"
)

// RunCmd runs a target by reference, dispatching on its executor.
type RunCmd struct {
	Ref   string `arg:"" help:"Target reference: project:target[:configuration], or a bare target name"`
	Force bool   `help:"Auto-unset stale selection environment variables"`
}

func runRun(cli CLI, deps Dependencies, out io.Writer) int {
	ctxInfo, err := resolveCommandContext(deps)
	if err != nil {
		return exitWithError(out, err)
	}
	ref, err := resolveTargetRef(cli, cli.Run.Ref, ctxInfo, newResolveOptions(cli.Run.Force))
	if err != nil {
		return exitWithError(out, err)
	}
	resolved, err := ctxInfo.Resolver.Resolve(ref)
	if err != nil {
		return exitWithError(out, err)
	}

	rememberTarget(deps, out, ctxInfo, ref, "")

	ui := newUI(out)
	serve := workflows.NewServeWorkflow(
		ctxInfo.Resolver, newOptionValidator(), newOptionResolver(ui), deps.Stager, deps.Server, ui,
	)
	build := workflows.NewBuildWorkflow(
		newOptionValidator(), newOptionResolver(ui), deps.Stager, deps.Builder, ui,
	)

	ctx, stop := signalContext()
	defer stop()

	if err := workflows.NewRunWorkflow(serve, build).Run(ctx, workflows.RunRequest{
		WorkspaceRoot: ctxInfo.Root,
		Ref:           ref,
		Resolved:      resolved,
	}); err != nil {
		return exitWithError(out, err)
	}
	return 0
}
