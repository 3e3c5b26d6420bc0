// Where: cli/internal/app/build.go
// What: Build command handler.
// Why: Resolve the target, collect flag overrides, and run the build workflow.
package app

import (
	"io"

	"github.com/poruru-code/vue-serve-box/cli/internal/workflows"
)

// BuildCmd builds production assets for a build target.
type BuildCmd struct {
	Ref   string  `arg:"" optional:"" help:"Target reference: project:target[:configuration], or a bare target name"`
	Mode  *string `help:"Webpack mode for this run"`
	Dest  *string `help:"Output directory, overrides the target's outputDir"`
	Watch *bool   `help:"Rebuild on source changes"`
	Force bool    `help:"Auto-unset stale selection environment variables"`
}

func runBuild(cli CLI, deps Dependencies, out io.Writer) int {
	ctxInfo, err := resolveCommandContext(deps)
	if err != nil {
		return exitWithError(out, err)
	}
	ref, err := resolveTargetRef(cli, cli.Build.Ref, ctxInfo, newResolveOptions(cli.Build.Force))
	if err != nil {
		return exitWithError(out, err)
	}
	resolved, err := ctxInfo.Resolver.Resolve(ref)
	if err != nil {
		return exitWithError(out, err)
	}

	overrides := buildOverrides(cli.Build)
	rememberTarget(deps, out, ctxInfo, ref, stringOverride(overrides, "mode"))

	ui := newUI(out)
	workflow := workflows.NewBuildWorkflow(
		newOptionValidator(), newOptionResolver(ui), deps.Stager, deps.Builder, ui,
	)

	ctx, stop := signalContext()
	defer stop()

	if _, err := workflow.Run(ctx, workflows.BuildRequest{
		WorkspaceRoot: ctxInfo.Root,
		Ref:           ref,
		Resolved:      resolved,
		Overrides:     overrides,
	}); err != nil {
		return exitWithError(out, err)
	}
	return 0
}

// buildOverrides copies only the flags the invocation actually set. The
// --dest flag maps onto the outputDir option.
func buildOverrides(cmd BuildCmd) map[string]any {
	overrides := map[string]any{}
	if cmd.Mode != nil {
		overrides["mode"] = *cmd.Mode
	}
	if cmd.Dest != nil {
		overrides["outputDir"] = *cmd.Dest
	}
	if cmd.Watch != nil {
		overrides["watch"] = *cmd.Watch
	}
	return overrides
}
