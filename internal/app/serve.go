// Where: cli/internal/app/serve.go
// What: Serve command handler.
// Why: Resolve the target, collect flag overrides, and run the dev server workflow.
package app

import (
	"io"

	"github.com/poruru-code/vue-serve-box/cli/internal/workflows"
)

// ServeCmd starts the dev server for a serve target.
type ServeCmd struct {
	Ref    string  `arg:"" optional:"" help:"Target reference: project:target[:configuration], or a bare target name"`
	Mode   *string `help:"Webpack mode for this run"`
	Host   *string `help:"Host the dev server binds"`
	Port   *int    `help:"Port the dev server binds (0 picks a free port)"`
	HTTPS  *bool   `name:"https" help:"Serve over HTTPS"`
	Public *string `help:"Public URL the dev server is reachable at"`
	Open   *bool   `help:"Open the browser once the server is ready"`
	Copy   *bool   `help:"Copy the dev server URL to the clipboard"`
	Force  bool    `help:"Auto-unset stale selection environment variables"`
}

func runServe(cli CLI, deps Dependencies, out io.Writer) int {
	ctxInfo, err := resolveCommandContext(deps)
	if err != nil {
		return exitWithError(out, err)
	}
	ref, err := resolveTargetRef(cli, cli.Serve.Ref, ctxInfo, newResolveOptions(cli.Serve.Force))
	if err != nil {
		return exitWithError(out, err)
	}
	resolved, err := ctxInfo.Resolver.Resolve(ref)
	if err != nil {
		return exitWithError(out, err)
	}

	overrides := serveOverrides(cli.Serve)
	rememberTarget(deps, out, ctxInfo, ref, stringOverride(overrides, "mode"))

	ui := newUI(out)
	workflow := workflows.NewServeWorkflow(
		ctxInfo.Resolver, newOptionValidator(), newOptionResolver(ui), deps.Stager, deps.Server, ui,
	)

	ctx, stop := signalContext()
	defer stop()

	if _, err := workflow.Run(ctx, workflows.ServeRequest{
		WorkspaceRoot: ctxInfo.Root,
		Ref:           ref,
		Resolved:      resolved,
		Overrides:     overrides,
	}); err != nil {
		return exitWithError(out, err)
	}
	return 0
}

// serveOverrides copies only the flags the invocation actually set.
func serveOverrides(cmd ServeCmd) map[string]any {
	overrides := map[string]any{}
	if cmd.Mode != nil {
		overrides["mode"] = *cmd.Mode
	}
	if cmd.Host != nil {
		overrides["host"] = *cmd.Host
	}
	if cmd.Port != nil {
		overrides["port"] = *cmd.Port
	}
	if cmd.HTTPS != nil {
		overrides["https"] = *cmd.HTTPS
	}
	if cmd.Public != nil {
		overrides["public"] = *cmd.Public
	}
	if cmd.Open != nil {
		overrides["open"] = *cmd.Open
	}
	if cmd.Copy != nil {
		overrides["copy"] = *cmd.Copy
	}
	return overrides
}

func stringOverride(overrides map[string]any, key string) string {
	value, _ := overrides[key].(string)
	return value
}
