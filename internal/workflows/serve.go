// Where: cli/internal/workflows/serve.go
// What: Serve workflow orchestration.
// Why: Keep CLI commands thin while hosting the dev-server pipeline in one place.
package workflows

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/poruru-code/vue-serve-box/cli/internal/devserver"
	"github.com/poruru-code/vue-serve-box/cli/internal/meta"
	"github.com/poruru-code/vue-serve-box/cli/internal/options"
	"github.com/poruru-code/vue-serve-box/cli/internal/ports"
	"github.com/poruru-code/vue-serve-box/cli/internal/staging"
	"github.com/poruru-code/vue-serve-box/cli/internal/target"
)

// ServeRequest captures the inputs required for the Serve workflow.
type ServeRequest struct {
	WorkspaceRoot string
	Ref           target.Ref
	Resolved      target.Resolved
	// Overrides are CLI flag options, merged over the resolved target
	// options with the highest priority.
	Overrides map[string]any
}

// ServeResult contains feedback returned by the workflow.
type ServeResult struct {
	// Emitted reports whether the server became ready and produced a result.
	Emitted bool
	Result  devserver.Result
}

// ServeWorkflow validates a serve target, resolves its option layers and the
// linked build target, stages the config overlay, and runs the dev server
// session until it stops.
type ServeWorkflow struct {
	Targets       ports.TargetResolver
	Validator     ports.OptionValidator
	Options       ports.OptionResolver
	Stager        ports.Stager
	Server        ports.Server
	UserInterface ports.UserInterface
}

// NewServeWorkflow constructs a ServeWorkflow.
func NewServeWorkflow(targets ports.TargetResolver, validator ports.OptionValidator, resolver ports.OptionResolver,
	stager ports.Stager, server ports.Server, ui ports.UserInterface,
) ServeWorkflow {
	return ServeWorkflow{
		Targets:       targets,
		Validator:     validator,
		Options:       resolver,
		Stager:        stager,
		Server:        server,
		UserInterface: ui,
	}
}

// Run executes the Serve workflow with the given request. It blocks until the
// dev server stops; the ready result, when one was produced, is returned even
// when the session later ended with an error.
func (w ServeWorkflow) Run(ctx context.Context, req ServeRequest) (ServeResult, error) {
	var result ServeResult

	if req.Resolved.Target.Executor != meta.ExecutorServe {
		return result, fmt.Errorf("target %s declares executor %q; pick a %s target", req.Ref.String(), req.Resolved.Target.Executor, meta.ExecutorServe)
	}

	if w.Validator == nil {
		return result, errors.New("option validator not configured")
	}
	if err := w.Validator.Validate(meta.ExecutorServe, req.Resolved.Options); err != nil {
		return result, err
	}

	invocation, err := options.MergeMaps(req.Resolved.Options, req.Overrides)
	if err != nil {
		return result, fmt.Errorf("merge serve overrides: %w", err)
	}

	build, buildRef, err := w.resolveBuildTarget(req.Ref, invocation)
	if err != nil {
		return result, err
	}
	if err := w.Validator.Validate(meta.ExecutorBuild, build.Options); err != nil {
		return result, err
	}

	if w.Options == nil {
		return result, errors.New("option resolver not configured")
	}
	resolution, err := w.Options.ResolveServe(options.ServeInputs{
		Serve: options.Inputs{ProjectDir: req.Resolved.ProjectDir, Invocation: invocation},
		Build: options.Inputs{ProjectDir: build.ProjectDir, Invocation: build.Options},
	})
	if err != nil {
		return result, err
	}

	if w.Stager == nil {
		return result, errors.New("stager not configured")
	}
	overlayPath, err := w.Stager.Stage(ports.StageRequest{
		WorkspaceRoot: req.WorkspaceRoot,
		ProjectDir:    build.ProjectDir,
		Project:       req.Ref.Project,
		Target:        req.Ref.Target,
		Serve:         &resolution.Serve,
		Build:         resolution.Build,
	})
	if err != nil {
		return result, err
	}

	printServePlan(w.UserInterface, req.Ref, buildRef, resolution.Serve)

	if w.Server == nil {
		return result, errors.New("server not configured")
	}
	err = w.Server.Serve(ctx, devserver.Request{
		WorkspaceRoot: req.WorkspaceRoot,
		ProjectDir:    build.ProjectDir,
		OverlayPath:   overlayPath,
		LockPath:      staging.LockPath(req.WorkspaceRoot, req.Ref.Project, req.Ref.Target),
		TargetRef:     req.Ref.String(),
		Serve:         resolution.Serve,
	}, func(r devserver.Result) {
		result.Emitted = true
		result.Result = r
	})
	if err != nil {
		return result, err
	}

	if w.UserInterface != nil {
		w.UserInterface.Success("Dev server stopped")
	}
	return result, nil
}

// resolveBuildTarget looks up the build target the serve invocation links to.
// The reference may be a bare target name, scoped to the serve target's project.
func (w ServeWorkflow) resolveBuildTarget(ref target.Ref, invocation map[string]any) (target.Resolved, target.Ref, error) {
	raw, _ := invocation["buildTarget"].(string)
	if strings.TrimSpace(raw) == "" {
		return target.Resolved{}, target.Ref{}, fmt.Errorf("target %s declares no buildTarget. Add one to its options in %s.", ref.String(), meta.ProjectFile)
	}

	buildRef, err := target.ParseRefIn(ref.Project, raw)
	if err != nil {
		return target.Resolved{}, target.Ref{}, fmt.Errorf("buildTarget of %s: %w", ref.String(), err)
	}

	if w.Targets == nil {
		return target.Resolved{}, target.Ref{}, errors.New("target resolver not configured")
	}
	build, err := w.Targets.Resolve(buildRef)
	if err != nil {
		return target.Resolved{}, target.Ref{}, err
	}
	if build.Target.Executor != meta.ExecutorBuild {
		return target.Resolved{}, target.Ref{}, fmt.Errorf("buildTarget %s declares executor %q, want %q", buildRef.String(), build.Target.Executor, meta.ExecutorBuild)
	}
	return build, buildRef, nil
}

func printServePlan(ui ports.UserInterface, ref, buildRef target.Ref, serve options.ServeOptions) {
	if ui == nil {
		return
	}
	rows := []ports.KeyValue{
		{Key: "Target", Value: ref.String()},
		{Key: "Build target", Value: buildRef.String()},
		{Key: "Mode", Value: serve.Mode},
	}
	ui.Block("🚀", "Dev server:", rows)
}
