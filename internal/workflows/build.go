// Where: cli/internal/workflows/build.go
// What: Build workflow orchestration.
// Why: Encapsulate build-specific logic without CLI concerns.
package workflows

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/poruru-code/vue-serve-box/cli/internal/cliservice"
	"github.com/poruru-code/vue-serve-box/cli/internal/meta"
	"github.com/poruru-code/vue-serve-box/cli/internal/options"
	"github.com/poruru-code/vue-serve-box/cli/internal/ports"
	"github.com/poruru-code/vue-serve-box/cli/internal/target"
)

// BuildRequest captures the inputs required to run a build.
type BuildRequest struct {
	WorkspaceRoot string
	Ref           target.Ref
	Resolved      target.Resolved
	// Overrides are CLI flag options, merged over the resolved target
	// options with the highest priority.
	Overrides map[string]any
}

// BuildResult contains feedback returned by the workflow.
type BuildResult struct {
	OutputDir   string
	OverlayPath string
}

// BuildWorkflow validates a build target, resolves its option layers, stages
// the config overlay, and runs the one-shot delegate build.
type BuildWorkflow struct {
	Validator     ports.OptionValidator
	Options       ports.OptionResolver
	Stager        ports.Stager
	Builder       ports.Builder
	UserInterface ports.UserInterface
}

// NewBuildWorkflow constructs a BuildWorkflow.
func NewBuildWorkflow(validator ports.OptionValidator, resolver ports.OptionResolver, stager ports.Stager,
	builder ports.Builder, ui ports.UserInterface,
) BuildWorkflow {
	return BuildWorkflow{
		Validator:     validator,
		Options:       resolver,
		Stager:        stager,
		Builder:       builder,
		UserInterface: ui,
	}
}

// Run executes the build workflow.
func (w BuildWorkflow) Run(ctx context.Context, req BuildRequest) (BuildResult, error) {
	var result BuildResult

	if req.Resolved.Target.Executor != meta.ExecutorBuild {
		return result, fmt.Errorf("target %s declares executor %q; pick a %s target", req.Ref.String(), req.Resolved.Target.Executor, meta.ExecutorBuild)
	}

	if w.Validator == nil {
		return result, errors.New("option validator not configured")
	}
	if err := w.Validator.Validate(meta.ExecutorBuild, req.Resolved.Options); err != nil {
		return result, err
	}

	invocation, err := options.MergeMaps(req.Resolved.Options, req.Overrides)
	if err != nil {
		return result, fmt.Errorf("merge build overrides: %w", err)
	}

	if w.Options == nil {
		return result, errors.New("option resolver not configured")
	}
	resolved, err := w.Options.ResolveBuild(options.Inputs{
		ProjectDir: req.Resolved.ProjectDir,
		Invocation: invocation,
	})
	if err != nil {
		return result, err
	}
	result.OutputDir = absOutputDir(req.Resolved.ProjectDir, resolved.OutputDir)

	if w.Stager == nil {
		return result, errors.New("stager not configured")
	}
	result.OverlayPath, err = w.Stager.Stage(ports.StageRequest{
		WorkspaceRoot: req.WorkspaceRoot,
		ProjectDir:    req.Resolved.ProjectDir,
		Project:       req.Ref.Project,
		Target:        req.Ref.Target,
		Build:         resolved,
	})
	if err != nil {
		return result, err
	}

	printBuildPlan(w.UserInterface, req.Ref, resolved, result.OutputDir)

	if w.Builder == nil {
		return result, errors.New("builder not configured")
	}
	if err := w.Builder.Build(ctx, cliservice.BuildRequest{
		ProjectDir:    req.Resolved.ProjectDir,
		WorkspaceRoot: req.WorkspaceRoot,
		OverlayPath:   result.OverlayPath,
		OutputDir:     result.OutputDir,
		Options:       resolved,
	}); err != nil {
		return result, err
	}

	if w.UserInterface != nil {
		w.UserInterface.Success("Build complete")
		w.UserInterface.Info("Next:")
		w.UserInterface.Info("  vsb serve   # Start the dev server")
		w.UserInterface.Info("  vsb info    # Inspect target state")
	}
	return result, nil
}

// absOutputDir anchors a relative outputDir at the project directory, matching
// where the delegate writes when invoked there.
func absOutputDir(projectDir, outputDir string) string {
	if outputDir == "" {
		outputDir = options.DefaultOutputDir
	}
	if filepath.IsAbs(outputDir) {
		return filepath.Clean(outputDir)
	}
	return filepath.Join(projectDir, outputDir)
}

func printBuildPlan(ui ports.UserInterface, ref target.Ref, build options.BuildOptions, outputDir string) {
	if ui == nil {
		return
	}
	rows := []ports.KeyValue{
		{Key: "Target", Value: ref.String()},
		{Key: "Mode", Value: build.Mode},
		{Key: "Output", Value: outputDir},
	}
	ui.Block("📦", "Build:", rows)
}
