// Where: cli/internal/app/remember.go
// What: Persist last-used target selections.
// Why: Feed the next invocation's defaults from what the user actually ran.
package app

import (
	"fmt"
	"io"
	"time"

	"github.com/poruru-code/vue-serve-box/cli/internal/target"
	"github.com/poruru-code/vue-serve-box/cli/internal/workspace"
)

// rememberTarget records the run's selection: last_target in project.yaml,
// plus the per-project default and recency stamp in the global config.
// Failures only warn; the run itself proceeds regardless.
func rememberTarget(deps Dependencies, out io.Writer, ctxInfo commandContext, ref target.Ref, mode string) {
	if projectDir, err := ctxInfo.Resolver.ProjectDir(ref.Project); err == nil {
		if decl, loadErr := workspace.LoadProjectFile(projectDir); loadErr == nil && decl.App.LastTarget != ref.Target {
			decl.App.LastTarget = ref.Target
			if saveErr := workspace.SaveProjectFile(projectDir, decl); saveErr != nil {
				fmt.Fprintf(out, "Warning: record last target: %v\n", saveErr)
			}
		}
	}

	cfg := workspace.NormalizeGlobalConfig(ctxInfo.Global)
	entry := cfg.Projects[ref.Project]
	if entry.Path == "" {
		if dir, ok := ctxInfo.Workspace.ProjectDir(ctxInfo.Root, ref.Project); ok {
			entry.Path = dir
		}
	}
	entry.LastUsed = now(deps).Format(time.RFC3339)
	cfg.Projects[ref.Project] = entry
	cfg.TargetDefaults[ref.Project] = workspace.TargetDefaults{
		Target:        ref.Target,
		Configuration: ref.Configuration,
		Mode:          mode,
	}
	if err := workspace.SaveGlobalConfig(ctxInfo.GlobalPath, cfg); err != nil {
		fmt.Fprintf(out, "Warning: record target defaults: %v\n", err)
	}
}
