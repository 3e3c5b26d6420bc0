// Where: cli/internal/state/target_state.go
// What: Target selection helpers for a project.
// Why: Resolve VSB_TARGET, last_target, and single-target defaults consistently.
package state

import (
	"fmt"
	"os"
	"strings"

	"github.com/poruru-code/vue-serve-box/cli/internal/workspace"
)

// TargetState holds target selection results.
type TargetState struct {
	HasTargets   bool
	ActiveTarget string
}

// TargetStateOptions configures target selection and interaction behavior.
type TargetStateOptions struct {
	TargetFlag string
	TargetEnv  string
	Project    workspace.ProjectFile
	// DefaultTarget is the per-project default remembered in the global
	// config. Consulted after last_target, before the single-target fallback.
	DefaultTarget string
	Force         bool
	Interactive   bool
	Prompt        PromptFunc
}

// ResolveTargetState resolves the active target for the project.
func ResolveTargetState(opts TargetStateOptions) (TargetState, error) {
	targets := opts.Project.Targets
	hasTargets := len(targets) > 0
	if !hasTargets {
		return TargetState{HasTargets: false}, fmt.Errorf(
			"No targets declared. Add a targets section to project.yaml first.",
		)
	}

	targetFlag := strings.TrimSpace(opts.TargetFlag)
	if targetFlag != "" {
		if _, ok := targets[targetFlag]; ok {
			return TargetState{HasTargets: true, ActiveTarget: targetFlag}, nil
		}
		return TargetState{HasTargets: true}, fmt.Errorf(
			"Target not registered: %s",
			targetFlag,
		)
	}

	targetEnv := strings.TrimSpace(opts.TargetEnv)
	if targetEnv != "" {
		if _, ok := targets[targetEnv]; ok {
			return TargetState{HasTargets: true, ActiveTarget: targetEnv}, nil
		}
		allowed, err := confirmUnset("VSB_TARGET", targetEnv, AppStateOptions{
			Force:       opts.Force,
			Interactive: opts.Interactive,
			Prompt:      opts.Prompt,
		})
		if err != nil {
			return TargetState{}, err
		}
		if !allowed {
			return TargetState{}, fmt.Errorf("VSB_TARGET %q not found", targetEnv)
		}
		_ = os.Unsetenv("VSB_TARGET")
	}

	lastTarget := strings.TrimSpace(opts.Project.App.LastTarget)
	if lastTarget != "" {
		if _, ok := targets[lastTarget]; ok {
			return TargetState{HasTargets: true, ActiveTarget: lastTarget}, nil
		}
	}

	defaultTarget := strings.TrimSpace(opts.DefaultTarget)
	if defaultTarget != "" {
		if _, ok := targets[defaultTarget]; ok {
			return TargetState{HasTargets: true, ActiveTarget: defaultTarget}, nil
		}
	}

	if len(targets) == 1 {
		for name := range targets {
			return TargetState{HasTargets: true, ActiveTarget: name}, nil
		}
	}

	return TargetState{HasTargets: true}, fmt.Errorf(
		"No active target. Pass project:target explicitly or set app.last_target in project.yaml.",
	)
}
