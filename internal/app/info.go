// Where: cli/internal/app/info.go
// What: Info command for config/state output.
// Why: Give users a quick view of configuration and current target status.
package app

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/poruru-code/vue-serve-box/cli/internal/cliservice"
	"github.com/poruru-code/vue-serve-box/cli/internal/meta"
	"github.com/poruru-code/vue-serve-box/cli/internal/version"
	"github.com/poruru-code/vue-serve-box/cli/internal/workspace"
)

// runInfo displays configuration details and the active target's state.
// Used by runNoArgs when vsb is invoked without arguments.
func runInfo(cli CLI, deps Dependencies, out io.Writer) int {
	opts := newResolveOptions(false)
	configPath, _, err := loadGlobalConfigWithPath()
	if err != nil {
		fmt.Fprintln(out, err)
		return 1
	}

	fmt.Fprintln(out, "⚙️  Config")
	fmt.Fprintf(out, "   version: %s\n", version.GetVersion())
	fmt.Fprintf(out, "   path:    %s\n", configPath)

	ctxInfo, err := resolveCommandContext(deps)
	if err != nil {
		fmt.Fprintln(out, err)
		return 1
	}
	fmt.Fprintf(out, "   workspace: %s\n", ctxInfo.Root)

	if len(projectCandidates(ctxInfo)) == 0 {
		fmt.Fprintln(out, "\n📦 No projects registered.")
		fmt.Fprintln(out, "   Run 'vsb projects add <dir>' to get started.")
		return 1
	}

	ref, err := resolveTargetRef(cli, "", ctxInfo, opts)
	if err != nil {
		fmt.Fprintln(out, err)
		return 1
	}
	resolved, err := ctxInfo.Resolver.Resolve(ref)
	if err != nil {
		fmt.Fprintln(out, err)
		return 1
	}

	fmt.Fprintln(out, "\n📦 Project")
	fmt.Fprintf(out, "   name: %s\n", ref.Project)
	fmt.Fprintf(out, "   dir:  %s\n", resolved.ProjectDir)

	fmt.Fprintln(out, "\n🎯 Target")
	fmt.Fprintf(out, "   ref:  %s\n", ref.String())
	fmt.Fprintf(out, "   exec: %s\n", resolved.Target.Executor)
	if buildTarget, _ := resolved.Options["buildTarget"].(string); strings.TrimSpace(buildTarget) != "" {
		fmt.Fprintf(out, "   build: %s\n", buildTarget)
	}
	if last := formatTargetDefaults(ctxInfo.Global.TargetDefaults[ref.Project]); last != "" {
		fmt.Fprintf(out, "   last: %s\n", last)
	}
	if delegate := probeDelegateVersion(resolved.ProjectDir, ctxInfo.Root); delegate != "" {
		fmt.Fprintf(out, "   %s: %s\n", meta.ServiceBinary, delegate)
	}

	stateValue := "unknown"
	if deps.DetectorFactory != nil {
		detector, err := deps.DetectorFactory(ctxInfo.Root, ref.Project, ref.Target)
		if err != nil {
			stateValue = fmt.Sprintf("error: %v", err)
		} else if detector != nil {
			current, err := detector.Detect()
			if err != nil {
				stateValue = fmt.Sprintf("error: %v", err)
			} else {
				stateValue = string(current)
			}
		}
	}

	fmt.Fprintln(out, "\n⚡ State")
	fmt.Fprintf(out, "   curr: %s\n", stateValue)

	return 0
}

// formatTargetDefaults renders the remembered selection as
// "target[:configuration] (mode)", or "" when nothing was stamped yet.
func formatTargetDefaults(defaults workspace.TargetDefaults) string {
	last := strings.TrimSpace(defaults.Target)
	if last == "" {
		return ""
	}
	if configuration := strings.TrimSpace(defaults.Configuration); configuration != "" {
		last += ":" + configuration
	}
	if mode := strings.TrimSpace(defaults.Mode); mode != "" {
		last = fmt.Sprintf("%s (%s)", last, mode)
	}
	return last
}

// probeDelegateVersion reports the project's vue-cli-service version, or ""
// when the binary is absent or does not answer quickly.
func probeDelegateVersion(projectDir, workspaceRoot string) string {
	binary, err := cliservice.ResolveBinary(projectDir, workspaceRoot)
	if err != nil {
		return ""
	}
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	probed, err := cliservice.Version(ctx, cliservice.ExecRunner{}, projectDir, binary)
	if err != nil {
		return ""
	}
	return probed
}
