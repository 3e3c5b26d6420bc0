// Where: cli/internal/app/command_context.go
// What: Shared context resolution for CLI commands.
// Why: Reduce duplicated workspace/project/target setup across commands.
package app

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/poruru-code/vue-serve-box/cli/internal/constants"
	"github.com/poruru-code/vue-serve-box/cli/internal/envutil"
	"github.com/poruru-code/vue-serve-box/cli/internal/state"
	"github.com/poruru-code/vue-serve-box/cli/internal/target"
	"github.com/poruru-code/vue-serve-box/cli/internal/workspace"
)

func exitWithError(out io.Writer, err error) int {
	fmt.Fprintln(out, err)
	return 1
}

// exitWithSuggestion prints an error with suggested next steps.
func exitWithSuggestion(out io.Writer, message string, suggestions []string) int {
	fmt.Fprintf(out, "⚠️  %s\n", message)
	if len(suggestions) > 0 {
		fmt.Fprintln(out)
		fmt.Fprintln(out, "💡 Next steps:")
		for _, s := range suggestions {
			fmt.Fprintf(out, "   - %s\n", s)
		}
	}
	return 1
}

// exitWithSuggestionAndAvailable prints an error with suggestions and available options.
func exitWithSuggestionAndAvailable(out io.Writer, message string, suggestions, available []string) int {
	fmt.Fprintf(out, "⚠️  %s\n", message)
	if len(suggestions) > 0 {
		fmt.Fprintln(out)
		fmt.Fprintln(out, "💡 Next steps:")
		for _, s := range suggestions {
			fmt.Fprintf(out, "   - %s\n", s)
		}
	}
	if len(available) > 0 {
		fmt.Fprintln(out)
		fmt.Fprintln(out, "🛠️  Available:")
		for _, a := range available {
			fmt.Fprintf(out, "   - %s\n", a)
		}
	}
	return 1
}

// commandContext holds the resolved workspace root, its declarations, and
// the target resolver commands run against.
type commandContext struct {
	WorkDir    string
	Root       string
	Workspace  workspace.File
	GlobalPath string
	Global     workspace.GlobalConfig
	Resolver   target.Resolver
}

// resolveCommandContext locates the workspace and loads the declarations
// every target-scoped command needs.
func resolveCommandContext(deps Dependencies) (commandContext, error) {
	workDir := strings.TrimSpace(deps.WorkDir)
	if workDir == "" {
		workDir = "."
	}

	root, err := workspace.ResolveRoot(workDir)
	if err != nil {
		return commandContext{}, err
	}
	ws, err := workspace.LoadFile(root)
	if err != nil {
		return commandContext{}, err
	}

	globalPath, cfg, err := loadGlobalConfigWithPath()
	if err != nil {
		return commandContext{}, err
	}

	return commandContext{
		WorkDir:    workDir,
		Root:       root,
		Workspace:  ws,
		GlobalPath: globalPath,
		Global:     cfg,
		Resolver:   target.Resolver{Root: root, Workspace: ws, Global: cfg},
	}, nil
}

// resolveTargetRef turns the command's positional reference, the --target
// flag, and the selection fallbacks into a concrete target reference.
// Qualified references bypass selection entirely.
func resolveTargetRef(cli CLI, rawRef string, ctxInfo commandContext, opts resolveOptions) (target.Ref, error) {
	raw := strings.TrimSpace(rawRef)
	if strings.Contains(raw, ":") {
		return target.ParseRef(raw)
	}

	project, err := selectProject(ctxInfo, opts)
	if err != nil {
		return target.Ref{}, err
	}

	if raw != "" {
		return target.ParseRefIn(project, raw)
	}

	projectDir, err := ctxInfo.Resolver.ProjectDir(project)
	if err != nil {
		return target.Ref{}, err
	}
	decl, err := workspace.LoadProjectFile(projectDir)
	if err != nil {
		return target.Ref{}, err
	}

	targetState, err := state.ResolveTargetState(state.TargetStateOptions{
		TargetFlag:    cli.TargetFlag,
		TargetEnv:     envutil.GetHostEnv(constants.HostSuffixTarget),
		Project:       decl,
		DefaultTarget: ctxInfo.Global.TargetDefaults[project].Target,
		Force:         opts.Force,
		Interactive:   opts.Interactive,
		Prompt:        opts.Prompt,
	})
	if err != nil {
		return target.Ref{}, err
	}
	return target.Ref{Project: project, Target: targetState.ActiveTarget}, nil
}

// selectProject picks the active project: the project directory enclosing
// the working directory wins, then the usual env/default/active/recency
// fallbacks apply.
func selectProject(ctxInfo commandContext, opts resolveOptions) (string, error) {
	candidates := projectCandidates(ctxInfo)

	if dir, ok := workspace.FindProjectDir(ctxInfo.WorkDir); ok {
		if name, ok := projectNameForDir(candidates, dir); ok {
			return name, nil
		}
	}

	appState, err := state.ResolveAppState(state.AppStateOptions{
		ProjectEnv:     envutil.GetHostEnv(constants.HostSuffixProject),
		DefaultProject: ctxInfo.Workspace.DefaultProject,
		ActiveProject:  ctxInfo.Global.ActiveProject,
		Projects:       candidates,
		Force:          opts.Force,
		Interactive:    opts.Interactive,
		Prompt:         opts.Prompt,
	})
	if err != nil {
		return "", err
	}
	return appState.ActiveProject, nil
}

// projectCandidates merges the workspace file's projects with the global
// registry. The workspace directory wins for the path; the registry keeps
// the recency stamp.
func projectCandidates(ctxInfo commandContext) map[string]workspace.ProjectEntry {
	candidates := make(map[string]workspace.ProjectEntry, len(ctxInfo.Global.Projects)+len(ctxInfo.Workspace.Projects))
	for name, entry := range ctxInfo.Global.Projects {
		candidates[name] = entry
	}
	for name := range ctxInfo.Workspace.Projects {
		entry := candidates[name]
		if dir, ok := ctxInfo.Workspace.ProjectDir(ctxInfo.Root, name); ok {
			entry.Path = dir
		}
		candidates[name] = entry
	}
	return candidates
}

func projectNameForDir(candidates map[string]workspace.ProjectEntry, dir string) (string, bool) {
	want := filepath.Clean(dir)
	for name, entry := range candidates {
		if entry.Path == "" {
			continue
		}
		if filepath.Clean(entry.Path) == want {
			return name, true
		}
	}
	return "", false
}
