// Where: cli/internal/app/complete.go
// What: Completion candidate provider for dynamic shell completion.
// Why: Supply project/target candidates without prompting.
package app

import (
	"io"
	"sort"
	"strings"

	"github.com/poruru-code/vue-serve-box/cli/internal/interaction"
	"github.com/poruru-code/vue-serve-box/cli/internal/workspace"
)

// CompleteCmd defines hidden subcommands used by shell completion scripts.
type CompleteCmd struct {
	Project CompleteProjectCmd `cmd:"" help:"List projects for completion"`
	Target  CompleteTargetCmd  `cmd:"" help:"List targets for completion"`
}

type (
	CompleteProjectCmd struct{}
	CompleteTargetCmd  struct{}
)

func runCompleteProject(_ CLI, _ Dependencies, out io.Writer) int {
	cfg, err := loadGlobalConfigOrDefault()
	if err != nil {
		return 0
	}

	names := make([]string, 0, len(cfg.Projects))
	for name := range cfg.Projects {
		name = strings.TrimSpace(name)
		if name != "" {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	printCompletionList(out, names)
	return 0
}

func runCompleteTarget(_ CLI, deps Dependencies, out io.Writer) int {
	opts := resolveOptions{Interactive: false, Prompt: interaction.PromptYesNo}
	ctxInfo, err := resolveCommandContext(deps)
	if err != nil {
		return 0
	}
	project, err := selectProject(ctxInfo, opts)
	if err != nil {
		return 0
	}
	projectDir, err := ctxInfo.Resolver.ProjectDir(project)
	if err != nil {
		return 0
	}
	decl, err := workspace.LoadProjectFile(projectDir)
	if err != nil {
		return 0
	}

	names := decl.TargetNames()
	sort.Strings(names)
	printCompletionList(out, names)
	return 0
}

func printCompletionList(out io.Writer, items []string) {
	for _, item := range items {
		if strings.TrimSpace(item) == "" {
			continue
		}
		writeLine(out, item)
	}
}
