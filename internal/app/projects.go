// Where: cli/internal/app/projects.go
// What: Project management commands.
// Why: Register, list, switch, and remove projects in the global config.
package app

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/poruru-code/vue-serve-box/cli/internal/interaction"
	"github.com/poruru-code/vue-serve-box/cli/internal/meta"
	"github.com/poruru-code/vue-serve-box/cli/internal/workflows"
	"github.com/poruru-code/vue-serve-box/cli/internal/workspace"
)

// ProjectsCmd groups the project registry subcommands.
type ProjectsCmd struct {
	List   ProjectsListCmd   `cmd:"" help:"List registered projects" aliases:"ls"`
	Add    ProjectsAddCmd    `cmd:"" help:"Register a project directory"`
	Use    ProjectsUseCmd    `cmd:"" help:"Switch the active project"`
	Remove ProjectsRemoveCmd `cmd:"" help:"Deregister a project"`
}

type (
	ProjectsListCmd struct{}
	ProjectsAddCmd  struct {
		Path string `arg:"" optional:"" help:"Directory to register (default: .)"`
		Name string `help:"Project name (default: app name or directory name)" short:"n"`
	}
	ProjectsUseCmd struct {
		Name string `arg:"" optional:"" help:"Project name or index (interactive if omitted)"`
	}
	ProjectsRemoveCmd struct {
		Name string `arg:"" optional:"" help:"Project name or index (interactive if omitted)"`
	}
)

// recentProject pairs a registry entry with its parsed last-used time.
type recentProject struct {
	Name   string
	Entry  workspace.ProjectEntry
	UsedAt time.Time
}

func runProjectsList(_ CLI, _ Dependencies, out io.Writer) int {
	cfg, err := loadGlobalConfigOrDefault()
	if err != nil {
		return exitWithError(out, err)
	}

	result, err := workflows.NewProjectListWorkflow().Run(workflows.ProjectListRequest{Config: cfg})
	if err != nil {
		return exitWithError(out, err)
	}

	if len(result.Projects) == 0 {
		fmt.Fprintln(out, "📦 No projects registered.")
		return 0
	}

	for _, project := range result.Projects {
		if project.Active {
			fmt.Fprintf(out, "📦  %s\n", project.Name)
			continue
		}
		fmt.Fprintf(out, "    %s\n", project.Name)
	}
	return 0
}

func runProjectsAdd(cli CLI, deps Dependencies, out io.Writer) int {
	path, err := workspace.GlobalConfigPath()
	if err != nil {
		return exitWithError(out, err)
	}

	dir := cli.Projects.Add.Path
	if dir == "" {
		dir = "."
	}

	result, err := workflows.NewProjectAddWorkflow().Run(workflows.ProjectAddRequest{
		Dir:              dir,
		Name:             cli.Projects.Add.Name,
		GlobalConfigPath: path,
		Now:              now(deps),
	})
	if err != nil {
		return exitWithError(out, err)
	}

	if result.CreatedProjectFile {
		fmt.Fprintf(out, "Created %s in %s\n", meta.ProjectFile, result.Dir)
	}
	fmt.Fprintf(out, "Registered project '%s'.\n", result.Name)
	fmt.Fprintln(out, "Next: vsb serve")
	return 0
}

// runProjectsUse switches the active project by name or recent index. With no
// argument it prompts on a TTY and fails with the available names otherwise.
func runProjectsUse(cli CLI, deps Dependencies, out io.Writer) int {
	path, cfg, err := loadGlobalConfigWithPath()
	if err != nil {
		return exitWithError(out, err)
	}

	if len(cfg.Projects) == 0 {
		return exitWithSuggestion(out, "No projects registered.",
			[]string{"vsb projects add <dir>"})
	}

	selector := strings.TrimSpace(cli.Projects.Use.Name)
	if selector == "" {
		if !interaction.IsTerminal(os.Stdin) {
			return exitWithSuggestionAndAvailable(out,
				"Project name required (non-interactive mode).",
				[]string{"vsb projects use <name>"},
				projectNames(cfg),
			)
		}
		if deps.Prompter == nil {
			return exitWithError(out, fmt.Errorf("prompter not configured"))
		}

		list := sortProjectsByRecent(cfg)
		options := make([]interaction.SelectOption, len(list))
		for i, project := range list {
			options[i] = interaction.SelectOption{Label: project.Name, Value: project.Name}
		}
		selected, err := deps.Prompter.SelectValue("Select project", options)
		if err != nil {
			return exitWithError(out, err)
		}
		selector = selected
	}

	projectName, err := resolveProjectSelector(cfg, selector)
	if err != nil {
		return exitWithSuggestionAndAvailable(out,
			fmt.Sprintf("Project '%s' not found.", selector),
			[]string{"vsb projects use <name>", "vsb projects list"},
			projectNames(cfg),
		)
	}

	if err := workflows.NewProjectUseWorkflow().Run(workflows.ProjectUseRequest{
		ProjectName:      projectName,
		GlobalConfig:     cfg,
		GlobalConfigPath: path,
		Now:              now(deps),
	}); err != nil {
		return exitWithError(out, err)
	}

	fmt.Fprintf(out, "Switched to project '%s'\n", projectName)
	return 0
}

func runProjectsRemove(cli CLI, deps Dependencies, out io.Writer) int {
	path, cfg, err := loadGlobalConfigWithPath()
	if err != nil {
		return exitWithError(out, err)
	}

	if len(cfg.Projects) == 0 {
		return exitWithSuggestion(out, "No projects registered.",
			[]string{"vsb projects add <dir>"})
	}

	selector := strings.TrimSpace(cli.Projects.Remove.Name)
	if selector == "" {
		if !interaction.IsTerminal(os.Stdin) {
			return exitWithSuggestionAndAvailable(out,
				"Project name required (non-interactive mode).",
				[]string{"vsb projects remove <name>"},
				projectNames(cfg),
			)
		}
		if deps.Prompter == nil {
			return exitWithError(out, fmt.Errorf("prompter not configured"))
		}

		list := sortProjectsByRecent(cfg)
		options := make([]string, len(list))
		for i, project := range list {
			options[i] = project.Name
		}
		selected, err := deps.Prompter.Select("Select project to remove", options)
		if err != nil {
			return exitWithError(out, err)
		}
		selector = selected
	}

	projectName, err := resolveProjectSelector(cfg, selector)
	if err != nil {
		return exitWithSuggestionAndAvailable(out,
			fmt.Sprintf("Project '%s' not found.", selector),
			[]string{"vsb projects remove <name>", "vsb projects list"},
			projectNames(cfg),
		)
	}

	if err := workflows.NewProjectRemoveWorkflow().Run(workflows.ProjectRemoveRequest{
		ProjectName:      projectName,
		GlobalConfig:     cfg,
		GlobalConfigPath: path,
	}); err != nil {
		return exitWithError(out, err)
	}

	fmt.Fprintf(out, "Removed project '%s' from registered projects.\n", projectName)
	return 0
}

// resolveProjectSelector turns a name or a 1-based recent index into a
// registered project name.
func resolveProjectSelector(cfg workspace.GlobalConfig, selector string) (string, error) {
	if len(cfg.Projects) == 0 {
		return "", fmt.Errorf("no projects registered")
	}

	if index, err := strconv.Atoi(selector); err == nil {
		if index <= 0 {
			return "", fmt.Errorf("invalid project index")
		}
		list := sortProjectsByRecent(cfg)
		if index > len(list) {
			return "", fmt.Errorf("project index out of range")
		}
		return list[index-1].Name, nil
	}

	if _, ok := cfg.Projects[selector]; !ok {
		return "", fmt.Errorf("project not found")
	}
	return selector, nil
}

func sortProjectsByRecent(cfg workspace.GlobalConfig) []recentProject {
	projects := make([]recentProject, 0, len(cfg.Projects))
	for name, entry := range cfg.Projects {
		projects = append(projects, recentProject{
			Name:   name,
			Entry:  entry,
			UsedAt: parseLastUsed(entry.LastUsed),
		})
	}

	sort.Slice(projects, func(i, j int) bool {
		if projects[i].UsedAt.Equal(projects[j].UsedAt) {
			return projects[i].Name < projects[j].Name
		}
		return projects[i].UsedAt.After(projects[j].UsedAt)
	})
	return projects
}

func parseLastUsed(value string) time.Time {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}
	}
	parsed, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}
	}
	return parsed
}

func projectNames(cfg workspace.GlobalConfig) []string {
	names := make([]string, 0, len(cfg.Projects))
	for name := range cfg.Projects {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
