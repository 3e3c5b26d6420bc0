// Where: cli/internal/workflows/project.go
// What: Project workflows for list/add/use/remove.
// Why: Move project registry orchestration out of the CLI adapter.
package workflows

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/poruru-code/vue-serve-box/cli/internal/constants"
	"github.com/poruru-code/vue-serve-box/cli/internal/envutil"
	"github.com/poruru-code/vue-serve-box/cli/internal/state"
	"github.com/poruru-code/vue-serve-box/cli/internal/workspace"
)

// ProjectInfo represents a project entry for list output.
type ProjectInfo struct {
	Name   string
	Path   string
	Active bool
}

// ProjectListRequest captures inputs for listing projects.
type ProjectListRequest struct {
	Config workspace.GlobalConfig
}

// ProjectListResult contains the listed projects.
type ProjectListResult struct {
	Projects []ProjectInfo
}

// ProjectListWorkflow lists registered projects.
type ProjectListWorkflow struct{}

// NewProjectListWorkflow constructs a ProjectListWorkflow.
func NewProjectListWorkflow() ProjectListWorkflow {
	return ProjectListWorkflow{}
}

// Run executes the project list workflow.
func (w ProjectListWorkflow) Run(req ProjectListRequest) (ProjectListResult, error) {
	if len(req.Config.Projects) == 0 {
		return ProjectListResult{}, nil
	}

	names := make([]string, 0, len(req.Config.Projects))
	for name := range req.Config.Projects {
		names = append(names, name)
	}
	sort.Strings(names)

	appState, _ := state.ResolveAppState(state.AppStateOptions{
		ProjectEnv:    envutil.GetHostEnv(constants.HostSuffixProject),
		ActiveProject: req.Config.ActiveProject,
		Projects:      req.Config.Projects,
	})
	active := appState.ActiveProject

	projects := make([]ProjectInfo, 0, len(names))
	for _, name := range names {
		projects = append(projects, ProjectInfo{
			Name:   name,
			Path:   req.Config.Projects[name].Path,
			Active: name == active,
		})
	}

	return ProjectListResult{Projects: projects}, nil
}

// ProjectAddRequest captures inputs for registering a project directory.
type ProjectAddRequest struct {
	Dir string
	// Name overrides the project file's app name when set.
	Name             string
	GlobalConfigPath string
	Now              time.Time
}

// ProjectAddResult reports what the registration did.
type ProjectAddResult struct {
	Name string
	Dir  string
	// CreatedProjectFile is true when a fresh project.yaml was written.
	CreatedProjectFile bool
}

// ProjectAddWorkflow registers a project directory into the global config,
// bootstrapping a project.yaml with stock targets when none exists.
type ProjectAddWorkflow struct{}

// NewProjectAddWorkflow constructs a ProjectAddWorkflow.
func NewProjectAddWorkflow() ProjectAddWorkflow {
	return ProjectAddWorkflow{}
}

// Run executes the project add workflow.
func (w ProjectAddWorkflow) Run(req ProjectAddRequest) (ProjectAddResult, error) {
	var result ProjectAddResult

	if strings.TrimSpace(req.Dir) == "" {
		return result, errors.New("project directory is required")
	}
	dir, err := filepath.Abs(req.Dir)
	if err != nil {
		return result, err
	}
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		return result, fmt.Errorf("project dir not found: %s", dir)
	}
	result.Dir = dir

	name := strings.TrimSpace(req.Name)
	project, err := workspace.LoadProjectFile(dir)
	switch {
	case err == nil:
		if name == "" {
			name = strings.TrimSpace(project.App.Name)
		}
		if name == "" {
			name = filepath.Base(dir)
		}
	case os.IsNotExist(err):
		if name == "" {
			name = filepath.Base(dir)
		}
		if err := workspace.SaveProjectFile(dir, workspace.DefaultProjectFile(name)); err != nil {
			return result, err
		}
		result.CreatedProjectFile = true
	default:
		return result, err
	}
	result.Name = name

	globalPath := strings.TrimSpace(req.GlobalConfigPath)
	if globalPath == "" {
		return result, errors.New("global config path not available")
	}
	cfg, err := loadOrDefaultGlobalConfig(globalPath)
	if err != nil {
		return result, err
	}
	entry := cfg.Projects[name]
	entry.Path = dir
	entry.LastUsed = req.Now.Format(time.RFC3339)
	cfg.Projects[name] = entry
	return result, workspace.SaveGlobalConfig(globalPath, cfg)
}

// ProjectUseRequest captures inputs for switching the active project.
type ProjectUseRequest struct {
	ProjectName      string
	GlobalConfig     workspace.GlobalConfig
	GlobalConfigPath string
	Now              time.Time
}

// ProjectUseWorkflow marks a project active and stamps its last-used time.
type ProjectUseWorkflow struct{}

// NewProjectUseWorkflow constructs a ProjectUseWorkflow.
func NewProjectUseWorkflow() ProjectUseWorkflow {
	return ProjectUseWorkflow{}
}

// Run executes the project use workflow.
func (w ProjectUseWorkflow) Run(req ProjectUseRequest) error {
	if strings.TrimSpace(req.GlobalConfigPath) == "" {
		return errors.New("global config path not available")
	}
	cfg := workspace.NormalizeGlobalConfig(req.GlobalConfig)
	entry, ok := cfg.Projects[req.ProjectName]
	if !ok {
		return fmt.Errorf("project not registered: %s. Run 'vsb projects add <dir>' first.", req.ProjectName)
	}
	entry.LastUsed = req.Now.Format(time.RFC3339)
	cfg.Projects[req.ProjectName] = entry
	cfg.ActiveProject = req.ProjectName
	return workspace.SaveGlobalConfig(req.GlobalConfigPath, cfg)
}

// ProjectRemoveRequest captures inputs for removing projects.
type ProjectRemoveRequest struct {
	ProjectName      string
	GlobalConfig     workspace.GlobalConfig
	GlobalConfigPath string
}

// ProjectRemoveWorkflow removes a project from the global config.
type ProjectRemoveWorkflow struct{}

// NewProjectRemoveWorkflow constructs a ProjectRemoveWorkflow.
func NewProjectRemoveWorkflow() ProjectRemoveWorkflow {
	return ProjectRemoveWorkflow{}
}

// Run executes the project remove workflow. Removing the active project
// clears the active marker; the project directory itself is untouched.
func (w ProjectRemoveWorkflow) Run(req ProjectRemoveRequest) error {
	if strings.TrimSpace(req.GlobalConfigPath) == "" {
		return errors.New("global config path not available")
	}
	cfg := workspace.NormalizeGlobalConfig(req.GlobalConfig)
	delete(cfg.Projects, req.ProjectName)
	delete(cfg.TargetDefaults, req.ProjectName)
	if cfg.ActiveProject == req.ProjectName {
		cfg.ActiveProject = ""
	}
	return workspace.SaveGlobalConfig(req.GlobalConfigPath, cfg)
}

func loadOrDefaultGlobalConfig(path string) (workspace.GlobalConfig, error) {
	cfg, err := workspace.LoadGlobalConfig(path)
	if err != nil {
		if os.IsNotExist(err) {
			return workspace.DefaultGlobalConfig(), nil
		}
		return workspace.GlobalConfig{}, err
	}
	return workspace.NormalizeGlobalConfig(cfg), nil
}
