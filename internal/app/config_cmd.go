// Where: cli/internal/app/config_cmd.go
// What: Configuration management commands.
// Why: Allow setting internal CLI params like the workspace path.
package app

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/poruru-code/vue-serve-box/cli/internal/workspace"
)

// ConfigCmd groups configuration subcommands.
type ConfigCmd struct {
	SetWorkspace ConfigSetWorkspaceCmd `cmd:"" name:"set-workspace" help:"Set the workspace root path"`
}

type ConfigSetWorkspaceCmd struct {
	Path string `arg:"" help:"Path to the workspace root"`
}

// runConfigSetWorkspace records the workspace root in the global config so
// commands run outside the tree can still find it.
func runConfigSetWorkspace(cli CLI, _ Dependencies, out io.Writer) int {
	workspacePath := cli.Config.SetWorkspace.Path
	absPath, err := workspace.ResolveRootFromPath(workspacePath)
	if err != nil {
		fmt.Fprintf(out, "⚠️  Warning: %v\n", err)
		absPath, err = filepath.Abs(workspacePath)
		if err != nil {
			return exitWithError(out, err)
		}
	}

	path, cfg, err := loadGlobalConfigWithPath()
	if err != nil {
		return exitWithError(out, err)
	}

	cfg.WorkspacePath = absPath
	if err := workspace.SaveGlobalConfig(path, cfg); err != nil {
		return exitWithError(out, err)
	}

	fmt.Fprintf(out, "updated workspace_path: %s\n", absPath)
	return 0
}
