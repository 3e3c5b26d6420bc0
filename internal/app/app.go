// Where: cli/internal/app/app.go
// What: CLI entrypoint logic.
// Why: Provide a testable command dispatcher.
package app

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"
	"github.com/poruru-code/vue-serve-box/cli/internal/interaction"
	"github.com/poruru-code/vue-serve-box/cli/internal/ports"
	"github.com/poruru-code/vue-serve-box/cli/internal/version"
	"github.com/poruru-code/vue-serve-box/cli/internal/workspace"
)

// Dependencies holds all injected dependencies required for CLI command
// execution. This structure enables dependency injection for testing and
// allows swapping implementations of the side-effecting subsystems.
type Dependencies struct {
	WorkDir         string
	Out             io.Writer
	Now             func() time.Time
	Prompter        interaction.Prompter
	DetectorFactory ports.DetectorFactory
	Stager          ports.Stager
	Server          ports.Server
	Builder         ports.Builder
}

// CLI defines the command-line interface structure parsed by Kong.
// It contains global flags and all subcommand definitions.
type CLI struct {
	TargetFlag string        `short:"t" name:"target" help:"Target name (default: last used)"`
	EnvFile    string        `name:"env-file" help:"Path to .env file"`
	Serve      ServeCmd      `cmd:"" help:"Start the dev server for a serve target"`
	Build      BuildCmd      `cmd:"" help:"Build production assets for a build target"`
	Run        RunCmd        `cmd:"" help:"Run a target by reference"`
	Projects   ProjectsCmd   `cmd:"" help:"Manage registered projects"`
	Info       InfoCmd       `cmd:"" help:"Show workspace and target state"`
	Config     ConfigCmd     `cmd:"" name:"config" help:"Manage configuration"`
	Complete   CompleteCmd   `cmd:"" name:"__complete" hidden:"" help:"Completion candidate provider"`
	Completion CompletionCmd `cmd:"" help:"Generate shell completion script"`
	Version    VersionCmd    `cmd:"" help:"Show version information"`
}

type (
	VersionCmd struct{}
	InfoCmd    struct{}
)

// Run is the main entry point for CLI command execution.
// It parses the command-line arguments, identifies the requested command,
// and dispatches to the appropriate handler. Returns 0 on success, 1 on error.
func Run(args []string, deps Dependencies) int {
	out := deps.Out
	if out == nil {
		out = os.Stdout
	}

	if err := workspace.EnsureGlobalConfig(); err != nil {
		return exitWithError(out, err)
	}

	// Handle no arguments: show current location and state
	if len(args) == 0 {
		return runNoArgs(deps, out)
	}

	cli := CLI{}
	parser, err := kong.New(&cli)
	if err != nil {
		return exitWithError(out, err)
	}

	ctx, err := parser.Parse(args)
	if err != nil {
		return handleParseError(args, err, deps, out)
	}

	// Load environment file if provided or if .env exists in current directory
	if cli.EnvFile != "" {
		if err := godotenv.Load(cli.EnvFile); err != nil {
			fmt.Fprintf(out, "Warning: failed to load env file %s: %v\n", cli.EnvFile, err)
		}
	} else {
		if _, err := os.Stat(".env"); err == nil {
			if err := godotenv.Load(); err != nil {
				fmt.Fprintf(out, "Warning: failed to load .env: %v\n", err)
			}
		}
	}

	command := ctx.Command()
	if exitCode, handled := dispatchCommand(command, cli, deps, out); handled {
		return exitCode
	}

	fmt.Fprintln(out, "unknown command")
	return 1
}

type commandHandler func(CLI, Dependencies, io.Writer) int

type prefixHandler struct {
	prefix  string
	handler commandHandler
}

func dispatchCommand(command string, cli CLI, deps Dependencies, out io.Writer) (int, bool) {
	exactHandlers := map[string]commandHandler{
		"serve":                runServe,
		"build":                runBuild,
		"projects":             runProjectsList,
		"projects list":        runProjectsList,
		"info":                 runInfo,
		"__complete project":   runCompleteProject,
		"__complete target":    runCompleteTarget,
		"completion bash":      func(_ CLI, _ Dependencies, out io.Writer) int { return runCompletionBash(cli, out) },
		"completion zsh":       func(_ CLI, _ Dependencies, out io.Writer) int { return runCompletionZsh(cli, out) },
		"completion fish":      func(_ CLI, _ Dependencies, out io.Writer) int { return runCompletionFish(cli, out) },
		"config set-workspace": runConfigSetWorkspace,
		"version":              func(_ CLI, _ Dependencies, out io.Writer) int { return runVersion(cli, out) },
	}

	if handler, ok := exactHandlers[command]; ok {
		return handler(cli, deps, out), true
	}

	prefixHandlers := []prefixHandler{
		{prefix: "serve", handler: runServe},
		{prefix: "build", handler: runBuild},
		{prefix: "run", handler: runRun},
		{prefix: "projects add", handler: runProjectsAdd},
		{prefix: "projects use", handler: runProjectsUse},
		{prefix: "projects remove", handler: runProjectsRemove},
		{prefix: "config set-workspace", handler: runConfigSetWorkspace},
	}

	for _, entry := range prefixHandlers {
		if strings.HasPrefix(command, entry.prefix) {
			return entry.handler(cli, deps, out), true
		}
	}

	return 1, false
}

// runVersion prints the version information of the CLI.
func runVersion(_ CLI, out io.Writer) int {
	fmt.Fprintln(out, version.GetVersion())
	return 0
}

// commandName extracts the first non-flag argument from the command line,
// which represents the command name. Recognizes and skips known flag pairs.
func commandName(args []string) string {
	skipNext := false
	for _, arg := range args {
		if skipNext {
			skipNext = false
			continue
		}
		if strings.HasPrefix(arg, "-") {
			switch arg {
			case "-t", "--target", "--env-file":
				skipNext = true
			}
			continue
		}
		return arg
	}
	return ""
}

// runNoArgs handles the case when vsb is invoked without arguments.
// It displays full configuration and state information.
func runNoArgs(deps Dependencies, out io.Writer) int {
	return runInfo(CLI{}, deps, out)
}

// handleParseError provides user-friendly error messages for parse failures.
func handleParseError(args []string, err error, deps Dependencies, out io.Writer) int {
	errStr := err.Error()

	// Handle missing required argument
	if strings.Contains(errStr, "expected") {
		cmd := commandName(args)
		switch {
		case cmd == "run" && strings.Contains(errStr, "<ref>"):
			return exitWithSuggestion(out, "Target reference required.",
				[]string{"vsb run <project:target[:configuration]>", "vsb info"})

		case strings.HasPrefix(cmd, "projects") && strings.Contains(errStr, "<name>"):
			cfg, _ := loadGlobalConfigOrDefault()
			var projectNames []string
			for name := range cfg.Projects {
				projectNames = append(projectNames, name)
			}
			return exitWithSuggestionAndAvailable(out,
				"Project name required.",
				[]string{"vsb projects use <name>", "vsb projects list"},
				projectNames,
			)

		case cmd == "projects" && strings.Contains(errStr, "expected one of"):
			return runProjectsList(CLI{}, deps, out)

		case cmd == "config" && strings.Contains(errStr, "<path>"):
			return exitWithSuggestion(out, "Workspace path required.",
				[]string{"vsb config set-workspace <path>"})
		}
	}

	return exitWithError(out, err)
}
