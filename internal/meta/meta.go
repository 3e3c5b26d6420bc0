// Where: cli/internal/meta/meta.go
// What: CLI-local metadata constants.
// Why: Keep brand identity in one place so renames stay mechanical.
package meta

const (
	// Project Identity
	AppName   = "vsb"
	Slug      = "vsb"
	EnvPrefix = "VSB"

	// Directory Layout
	HomeDir    = ".vsb"
	StagingDir = ".vsb"

	// Workspace Files
	WorkspaceFile     = "vsb.workspace.yaml"
	ProjectFile       = "project.yaml"
	ProjectConfigFile = "vsb.config.yaml"

	// LegacyWebpackHook is the per-project webpack hook file that predates the
	// generated overlay. Still honored, with a deprecation warning.
	LegacyWebpackHook = "webpack.config.js"

	// Delegate Identity
	ServiceBinary    = "vue-cli-service"
	ServiceConfigEnv = "VUE_CLI_SERVICE_CONFIG_PATH"

	// Executors are the delegate commands a target may declare.
	ExecutorServe = "serve"
	ExecutorBuild = "build"
)
