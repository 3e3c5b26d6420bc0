// Where: cli/internal/constants/env.go
// What: Environment variable naming constants.
// Why: Centralize environment variable names to avoid typos and inconsistencies.
package constants

// Host-level suffixes combined with the brand prefix by envutil
// (e.g. HostSuffixWorkspace becomes VSB_WORKSPACE).
const (
	HostSuffixWorkspace  = "WORKSPACE"
	HostSuffixProject    = "PROJECT"
	HostSuffixTarget     = "TARGET"
	HostSuffixHome       = "HOME"
	HostSuffixConfigPath = "CONFIG_PATH"
	HostSuffixConfigHome = "CONFIG_HOME"
	HostSuffixServiceBin = "SERVICE_BIN"
	HostSuffixNoColor    = "NO_COLOR"
)

// Fully-qualified names, for places that document or print them.
const (
	EnvVSBWorkspace  = "VSB_WORKSPACE"
	EnvVSBProject    = "VSB_PROJECT"
	EnvVSBTarget     = "VSB_TARGET"
	EnvVSBHome       = "VSB_HOME"
	EnvVSBServiceBin = "VSB_SERVICE_BIN"
)

// Delegate-facing variables set on the vue-cli-service process.
const (
	EnvNodeEnv = "NODE_ENV"
)
