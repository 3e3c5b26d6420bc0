// Package envutil provides helper functions for environment variable handling.
package envutil

import (
	"os"
	"strings"

	"github.com/poruru-code/vue-serve-box/cli/internal/meta"
)

// HostEnvKey constructs a host-level environment variable name
// by combining ENV_PREFIX with the given suffix.
// Example: HostEnvKey("WORKSPACE") returns "VSB_WORKSPACE" when ENV_PREFIX=VSB
func HostEnvKey(suffix string) string {
	prefix := strings.TrimSpace(os.Getenv("ENV_PREFIX"))
	if prefix == "" {
		prefix = meta.EnvPrefix
	}
	return prefix + "_" + suffix
}

// GetHostEnv retrieves a host-level environment variable.
// Example: GetHostEnv("WORKSPACE") returns the value of VSB_WORKSPACE
func GetHostEnv(suffix string) string {
	return os.Getenv(HostEnvKey(suffix))
}
