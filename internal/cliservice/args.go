// Where: cli/internal/cliservice/args.go
// What: Argument and environment assembly for delegate invocations.
// Why: Keep the vue-cli-service command surface in one place.
package cliservice

import (
	"strconv"
	"strings"

	"github.com/poruru-code/vue-serve-box/cli/internal/constants"
	"github.com/poruru-code/vue-serve-box/cli/internal/meta"
	"github.com/poruru-code/vue-serve-box/cli/internal/options"
)

// ServeArgs builds the delegate argument list for a dev server run. The
// command name is fixed; tuning travels through flags and the staged
// overlay. Browser opening and clipboard are handled by the session, never
// forwarded to the delegate.
func ServeArgs(opts options.ServeOptions) []string {
	args := []string{"serve"}
	if opts.Mode != "" {
		args = append(args, "--mode", opts.Mode)
	}
	if opts.Host != "" {
		args = append(args, "--host", opts.Host)
	}
	if opts.Port > 0 {
		args = append(args, "--port", strconv.Itoa(opts.Port))
	}
	if opts.HTTPS {
		args = append(args, "--https")
	}
	if opts.Public != "" {
		args = append(args, "--public", opts.Public)
	}
	return args
}

// BuildArgs builds the delegate argument list for a production build into
// outputDir.
func BuildArgs(opts options.BuildOptions, outputDir string) []string {
	args := []string{"build"}
	if opts.Mode != "" {
		args = append(args, "--mode", opts.Mode)
	}
	if outputDir != "" {
		args = append(args, "--dest", outputDir)
	}
	if opts.Watch {
		args = append(args, "--watch")
	}
	return args
}

// Env returns the extra environment entries every delegate invocation
// carries: the staged overlay location and the node mode.
func Env(overlayPath, mode string) []string {
	env := []string{meta.ServiceConfigEnv + "=" + overlayPath}
	if strings.TrimSpace(mode) != "" {
		env = append(env, constants.EnvNodeEnv+"="+mode)
	}
	return env
}
