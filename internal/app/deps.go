// Where: cli/internal/app/deps.go
// What: Production dependency constructors.
// Why: Centralize port wiring so wire and tests share one composition surface.
package app

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/poruru-code/vue-serve-box/cli/internal/chain"
	"github.com/poruru-code/vue-serve-box/cli/internal/cliservice"
	"github.com/poruru-code/vue-serve-box/cli/internal/devserver"
	"github.com/poruru-code/vue-serve-box/cli/internal/options"
	"github.com/poruru-code/vue-serve-box/cli/internal/ports"
	"github.com/poruru-code/vue-serve-box/cli/internal/schema"
	"github.com/poruru-code/vue-serve-box/cli/internal/state"
	"github.com/poruru-code/vue-serve-box/cli/internal/ui"
)

// NewDetectorFactory creates a DetectorFactory backed by serve locks and
// build artifacts on disk. The warn function is called for non-fatal issues.
func NewDetectorFactory(warn func(string)) ports.DetectorFactory {
	return func(workspaceRoot, project, target string) (ports.StateDetector, error) {
		return state.Detector{
			WorkspaceRoot: workspaceRoot,
			Project:       project,
			Target:        target,
			Warn:          warn,
		}, nil
	}
}

// validatorFunc is a function adapter that implements the OptionValidator interface.
type validatorFunc func(executor string, opts map[string]any) error

// Validate implements the OptionValidator interface by invoking the wrapped function.
func (fn validatorFunc) Validate(executor string, opts map[string]any) error {
	return fn(executor, opts)
}

func newOptionValidator() ports.OptionValidator {
	return validatorFunc(schema.ValidateOptions)
}

// newOptionResolver builds the layered option resolver with its legacy-hook
// warning routed to the command's UI.
func newOptionResolver(userInterface ports.UserInterface) ports.OptionResolver {
	return &options.Resolver{Warn: userInterface.Warn}
}

// stagerFunc is a function adapter that implements the Stager interface.
type stagerFunc func(request ports.StageRequest) (string, error)

// Stage implements the Stager interface by invoking the wrapped function.
func (fn stagerFunc) Stage(request ports.StageRequest) (string, error) {
	return fn(request)
}

// NewStager creates a Stager that derives the webpack patch plan and writes
// the rendered config overlay under the workspace staging directory.
func NewStager(warn func(string)) ports.Stager {
	return stagerFunc(func(request ports.StageRequest) (string, error) {
		plan := chain.ComputePlan(chain.PlanInputs{
			WorkspaceRoot: request.WorkspaceRoot,
			ProjectDir:    request.ProjectDir,
			Project:       request.Project,
			Target:        request.Target,
			Build:         request.Build,
		}, warn)
		return chain.Stage(request.WorkspaceRoot, request.Project, request.Target, plan, request.Serve, request.Build)
	})
}

// serverFunc is a function adapter that implements the Server interface.
type serverFunc func(ctx context.Context, request devserver.Request, onResult func(devserver.Result)) error

// Serve implements the Server interface by invoking the wrapped function.
func (fn serverFunc) Serve(ctx context.Context, request devserver.Request, onResult func(devserver.Result)) error {
	return fn(ctx, request, onResult)
}

// NewServer creates a Server that runs dev server sessions with production
// defaults: exec delegate, HTTP readiness probe, and the ready banner on out.
func NewServer(out io.Writer, warn func(string)) ports.Server {
	return serverFunc(func(ctx context.Context, request devserver.Request, onResult func(devserver.Result)) error {
		session := devserver.Session{
			Banner: ui.NewBanner(out, !plainOutput()),
			Warn:   warn,
		}
		return session.Run(ctx, request, onResult)
	})
}

// builderFunc is a function adapter that implements the Builder interface.
type builderFunc func(ctx context.Context, request cliservice.BuildRequest) error

// Build implements the Builder interface by invoking the wrapped function.
func (fn builderFunc) Build(ctx context.Context, request cliservice.BuildRequest) error {
	return fn(ctx, request)
}

// NewBuilder creates a Builder that runs the delegate's one-shot build.
func NewBuilder() ports.Builder {
	return builderFunc(func(ctx context.Context, request cliservice.BuildRequest) error {
		return cliservice.RunBuild(ctx, cliservice.ExecRunner{}, request)
	})
}

// signalContext returns a context canceled on SIGINT or SIGTERM so the
// delegate shuts down and the serve lock is removed.
func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}
