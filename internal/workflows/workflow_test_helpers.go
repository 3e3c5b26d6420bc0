// Where: cli/internal/workflows/workflow_test_helpers.go
// What: Test helpers and stub ports for workflow unit tests.
// Why: Keep workflow tests focused on orchestration behavior without external dependencies.
package workflows

import (
	"context"
	"fmt"

	"github.com/poruru-code/vue-serve-box/cli/internal/cliservice"
	"github.com/poruru-code/vue-serve-box/cli/internal/devserver"
	"github.com/poruru-code/vue-serve-box/cli/internal/options"
	"github.com/poruru-code/vue-serve-box/cli/internal/ports"
	"github.com/poruru-code/vue-serve-box/cli/internal/target"
)

type testBlock struct {
	title string
	rows  []ports.KeyValue
}

type testUI struct {
	infos     []string
	warns     []string
	successes []string
	blocks    []testBlock
}

func (u *testUI) Info(msg string) {
	u.infos = append(u.infos, msg)
}

func (u *testUI) Warn(msg string) {
	u.warns = append(u.warns, msg)
}

func (u *testUI) Success(msg string) {
	u.successes = append(u.successes, msg)
}

func (u *testUI) Block(_, title string, rows []ports.KeyValue) {
	u.blocks = append(u.blocks, testBlock{title: title, rows: rows})
}

// recordTargets resolves references from a fixed map keyed by ref string.
type recordTargets struct {
	targets map[string]target.Resolved
	refs    []target.Ref
	err     error
}

func (r *recordTargets) Resolve(ref target.Ref) (target.Resolved, error) {
	r.refs = append(r.refs, ref)
	if r.err != nil {
		return target.Resolved{}, r.err
	}
	resolved, ok := r.targets[ref.String()]
	if !ok {
		return target.Resolved{}, fmt.Errorf("target not registered: %s", ref.String())
	}
	return resolved, nil
}

type recordValidator struct {
	executors []string
	// failOn makes Validate fail for one executor name; empty never fails.
	failOn string
	err    error
}

func (r *recordValidator) Validate(executor string, _ map[string]any) error {
	r.executors = append(r.executors, executor)
	if r.failOn != "" && r.failOn == executor {
		return r.err
	}
	return nil
}

type recordOptions struct {
	serveInputs []options.ServeInputs
	buildInputs []options.Inputs
	serveResult options.ServeResolution
	buildResult options.BuildOptions
	serveErr    error
	buildErr    error
}

func (r *recordOptions) ResolveServe(in options.ServeInputs) (options.ServeResolution, error) {
	r.serveInputs = append(r.serveInputs, in)
	if r.serveErr != nil {
		return options.ServeResolution{}, r.serveErr
	}
	return r.serveResult, nil
}

func (r *recordOptions) ResolveBuild(in options.Inputs) (options.BuildOptions, error) {
	r.buildInputs = append(r.buildInputs, in)
	if r.buildErr != nil {
		return options.BuildOptions{}, r.buildErr
	}
	return r.buildResult, nil
}

type recordStager struct {
	requests []ports.StageRequest
	path     string
	err      error
}

func (r *recordStager) Stage(req ports.StageRequest) (string, error) {
	r.requests = append(r.requests, req)
	if r.err != nil {
		return "", r.err
	}
	return r.path, nil
}

type recordServer struct {
	requests []devserver.Request
	// result is emitted through onResult when non-nil.
	result *devserver.Result
	err    error
}

func (r *recordServer) Serve(_ context.Context, req devserver.Request, onResult func(devserver.Result)) error {
	r.requests = append(r.requests, req)
	if r.result != nil && onResult != nil {
		onResult(*r.result)
	}
	return r.err
}

type recordBuilder struct {
	requests []cliservice.BuildRequest
	err      error
}

func (r *recordBuilder) Build(_ context.Context, req cliservice.BuildRequest) error {
	r.requests = append(r.requests, req)
	return r.err
}
