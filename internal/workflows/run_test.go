// Where: cli/internal/workflows/run_test.go
// What: Unit tests for executor dispatch.
package workflows

import (
	"context"
	"strings"
	"testing"

	"github.com/poruru-code/vue-serve-box/cli/internal/devserver"
	"github.com/poruru-code/vue-serve-box/cli/internal/options"
	"github.com/poruru-code/vue-serve-box/cli/internal/target"
	"github.com/poruru-code/vue-serve-box/cli/internal/workspace"
)

func TestRunWorkflowDispatchesServe(t *testing.T) {
	server := &recordServer{result: &devserver.Result{Success: true, BaseURL: "http://localhost:8080/"}}
	builder := &recordBuilder{}
	serve := NewServeWorkflow(buildTargets("/ws/storefront", nil), &recordValidator{}, &recordOptions{}, &recordStager{path: "/overlay"}, server, nil)
	build := NewBuildWorkflow(&recordValidator{}, &recordOptions{}, &recordStager{}, builder, nil)

	workflow := NewRunWorkflow(serve, build)
	err := workflow.Run(context.Background(), RunRequest{
		WorkspaceRoot: "/ws",
		Ref:           target.Ref{Project: "storefront", Target: "app"},
		Resolved:      serveResolved("/ws/storefront", map[string]any{"buildTarget": "production"}),
	})
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if len(server.requests) != 1 {
		t.Fatalf("expected the serve workflow to run, got %d serve requests", len(server.requests))
	}
	if len(builder.requests) != 0 {
		t.Fatalf("build workflow must stay idle, got %d build requests", len(builder.requests))
	}
}

func TestRunWorkflowDispatchesBuild(t *testing.T) {
	server := &recordServer{}
	builder := &recordBuilder{}
	serve := NewServeWorkflow(&recordTargets{}, &recordValidator{}, &recordOptions{}, &recordStager{}, server, nil)
	build := NewBuildWorkflow(&recordValidator{}, &recordOptions{buildResult: options.BuildOptions{OutputDir: "dist"}}, &recordStager{path: "/overlay"}, builder, nil)

	workflow := NewRunWorkflow(serve, build)
	err := workflow.Run(context.Background(), RunRequest{
		WorkspaceRoot: "/ws",
		Ref:           target.Ref{Project: "storefront", Target: "production"},
		Resolved:      buildResolved("/ws/storefront", nil),
	})
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if len(builder.requests) != 1 {
		t.Fatalf("expected the build workflow to run, got %d build requests", len(builder.requests))
	}
	if len(server.requests) != 0 {
		t.Fatalf("serve workflow must stay idle, got %d serve requests", len(server.requests))
	}
}

func TestRunWorkflowRejectsUnknownExecutor(t *testing.T) {
	resolved := target.Resolved{
		Ref:    target.Ref{Project: "storefront", Target: "deploy"},
		Target: workspace.Target{Executor: "deploy"},
	}

	workflow := NewRunWorkflow(ServeWorkflow{}, BuildWorkflow{})
	err := workflow.Run(context.Background(), RunRequest{
		Ref:      resolved.Ref,
		Resolved: resolved,
	})
	if err == nil || !strings.Contains(err.Error(), "unknown executor: deploy") {
		t.Fatalf("expected unknown executor error, got %v", err)
	}
}
