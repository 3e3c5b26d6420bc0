// Where: cli/internal/ports/build.go
// What: Builder port interface for workflows.
// Why: Allow workflows to run delegate builds via a well-defined contract.
package ports

import (
	"context"

	"github.com/poruru-code/vue-serve-box/cli/internal/cliservice"
)

// Builder runs a one-shot vue-cli-service build.
type Builder interface {
	Build(ctx context.Context, request cliservice.BuildRequest) error
}
