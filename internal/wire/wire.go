// Where: cli/internal/wire/wire.go
// What: CLI dependency wiring.
// Why: Centralize CLI dependency construction for reuse by main and tests.
package wire

import (
	"fmt"
	"io"
	"os"

	"github.com/poruru-code/vue-serve-box/cli/internal/app"
	"github.com/poruru-code/vue-serve-box/cli/internal/interaction"
)

var (
	// Getwd returns the current working directory. Tests may override this helper.
	Getwd = os.Getwd
	// Stdout is the writer used for CLI output (used by app.Dependencies).
	Stdout io.Writer = os.Stdout
	// Stderr is the writer used for background warnings. Tests may override it.
	Stderr io.Writer = os.Stderr
)

// BuildDependencies constructs CLI dependencies. It returns the dependencies
// bundle and any initialization error.
func BuildDependencies() (app.Dependencies, error) {
	workDir, err := Getwd()
	if err != nil {
		return app.Dependencies{}, err
	}

	deps := app.Dependencies{
		WorkDir:         workDir,
		Out:             Stdout,
		Prompter:        interaction.HuhPrompter{},
		DetectorFactory: app.NewDetectorFactory(warnf),
		Stager:          app.NewStager(warnf),
		Server:          app.NewServer(Stdout, warnf),
		Builder:         app.NewBuilder(),
	}

	return deps, nil
}

// warnf routes warnings from the stager and dev-server session to stderr so
// stdout stays reserved for command output.
func warnf(msg string) {
	fmt.Fprintf(Stderr, "⚠️  %s\n", msg)
}
