// Where: cli/internal/app/resolve_options.go
// What: Shared resolution options for project/target selection.
// Why: Keep force/interactive behavior consistent across commands.
package app

import (
	"os"

	"github.com/poruru-code/vue-serve-box/cli/internal/interaction"
	"github.com/poruru-code/vue-serve-box/cli/internal/state"
)

type resolveOptions struct {
	Force       bool
	Interactive bool
	Prompt      state.PromptFunc
}

func newResolveOptions(force bool) resolveOptions {
	return resolveOptions{
		Force:       force,
		Interactive: interaction.IsTerminal(os.Stdin),
		Prompt:      interaction.PromptYesNo,
	}
}
