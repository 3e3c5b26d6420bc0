// Where: cli/internal/app/output.go
// What: Output helpers for command adapters.
// Why: Centralize UserInterface construction and raw line output.
package app

import (
	"io"
	"os"
	"strings"

	"github.com/poruru-code/vue-serve-box/cli/internal/constants"
	"github.com/poruru-code/vue-serve-box/cli/internal/envutil"
	"github.com/poruru-code/vue-serve-box/cli/internal/ports"
)

// newUI picks the console presentation unless NO_COLOR or the brand-scoped
// equivalent disables decoration.
func newUI(out io.Writer) ports.UserInterface {
	if plainOutput() {
		return ports.NewPlainUI(out)
	}
	return ports.NewConsoleUI(out)
}

func plainOutput() bool {
	if os.Getenv("NO_COLOR") != "" {
		return true
	}
	return strings.TrimSpace(envutil.GetHostEnv(constants.HostSuffixNoColor)) != ""
}

func writeLine(out io.Writer, line string) {
	if out == nil {
		return
	}
	if strings.HasSuffix(line, "\n") {
		_, _ = io.WriteString(out, line)
		return
	}
	_, _ = io.WriteString(out, line+"\n")
}
