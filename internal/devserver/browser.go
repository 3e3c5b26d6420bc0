// Where: cli/internal/devserver/browser.go
// What: System browser launching for the open serve option.
package devserver

import (
	"fmt"
	"os/exec"
	"runtime"
)

// OpenBrowser launches the platform browser at url. The command is started
// and not waited on.
func OpenBrowser(url string) error {
	var cmd *exec.Cmd

	switch runtime.GOOS {
	case "linux":
		cmd = exec.Command("xdg-open", url)
	case "darwin":
		cmd = exec.Command("open", url)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	default:
		return fmt.Errorf("unsupported platform: %s", runtime.GOOS)
	}

	return cmd.Start()
}
