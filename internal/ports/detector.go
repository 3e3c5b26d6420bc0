// Where: cli/internal/ports/detector.go
// What: Target state detector ports.
// Why: Share detector interfaces between app and workflows.
package ports

import "github.com/poruru-code/vue-serve-box/cli/internal/state"

// StateDetector reports the current target state (serving/built/registered/unregistered).
type StateDetector interface {
	Detect() (state.State, error)
}

// DetectorFactory builds a StateDetector for a project/target pair.
type DetectorFactory func(workspaceRoot, project, target string) (StateDetector, error)
