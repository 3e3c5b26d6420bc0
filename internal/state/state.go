// Where: cli/internal/state/state.go
// What: State definitions and derivation helpers.
// Why: Centralize state transitions for the CLI detector.
package state

type State string

const (
	StateUnregistered State = "unregistered"
	StateRegistered   State = "registered"
	StateBuilt        State = "built"
	StateServing      State = "serving"
)

// DeriveState collapses the observable facts about a target into one state.
// A live serve session outranks build artifacts.
func DeriveState(registered, serving, hasArtifacts bool) State {
	if !registered {
		return StateUnregistered
	}
	if serving {
		return StateServing
	}
	if hasArtifacts {
		return StateBuilt
	}
	return StateRegistered
}
