// Where: cli/internal/state/state_test.go
// What: Tests for target state derivation logic.
// Why: Keep detection rules deterministic and easy to validate.
package state

import "testing"

func TestDeriveState(t *testing.T) {
	t.Run("unregistered when target unknown", func(t *testing.T) {
		state := DeriveState(false, false, false)
		assertState(t, StateUnregistered, state)
	})

	t.Run("unregistered ignores artifacts", func(t *testing.T) {
		state := DeriveState(false, false, true)
		assertState(t, StateUnregistered, state)
	})

	t.Run("serving when a dev server holds the lock", func(t *testing.T) {
		state := DeriveState(true, true, false)
		assertState(t, StateServing, state)
	})

	t.Run("serving outranks built", func(t *testing.T) {
		state := DeriveState(true, true, true)
		assertState(t, StateServing, state)
	})

	t.Run("built when artifacts exist and no server runs", func(t *testing.T) {
		state := DeriveState(true, false, true)
		assertState(t, StateBuilt, state)
	})

	t.Run("registered when declared but never built", func(t *testing.T) {
		state := DeriveState(true, false, false)
		assertState(t, StateRegistered, state)
	})
}

func assertState(t *testing.T, expected, actual State) {
	t.Helper()
	if expected != actual {
		t.Fatalf("expected state %s, got %s", expected, actual)
	}
}
