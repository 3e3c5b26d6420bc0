// Where: cli/internal/state/lock.go
// What: Serve session lock persistence.
// Why: Let info and a second serve detect an already-running dev server.
package state

import (
	"errors"
	"os"
	"path/filepath"
	"syscall"

	"gopkg.in/yaml.v3"
)

// ServeLock records one live serve session under the staging dir.
type ServeLock struct {
	PID       int    `yaml:"pid"`
	URL       string `yaml:"url"`
	RunID     string `yaml:"run_id"`
	Target    string `yaml:"target"`
	StartedAt string `yaml:"started_at"`
}

// Alive reports whether the recorded process still exists. A stale lock
// left by a crashed session reads as not alive.
func (l *ServeLock) Alive() bool {
	if l == nil || l.PID <= 0 {
		return false
	}
	process, err := os.FindProcess(l.PID)
	if err != nil {
		return false
	}
	return process.Signal(syscall.Signal(0)) == nil
}

// ReadLock loads a serve lock. A missing file yields nil without error.
func ReadLock(path string) (*ServeLock, error) {
	payload, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	var lock ServeLock
	if err := yaml.Unmarshal(payload, &lock); err != nil {
		return nil, err
	}
	return &lock, nil
}

// WriteLock persists a serve lock, creating the staging dir if needed.
func WriteLock(path string, lock ServeLock) error {
	payload, err := yaml.Marshal(&lock)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, payload, 0o644)
}

// RemoveLock deletes a serve lock. A missing file is not an error.
func RemoveLock(path string) error {
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}
