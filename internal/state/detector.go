// Where: cli/internal/state/detector.go
// What: State detector orchestration.
// Why: Compose context resolution, lock checks, and artifacts into a state.
package state

import "fmt"

type Detector struct {
	WorkspaceRoot string
	Project       string
	Target        string

	ResolveContext    func(root, project, target string) (Context, error)
	ReadLock          func(path string) (*ServeLock, error)
	HasBuildArtifacts func(outputDir string) (bool, error)
	Warn              func(message string)
}

func (d Detector) Detect() (State, error) {
	resolver := d.ResolveContext
	if resolver == nil {
		resolver = ResolveContext
	}

	ctx, err := resolver(d.WorkspaceRoot, d.Project, d.Target)
	if err != nil {
		return StateUnregistered, nil
	}

	readLock := d.ReadLock
	if readLock == nil {
		readLock = ReadLock
	}
	lock, err := readLock(ctx.LockPath)
	if err != nil {
		return StateRegistered, err
	}
	if lock.Alive() {
		return DeriveState(true, true, false), nil
	}
	if lock != nil {
		warn := d.Warn
		if warn == nil {
			warn = func(string) {}
		}
		warn(fmt.Sprintf("stale serve lock at %s; the next serve replaces it", ctx.LockPath))
	}

	checkArtifacts := d.HasBuildArtifacts
	if checkArtifacts == nil {
		checkArtifacts = HasBuildArtifacts
	}
	hasArtifacts, err := checkArtifacts(ctx.OutputDir)
	if err != nil {
		return StateRegistered, err
	}

	return DeriveState(true, false, hasArtifacts), nil
}
