// Where: cli/internal/cliservice/runner.go
// What: Command execution primitives for the vue-cli-service delegate.
// Why: Provide a minimal, testable interface for one-shot and long-running invocations.
package cliservice

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
	"syscall"
	"time"
)

// interruptGrace is how long a canceled delegate gets to shut down on
// SIGINT before it is killed.
const interruptGrace = 10 * time.Second

// CommandRunner defines the interface for executing delegate commands to
// completion. The env slice holds extra KEY=VALUE entries appended to the
// parent environment.
type CommandRunner interface {
	Run(ctx context.Context, dir string, env []string, name string, args ...string) error
	RunQuiet(ctx context.Context, dir string, env []string, name string, args ...string) error
	RunOutput(ctx context.Context, dir string, env []string, name string, args ...string) ([]byte, error)
}

// ExecRunner implements CommandRunner using os/exec.
type ExecRunner struct{}

// Run executes a command with inherited stdout/stderr.
func (ExecRunner) Run(ctx context.Context, dir string, env []string, name string, args ...string) error {
	cmd := newCommand(ctx, dir, env, name, args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

// RunQuiet executes a command and only shows output if it fails.
func (ExecRunner) RunQuiet(ctx context.Context, dir string, env []string, name string, args ...string) error {
	cmd := newCommand(ctx, dir, env, name, args...)
	out, err := cmd.CombinedOutput()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Command failed: %s %s\n%s\n", name, strings.Join(args, " "), string(out))
		return err
	}
	return nil
}

// RunOutput executes a command and returns its stdout. Stderr is inherited.
func (ExecRunner) RunOutput(ctx context.Context, dir string, env []string, name string, args ...string) ([]byte, error) {
	cmd := newCommand(ctx, dir, env, name, args...)
	cmd.Stderr = os.Stderr
	return cmd.Output()
}

// Process is a started delegate that the caller supervises.
type Process interface {
	PID() int
	Wait() error
	Stop() error
}

// Starter spawns a delegate without waiting for it to finish.
type Starter interface {
	Start(ctx context.Context, dir string, env []string, name string, args ...string) (Process, error)
}

// ExecStarter implements Starter using os/exec. Output writers default to
// the parent's stdout and stderr.
type ExecStarter struct {
	Stdout io.Writer
	Stderr io.Writer
}

func (s ExecStarter) Start(ctx context.Context, dir string, env []string, name string, args ...string) (Process, error) {
	cmd := newCommand(ctx, dir, env, name, args...)
	cmd.Stdout = s.Stdout
	if cmd.Stdout == nil {
		cmd.Stdout = os.Stdout
	}
	cmd.Stderr = s.Stderr
	if cmd.Stderr == nil {
		cmd.Stderr = os.Stderr
	}
	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("start %s: %w", name, err)
	}
	return &execProcess{cmd: cmd}, nil
}

type execProcess struct {
	cmd *exec.Cmd
}

func (p *execProcess) PID() int {
	if p.cmd.Process == nil {
		return 0
	}
	return p.cmd.Process.Pid
}

func (p *execProcess) Wait() error {
	return p.cmd.Wait()
}

func (p *execProcess) Stop() error {
	return signalGroup(p.cmd.Process, syscall.SIGINT)
}

// newCommand prepares an exec.Cmd that interrupts the child on context
// cancellation and escalates to kill after the grace period. The child
// starts its own process group so the delegate's workers go down with it.
func newCommand(ctx context.Context, dir string, env []string, name string, args ...string) *exec.Cmd {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir
	if len(env) > 0 {
		cmd.Env = append(os.Environ(), env...)
	}
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}
	cmd.Cancel = func() error {
		return signalGroup(cmd.Process, syscall.SIGINT)
	}
	cmd.WaitDelay = interruptGrace
	return cmd
}

// signalGroup signals the process group of the delegate, falling back to
// the process itself when its group cannot be resolved.
func signalGroup(process *os.Process, sig syscall.Signal) error {
	if process == nil {
		return nil
	}
	if pgid, err := syscall.Getpgid(process.Pid); err == nil && pgid > 0 {
		return syscall.Kill(-pgid, sig)
	}
	return process.Signal(sig)
}
