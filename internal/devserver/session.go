// Where: cli/internal/devserver/session.go
// What: Dev server session lifecycle around the vue-cli-service delegate.
// Why: Spawn, wait for readiness, emit exactly one result, supervise shutdown.
package devserver

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync/atomic"
	"time"

	"github.com/atotto/clipboard"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/poruru-code/vue-serve-box/cli/internal/cliservice"
	"github.com/poruru-code/vue-serve-box/cli/internal/options"
	"github.com/poruru-code/vue-serve-box/cli/internal/state"
	"github.com/poruru-code/vue-serve-box/cli/internal/ui"
)

// Result is the single ready signal of a serve run.
type Result struct {
	Success bool
	BaseURL string
}

// Request carries everything a serve run needs.
type Request struct {
	WorkspaceRoot string
	ProjectDir    string
	// Binary overrides delegate resolution when set.
	Binary      string
	OverlayPath string
	LockPath    string
	TargetRef   string
	Serve       options.ServeOptions
}

// Session runs one dev server. Every dependency has a production default;
// tests swap in fakes.
type Session struct {
	Starter  cliservice.Starter
	Probe    *Probe
	Banner   *ui.Banner
	OpenURL  func(url string) error
	CopyText func(text string) error
	Stdin    io.Reader
	Warn     func(message string)
	NewRunID func() string
	PickPort func(host string) (int, error)
	Now      func() time.Time
}

// Run starts the delegate, waits for readiness, and blocks until the server
// stops. onResult is invoked at most once, with the ready signal; startup
// failures return an error without any emission.
func (s *Session) Run(ctx context.Context, req Request, onResult func(Result)) error {
	starter := s.Starter
	if starter == nil {
		starter = cliservice.ExecStarter{}
	}
	warn := s.Warn
	if warn == nil {
		warn = func(string) {}
	}

	if existing, err := state.ReadLock(req.LockPath); err != nil {
		warn(fmt.Sprintf("ignoring unreadable serve lock: %v", err))
	} else if existing.Alive() {
		return fmt.Errorf(
			"%s is already serving at %s (pid %d). Stop it before starting another dev server.",
			req.TargetRef, existing.URL, existing.PID,
		)
	}

	serve := req.Serve
	if serve.Port == 0 {
		pick := s.PickPort
		if pick == nil {
			pick = PickPort
		}
		port, err := pick(serve.Host)
		if err != nil {
			return err
		}
		serve.Port = port
	}

	binary := req.Binary
	if binary == "" {
		resolved, err := cliservice.ResolveBinary(req.ProjectDir, req.WorkspaceRoot)
		if err != nil {
			return err
		}
		binary = resolved
	}

	baseURL := BaseURL(serve, serve.Port)
	args := cliservice.ServeArgs(serve)
	env := cliservice.Env(req.OverlayPath, serve.Mode)

	proc, err := starter.Start(ctx, req.ProjectDir, env, binary, args...)
	if err != nil {
		return err
	}

	s.writeLock(req, proc.PID(), baseURL, warn)
	defer func() { _ = state.RemoveLock(req.LockPath) }()

	exited := make(chan error, 1)
	go func() { exited <- proc.Wait() }()

	if err := s.awaitReady(ctx, serve, proc, exited); err != nil {
		return err
	}

	s.announce(serve, baseURL, onResult, warn)

	return s.supervise(ctx, serve, proc, exited)
}

func (s *Session) writeLock(req Request, pid int, baseURL string, warn func(string)) {
	newRunID := s.NewRunID
	if newRunID == nil {
		newRunID = uuid.NewString
	}
	now := s.Now
	if now == nil {
		now = time.Now
	}
	lock := state.ServeLock{
		PID:       pid,
		URL:       baseURL,
		RunID:     newRunID(),
		Target:    req.TargetRef,
		StartedAt: now().Format(time.RFC3339),
	}
	if err := state.WriteLock(req.LockPath, lock); err != nil {
		warn(fmt.Sprintf("write serve lock: %v", err))
	}
}

// awaitReady races the readiness probe against delegate exit. An exit during
// startup is the terminal error of the run.
func (s *Session) awaitReady(ctx context.Context, serve options.ServeOptions, proc cliservice.Process, exited chan error) error {
	probe := s.Probe
	if probe == nil {
		probe = NewProbe()
	}

	probeCtx, cancelProbe := context.WithCancel(ctx)
	defer cancelProbe()
	ready := make(chan error, 1)
	go func() { ready <- probe.Wait(probeCtx, ProbeURL(serve, serve.Port)) }()

	select {
	case err := <-exited:
		if err != nil {
			return fmt.Errorf("dev server exited during startup: %w", err)
		}
		return fmt.Errorf("dev server exited during startup")
	case err := <-ready:
		if err != nil {
			_ = proc.Stop()
			drainExit(exited, interruptDrainGrace)
			return err
		}
		return nil
	case <-ctx.Done():
		_ = proc.Stop()
		drainExit(exited, interruptDrainGrace)
		return ctx.Err()
	}
}

// interruptDrainGrace bounds how long a failed startup waits for the
// interrupted delegate to exit.
const interruptDrainGrace = 15 * time.Second

func drainExit(exited chan error, grace time.Duration) {
	select {
	case <-exited:
	case <-time.After(grace):
	}
}

func (s *Session) announce(serve options.ServeOptions, baseURL string, onResult func(Result), warn func(string)) {
	if s.Banner != nil {
		s.Banner.Running(baseURL, NetworkURL(serve, serve.Port))
		if serve.Mode != "production" {
			s.Banner.Note("Note that the development build is not optimized.")
			s.Banner.Note("To create a production build, run vsb build.")
		}
	}
	if onResult != nil {
		onResult(Result{Success: true, BaseURL: baseURL})
	}
	if serve.Copy {
		copyText := s.CopyText
		if copyText == nil {
			copyText = clipboard.WriteAll
		}
		if err := copyText(baseURL); err != nil {
			warn(fmt.Sprintf("copy url to clipboard: %v", err))
		}
	}
	if serve.Open {
		open := s.OpenURL
		if open == nil {
			open = OpenBrowser
		}
		if err := open(baseURL); err != nil {
			warn(fmt.Sprintf("open browser: %v", err))
		}
	}
}

// supervise blocks until the delegate stops. Shutdowns we initiated, via
// ctx cancel or stdin close, end the run without an error.
func (s *Session) supervise(ctx context.Context, serve options.ServeOptions, proc cliservice.Process, exited chan error) error {
	var requested atomic.Bool

	var eof chan struct{}
	if serve.Stdin {
		eof = make(chan struct{})
		stdin := s.Stdin
		if stdin == nil {
			stdin = os.Stdin
		}
		go func() {
			_, _ = io.Copy(io.Discard, stdin)
			close(eof)
		}()
	}

	runCtx, cancelRun := context.WithCancel(ctx)
	defer cancelRun()
	g, gctx := errgroup.WithContext(runCtx)

	g.Go(func() error {
		defer cancelRun()
		err := <-exited
		if requested.Load() || ctx.Err() != nil {
			return nil
		}
		return err
	})

	g.Go(func() error {
		select {
		case <-eof:
			requested.Store(true)
			_ = proc.Stop()
		case <-gctx.Done():
			if ctx.Err() != nil {
				requested.Store(true)
				_ = proc.Stop()
			}
		}
		return nil
	})

	return g.Wait()
}
