package cliservice

import (
	"context"
)

type fakeRunner struct {
	dir    string
	env    []string
	name   string
	args   []string
	output []byte
	err    error
}

func (f *fakeRunner) Run(_ context.Context, dir string, env []string, name string, args ...string) error {
	f.dir = dir
	f.env = append([]string{}, env...)
	f.name = name
	f.args = append([]string{}, args...)
	return f.err
}

func (f *fakeRunner) RunQuiet(ctx context.Context, dir string, env []string, name string, args ...string) error {
	return f.Run(ctx, dir, env, name, args...)
}

func (f *fakeRunner) RunOutput(ctx context.Context, dir string, env []string, name string, args ...string) ([]byte, error) {
	if err := f.Run(ctx, dir, env, name, args...); err != nil {
		return nil, err
	}
	return f.output, nil
}
