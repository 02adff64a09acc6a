// Package shell provides the subprocess executor adapter.
package shell

import (
	"bytes"
	"context"
	"os/exec"
	"strings"

	"go.trai.ch/pin/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Executor = (*Executor)(nil)

// Executor implements ports.Executor using os/exec.
type Executor struct {
	logger ports.Logger
}

// NewExecutor creates a new Executor.
func NewExecutor(logger ports.Logger) *Executor {
	return &Executor{logger: logger}
}

// Output runs argv in dir and returns its captured stdout. On a non-zero
// exit the error carries the exit code and a stderr excerpt.
func (e *Executor) Output(ctx context.Context, dir string, argv []string) ([]byte, error) {
	cmd, err := e.command(ctx, dir, argv)
	if err != nil {
		return nil, err
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return nil, commandError(err, argv, stderr.String())
	}
	return stdout.Bytes(), nil
}

// Run runs argv in dir, streaming both output streams through the logger.
func (e *Executor) Run(ctx context.Context, dir string, argv []string) error {
	cmd, err := e.command(ctx, dir, argv)
	if err != nil {
		return err
	}

	cmd.Stdout = &logWriter{logger: e.logger, level: "info"}
	cmd.Stderr = &logWriter{logger: e.logger, level: "error"}

	if err := cmd.Run(); err != nil {
		return commandError(err, argv, "")
	}
	return nil
}

func (e *Executor) command(ctx context.Context, dir string, argv []string) (*exec.Cmd, error) {
	if len(argv) == 0 {
		return nil, zerr.New("empty command")
	}
	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...) //nolint:gosec // Command comes from configuration
	cmd.Dir = dir
	return cmd, nil
}

func commandError(err error, argv []string, stderr string) error {
	var exitCode int
	if exitErr, ok := err.(*exec.ExitError); ok {
		exitCode = exitErr.ExitCode()
	} else {
		exitCode = -1 // Unknown or signal
	}

	wrapped := zerr.With(zerr.Wrap(err, "command failed"), "command", strings.Join(argv, " "))
	wrapped = zerr.With(wrapped, "exit_code", exitCode)
	if stderr != "" {
		wrapped = zerr.With(wrapped, "stderr", tail(stderr, 2048))
	}
	return wrapped
}

func tail(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[len(s)-n:]
}

type logWriter struct {
	logger ports.Logger
	level  string
}

func (w *logWriter) Write(p []byte) (n int, err error) {
	lines := strings.Split(strings.TrimSuffix(string(p), "\n"), "\n")
	for _, line := range lines {
		if w.level == "info" {
			w.logger.Info(line)
		} else {
			w.logger.Error(zerr.New(line))
		}
	}
	return len(p), nil
}
