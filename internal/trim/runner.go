package trim

import (
	"context"
	"io"
	"os/exec"
)

// CommandRunner runs external commands. Tests replace it to avoid needing
// ffmpeg on the machine.
type CommandRunner interface {
	LookPath(file string) (string, error)
	Output(ctx context.Context, name string, args ...string) ([]byte, error)
	Run(ctx context.Context, stderr io.Writer, name string, args ...string) error
}

// ExecCommandRunner is the production implementation using os/exec
type ExecCommandRunner struct{}

// LookPath resolves file on PATH
func (r *ExecCommandRunner) LookPath(file string) (string, error) {
	return exec.LookPath(file)
}

// Output executes a command and returns its stdout
func (r *ExecCommandRunner) Output(ctx context.Context, name string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	return cmd.Output()
}

// Run executes a command, streaming its stderr to the given writer
func (r *ExecCommandRunner) Run(ctx context.Context, stderr io.Writer, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stderr = stderr
	return cmd.Run()
}
