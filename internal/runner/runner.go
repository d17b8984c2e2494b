// Package runner is the subprocess boundary. Stages never call os/exec
// directly; they go through a Runner so tests can substitute a fake.
package runner

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/quantmind-br/create-example/internal/utils"
)

// Runner executes external programs
type Runner interface {
	// Run executes name with args in dir. Output is discarded; a non-zero
	// exit status is returned as an error.
	Run(ctx context.Context, dir, name string, args ...string) error
	// LookPath reports where name would be found on PATH
	LookPath(name string) (string, error)
}

// ExecRunner implements Runner with os/exec
type ExecRunner struct {
	logger *utils.Logger
}

// NewExecRunner creates a new ExecRunner
func NewExecRunner(logger *utils.Logger) *ExecRunner {
	return &ExecRunner{logger: logger.OrNop().WithComponent("runner")}
}

// Run executes the command with stdin and stdout detached. Stderr is kept
// in memory and attached to the error so failures can be logged.
func (r *ExecRunner) Run(ctx context.Context, dir, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	r.logger.Debug().Str("dir", dir).Str("cmd", name+" "+strings.Join(args, " ")).Msg("Running command")

	if err := cmd.Run(); err != nil {
		return &CommandError{
			Command: name + " " + strings.Join(args, " "),
			Stderr:  strings.TrimSpace(stderr.String()),
			Err:     err,
		}
	}
	return nil
}

// LookPath wraps exec.LookPath
func (r *ExecRunner) LookPath(name string) (string, error) {
	return exec.LookPath(name)
}

// CommandError describes a failed command
type CommandError struct {
	Command string
	Stderr  string
	Err     error
}

func (e *CommandError) Error() string {
	if e.Stderr != "" {
		return fmt.Sprintf("%s: %v: %s", e.Command, e.Err, e.Stderr)
	}
	return fmt.Sprintf("%s: %v", e.Command, e.Err)
}

func (e *CommandError) Unwrap() error {
	return e.Err
}
