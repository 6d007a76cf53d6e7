package toolchain

import (
	"context"
	"errors"
	"os"
	"os/exec"
)

// Describes a single toolchain command invocation.
type Command struct {
	Name string   // Binary to invoke, resolved on the search path.
	Args []string // Arguments, not including the binary name.
	Dir  string   // Working directory; empty means the current directory.
	Env  []string // "key=value" entries appended to the process environment.
}

// Output of a completed toolchain command.
type Result struct {
	ExitCode int // Exit code of the process.
}

// Runs external toolchain commands.
//
// A non-zero exit code is not an error; the caller decides. Errors are
// reserved for failures to start or wait on the process.
type Runner interface {
	Run(ctx context.Context, cmd Command) (*Result, error)
}

// Executes commands as child processes with output streamed to the
// operator's terminal.
type execRunner struct{}

// Creates a [Runner] backed by child process execution.
func NewExecRunner() Runner {
	return execRunner{}
}

// Runs the command, blocking until it exits.
//
// Entries in cmd.Env are appended after the inherited environment, so they
// win over any inherited value for the same key.
func (execRunner) Run(ctx context.Context, cmd Command) (*Result, error) {
	c := exec.CommandContext(ctx, cmd.Name, cmd.Args...)
	c.Dir = cmd.Dir
	c.Stdout = os.Stdout
	c.Stderr = os.Stderr
	c.Env = append(os.Environ(), cmd.Env...)

	err := c.Run()
	if err == nil {
		return &Result{ExitCode: 0}, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return &Result{ExitCode: exitErr.ExitCode()}, nil
	}

	return nil, err
}
