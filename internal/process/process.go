// Package process runs the external package-manager commands a scaffold needs.
package process

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	oerrors "github.com/opmodel/stackgen/internal/errors"
	"github.com/opmodel/stackgen/internal/output"
)

// Command describes one external invocation.
type Command struct {
	// Name is the executable, resolved through PATH.
	Name string

	// Args are passed verbatim; no shell is involved.
	Args []string

	// Dir is the working directory.
	Dir string

	// Env is appended to the current environment.
	Env []string

	// Quiet captures output without streaming it to the terminal.
	Quiet bool
}

// String renders the command line the way a user would type it.
func (c Command) String() string {
	parts := make([]string, 0, len(c.Args)+1)
	parts = append(parts, c.Name)
	for _, a := range c.Args {
		if a == "" || strings.ContainsAny(a, " \t\"'*{}") {
			a = fmt.Sprintf("%q", a)
		}
		parts = append(parts, a)
	}
	return strings.Join(parts, " ")
}

// Result is the outcome of a finished command.
type Result struct {
	ExitCode int
	Output   string
}

// ExitError reports a command that could not start or exited non-zero.
type ExitError struct {
	Command Command
	Code    int
	Output  string
	Err     error
}

// Error implements the error interface.
func (e *ExitError) Error() string {
	if e.Code < 0 {
		return fmt.Sprintf("running %s in %s: %v", e.Command.String(), e.Command.Dir, e.Err)
	}
	return fmt.Sprintf("%s exited with code %d in %s", e.Command.String(), e.Code, e.Command.Dir)
}

// Unwrap lets callers match ErrProcess and the underlying exec error.
func (e *ExitError) Unwrap() []error {
	if e.Err == nil {
		return []error{oerrors.ErrProcess}
	}
	return []error{oerrors.ErrProcess, e.Err}
}

// Runner runs external commands.
type Runner interface {
	Run(ctx context.Context, cmd Command) (Result, error)
}

// ExecRunner runs commands with os/exec, streaming their output.
type ExecRunner struct {
	Stdout io.Writer
	Stderr io.Writer
}

// NewExecRunner returns a runner bound to the process's stdout and stderr.
func NewExecRunner() *ExecRunner {
	return &ExecRunner{Stdout: os.Stdout, Stderr: os.Stderr}
}

// Run implements Runner. The combined output is returned in Result.Output
// whether or not it was streamed.
func (r *ExecRunner) Run(ctx context.Context, cmd Command) (Result, error) {
	path, err := exec.LookPath(cmd.Name)
	if err != nil {
		return Result{ExitCode: -1}, &ExitError{Command: cmd, Code: -1, Err: err}
	}

	output.Debug("running command", "cmd", cmd.String(), "dir", cmd.Dir)

	c := exec.CommandContext(ctx, path, cmd.Args...)
	c.Dir = cmd.Dir
	if len(cmd.Env) > 0 {
		c.Env = append(os.Environ(), cmd.Env...)
	}

	var buf bytes.Buffer
	if cmd.Quiet {
		c.Stdout = &buf
		c.Stderr = &buf
	} else {
		c.Stdin = os.Stdin
		c.Stdout = io.MultiWriter(r.stdout(), &buf)
		c.Stderr = io.MultiWriter(r.stderr(), &buf)
	}

	runErr := c.Run()
	res := Result{Output: buf.String()}
	if runErr == nil {
		return res, nil
	}

	var exitErr *exec.ExitError
	if errors.As(runErr, &exitErr) {
		res.ExitCode = exitErr.ExitCode()
		return res, &ExitError{Command: cmd, Code: res.ExitCode, Output: res.Output, Err: runErr}
	}

	res.ExitCode = -1
	return res, &ExitError{Command: cmd, Code: -1, Output: res.Output, Err: runErr}
}

func (r *ExecRunner) stdout() io.Writer {
	if r.Stdout == nil {
		return io.Discard
	}
	return r.Stdout
}

func (r *ExecRunner) stderr() io.Writer {
	if r.Stderr == nil {
		return io.Discard
	}
	return r.Stderr
}
