package testutil

import (
	"context"
	"fmt"
	"sync"

	oerrors "github.com/opmodel/stackgen/internal/errors"
	"github.com/opmodel/stackgen/internal/process"
)

// FakeRunner records commands instead of executing them.
// It is safe for concurrent use.
type FakeRunner struct {
	mu    sync.Mutex
	calls []process.Command

	// Hook, when set, runs for every command. A non-nil error fails the call.
	// Hooks may write files to simulate a tool's side effects.
	Hook func(cmd process.Command) (process.Result, error)
}

// Run implements process.Runner.
func (f *FakeRunner) Run(_ context.Context, cmd process.Command) (process.Result, error) {
	f.mu.Lock()
	f.calls = append(f.calls, cmd)
	hook := f.Hook
	f.mu.Unlock()

	if hook == nil {
		return process.Result{}, nil
	}
	return hook(cmd)
}

// Calls returns a copy of the recorded commands in call order.
func (f *FakeRunner) Calls() []process.Command {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]process.Command, len(f.calls))
	copy(out, f.calls)
	return out
}

// CallsIn returns the recorded commands whose working directory is dir.
func (f *FakeRunner) CallsIn(dir string) []process.Command {
	var out []process.Command
	for _, c := range f.Calls() {
		if c.Dir == dir {
			out = append(out, c)
		}
	}
	return out
}

// Fail returns the error a failing tool produces.
func Fail(cmd process.Command, code int) (process.Result, error) {
	return process.Result{ExitCode: code}, &process.ExitError{
		Command: cmd,
		Code:    code,
		Err:     fmt.Errorf("%w: exit status %d", oerrors.ErrProcess, code),
	}
}
