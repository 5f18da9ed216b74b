package process

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	oerrors "github.com/opmodel/stackgen/internal/errors"
)

func requireSh(t *testing.T) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("requires a POSIX shell")
	}
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}
}

func TestCommandString(t *testing.T) {
	tests := []struct {
		name string
		cmd  Command
		want string
	}{
		{"plain", Command{Name: "npm", Args: []string{"install"}}, "npm install"},
		{"separator", Command{Name: "npm", Args: []string{"create", "vite@latest", ".", "--", "--template", "react"}}, "npm create vite@latest . -- --template react"},
		{"quoted", Command{Name: "eslint", Args: []string{"src/**/*.js", "--fix"}}, `eslint "src/**/*.js" --fix`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.cmd.String())
		})
	}
}

func TestExecRunner_StreamsAndCaptures(t *testing.T) {
	requireSh(t)

	var stdout bytes.Buffer
	r := &ExecRunner{Stdout: &stdout}
	dir := t.TempDir()

	res, err := r.Run(context.Background(), Command{
		Name: "sh",
		Args: []string{"-c", "pwd; echo hello"},
		Dir:  dir,
	})

	require.NoError(t, err)
	assert.Equal(t, 0, res.ExitCode)
	assert.Contains(t, stdout.String(), "hello")
	assert.Contains(t, res.Output, "hello")
}

func TestExecRunner_QuietDoesNotStream(t *testing.T) {
	requireSh(t)

	var stdout bytes.Buffer
	r := &ExecRunner{Stdout: &stdout}

	res, err := r.Run(context.Background(), Command{
		Name:  "sh",
		Args:  []string{"-c", "echo v18.17.0"},
		Dir:   t.TempDir(),
		Quiet: true,
	})

	require.NoError(t, err)
	assert.Empty(t, stdout.String())
	assert.Equal(t, "v18.17.0\n", res.Output)
}

func TestExecRunner_EnvIsAppended(t *testing.T) {
	requireSh(t)

	r := &ExecRunner{}
	res, err := r.Run(context.Background(), Command{
		Name:  "sh",
		Args:  []string{"-c", "echo $STACKGEN_TEST_VALUE"},
		Dir:   t.TempDir(),
		Env:   []string{"STACKGEN_TEST_VALUE=42"},
		Quiet: true,
	})

	require.NoError(t, err)
	assert.Equal(t, "42\n", res.Output)
}

func TestExecRunner_NonZeroExit(t *testing.T) {
	requireSh(t)

	r := &ExecRunner{}
	res, err := r.Run(context.Background(), Command{
		Name:  "sh",
		Args:  []string{"-c", "echo broken >&2; exit 3"},
		Dir:   t.TempDir(),
		Quiet: true,
	})

	require.Error(t, err)
	assert.Equal(t, 3, res.ExitCode)
	assert.ErrorIs(t, err, oerrors.ErrProcess)

	var exitErr *ExitError
	require.True(t, errors.As(err, &exitErr))
	assert.Equal(t, 3, exitErr.Code)
	assert.Contains(t, exitErr.Output, "broken")
	assert.Contains(t, exitErr.Error(), "exited with code 3")
}

func TestExecRunner_MissingExecutable(t *testing.T) {
	r := &ExecRunner{}
	_, err := r.Run(context.Background(), Command{
		Name: "stackgen-definitely-not-installed",
		Dir:  t.TempDir(),
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, oerrors.ErrProcess)
	assert.ErrorIs(t, err, exec.ErrNotFound)
	assert.Equal(t, oerrors.ExitProcessError, oerrors.ExitCodeFromError(err))
}
