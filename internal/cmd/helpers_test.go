package cmd

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"

	"github.com/opmodel/stackgen/internal/process"
	"github.com/opmodel/stackgen/internal/stack"
	"github.com/opmodel/stackgen/internal/testutil"
)

// isolateConfig points configuration at a file that does not exist so tests
// never read the developer's ~/.stackgen.
func isolateConfig(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	t.Setenv("STACKGEN_CONFIG", path)
	for _, k := range []string{"STACKGEN_FRONTEND_TOOL", "STACKGEN_TYPESCRIPT", "STACKGEN_PACKAGE_MANAGER", "STACKGEN_LOG_TIMESTAMPS"} {
		t.Setenv(k, "")
	}
	return path
}

// scaffolderRunner succeeds for every command and writes the package.json a
// frontend scaffolder would leave behind.
func scaffolderRunner(t *testing.T) *testutil.FakeRunner {
	return &testutil.FakeRunner{Hook: func(cmd process.Command) (process.Result, error) {
		if cmd.Name == "node" {
			return process.Result{Output: "v20.11.0\n"}, nil
		}
		if len(cmd.Args) > 0 && (cmd.Args[0] == "create" || cmd.Args[0] == "create-react-app") {
			testutil.WriteFile(t, cmd.Dir, "package.json", `{"name":"frontend","private":true,"scripts":{"dev":"vite"}}`)
		}
		return process.Result{}, nil
	}}
}

func testEnv(t *testing.T, p *testutil.ScriptedPrompter, r process.Runner) (createEnv, string) {
	cwd := t.TempDir()
	return createEnv{
		prompter:    p,
		runner:      r,
		registry:    stack.Default,
		getwd:       func() (string, error) { return cwd, nil },
		interactive: func() bool { return true },
	}, cwd
}

func execute(t *testing.T, root *cobra.Command, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(args)
	err := root.Execute()
	return stdout.String(), stderr.String(), err
}
