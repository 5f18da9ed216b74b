package generator

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/opmodel/stackgen/internal/manifest"
	"github.com/opmodel/stackgen/internal/npm"
	"github.com/opmodel/stackgen/internal/output"
	"github.com/opmodel/stackgen/internal/process"
)

// FrontendDependencies are added to every generated React application.
var FrontendDependencies = []string{
	"axios",
	"@tanstack/react-query",
	"react-router-dom",
}

// FrontendDevDependencies returns the development packages for a frontend.
func FrontendDevDependencies(typescript bool) []string {
	deps := []string{
		"prettier",
		"eslint-config-prettier",
		"eslint-plugin-prettier",
	}
	if typescript {
		deps = append(deps, "@types/node", "@types/react", "@types/react-dom")
	}
	return deps
}

// FrontendScripts returns the scripts merged into the scaffolded package.json.
func FrontendScripts() *manifest.StringMap {
	return manifest.NewStringMap(
		"format", `prettier --write "src/**/*.{js,jsx,ts,tsx}"`,
		"lint", `eslint "src/**/*.{js,jsx,ts,tsx}" --fix`,
	)
}

// Frontend generates the React application by delegating to the build
// tool's scaffolder and then customizing its output.
type Frontend struct {
	runner process.Runner
}

// NewFrontend returns a frontend generator that runs tools with runner.
func NewFrontend(runner process.Runner) *Frontend {
	return &Frontend{runner: runner}
}

// Generate scaffolds the application into dir, which must already exist.
// It returns the files it authored or modified, relative to dir.
func (f *Frontend) Generate(ctx context.Context, dir string, opts FrontendOptions) ([]string, error) {
	log := output.GeneratorLogger("frontend")
	log.Info("setting up frontend", "tool", opts.Tool.DisplayName(), "typescript", opts.TypeScript)

	pm := opts.PackageManager
	steps := []struct {
		what string
		cmd  process.Command
	}{
		{"scaffolding with " + opts.Tool.DisplayName(), npm.CreateCommand(pm, opts.Tool, opts.TypeScript, dir)},
		{"adding dependencies", pm.Add(dir, false, FrontendDependencies...)},
		{"adding dev dependencies", pm.Add(dir, true, FrontendDevDependencies(opts.TypeScript)...)},
	}

	for _, s := range steps {
		log.Info(s.what, "cmd", s.cmd.String())
		if _, err := f.runner.Run(ctx, s.cmd); err != nil {
			return nil, fmt.Errorf("frontend %s: %w", s.what, err)
		}
	}

	if err := manifest.PatchScripts(filepath.Join(dir, "package.json"), FrontendScripts()); err != nil {
		return nil, fmt.Errorf("updating frontend scripts: %w", err)
	}

	return []string{"package.json"}, nil
}
