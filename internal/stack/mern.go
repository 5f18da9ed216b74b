package stack

import (
	"context"
	"fmt"
	"os"
	"path"
	"path/filepath"

	"golang.org/x/sync/errgroup"

	"github.com/opmodel/stackgen/internal/generator"
	"github.com/opmodel/stackgen/internal/manifest"
	"github.com/opmodel/stackgen/internal/npm"
	"github.com/opmodel/stackgen/internal/output"
	"github.com/opmodel/stackgen/internal/prompt"
)

// MERNStack is the MongoDB, Express, React, Node.js stack.
var MERNStack = Stack{
	Key:         "MERN",
	Name:        "MERN Stack",
	Description: "MongoDB, Express.js, React.js, Node.js",
	New: func(env Env) Handler {
		return NewMERN(env)
	},
}

// Options are the answers to the MERN questions.
type Options struct {
	FrontendTool   npm.Tool
	TypeScript     bool
	PackageManager npm.PackageManager
}

// UseYarn reports whether yarn drives installs.
func (o Options) UseYarn() bool {
	return o.PackageManager == npm.Yarn
}

// MERN drives generation of a MERN project.
type MERN struct {
	env      Env
	frontend *generator.Frontend
	backend  *generator.Backend
	docs     *generator.Documentation
}

// NewMERN returns a MERN driver using env.
func NewMERN(env Env) *MERN {
	return &MERN{
		env:      env,
		frontend: generator.NewFrontend(env.Runner),
		backend:  generator.NewBackend(env.Runner),
		docs:     generator.NewDocumentation(),
	}
}

// Create implements Handler.
func (m *MERN) Create(ctx context.Context, projectPath string) (*Result, error) {
	if v, err := npm.CheckNode(ctx, m.env.Runner); err != nil {
		output.Warn("Node.js check failed, generated projects need Node.js "+npm.MinNodeVersion, "err", err)
	} else {
		output.Debug("node detected", "version", v.String())
	}

	opts, err := m.PromptOptions()
	if err != nil {
		return nil, err
	}
	return m.Generate(ctx, projectPath, opts)
}

// PromptOptions asks the MERN questions. Defaults come from configuration.
func (m *MERN) PromptOptions() (Options, error) {
	defTool := npm.Vite
	if t, err := npm.ParseTool(m.env.Defaults.FrontendTool); err == nil {
		defTool = t
	}

	tool, err := m.env.Prompter.Select("Choose your React build tool:", []prompt.Option{
		{Label: npm.Vite.DisplayName(), Value: npm.Vite.String()},
		{Label: npm.CRA.DisplayName(), Value: npm.CRA.String()},
	}, defTool.String())
	if err != nil {
		return Options{}, err
	}

	ts, err := m.env.Prompter.Confirm("Would you like to use TypeScript?", m.env.Defaults.TypeScript)
	if err != nil {
		return Options{}, err
	}

	defYarn := false
	if pm, err := npm.ParsePackageManager(m.env.Defaults.PackageManager); err == nil {
		defYarn = pm == npm.Yarn
	}

	yarn, err := m.env.Prompter.Confirm("Would you like to use Yarn instead of npm?", defYarn)
	if err != nil {
		return Options{}, err
	}

	return Options{
		FrontendTool:   npm.Tool(tool),
		TypeScript:     ts,
		PackageManager: npm.FromYarn(yarn),
	}, nil
}

// Generate writes the project into projectPath, which must exist.
// The frontend and backend run concurrently; both are awaited and the
// frontend's error is reported first when both fail. Nothing is rolled back.
func (m *MERN) Generate(ctx context.Context, projectPath string, opts Options) (*Result, error) {
	res := &Result{Files: map[string]string{}}

	frontendDir := filepath.Join(projectPath, "frontend")
	backendDir := filepath.Join(projectPath, "backend")
	for _, d := range []string{frontendDir, backendDir} {
		if err := os.Mkdir(d, 0o755); err != nil {
			return res, fmt.Errorf("creating %s directory: %w", filepath.Base(d), err)
		}
		output.Info("created directory", "path", output.StyleNoun.Render(filepath.Base(d)))
	}
	res.Files["frontend/"] = opts.FrontendTool.DisplayName() + " application"

	var (
		g                       errgroup.Group
		frontendFiles           []string
		backendFiles            []string
		frontendErr, backendErr error
	)
	g.Go(func() error {
		frontendFiles, frontendErr = m.frontend.Generate(ctx, frontendDir, generator.FrontendOptions{
			Tool:           opts.FrontendTool,
			TypeScript:     opts.TypeScript,
			PackageManager: opts.PackageManager,
		})
		return frontendErr
	})
	g.Go(func() error {
		backendFiles, backendErr = m.backend.Generate(ctx, backendDir, generator.BackendOptions{
			TypeScript:     opts.TypeScript,
			PackageManager: opts.PackageManager,
		})
		return backendErr
	})

	waitErr := g.Wait()
	record(res, "frontend", frontendFiles)
	record(res, "backend", backendFiles)
	if waitErr != nil {
		if frontendErr != nil {
			if backendErr != nil {
				output.Error("backend generation also failed", "err", backendErr)
			}
			return res, fmt.Errorf("frontend: %w", frontendErr)
		}
		return res, fmt.Errorf("backend: %w", backendErr)
	}

	name := filepath.Base(projectPath)
	err := output.RunWithSpinner(ctx, func() error {
		docFiles, err := m.docs.Generate(projectPath, generator.DocOptions{
			ProjectName:  name,
			FrontendTool: opts.FrontendTool,
			TypeScript:   opts.TypeScript,
			UseYarn:      opts.UseYarn(),
		})
		record(res, "", docFiles)
		if err != nil {
			return fmt.Errorf("documentation: %w", err)
		}

		if err := manifest.Write(filepath.Join(projectPath, "package.json"), RootManifest(name)); err != nil {
			return fmt.Errorf("workspace manifest: %w", err)
		}
		record(res, "", []string{"package.json"})
		return nil
	}, output.WithTitle("Writing documentation and workspace manifest"))

	return res, err
}

// RootManifest returns the workspace package.json tying frontend and backend together.
func RootManifest(name string) *manifest.Package {
	return &manifest.Package{
		Name:       name,
		Version:    "1.0.0",
		Private:    true,
		Workspaces: []string{"frontend", "backend"},
		Scripts: manifest.NewStringMap(
			"dev", `concurrently "npm run dev:frontend" "npm run dev:backend"`,
			"dev:frontend", "npm run dev --workspace=frontend",
			"dev:backend", "npm run dev --workspace=backend",
			"build", "npm run build --workspaces",
			"start", "npm run start:backend",
			"start:backend", "npm run start --workspace=backend",
		),
		DevDependencies: manifest.NewStringMap("concurrently", "^8.2.0"),
	}
}

// record adds generated files under dir to the result with their descriptions.
func record(res *Result, dir string, files []string) {
	for _, f := range files {
		rel := path.Join(dir, filepath.ToSlash(f))
		res.Files[rel] = describe(rel)
	}
}

var descriptions = map[string]string{
	"package.json":                    "workspace manifest",
	"README.md":                       "project overview",
	"frontend/package.json":           "scripts: format, lint",
	"frontend/README.md":              "frontend guide",
	"backend/package.json":            "API manifest",
	"backend/README.md":               "API reference",
	"backend/.env":                    "local environment",
	"backend/.env.example":            "environment template",
	"backend/tsconfig.json":           "compiler options",
	"backend/src/index":               "server entrypoint",
	"backend/src/models/Example":      "Mongoose model",
	"backend/src/controllers/example": "request handlers",
	"backend/src/routes/example":      "/api/v1/examples",
	"backend/src/config/db":           "MongoDB connection",
	"backend/src/middleware/error":    "error envelope",
}

func describe(rel string) string {
	if d, ok := descriptions[rel]; ok {
		return d
	}
	return descriptions[trimExt(rel)]
}

func trimExt(p string) string {
	if ext := path.Ext(p); ext == ".js" || ext == ".ts" {
		return p[:len(p)-len(ext)]
	}
	return p
}
