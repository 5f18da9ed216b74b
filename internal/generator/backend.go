package generator

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/opmodel/stackgen/internal/manifest"
	"github.com/opmodel/stackgen/internal/output"
	"github.com/opmodel/stackgen/internal/process"
	"github.com/opmodel/stackgen/internal/templates"
)

// backendDirs are created below the backend root before any source file.
var backendDirs = []string{
	"src",
	"src/controllers",
	"src/models",
	"src/routes",
	"src/middleware",
	"src/config",
}

type sourceFile struct {
	// path relative to the backend root, with %s standing for the extension
	path     string
	template templates.Name
}

var backendSources = []sourceFile{
	{"src/index.%s", templates.BackendIndex},
	{"src/models/Example.%s", templates.BackendModel},
	{"src/controllers/example.%s", templates.BackendController},
	{"src/routes/example.%s", templates.BackendRoute},
	{"src/config/db.%s", templates.BackendDB},
	{"src/middleware/error.%s", templates.BackendError},
}

// Backend generates the Express + Mongoose API.
type Backend struct {
	runner process.Runner
}

// NewBackend returns a backend generator that installs dependencies with runner.
func NewBackend(runner process.Runner) *Backend {
	return &Backend{runner: runner}
}

// BackendManifest returns the backend package.json for opts.
func BackendManifest(opts BackendOptions) *manifest.Package {
	p := &manifest.Package{
		Name:    "backend",
		Version: "1.0.0",
		Private: true,
		Type:    "module",
		Scripts: manifest.NewStringMap(
			"dev", "nodemon src/index.js",
			"start", "node src/index.js",
			"lint", `eslint "src/**/*.js" --fix`,
			"format", `prettier --write "src/**/*.js"`,
		),
		Dependencies: manifest.NewStringMap(
			"express", "^4.18.2",
			"mongoose", "^7.0.3",
			"cors", "^2.8.5",
			"dotenv", "^16.0.3",
			"helmet", "^7.0.0",
			"morgan", "^1.10.0",
		),
		DevDependencies: manifest.NewStringMap(
			"nodemon", "^3.0.1",
			"eslint", "^8.38.0",
			"prettier", "^2.8.7",
			"eslint-config-prettier", "^8.8.0",
			"eslint-plugin-prettier", "^4.2.1",
		),
	}

	if opts.TypeScript {
		p.Scripts.Merge(manifest.NewStringMap(
			"dev", "ts-node-dev --respawn --transpile-only src/index.ts",
			"build", "tsc",
			"start", "node dist/index.js",
		))
		p.DevDependencies.Merge(manifest.NewStringMap(
			"typescript", "^5.0.4",
			"ts-node-dev", "^2.0.0",
			"@types/express", "^4.17.17",
			"@types/cors", "^2.8.13",
			"@types/morgan", "^1.9.4",
			"@types/node", "^18.15.11",
		))
	}

	return p
}

// Generate writes the backend into dir, which must already exist, then
// installs its dependencies. It returns the written files relative to dir.
func (b *Backend) Generate(ctx context.Context, dir string, opts BackendOptions) ([]string, error) {
	log := output.GeneratorLogger("backend")
	log.Info("setting up backend", "language", opts.Ext(), "packageManager", opts.PackageManager)

	var files []string

	if err := manifest.Write(filepath.Join(dir, "package.json"), BackendManifest(opts)); err != nil {
		return files, err
	}
	files = append(files, "package.json")

	for _, d := range backendDirs {
		if err := os.MkdirAll(filepath.Join(dir, d), 0o755); err != nil {
			return files, fmt.Errorf("creating %s: %w", d, err)
		}
	}

	importExt := ".js"
	if opts.TypeScript {
		importExt = ""
	}
	r := templates.NewRenderer(templates.BackendData{
		TypeScript: opts.TypeScript,
		ImportExt:  importExt,
	})

	for _, src := range backendSources {
		rel := fmt.Sprintf(src.path, opts.Ext())
		if err := writeTemplate(r, src.template, dir, rel); err != nil {
			return files, err
		}
		files = append(files, rel)
	}

	static := []sourceFile{
		{".env", templates.BackendEnv},
		{".env.example", templates.BackendEnv},
		{".gitignore", templates.BackendGitignore},
	}
	if opts.TypeScript {
		static = append(static, sourceFile{"tsconfig.json", templates.BackendTSConfig})
	}
	for _, src := range static {
		if err := writeTemplate(r, src.template, dir, src.path); err != nil {
			return files, err
		}
		files = append(files, src.path)
	}

	log.Info("installing dependencies", "cmd", opts.PackageManager.InstallCmdline())
	if _, err := b.runner.Run(ctx, opts.PackageManager.Install(dir)); err != nil {
		return files, fmt.Errorf("installing backend dependencies: %w", err)
	}

	return files, nil
}

func writeTemplate(r *templates.Renderer, name templates.Name, dir, rel string) error {
	content, err := r.Render(name)
	if err != nil {
		return err
	}
	if err := os.WriteFile(filepath.Join(dir, filepath.FromSlash(rel)), content, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", rel, err)
	}
	return nil
}
