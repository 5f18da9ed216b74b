package generator

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/opmodel/stackgen/internal/npm"
	"github.com/opmodel/stackgen/internal/output"
	"github.com/opmodel/stackgen/internal/templates"
)

// Document is a rendered README and its path relative to the project root.
type Document struct {
	Path    string
	Content []byte
}

// docsData precomputes every substitution the README templates need.
func docsData(opts DocOptions) templates.DocsData {
	pm := npm.FromYarn(opts.UseYarn)

	d := templates.DocsData{
		ProjectName:        opts.ProjectName,
		ToolName:           opts.FrontendTool.DisplayName(),
		Language:           "JavaScript",
		TypeScript:         opts.TypeScript,
		PackageManagerName: "npm",
		Install:            pm.InstallCmdline(),
		Run:                pm.ScriptPrefix(),
		Add:                pm.AddCmdline(false),
		AddDev:             pm.AddCmdline(true),
		Exec:               pm.ExecCmdline(),
		FrontendPort:       opts.FrontendTool.DevPort(),
		FrontendExt:        "jsx",
		BackendExt:         "js",
	}
	if opts.TypeScript {
		d.Language = "TypeScript"
		d.FrontendExt = "tsx"
		d.BackendExt = "ts"
	}
	if opts.UseYarn {
		d.PackageManagerName = "Yarn"
	}
	return d
}

// RenderDocs renders the root, frontend and backend READMEs without
// touching the filesystem.
func RenderDocs(opts DocOptions) ([]Document, error) {
	r := templates.NewRenderer(docsData(opts))

	targets := []struct {
		path string
		name templates.Name
	}{
		{"README.md", templates.DocsRoot},
		{"frontend/README.md", templates.DocsFrontend},
		{"backend/README.md", templates.DocsBackend},
	}

	docs := make([]Document, 0, len(targets))
	for _, t := range targets {
		content, err := r.Render(t.name)
		if err != nil {
			return nil, err
		}
		docs = append(docs, Document{Path: t.path, Content: content})
	}
	return docs, nil
}

// Documentation writes the project READMEs.
type Documentation struct{}

// NewDocumentation returns a documentation generator.
func NewDocumentation() *Documentation {
	return &Documentation{}
}

// Generate renders the READMEs and writes them below root, replacing any
// existing files. The frontend and backend directories must exist.
func (Documentation) Generate(root string, opts DocOptions) ([]string, error) {
	log := output.GeneratorLogger("docs")
	log.Info("generating documentation")

	docs, err := RenderDocs(opts)
	if err != nil {
		return nil, fmt.Errorf("rendering documentation: %w", err)
	}

	files := make([]string, 0, len(docs))
	for _, d := range docs {
		if err := os.WriteFile(filepath.Join(root, filepath.FromSlash(d.Path)), d.Content, 0o644); err != nil {
			return files, fmt.Errorf("writing %s: %w", d.Path, err)
		}
		files = append(files, d.Path)
	}
	return files, nil
}
