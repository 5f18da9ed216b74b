// Package templates provides the embedded source and documentation templates
// written into generated projects.
package templates

import (
	"embed"
	"io/fs"
	"sort"
	"strings"
)

//go:embed backend/* docs/*
var assetsFS embed.FS

// Name identifies an embedded template by its path inside the asset tree.
type Name string

// Backend templates.
const (
	BackendIndex      Name = "backend/index.tmpl"
	BackendModel      Name = "backend/model.tmpl"
	BackendController Name = "backend/controller.tmpl"
	BackendRoute      Name = "backend/route.tmpl"
	BackendDB         Name = "backend/db.tmpl"
	BackendError      Name = "backend/error.tmpl"
	BackendEnv        Name = "backend/env.tmpl"
	BackendGitignore  Name = "backend/gitignore.tmpl"
	BackendTSConfig   Name = "backend/tsconfig.json.tmpl"
)

// Documentation templates.
const (
	DocsRoot     Name = "docs/root.md.tmpl"
	DocsFrontend Name = "docs/frontend.md.tmpl"
	DocsBackend  Name = "docs/backend.md.tmpl"
)

// List returns the names of all embedded templates, sorted.
func List() ([]Name, error) {
	var names []Name
	err := fs.WalkDir(assetsFS, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(path, ".tmpl") {
			return nil
		}
		names = append(names, Name(path))
		return nil
	})
	sort.Slice(names, func(i, j int) bool { return names[i] < names[j] })
	return names, err
}
