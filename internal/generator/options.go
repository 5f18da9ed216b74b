// Package generator writes the frontend, backend and documentation parts of
// a generated project.
package generator

import (
	"github.com/opmodel/stackgen/internal/npm"
)

// BackendOptions configures the backend generator.
type BackendOptions struct {
	TypeScript     bool
	PackageManager npm.PackageManager
}

// Ext is the source file extension, "ts" or "js".
func (o BackendOptions) Ext() string {
	if o.TypeScript {
		return "ts"
	}
	return "js"
}

// FrontendOptions configures the frontend generator.
type FrontendOptions struct {
	Tool           npm.Tool
	TypeScript     bool
	PackageManager npm.PackageManager
}

// DocOptions configures the documentation generator.
type DocOptions struct {
	ProjectName  string
	FrontendTool npm.Tool
	TypeScript   bool
	UseYarn      bool
}
