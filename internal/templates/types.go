package templates

// BackendData parameterizes the backend source templates.
type BackendData struct {
	// TypeScript adds type annotations and TypeScript-only imports.
	TypeScript bool

	// ImportExt is appended to relative import specifiers: ".js" for
	// JavaScript ES modules, empty for TypeScript.
	ImportExt string
}

// DocsData parameterizes the README templates. Every value is precomputed
// so that the templates only substitute.
type DocsData struct {
	ProjectName string

	// ToolName is "Vite" or "Create React App".
	ToolName string

	// Language is "TypeScript" or "JavaScript".
	Language string

	// TypeScript gates the TypeScript-only recipe lines.
	TypeScript bool

	// PackageManagerName is "Yarn" or "npm".
	PackageManagerName string

	// Install installs all dependencies ("yarn" or "npm install").
	Install string

	// Run prefixes a script name ("yarn" or "npm run").
	Run string

	// Add and AddDev add packages ("yarn add", "npm install -D", ...).
	Add    string
	AddDev string

	// Exec runs a package binary ("yarn dlx" or "npx").
	Exec string

	// FrontendPort is the dev server port of the build tool.
	FrontendPort int

	// FrontendExt and BackendExt are the entry file extensions.
	FrontendExt string
	BackendExt  string
}
