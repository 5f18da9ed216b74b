package generator

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opmodel/stackgen/internal/npm"
	"github.com/opmodel/stackgen/internal/testutil"
)

func docsByPath(t *testing.T, opts DocOptions) map[string]string {
	t.Helper()
	docs, err := RenderDocs(opts)
	require.NoError(t, err)
	require.Len(t, docs, 3)

	out := make(map[string]string, len(docs))
	for _, d := range docs {
		out[d.Path] = string(d.Content)
	}
	return out
}

func TestRenderDocs_Paths(t *testing.T) {
	docs, err := RenderDocs(DocOptions{ProjectName: "shop", FrontendTool: npm.Vite})
	require.NoError(t, err)

	var paths []string
	for _, d := range docs {
		paths = append(paths, d.Path)
	}
	assert.Equal(t, []string{"README.md", "frontend/README.md", "backend/README.md"}, paths)
}

func TestRenderDocs_ViteTypeScriptYarn(t *testing.T) {
	docs := docsByPath(t, DocOptions{
		ProjectName:  "shop",
		FrontendTool: npm.Vite,
		TypeScript:   true,
		UseYarn:      true,
	})

	root := docs["README.md"]
	assert.True(t, strings.HasPrefix(root, "# shop\n"))
	assert.Contains(t, root, "- React (using Vite)")
	assert.Contains(t, root, "- TypeScript")
	assert.Contains(t, root, "- Yarn package manager")
	assert.Contains(t, root, "cd shop\n")
	assert.Contains(t, root, "```bash\nyarn\n```")
	assert.Contains(t, root, "```bash\nyarn dev\n```")
	assert.Contains(t, root, "- Frontend: http://localhost:5173")
	assert.Contains(t, root, "yarn add -D tailwindcss postcss autoprefixer")
	assert.Contains(t, root, "yarn dlx shadcn-ui@latest init")
	assert.Contains(t, root, "yarn add jsonwebtoken bcryptjs\nyarn add -D @types/jsonwebtoken @types/bcryptjs\n```")
	assert.Contains(t, root, "- `yarn build` - Build both projects")
	assert.Contains(t, root, "shop/\n")
	assert.Contains(t, root, "App.tsx")
	assert.Contains(t, root, "index.ts\n")

	frontend := docs["frontend/README.md"]
	assert.Contains(t, frontend, "React frontend built with Vite using TypeScript.")
	assert.Contains(t, frontend, "- `yarn format` - Format with Prettier")
	assert.Contains(t, frontend, "main.tsx")

	backend := docs["backend/README.md"]
	assert.Contains(t, backend, "Express.js backend with MongoDB using TypeScript.")
	assert.Contains(t, backend, "└── index.ts")
}

func TestRenderDocs_CRAJavaScriptNPM(t *testing.T) {
	docs := docsByPath(t, DocOptions{
		ProjectName:  "blog",
		FrontendTool: npm.CRA,
	})

	root := docs["README.md"]
	assert.Contains(t, root, "- React (using Create React App)")
	assert.Contains(t, root, "- JavaScript")
	assert.Contains(t, root, "- npm package manager")
	assert.Contains(t, root, "```bash\nnpm install\n```")
	assert.Contains(t, root, "```bash\nnpm run dev\n```")
	assert.Contains(t, root, "- Frontend: http://localhost:3000")
	assert.Contains(t, root, "npm install -D tailwindcss postcss autoprefixer")
	assert.Contains(t, root, "npx shadcn-ui@latest add button")
	assert.Contains(t, root, "npm install jsonwebtoken bcryptjs\n```")
	assert.NotContains(t, root, "@types/jsonwebtoken")
	assert.Contains(t, root, "App.jsx")

	assert.Contains(t, docs["frontend/README.md"], "React frontend built with Create React App using JavaScript.")
	assert.Contains(t, docs["backend/README.md"], "└── index.js")
}

func TestRenderDocs_BackendAPIReference(t *testing.T) {
	backend := docsByPath(t, DocOptions{ProjectName: "x", FrontendTool: npm.Vite})["backend/README.md"]

	assert.Contains(t, backend, "http://localhost:5000/api/v1")
	assert.Contains(t, backend, "- `GET /api/v1/examples` - Get all examples")
	assert.Contains(t, backend, "- `POST /api/v1/examples` - Create new example")
	assert.Contains(t, backend, `"success": false,`)
	assert.Contains(t, backend, `"error": "Error message here"`)
}

func TestDocumentationGenerate(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(root, "frontend"), 0o755))
	require.NoError(t, os.Mkdir(filepath.Join(root, "backend"), 0o755))
	testutil.WriteFile(t, root, "frontend/README.md", "scaffolder readme")

	files, err := NewDocumentation().Generate(root, DocOptions{ProjectName: "shop", FrontendTool: npm.Vite})
	require.NoError(t, err)
	assert.Equal(t, []string{"README.md", "frontend/README.md", "backend/README.md"}, files)

	assert.True(t, strings.HasPrefix(testutil.ReadFile(t, root, "README.md"), "# shop"))
	// Existing READMEs are overwritten.
	assert.True(t, strings.HasPrefix(testutil.ReadFile(t, root, "frontend/README.md"), "# Frontend Documentation"))
	assert.True(t, strings.HasPrefix(testutil.ReadFile(t, root, "backend/README.md"), "# Backend Documentation"))
}

func TestDocumentationGenerate_MissingSubdirectory(t *testing.T) {
	root := t.TempDir()
	_, err := NewDocumentation().Generate(root, DocOptions{ProjectName: "shop", FrontendTool: npm.Vite})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "frontend/README.md")
}
