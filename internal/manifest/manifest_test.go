package manifest

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func samplePackage() *Package {
	return &Package{
		Name:    "backend",
		Version: "1.0.0",
		Private: true,
		Type:    "module",
		Scripts: NewStringMap(
			"dev", "nodemon src/index.js",
			"start", "node src/index.js",
		),
		Dependencies:    NewStringMap("express", "^4.18.2"),
		DevDependencies: NewStringMap("nodemon", "^3.0.1"),
	}
}

func TestPackageMarshal_FieldAndKeyOrder(t *testing.T) {
	data, err := samplePackage().Marshal()
	require.NoError(t, err)

	want := `{
  "name": "backend",
  "version": "1.0.0",
  "private": true,
  "type": "module",
  "scripts": {
    "dev": "nodemon src/index.js",
    "start": "node src/index.js"
  },
  "dependencies": {
    "express": "^4.18.2"
  },
  "devDependencies": {
    "nodemon": "^3.0.1"
  }
}
`
	assert.Equal(t, want, string(data))
}

func TestPackageMarshal_NoHTMLEscaping(t *testing.T) {
	p := &Package{
		Name:    "app",
		Version: "1.0.0",
		Scripts: NewStringMap("build", "tsc && vite build"),
	}
	data, err := p.Marshal()
	require.NoError(t, err)
	assert.Contains(t, string(data), `"tsc && vite build"`)
}

func TestPackageMarshal_OmitsEmpty(t *testing.T) {
	data, err := (&Package{Name: "x", Version: "1.0.0"}).Marshal()
	require.NoError(t, err)
	assert.NotContains(t, string(data), "private")
	assert.NotContains(t, string(data), "workspaces")
	assert.NotContains(t, string(data), "scripts")
}

func TestCheckRanges(t *testing.T) {
	assert.NoError(t, samplePackage().CheckRanges())

	bad := samplePackage()
	bad.DevDependencies.Set("broken", "not-a-range")
	err := bad.CheckRanges()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "broken")
}

func TestWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "package.json")

	require.NoError(t, Write(path, samplePackage()))

	var decoded map[string]interface{}
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "backend", decoded["name"])
	assert.Equal(t, true, decoded["private"])
}

func TestWrite_RejectsInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "package.json")

	err := Write(path, &Package{Name: "", Version: "1.0.0"})
	require.Error(t, err)

	var schemaErr *SchemaError
	assert.ErrorAs(t, err, &schemaErr)
	assert.NoFileExists(t, path)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		wantErr string
	}{
		{"minimal", `{"name":"frontend"}`, ""},
		{"extra members allowed", `{"name":"frontend","browserslist":["> 0.2%"],"eslintConfig":{"extends":["react-app"]}}`, ""},
		{"missing name", `{"version":"1.0.0"}`, "name"},
		{"script not a string", `{"name":"a","scripts":{"dev":1}}`, "/scripts/dev"},
		{"bad module type", `{"name":"a","type":"esm"}`, "/type"},
		{"duplicate workspaces", `{"name":"a","workspaces":["frontend","frontend"]}`, "/workspaces"},
		{"not json", `{`, "parsing JSON"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate([]byte(tt.doc))
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestMergeScripts_PreservesOrderAndMembers(t *testing.T) {
	original := `{
  "name": "frontend",
  "private": true,
  "version": "0.0.0",
  "type": "module",
  "scripts": {
    "dev": "vite",
    "build": "tsc -b && vite build",
    "lint": "eslint ."
  },
  "dependencies": {
    "react": "^18.3.1"
  }
}
`
	patched, err := MergeScripts([]byte(original), NewStringMap(
		"format", `prettier --write "src/**/*.{js,jsx,ts,tsx}"`,
		"lint", `eslint "src/**/*.{js,jsx,ts,tsx}" --fix`,
	))
	require.NoError(t, err)

	want := `{
  "name": "frontend",
  "private": true,
  "version": "0.0.0",
  "type": "module",
  "scripts": {
    "dev": "vite",
    "build": "tsc -b && vite build",
    "lint": "eslint \"src/**/*.{js,jsx,ts,tsx}\" --fix",
    "format": "prettier --write \"src/**/*.{js,jsx,ts,tsx}\""
  },
  "dependencies": {
    "react": "^18.3.1"
  }
}
`
	assert.Equal(t, want, string(patched))
}

func TestMergeScripts_AddsMissingScripts(t *testing.T) {
	patched, err := MergeScripts([]byte(`{"name":"frontend"}`), NewStringMap("format", "prettier"))
	require.NoError(t, err)

	doc, err := ParseDocument(patched)
	require.NoError(t, err)
	assert.Equal(t, []string{"name", "scripts"}, doc.Keys())
	assert.True(t, strings.HasSuffix(string(patched), "}\n"))
}

func TestPatchScripts(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "package.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"name":"frontend","scripts":{"start":"react-scripts start"}}`), 0o644))

	require.NoError(t, PatchScripts(path, NewStringMap("format", "prettier --write .")))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var decoded struct {
		Scripts map[string]string `json:"scripts"`
	}
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "react-scripts start", decoded.Scripts["start"])
	assert.Equal(t, "prettier --write .", decoded.Scripts["format"])
}

func TestPatchScripts_MissingFile(t *testing.T) {
	err := PatchScripts(filepath.Join(t.TempDir(), "package.json"), NewStringMap("a", "b"))
	assert.Error(t, err)
}
