package cmd

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	oerrors "github.com/opmodel/stackgen/internal/errors"
)

func TestDocsCmd_Defaults(t *testing.T) {
	isolateConfig(t)

	stdout, _, err := execute(t, testRoot(), "docs", "--raw")
	require.NoError(t, err)

	assert.Contains(t, stdout, "my-app/README.md")
	assert.Contains(t, stdout, "my-app/frontend/README.md")
	assert.Contains(t, stdout, "my-app/backend/README.md")
	assert.Contains(t, stdout, "# my-app")
	assert.Contains(t, stdout, "Vite")
	assert.Contains(t, stdout, "npm install")
}

func TestDocsCmd_Flags(t *testing.T) {
	isolateConfig(t)

	stdout, _, err := execute(t, testRoot(),
		"docs", "--raw", "--name", "shop", "--frontend", "cra", "--typescript", "--yarn")
	require.NoError(t, err)

	assert.Contains(t, stdout, "# shop")
	assert.Contains(t, stdout, "Create React App")
	assert.Contains(t, stdout, "TypeScript")
	assert.Contains(t, stdout, "yarn")
}

func TestDocsCmd_ConfigDefaults(t *testing.T) {
	path := isolateConfig(t)
	require.NoError(t, os.WriteFile(path, []byte("defaults:\n  frontendTool: cra\n  packageManager: yarn\n"), 0o644))

	stdout, _, err := execute(t, testRoot(), "docs", "--raw")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Create React App")
	assert.Contains(t, stdout, "yarn")
}

func TestDocsCmd_InvalidInput(t *testing.T) {
	isolateConfig(t)

	_, _, err := execute(t, testRoot(), "docs", "--frontend", "webpack")
	assert.ErrorIs(t, err, oerrors.ErrValidation)

	_, _, err = execute(t, testRoot(), "docs", "--name", "bad name")
	assert.ErrorIs(t, err, oerrors.ErrValidation)
}
