// Package project validates project names and creates project directories.
package project

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"

	oerrors "github.com/opmodel/stackgen/internal/errors"
)

// namePattern accepts ASCII letters, digits, underscores and hyphens.
var namePattern = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// NameRule is shown when a project name is rejected.
const NameRule = "Project name may only include letters, numbers, underscores and hyphens."

// ValidateName reports whether name can be used as a project directory.
func ValidateName(name string) error {
	if !namePattern.MatchString(name) {
		return oerrors.NewValidationError(NameRule, name, "")
	}
	return nil
}

// Request is a validated project name plus the stack chosen for it.
type Request struct {
	Name  string
	Stack string
}

// Path returns the project directory below cwd.
func (r Request) Path(cwd string) string {
	return filepath.Join(cwd, r.Name)
}

// Create makes the project directory cwd/name. Anything already at that
// path, including a dangling symlink, is reported as already existing.
func Create(cwd, name string) (string, error) {
	if err := ValidateName(name); err != nil {
		return "", err
	}

	p := filepath.Join(cwd, name)
	if _, err := os.Lstat(p); err == nil {
		return "", oerrors.NewAlreadyExistsError(
			"Directory already exists. Please choose a different name.",
			p,
			"Pick another project name or remove the existing directory",
		)
	} else if !errors.Is(err, fs.ErrNotExist) {
		return "", fmt.Errorf("checking %s: %w", p, err)
	}

	if err := os.Mkdir(p, 0o755); err != nil {
		if errors.Is(err, fs.ErrExist) {
			return "", oerrors.NewAlreadyExistsError("Directory already exists. Please choose a different name.", p, "")
		}
		return "", fmt.Errorf("creating project directory: %w", err)
	}
	return p, nil
}
