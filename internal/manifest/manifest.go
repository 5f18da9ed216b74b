// Package manifest authors, validates and patches package.json documents.
package manifest

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/Masterminds/semver/v3"
)

// Package is an authored package.json. Field order is the order written.
type Package struct {
	Name            string     `json:"name"`
	Version         string     `json:"version"`
	Private         bool       `json:"private,omitempty"`
	Type            string     `json:"type,omitempty"`
	Workspaces      []string   `json:"workspaces,omitempty"`
	Scripts         *StringMap `json:"scripts,omitempty"`
	Dependencies    *StringMap `json:"dependencies,omitempty"`
	DevDependencies *StringMap `json:"devDependencies,omitempty"`
}

// Marshal renders p with two-space indentation and a trailing newline.
// HTML characters are left unescaped so shell operators in scripts stay readable.
func (p *Package) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(p); err != nil {
		return nil, fmt.Errorf("encoding %s manifest: %w", p.Name, err)
	}
	return buf.Bytes(), nil
}

// CheckRanges verifies that every dependency range is a valid semver constraint.
func (p *Package) CheckRanges() error {
	for _, deps := range []*StringMap{p.Dependencies, p.DevDependencies} {
		for _, name := range deps.Keys() {
			rng, _ := deps.Get(name)
			if _, err := semver.NewConstraint(rng); err != nil {
				return fmt.Errorf("dependency %s: invalid version range %q: %w", name, rng, err)
			}
		}
	}
	return nil
}

// Write validates p and writes it to path.
func Write(path string, p *Package) error {
	if err := p.CheckRanges(); err != nil {
		return err
	}

	data, err := p.Marshal()
	if err != nil {
		return err
	}

	if err := Validate(data); err != nil {
		return fmt.Errorf("validating %s: %w", path, err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// PatchScripts merges scripts into the "scripts" object of the package.json
// at path. Existing entries of the same name are replaced in place; every
// other member of the document keeps its value and position.
func PatchScripts(path string, scripts *StringMap) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	if err := Validate(data); err != nil {
		return fmt.Errorf("validating %s: %w", path, err)
	}

	patched, err := MergeScripts(data, scripts)
	if err != nil {
		return fmt.Errorf("patching %s: %w", path, err)
	}

	if err := os.WriteFile(path, patched, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// MergeScripts is the pure form of PatchScripts.
func MergeScripts(data []byte, scripts *StringMap) ([]byte, error) {
	doc, err := ParseDocument(data)
	if err != nil {
		return nil, err
	}

	current := NewStringMap()
	if raw, ok := doc.Get("scripts"); ok {
		if err := json.Unmarshal(raw, current); err != nil {
			return nil, fmt.Errorf("decoding scripts: %w", err)
		}
	}
	current.Merge(scripts)

	raw, err := current.MarshalJSON()
	if err != nil {
		return nil, err
	}
	doc.Set("scripts", raw)

	return doc.Marshal()
}
