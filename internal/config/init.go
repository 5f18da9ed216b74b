package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const configHeader = `# stackgen configuration
# Values pre-select the answers offered by the stack prompts.
`

// WriteDefault writes DefaultConfig to path. An existing file is only
// replaced when force is set.
func WriteDefault(path string, force bool) (string, error) {
	resolved, err := ResolveConfigFile(path)
	if err != nil {
		return "", fmt.Errorf("resolving config path: %w", err)
	}

	if !force {
		if _, err := os.Stat(resolved); err == nil {
			return resolved, fmt.Errorf("config file %s: %w", resolved, os.ErrExist)
		}
	}

	data, err := yaml.Marshal(DefaultConfig())
	if err != nil {
		return "", fmt.Errorf("marshaling default config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(resolved), 0o755); err != nil {
		return "", fmt.Errorf("creating config directory: %w", err)
	}

	if err := os.WriteFile(resolved, append([]byte(configHeader), data...), 0o644); err != nil {
		return "", fmt.Errorf("writing config file: %w", err)
	}

	return resolved, nil
}
