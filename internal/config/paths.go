package config

import (
	"os"
	"path/filepath"
)

// Paths contains standard filesystem paths for stackgen.
type Paths struct {
	// ConfigFile is the path to the config file (~/.stackgen/config.yaml).
	ConfigFile string

	// HomeDir is the stackgen home directory (~/.stackgen).
	HomeDir string
}

// DefaultPaths returns the default paths for stackgen.
func DefaultPaths() (*Paths, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}

	home := filepath.Join(homeDir, ".stackgen")

	return &Paths{
		ConfigFile: filepath.Join(home, "config.yaml"),
		HomeDir:    home,
	}, nil
}

// GetConfigFile returns the config file path.
// If STACKGEN_CONFIG is set, it takes precedence.
func GetConfigFile() (string, error) {
	if envPath := os.Getenv("STACKGEN_CONFIG"); envPath != "" {
		return envPath, nil
	}

	paths, err := DefaultPaths()
	if err != nil {
		return "", err
	}

	return paths.ConfigFile, nil
}

// ExpandPath expands ~ to the user's home directory.
func ExpandPath(path string) (string, error) {
	if len(path) == 0 {
		return path, nil
	}

	if path[0] != '~' {
		return path, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	if len(path) == 1 {
		return homeDir, nil
	}

	if path[1] == '/' || path[1] == filepath.Separator {
		return filepath.Join(homeDir, path[2:]), nil
	}

	// ~username is not supported
	return path, nil
}

// ResolveConfigFile returns the expanded config path, falling back to
// GetConfigFile when configFile is empty.
func ResolveConfigFile(configFile string) (string, error) {
	if configFile == "" {
		var err error
		configFile, err = GetConfigFile()
		if err != nil {
			return "", err
		}
	}
	return ExpandPath(configFile)
}
