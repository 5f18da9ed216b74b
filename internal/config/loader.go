package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// Environment variable prefix for stackgen configuration.
const envPrefix = "STACKGEN"

// Loader handles loading and merging configuration from multiple sources.
// Precedence: environment, then config file, then DefaultConfig.
type Loader struct {
	v *viper.Viper
}

// NewLoader creates a new configuration loader.
func NewLoader() *Loader {
	v := viper.New()

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	defaults := DefaultConfig()
	v.SetDefault("defaults.frontendTool", defaults.Defaults.FrontendTool)
	v.SetDefault("defaults.typescript", defaults.Defaults.TypeScript)
	v.SetDefault("defaults.packageManager", defaults.Defaults.PackageManager)

	_ = v.BindEnv("defaults.frontendTool", "STACKGEN_FRONTEND_TOOL")
	_ = v.BindEnv("defaults.typescript", "STACKGEN_TYPESCRIPT")
	_ = v.BindEnv("defaults.packageManager", "STACKGEN_PACKAGE_MANAGER")
	_ = v.BindEnv("log.timestamps", "STACKGEN_LOG_TIMESTAMPS")

	return &Loader{v: v}
}

// Load loads configuration from the given file path.
// If configFile is empty, it uses the default config file path.
// A missing file is not an error.
func (l *Loader) Load(configFile string) (*Config, error) {
	path, err := ResolveConfigFile(configFile)
	if err != nil {
		return nil, fmt.Errorf("resolving config path: %w", err)
	}

	l.v.SetConfigFile(path)
	l.v.SetConfigType("yaml")

	if err := l.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) && !os.IsNotExist(err) {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := l.v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	return &cfg, nil
}

// ConfigFileExists checks if the config file exists.
func ConfigFileExists(configFile string) (bool, error) {
	path, err := ResolveConfigFile(configFile)
	if err != nil {
		return false, err
	}

	_, err = os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}

	return true, nil
}
