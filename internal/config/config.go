// Package config provides configuration loading and management.
package config

// Frontend build tools accepted in configuration.
const (
	FrontendToolVite = "vite"
	FrontendToolCRA  = "cra"
)

// Package managers accepted in configuration.
const (
	PackageManagerNPM  = "npm"
	PackageManagerYarn = "yarn"
)

// Defaults holds the pre-selected answers for the stack questions.
type Defaults struct {
	// FrontendTool is the default build tool ("vite" or "cra").
	// Env: STACKGEN_FRONTEND_TOOL, Default: "vite"
	FrontendTool string `mapstructure:"frontendTool" json:"frontendTool,omitempty" yaml:"frontendTool"`

	// TypeScript pre-selects the TypeScript question.
	// Env: STACKGEN_TYPESCRIPT, Default: false
	TypeScript bool `mapstructure:"typescript" json:"typescript" yaml:"typescript"`

	// PackageManager is the default package manager ("npm" or "yarn").
	// Env: STACKGEN_PACKAGE_MANAGER, Default: "npm"
	PackageManager string `mapstructure:"packageManager" json:"packageManager,omitempty" yaml:"packageManager"`
}

// UseYarn reports whether yarn is the configured package manager.
func (d Defaults) UseYarn() bool {
	return d.PackageManager == PackageManagerYarn
}

// LogConfig contains logging-related settings.
type LogConfig struct {
	// Timestamps controls whether timestamps are shown in log output.
	// Default: true. Override with --timestamps flag.
	Timestamps *bool `mapstructure:"timestamps" json:"timestamps,omitempty" yaml:"timestamps,omitempty"`
}

// Config represents the stackgen configuration.
// Loaded from ~/.stackgen/config.yaml, validated against the embedded CUE schema.
type Config struct {
	// Defaults pre-selects prompt answers.
	Defaults Defaults `mapstructure:"defaults" json:"defaults" yaml:"defaults"`

	// Log contains logging-related settings.
	Log LogConfig `mapstructure:"log" json:"log,omitempty" yaml:"log,omitempty"`
}

// DefaultConfig returns a Config with all default values populated.
// Used by `stackgen config init` to generate the initial config file.
func DefaultConfig() *Config {
	return &Config{
		Defaults: Defaults{
			FrontendTool:   FrontendToolVite,
			TypeScript:     false,
			PackageManager: PackageManagerNPM,
		},
	}
}
