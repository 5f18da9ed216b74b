// Package cmd provides CLI command implementations.
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/opmodel/stackgen/internal/config"
	"github.com/opmodel/stackgen/internal/output"
)

var (
	// Global flags
	configFlag     string
	verboseFlag    bool
	timestampsFlag bool

	// Loaded configuration (set during PersistentPreRunE)
	stackgenConfig *config.Config
)

// NewRootCmd creates the root command. Invoked without a subcommand it runs
// the interactive create flow.
func NewRootCmd() *cobra.Command {
	return newRootCmd(defaultCreateEnv())
}

func newRootCmd(env createEnv) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "stackgen",
		Short: "Scaffold full-stack web projects",
		Long: `stackgen asks a few questions and generates a ready-to-run project
for the chosen web stack: frontend, backend, documentation and a workspace
manifest tying them together.

Run without arguments to start the interactive generator.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initializeGlobals(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCreate(cmd, env)
		},
	}

	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "", "Path to config file (env: STACKGEN_CONFIG)")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&timestampsFlag, "timestamps", true, "Show timestamps in log output")

	rootCmd.AddCommand(NewStacksCmd(env.registry))
	rootCmd.AddCommand(NewDocsCmd())
	rootCmd.AddCommand(NewConfigCmd())
	rootCmd.AddCommand(NewVersionCmd())

	return rootCmd
}

// initializeGlobals loads configuration and sets up logging.
func initializeGlobals(cmd *cobra.Command) error {
	loaded, err := config.NewLoader().Load(configFlag)
	if err == nil {
		err = validateLoaded(loaded)
	}
	if err != nil {
		// Commands still work with built-in defaults.
		loaded = config.DefaultConfig()
	}
	stackgenConfig = loaded

	// Timestamps: flag (if explicitly set) > config > default (nil = true)
	logCfg := output.LogConfig{
		Verbose: verboseFlag,
	}
	if cmd.Flags().Changed("timestamps") {
		logCfg.Timestamps = output.BoolPtr(timestampsFlag)
	} else if loaded.Log.Timestamps != nil {
		logCfg.Timestamps = loaded.Log.Timestamps
	}

	output.SetupLogging(logCfg)

	if err != nil {
		output.Warn("ignoring unreadable configuration, using defaults", "error", err)
	}

	output.Debug("initializing CLI",
		"config", configFlag,
		"frontendTool", loaded.Defaults.FrontendTool,
		"typescript", loaded.Defaults.TypeScript,
		"packageManager", loaded.Defaults.PackageManager,
	)

	return nil
}

func validateLoaded(cfg *config.Config) error {
	v, err := config.NewValidator()
	if err != nil {
		return err
	}
	return v.Validate(cfg)
}

// GetConfig returns the loaded configuration, or the defaults before loading.
func GetConfig() *config.Config {
	if stackgenConfig == nil {
		return config.DefaultConfig()
	}
	return stackgenConfig
}

// GetConfigPath returns the raw --config flag value.
func GetConfigPath() string {
	return configFlag
}
