package cmd

import (
	"errors"
	"os"

	"github.com/spf13/cobra"

	"github.com/opmodel/stackgen/internal/config"
	oerrors "github.com/opmodel/stackgen/internal/errors"
	"github.com/opmodel/stackgen/internal/output"
)

var configInitForce bool

// NewConfigInitCmd creates the config init command.
func NewConfigInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize default configuration",
		Long: `Write the default stackgen configuration file.

The file is created at ~/.stackgen/config.yaml unless --config or
STACKGEN_CONFIG points elsewhere. It holds the answers pre-selected by the
stack prompts:

  defaults:
    frontendTool: vite      # vite or cra
    typescript: false
    packageManager: npm     # npm or yarn

Examples:
  # Initialize configuration
  stackgen config init

  # Overwrite existing configuration
  stackgen config init --force`,
		Args: cobra.NoArgs,
		RunE: runConfigInit,
	}

	cmd.Flags().BoolVarP(&configInitForce, "force", "f", false,
		"Overwrite existing configuration")

	return cmd
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	path, err := config.WriteDefault(GetConfigPath(), configInitForce)
	if errors.Is(err, os.ErrExist) {
		return &oerrors.DetailError{
			Type:     "validation failed",
			Message:  "configuration already exists",
			Location: path,
			Hint:     "Use --force to overwrite existing configuration.",
			Cause:    oerrors.ErrValidation,
		}
	}
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	writeLine(out, output.FormatCheckmark("Configuration initialized at "+output.StyleNoun.Render(path)))
	writeLine(out, "Validate with: stackgen config vet")
	return nil
}
