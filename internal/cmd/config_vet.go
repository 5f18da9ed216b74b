package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/opmodel/stackgen/internal/config"
	oerrors "github.com/opmodel/stackgen/internal/errors"
	"github.com/opmodel/stackgen/internal/output"
)

// NewConfigVetCmd creates the config vet command.
func NewConfigVetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "vet",
		Short: "Validate configuration",
		Long: `Validate the stackgen configuration file.

Checks performed:
  1. Config file exists at resolved path
  2. Config file is valid YAML
  3. Config matches the schema (known keys, allowed values)

The config path is resolved using precedence:
  --config flag > STACKGEN_CONFIG env > ~/.stackgen/config.yaml

Examples:
  # Validate default configuration
  stackgen config vet

  # Validate custom config path
  stackgen config vet --config /path/to/config.yaml`,
		Args: cobra.NoArgs,
		RunE: runConfigVet,
	}

	return cmd
}

func runConfigVet(cmd *cobra.Command, args []string) error {
	path, err := config.ResolveConfigFile(GetConfigPath())
	if err != nil {
		return oerrors.Wrap(oerrors.ErrNotFound, "could not resolve config path")
	}

	output.Debug("validating config", "path", path)

	exists, err := config.ConfigFileExists(path)
	if err != nil {
		return fmt.Errorf("checking config file: %w", err)
	}
	if !exists {
		return &oerrors.DetailError{
			Type:     "not found",
			Message:  "configuration file not found",
			Location: path,
			Hint:     "Run 'stackgen config init' to create default configuration",
			Cause:    oerrors.ErrNotFound,
		}
	}

	v, err := config.NewValidator()
	if err != nil {
		return err
	}

	if err := v.ValidateFile(path); err != nil {
		return &oerrors.DetailError{
			Type:     "validation failed",
			Message:  err.Error(),
			Location: path,
			Hint:     "Run 'stackgen config init --force' to restore the defaults",
			Cause:    oerrors.ErrValidation,
		}
	}

	writeLine(cmd.OutOrStdout(), output.FormatCheckmark("Configuration is valid: "+path))
	return nil
}
