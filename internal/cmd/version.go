package cmd

import (
	"github.com/spf13/cobra"

	"github.com/opmodel/stackgen/internal/version"
)

// NewVersionCmd creates the version command.
func NewVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long: `Show stackgen version information.

Displays:
  - stackgen version, commit, and build date
  - Go toolchain and CUE SDK (used for config validation)`,
		Args: cobra.NoArgs,
		RunE: runVersion,
	}
}

func runVersion(cmd *cobra.Command, args []string) error {
	writeLine(cmd.OutOrStdout(), version.Get().String())
	return nil
}
