package cmd

import (
	"github.com/spf13/cobra"

	"github.com/opmodel/stackgen/internal/output"
	"github.com/opmodel/stackgen/internal/stack"
)

// NewStacksCmd creates the stacks command.
func NewStacksCmd(registry *stack.Registry) *cobra.Command {
	return &cobra.Command{
		Use:   "stacks",
		Short: "List available stacks",
		Long: `List the stacks stackgen can generate, in the order the stack
question offers them.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStacks(cmd, registry)
		},
	}
}

func runStacks(cmd *cobra.Command, registry *stack.Registry) error {
	stacks := registry.List()

	width := 0
	for _, s := range stacks {
		if len(s.Key) > width {
			width = len(s.Key)
		}
	}

	out := cmd.OutOrStdout()
	for _, s := range stacks {
		writeLine(out, output.FormatStackLine(s.Key, s.Name, s.Description, width))
	}
	return nil
}
