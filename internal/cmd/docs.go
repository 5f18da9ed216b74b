package cmd

import (
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	oerrors "github.com/opmodel/stackgen/internal/errors"
	"github.com/opmodel/stackgen/internal/generator"
	"github.com/opmodel/stackgen/internal/npm"
	"github.com/opmodel/stackgen/internal/output"
	"github.com/opmodel/stackgen/internal/project"
)

const docsWordWrap = 80

type docsFlags struct {
	name       string
	frontend   string
	typescript bool
	yarn       bool
	raw        bool
}

// NewDocsCmd creates the docs command.
func NewDocsCmd() *cobra.Command {
	var f docsFlags

	cmd := &cobra.Command{
		Use:   "docs",
		Short: "Preview generated documentation",
		Long: `Render the README files a MERN project would receive for the given
options, without creating anything on disk.

Unset options fall back to the configured defaults. Markdown is rendered
for the terminal unless stdout is not a terminal or --raw is set.

Examples:
  # Preview with configured defaults
  stackgen docs

  # Preview a TypeScript project built with Create React App and Yarn
  stackgen docs --name shop --frontend cra --typescript --yarn`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDocs(cmd, f)
		},
	}

	cmd.Flags().StringVar(&f.name, "name", "my-app", "Project name")
	cmd.Flags().StringVar(&f.frontend, "frontend", "", "React build tool: vite or cra")
	cmd.Flags().BoolVar(&f.typescript, "typescript", false, "Use TypeScript")
	cmd.Flags().BoolVar(&f.yarn, "yarn", false, "Use Yarn instead of npm")
	cmd.Flags().BoolVar(&f.raw, "raw", false, "Print markdown source")

	return cmd
}

func runDocs(cmd *cobra.Command, f docsFlags) error {
	if err := project.ValidateName(f.name); err != nil {
		return err
	}

	defaults := GetConfig().Defaults
	toolName := f.frontend
	if !cmd.Flags().Changed("frontend") {
		toolName = defaults.FrontendTool
	}
	tool, err := npm.ParseTool(toolName)
	if err != nil {
		return oerrors.NewValidationError(err.Error(), "--frontend", "Use vite or cra")
	}

	opts := generator.DocOptions{
		ProjectName:  f.name,
		FrontendTool: tool,
		TypeScript:   f.typescript,
		UseYarn:      f.yarn,
	}
	if !cmd.Flags().Changed("typescript") {
		opts.TypeScript = defaults.TypeScript
	}
	if !cmd.Flags().Changed("yarn") {
		opts.UseYarn = defaults.UseYarn()
	}

	docs, err := generator.RenderDocs(opts)
	if err != nil {
		return err
	}

	raw := f.raw || !output.IsTTY()
	var renderer *glamour.TermRenderer
	if !raw {
		renderer, err = glamour.NewTermRenderer(
			glamour.WithAutoStyle(),
			glamour.WithWordWrap(docsWordWrap),
		)
		if err != nil {
			return fmt.Errorf("creating markdown renderer: %w", err)
		}
	}

	out := cmd.OutOrStdout()
	for i, d := range docs {
		if i > 0 {
			writeLine(out, "")
		}
		writeLine(out, output.StyleDim.Render("── "+f.name+"/"+d.Path+" ──"))

		content := string(d.Content)
		if renderer != nil {
			content, err = renderer.Render(content)
			if err != nil {
				return fmt.Errorf("rendering %s: %w", d.Path, err)
			}
		}
		fmt.Fprint(out, content)
	}
	return nil
}
