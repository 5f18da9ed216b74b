package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	oerrors "github.com/opmodel/stackgen/internal/errors"
	"github.com/opmodel/stackgen/internal/output"
	"github.com/opmodel/stackgen/internal/process"
	"github.com/opmodel/stackgen/internal/project"
	"github.com/opmodel/stackgen/internal/prompt"
	"github.com/opmodel/stackgen/internal/stack"
)

// createEnv holds the collaborators of the create flow.
type createEnv struct {
	prompter    prompt.Prompter
	runner      process.Runner
	registry    *stack.Registry
	getwd       func() (string, error)
	interactive func() bool
}

func defaultCreateEnv() createEnv {
	return createEnv{
		prompter:    prompt.NewHuhPrompter(os.Getenv("ACCESSIBLE") != ""),
		runner:      process.NewExecRunner(),
		registry:    stack.Default,
		getwd:       os.Getwd,
		interactive: stdinIsTerminal,
	}
}

func stdinIsTerminal() bool {
	fd := os.Stdin.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func runCreate(cmd *cobra.Command, env createEnv) error {
	err := create(cmd.Context(), cmd.OutOrStdout(), env)
	if errors.Is(err, prompt.ErrCancelled) {
		fmt.Fprintln(cmd.ErrOrStderr(), output.StyleDim.Render("cancelled"))
		return &oerrors.ExitError{Code: oerrors.ExitGeneralError, Err: err, Printed: true}
	}
	return err
}

func create(ctx context.Context, out io.Writer, env createEnv) error {
	if !env.interactive() {
		return oerrors.NewValidationError(
			"stackgen asks questions and needs an interactive terminal",
			"stdin",
			"Run stackgen directly from a terminal",
		)
	}

	fmt.Fprintln(out, output.FormatBanner("Welcome to Stack Generator!", "Answer a few questions to scaffold your project"))

	name, err := env.prompter.Input("What is your project name?", validateProjectName)
	if err != nil {
		return err
	}

	keys := env.registry.Keys()
	def := ""
	if len(keys) > 0 {
		def = keys[0]
	}
	key, err := env.prompter.Select("Which stack would you like to use?", env.registry.Options(), def)
	if err != nil {
		return err
	}

	req := project.Request{Name: name, Stack: key}

	cwd, err := env.getwd()
	if err != nil {
		return fmt.Errorf("resolving working directory: %w", err)
	}

	projectPath, err := project.Create(cwd, req.Name)
	if err != nil {
		return err
	}

	selected, err := env.registry.Lookup(req.Stack)
	if err != nil {
		return err
	}
	output.Debug("created project directory", "path", projectPath, "stack", selected.Key)

	fmt.Fprintln(out, output.StyleAction.Render("Configuring your "+selected.Name+" project..."))

	handler := selected.New(stack.Env{
		Prompter: env.prompter,
		Runner:   env.runner,
		Defaults: GetConfig().Defaults,
	})

	res, err := handler.Create(ctx, projectPath)
	if err != nil {
		return fmt.Errorf("creating %s project: %w", selected.Key, err)
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, output.FormatCheckmark(selected.Name+" project created successfully!"))
	fmt.Fprintln(out, output.FormatSummary(req.Name, countFiles(res.Files)))
	fmt.Fprintln(out)
	fmt.Fprint(out, output.RenderFileTree(req.Name, res.Files))
	fmt.Fprintln(out)
	fmt.Fprintln(out, output.FormatNextSteps([]string{
		"cd " + req.Name,
		"npm install",
		"npm start",
	}))

	return nil
}

// validateProjectName adapts project.ValidateName for inline prompt errors.
func validateProjectName(name string) error {
	if project.ValidateName(name) != nil {
		return errors.New(project.NameRule)
	}
	return nil
}

func countFiles(files map[string]string) int {
	n := 0
	for p := range files {
		if len(p) > 0 && p[len(p)-1] != '/' {
			n++
		}
	}
	return n
}
