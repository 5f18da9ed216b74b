// Package prompt asks the interactive questions of a scaffolding run.
package prompt

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"
)

// ErrCancelled is returned when the user aborts a prompt.
var ErrCancelled = errors.New("prompt cancelled by user")

// Option is a single choice of a Select question.
type Option struct {
	Label string
	Value string
}

// Prompter asks questions one at a time. Implementations block until the
// user answers or aborts.
type Prompter interface {
	// Input asks for free text. validate runs on every submission and the
	// question is repeated until it returns nil.
	Input(title string, validate func(string) error) (string, error)

	// Select asks for one of options and returns its Value.
	// def pre-selects the option with that Value.
	Select(title string, options []Option, def string) (string, error)

	// Confirm asks a yes/no question.
	Confirm(title string, def bool) (bool, error)
}

// HuhPrompter implements Prompter with huh forms.
// Each question runs as its own form so that a long select list never
// shares a viewport with the next question.
type HuhPrompter struct {
	theme      *huh.Theme
	accessible bool
}

// NewHuhPrompter returns a Prompter rendering with the Charm theme.
// accessible switches huh into line-based prompts for screen readers.
func NewHuhPrompter(accessible bool) *HuhPrompter {
	return &HuhPrompter{
		theme:      huh.ThemeCharm(),
		accessible: accessible,
	}
}

// Input implements Prompter.
func (p *HuhPrompter) Input(title string, validate func(string) error) (string, error) {
	var value string
	field := huh.NewInput().
		Title(title).
		Value(&value)
	if validate != nil {
		field = field.Validate(validate)
	}

	if err := p.run(field); err != nil {
		return "", err
	}
	return value, nil
}

// Select implements Prompter.
func (p *HuhPrompter) Select(title string, options []Option, def string) (string, error) {
	selected := def
	opts := make([]huh.Option[string], len(options))
	for i, o := range options {
		opts[i] = huh.NewOption(o.Label, o.Value)
	}

	field := huh.NewSelect[string]().
		Title(title).
		Options(opts...).
		Value(&selected)

	if err := p.run(field); err != nil {
		return "", err
	}
	return selected, nil
}

// Confirm implements Prompter.
func (p *HuhPrompter) Confirm(title string, def bool) (bool, error) {
	value := def
	field := huh.NewConfirm().
		Title(title).
		Affirmative("Yes").
		Negative("No").
		Value(&value)

	if err := p.run(field); err != nil {
		return false, err
	}
	return value, nil
}

func (p *HuhPrompter) run(field huh.Field) error {
	form := huh.NewForm(huh.NewGroup(field)).
		WithTheme(p.theme).
		WithAccessible(p.accessible)

	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return ErrCancelled
		}
		return fmt.Errorf("prompt error: %w", err)
	}
	return nil
}
