package testutil

import (
	"fmt"

	"github.com/opmodel/stackgen/internal/prompt"
)

// Answer is one scripted response. Exactly one of the value fields is used,
// matching the question kind. Cancel simulates the user aborting.
type Answer struct {
	Text   string
	Choice string
	Yes    bool
	Cancel bool
}

// ScriptedPrompter answers questions from a fixed script, in order.
type ScriptedPrompter struct {
	Answers []Answer

	// Asked records every question title.
	Asked []string

	// Rejected records input answers that failed validation.
	Rejected []string

	// SelectDefaults and ConfirmDefaults record the pre-selected answers.
	SelectDefaults  []string
	ConfirmDefaults []bool
}

// Input implements prompt.Prompter. Answers rejected by validate are
// recorded and the next scripted answer is tried, like a user retyping.
func (s *ScriptedPrompter) Input(title string, validate func(string) error) (string, error) {
	s.Asked = append(s.Asked, title)
	for {
		a, err := s.next(title)
		if err != nil {
			return "", err
		}
		if validate != nil {
			if verr := validate(a.Text); verr != nil {
				s.Rejected = append(s.Rejected, a.Text)
				continue
			}
		}
		return a.Text, nil
	}
}

// Select implements prompt.Prompter.
func (s *ScriptedPrompter) Select(title string, options []prompt.Option, def string) (string, error) {
	s.Asked = append(s.Asked, title)
	s.SelectDefaults = append(s.SelectDefaults, def)
	a, err := s.next(title)
	if err != nil {
		return "", err
	}
	choice := a.Choice
	if choice == "" {
		choice = def
	}
	for _, o := range options {
		if o.Value == choice {
			return choice, nil
		}
	}
	return "", fmt.Errorf("scripted choice %q is not an option of %q", choice, title)
}

// Confirm implements prompt.Prompter.
func (s *ScriptedPrompter) Confirm(title string, def bool) (bool, error) {
	s.Asked = append(s.Asked, title)
	s.ConfirmDefaults = append(s.ConfirmDefaults, def)
	a, err := s.next(title)
	if err != nil {
		return false, err
	}
	return a.Yes, nil
}

func (s *ScriptedPrompter) next(title string) (Answer, error) {
	if len(s.Answers) == 0 {
		return Answer{}, fmt.Errorf("no scripted answer for %q", title)
	}
	a := s.Answers[0]
	s.Answers = s.Answers[1:]
	if a.Cancel {
		return Answer{}, prompt.ErrCancelled
	}
	return a, nil
}
