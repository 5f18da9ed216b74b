// Package stack holds the registry of project stacks and their drivers.
package stack

import (
	"context"
	"fmt"

	"github.com/opmodel/stackgen/internal/config"
	oerrors "github.com/opmodel/stackgen/internal/errors"
	"github.com/opmodel/stackgen/internal/process"
	"github.com/opmodel/stackgen/internal/prompt"
)

// Env carries the collaborators a stack driver needs.
type Env struct {
	Prompter prompt.Prompter
	Runner   process.Runner
	Defaults config.Defaults
}

// Result describes a generated project.
type Result struct {
	// Files maps paths relative to the project root to a short description.
	// Directory entries end in "/".
	Files map[string]string
}

// Handler generates one project of a stack into an existing, empty directory.
type Handler interface {
	Create(ctx context.Context, projectPath string) (*Result, error)
}

// Stack is a registry entry.
type Stack struct {
	// Key is the identifier offered in the stack question, e.g. "MERN".
	Key string

	// Name is the human-readable stack name.
	Name string

	// Description lists the technologies of the stack.
	Description string

	// New builds the handler for a run.
	New func(env Env) Handler
}

// Registry is an immutable, ordered table of stacks.
type Registry struct {
	stacks []Stack
	byKey  map[string]int
}

// NewRegistry builds a registry. Keys must be unique.
func NewRegistry(stacks ...Stack) *Registry {
	r := &Registry{
		stacks: make([]Stack, len(stacks)),
		byKey:  make(map[string]int, len(stacks)),
	}
	copy(r.stacks, stacks)
	for i, s := range stacks {
		if _, dup := r.byKey[s.Key]; dup {
			panic(fmt.Sprintf("stack: duplicate key %q", s.Key))
		}
		r.byKey[s.Key] = i
	}
	return r
}

// Keys returns the stack keys in registration order.
func (r *Registry) Keys() []string {
	keys := make([]string, len(r.stacks))
	for i, s := range r.stacks {
		keys[i] = s.Key
	}
	return keys
}

// List returns the stacks in registration order.
func (r *Registry) List() []Stack {
	out := make([]Stack, len(r.stacks))
	copy(out, r.stacks)
	return out
}

// Lookup returns the stack registered under key.
func (r *Registry) Lookup(key string) (Stack, error) {
	i, ok := r.byKey[key]
	if !ok {
		return Stack{}, oerrors.NewNotFoundError(
			fmt.Sprintf("stack %q is not implemented yet", key),
			"Run 'stackgen stacks' to list the available stacks",
		)
	}
	return r.stacks[i], nil
}

// Options returns the stack question choices, labelled with each stack's
// technologies.
func (r *Registry) Options() []prompt.Option {
	opts := make([]prompt.Option, len(r.stacks))
	for i, s := range r.stacks {
		opts[i] = prompt.Option{Label: s.Description, Value: s.Key}
	}
	return opts
}

// Default is the registry of built-in stacks.
var Default = NewRegistry(MERNStack)
