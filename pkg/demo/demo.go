// Package demo holds the built-in example views used by the weave CLI and
// the live server.
//
// Every call to New builds fresh state, so each live connection or CLI
// run gets an independent copy of the demo.
package demo

import (
	"slices"

	werrors "github.com/vango-dev/weave/internal/errors"
	"github.com/vango-dev/weave/pkg/node"
)

// Action is a named operation on a demo's state, driven by play scripts.
type Action func(arg string) error

// Demo is a self-contained view with its own state.
type Demo interface {
	// Name returns the name the demo is registered under.
	Name() string

	// Description returns a one-line summary.
	Description() string

	// Build returns the demo's view. Each call returns fresh nodes bound
	// to the same state.
	Build() node.Node

	// Actions returns the demo's named actions.
	Actions() map[string]Action
}

// Factory creates a demo with fresh state.
type Factory func() Demo

var registry = map[string]Factory{
	"counter": func() Demo { return Counter() },
	"fruits":  func() Demo { return Fruits("apple", "banana") },
	"todo":    func() Demo { return Todo() },
}

// New creates the demo registered under name.
func New(name string) (Demo, error) {
	f, ok := registry[name]
	if !ok {
		return nil, werrors.New("E141").
			WithDetailf("no demo named %q", name).
			WithSuggestion("Available demos: " + joinNames())
	}
	return f(), nil
}

// Run invokes the named action of d.
func Run(d Demo, action, arg string) error {
	act, ok := d.Actions()[action]
	if !ok {
		return unknownAction(d.Name(), action)
	}
	return act(arg)
}

// Names returns the registered demo names in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

func joinNames() string {
	out := ""
	for i, n := range Names() {
		if i > 0 {
			out += ", "
		}
		out += n
	}
	return out
}

func unknownAction(demo, action string) error {
	return werrors.New("E142").WithDetailf("demo %q has no action %q", demo, action)
}

func badArg(demo, action, arg, want string) error {
	return werrors.New("E142").WithDetailf("%s.%s: argument %q, want %s", demo, action, arg, want)
}
