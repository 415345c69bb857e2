// Package builder assembles automata with a fluent interface, saving the
// caller from constructing locations and parsing expressions by hand.
// Guards, updates, and invariants are given in their textual form; actions
// carry their direction as a "?" or "!" suffix.
package builder

import (
	"github.com/Brandhoej/perfdar"
	"github.com/Brandhoej/perfdar/yaml"
)

type Builder struct {
	model yaml.Model
}

func New(name string) *Builder {
	return &Builder{model: yaml.Model{Name: name}}
}

// WithEnvironment declares the environment, switching construction to
// strict mode.
func (b *Builder) WithEnvironment(environment map[string]bool) *Builder {
	b.model.Environment = environment
	return b
}

// WithLocation adds a location. An empty invariant means true.
func (b *Builder) WithLocation(name, invariant string) *Builder {
	b.model.Locations = append(b.model.Locations, yaml.LocationModel{
		Name:      name,
		Invariant: invariant,
	})
	return b
}

// WithInitial adds the initial location. An empty invariant means true.
func (b *Builder) WithInitial(name, invariant string) *Builder {
	b.model.Locations = append(b.model.Locations, yaml.LocationModel{
		Name:      name,
		Initial:   true,
		Invariant: invariant,
	})
	return b
}

// WithEdge adds an edge. An empty guard means true and an empty update
// means no update.
func (b *Builder) WithEdge(from, action, guard, update, to string) *Builder {
	b.model.Edges = append(b.model.Edges, yaml.EdgeModel{
		From:   from,
		To:     to,
		Action: action,
		Guard:  guard,
		Update: update,
	})
	return b
}

// WithLoop adds a self-loop on a location.
func (b *Builder) WithLoop(location, action, guard, update string) *Builder {
	return b.WithEdge(location, action, guard, update, location)
}

// Build validates and constructs the automaton.
func (b *Builder) Build() (*perfdar.Automaton, error) {
	return yaml.NewService().Build(&b.model)
}
