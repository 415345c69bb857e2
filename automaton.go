package perfdar

import (
	"errors"
	"sort"

	"github.com/Brandhoej/perfdar/language"
)

// Option configures automaton construction.
type Option func(*construction)

type construction struct {
	environment *language.Environment
	defaultOf   language.Value
}

// WithEnvironment seeds construction with a declared environment and turns
// on strict mode: every identifier referenced by a guard, update, or
// invariant must already be declared in it.
func WithEnvironment(environment language.Environment) Option {
	return func(c *construction) {
		clone := environment.Clone()
		c.environment = &clone
	}
}

// WithDefaultValue sets the value given to identifiers declared
// automatically in auto-declare mode. The default is false.
func WithDefaultValue(value language.Value) Option {
	return func(c *construction) { c.defaultOf = value }
}

// Automaton is a validated, immutable graph of locations connected by
// guarded, action-labelled edges. All operations after construction are
// pure queries.
type Automaton struct {
	name        string
	edges       []Edge
	locations   []Location
	actions     ChannelSet
	inputs      ChannelSet
	outputs     ChannelSet
	initial     Location
	environment language.Environment
}

// NewAutomaton validates the edge set and derives the automaton from it.
// Without WithEnvironment it runs in auto-declare mode, declaring every
// referenced identifier with the default value; with it, undeclared
// identifiers are hard errors. Construction is all-or-nothing and the first
// failure wins.
func NewAutomaton(name string, edges []Edge, options ...Option) (*Automaton, error) {
	cfg := construction{defaultOf: language.False}
	for _, option := range options {
		option(&cfg)
	}
	declare := cfg.environment == nil
	environment := language.NewEnvironment()
	if !declare {
		environment = cfg.environment.Clone()
	}

	// Deduplicate and order the edge set so that every derived collection
	// and every search built on top is deterministic.
	edges = dedupeEdges(edges)

	// missing reports the undeclared identifiers, auto-declaring them first
	// when no environment was seeded.
	missing := func(identifiers []string) []string {
		absent := environment.Missing(identifiers)
		if declare {
			for _, identifier := range absent {
				environment.Insert(identifier, cfg.defaultOf)
			}
			return nil
		}
		return absent
	}

	actions := NewChannelSet()
	inputs := NewChannelSet()
	outputs := NewChannelSet()
	for _, edge := range edges {
		actions.Add(edge.Action)
		if edge.Action.IsInput() {
			inputs.Add(edge.Action)
		} else {
			outputs.Add(edge.Action)
		}

		if absent := missing(language.Identifiers(edge.Guard.Expression)); len(absent) > 0 {
			return nil, &MissingIdentifiersInEdgeGuardError{Automaton: name, Edge: edge, Missing: absent}
		}
		checker := language.NewChecker(environment)
		guardType, err := checker.CheckExpression(edge.Guard.Expression)
		if err != nil {
			// A declared identifier bound to an undeclared one surfaces here
			// rather than in the direct identifier scan.
			var unknown *language.UnknownIdentifierError
			if errors.As(err, &unknown) {
				return nil, &MissingIdentifiersInEdgeGuardError{Automaton: name, Edge: edge, Missing: []string{unknown.Identifier}}
			}
			return nil, &EdgeGuardIsNotLogicalError{Automaton: name, Edge: edge, Actual: language.Void}
		}
		if guardType != language.Logical {
			return nil, &EdgeGuardIsNotLogicalError{Automaton: name, Edge: edge, Actual: guardType}
		}

		if !edge.Update.IsEmpty() {
			if absent := missing(edge.Update.Identifiers()); len(absent) > 0 {
				return nil, &MissingIdentifiersInEdgeUpdateError{Automaton: name, Edge: edge, Missing: absent}
			}
			updateType, err := checker.CheckStatement(edge.Update.Statement)
			if err != nil || updateType != language.Void {
				return nil, &EdgeUpdateIsNotVoidError{Automaton: name, Edge: edge, Actual: updateType}
			}
		}
	}

	locations := deriveLocations(edges)
	for _, location := range locations {
		if err := checkInvariantIdentifiers(name, location, missing); err != nil {
			return nil, err
		}
	}

	if !inputs.Disjoint(outputs) {
		return nil, &PartitionError{Automaton: name, Violating: inputs.Intersection(outputs).Slice()}
	}

	if len(locations) == 0 {
		return nil, &EmptyAutomatonError{Automaton: name}
	}

	var initials []Location
	for _, location := range locations {
		if location.IsInitial() {
			initials = append(initials, location)
		}
	}
	if len(initials) == 0 {
		return nil, &MissingInitialLocationError{Automaton: name}
	}
	if len(initials) > 1 {
		return nil, &TooManyInitialLocationsError{Automaton: name, Initials: initials}
	}
	initial := initials[0]

	if invariant, ok := initial.Invariant(); ok {
		interpreter := language.NewInterpreter(environment)
		evaluation, err := interpreter.EvalExpression(invariant.Expression)
		if err != nil || !evaluation.IsTrue() {
			return nil, &InconsistentInitialLocationError{Automaton: name, Location: initial}
		}
	}

	return &Automaton{
		name:        name,
		edges:       edges,
		locations:   locations,
		actions:     actions,
		inputs:      inputs,
		outputs:     outputs,
		initial:     initial,
		environment: environment,
	}, nil
}

// checkInvariantIdentifiers walks a location, recursing through conjunction
// components, and fails on undeclared invariant identifiers in strict mode.
func checkInvariantIdentifiers(automaton string, location Location, missing func([]string) []string) error {
	worklist := []Location{location}
	for len(worklist) > 0 {
		current := worklist[len(worklist)-1]
		worklist = worklist[:len(worklist)-1]
		switch current.Kind() {
		case NormalLocation, InitialLocation:
			invariant, _ := current.Invariant()
			if absent := missing(language.Identifiers(invariant.Expression)); len(absent) > 0 {
				return &MissingIdentifiersInLocationInvariantError{Automaton: automaton, Location: current, Missing: absent}
			}
		case ConjunctionLocation:
			worklist = append(worklist, current.Parts()...)
		}
	}
	return nil
}

func dedupeEdges(edges []Edge) []Edge {
	seen := make(map[string]bool)
	unique := make([]Edge, 0, len(edges))
	for _, edge := range edges {
		key := edge.Key()
		if !seen[key] {
			seen[key] = true
			unique = append(unique, edge)
		}
	}
	sort.Slice(unique, func(i, j int) bool { return unique[i].Key() < unique[j].Key() })
	return unique
}

func deriveLocations(edges []Edge) []Location {
	seen := make(map[string]bool)
	var locations []Location
	for _, edge := range edges {
		for _, endpoint := range []Location{edge.Source, edge.Target} {
			key := endpoint.Key()
			if !seen[key] {
				seen[key] = true
				locations = append(locations, endpoint)
			}
		}
	}
	sort.Slice(locations, func(i, j int) bool { return locations[i].Key() < locations[j].Key() })
	return locations
}

func (a *Automaton) Name() string { return a.name }

// InitialLocation returns the unique initial location.
func (a *Automaton) InitialLocation() Location { return a.initial }

// Environment returns a copy of the initial environment.
func (a *Automaton) Environment() language.Environment { return a.environment.Clone() }

// InitialState pairs the initial location with the initial environment.
func (a *Automaton) InitialState() State {
	return NewState(a.initial, a.environment.Clone())
}

// Locations returns the edge-endpoint locations, ordered deterministically.
func (a *Automaton) Locations() []Location {
	locations := make([]Location, len(a.locations))
	copy(locations, a.locations)
	return locations
}

// Edges returns the edge set, ordered deterministically.
func (a *Automaton) Edges() []Edge {
	edges := make([]Edge, len(a.edges))
	copy(edges, a.edges)
	return edges
}

func (a *Automaton) Actions() ChannelSet { return a.actions.Clone() }

func (a *Automaton) Inputs() ChannelSet { return a.inputs.Clone() }

func (a *Automaton) Outputs() ChannelSet { return a.outputs.Clone() }

// IngoingEdges returns the edges targeting the location whose action is in
// the subset.
func (a *Automaton) IngoingEdges(location Location, actions ChannelSet) []Edge {
	var result []Edge
	for _, edge := range a.edges {
		if edge.Target.Equal(location) && actions.Contains(edge.Action) {
			result = append(result, edge)
		}
	}
	return result
}

// OutgoingEdges returns the edges leaving the location whose action is in
// the subset.
func (a *Automaton) OutgoingEdges(location Location, actions ChannelSet) []Edge {
	var result []Edge
	for _, edge := range a.edges {
		if edge.Source.Equal(location) && actions.Contains(edge.Action) {
			result = append(result, edge)
		}
	}
	return result
}

// PrecedingLocations returns the sources of the location's ingoing edges.
// This is a purely structural query; guards are not consulted.
func (a *Automaton) PrecedingLocations(location Location, actions ChannelSet) []Location {
	var result []Location
	for _, edge := range a.IngoingEdges(location, actions) {
		result = append(result, edge.Source)
	}
	return result
}

// SucceedingLocations returns the targets of the location's outgoing edges.
// This is a purely structural query; guards are not consulted.
func (a *Automaton) SucceedingLocations(location Location, actions ChannelSet) []Location {
	var result []Location
	for _, edge := range a.OutgoingEdges(location, actions) {
		result = append(result, edge.Target)
	}
	return result
}

// Successors fires every enabled outgoing edge of the state whose action is
// in the subset. Edges whose guard fails to evaluate are skipped as
// disabled; a failing update on an enabled edge is escalated.
func (a *Automaton) Successors(state State, actions ChannelSet) ([]State, error) {
	var result []State
	for _, edge := range a.OutgoingEdges(state.Location, actions) {
		enabled, err := edge.Enabled(state)
		if err != nil || !enabled {
			continue
		}
		successor, err := edge.Execute(state)
		if err != nil {
			return nil, err
		}
		result = append(result, successor)
	}
	return result, nil
}
