package perfdar

import (
	"strings"

	"github.com/Brandhoej/perfdar/language"
)

// Conjunction composes two or more automata into a product under the
// conjunctive composition rules: alphabets are unioned, no channel may be an
// input of one operand and an output of another, the composed initial
// location is built with the absorbing location algebra, and the operand
// environments are concatenated and must be pairwise disjoint.
type Conjunction struct {
	name        string
	operands    []*Automaton
	actions     ChannelSet
	inputs      ChannelSet
	outputs     ChannelSet
	initial     Location
	environment language.Environment
}

// NewConjunction validates and builds the conjunction of the operands.
func NewConjunction(operands ...*Automaton) (*Conjunction, error) {
	if len(operands) < 2 {
		return nil, &TooFewOperandsError{Operation: "conjunction", Count: len(operands)}
	}

	names := make([]string, len(operands))
	inputs := NewChannelSet()
	outputs := NewChannelSet()
	initials := make([]Location, len(operands))
	for i, operand := range operands {
		names[i] = operand.Name()
		inputs = inputs.Union(operand.Inputs())
		outputs = outputs.Union(operand.Outputs())
		initials[i] = operand.InitialLocation()
	}
	name := strings.Join(names, " && ")

	// No channel may serve as an input on one operand and an output on
	// another. Within a single operand this already failed its own
	// construction, so any overlap here is cross-operand.
	if !inputs.Disjoint(outputs) {
		return nil, &PartitionError{Automaton: name, Violating: inputs.Intersection(outputs).Slice()}
	}

	environment := language.NewEnvironment()
	for _, operand := range operands {
		operandEnvironment := operand.Environment()
		if !environment.Concat(operandEnvironment) {
			return nil, &OverlappingEnvironmentsError{Identifiers: environment.Overlap(operandEnvironment)}
		}
	}

	return &Conjunction{
		name:        name,
		operands:    operands,
		actions:     inputs.Union(outputs),
		inputs:      inputs,
		outputs:     outputs,
		initial:     NewConjunctionLocation(initials...),
		environment: environment,
	}, nil
}

func (c *Conjunction) Name() string { return c.name }

// Operands returns the composed automata in operand order.
func (c *Conjunction) Operands() []*Automaton {
	operands := make([]*Automaton, len(c.operands))
	copy(operands, c.operands)
	return operands
}

// InitialLocation returns the composed initial location.
func (c *Conjunction) InitialLocation() Location { return c.initial }

// Environment returns a copy of the composed initial environment.
func (c *Conjunction) Environment() language.Environment { return c.environment.Clone() }

// InitialState pairs the composed initial location with the composed
// environment.
func (c *Conjunction) InitialState() State {
	return NewState(c.initial, c.environment.Clone())
}

func (c *Conjunction) Actions() ChannelSet { return c.actions.Clone() }

func (c *Conjunction) Inputs() ChannelSet { return c.inputs.Clone() }

func (c *Conjunction) Outputs() ChannelSet { return c.outputs.Clone() }

// Successors steps the product: for each action in the subset, every
// operand whose alphabet contains the action must fire an enabled edge;
// operands without the action stay in place. The successors of a product
// state are all combinations of the participants' enabled edges, with
// updates applied to the shared environment in operand order.
func (c *Conjunction) Successors(state State, actions ChannelSet) ([]State, error) {
	parts := c.partsOf(state.Location)
	if parts == nil {
		return nil, nil
	}

	var result []State
	for _, action := range actions.Slice() {
		if !c.actions.Contains(action) {
			continue
		}

		// Per participating operand, the enabled edges on this action.
		choices := make([][]Edge, len(c.operands))
		blocked := false
		for i, operand := range c.operands {
			if !operand.Actions().Contains(action) {
				continue
			}
			operandState := NewState(parts[i], state.Environment)
			for _, edge := range operand.OutgoingEdges(parts[i], NewChannelSet(action)) {
				if enabled, _ := edge.Enabled(operandState); enabled {
					choices[i] = append(choices[i], edge)
				}
			}
			if len(choices[i]) == 0 {
				blocked = true
				break
			}
		}
		if blocked {
			continue
		}

		successors, err := c.combine(state, parts, choices, 0, state.Environment, make([]Location, len(parts)))
		if err != nil {
			return nil, err
		}
		result = append(result, successors...)
	}
	return result, nil
}

// partsOf aligns a product location with the operands. The initial product
// may have collapsed under the absorbing algebra, in which case there is
// nothing to step.
func (c *Conjunction) partsOf(location Location) []Location {
	if location.Kind() != ConjunctionLocation {
		return nil
	}
	parts := location.Parts()
	if len(parts) != len(c.operands) {
		return nil
	}
	return parts
}

// combine expands the cartesian product of the participants' edge choices,
// threading updates through the environment one operand at a time.
func (c *Conjunction) combine(state State, parts []Location, choices [][]Edge, index int, environment language.Environment, targets []Location) ([]State, error) {
	if index == len(choices) {
		combined := make([]Location, len(targets))
		copy(combined, targets)
		return []State{NewState(NewConjunctionLocation(combined...), environment.Clone())}, nil
	}
	if len(choices[index]) == 0 {
		// Operand does not participate in this action and stays in place.
		targets[index] = parts[index]
		return c.combine(state, parts, choices, index+1, environment, targets)
	}
	var result []State
	for _, edge := range choices[index] {
		fired, err := edge.Execute(NewState(parts[index], environment))
		if err != nil {
			return nil, err
		}
		targets[index] = fired.Location
		successors, err := c.combine(state, parts, choices, index+1, fired.Environment, targets)
		if err != nil {
			return nil, err
		}
		result = append(result, successors...)
	}
	return result, nil
}
