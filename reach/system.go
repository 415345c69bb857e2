// Package reach explores the environment-dependent state space of a
// transition system: breadth-first forward search and the two-phase
// backward predecessor computation.
package reach

import "github.com/Brandhoej/perfdar"

// System is anything that can be stepped forward from an initial state
// restricted to an action subset. Automata and conjunctions both qualify.
type System interface {
	InitialState() perfdar.State
	Successors(state perfdar.State, actions perfdar.ChannelSet) ([]perfdar.State, error)
	Actions() perfdar.ChannelSet
	Inputs() perfdar.ChannelSet
	Outputs() perfdar.ChannelSet
}

// Structured is a system that additionally exposes its edge topology,
// which the backward predecessor computation needs.
type Structured interface {
	System
	IngoingEdges(location perfdar.Location, actions perfdar.ChannelSet) []perfdar.Edge
	PrecedingLocations(location perfdar.Location, actions perfdar.ChannelSet) []perfdar.Location
}

var (
	_ Structured = (*perfdar.Automaton)(nil)
	_ System     = (*perfdar.Conjunction)(nil)
)

// InputSuccessors is the forward step of the system restricted to its
// inputs.
func InputSuccessors(system System, state perfdar.State) ([]perfdar.State, error) {
	return system.Successors(state, system.Inputs())
}

// OutputSuccessors is the forward step of the system restricted to its
// outputs.
func OutputSuccessors(system System, state perfdar.State) ([]perfdar.State, error) {
	return system.Successors(state, system.Outputs())
}

// Predecessors computes the states that can reach the given state's
// location by firing an edge in the action subset. Guard satisfaction is
// environment-dependent, so structural predecessors alone are not enough:
// the reachable state space is enumerated from the initial state under the
// same subset, and only reachable states sitting in a structurally
// preceding location that actually enable a connecting edge are kept.
func Predecessors(system Structured, state perfdar.State, actions perfdar.ChannelSet) ([]perfdar.State, error) {
	preceding := system.PrecedingLocations(state.Location, actions)
	ingoing := system.IngoingEdges(state.Location, actions)

	var result []perfdar.State
	search := NewSearch(system, actions)
	for search.Next() {
		current := search.State()
		inPreceding := false
		for _, location := range preceding {
			if location.Equal(current.Location) {
				inPreceding = true
				break
			}
		}
		if inPreceding && current.EnablesAny(ingoing) {
			result = append(result, current)
		}
	}
	if err := search.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// InputPredecessors restricts Predecessors to the system's inputs.
func InputPredecessors(system Structured, state perfdar.State) ([]perfdar.State, error) {
	return Predecessors(system, state, system.Inputs())
}

// OutputPredecessors restricts Predecessors to the system's outputs.
func OutputPredecessors(system Structured, state perfdar.State) ([]perfdar.State, error) {
	return Predecessors(system, state, system.Outputs())
}
