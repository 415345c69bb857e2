// Package analysis computes summaries of an automaton: structural matrices
// over its location graph and a report on its reachable state space.
package analysis

import (
	"github.com/google/uuid"
	"gonum.org/v1/gonum/mat"

	"github.com/Brandhoej/perfdar"
	"github.com/Brandhoej/perfdar/reach"
)

// Result is a state-space report. Deadlocks are reachable states with no
// successor under the full alphabet; Truncated reports whether the
// exploration hit the analyzer's state cap before exhausting the space.
type Result struct {
	ID              uuid.UUID
	Automaton       string
	StateCount      int
	TransitionCount int
	Deadlocks       []perfdar.State
	Truncated       bool
}

// Analyzer runs structural and behavioural analyses over one automaton.
type Analyzer struct {
	automaton *perfdar.Automaton
	maxStates int
}

func NewAnalyzer(automaton *perfdar.Automaton) *Analyzer {
	return &Analyzer{automaton: automaton}
}

// WithMaxStates caps state-space exploration. Zero means unbounded, which
// is safe here because the expression language is boolean and the location
// set is finite.
func (a *Analyzer) WithMaxStates(max int) *Analyzer {
	a.maxStates = max
	return a
}

// Analyze explores the reachable state space under the full alphabet and
// reports its size, the number of fired transitions, and the deadlocked
// states.
func (a *Analyzer) Analyze() (*Result, error) {
	result := &Result{
		ID:        uuid.New(),
		Automaton: a.automaton.Name(),
	}

	actions := a.automaton.Actions()
	search := reach.NewSearch(a.automaton, actions).WithMaxStates(a.maxStates)
	for search.Next() {
		state := search.State()
		successors, err := a.automaton.Successors(state, actions)
		if err != nil {
			return nil, err
		}
		result.StateCount++
		result.TransitionCount += len(successors)
		if len(successors) == 0 {
			result.Deadlocks = append(result.Deadlocks, state)
		}
	}
	if err := search.Err(); err != nil {
		return nil, err
	}
	result.Truncated = search.Truncated()
	return result, nil
}

// Adjacency returns the locations-by-locations matrix counting the edges
// from row location to column location. Rows and columns follow the
// automaton's deterministic location order.
func (a *Analyzer) Adjacency() *mat.Dense {
	locations := a.automaton.Locations()
	n := len(locations)
	d := make([]float64, n*n)
	for _, edge := range a.automaton.Edges() {
		i := indexOf(locations, edge.Source)
		j := indexOf(locations, edge.Target)
		if i >= 0 && j >= 0 {
			d[i*n+j]++
		}
	}
	return mat.NewDense(n, n, d)
}

// Incidence returns the locations-by-channels matrix where each entry is
// the number of the location's ingoing edges on the channel minus the
// number of its outgoing edges on it. Columns follow the automaton's
// sorted channel order.
func (a *Analyzer) Incidence() *mat.Dense {
	locations := a.automaton.Locations()
	channels := a.automaton.Actions().Slice()
	m := len(locations)
	n := len(channels)
	d := make([]float64, m*n)
	for i, location := range locations {
		for j, channel := range channels {
			subset := perfdar.NewChannelSet(channel)
			in := len(a.automaton.IngoingEdges(location, subset))
			out := len(a.automaton.OutgoingEdges(location, subset))
			d[i*n+j] = float64(in - out)
		}
	}
	return mat.NewDense(m, n, d)
}

// StructurallyConnected reports whether every location is reachable from
// the initial location over the edge graph, ignoring guards.
func (a *Analyzer) StructurallyConnected() bool {
	seen := map[string]bool{a.automaton.InitialLocation().Key(): true}
	worklist := []perfdar.Location{a.automaton.InitialLocation()}
	actions := a.automaton.Actions()
	for len(worklist) > 0 {
		current := worklist[len(worklist)-1]
		worklist = worklist[:len(worklist)-1]
		for _, succeeding := range a.automaton.SucceedingLocations(current, actions) {
			if !seen[succeeding.Key()] {
				seen[succeeding.Key()] = true
				worklist = append(worklist, succeeding)
			}
		}
	}
	return len(seen) == len(a.automaton.Locations())
}

func indexOf(locations []perfdar.Location, location perfdar.Location) int {
	for i, candidate := range locations {
		if candidate.Equal(location) {
			return i
		}
	}
	return -1
}
