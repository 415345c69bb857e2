package perfdar

import "github.com/Brandhoej/perfdar/language"

// State is a point in an automaton's behavior: a location paired with an
// environment. States are produced functionally by edge execution and never
// mutated in place.
type State struct {
	Location    Location
	Environment language.Environment
}

// NewState pairs a location with an environment.
func NewState(location Location, environment language.Environment) State {
	return State{Location: location, Environment: environment}
}

// Equal compares location identity and environment contents.
func (s State) Equal(other State) bool {
	return s.Location.Equal(other.Location) && s.Environment.Equal(other.Environment)
}

// Key is a canonical rendering of the state used for visited-set membership
// during search. States are equal exactly when their keys are equal.
func (s State) Key() string {
	return s.Location.Key() + "|" + s.Environment.Key()
}

// EnablesAny reports whether at least one of the edges is enabled in this
// state. Edges whose guard fails to evaluate count as disabled.
func (s State) EnablesAny(edges []Edge) bool {
	for _, edge := range edges {
		if enabled, _ := edge.Enabled(s); enabled {
			return true
		}
	}
	return false
}

func (s State) String() string {
	return "(" + s.Location.String() + ", " + s.Environment.String() + ")"
}
