package perfdar

import "github.com/Brandhoej/perfdar/language"

// Edge connects two locations under a synchronization action, gated by a
// guard and optionally updating the environment. Edges are immutable values
// owning copies of their endpoints' identity.
type Edge struct {
	Source Location
	Action Channel
	Guard  Guard
	Update Update
	Target Location
}

// NewEdge builds an edge between two locations.
func NewEdge(source Location, action Channel, guard Guard, update Update, target Location) Edge {
	return Edge{Source: source, Action: action, Guard: guard, Update: update, Target: target}
}

// NewLoop builds a self-loop on a location.
func NewLoop(location Location, action Channel, guard Guard, update Update) Edge {
	return Edge{Source: location, Action: action, Guard: guard, Update: update, Target: location}
}

// Enabled reports whether the edge may fire in the state. It is false
// without error when the state is at a different location. A guard that
// fails to evaluate makes the edge disabled; the returned error lets callers
// distinguish "disabled" from "guard evaluation failed" when that matters.
func (e Edge) Enabled(state State) (bool, error) {
	if !e.Source.Equal(state.Location) {
		return false, nil
	}
	interpreter := language.NewInterpreter(state.Environment)
	evaluation, err := interpreter.EvalExpression(e.Guard.Expression)
	if err != nil {
		return false, err
	}
	return evaluation.IsTrue(), nil
}

// Execute fires the edge from the state, producing the successor state at
// the edge's target. The input state is left untouched. A failing update on
// an edge that was confirmed enabled is an internal-consistency violation
// and is surfaced as an EdgeExecutionError, never ignored.
func (e Edge) Execute(state State) (State, error) {
	if e.Update.IsEmpty() {
		return NewState(e.Target, state.Environment.Clone()), nil
	}
	interpreter := language.NewInterpreter(state.Environment)
	if err := interpreter.EvalStatement(e.Update.Statement); err != nil {
		return State{}, &EdgeExecutionError{Edge: e, State: state, Cause: err}
	}
	return NewState(e.Target, interpreter.Environment()), nil
}

// Key is a canonical rendering of the edge used for set membership. The
// action contributes its name only: channel identity ignores direction, so
// two edges identical up to the direction annotation are the same edge.
func (e Edge) Key() string {
	return e.Source.Key() + "-(" + e.Action.Name() + "," + e.Guard.String() + "," + e.Update.String() + ")->" + e.Target.Key()
}

func (e Edge) String() string {
	return e.Source.String() + " -(" + e.Action.String() + ", " + e.Guard.String() + ", " + e.Update.String() + ")-> " + e.Target.String()
}
