package reach_test

import (
	"testing"

	"github.com/Brandhoej/perfdar"
	"github.com/Brandhoej/perfdar/reach"
)

// chain is a -> b -> c on two distinct input actions.
func chain(t *testing.T) *perfdar.Automaton {
	t.Helper()
	a := perfdar.NewInitial("a", perfdar.TrueInvariant())
	b := perfdar.NewNormal("b", perfdar.TrueInvariant())
	c := perfdar.NewNormal("c", perfdar.TrueInvariant())
	automaton, err := perfdar.NewAutomaton("chain", []perfdar.Edge{
		perfdar.NewEdge(a, perfdar.NewInput("x"), perfdar.TrueGuard(), perfdar.NoUpdate(), b),
		perfdar.NewEdge(b, perfdar.NewInput("y"), perfdar.TrueGuard(), perfdar.NoUpdate(), c),
	})
	if err != nil {
		t.Fatal(err)
	}
	return automaton
}

func stateAt(automaton *perfdar.Automaton, name string) perfdar.State {
	for _, location := range automaton.Locations() {
		if location.Name() == name {
			return perfdar.NewState(location, automaton.Environment())
		}
	}
	panic("no location named " + name)
}

func TestPredecessors_Chain(t *testing.T) {
	automaton := chain(t)
	actions := automaton.Actions()

	predecessors, err := reach.Predecessors(automaton, stateAt(automaton, "b"), actions)
	if err != nil {
		t.Fatal(err)
	}
	if len(predecessors) != 1 || predecessors[0].Location.Name() != "a" {
		t.Errorf("b is preceded by a, got %v", predecessors)
	}

	predecessors, err = reach.Predecessors(automaton, stateAt(automaton, "c"), actions)
	if err != nil {
		t.Fatal(err)
	}
	if len(predecessors) != 1 || predecessors[0].Location.Name() != "b" {
		t.Errorf("c is preceded by b, got %v", predecessors)
	}

	predecessors, err = reach.Predecessors(automaton, automaton.InitialState(), actions)
	if err != nil {
		t.Fatal(err)
	}
	if len(predecessors) != 0 {
		t.Errorf("the initial state has no predecessors, got %v", predecessors)
	}
}

func TestPredecessors_GuardDependent(t *testing.T) {
	automaton := door(t)
	// Of the two reachable closed states, only the unlocked one enables
	// the opening edge; structural precedence alone would report both.
	open := stateAt(automaton, "open")
	predecessors, err := reach.Predecessors(automaton, open, automaton.Actions())
	if err != nil {
		t.Fatal(err)
	}
	if len(predecessors) != 1 {
		t.Fatalf("want 1 predecessor, got %d", len(predecessors))
	}
	if predecessors[0].Location.Name() != "closed" {
		t.Errorf("want closed, got %s", predecessors[0].Location.Name())
	}
	if value, _ := predecessors[0].Environment.Get("locked"); value.String() != "false" {
		t.Error("the locked closed state does not enable opening")
	}
}

func TestInputOutputRestrictions(t *testing.T) {
	a := perfdar.NewInitial("a", perfdar.TrueInvariant())
	b := perfdar.NewNormal("b", perfdar.TrueInvariant())
	c := perfdar.NewNormal("c", perfdar.TrueInvariant())
	automaton, err := perfdar.NewAutomaton("mixed", []perfdar.Edge{
		perfdar.NewEdge(a, perfdar.NewInput("in"), perfdar.TrueGuard(), perfdar.NoUpdate(), b),
		perfdar.NewEdge(a, perfdar.NewOutput("out"), perfdar.TrueGuard(), perfdar.NoUpdate(), c),
	})
	if err != nil {
		t.Fatal(err)
	}

	inputs, err := reach.InputSuccessors(automaton, automaton.InitialState())
	if err != nil {
		t.Fatal(err)
	}
	if len(inputs) != 1 || inputs[0].Location.Name() != "b" {
		t.Errorf("the input step reaches b, got %v", inputs)
	}

	outputs, err := reach.OutputSuccessors(automaton, automaton.InitialState())
	if err != nil {
		t.Fatal(err)
	}
	if len(outputs) != 1 || outputs[0].Location.Name() != "c" {
		t.Errorf("the output step reaches c, got %v", outputs)
	}

	predecessors, err := reach.InputPredecessors(automaton, stateAt(automaton, "c"))
	if err != nil {
		t.Fatal(err)
	}
	if len(predecessors) != 0 {
		t.Errorf("c is only reachable by an output, got %v", predecessors)
	}
	predecessors, err = reach.OutputPredecessors(automaton, stateAt(automaton, "c"))
	if err != nil {
		t.Fatal(err)
	}
	if len(predecessors) != 1 || predecessors[0].Location.Name() != "a" {
		t.Errorf("want a as output predecessor of c, got %v", predecessors)
	}
}
