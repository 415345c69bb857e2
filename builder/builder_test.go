package builder_test

import (
	"errors"
	"testing"

	"github.com/Brandhoej/perfdar"
	"github.com/Brandhoej/perfdar/builder"
)

func TestBuilder(t *testing.T) {
	door, err := builder.New("door").
		WithInitial("closed", "").
		WithLocation("open", "!locked").
		WithEdge("closed", "open?", "!locked", "", "open").
		WithEdge("open", "close?", "", "", "closed").
		WithLoop("closed", "lock?", "", "locked = true").
		WithLoop("closed", "unlock?", "", "locked = false").
		Build()
	if err != nil {
		t.Fatal(err)
	}
	if door.Name() != "door" {
		t.Errorf("want name door, got %q", door.Name())
	}
	if len(door.Locations()) != 2 || len(door.Edges()) != 4 {
		t.Errorf("want 2 locations and 4 edges, got %d and %d",
			len(door.Locations()), len(door.Edges()))
	}
	if door.InitialLocation().Name() != "closed" {
		t.Errorf("want initial closed, got %s", door.InitialLocation().Name())
	}
}

func TestBuilder_StrictEnvironment(t *testing.T) {
	_, err := builder.New("door").
		WithEnvironment(map[string]bool{}).
		WithInitial("closed", "").
		WithLocation("open", "").
		WithEdge("closed", "open?", "!locked", "", "open").
		Build()
	var missing *perfdar.MissingIdentifiersInEdgeGuardError
	if !errors.As(err, &missing) {
		t.Fatalf("want MissingIdentifiersInEdgeGuardError, got %v", err)
	}
}
