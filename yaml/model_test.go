package yaml_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/Brandhoej/perfdar"
	"github.com/Brandhoej/perfdar/language"
	"github.com/Brandhoej/perfdar/yaml"
)

const doorModel = `
name: door
environment:
  locked: false
locations:
  - name: closed
    initial: true
  - name: open
    invariant: "!locked"
edges:
  - from: closed
    to: open
    action: "open?"
    guard: "!locked"
  - from: open
    to: closed
    action: "close?"
  - from: closed
    to: closed
    action: "lock?"
    update: "locked = true"
  - from: closed
    to: closed
    action: "unlock?"
    update: "locked = false"
`

func TestService_Load(t *testing.T) {
	automaton, err := yaml.NewService().Load(strings.NewReader(doorModel))
	if err != nil {
		t.Fatal(err)
	}
	if automaton.Name() != "door" {
		t.Errorf("want name door, got %q", automaton.Name())
	}
	if len(automaton.Locations()) != 2 || len(automaton.Edges()) != 4 {
		t.Errorf("want 2 locations and 4 edges, got %d and %d",
			len(automaton.Locations()), len(automaton.Edges()))
	}
	if value, found := automaton.Environment().Get("locked"); !found || value != language.False {
		t.Error("the declared environment should bind locked to false")
	}
	if automaton.InitialLocation().Name() != "closed" {
		t.Errorf("want initial closed, got %s", automaton.InitialLocation().Name())
	}
	if automaton.Inputs().Len() != 4 || automaton.Outputs().Len() != 0 {
		t.Error("all door actions are inputs")
	}
}

func TestService_LoadStrict(t *testing.T) {
	model := strings.Replace(doorModel, "locked: false", "other: false", 1)
	_, err := yaml.NewService().Load(strings.NewReader(model))
	var missing *perfdar.MissingIdentifiersInEdgeGuardError
	if !errors.As(err, &missing) {
		t.Fatalf("a declared environment without locked should fail strictly, got %v", err)
	}
	if len(missing.Missing) != 1 || missing.Missing[0] != "locked" {
		t.Errorf("want missing [locked], got %v", missing.Missing)
	}
}

func TestService_LoadAutoDeclares(t *testing.T) {
	model := strings.Replace(doorModel, "environment:\n  locked: false\n", "", 1)
	automaton, err := yaml.NewService().Load(strings.NewReader(model))
	if err != nil {
		t.Fatal(err)
	}
	if value, found := automaton.Environment().Get("locked"); !found || value != language.False {
		t.Error("without a declared environment locked is auto-declared false")
	}
}

func TestService_LoadErrors(t *testing.T) {
	cases := []struct {
		name    string
		replace [2]string
	}{
		{"unknown source", [2]string{"from: open", "from: ghost"}},
		{"bad guard", [2]string{`guard: "!locked"`, `guard: "locked &&"`}},
		{"bad update", [2]string{`update: "locked = true"`, `update: "locked ="`}},
		{"empty action", [2]string{`action: "close?"`, `action: ""`}},
	}
	for _, c := range cases {
		model := strings.Replace(doorModel, c.replace[0], c.replace[1], 1)
		if _, err := yaml.NewService().Load(strings.NewReader(model)); err == nil {
			t.Errorf("%s: expected an error", c.name)
		}
	}
}

func TestService_RoundTrip(t *testing.T) {
	service := yaml.NewService()
	automaton, err := service.Load(strings.NewReader(doorModel))
	if err != nil {
		t.Fatal(err)
	}

	var buffer bytes.Buffer
	if err := service.Flush(&buffer, automaton); err != nil {
		t.Fatal(err)
	}
	reloaded, err := service.Load(&buffer)
	if err != nil {
		t.Fatal(err)
	}

	if reloaded.Name() != automaton.Name() {
		t.Errorf("name changed across the round trip: %q vs %q", reloaded.Name(), automaton.Name())
	}
	if len(reloaded.Edges()) != len(automaton.Edges()) {
		t.Fatalf("edge count changed: %d vs %d", len(reloaded.Edges()), len(automaton.Edges()))
	}
	for i, edge := range automaton.Edges() {
		if reloaded.Edges()[i].Key() != edge.Key() {
			t.Errorf("edge %d changed: %s vs %s", i, reloaded.Edges()[i], edge)
		}
	}
	if !reloaded.InitialState().Equal(automaton.InitialState()) {
		t.Errorf("initial state changed: %s vs %s", reloaded.InitialState(), automaton.InitialState())
	}
}

func TestParseActionDirections(t *testing.T) {
	service := yaml.NewService()
	model := &yaml.Model{
		Name: "mixed",
		Locations: []yaml.LocationModel{
			{Name: "a", Initial: true},
			{Name: "b"},
		},
		Edges: []yaml.EdgeModel{
			{From: "a", To: "b", Action: "in?"},
			{From: "b", To: "a", Action: "out!"},
			{From: "a", To: "a", Action: "bare"},
		},
	}
	automaton, err := service.Build(model)
	if err != nil {
		t.Fatal(err)
	}
	if automaton.Inputs().Len() != 2 {
		t.Errorf("in? and bare are inputs, got %d", automaton.Inputs().Len())
	}
	if automaton.Outputs().Len() != 1 {
		t.Errorf("out! is an output, got %d", automaton.Outputs().Len())
	}
}
