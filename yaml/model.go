// Package yaml reads and writes automata as YAML documents. Guards,
// updates, and invariants are stored in their textual expression form and
// parsed on load.
package yaml

import (
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/Brandhoej/perfdar"
	"github.com/Brandhoej/perfdar/language"
)

// Model is the on-disk shape of an automaton.
type Model struct {
	Name        string          `yaml:"name"`
	Environment map[string]bool `yaml:"environment,omitempty"`
	Locations   []LocationModel `yaml:"locations"`
	Edges       []EdgeModel     `yaml:"edges"`
}

// LocationModel names a location. An empty invariant means true.
type LocationModel struct {
	Name      string `yaml:"name"`
	Initial   bool   `yaml:"initial,omitempty"`
	Invariant string `yaml:"invariant,omitempty"`
}

// EdgeModel connects two locations by name. The action carries its
// direction as a "?" or "!" suffix; without a suffix it is an input. An
// empty guard means true and an empty update means no update.
type EdgeModel struct {
	From   string `yaml:"from"`
	To     string `yaml:"to"`
	Action string `yaml:"action"`
	Guard  string `yaml:"guard,omitempty"`
	Update string `yaml:"update,omitempty"`
}

// Service converts between YAML documents and validated automata. It
// implements perfdar.Loader and perfdar.Flusher for *perfdar.Automaton.
type Service struct{}

var (
	_ perfdar.Loader[*perfdar.Automaton]  = (*Service)(nil)
	_ perfdar.Flusher[*perfdar.Automaton] = (*Service)(nil)
)

func NewService() *Service { return &Service{} }

// Load decodes a model and builds the automaton from it. When the model
// declares an environment the automaton is constructed strictly against
// it; otherwise identifiers are declared automatically.
func (s *Service) Load(r io.Reader) (*perfdar.Automaton, error) {
	dec := yaml.NewDecoder(r)
	var model Model
	if err := dec.Decode(&model); err != nil {
		return nil, err
	}
	return s.Build(&model)
}

// Build turns a decoded model into a validated automaton.
func (s *Service) Build(model *Model) (*perfdar.Automaton, error) {
	locations := make(map[string]perfdar.Location, len(model.Locations))
	for _, lm := range model.Locations {
		invariant := perfdar.TrueInvariant()
		if lm.Invariant != "" {
			expression, err := language.Parse(lm.Invariant)
			if err != nil {
				return nil, fmt.Errorf("location %q invariant: %w", lm.Name, err)
			}
			invariant = perfdar.NewInvariant(expression)
		}
		if lm.Initial {
			locations[lm.Name] = perfdar.NewInitial(lm.Name, invariant)
		} else {
			locations[lm.Name] = perfdar.NewNormal(lm.Name, invariant)
		}
	}

	edges := make([]perfdar.Edge, 0, len(model.Edges))
	for _, em := range model.Edges {
		source, ok := locations[em.From]
		if !ok {
			return nil, fmt.Errorf("edge from %q: undeclared location", em.From)
		}
		target, ok := locations[em.To]
		if !ok {
			return nil, fmt.Errorf("edge to %q: undeclared location", em.To)
		}
		action, err := parseAction(em.Action)
		if err != nil {
			return nil, err
		}
		guard := perfdar.TrueGuard()
		if em.Guard != "" {
			expression, err := language.Parse(em.Guard)
			if err != nil {
				return nil, fmt.Errorf("edge %q -> %q guard: %w", em.From, em.To, err)
			}
			guard = perfdar.NewGuard(expression)
		}
		update := perfdar.NoUpdate()
		if em.Update != "" {
			statement, err := language.ParseStatement(em.Update)
			if err != nil {
				return nil, fmt.Errorf("edge %q -> %q update: %w", em.From, em.To, err)
			}
			update = perfdar.NewUpdate(statement)
		}
		edges = append(edges, perfdar.NewEdge(source, action, guard, update, target))
	}

	var options []perfdar.Option
	if model.Environment != nil {
		environment := language.NewEnvironment()
		for identifier, value := range model.Environment {
			environment.Insert(identifier, language.Bool(value))
		}
		options = append(options, perfdar.WithEnvironment(environment))
	}
	return perfdar.NewAutomaton(model.Name, edges, options...)
}

// Flush encodes the automaton back into its model form.
func (s *Service) Flush(w io.Writer, automaton *perfdar.Automaton) error {
	enc := yaml.NewEncoder(w)
	defer enc.Close()
	return enc.Encode(s.Model(automaton))
}

// Model turns an automaton into its on-disk shape. Environments are always
// emitted so that a round trip reconstructs the automaton strictly,
// including identifiers that were declared automatically.
func (s *Service) Model(automaton *perfdar.Automaton) *Model {
	model := &Model{Name: automaton.Name()}

	environment := automaton.Environment()
	if environment.Count() > 0 {
		model.Environment = make(map[string]bool, environment.Count())
		for _, identifier := range environment.Identifiers() {
			value, _ := environment.Get(identifier)
			if boolean, ok := value.(language.Bool); ok {
				model.Environment[identifier] = bool(boolean)
			}
		}
	}

	for _, location := range automaton.Locations() {
		lm := LocationModel{
			Name:    location.Name(),
			Initial: location.IsInitial(),
		}
		if invariant, ok := location.Invariant(); ok {
			if text := invariant.Expression.String(); text != "true" {
				lm.Invariant = text
			}
		}
		model.Locations = append(model.Locations, lm)
	}

	for _, edge := range automaton.Edges() {
		em := EdgeModel{
			From:   edge.Source.Name(),
			To:     edge.Target.Name(),
			Action: edge.Action.String(),
		}
		if text := edge.Guard.Expression.String(); text != "true" {
			em.Guard = text
		}
		if !edge.Update.IsEmpty() {
			em.Update = edge.Update.String()
		}
		model.Edges = append(model.Edges, em)
	}
	return model
}

func parseAction(action string) (perfdar.Channel, error) {
	name := strings.TrimSpace(action)
	if name == "" {
		return perfdar.Channel{}, fmt.Errorf("edge action is empty")
	}
	switch {
	case strings.HasSuffix(name, "!"):
		return perfdar.NewOutput(strings.TrimSuffix(name, "!")), nil
	case strings.HasSuffix(name, "?"):
		return perfdar.NewInput(strings.TrimSuffix(name, "?")), nil
	default:
		return perfdar.NewInput(name), nil
	}
}
