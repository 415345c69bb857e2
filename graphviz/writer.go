// Package graphviz renders automata as graphviz documents: locations
// become nodes, edges become labelled arrows.
package graphviz

import (
	"fmt"
	"io"
	"strings"

	"github.com/goccy/go-graphviz"
	"github.com/goccy/go-graphviz/cgraph"

	"github.com/Brandhoej/perfdar"
)

var _ perfdar.Flusher[*perfdar.Automaton] = (*Writer)(nil)

type Writer struct {
	*Config
	g       *cgraph.Graph
	mapping map[string]*cgraph.Node
}

func (w *Writer) writeLocation(i int, location perfdar.Location) error {
	name := fmt.Sprintf("l%d", i)
	node, err := w.g.CreateNode(name)
	if err != nil {
		return err
	}
	switch location.Kind() {
	case perfdar.InitialLocation:
		node.SetShape(cgraph.DoubleCircleShape)
	case perfdar.InconsistentLocation:
		node.SetShape(cgraph.OctagonShape)
	case perfdar.UniversalLocation:
		node.SetShape(cgraph.DiamondShape)
	default:
		node.SetShape(cgraph.CircleShape)
	}
	node.SetLabel(locationLabel(location))
	node.Set("fontname", string(w.Font))
	w.mapping[location.Key()] = node
	return nil
}

func (w *Writer) writeEdge(i int, edge perfdar.Edge) error {
	src := w.mapping[edge.Source.Key()]
	dst := w.mapping[edge.Target.Key()]
	name := fmt.Sprintf("e%d", i)
	e, err := w.g.CreateEdge(name, src, dst)
	if err != nil {
		return err
	}
	e.SetLabel(edgeLabel(edge))
	e.Set("fontname", string(w.Font))
	return nil
}

func (w *Writer) Flush(out io.Writer, automaton *perfdar.Automaton) error {
	graph := graphviz.New()
	defer func() {
		_ = graph.Close()
	}()
	g, err := graph.Graph()
	if err != nil {
		return err
	}
	g.SetRankDir(cgraph.RankDir(w.RankDir))
	w.g = g
	for i, location := range automaton.Locations() {
		if err := w.writeLocation(i, location); err != nil {
			return err
		}
	}
	for i, edge := range automaton.Edges() {
		if err := w.writeEdge(i, edge); err != nil {
			return err
		}
	}
	if err := graph.Render(w.g, graphviz.XDOT, out); err != nil {
		return err
	}
	return nil
}

// locationLabel keeps the node readable: the invariant is shown only when
// it says something.
func locationLabel(location perfdar.Location) string {
	if invariant, ok := location.Invariant(); ok {
		if text := invariant.Expression.String(); text != "true" {
			return fmt.Sprintf("%s\n%s", location.Name(), text)
		}
	}
	return location.Name()
}

func edgeLabel(edge perfdar.Edge) string {
	parts := []string{edge.Action.String()}
	if text := edge.Guard.Expression.String(); text != "true" {
		parts = append(parts, text)
	}
	if !edge.Update.IsEmpty() {
		parts = append(parts, edge.Update.String())
	}
	return strings.Join(parts, "\n")
}

type Font string

func (f Font) Or(other Font) Font {
	return f + "," + other
}

const (
	Helvetica  Font = "Helvetica"
	Arial      Font = "Arial"
	Roboto     Font = "Roboto"
	Montserrat Font = "Montserrat"
	SansSerif  Font = "sans-serif"
	Serif      Font = "Serif"
	Times      Font = "Times"
)

type RankDir string

const (
	LeftToRight RankDir = "LR"
	RightToLeft RankDir = "RL"
	TopToBottom RankDir = "TB"
	BottomToTop RankDir = "BT"
)

type Config struct {
	Name string
	Font
	RankDir
}

func New(config *Config) *Writer {
	if config.Name == "" {
		config.Name = "perfdar"
	}
	return &Writer{
		Config:  config,
		mapping: make(map[string]*cgraph.Node),
	}
}
