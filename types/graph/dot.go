package graph

import (
	"strconv"
)

import (
	gonum "gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/encoding"
	"gonum.org/v1/gonum/graph/encoding/dot"
	"gonum.org/v1/gonum/graph/multi"
)

type dotNode struct {
	id    int64
	label int
}

func (n dotNode) ID() int64 {
	return n.id
}

func (n dotNode) DOTID() string {
	return strconv.FormatInt(n.id, 10)
}

func (n dotNode) Attributes() []encoding.Attribute {
	return []encoding.Attribute{{Key: "label", Value: strconv.Itoa(n.label)}}
}

type dotLine struct {
	id       int64
	from, to dotNode
	label    int
}

func (l dotLine) From() gonum.Node {
	return l.from
}

func (l dotLine) To() gonum.Node {
	return l.to
}

func (l dotLine) ReversedLine() gonum.Line {
	return dotLine{id: l.id, from: l.to, to: l.from, label: l.label}
}

func (l dotLine) ID() int64 {
	return l.id
}

func (l dotLine) Attributes() []encoding.Attribute {
	return []encoding.Attribute{{Key: "label", Value: strconv.Itoa(l.label)}}
}

type lineSetter interface {
	gonum.Multigraph
	AddNode(gonum.Node)
	SetLine(gonum.Line)
}

// Multigraph converts g into a gonum multigraph. Parallel edges survive the
// conversion, vertex and edge labels become "label" attributes.
func (g *Graph) Multigraph() gonum.Multigraph {
	var mg lineSetter
	if g.Directed {
		mg = multi.NewDirectedGraph()
	} else {
		mg = multi.NewUndirectedGraph()
	}
	nodes := make([]dotNode, len(g.V))
	for i := range g.V {
		nodes[i] = dotNode{id: int64(g.V[i].Id), label: g.V[i].Label}
		mg.AddNode(nodes[i])
	}
	for _, e := range g.Edges() {
		mg.SetLine(dotLine{
			id:    int64(e.Id),
			from:  nodes[e.From],
			to:    nodes[e.To],
			label: e.Label,
		})
	}
	return mg
}

// Dot renders the graph in the graphviz dot language.
func (g *Graph) Dot(name string) ([]byte, error) {
	return dot.MarshalMulti(g.Multigraph(), name, "", "  ")
}
