package graph

import (
	"github.com/timtadh/data-structures/errors"
)

// A Graph is one transaction in the database (or a pattern built from a
// DFS code). Once it has been loaded it is never mutated, the miner holds
// pointers into V and into each vertex's Edges for the whole run.
type Graph struct {
	Id       int
	Directed bool
	V        []Vertex
	edges    int
}

type Vertex struct {
	Id    int
	Label int
	Edges []Edge
}

// Edge ids are unique within the owning graph only. They are used for
// "already matched" checks and never for structural comparison.
type Edge struct {
	Id    int
	From  int
	To    int
	Label int
}

func NewGraph(id int, directed bool) *Graph {
	return &Graph{
		Id:       id,
		Directed: directed,
		V:        make([]Vertex, 0, 16),
	}
}

// AddVertex appends a vertex with the default label. The returned pointer
// is only valid until the next call to AddVertex or Resize.
func (g *Graph) AddVertex() *Vertex {
	g.V = append(g.V, Vertex{
		Id:    len(g.V),
		Edges: make([]Edge, 0, 8),
	})
	return &g.V[len(g.V)-1]
}

func (g *Graph) Resize(size int) {
	for len(g.V) < size {
		g.AddVertex()
	}
}

func (g *Graph) HasVertex(id int) bool {
	return id >= 0 && id < len(g.V)
}

// AddEdge adds the edge from -> to. Undirected graphs also get the mirror
// edge to -> from (with its own id).
func (g *Graph) AddEdge(from, to, label int) error {
	if !g.HasVertex(from) {
		return errors.Errorf("graph %d: unknown from vertex %d", g.Id, from)
	}
	if !g.HasVertex(to) {
		return errors.Errorf("graph %d: unknown to vertex %d", g.Id, to)
	}
	g.V[from].push(g.nextEdgeId(), to, label)
	if !g.Directed {
		g.V[to].push(g.nextEdgeId(), from, label)
	}
	return nil
}

func (g *Graph) nextEdgeId() int {
	id := g.edges
	g.edges++
	return id
}

// EdgeCount is the number of edges stored in the adjacency lists (mirrored
// edges are counted twice).
func (g *Graph) EdgeCount() int {
	return g.edges
}

// Edges returns every edge once. For undirected graphs the mirror copy
// (From > To) is skipped.
func (g *Graph) Edges() []*Edge {
	edges := make([]*Edge, 0, g.edges)
	for i := range g.V {
		for j := range g.V[i].Edges {
			e := &g.V[i].Edges[j]
			if g.Directed || e.From <= e.To {
				edges = append(edges, e)
			}
		}
	}
	return edges
}

func (g *Graph) Label(v int) int {
	return g.V[v].Label
}

func (v *Vertex) push(id, to, label int) {
	v.Edges = append(v.Edges, Edge{
		Id:    id,
		From:  v.Id,
		To:    to,
		Label: label,
	})
}

func (v *Vertex) Equals(o *Vertex) bool {
	return v.Label == o.Label
}

func (e *Edge) Equals(o *Edge) bool {
	return e.From == o.From && e.To == o.To && e.Label == o.Label
}
