package gspan

import (
	"github.com/timtadh/gspan/types/graph"
)

// The functions in this file find the one edge extensions of a single
// embedding. Each appends its candidates to result (which is reused between
// calls) and returns it.

// forwardRoot finds the edges of v that can start a pattern. Only edges
// towards a label >= v's label are taken so each undirected edge starts a
// pattern from one side only (both sides when the labels are equal).
// Self loops never start a pattern, the root edge needs two vertices.
func forwardRoot(result []*graph.Edge, g *graph.Graph, v *graph.Vertex) []*graph.Edge {
	for i := range v.Edges {
		e := &v.Edges[i]
		if e.From != e.To && v.Label <= g.Label(e.To) {
			result = append(result, e)
		}
	}
	return result
}

// backward finds an unused edge leading from the rightmost vertex (e2.To)
// back to the source of e1, an edge on the rightmost path. It is only a
// legal extension when it is not smaller than e1, otherwise the same cycle
// has a smaller code which closes it from the other side.
func backward(g *graph.Graph, e1, e2 *graph.Edge, h *History) *graph.Edge {
	if e1 == e2 {
		return nil
	}
	tip := &g.V[e2.To]
	for i := range tip.Edges {
		e := &tip.Edges[i]
		if h.HasEdge(e) || e.To != e1.From {
			continue
		}
		if e1.Label < e.Label || (e1.Label == e.Label && g.Label(e1.To) <= g.Label(e2.To)) {
			return e
		}
	}
	return nil
}

// forwardPure finds the edges from the rightmost vertex (e.To) to vertices
// the embedding has not visited yet.
func forwardPure(result []*graph.Edge, g *graph.Graph, e *graph.Edge, minLabel int, h *History) []*graph.Edge {
	tip := &g.V[e.To]
	for i := range tip.Edges {
		next := &tip.Edges[i]
		if minLabel > g.Label(next.To) || h.HasVertex(next.To) {
			continue
		}
		result = append(result, next)
	}
	return result
}

// forwardRmPath finds the edges from e.From (a vertex on the rightmost
// path) to unvisited vertices which sort after e: a larger edge label, or
// the same edge label and a target label >= e's target label.
func forwardRmPath(result []*graph.Edge, g *graph.Graph, e *graph.Edge, minLabel int, h *History) []*graph.Edge {
	toLabel := g.Label(e.To)
	src := &g.V[e.From]
	for i := range src.Edges {
		next := &src.Edges[i]
		nextLabel := g.Label(next.To)
		if e.To == next.To || minLabel > nextLabel || h.HasVertex(next.To) {
			continue
		}
		if e.Label < next.Label || (e.Label == next.Label && toLabel <= nextLabel) {
			result = append(result, next)
		}
	}
	return result
}
