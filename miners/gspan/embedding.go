package gspan

import (
	"github.com/timtadh/data-structures/errors"
	"github.com/timtadh/data-structures/set"
	"github.com/timtadh/data-structures/types"
)

import (
	"github.com/timtadh/gspan/types/graph"
)

// NoParent is the parent of an embedding of a single edge pattern.
const NoParent = -1

// Embedding is the last edge of one occurrence of a pattern in transaction
// Tx. The rest of the occurrence is found by following Parent through the
// arena, so the chain is as long as the pattern's dfs code.
type Embedding struct {
	Tx     int
	Edge   *graph.Edge
	Parent int
}

// Arena owns every embedding of a mining run. Embeddings refer to each
// other by index. The search only ever needs the embeddings on the current
// path of the search tree, so the arena is used as a stack: Truncate drops
// everything added after a mark.
type Arena struct {
	embs []Embedding
}

func NewArena(capacity int) *Arena {
	return &Arena{
		embs: make([]Embedding, 0, capacity),
	}
}

func (a *Arena) Add(tx int, e *graph.Edge, parent int) int {
	a.embs = append(a.embs, Embedding{
		Tx:     tx,
		Edge:   e,
		Parent: parent,
	})
	return len(a.embs) - 1
}

// Get returns the embedding at idx. The pointer is invalidated by the next
// Add.
func (a *Arena) Get(idx int) *Embedding {
	return &a.embs[idx]
}

func (a *Arena) Len() int {
	return len(a.embs)
}

func (a *Arena) Truncate(mark int) {
	if mark > len(a.embs) || mark < 0 {
		panic(errors.Errorf("truncate arena to %d but it has %d embeddings", mark, len(a.embs)))
	}
	a.embs = a.embs[:mark]
}

// Projection groups the embeddings (arena indices) of one pattern.
type Projection struct {
	Embs []int
}

func (p *Projection) push(idx int) {
	p.Embs = append(p.Embs, idx)
}

func (p *Projection) Len() int {
	return len(p.Embs)
}

// History is the flattened form of one embedding: its edges in dfs code
// order plus the transaction edges and vertices it has already matched.
type History struct {
	Edges    []*graph.Edge
	edges    *set.SortedSet
	vertices *set.SortedSet
}

func BuildHistory(a *Arena, idx int) *History {
	h := &History{
		Edges:    make([]*graph.Edge, 0, 16),
		edges:    set.NewSortedSet(16),
		vertices: set.NewSortedSet(16),
	}
	for i := idx; i != NoParent; i = a.embs[i].Parent {
		e := a.embs[i].Edge
		h.Edges = append(h.Edges, e)
		add(h.edges, e.Id)
		add(h.vertices, e.From)
		add(h.vertices, e.To)
	}
	for i, j := 0, len(h.Edges)-1; i < j; i, j = i+1, j-1 {
		h.Edges[i], h.Edges[j] = h.Edges[j], h.Edges[i]
	}
	return h
}

func (h *History) HasEdge(e *graph.Edge) bool {
	return h.edges.Has(types.Int(e.Id))
}

func (h *History) HasVertex(v int) bool {
	return h.vertices.Has(types.Int(v))
}

func add(s *set.SortedSet, item int) {
	if err := s.Add(types.Int(item)); err != nil {
		panic(err)
	}
}
