package gspan

import (
	"github.com/timtadh/data-structures/errors"
)

import (
	"github.com/timtadh/gspan/types/dfs"
	"github.com/timtadh/gspan/types/graph"
)

// IsMin reports whether code is the minimum dfs code of the pattern it
// builds. The pattern graph is rebuilt from the code and then grown again
// always taking the smallest legal extension. The code is minimal iff every
// step of this minimum code matches the step of code at the same position.
func IsMin(code dfs.Code, directed bool) bool {
	if len(code) == 0 {
		panic(errors.Errorf("IsMin of an empty dfs code"))
	}
	if len(code) == 1 {
		return true
	}
	g := code.ToGraph(0, directed)
	arena := NewArena(len(code) * 8)
	roots := newExtensions(rootLess)
	var edges []*graph.Edge
	for i := range g.V {
		v := &g.V[i]
		edges = forwardRoot(edges[:0], g, v)
		for _, e := range edges {
			step := dfs.Step{
				From:      0,
				To:        1,
				FromLabel: v.Label,
				ELabel:    e.Label,
				ToLabel:   g.Label(e.To),
			}
			roots.add(step, arena.Add(0, e, NoParent))
		}
	}
	first := roots.min()
	if first == nil {
		panic(errors.Errorf("pattern %v has no root edge", code))
	}
	if first.step != code[0] {
		return false
	}
	canon := make(dfs.Code, 0, len(code))
	canon.Push(first.step)
	proj := first.proj
	for len(canon) < len(code) {
		rmPath := canon.RightmostPath()
		hs := histories(arena, proj)
		next := minBackward(g, arena, canon, rmPath, proj, hs)
		if next == nil {
			next = minForward(g, arena, canon, rmPath, proj, hs)
		}
		if next == nil {
			break
		}
		canon.Push(next.step)
		if code[len(canon)-1] != next.step {
			return false
		}
		proj = next.proj
	}
	return true
}

func histories(arena *Arena, proj *Projection) []*History {
	hs := make([]*History, 0, len(proj.Embs))
	for _, idx := range proj.Embs {
		hs = append(hs, BuildHistory(arena, idx))
	}
	return hs
}

// minBackward finds the smallest backward extension of canon.
// The rightmost path is scanned from the root so the cycle closing furthest
// back wins.
func minBackward(g *graph.Graph, arena *Arena, canon dfs.Code, rmPath []int, proj *Projection, hs []*History) *extension {
	maxToc := canon[rmPath[0]].To
	backs := newExtensions(backwardLess)
	for i := len(rmPath) - 1; i >= 1 && backs.Len() == 0; i-- {
		for j, h := range hs {
			e := backward(g, h.Edges[rmPath[i]], h.Edges[rmPath[0]], h)
			if e == nil {
				continue
			}
			step := dfs.Step{
				From:      maxToc,
				To:        canon[rmPath[i]].From,
				FromLabel: dfs.NoLabel,
				ELabel:    e.Label,
				ToLabel:   dfs.NoLabel,
			}
			backs.add(step, arena.Add(0, e, proj.Embs[j]))
		}
	}
	return backs.min()
}

// minForward finds the smallest forward extension of canon.
// Growing from the rightmost vertex is preferred, then growing from the
// rightmost path starting at its deepest vertex.
func minForward(g *graph.Graph, arena *Arena, canon dfs.Code, rmPath []int, proj *Projection, hs []*History) *extension {
	minLabel := canon.MinLabel()
	maxToc := canon[rmPath[0]].To
	fwds := newExtensions(forwardLess)
	var edges []*graph.Edge
	for j, h := range hs {
		edges = forwardPure(edges[:0], g, h.Edges[rmPath[0]], minLabel, h)
		for _, e := range edges {
			step := dfs.Step{
				From:      maxToc,
				To:        maxToc + 1,
				FromLabel: dfs.NoLabel,
				ELabel:    e.Label,
				ToLabel:   g.Label(e.To),
			}
			fwds.add(step, arena.Add(0, e, proj.Embs[j]))
		}
	}
	for i := 0; i < len(rmPath) && fwds.Len() == 0; i++ {
		for j, h := range hs {
			edges = forwardRmPath(edges[:0], g, h.Edges[rmPath[i]], minLabel, h)
			for _, e := range edges {
				step := dfs.Step{
					From:      canon[rmPath[i]].From,
					To:        maxToc + 1,
					FromLabel: dfs.NoLabel,
					ELabel:    e.Label,
					ToLabel:   g.Label(e.To),
				}
				fwds.add(step, arena.Add(0, e, proj.Embs[j]))
			}
		}
	}
	return fwds.min()
}
