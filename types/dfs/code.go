package dfs

import (
	"fmt"
	"strings"
)

import (
	"github.com/timtadh/data-structures/errors"
)

import (
	"github.com/timtadh/gspan/types/graph"
)

// NoLabel marks a vertex whose label was set by an earlier step.
const NoLabel = -1

// Step is one edge of a DFS code. From and To index vertices of the pattern
// being built, not of any transaction graph.
type Step struct {
	From, To                   int
	FromLabel, ELabel, ToLabel int
}

// Forward steps introduce the vertex To. Backward steps close a cycle to an
// existing vertex.
func (s Step) Forward() bool {
	return s.From < s.To
}

func (s Step) String() string {
	return fmt.Sprintf("(%d,%d,%d,%d,%d)", s.From, s.To, s.FromLabel, s.ELabel, s.ToLabel)
}

// Code is a DFS code. During mining a single Code is used as a stack: a step
// is pushed before descending into a child and popped when the child
// returns. A Code is not safe for concurrent use.
type Code []Step

func NewCode() *Code {
	c := make(Code, 0, 32)
	return &c
}

func (c *Code) Push(s Step) {
	*c = append(*c, s)
}

func (c *Code) Pop() Step {
	if len(*c) == 0 {
		panic(errors.Errorf("pop on an empty dfs code"))
	}
	s := (*c)[len(*c)-1]
	*c = (*c)[:len(*c)-1]
	return s
}

func (c Code) Len() int {
	return len(c)
}

func (c Code) Last() Step {
	return c[len(c)-1]
}

// Copy returns a Code that does not share storage with c.
func (c Code) Copy() Code {
	cp := make(Code, len(c))
	copy(cp, c)
	return cp
}

// RightmostPath returns the indices of the forward steps on the path from
// the root to the most recently added vertex. The tip comes first.
func (c Code) RightmostPath() []int {
	path := make([]int, 0, len(c))
	oldFrom := -1
	for i := len(c) - 1; i >= 0; i-- {
		s := c[i]
		if s.Forward() && (len(path) == 0 || oldFrom == s.To) {
			path = append(path, i)
			oldFrom = s.From
		}
	}
	return path
}

// MinLabel is the label of the root vertex. Canonical codes never grow to
// vertices with a smaller label.
func (c Code) MinLabel() int {
	return c[0].FromLabel
}

// CountNodes is the number of vertices in the pattern.
func (c Code) CountNodes() int {
	count := 0
	for _, s := range c {
		count = max(count, max(s.From, s.To)+1)
	}
	return count
}

// ToGraph builds the pattern graph encoded by c.
func (c Code) ToGraph(id int, directed bool) *graph.Graph {
	g := graph.NewGraph(id, directed)
	for _, s := range c {
		g.Resize(max(s.From, s.To) + 1)
		if s.FromLabel != NoLabel {
			g.V[s.From].Label = s.FromLabel
		}
		if s.ToLabel != NoLabel {
			g.V[s.To].Label = s.ToLabel
		}
		if err := g.AddEdge(s.From, s.To, s.ELabel); err != nil {
			panic(err)
		}
	}
	return g
}

// Label is a compact text key for the code, eg. "0:1:2:0:3;1:2:-1:0:5".
func (c Code) Label() string {
	parts := make([]string, 0, len(c))
	for _, s := range c {
		parts = append(parts, fmt.Sprintf("%d:%d:%d:%d:%d", s.From, s.To, s.FromLabel, s.ELabel, s.ToLabel))
	}
	return strings.Join(parts, ";")
}

func (c Code) String() string {
	parts := make([]string, 0, len(c))
	for _, s := range c {
		parts = append(parts, s.String())
	}
	return "[" + strings.Join(parts, " ") + "]"
}
