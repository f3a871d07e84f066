package dfs

import "testing"
import "github.com/stretchr/testify/assert"

func TestPushPop(t *testing.T) {
	x := assert.New(t)
	c := NewCode()
	c.Push(Step{0, 1, 2, 0, 3})
	c.Push(Step{1, 2, NoLabel, 0, 5})
	x.Equal(2, c.Len())
	x.Equal(Step{1, 2, NoLabel, 0, 5}, c.Last())
	x.Equal(Step{1, 2, NoLabel, 0, 5}, c.Pop())
	x.Equal(1, c.Len())
	c.Pop()
	x.Panics(func() {
		c.Pop()
	})
}

func TestRightmostPath(t *testing.T) {
	x := assert.New(t)
	c := Code{
		{0, 1, 0, 0, 0},
		{1, 2, NoLabel, 0, 0},
		{2, 0, NoLabel, 0, NoLabel},
		{1, 3, NoLabel, 0, 1},
	}
	x.Equal([]int{3, 0}, c.RightmostPath())
	c = append(c, Step{3, 4, NoLabel, 1, 1})
	x.Equal([]int{4, 3, 0}, c.RightmostPath())
	x.Equal([]int{0}, c[:1].RightmostPath())
}

func TestCountNodes(t *testing.T) {
	x := assert.New(t)
	c := Code{
		{0, 1, 3, 0, 4},
		{1, 2, NoLabel, 0, 5},
		{2, 0, NoLabel, 1, NoLabel},
	}
	x.Equal(3, c.CountNodes())
	x.Equal(3, c.MinLabel())
	x.False(c[2].Forward())
	x.True(c[1].Forward())
}

func TestToGraph(t *testing.T) {
	x := assert.New(t)
	c := Code{
		{0, 1, 3, 0, 4},
		{1, 2, NoLabel, 1, 5},
		{2, 0, NoLabel, 2, NoLabel},
	}
	g := c.ToGraph(7, false)
	x.Equal(7, g.Id)
	x.Len(g.V, 3)
	x.Equal(3, g.Label(0))
	x.Equal(4, g.Label(1))
	x.Equal(5, g.Label(2))
	x.Equal(6, g.EdgeCount())
	x.Len(g.Edges(), 3)

	d := c.ToGraph(7, true)
	x.Equal(3, d.EdgeCount())
	x.Equal(0, d.V[2].Edges[0].To)
}

func TestCopyAndLabel(t *testing.T) {
	x := assert.New(t)
	c := Code{{0, 1, 2, 0, 3}, {1, 2, NoLabel, 0, 5}}
	cp := c.Copy()
	cp[0].ELabel = 9
	x.Equal(0, c[0].ELabel)
	x.Equal("0:1:2:0:3;1:2:-1:0:5", c.Label())
	x.Equal("[(0,1,2,0,3) (1,2,-1,0,5)]", c.String())
}
