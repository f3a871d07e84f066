package main

import "testing"
import "github.com/stretchr/testify/assert"

import (
	"bytes"
	"strings"
)

import (
	"github.com/timtadh/gspan/types/graph"
)

const graphs = `
t # 0
v 0 1
v 1 2
e 0 1 3
t # 1
v 0 4
`

func load(t *testing.T, directed bool) []*graph.Graph {
	gs, err := graph.NewLoader(directed).Load(strings.NewReader(graphs))
	if err != nil {
		t.Fatal(err)
	}
	return gs
}

func TestConvert(t *testing.T) {
	x := assert.New(t)
	var out bytes.Buffer
	x.Nil(convert(load(t, false), &out, -1))
	s := out.String()
	x.True(strings.Contains(s, "graph graph_0 {"), s)
	x.True(strings.Contains(s, "graph graph_1 {"), s)
	x.True(strings.Contains(s, "0 -- 1"), s)

	out.Reset()
	x.Nil(convert(load(t, true), &out, 1))
	s = out.String()
	x.False(strings.Contains(s, "graph_0"), s)
	x.True(strings.Contains(s, "digraph graph_1 {"), s)

	x.NotNil(convert(load(t, false), &out, 7))
}
