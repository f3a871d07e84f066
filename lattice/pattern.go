package lattice

import (
	"fmt"
)

import (
	"github.com/timtadh/gspan/types/dfs"
	"github.com/timtadh/gspan/types/graph"
)

// Pattern is one frequent subgraph as handed to a reporter. Code is the
// canonical dfs code, it is empty for single vertex patterns. Code is a
// private copy, reporters may keep the Pattern.
type Pattern struct {
	Id      int
	Support int
	Code    dfs.Code
	G       *graph.Graph
}

func NewPattern(id, support int, code dfs.Code, g *graph.Graph) *Pattern {
	return &Pattern{
		Id:      id,
		Support: support,
		Code:    code,
		G:       g,
	}
}

func (p *Pattern) Vertices() int {
	return len(p.G.V)
}

func (p *Pattern) Edges() int {
	return len(p.Code)
}

// Label identifies the isomorphism class of the pattern.
func (p *Pattern) Label() []byte {
	if len(p.Code) == 0 {
		return []byte(fmt.Sprintf("v:%d", p.G.V[0].Label))
	}
	return []byte(p.Code.Label())
}

func (p *Pattern) String() string {
	return fmt.Sprintf("<Pattern %d sup=%d v=%d e=%d %s>", p.Id, p.Support, p.Vertices(), p.Edges(), p.Label())
}
