package miners

import (
	"github.com/timtadh/gspan/lattice"
	"github.com/timtadh/gspan/types/graph"
)

// Note: the miner's Close function should close the reporter that was passed
// into Mine.
type Miner interface {
	Mine([]*graph.Graph, Reporter) error
	Close() error
}

type Reporter interface {
	Report(*lattice.Pattern) error
	Close() error
}
