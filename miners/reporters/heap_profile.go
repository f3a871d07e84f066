package reporters

import (
	"io"
	"os"
	"runtime/pprof"
)

import (
	"github.com/timtadh/gspan/lattice"
)

// HeapProfile writes a heap profile after the first `after` patterns and
// then every `every` patterns.
type HeapProfile struct {
	f     io.WriteCloser
	after int
	every int
	count int
}

func NewHeapProfile(path string, after, every int) (*HeapProfile, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	if every < 1 {
		every = 1
	}
	hp := &HeapProfile{f: f, after: after, every: every}
	return hp, nil
}

func (hp *HeapProfile) Report(p *lattice.Pattern) error {
	hp.count++
	if hp.count <= hp.after || (hp.count-hp.after)%hp.every != 0 {
		return nil
	}
	return pprof.WriteHeapProfile(hp.f)
}

func (hp *HeapProfile) Close() error {
	return hp.f.Close()
}
