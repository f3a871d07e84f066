package gspan

import (
	"github.com/tidwall/btree"
	"github.com/timtadh/data-structures/errors"
	"github.com/timtadh/data-structures/set"
	"github.com/timtadh/data-structures/types"
)

import (
	"github.com/timtadh/gspan/config"
	"github.com/timtadh/gspan/lattice"
	"github.com/timtadh/gspan/miners"
	"github.com/timtadh/gspan/stats"
	"github.com/timtadh/gspan/types/dfs"
	"github.com/timtadh/gspan/types/graph"
)

// Miner finds every frequent connected subgraph of a set of transaction
// graphs (gSpan). The search is a depth first traversal of the dfs code
// tree. One dfs code is shared by the whole traversal as a stack so a Miner
// must not be used from more than one goroutine.
type Miner struct {
	Config  *config.Config
	Metrics *stats.Metrics
	graphs  []*graph.Graph
	rptr    miners.Reporter
	arena   *Arena
	code    dfs.Code
	count   int
}

func NewMiner(conf *config.Config, metrics *stats.Metrics) *Miner {
	if metrics == nil {
		metrics = stats.NewMetrics()
	}
	return &Miner{
		Config:  conf,
		Metrics: metrics,
	}
}

// Count is the number of patterns reported so far.
func (m *Miner) Count() int {
	return m.count
}

func (m *Miner) Close() error {
	if m.rptr == nil {
		return nil
	}
	return m.rptr.Close()
}

// Mine reports the frequent patterns of graphs to rptr. Single vertex
// patterns come first (ascending label) followed by the edge patterns in
// the order the search finds them. An error from the reporter stops the
// search and is returned.
func (m *Miner) Mine(graphs []*graph.Graph, rptr miners.Reporter) error {
	if err := m.Config.Validate(); err != nil {
		return err
	}
	for _, g := range graphs {
		if g.Directed != m.Config.Directed {
			return errors.Errorf("graph %d has directed=%v but the miner is configured with directed=%v", g.Id, g.Directed, m.Config.Directed)
		}
	}
	m.graphs = graphs
	m.rptr = rptr
	m.arena = NewArena(1024)
	m.code = make(dfs.Code, 0, 32)
	m.count = 0

	errors.Logf("DEBUG", "mining %d graphs, support %d, vertices [%d, %d]",
		len(graphs), m.Config.Support, m.Config.MinVertices, m.Config.MaxVertices)

	if err := m.singleVertices(); err != nil {
		return err
	}
	roots := m.roots()
	errors.Logf("DEBUG", "%d single edge patterns", roots.Len())
	err := roots.each(m.descend)
	if err != nil {
		return err
	}
	errors.Logf("INFO", "found %d frequent patterns", m.count)
	return nil
}

// singleVertices reports every vertex label which occurs in at least
// support transactions. The support is the number of transactions, not the
// number of vertices.
func (m *Miner) singleVertices() error {
	if m.Config.MinVertices > 1 || !m.Config.Acceptable(1) {
		return nil
	}
	var counts btree.Map[int, int]
	for _, g := range m.graphs {
		seen := set.NewSortedSet(len(g.V))
		for i := range g.V {
			label := g.V[i].Label
			if seen.Has(types.Int(label)) {
				continue
			}
			add(seen, label)
			count, _ := counts.Get(label)
			counts.Set(label, count+1)
		}
	}
	var err error
	counts.Scan(func(label, sup int) bool {
		if sup < m.Config.Support {
			m.Metrics.Prune(stats.Infrequent)
			return true
		}
		g := graph.NewGraph(m.count, m.Config.Directed)
		g.AddVertex().Label = label
		err = m.report(lattice.NewPattern(m.count, sup, nil, g))
		return err == nil
	})
	return err
}

func (m *Miner) roots() *extensions {
	roots := newExtensions(rootLess)
	var edges []*graph.Edge
	for tx, g := range m.graphs {
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
				roots.add(step, m.arena.Add(tx, e, NoParent))
			}
		}
	}
	m.Metrics.Embeddings.Add(float64(m.arena.Len()))
	return roots
}

func (m *Miner) descend(ext *extension) error {
	m.code.Push(ext.step)
	err := m.project(ext.proj)
	m.code.Pop()
	return err
}

// project handles one node of the search tree: the pattern m.code with its
// embeddings proj.
func (m *Miner) project(proj *Projection) error {
	m.Metrics.Projected.Inc()
	m.Metrics.Depth(len(m.code))

	sup := m.support(proj)
	if sup < m.Config.Support {
		m.Metrics.Prune(stats.Infrequent)
		return nil
	}
	if !IsMin(m.code, m.Config.Directed) {
		m.Metrics.Prune(stats.NotMinimal)
		return nil
	}
	nodes := m.code.CountNodes()
	if m.Config.Acceptable(nodes) {
		code := m.code.Copy()
		p := lattice.NewPattern(m.count, sup, code, code.ToGraph(m.count, m.Config.Directed))
		if err := m.report(p); err != nil {
			return err
		}
	}
	// backward extensions add edges but no vertices, so equal to the bound
	// still has children.
	if m.Config.TooLarge(nodes) {
		m.Metrics.Prune(stats.TooLarge)
		return nil
	}

	mark := m.arena.Len()
	defer m.arena.Truncate(mark)
	bck, fwd := m.extend(proj)
	m.Metrics.Embeddings.Add(float64(m.arena.Len() - mark))

	err := bck.each(m.descend)
	if err != nil {
		return err
	}
	return fwd.each(m.descend)
}

// extend groups the one edge extensions of every embedding in proj.
func (m *Miner) extend(proj *Projection) (bck, fwd *extensions) {
	rmPath := m.code.RightmostPath()
	if len(rmPath) == 0 {
		panic(errors.Errorf("empty rightmost path for %v", m.code))
	}
	minLabel := m.code.MinLabel()
	maxToc := m.code[rmPath[0]].To

	bck = newExtensions(backwardLess)
	fwd = newExtensions(forwardLess)
	var edges []*graph.Edge
	for _, idx := range proj.Embs {
		tx := m.arena.Get(idx).Tx
		g := m.graphs[tx]
		h := BuildHistory(m.arena, idx)

		for i := len(rmPath) - 1; i >= 1; i-- {
			e := backward(g, h.Edges[rmPath[i]], h.Edges[rmPath[0]], h)
			if e == nil {
				continue
			}
			step := dfs.Step{
				From:      maxToc,
				To:        m.code[rmPath[i]].From,
				FromLabel: dfs.NoLabel,
				ELabel:    e.Label,
				ToLabel:   dfs.NoLabel,
			}
			bck.add(step, m.arena.Add(tx, e, idx))
		}

		edges = forwardPure(edges[:0], g, h.Edges[rmPath[0]], minLabel, h)
		for _, e := range edges {
			step := dfs.Step{
				From:      maxToc,
				To:        maxToc + 1,
				FromLabel: dfs.NoLabel,
				ELabel:    e.Label,
				ToLabel:   g.Label(e.To),
			}
			fwd.add(step, m.arena.Add(tx, e, idx))
		}

		for _, i := range rmPath {
			edges = forwardRmPath(edges[:0], g, h.Edges[i], minLabel, h)
			for _, e := range edges {
				step := dfs.Step{
					From:      m.code[i].From,
					To:        maxToc + 1,
					FromLabel: dfs.NoLabel,
					ELabel:    e.Label,
					ToLabel:   g.Label(e.To),
				}
				fwd.add(step, m.arena.Add(tx, e, idx))
			}
		}
	}
	return bck, fwd
}

// support is the number of distinct transactions proj has embeddings in.
func (m *Miner) support(proj *Projection) int {
	txs := set.NewSortedSet(10)
	for _, idx := range proj.Embs {
		tx := types.Int(m.arena.Get(idx).Tx)
		if !txs.Has(tx) {
			add(txs, int(tx))
		}
	}
	return txs.Size()
}

func (m *Miner) report(p *lattice.Pattern) error {
	m.count++
	m.Metrics.Reported.Inc()
	return m.rptr.Report(p)
}
