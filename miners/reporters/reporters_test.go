package reporters

import "testing"
import "github.com/stretchr/testify/assert"

import (
	"bytes"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
)

import (
	"github.com/timtadh/data-structures/errors"
)

import (
	"github.com/timtadh/gspan/config"
	"github.com/timtadh/gspan/lattice"
	"github.com/timtadh/gspan/miners"
	"github.com/timtadh/gspan/types/dfs"
	"github.com/timtadh/gspan/types/graph"
)

func edgePattern(id, support int) *lattice.Pattern {
	code := dfs.Code{{From: 0, To: 1, FromLabel: 0, ELabel: 2, ToLabel: 1}}
	return lattice.NewPattern(id, support, code, code.ToGraph(id, false))
}

func vertexPattern(id, support, label int) *lattice.Pattern {
	g := graph.NewGraph(id, false)
	g.AddVertex().Label = label
	return lattice.NewPattern(id, support, nil, g)
}

func tmpConfig(t *testing.T) (*config.Config, func()) {
	dir, err := ioutil.TempDir("", "gspan-reporters")
	if err != nil {
		t.Fatal(err)
	}
	c := config.Default()
	c.Output = dir
	return c, func() { os.RemoveAll(dir) }
}

type failing struct {
	closed bool
}

func (f *failing) Report(*lattice.Pattern) error {
	return errors.Errorf("failing reporter")
}

func (f *failing) Close() error {
	f.closed = true
	return errors.Errorf("failing close")
}

func TestChain(t *testing.T) {
	x := assert.New(t)
	a := &Collector{}
	b := &Collector{}
	var chain miners.Reporter = &Chain{[]miners.Reporter{a, b}}
	x.Nil(chain.Report(edgePattern(0, 2)))
	x.Len(a.Patterns, 1)
	x.Len(b.Patterns, 1)

	f := &failing{}
	c := &Collector{}
	chain = &Chain{[]miners.Reporter{f, c}}
	x.NotNil(chain.Report(edgePattern(0, 2)))
	x.Len(c.Patterns, 0)
	x.NotNil(chain.Close())
	x.True(f.closed)
}

func TestSkip(t *testing.T) {
	x := assert.New(t)
	c := &Collector{}
	s := NewSkip(2, c)
	for i := 0; i < 5; i++ {
		x.Nil(s.Report(vertexPattern(i, 1, i)))
	}
	x.Len(c.Patterns, 2)
	x.Equal(1, c.Patterns[0].Id)
	x.Equal(3, c.Patterns[1].Id)
}

func TestUnique(t *testing.T) {
	x := assert.New(t)
	c := &Collector{}
	u := NewUnique(c)
	x.Nil(u.Report(edgePattern(0, 2)))
	x.Nil(u.Report(edgePattern(1, 3)))
	x.Nil(u.Report(vertexPattern(2, 2, 0)))
	x.Nil(u.Report(vertexPattern(3, 2, 0)))
	x.Len(c.Patterns, 2)
	x.Nil(u.Close())
}

func TestLog(t *testing.T) {
	x := assert.New(t)
	l := NewLog("", "pattern")
	x.Equal("INFO", l.level)
	x.Nil(l.Report(edgePattern(0, 2)))
	x.Equal(1, l.count)
	x.Nil(l.Close())
}

func TestFile(t *testing.T) {
	x := assert.New(t)
	c, clean := tmpConfig(t)
	defer clean()
	f, err := NewFile(c, &lattice.Txt{}, "patterns", "names.txt")
	x.Nil(err)
	x.Nil(f.Report(vertexPattern(0, 2, 0)))
	x.Nil(f.Report(edgePattern(1, 2)))
	x.Nil(f.Close())

	patterns, err := ioutil.ReadFile(filepath.Join(c.Output, "patterns.txt"))
	x.Nil(err)
	x.Equal("t # 0 * 2\nv 0 0\nt # 1 * 2\nv 0 0\nv 1 1\ne 0 1 2\n", string(patterns))

	names, err := ioutil.ReadFile(filepath.Join(c.Output, "names.txt"))
	x.Nil(err)
	x.Equal("0 2 v:0\n1 2 0:1:0:2:1\n", string(names))
}

func TestDir(t *testing.T) {
	x := assert.New(t)
	c, clean := tmpConfig(t)
	defer clean()
	d, err := NewDir(c, &lattice.Dot{}, "patterns")
	x.Nil(err)
	x.Nil(d.Report(edgePattern(0, 4)))
	x.Nil(d.Close())

	root := filepath.Join(c.Output, "patterns")
	count, err := ioutil.ReadFile(filepath.Join(root, "count"))
	x.Nil(err)
	x.Equal("1\n", string(count))
	support, err := ioutil.ReadFile(filepath.Join(root, "0", "support"))
	x.Nil(err)
	x.Equal("4\n", string(support))
	dot, err := ioutil.ReadFile(filepath.Join(root, "0", "pattern.dot"))
	x.Nil(err)
	x.True(strings.Contains(string(dot), "graph pattern_0 {"), string(dot))
}

func TestHeapProfile(t *testing.T) {
	x := assert.New(t)
	c, clean := tmpConfig(t)
	defer clean()
	path := c.OutputFile("heap.pprof")
	hp, err := NewHeapProfile(path, 1, 2)
	x.Nil(err)
	for i := 0; i < 4; i++ {
		x.Nil(hp.Report(vertexPattern(i, 1, 0)))
	}
	x.Nil(hp.Close())
	info, err := os.Stat(path)
	x.Nil(err)
	x.True(info.Size() > 0)
}

func TestSummary(t *testing.T) {
	x := assert.New(t)
	var buf bytes.Buffer
	s := NewSummary(&buf)
	x.Nil(s.Report(vertexPattern(0, 3, 0)))
	x.Nil(s.Report(vertexPattern(1, 5, 1)))
	x.Nil(s.Report(edgePattern(2, 2)))
	x.Nil(s.Close())
	out := buf.String()
	x.True(strings.Contains(out, "VERTICES"), out)
	x.True(strings.Contains(out, "TOTAL"), out)
	lines := strings.Split(out, "\n")
	var first string
	for _, line := range lines {
		if strings.HasPrefix(line, "|") && strings.Contains(line, " 1 ") {
			first = line
			break
		}
	}
	x.True(strings.Contains(first, "2"), out)
	x.True(strings.Contains(first, "3"), out)
	x.True(strings.Contains(first, "5"), out)
}
