package cmd

import "testing"
import "github.com/stretchr/testify/assert"

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
)

import (
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

import (
	"github.com/timtadh/gspan/config"
	"github.com/timtadh/gspan/miners/reporters"
)

const db = "t # 0\nv 0 1\nv 1 2\ne 0 1 0\n"

func writeAll(t *testing.T, dir string) {
	err := ioutil.WriteFile(filepath.Join(dir, "a.txt"), []byte(db), 0644)
	if err != nil {
		t.Fatal(err)
	}

	gf, err := os.Create(filepath.Join(dir, "b.txt.gz"))
	if err != nil {
		t.Fatal(err)
	}
	gw := gzip.NewWriter(gf)
	gw.Write([]byte("t # 1\nv 0 3\n"))
	gw.Close()
	gf.Close()

	zf, err := os.Create(filepath.Join(dir, "c.txt.zst"))
	if err != nil {
		t.Fatal(err)
	}
	zw, err := zstd.NewWriter(zf)
	if err != nil {
		t.Fatal(err)
	}
	zw.Write([]byte("t # 2\nv 0 4\n"))
	zw.Close()
	zf.Close()
}

func TestLoad(t *testing.T) {
	x := assert.New(t)
	dir, err := ioutil.TempDir("", "gspan-cmd")
	x.Nil(err)
	defer os.RemoveAll(dir)
	writeAll(t, dir)

	for name, label := range map[string]int{"a.txt": 1, "b.txt.gz": 3, "c.txt.zst": 4} {
		graphs, err := Load(filepath.Join(dir, name), false)
		x.Nil(err, name)
		if x.Len(graphs, 1, name) {
			x.Equal(label, graphs[0].Label(0), name)
		}
	}

	graphs, err := Load(dir, false)
	x.Nil(err)
	x.Len(graphs, 3)

	_, err = Load(filepath.Join(dir, "missing"), false)
	x.NotNil(err)
}

func TestLoadDirTerminatorPerFile(t *testing.T) {
	x := assert.New(t)
	dir, err := ioutil.TempDir("", "gspan-cmd")
	x.Nil(err)
	defer os.RemoveAll(dir)
	x.Nil(ioutil.WriteFile(filepath.Join(dir, "a.txt"), []byte("t # 0\nv 0 1\nt # -1\nt # 9\nv 0 9\n"), 0644))
	x.Nil(ioutil.WriteFile(filepath.Join(dir, "b.txt"), []byte("t # 1\nv 0 2\n"), 0644))

	paths, err := InputPaths(dir)
	x.Nil(err)
	x.Equal([]string{filepath.Join(dir, "a.txt"), filepath.Join(dir, "b.txt")}, paths)

	graphs, err := Load(dir, false)
	x.Nil(err)
	if x.Len(graphs, 2) {
		x.Equal(0, graphs[0].Id)
		x.Equal(1, graphs[1].Id)
		x.Equal(2, graphs[1].Label(0))
	}
}

func TestLoadErrorsNameFile(t *testing.T) {
	x := assert.New(t)
	dir, err := ioutil.TempDir("", "gspan-cmd")
	x.Nil(err)
	defer os.RemoveAll(dir)
	x.Nil(ioutil.WriteFile(filepath.Join(dir, "a.txt"), []byte("t # 0\nv 0 1\n"), 0644))
	x.Nil(ioutil.WriteFile(filepath.Join(dir, "b.txt"), []byte("t # 1\nv 3 2\n"), 0644))

	graphs, err := Load(dir, false)
	x.Nil(graphs)
	if x.NotNil(err) {
		x.True(strings.Contains(err.Error(), "b.txt"), err.Error())
	}
}

func TestParseReporter(t *testing.T) {
	x := assert.New(t)
	dir, err := ioutil.TempDir("", "gspan-cmd")
	x.Nil(err)
	defer os.RemoveAll(dir)
	conf := config.Default()
	conf.Output = dir

	rptr, args := ParseReporter(nil, Formatter("txt"), conf)
	chain, ok := rptr.(*reporters.Chain)
	if x.True(ok) {
		x.Len(chain.Reporters, 2)
	}
	x.Len(args, 0)
	x.Nil(rptr.Close())

	rptr, args = ParseReporter([]string{"chain", "log", "-p", "found", "unique", "skip", "-n", "2", "file", "endchain", "extra"}, Formatter("dot"), conf)
	chain, ok = rptr.(*reporters.Chain)
	if x.True(ok) {
		x.Len(chain.Reporters, 2)
		_, ok = chain.Reporters[1].(*reporters.Unique)
		x.True(ok)
	}
	x.Equal([]string{"extra"}, args)
	x.Nil(rptr.Close())
	_, err = os.Stat(filepath.Join(dir, "patterns.dot"))
	x.Nil(err)
}
