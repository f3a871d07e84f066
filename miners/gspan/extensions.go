package gspan

import (
	"github.com/tidwall/btree"
)

import (
	"github.com/timtadh/gspan/types/dfs"
)

// extension is one child of a node in the search tree: the step that grows
// the parent's code and the embeddings of the grown pattern.
type extension struct {
	step dfs.Step
	proj *Projection
}

// extensions keeps the children of a search tree node ordered by their
// step. The iteration order decides which code of a pattern is seen first,
// so it must follow the canonical order exactly.
type extensions struct {
	tree *btree.BTreeG[*extension]
}

func newExtensions(less func(a, b dfs.Step) bool) *extensions {
	return &extensions{
		tree: btree.NewBTreeGOptions(
			func(a, b *extension) bool {
				return less(a.step, b.step)
			},
			btree.Options{NoLocks: true},
		),
	}
}

func (x *extensions) add(step dfs.Step, idx int) {
	key := &extension{step: step}
	if ext, has := x.tree.Get(key); has {
		ext.proj.push(idx)
		return
	}
	key.proj = &Projection{Embs: make([]int, 0, 10)}
	key.proj.push(idx)
	x.tree.Set(key)
}

func (x *extensions) Len() int {
	return x.tree.Len()
}

func (x *extensions) min() *extension {
	ext, has := x.tree.Min()
	if !has {
		return nil
	}
	return ext
}

// each visits the extensions in order and stops at the first error.
func (x *extensions) each(do func(*extension) error) (err error) {
	x.tree.Scan(func(ext *extension) bool {
		err = do(ext)
		return err == nil
	})
	return err
}

// rootLess orders single edge patterns by (from label, edge label, to
// label).
func rootLess(a, b dfs.Step) bool {
	if a.FromLabel != b.FromLabel {
		return a.FromLabel < b.FromLabel
	}
	if a.ELabel != b.ELabel {
		return a.ELabel < b.ELabel
	}
	return a.ToLabel < b.ToLabel
}

// backwardLess orders backward steps (which all leave the rightmost vertex)
// by (to, edge label).
func backwardLess(a, b dfs.Step) bool {
	if a.To != b.To {
		return a.To < b.To
	}
	return a.ELabel < b.ELabel
}

// forwardLess orders forward steps by from DESCENDING then (edge label, to
// label). Extensions deeper on the rightmost path come first.
func forwardLess(a, b dfs.Step) bool {
	if a.From != b.From {
		return a.From > b.From
	}
	if a.ELabel != b.ELabel {
		return a.ELabel < b.ELabel
	}
	return a.ToLabel < b.ToLabel
}
