package reporters

import (
	"io"
	"strconv"
)

import (
	"github.com/olekukonko/tablewriter"
	"github.com/tidwall/btree"
)

import (
	"github.com/timtadh/gspan/lattice"
)

type summaryKey struct {
	vertices, edges int
}

type summaryRow struct {
	summaryKey
	count      int
	minSupport int
	maxSupport int
}

// Summary counts the patterns by size and renders the counts as a table
// when it is closed.
type Summary struct {
	out  io.Writer
	rows *btree.BTreeG[*summaryRow]
}

func NewSummary(out io.Writer) *Summary {
	return &Summary{
		out: out,
		rows: btree.NewBTreeG(func(a, b *summaryRow) bool {
			if a.vertices != b.vertices {
				return a.vertices < b.vertices
			}
			return a.edges < b.edges
		}),
	}
}

func (s *Summary) Report(p *lattice.Pattern) error {
	key := &summaryRow{summaryKey: summaryKey{p.Vertices(), p.Edges()}}
	row, has := s.rows.Get(key)
	if !has {
		row = key
		row.minSupport = p.Support
		row.maxSupport = p.Support
		s.rows.Set(row)
	}
	row.count++
	row.minSupport = min(row.minSupport, p.Support)
	row.maxSupport = max(row.maxSupport, p.Support)
	return nil
}

func (s *Summary) Close() error {
	table := tablewriter.NewWriter(s.out)
	table.SetHeader([]string{"vertices", "edges", "patterns", "min support", "max support"})
	total := 0
	s.rows.Scan(func(row *summaryRow) bool {
		total += row.count
		table.Append([]string{
			strconv.Itoa(row.vertices),
			strconv.Itoa(row.edges),
			strconv.Itoa(row.count),
			strconv.Itoa(row.minSupport),
			strconv.Itoa(row.maxSupport),
		})
		return true
	})
	table.SetFooter([]string{"", "total", strconv.Itoa(total), "", ""})
	table.Render()
	return nil
}
