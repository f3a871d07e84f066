package lattice

import (
	"fmt"
	"io"
)

// Txt writes patterns in the same format the transaction graphs are read
// in, with the support appended to the header line.
type Txt struct{}

func (f *Txt) FileExt() string {
	return ".txt"
}

func (f *Txt) PatternName(p *Pattern) string {
	return string(p.Label())
}

func (f *Txt) FormatPattern(w io.Writer, p *Pattern) error {
	return p.G.Format(w, p.Id, p.Support)
}

type Dot struct{}

func (f *Dot) FileExt() string {
	return ".dot"
}

func (f *Dot) PatternName(p *Pattern) string {
	return string(p.Label())
}

func (f *Dot) FormatPattern(w io.Writer, p *Pattern) error {
	dot, err := p.G.Dot(fmt.Sprintf("pattern_%d", p.Id))
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "// %s support=%d\n%s\n\n", p.Label(), p.Support, dot)
	return err
}
