package reporters

import (
	"bufio"
	"fmt"
	"os"
)

import (
	"github.com/timtadh/gspan/config"
	"github.com/timtadh/gspan/lattice"
)

// File writes every pattern to <output>/<patterns><ext> and its name to
// <output>/<names>, one per line.
type File struct {
	config   *config.Config
	fmt      lattice.Formatter
	patterns *os.File
	names    *os.File
	pbuf     *bufio.Writer
	nbuf     *bufio.Writer
}

func NewFile(c *config.Config, fmtr lattice.Formatter, patternsFilename, namesFilename string) (*File, error) {
	patterns, err := os.Create(c.OutputFile(patternsFilename + fmtr.FileExt()))
	if err != nil {
		return nil, err
	}
	names, err := os.Create(c.OutputFile(namesFilename))
	if err != nil {
		patterns.Close()
		return nil, err
	}
	r := &File{
		config:   c,
		fmt:      fmtr,
		patterns: patterns,
		names:    names,
		pbuf:     bufio.NewWriter(patterns),
		nbuf:     bufio.NewWriter(names),
	}
	return r, nil
}

func (r *File) Report(p *lattice.Pattern) error {
	err := r.fmt.FormatPattern(r.pbuf, p)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(r.nbuf, "%d %d %s\n", p.Id, p.Support, r.fmt.PatternName(p))
	return err
}

func (r *File) Close() error {
	for _, b := range []*bufio.Writer{r.pbuf, r.nbuf} {
		if err := b.Flush(); err != nil {
			return err
		}
	}
	err := r.patterns.Close()
	if err != nil {
		return err
	}
	return r.names.Close()
}
