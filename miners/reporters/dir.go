package reporters

import (
	"fmt"
	"os"
	"path/filepath"
)

import (
	"github.com/timtadh/gspan/config"
	"github.com/timtadh/gspan/lattice"
)

// Dir writes each pattern into its own numbered directory:
//
//	<dir>/<n>/pattern.name
//	<dir>/<n>/pattern<ext>
//	<dir>/<n>/support
//	<dir>/count
type Dir struct {
	config *config.Config
	fmt    lattice.Formatter
	dir    string
	count  int
}

func NewDir(c *config.Config, fmtr lattice.Formatter, dirname string) (*Dir, error) {
	patterns := c.OutputFile(dirname)
	err := os.MkdirAll(patterns, 0775)
	if err != nil {
		return nil, err
	}
	r := &Dir{
		config: c,
		fmt:    fmtr,
		dir:    patterns,
	}
	return r, nil
}

func (r *Dir) Report(p *lattice.Pattern) error {
	dir := filepath.Join(r.dir, fmt.Sprintf("%d", r.count))
	err := os.MkdirAll(dir, 0775)
	if err != nil {
		return err
	}
	r.count++
	err = writeFile(filepath.Join(dir, "pattern.name"), func(f *os.File) error {
		_, err := fmt.Fprintf(f, "%s\n", r.fmt.PatternName(p))
		return err
	})
	if err != nil {
		return err
	}
	err = writeFile(filepath.Join(dir, "pattern"+r.fmt.FileExt()), func(f *os.File) error {
		return r.fmt.FormatPattern(f, p)
	})
	if err != nil {
		return err
	}
	return writeFile(filepath.Join(dir, "support"), func(f *os.File) error {
		_, err := fmt.Fprintf(f, "%d\n", p.Support)
		return err
	})
}

func (r *Dir) Close() error {
	return writeFile(filepath.Join(r.dir, "count"), func(f *os.File) error {
		_, err := fmt.Fprintf(f, "%d\n", r.count)
		return err
	})
}

func writeFile(path string, write func(*os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	err = write(f)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return err
}
