package graph

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strconv"
)

import (
	"github.com/hashicorp/go-multierror"
	"github.com/timtadh/data-structures/errors"
)

type ParseError struct {
	Line  int
	Graph int
	Msg   string
}

func (e *ParseError) Error() string {
	if e.Graph < 0 {
		return fmt.Sprintf("line %d: %s", e.Line, e.Msg)
	}
	return fmt.Sprintf("line %d: graph %d: %s", e.Line, e.Graph, e.Msg)
}

// Loader reads the line oriented transaction format:
//
//	t # <graph-id>
//	v <vertex-id> <label>
//	e <from-id> <to-id> <label>
//	t # -1
//
// Vertex ids must be dense and in order starting at 0 within each graph.
// Edges may only reference vertices declared before them and may not be
// self loops. A "t # -1" line ends the input. Every malformed line is
// reported, the graphs are only returned when there are no errors.
type Loader struct {
	Directed bool
}

func NewLoader(directed bool) *Loader {
	return &Loader{Directed: directed}
}

func (l *Loader) Load(in io.Reader) ([]*Graph, error) {
	var errs *multierror.Error
	var cur *Graph
	graphs := make([]*Graph, 0, 10)
	lineno := 0
	done := false
	err := processLines(in, func(line []byte) bool {
		lineno++
		fields := bytes.Fields(line)
		if len(fields) == 0 || fields[0][0] == '#' {
			return true
		}
		graphId := -1
		if cur != nil {
			graphId = cur.Id
		}
		fail := func(format string, args ...interface{}) {
			errs = multierror.Append(errs, &ParseError{
				Line:  lineno,
				Graph: graphId,
				Msg:   fmt.Sprintf(format, args...),
			})
		}
		switch string(fields[0]) {
		case "t":
			if len(fields) < 2 {
				fail("missing '#' in graph header")
				return true
			} else if len(fields) < 3 {
				fail("missing id in graph header")
				return true
			}
			if string(fields[2]) == "-1" {
				done = true
				return false
			}
			id, err := strconv.Atoi(string(fields[2]))
			if err != nil || id < 0 {
				fail("invalid graph id '%s'", fields[2])
				return true
			}
			if cur != nil {
				graphs = append(graphs, cur)
			}
			cur = NewGraph(id, l.Directed)
		case "v":
			if cur == nil {
				fail("vertex before any graph header")
				return true
			}
			if err := l.loadVertex(cur, fields[1:]); err != nil {
				fail("%v", err)
			}
		case "e":
			if cur == nil {
				fail("edge before any graph header")
				return true
			}
			if err := l.loadEdge(cur, fields[1:]); err != nil {
				fail("%v", err)
			}
		default:
			fail("unknown line type '%s'", fields[0])
		}
		return true
	})
	if err != nil {
		return nil, err
	}
	if cur != nil {
		graphs = append(graphs, cur)
	}
	if errs != nil {
		return nil, errs.ErrorOrNil()
	}
	if done {
		errors.Logf("DEBUG", "input terminated by 't # -1' after %d lines", lineno)
	}
	errors.Logf("DEBUG", "loaded %d graphs", len(graphs))
	return graphs, nil
}

func (l *Loader) loadVertex(g *Graph, fields [][]byte) error {
	if len(fields) < 1 {
		return errors.Errorf("missing id for a vertex")
	}
	id, err := strconv.Atoi(string(fields[0]))
	if err != nil {
		return errors.Errorf("vertex id '%s' invalid", fields[0])
	}
	if id != len(g.V) {
		return errors.Errorf("vertex id (%d) does not fit the expected id %d", id, len(g.V))
	}
	if len(fields) < 2 {
		return errors.Errorf("missing label for vertex %d", id)
	}
	label, err := strconv.Atoi(string(fields[1]))
	if err != nil || label < 0 {
		return errors.Errorf("vertex %d, label '%s' invalid", id, fields[1])
	}
	g.AddVertex().Label = label
	return nil
}

func (l *Loader) loadEdge(g *Graph, fields [][]byte) error {
	if len(fields) < 3 {
		return errors.Errorf("edge needs <from> <to> <label>, got %d fields", len(fields))
	}
	from, err := strconv.Atoi(string(fields[0]))
	if err != nil {
		return errors.Errorf("invalid from id '%s' for an edge", fields[0])
	}
	to, err := strconv.Atoi(string(fields[1]))
	if err != nil {
		return errors.Errorf("invalid to id '%s' for an edge", fields[1])
	}
	label, err := strconv.Atoi(string(fields[2]))
	if err != nil || label < 0 {
		return errors.Errorf("invalid label '%s' for an edge", fields[2])
	}
	if !g.HasVertex(from) || !g.HasVertex(to) {
		return errors.Errorf("edge (%d, %d) references an undeclared vertex", from, to)
	}
	if from == to {
		return errors.Errorf("edge (%d, %d) is a self loop", from, to)
	}
	return g.AddEdge(from, to, label)
}

// processLines calls process for each line until it returns false.
func processLines(in io.Reader, process func([]byte) bool) error {
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		unsafe := scanner.Bytes()
		line := make([]byte, len(unsafe))
		copy(line, unsafe)
		if !process(line) {
			break
		}
	}
	return scanner.Err()
}
