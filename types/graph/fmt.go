package graph

import (
	"bytes"
	"fmt"
	"io"
)

// Format writes the graph in the transaction file format:
//
//	t # <id> * <support>
//	v <id> <label>
//	e <from> <to> <label>
//
// The support suffix is left off when support < 0.
func (g *Graph) Format(w io.Writer, id, support int) error {
	var err error
	if support >= 0 {
		_, err = fmt.Fprintf(w, "t # %d * %d\n", id, support)
	} else {
		_, err = fmt.Fprintf(w, "t # %d\n", id)
	}
	if err != nil {
		return err
	}
	for i := range g.V {
		if _, err := fmt.Fprintf(w, "v %d %d\n", g.V[i].Id, g.V[i].Label); err != nil {
			return err
		}
	}
	for _, e := range g.Edges() {
		if _, err := fmt.Fprintf(w, "e %d %d %d\n", e.From, e.To, e.Label); err != nil {
			return err
		}
	}
	return nil
}

func (g *Graph) String() string {
	var buf bytes.Buffer
	g.Format(&buf, g.Id, -1)
	return buf.String()
}

func (v *Vertex) String() string {
	return fmt.Sprintf("v %d %d", v.Id, v.Label)
}

func (e *Edge) String() string {
	return fmt.Sprintf("e %d %d %d", e.From, e.To, e.Label)
}
