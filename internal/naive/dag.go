package naive

import (
	"fmt"
	"io"

	"github.com/treepeck/pegsolitaire"
)

/*
DAG is a directed acyclic graph over normalized boards: an edge b -> s
means s is a legal, solvable successor of b. [Solve] populates it
incrementally, one edge per solvable move it discovers, when called with a
non-nil DAG; it is purely a debugging aid for small sub-cases (nothing in
the core solver depends on it) and the original solver this module was
ported from builds the same structure to visualize why a given
configuration is or isn't solvable.
*/
type DAG struct {
	edges map[pegsolitaire.Board][]pegsolitaire.Board
}

// NewDAG returns an empty solution DAG.
func NewDAG() *DAG {
	return &DAG{edges: make(map[pegsolitaire.Board][]pegsolitaire.Board)}
}

// AddEdge records that to is a solvable successor reached from from.
func (d *DAG) AddEdge(from, to pegsolitaire.Board) {
	d.edges[from] = append(d.edges[from], to)
}

// maxDotPegs caps how large a board the Graphviz exporter will render;
// above this peg count the graph is too dense to be useful as a picture.
const maxDotPegs = 8

// WriteDOT writes a Graphviz description of every edge whose source board
// has at most [maxDotPegs] pegs.
func (d *DAG) WriteDOT(w io.Writer) error {
	if _, err := io.WriteString(w, "digraph solutions {\n"); err != nil {
		return err
	}
	for from, tos := range d.edges {
		if from.CountBalls() > maxDotPegs {
			continue
		}
		for _, to := range tos {
			if _, err := fmt.Fprintf(w, "  %q -> %q;\n", from.String(), to.String()); err != nil {
				return err
			}
		}
	}
	_, err := io.WriteString(w, "}\n")
	return err
}
