/*
Package naive provides a reference solver used only to cross-check the
chunk-parallel frontier solver in [pegsolitaire.Solve]: a single-threaded,
memoized depth-first search over every board reachable by legal forward
play from the standard starting position, rather than the frontier
solver's goal-symmetric layer construction.
*/
package naive

import (
	"context"

	"github.com/treepeck/pegsolitaire"
)

// expectedSolvableCount mirrors the cardinality [pegsolitaire.Solve]
// asserts; kept as a literal here too since the naive solver is meant to
// stand on its own as an independent check, not share the frontier
// solver's constant.
const expectedSolvableCount = 1679072

/*
Solve walks every board reachable by legal forward moves from
[pegsolitaire.Default], memoizing each normalized board's solvability so no
state is classified twice. It returns the canonical solvable set, or
[pegsolitaire.ErrInvariant] if its cardinality doesn't match the known
value.

This is orders of magnitude slower than [pegsolitaire.Solve] and exists
purely as an independent cross-check for the compare-solutions command.

If dag is non-nil, every edge from a solvable board to a solvable successor
discovered during the search is recorded into it via [DAG.AddEdge].
*/
func Solve(ctx context.Context, dag *DAG) ([]pegsolitaire.Board, error) {
	checked := make(map[pegsolitaire.Board]bool, expectedSolvableCount)
	solvable := make([]pegsolitaire.Board, 0, expectedSolvableCount)

	var visit func(b pegsolitaire.Board) bool
	visit = func(b pegsolitaire.Board) bool {
		canon := b.Normalize()
		if v, ok := checked[canon]; ok {
			return v
		}

		var result bool
		if b.IsSolved() {
			result = true
		} else {
			for _, m := range b.LegalMoves() {
				succ := b.Move(m)
				solved := visit(succ)
				if solved {
					result = true
					if dag != nil {
						dag.AddEdge(canon, succ.Normalize())
					}
				}
			}
		}

		checked[canon] = result
		if result {
			solvable = append(solvable, canon)
		}
		return result
	}

	visit(pegsolitaire.Default())

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(solvable) != expectedSolvableCount {
		return nil, pegsolitaire.ErrInvariant
	}
	return solvable, nil
}
