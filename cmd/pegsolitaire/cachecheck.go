package main

import "github.com/treepeck/pegsolitaire"

// checkSolvableCount reports [pegsolitaire.ErrInvariant] if boards does not
// have the known cardinality of the solvable set, the same assertion
// [pegsolitaire.Solve] itself makes on its own output. Split out of
// load_solutions_cache.go (which is built only with -tags cache) so it can
// be exercised by a plain test build.
func checkSolvableCount(boards []pegsolitaire.Board) error {
	if len(boards) != pegsolitaire.ExpectedSolvableCount {
		return pegsolitaire.ErrInvariant
	}
	return nil
}
