package pegsolitaire

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPagodaScoreMonotoneNonIncreasingUnderMove(t *testing.T) {
	b := Default()
	for _, m := range b.LegalMoves() {
		after := b.Move(m)
		require.LessOrEqual(t, after.PagodaScore(), b.PagodaScore())
	}
}

func TestPagodaScoreOfSolvedIsGoalWeight(t *testing.T) {
	require.Equal(t, pagodaRow[3]*pagodaRow[3], Solved().PagodaScore())
}

// TestPagodaScoreIsNonIncreasingAcrossAllReachableMoves BFS-explores every
// unnormalized board reachable by forward play from [Default], which runs
// into the tens of millions of positions; it is gated the same way as the
// full solver tests in solve_test.go and naive_test.go.
func TestPagodaScoreIsNonIncreasingAcrossAllReachableMoves(t *testing.T) {
	if testing.Short() {
		t.Skip("exhaustive reachable-board BFS is expensive; skipping under -short")
	}

	frontier := []Board{Default()}
	seen := map[Board]bool{Default(): true}
	for len(frontier) > 0 {
		b := frontier[0]
		frontier = frontier[1:]
		for _, m := range b.LegalMoves() {
			after := b.Move(m)
			require.LessOrEqual(t, after.PagodaScore(), b.PagodaScore())
			if !seen[after] {
				seen[after] = true
				frontier = append(frontier, after)
			}
		}
	}
}

func TestPagodaScoreOfEmptyIsZero(t *testing.T) {
	require.Equal(t, 0, Empty().PagodaScore())
}
