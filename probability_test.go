package pegsolitaire

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestProbabilityOfSolvedIsOne(t *testing.T) {
	p := Probability([]Board{Solved()})
	require.Equal(t, 1.0, p[Solved()])
}

func TestProbabilityOfUniqueTwoPegPredecessorIsHalf(t *testing.T) {
	predecessors := expandReverse([]Board{Solved()}, 1)
	require.Len(t, predecessors, 1)
	b := predecessors[0]

	// The two adjacent pegs can jump over each other in either direction:
	// one jump lands on the center, the other on the edge of the cross.
	require.Len(t, b.LegalMoves(), 2, "a freshly-split two-peg board has exactly two legal moves")

	p := Probability([]Board{Solved(), b})
	require.Equal(t, 0.5, p[b])
}

func TestProbabilityIsZeroWhenNoSuccessorIsFeasible(t *testing.T) {
	predecessors := expandReverse([]Board{Solved()}, 1)
	b := predecessors[0]

	// Excluding Solved() from the feasible set means every successor of b
	// is "not in S", so its probability collapses to zero even though it
	// has a legal move.
	p := Probability([]Board{b})
	require.Equal(t, 0.0, p[b])
}
