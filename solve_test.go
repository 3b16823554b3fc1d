package pegsolitaire

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIntersectSortedKeepsCommonElements(t *testing.T) {
	// Bits 2-4 of row 0 map onto the low 3 bits of CompressedRepr with a
	// pure shift, so raw ascending order already matches sorted-by-key
	// order for these boards.
	a := []Board{4, 12, 20, 28}
	b := []Board{0, 12, 16, 28}
	got := intersectSorted(a, b)
	require.Equal(t, []Board{12, 28}, got)
}

// Default is itself invariant under every D4 symmetry, so its four
// first-move successors are all symmetric images of one another and
// collapse to a single canonical board once normalized and deduplicated.
func TestExpandForwardFromDefaultCollapsesToOneCanonicalBoard(t *testing.T) {
	got := expandForward([]Board{Default()}, 2)
	require.Len(t, got, 1)
}

// Solved is likewise D4-invariant, so its four reverse-move predecessors
// collapse the same way.
func TestExpandReverseFromSolvedCollapsesToOneCanonicalBoard(t *testing.T) {
	got := expandReverse([]Board{Solved()}, 2)
	require.Len(t, got, 1)
}

// TestSolveFindsExpectedCardinality runs the full frontier solver. It is
// the single most expensive test in the package: it passes threads=0, so
// every parallel primitive handles its input as a single chunk, and the
// solve takes tens of seconds. It is skipped under -short.
func TestSolveFindsExpectedCardinality(t *testing.T) {
	if testing.Short() {
		t.Skip("full frontier solve is expensive; skipping under -short")
	}

	solvable, err := Solve(context.Background(), 0)
	require.NoError(t, err)
	require.Len(t, solvable, expectedSolvableCount)

	for _, b := range solvable {
		require.Equal(t, b, b.Normalize(), "every solvable board must be canonical")
	}
}

func TestSolveRespectsCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Solve(ctx, 2)
	require.Error(t, err)
}
