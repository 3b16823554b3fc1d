package naive

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestSolveFindsExpectedCardinality exercises the full memoized DFS over
// the entire reachable state space; it is the slowest test in the module
// and is skipped under -short.
func TestSolveFindsExpectedCardinality(t *testing.T) {
	if testing.Short() {
		t.Skip("full naive solve visits the entire state space; skipping under -short")
	}

	solvable, err := Solve(context.Background(), nil)
	require.NoError(t, err)
	require.Len(t, solvable, expectedSolvableCount)
}

func TestSolveRecordsEdgesIntoDAG(t *testing.T) {
	if testing.Short() {
		t.Skip("full naive solve visits the entire state space; skipping under -short")
	}

	d := NewDAG()
	solvable, err := Solve(context.Background(), d)
	require.NoError(t, err)
	require.Len(t, solvable, expectedSolvableCount)

	var buf bytes.Buffer
	require.NoError(t, d.WriteDOT(&buf))
	require.Contains(t, buf.String(), "->")
}
