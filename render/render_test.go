package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/treepeck/pegsolitaire"
)

func TestBoardMarksOccupiedAndEmptyCells(t *testing.T) {
	out := Board(pegsolitaire.Solved())
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 7)

	// Row 0 lies outside the cross except its middle three columns
	// (indices 2,3,4), which are all empty in the goal board.
	row0 := lines[0]
	require.Equal(t, byte(' '), row0[0*2])
	require.Equal(t, byte(' '), row0[1*2])
	require.Equal(t, byte('.'), row0[2*2])
	require.Equal(t, byte('.'), row0[3*2])
	require.Equal(t, byte('.'), row0[4*2])
	require.Equal(t, byte(' '), row0[5*2])
	require.Equal(t, byte(' '), row0[6*2])

	// The center cell of the goal board is the only occupied one.
	row3 := lines[3]
	require.Equal(t, byte('o'), row3[3*2])
}

func TestBoardOfDefaultHasThirtyTwoOccupiedMarks(t *testing.T) {
	out := Board(pegsolitaire.Default())
	require.Equal(t, 32, strings.Count(out, "o"))
}

func TestMovePrefixesBoardWithMoveString(t *testing.T) {
	b := pegsolitaire.Default()
	m, ok := b.IsLegalMove(pegsolitaire.Coord{Y: 1, X: 3}, pegsolitaire.Coord{Y: 3, X: 3})
	require.True(t, ok)

	out := Move(b.Move(m), m)
	require.True(t, strings.HasPrefix(out, m.String()+"\n"))
}
