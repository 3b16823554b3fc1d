package pegsolitaire

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSolutionPushPopLenIsEmpty(t *testing.T) {
	var s Solution
	require.True(t, s.IsEmpty())
	require.Equal(t, 0, s.Len())

	m := newMove(Coord{1, 3}, South)
	s.Push(m)
	require.False(t, s.IsEmpty())
	require.Equal(t, 1, s.Len())

	got, ok := s.Pop()
	require.True(t, ok)
	require.Equal(t, m, got)
	require.True(t, s.IsEmpty())

	_, ok = s.Pop()
	require.False(t, ok)
}

func TestSolutionPushBeyondCapacityIsDropped(t *testing.T) {
	var s Solution
	for i := 0; i < maxMoves+5; i++ {
		s.Push(newMove(Coord{1, 3}, South))
	}
	require.Equal(t, maxMoves, s.Len())
}

func TestSolutionMovesReturnsPlayOrder(t *testing.T) {
	var s Solution
	first := newMove(Coord{1, 3}, South)
	second := newMove(Coord{3, 1}, East)
	s.Push(first)
	s.Push(second)

	require.Equal(t, []Move{first, second}, s.Moves())
}

func TestSolutionStringJoinsMovesWithSpaces(t *testing.T) {
	var s Solution
	first := newMove(Coord{1, 3}, South)
	second := newMove(Coord{3, 1}, East)
	s.Push(first)
	s.Push(second)

	require.Equal(t, first.String()+" "+second.String(), s.String())
}

func TestSolutionStringOfEmptyIsEmptyString(t *testing.T) {
	var s Solution
	require.Equal(t, "", s.String())
}
