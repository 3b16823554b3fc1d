package pegsolitaire

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCompressedReprIsThirtyThreeBitsWide(t *testing.T) {
	c := Full().CompressedRepr()
	require.Less(t, c, uint64(1)<<33)
	require.Equal(t, uint64(1)<<33-1, c, "Full should set every one of the 33 compressed bits")
}

func TestCompressedReprOfEmptyIsZero(t *testing.T) {
	require.Equal(t, uint64(0), Empty().CompressedRepr())
}

func TestCompressedReprDistinguishesSinglePegs(t *testing.T) {
	seen := make(map[uint64]Coord)
	for y := Idx(0); y < size; y++ {
		for x := Idx(0); x < size; x++ {
			c := Coord{y, x}
			if !Inbounds(c) {
				continue
			}
			b := Empty().Set(c)
			repr := b.CompressedRepr()
			if prev, ok := seen[repr]; ok {
				t.Fatalf("cells %v and %v collide on compressed repr %d", prev, c, repr)
			}
			seen[repr] = c
			require.Equal(t, b, BoardFromCompressed(repr))
		}
	}
	require.Len(t, seen, 33)
}
