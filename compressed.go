package pegsolitaire

// compressedRepr packs a Board into a 33-bit value: each cross row is
// stored at its own fixed offset, the 3-cell rows (0,1,5,6) taking 3 bits
// and the 7-cell rows (2,3,4) taking 7. This is a bijection on boards
// restricted to the playable cross, used as the sort key and on-disk
// symbol for the solvable set and is narrower than storing the raw 64-bit
// grid.
//
// Layout (low bit first): row0[3] row1[3] row2[7] row3[7] row4[7] row5[3] row6[3]
const (
	offRow0 = 0
	offRow1 = 3
	offRow2 = 6
	offRow3 = 13
	offRow4 = 20
	offRow5 = 27
	offRow6 = 30
)

// CompressedRepr returns the 33-bit packed form of b. Bit 32 (value
// 0x1_0000_0000) is the highest bit of the packed form, holding cell (6,4);
// it is handled specially by the solution cache codec to save one bit per
// entry on disk.
func (b Board) CompressedRepr() uint64 {
	u := uint64(b)
	row := func(y, shift int) uint64 {
		return (u >> (y*int(repr) + shift))
	}
	var c uint64
	c |= (row(0, 2) & 0x7) << offRow0
	c |= (row(1, 2) & 0x7) << offRow1
	c |= (row(2, 0) & 0x7F) << offRow2
	c |= (row(3, 0) & 0x7F) << offRow3
	c |= (row(4, 0) & 0x7F) << offRow4
	c |= (row(5, 2) & 0x7) << offRow5
	c |= (row(6, 2) & 0x7) << offRow6
	return c
}

// BoardFromCompressed inverts [Board.CompressedRepr].
func BoardFromCompressed(c uint64) Board {
	var u uint64
	place := func(y, shift int, width uint64, field uint64) {
		u |= (field & width) << (y*int(repr) + shift)
	}
	place(0, 2, 0x7, c>>offRow0)
	place(1, 2, 0x7, c>>offRow1)
	place(2, 0, 0x7F, c>>offRow2)
	place(3, 0, 0x7F, c>>offRow3)
	place(4, 0, 0x7F, c>>offRow4)
	place(5, 2, 0x7, c>>offRow5)
	place(6, 2, 0x7, c>>offRow6)
	return Board(u)
}
