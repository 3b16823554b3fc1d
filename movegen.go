/*
movegen.go provides the bulk, bitwise move-generation helpers the frontier
solver uses instead of the per-cell [Board.LegalMove] loop: a whole layer's
worth of successor boards can be produced with a handful of shifts and
masks rather than 33*4 individual legality checks per board.
*/
package pegsolitaire

// deltaIndex is the change in flat bit index (y*repr+x) for one step in dir.
func deltaIndex(dir Direction) int {
	switch dir {
	case North:
		return -int(repr)
	case South:
		return int(repr)
	case East:
		return 1
	case West:
		return -1
	default:
		return 0
	}
}

// look returns, for every bit position p, the value of x at p+n*delta(dir).
// A negative n looks backwards along dir.
func look(x uint64, dir Direction, n int) uint64 {
	d := deltaIndex(dir) * n
	if d >= 0 {
		return x >> uint(d)
	}
	return x << uint(-d)
}

// shiftBits moves every set bit of x forward n steps along dir.
func shiftBits(x uint64, dir Direction, n int) uint64 {
	return look(x, dir, -n)
}

// Shift returns b with every peg moved n steps along dir, without any
// bounds or occupancy checking.
func (b Board) Shift(dir Direction, n int) Board {
	return Board(shiftBits(uint64(b), dir, n))
}

// posGeometryMask[dir] has a bit set at every cell from which a forward
// jump in dir stays inbounds, independent of occupancy.
// revGeometryMask[dir] has a bit set at every cell that can be the target
// of a reverse jump in dir, independent of occupancy.
var posGeometryMask, revGeometryMask [4]Board

func init() {
	for _, dir := range directions {
		var pos, target Board
		for y := Idx(0); y < size; y++ {
			for x := Idx(0); x < size; x++ {
				c := Coord{y, x}
				if !Inbounds(c) {
					continue
				}
				m := newMove(c, dir)
				if Inbounds(m.Skip) && Inbounds(m.Target) {
					pos = pos.Set(c)
					target = target.Set(m.Target)
				}
			}
		}
		posGeometryMask[dir] = pos
		revGeometryMask[dir] = target
	}
}

// MovPatternMask returns a bitmask of every cell holding a peg that can
// legally jump in dir on b. Its popcount equals the number of legal forward
// moves b has in that direction.
func (b Board) MovPatternMask(dir Direction) Board {
	occ := uint64(b)
	skipOccupied := look(occ, dir, 1)
	targetOccupied := look(occ, dir, 2)
	return Board(occ&skipOccupied&^targetOccupied) & posGeometryMask[dir]
}

// RevMovPatternMask returns a bitmask of every cell that could be the
// landing target of a legal reverse jump in dir on b.
func (b Board) RevMovPatternMask(dir Direction) Board {
	occ := uint64(b)
	skipEmpty := ^look(occ, dir, -1)
	posEmpty := ^look(occ, dir, -2)
	return Board(occ) & Board(skipEmpty) & Board(posEmpty) & revGeometryMask[dir]
}

// MovablePositions returns the union of [Board.MovPatternMask] over every
// direction: every cell holding a peg with at least one legal forward move.
func (b Board) MovablePositions() Board {
	var m Board
	for _, dir := range directions {
		m |= b.MovPatternMask(dir)
	}
	return m
}

// toggleMovIdxUnchecked applies the forward jump starting at the cell with
// flat bit index idx in direction dir, without checking legality. Used by
// the bulk layer-expansion code once [Board.MovPatternMask] has already
// established the move is legal.
func (b Board) toggleMovIdxUnchecked(idx int, dir Direction) Board {
	d := deltaIndex(dir)
	return b ^ 1<<uint(idx) ^ 1<<uint(idx+d) ^ 1<<uint(idx+2*d)
}

// reverseToggleMovIdxUnchecked applies the reverse jump landing on the cell
// with flat bit index idx in direction dir, without checking legality.
func (b Board) reverseToggleMovIdxUnchecked(idx int, dir Direction) Board {
	d := deltaIndex(dir)
	return b ^ 1<<uint(idx) ^ 1<<uint(idx-d) ^ 1<<uint(idx-2*d)
}
