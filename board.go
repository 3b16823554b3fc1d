/*
board.go defines the Board type: a 64-bit bit-packed representation of the
33-hole English peg solitaire cross, along with the codec operations that
move pegs, test legality, and convert to/from the compact on-disk form.
*/
package pegsolitaire

import (
	"math/bits"
	"strconv"
)

// size is the edge length of the backing grid a board's playable cross is
// inscribed in; repr is the bit stride used to address a cell, chosen one
// wider than size so that row/column arithmetic never has to special-case
// the last column.
const (
	size Idx = 7
	repr Idx = 8
)

// Idx is a small grid coordinate or bit-stride value.
type Idx = int8

/*
Board is a 64-bit bit-packed 8x8 grid (bit y*8+x set means cell (y,x) holds
a peg). Only the 33 cells of the cross are ever occupied; callers must not
set bits outside [Full]. Board is a plain value type: moves, symmetries, and
normalization all return a new Board rather than mutating in place.
*/
type Board uint64

// fullMask is the mask of the 33 playable cells, built once at package init
// the same way many bitboard engines precalculate their attack tables.
var fullMask = computeFull()

func computeFull() Board {
	var b Board
	for y := Idx(0); y < size; y++ {
		for x := Idx(0); x < size; x++ {
			if cross(y, x) {
				b = b.Set(Coord{y, x})
			}
		}
	}
	return b
}

// cross reports whether (y,x) falls inside the plus-shaped 33-cell board.
func cross(y, x Idx) bool {
	midRow := y >= 2 && y <= 4
	midCol := x >= 2 && x <= 4
	return midRow || midCol
}

// Full returns a board with every playable cell occupied.
func Full() Board { return fullMask }

// Empty returns a board with no pegs.
func Empty() Board { return 0 }

// center is the single goal cell: row 3, column 3.
var center = Coord{3, 3}

// Solved returns the goal board: a single peg at the center cell.
func Solved() Board { return Empty().Set(center) }

// Default returns the standard English peg solitaire starting position:
// every cell occupied except the center.
func Default() Board { return Full().Unset(center) }

// bitIndex converts a coordinate to its bit position in the backing uint64.
func bitIndex(c Coord) uint {
	return uint(c.Y)*uint(repr) + uint(c.X)
}

// Inbounds reports whether c addresses one of the 33 playable cells.
func Inbounds(c Coord) bool {
	return c.Y >= 0 && c.Y < size && c.X >= 0 && c.X < size && cross(c.Y, c.X)
}

// Occupied reports whether a peg sits at c. The caller must ensure c is
// [Inbounds]; out-of-range cells are defined to read as unoccupied.
func (b Board) Occupied(c Coord) bool {
	if !Inbounds(c) {
		return false
	}
	return b&(1<<bitIndex(c)) != 0
}

// Set returns b with a peg placed at c.
//
// NOTE: the caller must ensure c is inbounds; out-of-range cells corrupt
// neighboring rows instead of being rejected.
func (b Board) Set(c Coord) Board {
	assert(Inbounds(c), "Set: coordinate out of bounds")
	return b | 1<<bitIndex(c)
}

// Unset returns b with the peg at c removed, if any.
//
// NOTE: the caller must ensure c is inbounds; see [Board.Set].
func (b Board) Unset(c Coord) Board {
	assert(Inbounds(c), "Unset: coordinate out of bounds")
	return b &^ (1 << bitIndex(c))
}

// CountBalls returns the number of pegs currently on the board.
func (b Board) CountBalls() int {
	return bits.OnesCount64(uint64(b))
}

// IsSolved reports whether b is exactly the goal configuration.
func (b Board) IsSolved() bool {
	return b == Solved()
}

// pivots are the five cells whose occupancy determines the necessary (but
// not sufficient) solvability heuristic used by [Board.IsSolvable].
var pivots = [5]Coord{{1, 3}, {3, 1}, {3, 3}, {3, 5}, {5, 3}}

/*
IsSolvable is a cheap necessary-but-not-sufficient test: boards that fail it
can never reach [Solved], but passing it does not guarantee a solution
exists. It is intended as a DFS prune, never as ground truth for set
membership in the solvable set produced by [Solve].
*/
func (b Board) IsSolvable() bool {
	occupied := 0
	for _, p := range pivots {
		if b.Occupied(p) {
			occupied++
		}
	}
	return occupied > 0
}

// Inverse returns the complement of b restricted to the playable cross:
// every occupied cell becomes empty and vice versa.
func (b Board) Inverse() Board {
	return ^b & Full()
}

// Move applies m to b: the origin and skipped cell are cleared, the target
// is occupied. The caller must ensure m is legal for b; see [Board.IsLegalMove].
func (b Board) Move(m Move) Board {
	assert(b.Occupied(m.Pos) && b.Occupied(m.Skip) && !b.Occupied(m.Target),
		"Move: move is not legal for this board")
	return b.Unset(m.Pos).Unset(m.Skip).Set(m.Target)
}

// ReverseMove undoes m: the target is cleared, the origin and skipped cell
// are occupied. The caller must ensure m was legal to apply forward.
func (b Board) ReverseMove(m Move) Board {
	assert(b.Occupied(m.Target) && !b.Occupied(m.Pos) && !b.Occupied(m.Skip),
		"ReverseMove: move was not legal going forward")
	return b.Set(m.Pos).Set(m.Skip).Unset(m.Target)
}

// LegalMove returns the forward jump from pos in direction dir, if legal:
// pos occupied, skip occupied, target inbounds and empty.
func (b Board) LegalMove(pos Coord, dir Direction) (Move, bool) {
	m := newMove(pos, dir)
	if !Inbounds(pos) || !Inbounds(m.Target) {
		return Move{}, false
	}
	if b.Occupied(pos) && b.Occupied(m.Skip) && !b.Occupied(m.Target) {
		return m, true
	}
	return Move{}, false
}

// LegalInverseMove returns the reverse jump that lands a peg on target
// coming from direction dir, if legal for b: target occupied, skip and the
// jump's origin both empty.
func (b Board) LegalInverseMove(target Coord, dir Direction) (Move, bool) {
	// The move undone is the forward jump in dir that ends on target, so
	// its origin pos is two cells back from target, against dir.
	dy, dx := dir.delta()
	pos := Coord{target.Y - 2*dy, target.X - 2*dx}
	skip := Coord{target.Y - dy, target.X - dx}
	if !Inbounds(pos) || !Inbounds(target) {
		return Move{}, false
	}
	m := Move{Pos: pos, Skip: skip, Target: target, Dir: dir}
	if b.Occupied(target) && !b.Occupied(skip) && !b.Occupied(pos) {
		return m, true
	}
	return Move{}, false
}

// LegalMoves returns every legal forward jump available on b. The slice is
// capped at 4*33, the maximum number of (origin, direction) pairs.
func (b Board) LegalMoves() []Move {
	moves := make([]Move, 0, 4*33)
	rest := b
	for rest != 0 {
		idx := bits.TrailingZeros64(uint64(rest))
		rest &= rest - 1
		pos := Coord{Idx(idx / int(repr)), Idx(idx % int(repr))}
		for _, dir := range directions {
			if m, ok := b.LegalMove(pos, dir); ok {
				moves = append(moves, m)
			}
		}
	}
	return moves
}

// LegalInverseMoves returns every legal reverse jump available on b.
func (b Board) LegalInverseMoves() []Move {
	moves := make([]Move, 0, 4*33)
	rest := b
	for rest != 0 {
		idx := bits.TrailingZeros64(uint64(rest))
		rest &= rest - 1
		target := Coord{Idx(idx / int(repr)), Idx(idx % int(repr))}
		for _, dir := range directions {
			if m, ok := b.LegalInverseMove(target, dir); ok {
				moves = append(moves, m)
			}
		}
	}
	return moves
}

/*
IsLegalMove interprets a drag gesture from src to dst as a move: the two
cells must be two apart along a single axis, with a peg at src, a peg at the
midpoint, and dst empty. Returns the resolved [Move] and whether it is
legal.
*/
func (b Board) IsLegalMove(src, dst Coord) (Move, bool) {
	dy := dst.Y - src.Y
	dx := dst.X - src.X

	var dir Direction
	switch {
	case dy == -2 && dx == 0:
		dir = North
	case dy == 2 && dx == 0:
		dir = South
	case dy == 0 && dx == 2:
		dir = East
	case dy == 0 && dx == -2:
		dir = West
	default:
		return Move{}, false
	}
	return b.LegalMove(src, dir)
}

// String renders the board's compressed representation as hex, a stable,
// compact identifier used by diagnostic tools such as the solution DAG
// exporter.
func (b Board) String() string {
	return "0x" + strconv.FormatUint(b.CompressedRepr(), 16)
}
