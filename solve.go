/*
solve.go implements the bidirectional frontier solver: the algorithm that
enumerates the canonical solvable set S without ever performing a full
state-space search from the 32-peg starting position.
*/
package pegsolitaire

import (
	"context"
	"errors"
	"math/bits"

	"github.com/treepeck/pegsolitaire/internal/parallel"
)

// Slots is the number of playable cells on the board.
const Slots = 33

// compressedBits is the width, rounded up to a byte boundary, that
// [Board.CompressedRepr] values are radix-sorted over.
const compressedBits = 40

// ErrInvariant is returned by [Solve] and the naive reference solver when
// the computed solvable set does not have the expected cardinality. Unlike
// an I/O error, this signals a bug in move generation or the solver itself
// and is never expected to occur against a correct implementation.
var ErrInvariant = errors.New("pegsolitaire: solvable set has unexpected cardinality")

// ExpectedSolvableCount is the known cardinality of the solvable set for
// the 33-hole English board, exported so callers outside this package
// (notably the load-solutions command) can assert against it too.
const ExpectedSolvableCount = 1679072

// expectedSolvableCount is an unexported alias kept for brevity at the call
// sites within this package.
const expectedSolvableCount = ExpectedSolvableCount

/*
Solve computes the canonical solvable set S: every normalized board from
which [Solved] is reachable by legal moves. It works in three phases:

 1. Reverse phase: starting from the goal, repeatedly expand by undoing one
    move, normalizing each predecessor, to build layers V[1]..V[depth].
 2. Inversion bridge: the deepest reverse layer is complemented and
    normalized, giving the forward-search counterpart layer.
 3. Forward pruning phase: walking back from the bridge toward the goal,
    each layer is intersected with the legal-move successors of the layer
    one step further from the goal, discarding reverse-built states that
    turn out to have no forward continuation.

The result pairs every surviving state with its normalized inverse, which
covers the complementary half of the peg-count range by symmetry.

Solve only blocks on joining its own goroutines; ctx is polled between
layers, not within one, since a single layer's expansion is not meaningfully
preemptible. threads is passed through unmodified to the chunk-parallel
primitives; see [internal/parallel].
*/
func Solve(ctx context.Context, threads int) ([]Board, error) {
	const depth = (Slots - 1) / 2 // 16

	// visited[0..depth] are the reverse-built layers; visited[depth+1] is
	// the inversion bridge.
	visited := make([][]Board, depth+2)
	visited[1] = []Board{Solved()}

	for i := 1; i < depth; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		visited[i+1] = expandReverse(visited[i], threads)
	}

	bridge := make([]Board, len(visited[depth]))
	for i, b := range visited[depth] {
		bridge[i] = b.Inverse().Normalize()
	}
	visited[depth+1] = bridge

	for remaining := depth + 1; remaining >= 2; remaining-- {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		successors := expandForward(visited[remaining], threads)
		visited[remaining-1] = intersectSorted(visited[remaining-1], successors)
	}

	solvable := make([]Board, 0, expectedSolvableCount)
	for _, layer := range visited[:depth+1] {
		for _, b := range layer {
			solvable = append(solvable, b, b.Inverse().Normalize())
		}
	}

	if len(solvable) != expectedSolvableCount {
		return nil, ErrInvariant
	}
	return solvable, nil
}

// expandReverse returns the deduplicated, normalized, sorted set of
// predecessors reachable by undoing one move from any board in states. It
// walks [Board.RevMovPatternMask] per direction rather than materializing
// [Move] values, the same bulk-bitwise path [Board.MovablePositions] is
// built from.
func expandReverse(states []Board, threads int) []Board {
	perBoard := parallel.Map(states, threads, func(b Board) []Board {
		var out []Board
		for _, dir := range directions {
			mask := uint64(b.RevMovPatternMask(dir))
			for mask != 0 {
				idx := bits.TrailingZeros64(mask)
				mask &= mask - 1
				out = append(out, b.reverseToggleMovIdxUnchecked(idx, dir).Normalize())
			}
		}
		return out
	})
	return sortAndDedup(parallel.Join(perBoard), threads)
}

// expandForward returns the deduplicated, normalized, sorted set of
// successors reachable by one legal forward move from any board in states.
// See [expandReverse] for why it walks mask bits instead of [Board.Move].
func expandForward(states []Board, threads int) []Board {
	perBoard := parallel.Map(states, threads, func(b Board) []Board {
		var out []Board
		for _, dir := range directions {
			mask := uint64(b.MovPatternMask(dir))
			for mask != 0 {
				idx := bits.TrailingZeros64(mask)
				mask &= mask - 1
				out = append(out, b.toggleMovIdxUnchecked(idx, dir).Normalize())
			}
		}
		return out
	})
	return sortAndDedup(parallel.Join(perBoard), threads)
}

func sortAndDedup(boards []Board, threads int) []Board {
	sorted := parallel.RadixSort(boards, threads, compressedBits, Board.CompressedRepr)
	return parallel.Dedup(sorted, threads)
}

// intersectSorted keeps every element of a that also occurs in b, using a
// linear two-pointer merge. Both slices must already be sorted in the same
// order CompressedRepr induces.
func intersectSorted(a, b []Board) []Board {
	out := make([]Board, 0, len(a))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] == b[j]:
			out = append(out, a[i])
			i++
			j++
		case a[i].CompressedRepr() < b[j].CompressedRepr():
			i++
		default:
			j++
		}
	}
	return out
}
