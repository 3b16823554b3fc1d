package pegsolitaire

import "math/bits"

/*
pagodaRow is a one-dimensional weight sequence over the seven board indices
0..6 satisfying, for every i, row[i+2] <= row[i] + row[i+1] (and, since the
sequence is a palindrome, the same inequality read in the opposite
direction). pagodaWeights lifts it to two dimensions as a product,
weight(y,x) = pagodaRow[y] * pagodaRow[x], which carries the inequality
along rows and along columns independently: fixing y, the row-move
inequality weight(y,x+2) <= weight(y,x)+weight(y,x+1) reduces to the 1-D
inequality scaled by the non-negative factor pagodaRow[y], and symmetrically
for column moves. A legal move therefore never increases the sum of weights
over occupied cells, so PagodaScore is a pagoda function: a board whose
score already falls below [Solved]'s score (pagodaRow[3]^2) can never reach
the goal. This is a cheap, purely optional pruning test layered on top of
[Board.IsSolvable] and is never relied on for correctness by [Solve] itself.
*/
var pagodaRow = [...]int{0, 1, 1, 2, 1, 1, 0}

var pagodaWeights = computePagodaWeights()

func computePagodaWeights() [64]int {
	var w [64]int
	for y := Idx(0); y < size; y++ {
		for x := Idx(0); x < size; x++ {
			if !cross(y, x) {
				continue
			}
			w[int(y)*int(repr)+int(x)] = pagodaRow[y] * pagodaRow[x]
		}
	}
	return w
}

// PagodaScore sums the pagoda weight of every occupied cell in b.
func (b Board) PagodaScore() int {
	score := 0
	rest := uint64(b)
	for rest != 0 {
		idx := bits.TrailingZeros64(rest)
		rest &= rest - 1
		score += pagodaWeights[idx]
	}
	return score
}
