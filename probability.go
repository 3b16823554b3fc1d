/*
probability.go implements the bottom-up probability propagator: a dynamic
program over the solvable set that assigns each canonical board the
probability of reaching [Solved] when every legal move is chosen uniformly
at random.
*/
package pegsolitaire

/*
Probability computes P(b) for every b in solvable, where P(Solved())=1 and
every other board's probability is the mean, over its legal moves, of the
normalized successor's probability (0 if that successor is not itself in
the solvable set). The DP proceeds strictly bottom-up by peg count, from 2
pegs up to 32, so every successor a board depends on has already been
computed before it is needed.

This pass is intentionally single-threaded: the table being filled in is
shared read-write state across peg-count layers, and peg count 2's handful
of boards give the parallel primitives nothing meaningful to split.
*/
func Probability(solvable []Board) map[Board]float64 {
	feasible := make(map[Board]struct{}, len(solvable))
	for _, b := range solvable {
		feasible[b] = struct{}{}
	}

	byPegCount := make(map[int][]Board)
	maxPegs := 0
	for _, b := range solvable {
		n := b.CountBalls()
		byPegCount[n] = append(byPegCount[n], b)
		if n > maxPegs {
			maxPegs = n
		}
	}

	p := make(map[Board]float64, len(solvable))
	p[Solved()] = 1

	for pegs := 2; pegs <= maxPegs; pegs++ {
		for _, b := range byPegCount[pegs] {
			moves := b.LegalMoves()
			if len(moves) == 0 {
				p[b] = 0
				continue
			}
			chance := 1 / float64(len(moves))
			var total float64
			for _, m := range moves {
				successor := b.Move(m).Normalize()
				if _, ok := feasible[successor]; ok {
					total += chance * p[successor]
				}
			}
			p[b] = total
		}
	}

	return p
}
