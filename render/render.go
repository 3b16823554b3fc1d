// Package render formats a [pegsolitaire.Board] as plain text, for the
// CLI's --print flag and other diagnostic output. It has no bearing on
// solving or on the cache format; it exists purely to visualize a board
// during testing and troubleshooting.
package render

import (
	"strings"

	"github.com/treepeck/pegsolitaire"
)

// Board formats b as a 7x7 grid, 'o' for an occupied cell, '.' for an
// empty playable cell, and a blank for the cells of the four 2x2 corners
// outside the cross.
func Board(b pegsolitaire.Board) string {
	var out strings.Builder

	for y := int8(0); y < 7; y++ {
		for x := int8(0); x < 7; x++ {
			c := pegsolitaire.Coord{Y: y, X: x}
			switch {
			case !pegsolitaire.Inbounds(c):
				out.WriteByte(' ')
			case b.Occupied(c):
				out.WriteByte('o')
			default:
				out.WriteByte('.')
			}
			out.WriteByte(' ')
		}
		out.WriteByte('\n')
	}

	return out.String()
}

// Move formats b, prefixed by the move m, for step-by-step solution
// playback. It does not apply m: b is printed as given, so callers pass
// the board after m has been played.
func Move(b pegsolitaire.Board, m pegsolitaire.Move) string {
	var out strings.Builder
	out.WriteString(m.String())
	out.WriteByte('\n')
	out.WriteString(Board(b))
	return out.String()
}
