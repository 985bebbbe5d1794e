package board

import (
	"fmt"
	"strings"
)

// String returns a human-readable rendering: the active player followed by
// the board as single-character glyphs, one row per line with the highest
// row first, '-' marking empty squares.
func (p *Position) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Current player: %s\n", p.sideToMove)
	for file := BoardSize - 1; file >= 0; file-- {
		for rank := 0; rank < BoardSize; rank++ {
			if rank > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteByte(p.PieceAt(Coord{file: file, rank: rank}).Char())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
