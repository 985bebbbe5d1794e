package board

import "slices"

// Move generation is a family of pure functions of (position, source
// coordinate), one per movement pattern. Destinations are pseudo-legal:
// consistent with the pattern and its blocking/capture rules, with no
// king-safety filtering. Every candidate is bounds-checked before a Coord is
// constructed.

var orthogonalDirs = [4][2]int{{1, 0}, {0, 1}, {-1, 0}, {0, -1}}
var diagonalDirs = [4][2]int{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}

// samePlayer compares the owners of two pieces, treating NoPiece as an owner
// of its own: two empty squares share a player, an empty square never shares
// one with a piece.
func samePlayer(a, b Piece) bool {
	ca, okA := a.Color()
	cb, okB := b.Color()
	if okA != okB {
		return false
	}
	return !okA || ca == cb
}

// movesInDirs casts rays from the source square in each unit direction, up to
// BoardSize-1 steps. An own-colored blocker ends the ray without being
// included; an opposing blocker is included as a capture and then ends it.
func movesInDirs(pos *Position, from Coord, dirs [4][2]int) []Coord {
	mover := pos.PieceAt(from)
	var out []Coord
	for _, dir := range dirs {
		for k := 1; k < BoardSize; k++ {
			file := from.File() + dir[0]*k
			rank := from.Rank() + dir[1]*k
			if file < 0 || file >= BoardSize || rank < 0 || rank >= BoardSize {
				break
			}
			c := Coord{file: file, rank: rank}
			target := pos.PieceAt(c)
			if target != NoPiece {
				if !samePlayer(target, mover) {
					out = append(out, c)
				}
				break
			}
			out = append(out, c)
		}
	}
	return out
}

// OrthogonalMoves returns the sliding destinations along the four axis
// directions (rook pattern).
func OrthogonalMoves(pos *Position, from Coord) []Coord {
	return movesInDirs(pos, from, orthogonalDirs)
}

// DiagonalMoves returns the sliding destinations along the four diagonal
// directions (bishop pattern).
func DiagonalMoves(pos *Position, from Coord) []Coord {
	return movesInDirs(pos, from, diagonalDirs)
}

// OrthoDiagonalMoves concatenates the orthogonal and diagonal destinations
// (queen pattern).
func OrthoDiagonalMoves(pos *Position, from Coord) []Coord {
	return append(OrthogonalMoves(pos, from), DiagonalMoves(pos, from)...)
}

// KnightMoves returns the eight (±1,±2)/(±2,±1) destinations that are on the
// board and not occupied by a piece of the mover's own color.
func KnightMoves(pos *Position, from Coord) []Coord {
	mover := pos.PieceAt(from)
	var out []Coord
	for _, i := range [4]int{-2, -1, 1, 2} {
		for _, j := range [4]int{-2, -1, 1, 2} {
			if abs(i) == abs(j) {
				continue
			}
			file := from.File() + i
			rank := from.Rank() + j
			if file < 0 || file >= BoardSize || rank < 0 || rank >= BoardSize {
				continue
			}
			c := Coord{file: file, rank: rank}
			target := pos.PieceAt(c)
			if target == NoPiece || !samePlayer(target, mover) {
				out = append(out, c)
			}
		}
	}
	return out
}

// KingMoves returns the adjacent destinations not occupied by a piece of the
// mover's own color. No check-safety filtering is applied.
func KingMoves(pos *Position, from Coord) []Coord {
	mover := pos.PieceAt(from)
	var out []Coord
	for i := -1; i <= 1; i++ {
		for j := -1; j <= 1; j++ {
			if i == 0 && j == 0 {
				continue
			}
			file := from.File() + i
			rank := from.Rank() + j
			if file < 0 || file >= BoardSize || rank < 0 || rank >= BoardSize {
				continue
			}
			c := Coord{file: file, rank: rank}
			if !samePlayer(pos.PieceAt(c), mover) {
				out = append(out, c)
			}
		}
	}
	return out
}

// verticalDir is the forward direction for a pawn: +1 for White, -1 for
// Black, applied to the file component.
func verticalDir(p Piece) int {
	if p.IsWhite() {
		return 1
	}
	return -1
}

// doubleStepEligible reports whether the pawn still stands on its color's
// starting row.
func doubleStepEligible(p Piece, from Coord) bool {
	return (p.IsWhite() && from.File() == 1) ||
		(p.IsBlack() && from.File() == BoardSize-2)
}

// PawnMoves returns the pawn destinations: the single forward step onto an
// empty square, diagonal captures of opposing pieces, the en-passant target
// when it is one file aside and dir away in rank, and the double step from
// the starting row when both squares ahead are empty.
func PawnMoves(pos *Position, from Coord) []Coord {
	mover := pos.PieceAt(from)
	dir := verticalDir(mover)
	var out []Coord

	stepFile := from.File() + dir
	if stepFile >= 0 && stepFile < BoardSize {
		step := Coord{file: stepFile, rank: from.Rank()}
		if pos.PieceAt(step) == NoPiece {
			out = append(out, step)
		}

		for _, k := range [2]int{-1, 1} {
			rank := from.Rank() + k
			if rank < 0 || rank >= BoardSize {
				continue
			}
			c := Coord{file: stepFile, rank: rank}
			if isOpposing(pos.PieceAt(c), mover) {
				out = append(out, c)
			}
		}
	}

	if target, ok := pos.EnPassantTarget(); ok {
		fileDiff := target.File() - from.File()
		rankDiff := target.Rank() - from.Rank()
		if abs(fileDiff) == 1 && rankDiff == dir {
			out = append(out, target)
		}
	}

	if doubleStepEligible(mover, from) {
		stepFile2 := from.File() + 2*dir
		if stepFile >= 0 && stepFile < BoardSize && stepFile2 >= 0 && stepFile2 < BoardSize {
			step := Coord{file: stepFile, rank: from.Rank()}
			step2 := Coord{file: stepFile2, rank: from.Rank()}
			if pos.PieceAt(step) == NoPiece && pos.PieceAt(step2) == NoPiece {
				out = append(out, step2)
			}
		}
	}

	return out
}

// isOpposing reports whether target is a piece owned by the other player
// than mover. Empty squares oppose nobody.
func isOpposing(target, mover Piece) bool {
	tc, okT := target.Color()
	mc, okM := mover.Color()
	return okT && okM && tc != mc
}

// MovesFrom dispatches on the piece occupying the source square and returns
// its pattern's destinations, or nil for an empty square.
func MovesFrom(pos *Position, from Coord) []Coord {
	switch pos.PieceAt(from).Type() {
	case PieceTypeQueen:
		return OrthoDiagonalMoves(pos, from)
	case PieceTypeKing:
		return KingMoves(pos, from)
	case PieceTypeRook:
		return OrthogonalMoves(pos, from)
	case PieceTypeKnight:
		return KnightMoves(pos, from)
	case PieceTypeBishop:
		return DiagonalMoves(pos, from)
	case PieceTypePawn:
		return PawnMoves(pos, from)
	default:
		return nil
	}
}

// SortCoords orders destinations by square index for deterministic output.
func SortCoords(cs []Coord) {
	slices.SortFunc(cs, func(a, b Coord) int { return a.Index() - b.Index() })
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
