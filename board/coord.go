package board

import "fmt"

// BoardSize is the length of one side of the board.
const BoardSize = 8

// NumSquares is the total number of squares.
const NumSquares = BoardSize * BoardSize

// Coord is an immutable (file, rank) pair. Both components are always in
// [0, BoardSize); out-of-range coordinates are never constructed. The zero
// value is the valid coordinate (0, 0).
type Coord struct {
	file int
	rank int
}

// NewCoord builds a Coord, rejecting out-of-range components. Every
// conversion from signed arithmetic goes through here (or through an explicit
// bounds check) before a Coord exists.
func NewCoord(file, rank int) (Coord, error) {
	if file < 0 || file >= BoardSize || rank < 0 || rank >= BoardSize {
		return Coord{}, fmt.Errorf("coordinate (%d, %d) is off the board", file, rank)
	}
	return Coord{file: file, rank: rank}, nil
}

// MustCoord is NewCoord for compile-time-known coordinates. It panics on
// out-of-range input.
func MustCoord(file, rank int) Coord {
	c, err := NewCoord(file, rank)
	if err != nil {
		panic("board: " + err.Error())
	}
	return c
}

// Equal reports whether two coordinates name the same square.
func (c Coord) Equal(o Coord) bool { return c == o }

// File returns the file component in [0, BoardSize).
func (c Coord) File() int { return c.file }

// Rank returns the rank component in [0, BoardSize).
func (c Coord) Rank() int { return c.rank }

// Index returns the flat square index file*BoardSize + rank in [0, NumSquares).
func (c Coord) Index() int { return c.file*BoardSize + c.rank }

// CoordFromIndex is the inverse of Index.
func CoordFromIndex(i int) (Coord, error) {
	if i < 0 || i >= NumSquares {
		return Coord{}, fmt.Errorf("square index %d is out of range", i)
	}
	return Coord{file: i / BoardSize, rank: i % BoardSize}, nil
}

// Algebraic renders the coordinate as a two-character square name, letter
// 'a'+file then digit rank+1. The error path guards a file beyond the single
// letter range, which cannot happen while BoardSize is 8.
func (c Coord) Algebraic() (string, error) {
	if c.file > 'z'-'a' {
		return "", fmt.Errorf("file %d has no single-letter name", c.file)
	}
	return string([]byte{'a' + byte(c.file), '1' + byte(c.rank)}), nil
}

// CoordFromAlgebraic parses a two-character square name such as "e4".
func CoordFromAlgebraic(s string) (Coord, error) {
	if len(s) != 2 {
		return Coord{}, fmt.Errorf("square %q must be two characters", s)
	}
	if s[0] < 'a' || s[0] > 'h' || s[1] < '1' || s[1] > '8' {
		return Coord{}, fmt.Errorf("square %q is not a valid square name", s)
	}
	return Coord{file: int(s[0] - 'a'), rank: int(s[1] - '1')}, nil
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d, %d)", c.file, c.rank)
}
