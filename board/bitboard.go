package board

import (
	"math/bits"
	"strings"
)

// Bitboard is a 64-bit occupancy set, one bit per square. Bit n corresponds
// to the coordinate with Index() == n.
type Bitboard uint64

// EmptyBB is the bitboard with no squares set.
const EmptyBB Bitboard = 0

// bb returns a bitboard with only the given coordinate's bit set.
func bb(c Coord) Bitboard { return 1 << uint(c.Index()) }

// Set returns the bitboard with the coordinate's bit set.
func (b Bitboard) Set(c Coord) Bitboard { return b | bb(c) }

// Clear returns the bitboard with the coordinate's bit cleared.
func (b Bitboard) Clear(c Coord) Bitboard { return b &^ bb(c) }

// Occupied reports whether the coordinate's bit is set.
func (b Bitboard) Occupied(c Coord) bool { return b&bb(c) != 0 }

// IsEmpty reports whether no bits are set.
func (b Bitboard) IsEmpty() bool { return b == 0 }

// PopCount returns the number of set bits.
func (b Bitboard) PopCount() int { return bits.OnesCount64(uint64(b)) }

// PopLSB removes the lowest set bit and returns its coordinate. ok is false
// when the bitboard is empty.
func (b Bitboard) PopLSB() (Coord, Bitboard, bool) {
	if b == 0 {
		return Coord{}, b, false
	}
	i := bits.TrailingZeros64(uint64(b))
	c, _ := CoordFromIndex(i)
	return c, b & (b - 1), true
}

// Coords returns the coordinates of all set bits in ascending index order.
func (b Bitboard) Coords() []Coord {
	out := make([]Coord, 0, b.PopCount())
	for rest := b; rest != 0; {
		c, next, ok := rest.PopLSB()
		if !ok {
			break
		}
		out = append(out, c)
		rest = next
	}
	return out
}

// String returns the 64-bit binary representation, bit 63 first.
func (b Bitboard) String() string {
	var sb strings.Builder
	for i := 63; i >= 0; i-- {
		if (uint64(b)>>uint(i))&1 == 1 {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}

// Draw returns a grid rendering of the bitboard for debugging, file 7 at the
// top, ranks left to right.
func (b Bitboard) Draw() string {
	var sb strings.Builder
	for file := BoardSize - 1; file >= 0; file-- {
		for rank := 0; rank < BoardSize; rank++ {
			if b.Occupied(Coord{file: file, rank: rank}) {
				sb.WriteString("X ")
			} else {
				sb.WriteString(". ")
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
