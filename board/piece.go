package board

// Piece identifies the occupant of a square.
type Piece uint8

const (
	NoPiece     Piece = 0
	WhiteQueen  Piece = 1
	WhiteKing   Piece = 2
	WhiteRook   Piece = 3
	WhiteKnight Piece = 4
	WhiteBishop Piece = 5
	WhitePawn   Piece = 6

	// Black pieces are the white codes with bit 3 set, so that
	// - piece & 7 gives the colorless type in [1..6]
	// - piece & 8 != 0 indicates Black
	BlackQueen  Piece = 1 | 8
	BlackKing   Piece = 2 | 8
	BlackRook   Piece = 3 | 8
	BlackKnight Piece = 4 | 8
	BlackBishop Piece = 5 | 8
	BlackPawn   Piece = 6 | 8
)

// PieceType is a colorless piece identity.
type PieceType uint8

const (
	PieceTypeNone   PieceType = 0
	PieceTypeQueen  PieceType = 1
	PieceTypeKing   PieceType = 2
	PieceTypeRook   PieceType = 3
	PieceTypeKnight PieceType = 4
	PieceTypeBishop PieceType = 5
	PieceTypePawn   PieceType = 6
)

// Color is the two-valued player type.
type Color uint8

const (
	White Color = 0
	Black Color = 1
)

// Other returns the opposing color.
func (c Color) Other() Color { return c ^ 1 }

func (c Color) String() string {
	if c == Black {
		return "Black"
	}
	return "White"
}

// pieceList fixes the scan order used by Position.PieceAt and the per-piece
// bitboard indexing. The order is part of the representation and never changes.
var pieceList = [12]Piece{
	WhiteQueen, WhiteKing, WhiteRook, WhiteKnight, WhiteBishop, WhitePawn,
	BlackQueen, BlackKing, BlackRook, BlackKnight, BlackBishop, BlackPawn,
}

// Type returns the colorless type of the piece.
func (p Piece) Type() PieceType { return PieceType(p & 7) }

// IsWhite reports whether the piece is a white piece. NoPiece is neither color.
func (p Piece) IsWhite() bool { return p != NoPiece && p&8 == 0 }

// IsBlack reports whether the piece is a black piece.
func (p Piece) IsBlack() bool { return p&8 != 0 }

// Color returns the owning side. ok is false for NoPiece, which has no owner.
func (p Piece) Color() (Color, bool) {
	if p == NoPiece {
		return White, false
	}
	if p&8 != 0 {
		return Black, true
	}
	return White, true
}

// PieceFromType combines a colorless type with a side.
func PieceFromType(c Color, pt PieceType) Piece {
	if pt == PieceTypeNone {
		return NoPiece
	}
	p := Piece(pt)
	if c == Black {
		p |= 8
	}
	return p
}

// index maps the piece to its bitboard slot in [0..11], following pieceList
// order: white types occupy 0..5, black types 6..11. NoPiece maps to -1.
func (p Piece) index() int {
	if p == NoPiece {
		return -1
	}
	i := int(p&7) - 1
	if p&8 != 0 {
		i += 6
	}
	return i
}

// Char returns the single-character algebraic glyph: uppercase for White,
// lowercase for Black, '-' for an empty square.
func (p Piece) Char() byte {
	const white = "QKRNBP"
	const black = "qkrnbp"
	t := p & 7
	if t < 1 || t > 6 {
		return '-'
	}
	if p&8 != 0 {
		return black[t-1]
	}
	return white[t-1]
}

func (p Piece) String() string { return string(p.Char()) }

// PieceFromChar converts an algebraic glyph to a Piece. '-' yields NoPiece
// with ok true; any unrecognized character yields ok false.
func PieceFromChar(ch byte) (Piece, bool) {
	switch ch {
	case '-':
		return NoPiece, true
	case 'Q':
		return WhiteQueen, true
	case 'K':
		return WhiteKing, true
	case 'R':
		return WhiteRook, true
	case 'N':
		return WhiteKnight, true
	case 'B':
		return WhiteBishop, true
	case 'P':
		return WhitePawn, true
	case 'q':
		return BlackQueen, true
	case 'k':
		return BlackKing, true
	case 'r':
		return BlackRook, true
	case 'n':
		return BlackKnight, true
	case 'b':
		return BlackBishop, true
	case 'p':
		return BlackPawn, true
	default:
		return NoPiece, false
	}
}
