package board

// CastlingRights is a bit set of the four castling permissions. Rights are
// tracked from the position description; no castling moves are generated.
type CastlingRights uint8

const (
	// White king-side (short) castling
	CastlingWhiteK CastlingRights = 1 << iota
	// White queen-side (long) castling
	CastlingWhiteQ
	// Black king-side castling
	CastlingBlackK
	// Black queen-side castling
	CastlingBlackQ
)

// Position is the aggregate board state: one occupancy bitboard per piece
// variant, the active player, castling rights, the optional en-passant
// target, the move counters and the move history.
//
// A Position is a single mutable resource with no internal locking; the
// caller serializes all mutation (one move in flight at a time).
type Position struct {
	// Occupancy sets indexed by Piece.index(), pieceList order.
	boards [12]Bitboard

	sideToMove Color
	castling   CastlingRights

	epTarget  Coord
	hasTarget bool

	// Half-move and full-move counters. The codec does not consume the FEN
	// clock fields, so these keep their constructed defaults (0 and 1).
	halfMoves int
	fullMoves int

	history History

	// Zobrist key, maintained incrementally by the mutators.
	key uint64
}

// NewPosition returns an empty position with White to move and the counters
// at their defaults.
func NewPosition() *Position {
	p := &Position{fullMoves: 1}
	p.key = p.ComputeKey()
	return p
}

// StartingPosition returns the standard initial position.
func StartingPosition() *Position {
	pos, err := ParseFEN(FENStartPos)
	if err != nil {
		panic("board: starting position failed to parse: " + err.Error())
	}
	return pos
}

// SetPiece places kind at c, clearing c in every other occupancy set first.
// This is the single choke point enforcing the one-piece-per-square
// invariant; placing NoPiece clears the square in all sets.
func (p *Position) SetPiece(c Coord, kind Piece) {
	want := kind.index()
	for i := range p.boards {
		if p.boards[i].Occupied(c) && i != want {
			p.boards[i] = p.boards[i].Clear(c)
			p.key ^= zobristPiece[i][c.Index()]
		}
	}
	if want >= 0 && !p.boards[want].Occupied(c) {
		p.boards[want] = p.boards[want].Set(c)
		p.key ^= zobristPiece[want][c.Index()]
	}
}

// PieceAt returns the piece occupying c by scanning the occupancy sets in
// pieceList order, or NoPiece when the square is empty.
func (p *Position) PieceAt(c Coord) Piece {
	for i, kind := range pieceList {
		if p.boards[i].Occupied(c) {
			return kind
		}
	}
	return NoPiece
}

// Occupancy returns the occupancy set for the given piece variant. The empty
// set is returned for NoPiece.
func (p *Position) Occupancy(kind Piece) Bitboard {
	i := kind.index()
	if i < 0 {
		return EmptyBB
	}
	return p.boards[i]
}

// AllOccupancy returns the union of all twelve occupancy sets.
func (p *Position) AllOccupancy() Bitboard {
	var all Bitboard
	for _, b := range p.boards {
		all |= b
	}
	return all
}

// ApplyMove relocates the piece at from to to, overwriting whatever occupied
// the destination. It is an unconditional move+capture with no validation.
//
// ApplyMove deliberately does not toggle the active player, update the
// en-passant target or the counters, or append to the history; the caller
// invokes AdvanceTurn and RecordMove explicitly when a full turn completes.
func (p *Position) ApplyMove(from, to Coord) {
	moved := p.PieceAt(from)
	p.SetPiece(from, NoPiece)
	p.SetPiece(to, moved)
}

// RecordMove appends the move to the position's history.
func (p *Position) RecordMove(m Move) { p.history.Record(m) }

// History returns the position's move history log.
func (p *Position) History() *History { return &p.history }

// ActivePlayer returns the color whose turn it is.
func (p *Position) ActivePlayer() Color { return p.sideToMove }

// Opponent returns the color not currently to move.
func (p *Position) Opponent() Color { return p.sideToMove.Other() }

// AdvanceTurn hands the turn to the opponent. No legality bookkeeping is
// performed at this layer.
func (p *Position) AdvanceTurn() {
	p.sideToMove = p.sideToMove.Other()
	p.key ^= zobristSide
}

// CastlingRights returns the raw rights bit set.
func (p *Position) CastlingRights() CastlingRights { return p.castling }

// CanCastle reports the (kingside, queenside) rights pair for the color.
func (p *Position) CanCastle(c Color) (kingside, queenside bool) {
	if c == White {
		return p.castling&CastlingWhiteK != 0, p.castling&CastlingWhiteQ != 0
	}
	return p.castling&CastlingBlackK != 0, p.castling&CastlingBlackQ != 0
}

// EnPassantTarget returns the en-passant target square, if one is set.
func (p *Position) EnPassantTarget() (Coord, bool) {
	return p.epTarget, p.hasTarget
}

// SetEnPassantTarget records the square a double pawn advance skipped over.
// Only the codec sets this during construction; ApplyMove never touches it.
func (p *Position) SetEnPassantTarget(c Coord) {
	if p.hasTarget {
		p.key ^= zobristEnPassant[p.epTarget.Index()]
	}
	p.epTarget = c
	p.hasTarget = true
	p.key ^= zobristEnPassant[c.Index()]
}

// ClearEnPassantTarget removes the en-passant target.
func (p *Position) ClearEnPassantTarget() {
	if p.hasTarget {
		p.key ^= zobristEnPassant[p.epTarget.Index()]
	}
	p.epTarget = Coord{}
	p.hasTarget = false
}

// HalfMoves returns the half-move counter.
func (p *Position) HalfMoves() int { return p.halfMoves }

// FullMoves returns the full-move counter.
func (p *Position) FullMoves() int { return p.fullMoves }

// Key returns the incrementally maintained Zobrist key.
func (p *Position) Key() uint64 { return p.key }

// Validate checks the representation invariants: no square set in more than
// one occupancy set, and the incremental Zobrist key matching a full
// recompute.
func (p *Position) Validate() bool {
	var seen Bitboard
	for _, b := range p.boards {
		if seen&b != 0 {
			return false
		}
		seen |= b
	}
	return p.key == p.ComputeKey()
}
