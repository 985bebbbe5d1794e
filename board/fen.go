package board

import (
	"fmt"
	"strconv"
	"strings"
)

// FENStartPos is the description string for the standard initial position.
const FENStartPos = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// Section identifies the grammar section a parse failure occurred in.
type Section int

const (
	SectionPlacement Section = iota
	SectionActivePlayer
	SectionCastling
	SectionEnPassant
)

func (s Section) String() string {
	switch s {
	case SectionPlacement:
		return "piece placement"
	case SectionActivePlayer:
		return "active player"
	case SectionCastling:
		return "castling rights"
	case SectionEnPassant:
		return "en passant target"
	default:
		return "unknown section"
	}
}

// ParseError reports a rejected position description. Token is the offending
// character or two-character square token; Reason says why it was rejected.
type ParseError struct {
	Section Section
	Token   string
	Reason  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid position description: %s: %q %s", e.Section, e.Token, e.Reason)
}

func parseErr(section Section, token, reason string) error {
	return &ParseError{Section: section, Token: token, Reason: reason}
}

// ParseFEN parses a Forsyth-Edwards-style description into a Position. The
// string is processed left to right through four space-separated sections:
// piece placement, active player, castling rights and en-passant target.
// Trailing clock fields are not consumed; the counters keep their
// constructed defaults. Any failure aborts construction entirely.
func ParseFEN(fen string) (*Position, error) {
	pos := NewPosition()

	section := SectionPlacement
	rankCursor := 0
	fileCursor := 0

	for i := 0; i < len(fen); i++ {
		ch := fen[i]

		switch section {
		case SectionPlacement:
			switch {
			case ch == '/':
				fileCursor++
				rankCursor = 0
			case ch >= '1' && ch <= '8':
				rankCursor += int(ch - '0')
			case ch == ' ':
				section = SectionActivePlayer
			default:
				piece, ok := PieceFromChar(ch)
				if !ok {
					return nil, parseErr(section, string(ch), "is not algebraic notation for any piece")
				}
				c, err := NewCoord(BoardSize-1-fileCursor, rankCursor)
				if err != nil {
					return nil, parseErr(section, string(ch), "places a piece off the board")
				}
				pos.SetPiece(c, piece)
				rankCursor++
			}

		case SectionActivePlayer:
			switch ch {
			case 'w':
				pos.sideToMove = White
			case 'b':
				pos.sideToMove = Black
			case ' ':
				section = SectionCastling
			default:
				return nil, parseErr(section, string(ch), "is not a valid player")
			}

		case SectionCastling:
			switch ch {
			case 'K':
				pos.castling |= CastlingWhiteK
			case 'Q':
				pos.castling |= CastlingWhiteQ
			case 'k':
				pos.castling |= CastlingBlackK
			case 'q':
				pos.castling |= CastlingBlackQ
			case '-':
				pos.castling = 0
			case ' ':
				section = SectionEnPassant
			default:
				return nil, parseErr(section, string(ch), "does not provide valid castling rights")
			}

		case SectionEnPassant:
			switch ch {
			case '-':
				pos.ClearEnPassantTarget()
			case ' ':
				// The clock fields that follow are accepted in the string but
				// not consumed here.
				section++
			default:
				if i+1 >= len(fen) {
					return nil, parseErr(section, fen[i:], "is not a valid en passant square")
				}
				token := fen[i : i+2]
				fileCh, rankCh := token[0], token[1]
				if fileCh < 'a' || fileCh > 'h' || rankCh < '0' || rankCh > '8' {
					return nil, parseErr(section, token, "is not a valid en passant square")
				}
				c, err := NewCoord(int(fileCh-'a'), int(rankCh-'0'))
				if err != nil {
					return nil, parseErr(section, token, "is not a valid en passant square")
				}
				pos.SetEnPassantTarget(c)
				i++ // the rank digit is consumed with the file letter
			}
		}

		if section > SectionEnPassant {
			break
		}
	}

	pos.key = pos.ComputeKey()
	return pos, nil
}

// FEN renders the position back out in description-string form. The
// en-passant rank digit mirrors the parser's reading (digit value = rank
// index), and the clock fields are rendered from the stored counters.
func (p *Position) FEN() string {
	var sb strings.Builder

	for fileCursor := 0; fileCursor < BoardSize; fileCursor++ {
		emptyCount := 0
		for rank := 0; rank < BoardSize; rank++ {
			c := Coord{file: BoardSize - 1 - fileCursor, rank: rank}
			piece := p.PieceAt(c)
			if piece == NoPiece {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte('0' + byte(emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(piece.Char())
		}
		if emptyCount > 0 {
			sb.WriteByte('0' + byte(emptyCount))
		}
		if fileCursor < BoardSize-1 {
			sb.WriteByte('/')
		}
	}
	sb.WriteByte(' ')

	if p.sideToMove == White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
	sb.WriteByte(' ')

	if p.castling == 0 {
		sb.WriteByte('-')
	} else {
		if p.castling&CastlingWhiteK != 0 {
			sb.WriteByte('K')
		}
		if p.castling&CastlingWhiteQ != 0 {
			sb.WriteByte('Q')
		}
		if p.castling&CastlingBlackK != 0 {
			sb.WriteByte('k')
		}
		if p.castling&CastlingBlackQ != 0 {
			sb.WriteByte('q')
		}
	}
	sb.WriteByte(' ')

	if p.hasTarget {
		sb.WriteByte('a' + byte(p.epTarget.File()))
		sb.WriteByte('0' + byte(p.epTarget.Rank()))
	} else {
		sb.WriteByte('-')
	}
	sb.WriteByte(' ')

	sb.WriteString(strconv.Itoa(p.halfMoves))
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(p.fullMoves))
	return sb.String()
}
