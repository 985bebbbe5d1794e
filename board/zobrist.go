package board

import "math/rand"

// Zobrist hashing tables for pieces, castling rights, the en-passant target
// and the side to move.
var zobristPiece [12][NumSquares]uint64
var zobristCastle [16]uint64
var zobristEnPassant [NumSquares]uint64
var zobristSide uint64

func init() {
	initZobrist()
}

func initZobrist() {
	// Fixed seed for reproducibility in tests
	rnd := rand.New(rand.NewSource(0xC0DE))

	for i := 0; i < 12; i++ {
		for sq := 0; sq < NumSquares; sq++ {
			zobristPiece[i][sq] = rnd.Uint64()
		}
	}
	for cr := 0; cr < 16; cr++ {
		zobristCastle[cr] = rnd.Uint64()
	}
	for sq := 0; sq < NumSquares; sq++ {
		zobristEnPassant[sq] = rnd.Uint64()
	}
	zobristSide = rnd.Uint64()
}

// ComputeKey calculates the Zobrist key for the current state from scratch.
// The incrementally maintained Position.Key must always match it.
func (p *Position) ComputeKey() uint64 {
	var key uint64

	for i := range p.boards {
		for rest := p.boards[i]; rest != 0; {
			c, next, ok := rest.PopLSB()
			if !ok {
				break
			}
			rest = next
			key ^= zobristPiece[i][c.Index()]
		}
	}

	if p.sideToMove == Black {
		key ^= zobristSide
	}

	key ^= zobristCastle[int(p.castling)]

	if p.hasTarget {
		key ^= zobristEnPassant[p.epTarget.Index()]
	}

	return key
}
