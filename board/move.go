package board

// Move is an immutable (source, destination) pair describing one applied or
// candidate move.
type Move struct {
	From Coord
	To   Coord
}

// String renders the move as the two square names joined, e.g. "e2e4".
// Coordinates constructed through NewCoord always have a square name.
func (m Move) String() string {
	from, err := m.From.Algebraic()
	if err != nil {
		return "??"
	}
	to, err := m.To.Algebraic()
	if err != nil {
		return "??"
	}
	return from + to
}

// History is an ordered, append-only log of applied moves.
type History struct {
	moves []Move
}

// Record appends a move to the log.
func (h *History) Record(m Move) { h.moves = append(h.moves, m) }

// Len returns the number of recorded moves.
func (h *History) Len() int { return len(h.moves) }

// Moves returns a copy of the recorded moves in order.
func (h *History) Moves() []Move {
	out := make([]Move, len(h.moves))
	copy(out, h.moves)
	return out
}

// Last returns the most recently recorded move. ok is false when the log is
// empty.
func (h *History) Last() (Move, bool) {
	if len(h.moves) == 0 {
		return Move{}, false
	}
	return h.moves[len(h.moves)-1], true
}
