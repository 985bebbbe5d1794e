package board_test

import (
	"testing"

	"chess-board/board"
	"chess-board/internal/testutil"
)

func TestSetPieceExclusivity(t *testing.T) {
	pos := board.NewPosition()
	c := board.MustCoord(2, 5)

	for _, piece := range allPieces {
		pos.SetPiece(c, piece)
		testutil.AssertEqual(t, pos.PieceAt(c), piece)
		testutil.AssertEqual(t, pos.Occupancy(piece).PopCount(), 1)

		// Only the board for the new kind holds the square.
		for _, other := range allPieces {
			if other == piece {
				continue
			}
			if pos.Occupancy(other).Occupied(c) {
				t.Fatalf("square still set on %s board after placing %s", other, piece)
			}
		}
		testutil.AssertTrue(t, pos.Validate(), "invariants after SetPiece")
	}

	pos.SetPiece(c, board.NoPiece)
	testutil.AssertEqual(t, pos.PieceAt(c), board.NoPiece)
	testutil.AssertEqual(t, pos.AllOccupancy(), board.EmptyBB)
}

func TestApplyMoveRelocates(t *testing.T) {
	pos := board.NewPosition()
	from := board.MustCoord(1, 0)
	to := board.MustCoord(3, 0)
	pos.SetPiece(from, board.WhitePawn)

	pos.ApplyMove(from, to)
	testutil.AssertEqual(t, pos.PieceAt(from), board.NoPiece)
	testutil.AssertEqual(t, pos.PieceAt(to), board.WhitePawn)
	testutil.AssertTrue(t, pos.Validate(), "invariants after ApplyMove")
}

func TestApplyMoveOverwritesCapture(t *testing.T) {
	pos := board.NewPosition()
	from := board.MustCoord(1, 0)
	to := board.MustCoord(3, 0)
	pos.SetPiece(from, board.WhitePawn)
	pos.SetPiece(to, board.BlackRook)

	pos.ApplyMove(from, to)
	testutil.AssertEqual(t, pos.PieceAt(to), board.WhitePawn)
	testutil.AssertEqual(t, pos.Occupancy(board.BlackRook), board.EmptyBB)
}

// ApplyMove only relocates pieces. Turn, en-passant state and the move
// history are managed by their own calls.
func TestApplyMoveLeavesBookkeepingAlone(t *testing.T) {
	pos := board.NewPosition()
	from := board.MustCoord(1, 0)
	to := board.MustCoord(3, 0)
	pos.SetPiece(from, board.WhitePawn)
	pos.SetEnPassantTarget(board.MustCoord(4, 4))

	pos.ApplyMove(from, to)

	testutil.AssertEqual(t, pos.ActivePlayer(), board.White)
	target, ok := pos.EnPassantTarget()
	testutil.AssertTrue(t, ok, "en-passant target survives ApplyMove")
	testutil.AssertEqual(t, target, board.MustCoord(4, 4))
	testutil.AssertEqual(t, pos.History().Len(), 0)
	testutil.AssertEqual(t, pos.HalfMoves(), 0)
	testutil.AssertEqual(t, pos.FullMoves(), 1)
}

func TestAdvanceTurn(t *testing.T) {
	pos := board.NewPosition()
	testutil.AssertEqual(t, pos.ActivePlayer(), board.White)
	testutil.AssertEqual(t, pos.Opponent(), board.Black)

	pos.AdvanceTurn()
	testutil.AssertEqual(t, pos.ActivePlayer(), board.Black)
	testutil.AssertEqual(t, pos.Opponent(), board.White)

	pos.AdvanceTurn()
	testutil.AssertEqual(t, pos.ActivePlayer(), board.White)
}

func TestRecordMove(t *testing.T) {
	pos := board.NewPosition()
	first := board.Move{From: board.MustCoord(1, 4), To: board.MustCoord(3, 4)}
	second := board.Move{From: board.MustCoord(6, 4), To: board.MustCoord(4, 4)}

	pos.RecordMove(first)
	pos.RecordMove(second)

	testutil.AssertEqual(t, pos.History().Len(), 2)
	last, ok := pos.History().Last()
	testutil.AssertTrue(t, ok, "history has a last move")
	testutil.AssertEqual(t, last, second)
	testutil.AssertEqual(t, pos.History().Moves()[0], first)
}

func TestEnPassantTargetLifecycle(t *testing.T) {
	pos := board.NewPosition()
	if _, ok := pos.EnPassantTarget(); ok {
		t.Fatal("fresh position must have no en-passant target")
	}

	c := board.MustCoord(2, 3)
	pos.SetEnPassantTarget(c)
	got, ok := pos.EnPassantTarget()
	testutil.AssertTrue(t, ok, "target set")
	testutil.AssertEqual(t, got, c)

	pos.ClearEnPassantTarget()
	if _, ok := pos.EnPassantTarget(); ok {
		t.Fatal("target must be cleared")
	}
}

func TestMoveString(t *testing.T) {
	m := board.Move{From: board.MustCoord(4, 1), To: board.MustCoord(4, 3)}
	testutil.AssertEqual(t, m.String(), "e2e4")
}
