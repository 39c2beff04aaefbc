package board_test

import (
	"testing"

	"github.com/corvidchess/corvid/pkg/board"
	"github.com/corvidchess/corvid/pkg/board/fen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// perft is the standard move-generator exerciser: count leaf nodes at depth, visiting
// every legal move and its unmake, to catch any make/unmake asymmetry as well as
// move-generation bugs (extra or missing moves), per the well-known reference counts at
// https://www.chessprogramming.org/Perft_Results.
func perft(pos *board.Position, depth int) int64 {
	if depth == 0 {
		return 1
	}
	var nodes int64
	for _, m := range board.GenerateLegalMoves(pos) {
		pos.MakeMove(m)
		nodes += perft(pos, depth-1)
		pos.UnmakeMove(m)
	}
	return nodes
}

func mustDecode(t *testing.T, s string) *board.Position {
	t.Helper()
	pos, _, _, _, err := fen.Decode(board.NewDefaultZobristTable(), s)
	require.NoError(t, err)
	return pos
}

func TestPerftStartingPosition(t *testing.T) {
	pos := mustDecode(t, fen.Initial)

	want := []int64{1, 20, 400, 8902, 197281}
	for depth, n := range want {
		assert.Equal(t, n, perft(pos, depth), "depth %v", depth)
	}
}

func TestPerftKiwipete(t *testing.T) {
	pos := mustDecode(t, "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")

	want := []int64{1, 48, 2039, 97862}
	for depth, n := range want {
		assert.Equal(t, n, perft(pos, depth), "depth %v", depth)
	}
}

func TestPerftPosition3(t *testing.T) {
	// An endgame-heavy position exercising en passant and check evasions.
	pos := mustDecode(t, "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1")

	want := []int64{1, 14, 191, 2812, 43238}
	for depth, n := range want {
		assert.Equal(t, n, perft(pos, depth), "depth %v", depth)
	}
}

func TestPerftPosition4PromotionsAndCastling(t *testing.T) {
	pos := mustDecode(t, "r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1")

	want := []int64{1, 6, 264, 9467}
	for depth, n := range want {
		assert.Equal(t, n, perft(pos, depth), "depth %v", depth)
	}
}

func TestMakeUnmakeRestoresExactState(t *testing.T) {
	positions := []string{
		fen.Initial,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"rnbqkbnr/ppp1pppp/8/3p4/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1",
	}

	for _, fenStr := range positions {
		pos := mustDecode(t, fenStr)
		before := fen.Encode(pos, pos.SideToMove(), pos.HalfmoveClock(), 1)
		beforeHash := pos.ZobristHash()

		for _, m := range board.GenerateLegalMoves(pos) {
			pos.MakeMove(m)
			pos.UnmakeMove(m)

			assert.Equal(t, before, fen.Encode(pos, pos.SideToMove(), pos.HalfmoveClock(), 1), "move %v", m)
			assert.Equal(t, beforeHash, pos.ZobristHash(), "move %v", m)
		}
	}
}

func TestNullMoveRoundTripsExactly(t *testing.T) {
	pos := mustDecode(t, fen.Initial)
	before := fen.Encode(pos, pos.SideToMove(), pos.HalfmoveClock(), 1)
	beforeHash := pos.ZobristHash()

	pos.MakeNullMove()
	assert.NotEqual(t, beforeHash, pos.ZobristHash())
	assert.Equal(t, board.Black, pos.SideToMove())

	pos.UnmakeNullMove()
	assert.Equal(t, before, fen.Encode(pos, pos.SideToMove(), pos.HalfmoveClock(), 1))
	assert.Equal(t, beforeHash, pos.ZobristHash())
}

func TestCheckmateHasNoLegalMoves(t *testing.T) {
	// Fool's mate.
	pos := mustDecode(t, "rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3")

	moves := board.GenerateLegalMoves(pos)
	assert.Empty(t, moves)
	assert.True(t, pos.IsChecked(board.White))
}

func TestStalemateHasNoLegalMoves(t *testing.T) {
	pos := mustDecode(t, "k7/8/1Q6/8/8/8/8/7K b - - 0 1")

	moves := board.GenerateLegalMoves(pos)
	assert.Empty(t, moves)
	assert.False(t, pos.IsChecked(board.Black))
}

func TestPinnedPieceCannotExposeTheKing(t *testing.T) {
	// White rook on e2 is pinned to the king by the black rook on e8; the bishop on
	// d1 isn't pinned and keeps its full range.
	pos := mustDecode(t, "4r3/8/8/8/8/8/4R3/3BK3 w - - 0 1")

	e2, err := board.ParseSquareStr("e2")
	require.NoError(t, err)

	for _, m := range board.GenerateLegalMoves(pos) {
		if m.From() == e2 {
			assert.Equal(t, e2.File(), m.To().File(), "pinned rook must stay on the e-file: %v", m)
		}
	}
}

func TestEnPassantExposingDiscoveredCheckIsIllegal(t *testing.T) {
	// The White king (h5) and the Black rook (a5) share rank 5 with a White pawn on d5
	// and a Black pawn that just double-pushed to e5; capturing en passant would take
	// both pawns off the rank at once, laying the Black rook's check bare along it.
	pos := mustDecode(t, "8/8/8/r2Pp2K/8/8/8/8 w - e6 0 1")

	for _, m := range board.GenerateLegalMoves(pos) {
		assert.NotEqual(t, board.EnPassant, m.Type(), "en passant must not expose the king to check")
	}
}
