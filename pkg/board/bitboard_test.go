package board_test

import (
	"testing"

	"github.com/corvidchess/corvid/pkg/board"
	"github.com/stretchr/testify/assert"
)

func TestBitboardSetClearIsSet(t *testing.T) {
	var bb board.Bitboard
	assert.False(t, bb.IsSet(board.E1))

	bb = bb.Set(board.E1)
	assert.True(t, bb.IsSet(board.E1))
	assert.Equal(t, 1, bb.PopCount())

	bb = bb.Clear(board.E1)
	assert.False(t, bb.IsSet(board.E1))
	assert.Zero(t, bb.PopCount())
}

func TestBitboardLSBAndPopLSB(t *testing.T) {
	var bb board.Bitboard
	assert.Equal(t, board.NoSquare, bb.LSB())

	bb = bb.Set(board.E8).Set(board.E1)
	assert.Equal(t, board.E8, bb.LSB(), "a8/e8 side has the lower square indices")

	sq := bb.PopLSB()
	assert.Equal(t, board.E8, sq)
	assert.Equal(t, board.E1, bb.LSB())
	assert.Equal(t, 1, bb.PopCount())
}

func TestBitRankAndBitFile(t *testing.T) {
	rank1 := board.BitRank(board.Rank(7))
	assert.True(t, rank1.IsSet(board.E1))
	assert.False(t, rank1.IsSet(board.E8))

	fileA := board.BitFile(board.FileA)
	assert.True(t, fileA.IsSet(board.A1))
	assert.True(t, fileA.IsSet(board.A8))
	assert.False(t, fileA.IsSet(board.E1))
}

func TestShiftNAndShiftSMoveTowardTheRespectiveBackRank(t *testing.T) {
	e4, err := board.ParseSquareStr("e4")
	assert.NoError(t, err)

	bb := board.EmptyBitboard.Set(e4)

	e5, err := board.ParseSquareStr("e5")
	assert.NoError(t, err)
	assert.True(t, bb.ShiftN().IsSet(e5), "ShiftN moves toward rank 8")

	e3, err := board.ParseSquareStr("e3")
	assert.NoError(t, err)
	assert.True(t, bb.ShiftS().IsSet(e3), "ShiftS moves toward rank 1")
}

func TestShiftEAndShiftWClipAtTheEdge(t *testing.T) {
	h := board.EmptyBitboard.Set(board.H1)
	assert.Zero(t, h.ShiftE().PopCount(), "shifting east off the h-file must vanish, not wrap")

	a := board.EmptyBitboard.Set(board.A1)
	assert.Zero(t, a.ShiftW().PopCount(), "shifting west off the a-file must vanish, not wrap")
}

func TestPawnCaptureboardIsColorRelative(t *testing.T) {
	e4, err := board.ParseSquareStr("e4")
	assert.NoError(t, err)
	pawns := board.EmptyBitboard.Set(e4)

	d5, err := board.ParseSquareStr("d5")
	assert.NoError(t, err)
	f5, err := board.ParseSquareStr("f5")
	assert.NoError(t, err)

	white := board.PawnCaptureboard(board.White, pawns)
	assert.True(t, white.IsSet(d5))
	assert.True(t, white.IsSet(f5))

	d3, err := board.ParseSquareStr("d3")
	assert.NoError(t, err)
	f3, err := board.ParseSquareStr("f3")
	assert.NoError(t, err)

	black := board.PawnCaptureboard(board.Black, pawns)
	assert.True(t, black.IsSet(d3))
	assert.True(t, black.IsSet(f3))
}

func TestPawnPromotionAndHomeRanks(t *testing.T) {
	assert.Equal(t, board.Rank8Bits, board.PawnPromotionRank(board.White))
	assert.Equal(t, board.Rank1Bits, board.PawnPromotionRank(board.Black))

	a2, err := board.ParseSquareStr("a2")
	assert.NoError(t, err)
	a7, err := board.ParseSquareStr("a7")
	assert.NoError(t, err)

	assert.True(t, board.PawnHomeRank(board.White).IsSet(a2))
	assert.True(t, board.PawnHomeRank(board.Black).IsSet(a7))
}
