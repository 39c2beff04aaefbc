package search

import (
	"testing"

	"github.com/corvidchess/corvid/pkg/board"
	"github.com/corvidchess/corvid/pkg/board/fen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKillerTableRecordsMostRecentFirstAndDedups(t *testing.T) {
	kt := NewKillerTable()

	a := board.NewMove(board.E1, board.E8, board.Normal)
	b := board.NewMove(board.D1, board.D8, board.Normal)

	kt.Add(0, a)
	assert.True(t, kt.Is(0, a))
	assert.False(t, kt.Is(1, a), "killers are tracked per ply")

	kt.Add(0, b)
	assert.True(t, kt.Is(0, a))
	assert.True(t, kt.Is(0, b))

	// Re-adding an existing top killer must not duplicate or reorder it.
	kt.Add(0, b)
	assert.True(t, kt.Is(0, a))
	assert.True(t, kt.Is(0, b))
}

func TestKillerTableEvictsTheOldestSlot(t *testing.T) {
	kt := NewKillerTable()

	a := board.NewMove(board.E1, board.E8, board.Normal)
	b := board.NewMove(board.D1, board.D8, board.Normal)
	c := board.NewMove(board.C1, board.C8, board.Normal)

	kt.Add(0, a)
	kt.Add(0, b)
	kt.Add(0, c) // only 2 slots: a must fall off

	assert.False(t, kt.Is(0, a))
	assert.True(t, kt.Is(0, b))
	assert.True(t, kt.Is(0, c))
}

func TestHistoryTableAccumulatesDepthSquared(t *testing.T) {
	ht := NewHistoryTable()

	ht.Add(board.White, board.E1, board.E8, 3)
	assert.EqualValues(t, 9, ht.Score(board.White, board.E1, board.E8))

	ht.Add(board.White, board.E1, board.E8, 4)
	assert.EqualValues(t, 9+16, ht.Score(board.White, board.E1, board.E8))

	// Black's history is tracked independently of White's.
	assert.Zero(t, ht.Score(board.Black, board.E1, board.E8))
}

func TestMoveOrderingPutsCapturesAheadOfQuietMoves(t *testing.T) {
	pos, _, _, _, err := fen.Decode(board.NewDefaultZobristTable(), "4k3/8/8/3p4/4P3/8/8/4K3 w - - 0 1")
	require.NoError(t, err)

	d5, err := board.ParseSquareStr("d5")
	require.NoError(t, err)

	moves := board.GenerateLegalMoves(pos)

	var capture board.Move
	for _, m := range moves {
		if m.To() == d5 {
			capture = m
		}
	}
	require.NotEqual(t, board.NoMove, capture, "expected the exd5 capture to be a legal move")

	list := newMoveList(pos, moves, board.NoMove, 0, NewKillerTable(), NewHistoryTable())

	first, ok := list.Next()
	require.True(t, ok)
	assert.Equal(t, capture, first, "the only capture on the board should be ordered first")
}

func TestMoveOrderingRanksHashMoveAboveAnEvenCaptureAndQuietMoves(t *testing.T) {
	pos, _, _, _, err := fen.Decode(board.NewDefaultZobristTable(), "4k3/8/8/3p4/4P3/8/8/4K3 w - - 0 1")
	require.NoError(t, err)

	moves := board.GenerateLegalMoves(pos)
	require.NotEmpty(t, moves)

	var hashMove board.Move
	for _, m := range moves {
		d5, _ := board.ParseSquareStr("d5")
		if m.To() != d5 {
			hashMove = m
			break
		}
	}
	require.NotEqual(t, board.NoMove, hashMove)

	list := newMoveList(pos, moves, hashMove, 0, NewKillerTable(), NewHistoryTable())
	first, ok := list.Next()
	require.True(t, ok)
	assert.Equal(t, hashMove, first)
}
