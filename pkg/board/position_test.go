package board_test

import (
	"testing"

	"github.com/corvidchess/corvid/pkg/board"
	"github.com/corvidchess/corvid/pkg/board/fen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKingSquareAndIsChecked(t *testing.T) {
	pos := mustDecode(t, fen.Initial)
	assert.Equal(t, board.E1, pos.KingSquare(board.White))
	assert.Equal(t, board.E8, pos.KingSquare(board.Black))
	assert.False(t, pos.IsChecked(board.White))
	assert.False(t, pos.IsChecked(board.Black))

	pos = mustDecode(t, "rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3")
	assert.True(t, pos.IsChecked(board.White))
}

func TestMaterialBalanceIsZeroOnTheStartingPosition(t *testing.T) {
	pos := mustDecode(t, fen.Initial)
	assert.Zero(t, pos.MaterialBalance())
	assert.Zero(t, pos.MidgamePSQT())
	assert.Zero(t, pos.EndgamePSQT())
	assert.EqualValues(t, 24, pos.TotalMaterial())
}

func TestHasInsufficientMaterial(t *testing.T) {
	assert.True(t, mustDecode(t, "4k3/8/8/8/8/8/8/4K3 w - - 0 1").HasInsufficientMaterial())
	assert.True(t, mustDecode(t, "4k3/8/8/8/8/8/8/4KN2 w - - 0 1").HasInsufficientMaterial())
	assert.False(t, mustDecode(t, "4k3/8/8/8/8/8/8/4KR2 w - - 0 1").HasInsufficientMaterial())
	assert.False(t, mustDecode(t, fen.Initial).HasInsufficientMaterial())
}

func TestCloneIsIndependentOfTheOriginal(t *testing.T) {
	pos := mustDecode(t, fen.Initial)
	clone := pos.Clone()

	moves := board.GenerateLegalMoves(pos)
	require.NotEmpty(t, moves)
	pos.MakeMove(moves[0])

	assert.NotEqual(t, pos.ZobristHash(), clone.ZobristHash())
	assert.Equal(t, board.White, clone.SideToMove())
	assert.Equal(t, board.Black, pos.SideToMove())
}
