package tablebase_test

import (
	"testing"

	"github.com/corvidchess/corvid/pkg/board"
	"github.com/corvidchess/corvid/pkg/board/fen"
	"github.com/corvidchess/corvid/pkg/tablebase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResultStringAndIsDecisive(t *testing.T) {
	tests := []struct {
		r        tablebase.Result
		want     string
		decisive bool
	}{
		{tablebase.Failed, "failed", false},
		{tablebase.Win, "win", true},
		{tablebase.CursedWin, "cursed win", true},
		{tablebase.Draw, "draw", false},
		{tablebase.BlessedLoss, "blessed loss", true},
		{tablebase.Loss, "loss", true},
		{tablebase.Stalemate, "stalemate", false},
		{tablebase.Checkmate, "checkmate", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.r.String())
		assert.Equal(t, tt.decisive, tt.r.IsDecisive())
	}
}

func TestNoOracleAlwaysFails(t *testing.T) {
	pos, _, _, _, err := fen.Decode(board.NewDefaultZobristTable(), fen.Initial)
	require.NoError(t, err)

	assert.Equal(t, tablebase.Failed, tablebase.NoOracle{}.Probe(pos))
}

func TestPieceCountMatchesOccupancy(t *testing.T) {
	pos, _, _, _, err := fen.Decode(board.NewDefaultZobristTable(), fen.Initial)
	require.NoError(t, err)
	assert.Equal(t, 32, tablebase.PieceCount(pos))

	pos, _, _, _, err = fen.Decode(board.NewDefaultZobristTable(), "4k3/8/8/8/8/8/8/4K3 w - - 0 1")
	require.NoError(t, err)
	assert.Equal(t, 2, tablebase.PieceCount(pos))
}
