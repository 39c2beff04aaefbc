package searchctl_test

import (
	"testing"
	"time"

	"github.com/corvidchess/corvid/pkg/board"
	"github.com/corvidchess/corvid/pkg/board/fen"
	"github.com/corvidchess/corvid/pkg/search/searchctl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimeControlBudgetInfiniteHasNoBudget(t *testing.T) {
	_, _, ok := searchctl.TimeControl{Mode: searchctl.Infinite}.Budget(40)
	assert.False(t, ok)
}

func TestTimeControlBudgetMoveTimeIsFixed(t *testing.T) {
	tc := searchctl.TimeControl{Mode: searchctl.MoveTime, MoveTimeBudget: 500 * time.Millisecond}
	soft, hard, ok := tc.Budget(40)
	require.True(t, ok)
	assert.Equal(t, 500*time.Millisecond, soft)
	assert.Equal(t, 500*time.Millisecond, hard)
}

func TestTimeControlBudgetClockDerivesFromRemainingTime(t *testing.T) {
	tc := searchctl.TimeControl{Mode: searchctl.Clock, TimeLeft: 60 * time.Second, Increment: 1 * time.Second}

	// material=10 takes the material+10 branch of remainingHalfmoves: h=20.
	// soft = (60s + 20*1s/2) / 20 / 2 = 70s/20/2 = 1.75s; hard = 3*soft = 5.25s.
	soft, hard, ok := tc.Budget(10)
	require.True(t, ok)
	assert.Equal(t, 1750*time.Millisecond, soft)
	assert.Equal(t, 5250*time.Millisecond, hard)
}

func TestMaterialPawnsSumsNonKingValuesInPawnUnits(t *testing.T) {
	pos, _, _, _, err := fen.Decode(board.NewDefaultZobristTable(), fen.Initial)
	require.NoError(t, err)
	assert.EqualValues(t, 79, searchctl.MaterialPawns(pos))

	pos, _, _, _, err = fen.Decode(board.NewDefaultZobristTable(), "4k3/8/8/8/8/8/8/4K3 w - - 0 1")
	require.NoError(t, err)
	assert.EqualValues(t, 0, searchctl.MaterialPawns(pos))
}
