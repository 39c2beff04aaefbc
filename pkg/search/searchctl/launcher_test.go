package searchctl_test

import (
	"context"
	"testing"
	"time"

	"github.com/corvidchess/corvid/pkg/board"
	"github.com/corvidchess/corvid/pkg/board/fen"
	"github.com/corvidchess/corvid/pkg/eval"
	"github.com/corvidchess/corvid/pkg/search"
	"github.com/corvidchess/corvid/pkg/search/searchctl"
	"github.com/corvidchess/corvid/pkg/tablebase"
	"github.com/seekerror/stdlib/pkg/lang"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIterativeLauncherPublishesUntilDepthLimitThenClosesTheChannel(t *testing.T) {
	pos, _, _, _, err := fen.Decode(board.NewDefaultZobristTable(), fen.Initial)
	require.NoError(t, err)

	tt := search.NewTranspositionTable(context.Background(), 1<<20)
	searcher := search.NewSearcher(tt, eval.Tapered{}, tablebase.NoOracle{})
	launcher := searchctl.NewIterative(searcher)

	handle, out := launcher.Launch(context.Background(), pos, []board.ZobristHash{pos.ZobristHash()}, searchctl.Options{
		DepthLimit: lang.Some(uint(3)),
	})

	var last search.PV
	for pv := range out {
		assert.Greater(t, pv.Depth, last.Depth)
		last = pv
	}
	assert.Equal(t, 3, last.Depth)

	// Halt after completion is idempotent and returns the final PV.
	assert.Equal(t, last, handle.Halt())
	assert.Equal(t, last, handle.Halt())
}

func TestIterativeLauncherHaltStopsAnInProgressSearch(t *testing.T) {
	pos, _, _, _, err := fen.Decode(board.NewDefaultZobristTable(), fen.Initial)
	require.NoError(t, err)

	tt := search.NewTranspositionTable(context.Background(), 1<<20)
	searcher := search.NewSearcher(tt, eval.Tapered{}, tablebase.NoOracle{})
	launcher := searchctl.NewIterative(searcher)

	handle, out := launcher.Launch(context.Background(), pos, []board.ZobristHash{pos.ZobristHash()}, searchctl.Options{})

	pv := <-out // wait for at least one completed iteration
	require.NotZero(t, pv.Depth)

	result := handle.Halt()
	assert.GreaterOrEqual(t, result.Depth, pv.Depth)

	// Draining out must terminate promptly now that the search has been halted.
	done := make(chan struct{})
	go func() {
		for range out {
		}
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Halt did not stop the search in time")
	}
}
