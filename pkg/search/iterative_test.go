package search_test

import (
	"context"
	"testing"

	"github.com/corvidchess/corvid/pkg/board"
	"github.com/corvidchess/corvid/pkg/board/fen"
	"github.com/corvidchess/corvid/pkg/search"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/atomic"
)

func TestRunIterativeDeepeningPublishesOnePVPerDepthUpToTheLimit(t *testing.T) {
	pos, _, _, _, err := fen.Decode(board.NewDefaultZobristTable(), fen.Initial)
	require.NoError(t, err)

	s := newSearcher()
	quit := atomic.NewBool(false)

	var depths []int
	last := s.RunIterativeDeepening(context.Background(), pos, []board.ZobristHash{pos.ZobristHash()}, 3, quit, func(pv search.PV) {
		depths = append(depths, pv.Depth)
	})

	assert.Equal(t, []int{1, 2, 3}, depths)
	assert.Equal(t, 3, last.Depth)
	assert.NotEmpty(t, last.Moves)
}

func TestRunIterativeDeepeningStopsWhenQuitIsSetBetweenIterations(t *testing.T) {
	pos, _, _, _, err := fen.Decode(board.NewDefaultZobristTable(), fen.Initial)
	require.NoError(t, err)

	s := newSearcher()
	quit := atomic.NewBool(false)

	calls := 0
	last := s.RunIterativeDeepening(context.Background(), pos, []board.ZobristHash{pos.ZobristHash()}, 0, quit, func(pv search.PV) {
		calls++
		if calls == 2 {
			quit.Store(true)
		}
	})

	assert.Equal(t, 2, calls)
	assert.Equal(t, 2, last.Depth)
}
