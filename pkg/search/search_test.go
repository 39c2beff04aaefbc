package search_test

import (
	"context"
	"testing"

	"github.com/corvidchess/corvid/pkg/board"
	"github.com/corvidchess/corvid/pkg/board/fen"
	"github.com/corvidchess/corvid/pkg/eval"
	"github.com/corvidchess/corvid/pkg/search"
	"github.com/corvidchess/corvid/pkg/tablebase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/atomic"
)

func newSearcher() *search.Searcher {
	tt := search.NewTranspositionTable(context.Background(), 1<<20)
	return search.NewSearcher(tt, eval.Tapered{}, tablebase.NoOracle{})
}

func TestSearchFindsForcedMateInOne(t *testing.T) {
	// White to move, back-rank mate in one: Black king boxed in on g8 by its own pawns,
	// White rook delivers mate with Ra8#.
	pos, _, _, _, err := fen.Decode(board.NewDefaultZobristTable(), "6k1/5ppp/8/8/8/8/8/R6K w - - 0 1")
	require.NoError(t, err)

	s := newSearcher()
	quit := atomic.NewBool(false)

	res, err := s.Search(context.Background(), pos, []board.ZobristHash{pos.ZobristHash()}, 4, -board.MaxEval, board.MaxEval, quit)
	require.NoError(t, err)

	require.NotEmpty(t, res.PV)
	assert.True(t, res.Score.IsMateScore())
	assert.Equal(t, 1, res.Score.MateIn())

	best := res.PV[0]
	pos.MakeMove(best)
	assert.True(t, pos.IsChecked(board.Black))
	assert.Empty(t, board.GenerateLegalMoves(pos))
	pos.UnmakeMove(best)
}

func TestSearchHaltsImmediatelyWhenQuitIsSet(t *testing.T) {
	pos, _, _, _, err := fen.Decode(board.NewDefaultZobristTable(), fen.Initial)
	require.NoError(t, err)

	s := newSearcher()
	quit := atomic.NewBool(true)

	_, err = s.Search(context.Background(), pos, []board.ZobristHash{pos.ZobristHash()}, 4, -board.MaxEval, board.MaxEval, quit)
	assert.ErrorIs(t, err, search.ErrHalted)
}

func TestSearchStoresATranspositionTableEntryForTheRoot(t *testing.T) {
	pos, _, _, _, err := fen.Decode(board.NewDefaultZobristTable(), fen.Initial)
	require.NoError(t, err)

	tt := search.NewTranspositionTable(context.Background(), 1<<20)
	s := search.NewSearcher(tt, eval.Tapered{}, tablebase.NoOracle{})
	quit := atomic.NewBool(false)

	_, err = s.Search(context.Background(), pos, []board.ZobristHash{pos.ZobristHash()}, 2, -board.MaxEval, board.MaxEval, quit)
	require.NoError(t, err)

	entry, ok := tt.Probe(pos.ZobristHash())
	require.True(t, ok)
	assert.EqualValues(t, 2, entry.Depth)
}
