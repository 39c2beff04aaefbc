package engine_test

import (
	"context"
	"testing"

	"github.com/corvidchess/corvid/pkg/board/fen"
	"github.com/corvidchess/corvid/pkg/engine"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBookFindsExpectedReplies(t *testing.T) {
	ctx := context.Background()

	book, err := engine.NewBook([]engine.Line{
		{"e2e4", "d7d5", "d2d4"},
		{"e2e4", "d7d6"},
		{"d2d4", "d7d6"},
	})
	require.NoError(t, err)

	tests := []struct {
		pos   string
		moves map[string]uint32
	}{
		{fen.Initial, map[string]uint32{"d2d4": 1, "e2e4": 2}},
		{"rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1", map[string]uint32{"d7d5": 1, "d7d6": 1}},
		{"rnbqkbnr/pppppppp/8/8/3P4/8/PPP1PPPP/RNBQKBNR b KQkq d3 0 1", map[string]uint32{"d7d6": 1}},
	}

	for _, tt := range tests {
		candidates, err := book.Find(ctx, tt.pos)
		require.NoError(t, err)

		got := map[string]uint32{}
		for _, c := range candidates {
			got[c.Move.String()] = c.TimesPlayed
		}
		assert.Equal(t, tt.moves, got)
	}
}

func TestBookExhaustedAfterTheBookEnds(t *testing.T) {
	ctx := context.Background()

	book, err := engine.NewBook([]engine.Line{{"e2e4", "e7e5"}})
	require.NoError(t, err)

	candidates, err := book.Find(ctx, "rnbqkbnr/pppp1ppp/8/4p3/4P3/8/PPPP1PPP/RNBQKBNR w KQkq e6 0 2")
	require.NoError(t, err)
	assert.Empty(t, candidates)
}

func TestNoBookIsAlwaysEmpty(t *testing.T) {
	ctx := context.Background()

	candidates, err := engine.NoBook.Find(ctx, fen.Initial)
	require.NoError(t, err)
	assert.Empty(t, candidates)
}
