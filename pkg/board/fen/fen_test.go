package fen_test

import (
	"testing"

	"github.com/corvidchess/corvid/pkg/board"
	"github.com/corvidchess/corvid/pkg/board/fen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeEncodeRoundTrips(t *testing.T) {
	tests := []string{
		fen.Initial,
		"4k3/2pppp2/8/4P1K1/4PP2/3P4/8/8 w - - 0 1",
		"rnbqkbnr/pppppppp/8/8/8/5P2/PPPPP1PP/RNBQKBNR w KQkq - 0 1",
		"r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1",
		"rnbqkbnr/ppp1pppp/8/3p4/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1",
	}

	zt := board.NewDefaultZobristTable()
	for _, tt := range tests {
		p, c, np, fm, err := fen.Decode(zt, tt)
		require.NoError(t, err)

		assert.Equal(t, tt, fen.Encode(p, c, np, fm))
	}
}

func TestDecodeTolerantOfMissingClocks(t *testing.T) {
	zt := board.NewDefaultZobristTable()

	p, c, np, fm, err := fen.Decode(zt, "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq -")
	require.NoError(t, err)
	assert.Equal(t, board.White, c)
	assert.Equal(t, 0, np)
	assert.Equal(t, 1, fm)
	assert.Equal(t, fen.Initial, fen.Encode(p, c, np, fm))
}

func TestDecodeRejectsMalformedInput(t *testing.T) {
	zt := board.NewDefaultZobristTable()

	tests := []string{
		"",
		"not a fen",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR x KQkq - 0 1",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w ZZZZ - 0 1",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq z9 0 1",
	}
	for _, tt := range tests {
		_, _, _, _, err := fen.Decode(zt, tt)
		assert.Error(t, err, tt)
	}
}
