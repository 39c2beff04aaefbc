package search_test

import (
	"context"
	"testing"

	"github.com/corvidchess/corvid/pkg/search"
	"github.com/stretchr/testify/assert"
)

func TestTranspositionTableSizeIsRoundedToAPowerOfTwoEntryCount(t *testing.T) {
	tt := search.NewTranspositionTable(context.Background(), 32*4)
	assert.EqualValues(t, 32*4, tt.Size())
}

func TestTranspositionTableStoreAndProbeRoundTrip(t *testing.T) {
	tt := search.NewTranspositionTable(context.Background(), 32*4)

	e := search.Entry{Hash: 5, Score: 17, Bound: search.ExactBound, Depth: 3}
	tt.Store(e)

	got, ok := tt.Probe(5)
	assert.True(t, ok)
	assert.Equal(t, e, got)

	_, ok = tt.Probe(6)
	assert.False(t, ok)
}

func TestTranspositionTableAlwaysReplacesOnHashCollision(t *testing.T) {
	tt := search.NewTranspositionTable(context.Background(), 32*4)

	// With 4 slots (mask 3), hashes 5 and 9 collide on slot 1.
	tt.Store(search.Entry{Hash: 5, Score: 1})
	tt.Store(search.Entry{Hash: 9, Score: 2})

	_, ok := tt.Probe(5)
	assert.False(t, ok, "the newer entry must have evicted the older one")

	got, ok := tt.Probe(9)
	assert.True(t, ok)
	assert.EqualValues(t, 2, got.Score)
}

func TestTranspositionTableUsedTracksDistinctSlotsOnly(t *testing.T) {
	tt := search.NewTranspositionTable(context.Background(), 32*4)

	tt.Store(search.Entry{Hash: 5})
	tt.Store(search.Entry{Hash: 8}) // distinct slot: 8&3 == 0
	tt.Store(search.Entry{Hash: 5}) // same slot as the first: no new usage

	assert.InDelta(t, 0.5, tt.Used(), 1e-9)
}

func TestNoTranspositionTableNeverStores(t *testing.T) {
	tt := search.NoTranspositionTable{}
	tt.Store(search.Entry{Hash: 1})

	_, ok := tt.Probe(1)
	assert.False(t, ok)
	assert.EqualValues(t, 0, tt.Size())
	assert.Zero(t, tt.Used())
}
