package search

import (
	"fmt"
	"math/bits"
	"sync/atomic"
	"unsafe"

	"github.com/corvidchess/corvid/pkg/board"
	"github.com/seekerror/logw"

	"context"
)

// Bound classifies how a stored score relates to the true minimax value at the depth
// it was stored at (§4.G).
type Bound uint8

const (
	ExactBound Bound = iota
	LowerBound
	UpperBound
)

func (b Bound) String() string {
	switch b {
	case ExactBound:
		return "Exact"
	case LowerBound:
		return "Lower"
	case UpperBound:
		return "Upper"
	default:
		return "?"
	}
}

// Entry is one transposition table slot: 16 bytes. Score is narrowed to i16 on
// storage (§3, §7); board.ClampI16 does the narrowing at the one call site that
// builds an Entry (pvs.go's Store).
type Entry struct {
	Hash  board.ZobristHash
	Score int16
	Best  board.Move
	Depth int16
	Bound Bound
}

// TranspositionTable caches search results keyed by Zobrist hash. Must be safe for
// concurrent Probe/Store (the UCI front end may probe it for "info" output while a
// search is running).
type TranspositionTable interface {
	Probe(hash board.ZobristHash) (Entry, bool)
	Store(e Entry)
	Size() uint64
	Used() float64
}

// table is a fixed-capacity, open-addressed, always-replace table: index = hash mod N,
// per §4.G. N is rounded up to a power of two so the mask can replace a modulo.
type table struct {
	entries []unsafe.Pointer // *Entry
	mask    uint64
	used    int64
}

// TranspositionTableFactory constructs a TranspositionTable of approximately
// sizeBytes; the engine facade uses this to rebuild the table with a new size on
// demand without depending on the concrete implementation.
type TranspositionTableFactory func(ctx context.Context, sizeBytes uint64) TranspositionTable

// NewTranspositionTable allocates a table of approximately sizeBytes, zero-filled.
func NewTranspositionTable(ctx context.Context, sizeBytes uint64) TranspositionTable {
	const entrySize = 32 // rounded up from sizeof(Entry) for alignment headroom
	n := uint64(1) << bits.Len64(sizeBytes/entrySize-1)
	if n == 0 {
		n = 1
	}

	logw.Infof(ctx, "Allocating %vMB TT with %v entries", sizeBytes>>20, n)

	return &table{
		entries: make([]unsafe.Pointer, n),
		mask:    n - 1,
	}
}

func (t *table) Size() uint64 {
	return uint64(len(t.entries)) * 32
}

func (t *table) Used() float64 {
	return float64(atomic.LoadInt64(&t.used)) / float64(len(t.entries))
}

func (t *table) Probe(hash board.ZobristHash) (Entry, bool) {
	slot := &t.entries[uint64(hash)&t.mask]
	ptr := (*Entry)(atomic.LoadPointer(slot))
	if ptr == nil || ptr.Hash != hash {
		return Entry{}, false
	}
	return *ptr, true
}

// Store always replaces whatever occupied the slot, per §4.G.
func (t *table) Store(e Entry) {
	slot := &t.entries[uint64(e.Hash)&t.mask]
	fresh := new(Entry)
	*fresh = e

	old := atomic.SwapPointer(slot, unsafe.Pointer(fresh))
	if old == nil {
		atomic.AddInt64(&t.used, 1)
	}
}

func (t *table) String() string {
	return fmt.Sprintf("TT[%vMB @ %v%%]", t.Size()>>20, int(100*t.Used()))
}

// NoTranspositionTable is a Nop implementation, useful for perft or testing without a TT.
type NoTranspositionTable struct{}

func (NoTranspositionTable) Probe(board.ZobristHash) (Entry, bool) { return Entry{}, false }
func (NoTranspositionTable) Store(Entry)                           {}
func (NoTranspositionTable) Size() uint64                          { return 0 }
func (NoTranspositionTable) Used() float64                         { return 0 }
