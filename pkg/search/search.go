// Package search implements principal variation search with a transposition table,
// null-move pruning, late-move reductions, quiescence search and iterative deepening
// with aspiration windows (spec.md §4.G, §4.H).
package search

import (
	"fmt"
	"time"

	"github.com/corvidchess/corvid/pkg/board"
)

// PV is the result published at the end of one iterative-deepening iteration.
type PV struct {
	Depth int
	Moves []board.Move
	Score board.Score
	Nodes uint64
	Time  time.Duration
	Hash  float64 // TT utilization [0;1]
}

func (p PV) String() string {
	return fmt.Sprintf("depth=%v score=%v nodes=%v time=%v hash=%v%% pv=%v",
		p.Depth, p.Score, p.Nodes, p.Time, int(100*p.Hash), board.FormatMoves(p.Moves))
}
