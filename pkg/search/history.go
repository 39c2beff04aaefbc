package search

import "github.com/corvidchess/corvid/pkg/board"

// HistoryTable is the history heuristic: a per-side, per-from/to score incremented by
// depth^2 whenever a quiet move causes a beta cut, used as a move-ordering tie-breaker
// among quiet, non-killer moves (§4.H).
type HistoryTable struct {
	scores [2][board.NumSquares][board.NumSquares]int32
}

func NewHistoryTable() *HistoryTable {
	return &HistoryTable{}
}

func (ht *HistoryTable) Add(side board.Color, from, to board.Square, depth int) {
	ht.scores[side][from][to] += int32(depth * depth)
}

func (ht *HistoryTable) Score(side board.Color, from, to board.Square) int32 {
	return ht.scores[side][from][to]
}
