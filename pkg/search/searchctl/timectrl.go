// Package searchctl provides the iterative-deepening launch harness and time
// management that sits between the protocol front end and pkg/search (spec.md §4.H
// "Time management", §5).
package searchctl

import (
	"fmt"
	"time"

	"github.com/corvidchess/corvid/pkg/board"
)

// Mode selects how a search's time budget is determined.
type Mode uint8

const (
	// Infinite searches until externally stopped.
	Infinite Mode = iota
	// MoveTime searches for a fixed caller-specified wall-clock budget.
	MoveTime
	// Clock derives a per-move budget from the remaining clock and increment.
	Clock
)

// TimeControl holds the parameters for one of the three time-management modes
// (§4.H "Time management").
type TimeControl struct {
	Mode Mode

	// MoveTimeBudget is used when Mode == MoveTime.
	MoveTimeBudget time.Duration

	// TimeLeft/Increment are used when Mode == Clock.
	TimeLeft  time.Duration
	Increment time.Duration
}

func (t TimeControl) String() string {
	switch t.Mode {
	case MoveTime:
		return fmt.Sprintf("movetime=%v", t.MoveTimeBudget)
	case Clock:
		return fmt.Sprintf("clock=%v+%v", t.TimeLeft, t.Increment)
	default:
		return "infinite"
	}
}

// Budget returns the soft and hard time limits for one move, given the material still
// on the board (in pawn units, 0..79). ok is false for Infinite, which has no budget.
// Past soft, the search should not start a new iteration; hard is an absolute ceiling
// enforced by a timer (§5 "Cancellation").
func (t TimeControl) Budget(materialPawns int32) (soft, hard time.Duration, ok bool) {
	switch t.Mode {
	case MoveTime:
		return t.MoveTimeBudget, t.MoveTimeBudget, true
	case Clock:
		h := remainingHalfmoves(materialPawns)
		soft = (t.TimeLeft + time.Duration(h)*t.Increment/2) / time.Duration(h) / 2
		return soft, 3 * soft, true
	default:
		return 0, 0, false
	}
}

// remainingHalfmoves is H(material): a piecewise-linear estimate of the number of
// half-moves left in the game, per §4.H.
func remainingHalfmoves(material int32) time.Duration {
	var h int32
	switch {
	case material < 20:
		h = material + 10
	case material < 60:
		h = 3*material/8 + 22
	default:
		h = 5*material/4 - 30
	}
	if h < 1 {
		h = 1
	}
	return time.Duration(h)
}

// MaterialPawns sums the pawn-unit value of every piece (excluding kings) on the board,
// the input H(material) expects.
func MaterialPawns(pos *board.Position) int32 {
	var total int32
	for pt := board.Pawn; pt <= board.Queen; pt++ {
		count := pos.Pieces(pt, board.White).PopCount() + pos.Pieces(pt, board.Black).PopCount()
		total += int32(count) * pt.Value() / 100
	}
	return total
}
