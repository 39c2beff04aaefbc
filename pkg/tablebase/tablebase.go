// Package tablebase defines the interface the search consumes for endgame-tablebase
// probing (spec.md §6). The tablebase file format and binding itself is an external
// collaborator, out of scope for this module; only the probe interface lives here.
package tablebase

import "github.com/corvidchess/corvid/pkg/board"

// Result is a Syzygy-style WDL/checkmate/stalemate classification.
type Result uint8

const (
	Failed Result = iota
	Win
	CursedWin
	Draw
	BlessedLoss
	Loss
	Stalemate
	Checkmate
)

func (r Result) String() string {
	switch r {
	case Win:
		return "win"
	case CursedWin:
		return "cursed win"
	case Draw:
		return "draw"
	case BlessedLoss:
		return "blessed loss"
	case Loss:
		return "loss"
	case Stalemate:
		return "stalemate"
	case Checkmate:
		return "checkmate"
	default:
		return "failed"
	}
}

// IsDecisive reports whether r is a WDL win or loss (Win, CursedWin, Loss, BlessedLoss);
// Draw, Stalemate, Checkmate and Failed report false.
func (r Result) IsDecisive() bool {
	return r == Win || r == CursedWin || r == Loss || r == BlessedLoss
}

// MaxPieces is the reach of the installed tablebase this engine was built against.
const MaxPieces = 5

// Oracle probes a position for a known endgame-tablebase result, relative to the side
// to move. The core's only requirement is this one function (§6); absent or failed
// probes fall through to normal search.
type Oracle interface {
	Probe(pos *board.Position) Result
}

// NoOracle is a Nop implementation used when no tablebase is installed.
type NoOracle struct{}

func (NoOracle) Probe(*board.Position) Result { return Failed }

// PieceCount is a convenience helper for the MaxPieces reachability check.
func PieceCount(pos *board.Position) int {
	return pos.Occupied().PopCount()
}
