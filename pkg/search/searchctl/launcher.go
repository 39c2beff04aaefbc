package searchctl

import (
	"context"
	"fmt"
	"strings"

	"github.com/corvidchess/corvid/pkg/board"
	"github.com/corvidchess/corvid/pkg/search"
	"github.com/seekerror/stdlib/pkg/lang"
)

// Options hold dynamic search options, set anew on each search (§6 "go").
type Options struct {
	// DepthLimit, if set, stops iterative deepening after the given ply depth. A limit
	// of zero means no depth limit.
	DepthLimit lang.Optional[uint]
	// TimeControl, if set, bounds the search by wall-clock time instead of (or as well
	// as) depth.
	TimeControl lang.Optional[TimeControl]
}

func (o Options) String() string {
	var parts []string
	if v, ok := o.DepthLimit.V(); ok {
		parts = append(parts, fmt.Sprintf("depth=%v", v))
	}
	if v, ok := o.TimeControl.V(); ok {
		parts = append(parts, fmt.Sprintf("time=%v", v))
	}
	return fmt.Sprintf("[%v]", strings.Join(parts, ", "))
}

// Launcher spins off a single cooperative search worker per call (§5 "Concurrency &
// resource model"): one goroutine, one shared atomic quit flag, no locks beyond the one guarding the
// last-published PV.
type Launcher interface {
	// Launch starts a new search from pos. ancestors is the game's Zobrist history up
	// to and including pos, for in-search repetition detection. The returned channel
	// receives one PV per completed iterative-deepening iteration and is closed when
	// the search ends (depth limit reached, forced mate found, or halted).
	Launch(ctx context.Context, pos *board.Position, ancestors []board.ZobristHash, opt Options) (Handle, <-chan search.PV)
}

// Handle lets the caller stop a launched search and retrieve its best result so far.
type Handle interface {
	// Halt stops the search, if running, and returns its most recent completed PV.
	// Idempotent.
	Halt() search.PV
}
