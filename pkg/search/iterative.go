package search

import (
	"context"
	"time"

	"github.com/corvidchess/corvid/pkg/board"
	"go.uber.org/atomic"
)

// aspirationWindow is W in §4.H's "[best-W, best+W], W=33cp".
const aspirationWindow = board.Score(33)

// aspirationStartDepth is the depth at which aspiration windows kick in; below it,
// results aren't yet stable enough to bet a narrow window on (§4.H).
const aspirationStartDepth = 4

// RunIterativeDeepening searches pos from depth 1 upward, publishing one PV per
// completed iteration, until quit is set or maxDepth (0 = unbounded) is reached. It
// returns the last completed iteration's PV; a quit observed mid-iteration discards
// that iteration's partial result and keeps the previous one (§5 "Cancellation").
func (s *Searcher) RunIterativeDeepening(ctx context.Context, pos *board.Position, ancestors []board.ZobristHash, maxDepth int, quit *atomic.Bool, publish func(PV)) PV {
	var last PV
	var bestScore board.Score

	for depth := 1; !quit.Load(); depth++ {
		start := time.Now()

		alpha, beta := board.MinEval, board.MaxEval
		if depth >= aspirationStartDepth {
			alpha, beta = bestScore-aspirationWindow, bestScore+aspirationWindow
		}

		var res Result
		var err error
		for w := aspirationWindow; ; {
			res, err = s.Search(ctx, pos, ancestors, depth, alpha, beta, quit)
			if err != nil {
				break
			}
			if res.Score <= alpha && alpha > board.MinEval {
				w *= 2
				if w > board.MaxEval/2 {
					alpha, beta = board.MinEval, board.MaxEval
				} else {
					alpha = res.Score - w
				}
				continue
			}
			if res.Score >= beta && beta < board.MaxEval {
				w *= 2
				if w > board.MaxEval/2 {
					alpha, beta = board.MinEval, board.MaxEval
				} else {
					beta = res.Score + w
				}
				continue
			}
			break
		}
		if err != nil {
			return last // halted: discard this iteration, keep the last completed one
		}

		bestScore = res.Score
		pv := PV{
			Depth: depth,
			Moves: res.PV,
			Score: res.Score,
			Nodes: res.Nodes,
			Time:  time.Since(start),
			Hash:  s.TT.Used(),
		}
		last = pv
		publish(pv)

		if maxDepth > 0 && depth >= maxDepth {
			return last
		}
	}
	return last
}
