package search

import (
	"context"
	"errors"
	"math"

	"github.com/corvidchess/corvid/pkg/board"
	"github.com/corvidchess/corvid/pkg/eval"
	"github.com/corvidchess/corvid/pkg/tablebase"
	"go.uber.org/atomic"
)

// ErrHalted indicates the quit flag was observed mid-search; the caller must discard
// the partial result (§5 "Cancellation").
var ErrHalted = errors.New("search halted")

// nullMoveR is the null-move reduction (§4.H step 5).
const nullMoveR = 2

// Searcher bundles the tables one engine instance reuses across an entire game: the
// transposition table survives between searches; killers and history are created
// fresh by every Search call, i.e. every fixed-depth pass (they are move-order hints for
// THIS tree, not the whole game).
type Searcher struct {
	TT     TranspositionTable
	Eval   eval.Evaluator
	Oracle tablebase.Oracle
}

func NewSearcher(tt TranspositionTable, ev eval.Evaluator, oracle tablebase.Oracle) *Searcher {
	return &Searcher{TT: tt, Eval: ev, Oracle: oracle}
}

// Result is the outcome of one fixed-depth PVS search from the root.
type Result struct {
	Score board.Score
	PV    []board.Move
	Nodes uint64
}

// Search runs one fixed-depth PVS pass over pos, starting from window [alpha, beta].
// ancestors holds the Zobrist hash of every position reached so far this game
// (including pos itself, at index pos.Ply()), used for in-search repetition detection.
// quit is polled at every node and at no other synchronization cost (§5).
func (s *Searcher) Search(ctx context.Context, pos *board.Position, ancestors []board.ZobristHash, depth int, alpha, beta board.Score, quit *atomic.Bool) (Result, error) {
	hashes := make([]board.ZobristHash, len(ancestors), len(ancestors)+depth+1)
	copy(hashes, ancestors)

	r := &run{
		s:       s,
		pos:     pos,
		hashes:  hashes,
		quit:    quit,
		killers: NewKillerTable(),
		history: NewHistoryTable(),
	}

	score, pv := r.pvs(ctx, depth, 0, alpha, beta, true, false)
	if quit.Load() {
		return Result{}, ErrHalted
	}
	return Result{Score: score, PV: pv, Nodes: r.nodes}, nil
}

// run holds the mutable state of a single fixed-depth search: the position being
// mutated in place via make/unmake, the running hash history for repetition checks,
// and the node counter and move-ordering tables scoped to this one search.
type run struct {
	s       *Searcher
	pos     *board.Position
	hashes  []board.ZobristHash
	nodes   uint64
	quit    *atomic.Bool
	killers *KillerTable
	history *HistoryTable
}

// pvs implements the §4.H node procedure. Returns a side-to-move-relative score and,
// for PV nodes, the principal variation from this node down.
func (r *run) pvs(ctx context.Context, depth, ply int, alpha, beta board.Score, isPV, isNullChild bool) (board.Score, []board.Move) {
	// 1. Stop conditions.
	if r.quit.Load() {
		return 0, nil
	}
	if r.pos.HalfmoveClock() >= 100 {
		return 0, nil
	}
	if ply > 0 && r.isRepetition() {
		return 0, nil
	}

	// 2. Leaf: quiescence.
	if depth <= 0 {
		return r.quiescence(ctx, r.pos, alpha, beta), nil
	}

	r.nodes++

	// 3. Mate-distance pruning.
	mate := board.MaxEval
	if lower := -mate + board.Score(ply); alpha < lower {
		alpha = lower
	}
	if upper := mate - board.Score(ply); beta > upper {
		beta = upper
	}
	if alpha >= beta {
		return alpha, nil
	}

	// Optional endgame-tablebase probe (§6): only past the root, where a classification
	// (not a move) is actionable.
	if ply > 0 && tablebase.PieceCount(r.pos) <= tablebase.MaxPieces {
		if res := r.s.Oracle.Probe(r.pos); res != tablebase.Failed {
			if score, ok := tablebaseScore(res, ply); ok {
				return score, nil
			}
		}
	}

	// 4. TT probe.
	hash := r.pos.ZobristHash()
	hashMove := board.NoMove
	if entry, ok := r.s.TT.Probe(hash); ok {
		hashMove = entry.Best
		if ply > 0 && int(entry.Depth) >= depth {
			entryScore := board.Score(entry.Score)
			switch entry.Bound {
			case ExactBound:
				return entryScore, nil
			case LowerBound:
				if entryScore > alpha {
					alpha = entryScore
				}
			case UpperBound:
				if entryScore < beta {
					beta = entryScore
				}
			}
			if alpha >= beta {
				return entryScore, nil
			}
		}
	}

	inCheck := r.pos.IsChecked(r.pos.SideToMove())

	// 5. Null-move pruning.
	if !isNullChild && !inCheck && ply > 0 && depth > nullMoveR+1 {
		r.pos.MakeNullMove()
		r.hashes = append(r.hashes, r.pos.ZobristHash())
		score, _ := r.pvs(ctx, depth-1-nullMoveR, ply+1, -beta, -beta+1, false, true)
		score = -score
		r.hashes = r.hashes[:len(r.hashes)-1]
		r.pos.UnmakeNullMove()

		if r.quit.Load() {
			return 0, nil
		}
		if score >= beta {
			return score, nil
		}
	}

	// 6. Generate moves.
	moves := board.GenerateLegalMoves(r.pos)
	if len(moves) == 0 {
		if inCheck {
			return -mate + board.Score(ply), nil
		}
		return 0, nil
	}

	// 7. Order moves by orderingPriority (hash move, captures, killers, history).
	list := newMoveList(r.pos, moves, hashMove, ply, r.killers, r.history)

	origAlpha := alpha
	side := r.pos.SideToMove()
	var best board.Move
	var bestPV []board.Move
	bestScore := -mate - 1

	i := 0
	for {
		m, ok := list.Next()
		if !ok {
			break
		}

		_, isCap := isCapture(r.pos, m)
		tactical := isCap || m.IsPromotion()

		r.pos.MakeMove(m)
		r.hashes = append(r.hashes, r.pos.ZobristHash())

		extension := 0
		if r.pos.IsChecked(r.pos.SideToMove()) {
			extension = 1
		}

		var score board.Score
		var childPV []board.Move

		childDepth := depth - 1 + extension
		switch {
		case i == 0:
			// 8b. First move: full window at PV.
			score, childPV = r.pvs(ctx, childDepth, ply+1, -beta, -alpha, isPV, false)
			score = -score
		default:
			// 8c. Scout with a null window.
			searchDepth := childDepth

			reduced := false
			if extension == 0 && i >= 4 && depth >= 3 {
				if !tactical && r.killers.Is(ply, m) {
					// killers are exempt from LMR
				} else {
					base, div := 1.35, 2.75
					if tactical {
						base, div = 0.20, 3.35
					}
					reduction := base + math.Log(float64(depth))*math.Log(float64(i+1))/div
					red := int(reduction)
					if red < 1 {
						red = 1
					}
					if searchDepth-red >= 0 {
						searchDepth -= red
						reduced = true
					}
				}
			}

			score, childPV = r.pvs(ctx, searchDepth, ply+1, -alpha-1, -alpha, false, false)
			score = -score

			if reduced && score > alpha {
				// Reduced search beat alpha: re-search at full depth.
				score, childPV = r.pvs(ctx, childDepth, ply+1, -alpha-1, -alpha, false, false)
				score = -score
			}

			if isPV && score > alpha && score < beta {
				// Scout failed high inside the PV window: full re-search.
				score, childPV = r.pvs(ctx, childDepth, ply+1, -beta, -alpha, true, false)
				score = -score
			}
		}

		r.hashes = r.hashes[:len(r.hashes)-1]
		r.pos.UnmakeMove(m)

		if r.quit.Load() {
			return 0, nil
		}

		if score > bestScore {
			bestScore = score
			best = m
			bestPV = append([]board.Move{m}, childPV...)
		}
		if score > alpha {
			alpha = score
		}
		if alpha >= beta {
			if !tactical {
				r.killers.Add(ply, m)
				r.history.Add(side, m.From(), m.To(), depth)
			}
			break
		}
		i++
	}

	// 9. Store into TT.
	bound := ExactBound
	switch {
	case bestScore >= beta:
		bound = LowerBound
	case bestScore <= origAlpha:
		bound = UpperBound
	}
	r.s.TT.Store(Entry{Hash: hash, Depth: int16(depth), Score: board.ClampI16(bestScore), Best: best, Bound: bound})

	return bestScore, bestPV
}

// isRepetition reports whether the current position's hash equals an earlier one
// reached since the last irreversible ply (§4.H "Repetition detection"); a single
// repeat is enough to treat the line as a draw from inside the search.
func (r *run) isRepetition() bool {
	cur := r.pos.ZobristHash()
	last := len(r.hashes) - 1
	floor := r.pos.LastIrreversiblePly()
	for i := last - 2; i >= floor && i >= 0; i -= 2 {
		if r.hashes[i] == cur {
			return true
		}
	}
	return false
}

// tablebaseScore converts an Oracle Result, relative to the side to move, into a
// search score; ok is false for Failed (fall through to normal search).
func tablebaseScore(res tablebase.Result, ply int) (board.Score, bool) {
	const cursedMargin = board.Score(100)
	mate := board.MaxEval
	switch res {
	case tablebase.Win:
		return mate - board.Score(ply), true
	case tablebase.CursedWin:
		return mate - cursedMargin - board.Score(ply), true
	case tablebase.Draw, tablebase.Stalemate:
		return 0, true
	case tablebase.BlessedLoss:
		return -mate + cursedMargin + board.Score(ply), true
	case tablebase.Loss, tablebase.Checkmate:
		return -mate + board.Score(ply), true
	default:
		return 0, false
	}
}
