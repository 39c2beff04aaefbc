package search

import (
	"context"

	"github.com/corvidchess/corvid/pkg/board"
)

// quiescence is the leaf-only capture search (§4.H "Quiescence search"): stand-pat on
// the static eval, then search captures only, with the standard PVS-style beta cut.
func (r *run) quiescence(ctx context.Context, pos *board.Position, alpha, beta board.Score) board.Score {
	r.nodes++
	if r.quit.Load() {
		return 0
	}

	standPat := r.s.Eval.Evaluate(ctx, pos)
	if standPat >= beta {
		return beta
	}
	if alpha < standPat {
		alpha = standPat
	}

	moves := captureMoves(pos)
	list := board.NewMoveList(moves, func(m board.Move) board.MovePriority {
		captured, _ := isCapture(pos, m)
		attacker := pos.PieceAt(m.From()).Type()
		return captureBaseBonus + board.MovePriority(captured.Value()-attacker.Value())
	})

	for {
		m, ok := list.Next()
		if !ok {
			break
		}

		pos.MakeMove(m)
		score := -r.quiescence(ctx, pos, -beta, -alpha)
		pos.UnmakeMove(m)

		if score >= beta {
			return beta
		}
		if score > alpha {
			alpha = score
		}
	}

	return alpha
}

// captureMoves filters the legal moves at pos down to captures and promotions, the
// exploration set for quiescence search.
func captureMoves(pos *board.Position) []board.Move {
	all := board.GenerateLegalMoves(pos)
	out := all[:0]
	for _, m := range all {
		if _, ok := isCapture(pos, m); ok || m.IsPromotion() {
			out = append(out, m)
		}
	}
	return out
}
