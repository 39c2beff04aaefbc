// Package eval contains the tapered static position evaluator (spec.md §4.F).
package eval

import (
	"context"

	"github.com/corvidchess/corvid/pkg/board"
)

// TotalMaterialStartpos is the phase-proxy denominator: 2 knights + 2 bishops (weight 1
// each), 2 rooks (weight 2 each) and a queen (weight 4) per side, i.e. TOTAL_MATERIAL_STARTPOS.
const TotalMaterialStartpos = 2 * (2*1 + 2*1 + 2*2 + 1*4)

// kingCornerScale is the fixed multiplier applied to the king-corner mop-up term.
const kingCornerScale = 10

// Evaluator is a static position evaluator. It returns a side-to-move-relative score.
type Evaluator interface {
	Evaluate(ctx context.Context, pos *board.Position) board.Score
}

// Tapered implements spec.md §4.F:
//
//	phase = total_material / TOTAL_MATERIAL_STARTPOS
//	score = material_balance + mg_psqt*phase + eg_psqt*(1-phase) + king_corner_term*(1-phase^2)*10
//
// material_balance/mg_psqt/eg_psqt are White-minus-Black and incrementally maintained on
// Position itself (§3); Evaluate only blends them and adds the king-corner term, then
// flips sign to the side to move's perspective.
type Tapered struct{}

func (Tapered) Evaluate(ctx context.Context, pos *board.Position) board.Score {
	phase := float64(pos.TotalMaterial()) / float64(TotalMaterialStartpos)
	if phase > 1 {
		phase = 1
	} else if phase < 0 {
		phase = 0
	}

	blended := float64(pos.MaterialBalance()) +
		float64(pos.MidgamePSQT())*phase +
		float64(pos.EndgamePSQT())*(1-phase)

	corner := float64(kingCornerTerm(pos)) * (1 - phase*phase) * kingCornerScale

	score := board.Score(blended + corner)
	if pos.SideToMove() == board.Black {
		score = -score
	}
	return score
}

// kingCornerTerm is White-minus-Black: it rewards driving the opponent's king to an
// edge/corner while keeping your own king close to it, so it is computed once from
// White's perspective and negated for Black's contribution, per §4.F:
//
//	centre_distance(enemy_king) + (14 - manhattan_distance(friendly_king, enemy_king))
func kingCornerTerm(pos *board.Position) int32 {
	wk, bk := pos.KingSquare(board.White), pos.KingSquare(board.Black)
	dist := manhattanDistance(wk, bk)

	white := board.CenterDistanceTable[bk] + (14 - dist)
	black := board.CenterDistanceTable[wk] + (14 - dist)
	return white - black
}

func manhattanDistance(a, b board.Square) int32 {
	df := int32(a.File()) - int32(b.File())
	if df < 0 {
		df = -df
	}
	dr := int32(a.Rank()) - int32(b.Rank())
	if dr < 0 {
		dr = -dr
	}
	return df + dr
}
