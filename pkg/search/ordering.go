package search

import "github.com/corvidchess/corvid/pkg/board"

// Move ordering score constants (§4.H, "Move ordering score (higher first)").
const (
	hashMoveBonus    = board.MovePriority(1200)
	captureBaseBonus = board.MovePriority(1000)
	killerBonus      = board.MovePriority(1000)
)

// isCapture reports whether m captures a piece in pos (including en passant), and the
// captured piece type (NoPieceType for non-captures).
func isCapture(pos *board.Position, m board.Move) (board.PieceType, bool) {
	if m.Type() == board.EnPassant {
		return board.Pawn, true
	}
	if victim := pos.PieceAt(m.To()); victim != board.NoPiece {
		return victim.Type(), true
	}
	return board.NoPieceType, false
}

// orderingPriority returns the move-ordering priority function for pos: hash move
// (1200), MVV-LVA captures (1000 + victim - attacker), killers (1000), then history
// as the quiet tie-breaker. The hash move outranks every capture that wins at most
// 200 centipawns; a capture that wins more (e.g. pawn takes queen) is ordered ahead
// of it.
func orderingPriority(pos *board.Position, hashMove board.Move, ply int, kt *KillerTable, ht *HistoryTable) board.MovePriorityFn {
	side := pos.SideToMove()
	return func(m board.Move) board.MovePriority {
		if m == hashMove {
			return hashMoveBonus
		}
		if captured, ok := isCapture(pos, m); ok {
			attacker := pos.PieceAt(m.From()).Type()
			return captureBaseBonus + board.MovePriority(captured.Value()-attacker.Value())
		}
		if kt != nil && kt.Is(ply, m) {
			return killerBonus
		}
		if ht != nil {
			from, to := m.From(), m.To()
			return board.MovePriority(ht.Score(side, from, to) / 1000)
		}
		return 0
	}
}

// newMoveList builds a priority-ordered move list for pos's legal moves at ply.
func newMoveList(pos *board.Position, moves []board.Move, hashMove board.Move, ply int, kt *KillerTable, ht *HistoryTable) *board.MoveList {
	return board.NewMoveList(moves, orderingPriority(pos, hashMove, ply, kt, ht))
}
