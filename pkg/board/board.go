// Package board contains chess board representation and utilities: squares, pieces,
// bitboards, magic-bitboard attack tables, Zobrist hashing, the Position make/unmake
// machinery and the legal move generator.
package board

import "fmt"

const (
	repetitionDrawCount = 3
	fiftyMoveLimit      = 100 // half-moves, per §4.H step 1
)

// Board wraps a mutable Position with the game-level bookkeeping the core does not
// itself need during search but the protocol front-end does: move history (for
// threefold repetition across the whole game, not just inside one search tree),
// fullmove counting, and terminal-result adjudication.
type Board struct {
	pos       *Position
	history   []ZobristHash // one entry per position reached, including the current one
	moves     []Move
	fullmoves int
	result    Result
}

func NewBoard(pos *Position, fullmoves int) *Board {
	return &Board{
		pos:       pos,
		history:   []ZobristHash{pos.ZobristHash()},
		fullmoves: fullmoves,
	}
}

// Fork returns an independent copy of the board's current position, for handing off
// to a search launcher without risking a racing mutation from further PushMove calls.
func (b *Board) Fork() *Position { return b.pos.Clone() }

// History returns the Zobrist hash of every position reached so far, including the
// current one, for in-search repetition detection (§4.H).
func (b *Board) History() []ZobristHash { return append([]ZobristHash(nil), b.history...) }

func (b *Board) Position() *Position { return b.pos }
func (b *Board) Turn() Color         { return b.pos.SideToMove() }
func (b *Board) FullMoves() int      { return b.fullmoves }
func (b *Board) Result() Result      { return b.result }

// PushMove applies m if it names a legal move (matched against the generator's output
// by from/to/promotion-type; the caller need not know the inferred MoveType for
// castling, en passant or double pushes). Returns false, leaving the board untouched,
// if no legal move matches.
func (b *Board) PushMove(m Move) bool {
	if b.result.Outcome != Undecided {
		return false
	}

	legal := GenerateLegalMoves(b.pos)
	matched := NoMove
	for _, lm := range legal {
		if lm.From() != m.From() || lm.To() != m.To() {
			continue
		}
		if m.IsPromotion() && lm.Type() != m.Type() {
			continue
		}
		matched = lm
		break
	}
	if matched == NoMove {
		return false
	}

	b.pos.MakeMove(matched)
	b.moves = append(b.moves, matched)
	b.history = append(b.history, b.pos.ZobristHash())

	if b.pos.SideToMove() == White {
		b.fullmoves++
	}

	b.updateResult()
	return true
}

// PopMove reverses the last PushMove, if any.
func (b *Board) PopMove() (Move, bool) {
	if len(b.moves) == 0 {
		return NoMove, false
	}
	m := b.moves[len(b.moves)-1]
	b.moves = b.moves[:len(b.moves)-1]
	b.history = b.history[:len(b.history)-1]

	if b.pos.SideToMove() == White {
		b.fullmoves--
	}
	b.pos.UnmakeMove(m)
	b.result = Result{}
	return m, true
}

// LastMove returns the most recently pushed move, if any.
func (b *Board) LastMove() (Move, bool) {
	if len(b.moves) == 0 {
		return NoMove, false
	}
	return b.moves[len(b.moves)-1], true
}

// updateResult checks the draw conditions that the search itself doesn't adjudicate
// from inside the tree (checkmate/stalemate require knowing there are zero legal
// moves, which is the caller's job per §7; this only covers repetition/50-move/
// material, mirroring the teacher's Board.PushMove).
func (b *Board) updateResult() {
	window := len(b.history) - 1 - b.pos.LastIrreversiblePly()
	if window < 0 {
		window = 0
	}
	count := 0
	cur := b.history[len(b.history)-1]
	for i := len(b.history) - 1; i >= len(b.history)-1-window && i >= 0; i -= 2 {
		if b.history[i] == cur {
			count++
		}
	}
	if count >= repetitionDrawCount {
		b.result = Result{Outcome: Draw, Reason: Repetition}
		return
	}

	if b.pos.HalfmoveClock() >= fiftyMoveLimit {
		b.result = Result{Outcome: Draw, Reason: FiftyMoveRule}
		return
	}

	if b.pos.HasInsufficientMaterial() {
		b.result = Result{Outcome: Draw, Reason: InsufficientMaterial}
	}
}

// AdjudicateNoLegalMoves is called once the protocol layer has confirmed there are zero
// legal moves in the current position: checkmate if the side to move is in check,
// stalemate otherwise.
func (b *Board) AdjudicateNoLegalMoves() Result {
	if b.pos.IsChecked(b.pos.SideToMove()) {
		b.result = Result{Outcome: Loss(b.pos.SideToMove())}
	} else {
		b.result = Result{Outcome: Draw, Reason: Stalemate}
	}
	return b.result
}

func (b *Board) String() string {
	return fmt.Sprintf("board{pos=%v, fullmoves=%v, result=%v}", b.pos, b.fullmoves, b.result)
}
