package board

import (
	"fmt"
	"strings"
)

// state is the per-ply stack frame described in §3 as BoardState: everything make_move
// can't recompute cheaply on unmake_move, so it's cloned from the previous top and
// mutated in place rather than recomputed from scratch.
type state struct {
	castling       Castling
	epSquare       Square // NoSquare if none
	captured       Piece  // NoPiece if the move wasn't a capture
	halfmoveClock  int
	lastIrrevPly   int
	hash           ZobristHash
	materialBal    int32
	mgPSQT, egPSQT int32
	totalMaterial  int32
}

// Position is the live board: piece placement, side to move, castling/en-passant
// status, and the incrementally maintained material/PSQT/hash accumulators (§3). It is
// mutated in place by MakeMove/UnmakeMove; callers needing an independent copy must
// Clone it explicitly.
type Position struct {
	zt *ZobristTable

	squares [NumSquares]Piece

	occupied     Bitboard
	sideOccupied [NumColors]Bitboard
	pieceBB      [NumPieces]Bitboard

	side Color
	ply  int

	pinned Bitboard

	states []state
}

// NewPosition builds an empty position bound to the given Zobrist table. Use
// fen.Decode (package board/fen) to load a real starting position.
func NewPosition(zt *ZobristTable) *Position {
	p := &Position{zt: zt}
	for sq := ZeroSquare; sq < NumSquares; sq++ {
		p.squares[sq] = NoPiece
	}
	p.states = append(p.states, state{epSquare: NoSquare})
	return p
}

func (p *Position) top() *state       { return &p.states[len(p.states)-1] }
func (p *Position) SideToMove() Color { return p.side }
func (p *Position) Ply() int          { return p.ply }
func (p *Position) CastlingRights() Castling { return p.top().castling }
func (p *Position) HalfmoveClock() int       { return p.top().halfmoveClock }
func (p *Position) ZobristHash() ZobristHash { return p.top().hash }
func (p *Position) MaterialBalance() int32   { return p.top().materialBal }
func (p *Position) MidgamePSQT() int32       { return p.top().mgPSQT }
func (p *Position) EndgamePSQT() int32       { return p.top().egPSQT }
func (p *Position) TotalMaterial() int32     { return p.top().totalMaterial }

func (p *Position) EnPassantSquare() (Square, bool) {
	ep := p.top().epSquare
	return ep, ep != NoSquare
}

func (p *Position) PieceAt(sq Square) Piece { return p.squares[sq] }

func (p *Position) Occupied() Bitboard          { return p.occupied }
func (p *Position) OccupiedBy(c Color) Bitboard { return p.sideOccupied[c] }
func (p *Position) Pieces(pt PieceType, c Color) Bitboard {
	return p.pieceBB[NewPiece(pt, c)]
}
func (p *Position) Pinned() Bitboard { return p.pinned }

func (p *Position) KingSquare(c Color) Square {
	return p.pieceBB[NewPiece(King, c)].LSB()
}

// setSquare places piece pc on sq (must currently be empty) and incrementally updates
// every accumulator: occupancy, material, PSQT, and the Zobrist hash. §4.C: every
// set_square/clear_square XORs the relevant square-piece key.
func (p *Position) setSquare(sq Square, pc Piece) {
	p.squares[sq] = pc
	b := BitMask(sq)
	p.occupied |= b
	p.sideOccupied[pc.Color()] |= b
	p.pieceBB[pc] |= b

	st := p.top()
	st.hash ^= p.zt.PieceKey(pc, sq)

	sign := int32(1)
	if pc.Color() == Black {
		sign = -1
	}
	st.materialBal += sign * pc.Type().Value()

	mg, eg := PSQT(pc, sq)
	st.mgPSQT += sign * mg
	st.egPSQT += sign * eg

	st.totalMaterial += pc.Type().PhaseWeight()
}

// clearSquare removes whatever piece occupies sq (must be occupied) and incrementally
// undoes the same accumulators setSquare updates.
func (p *Position) clearSquare(sq Square) Piece {
	pc := p.squares[sq]
	p.squares[sq] = NoPiece
	b := BitMask(sq)
	p.occupied &^= b
	p.sideOccupied[pc.Color()] &^= b
	p.pieceBB[pc] &^= b

	st := p.top()
	st.hash ^= p.zt.PieceKey(pc, sq)

	sign := int32(1)
	if pc.Color() == Black {
		sign = -1
	}
	st.materialBal -= sign * pc.Type().Value()

	mg, eg := PSQT(pc, sq)
	st.mgPSQT -= sign * mg
	st.egPSQT -= sign * eg

	st.totalMaterial -= pc.Type().PhaseWeight()

	return pc
}

// Place is used only by the FEN loader to build up the initial position; it bypasses
// the state stack's incremental bookkeeping rules around captures/castling since there
// is no "move" to account for, but still keeps material/PSQT/hash consistent.
func (p *Position) Place(sq Square, pc Piece) {
	p.setSquare(sq, pc)
}

// SetCastlingRights, SetEnPassant and SetSideToMove are used only by the FEN loader,
// after which RecomputeDerived finalizes pinned/hash state.
func (p *Position) SetCastlingRights(c Castling) {
	p.top().castling = c
}

func (p *Position) SetEnPassant(sq Square) {
	p.top().epSquare = sq
}

func (p *Position) SetSideToMove(c Color) {
	p.side = c
}

func (p *Position) SetHalfmoveClock(n int) {
	p.top().halfmoveClock = n
	p.top().lastIrrevPly = 0
}

// RecomputeDerived rebuilds the Zobrist hash from scratch and the pin mask; called once
// after FEN loading finishes mutating the board directly via Place/Set*.
func (p *Position) RecomputeDerived() {
	st := p.top()
	st.hash = 0
	for sq := ZeroSquare; sq < NumSquares; sq++ {
		if pc := p.squares[sq]; pc != NoPiece {
			st.hash ^= p.zt.PieceKey(pc, sq)
		}
	}
	if p.side == Black {
		st.hash ^= p.zt.SideKey()
	}
	st.hash ^= p.zt.CastlingKey(st.castling)
	if st.epSquare != NoSquare {
		st.hash ^= p.zt.EnPassantKey(st.epSquare.File())
	}
	p.recomputePinned()
}

// IsAttacked reports whether sq is attacked by color c's pieces, given the board's
// actual occupancy. Does not consider en passant (it is not a square attack).
func (p *Position) IsAttacked(c Color, sq Square) bool {
	if KnightAttackboard(sq)&p.Pieces(Knight, c) != 0 {
		return true
	}
	if KingAttackboard(sq)&p.Pieces(King, c) != 0 {
		return true
	}
	if PawnAttackboard(c.Opponent(), sq)&p.Pieces(Pawn, c) != 0 {
		return true
	}
	diag := p.Pieces(Bishop, c) | p.Pieces(Queen, c)
	if diag != 0 && BishopAttackboard(p.occupied, sq)&diag != 0 {
		return true
	}
	orth := p.Pieces(Rook, c) | p.Pieces(Queen, c)
	if orth != 0 && RookAttackboard(p.occupied, sq)&orth != 0 {
		return true
	}
	return false
}

// IsAttackedExcluding is IsAttacked but pretends `without` is empty, used to test king
// safety along the vacated square when the king itself is moving.
func (p *Position) IsAttackedExcluding(c Color, sq Square, without Square) bool {
	occ := p.occupied &^ BitMask(without)
	if KnightAttackboard(sq)&p.Pieces(Knight, c) != 0 {
		return true
	}
	if KingAttackboard(sq)&p.Pieces(King, c) != 0 {
		return true
	}
	if PawnAttackboard(c.Opponent(), sq)&p.Pieces(Pawn, c) != 0 {
		return true
	}
	diag := p.Pieces(Bishop, c) | p.Pieces(Queen, c)
	if diag != 0 && BishopAttackboard(occ, sq)&diag != 0 {
		return true
	}
	orth := p.Pieces(Rook, c) | p.Pieces(Queen, c)
	if orth != 0 && RookAttackboard(occ, sq)&orth != 0 {
		return true
	}
	return false
}

func (p *Position) IsChecked(c Color) bool {
	return p.IsAttacked(c.Opponent(), p.KingSquare(c))
}

// Checkers returns the bitboard of enemy pieces currently giving check to c's king.
func (p *Position) Checkers(c Color) Bitboard {
	opp := c.Opponent()
	king := p.KingSquare(c)
	var checkers Bitboard
	checkers |= KnightAttackboard(king) & p.Pieces(Knight, opp)
	checkers |= PawnAttackboard(c, king) & p.Pieces(Pawn, opp)
	checkers |= BishopAttackboard(p.occupied, king) & (p.Pieces(Bishop, opp) | p.Pieces(Queen, opp))
	checkers |= RookAttackboard(p.occupied, king) & (p.Pieces(Rook, opp) | p.Pieces(Queen, opp))
	return checkers
}

// recomputePinned rebuilds the pin mask using the x-ray technique §4.E describes:
// cast slider attacks from the king as if friendly blockers didn't exist; any enemy
// slider seen that way, intersected back against the real friendly blockers on that
// line, pins exactly the blocker(s) between king and slider.
func (p *Position) recomputePinned() {
	c := p.side
	opp := c.Opponent()
	king := p.KingSquare(c)
	friendly := p.sideOccupied[c]

	var pinned Bitboard

	xrayDiag := BishopAttackboard(p.occupied&^friendly, king) & (p.Pieces(Bishop, opp) | p.Pieces(Queen, opp))
	for bb := xrayDiag; bb != 0; {
		sq := bb.PopLSB()
		between := Between[king][sq] & friendly
		if between.PopCount() == 1 {
			pinned |= between
		}
	}

	xrayOrth := RookAttackboard(p.occupied&^friendly, king) & (p.Pieces(Rook, opp) | p.Pieces(Queen, opp))
	for bb := xrayOrth; bb != 0; {
		sq := bb.PopLSB()
		between := Between[king][sq] & friendly
		if between.PopCount() == 1 {
			pinned |= between
		}
	}

	p.pinned = pinned
}

// castlingRookSquares returns the rook's home and destination squares for a castle.
func castlingRookSquares(c Color, kingside bool) (from, to Square) {
	if c == White {
		if kingside {
			return H1, F1
		}
		return A1, D1
	}
	if kingside {
		return H8, F8
	}
	return A8, D8
}

// castlingRightsLost returns the rights extinguished by a piece touching sq (its own
// home square, if relevant), per §4.D step 2.
func castlingRightsLost(sq Square) Castling {
	switch sq {
	case E1:
		return WhiteKingSideCastle | WhiteQueenSideCastle
	case H1:
		return WhiteKingSideCastle
	case A1:
		return WhiteQueenSideCastle
	case E8:
		return BlackKingSideCastle | BlackQueenSideCastle
	case H8:
		return BlackKingSideCastle
	case A8:
		return BlackQueenSideCastle
	default:
		return 0
	}
}

// MakeMove applies m (assumed legal) and pushes a new state frame, per §4.D.
func (p *Position) MakeMove(m Move) {
	prev := p.top()
	next := state{
		castling:      prev.castling,
		epSquare:      NoSquare,
		captured:      NoPiece,
		halfmoveClock: prev.halfmoveClock + 1,
		lastIrrevPly:  prev.lastIrrevPly,
		hash:          prev.hash,
		materialBal:   prev.materialBal,
		mgPSQT:        prev.mgPSQT,
		egPSQT:        prev.egPSQT,
		totalMaterial: prev.totalMaterial,
	}
	p.states = append(p.states, next)
	st := p.top()

	from, to := m.From(), m.To()
	mover := p.squares[from]

	lost := castlingRightsLost(from) | castlingRightsLost(to)
	if lost&st.castling != 0 {
		st.hash ^= p.zt.CastlingKey(st.castling)
		st.castling &^= lost
		st.hash ^= p.zt.CastlingKey(st.castling)
		st.lastIrrevPly = p.ply + 1
	}

	if p.squares[to] != NoPiece && m.Type() != KingsideCastle && m.Type() != QueensideCastle {
		st.captured = p.clearSquare(to)
		st.halfmoveClock = 0
		st.lastIrrevPly = p.ply + 1
	}

	if mover.Type() == Pawn {
		st.halfmoveClock = 0
		st.lastIrrevPly = p.ply + 1
	}

	if prev.epSquare != NoSquare {
		st.hash ^= p.zt.EnPassantKey(prev.epSquare.File())
	}

	p.clearSquare(from)
	p.setSquare(to, mover)

	switch m.Type() {
	case KingsideCastle:
		rf, rt := castlingRookSquares(p.side, true)
		rook := p.clearSquare(rf)
		p.setSquare(rt, rook)
	case QueensideCastle:
		rf, rt := castlingRookSquares(p.side, false)
		rook := p.clearSquare(rf)
		p.setSquare(rt, rook)
	case DoublePush:
		var epSq Square
		if p.side == White {
			epSq = to + 8
		} else {
			epSq = to - 8
		}
		st.epSquare = epSq
		st.hash ^= p.zt.EnPassantKey(epSq.File())
	case EnPassant:
		var capSq Square
		if p.side == White {
			capSq = to + 8
		} else {
			capSq = to - 8
		}
		st.captured = p.clearSquare(capSq)
		st.halfmoveClock = 0
		st.lastIrrevPly = p.ply + 1
	default:
		if m.IsPromotion() {
			p.clearSquare(to)
			p.setSquare(to, NewPiece(m.Type().PromotionType(), p.side))
		}
	}

	st.hash ^= p.zt.SideKey()
	p.side = p.side.Opponent()
	p.ply++
	p.recomputePinned()
}

// UnmakeMove reverses MakeMove, popping the state frame it pushed. The captured piece
// (if any) is read from the popped frame, never from the move itself (§3, §4.D).
func (p *Position) UnmakeMove(m Move) {
	p.side = p.side.Opponent()
	p.ply--

	popped := p.top()
	from, to := m.From(), m.To()

	switch m.Type() {
	case KingsideCastle:
		rf, rt := castlingRookSquares(p.side, true)
		rook := p.clearSquare(rt)
		p.setSquare(rf, rook)
		mover := p.clearSquare(to)
		p.setSquare(from, mover)
	case QueensideCastle:
		rf, rt := castlingRookSquares(p.side, false)
		rook := p.clearSquare(rt)
		p.setSquare(rf, rook)
		mover := p.clearSquare(to)
		p.setSquare(from, mover)
	case EnPassant:
		mover := p.clearSquare(to)
		p.setSquare(from, mover)
		var capSq Square
		if p.side == White {
			capSq = to + 8
		} else {
			capSq = to - 8
		}
		p.setSquare(capSq, popped.captured)
	default:
		if m.IsPromotion() {
			p.clearSquare(to)
			p.setSquare(from, NewPiece(Pawn, p.side))
		} else {
			mover := p.clearSquare(to)
			p.setSquare(from, mover)
		}
		if popped.captured != NoPiece {
			p.setSquare(to, popped.captured)
		}
	}

	p.states = p.states[:len(p.states)-1]
	p.recomputePinned()
}

// MakeNullMove flips the side to move without moving a piece, used by null-move
// pruning (§4.D, §4.H step 5).
func (p *Position) MakeNullMove() {
	prev := p.top()
	next := state{
		castling:      prev.castling,
		epSquare:      NoSquare,
		captured:      NoPiece,
		halfmoveClock: prev.halfmoveClock + 1,
		lastIrrevPly:  prev.lastIrrevPly,
		hash:          prev.hash,
		materialBal:   prev.materialBal,
		mgPSQT:        prev.mgPSQT,
		egPSQT:        prev.egPSQT,
		totalMaterial: prev.totalMaterial,
	}
	if prev.epSquare != NoSquare {
		next.hash ^= p.zt.EnPassantKey(prev.epSquare.File())
	}
	next.hash ^= p.zt.SideKey()
	p.states = append(p.states, next)
	p.side = p.side.Opponent()
	p.ply++
	p.recomputePinned()
}

func (p *Position) UnmakeNullMove() {
	p.side = p.side.Opponent()
	p.ply--
	p.states = p.states[:len(p.states)-1]
	p.recomputePinned()
}

// LastIrreversiblePly returns the ply index after which no irreversible move (capture,
// pawn move, castle, castling-rights loss) has occurred; repetition search never needs
// to look further back than this.
func (p *Position) LastIrreversiblePly() int {
	return p.top().lastIrrevPly
}

// HasInsufficientMaterial reports the trivial draw-by-material cases: K v K, K+N v K,
// K+B v K. Opposite-color-bishop and other subtler cases are left to the 50-move and
// repetition rules, matching the scope of the original's same-named check.
func (p *Position) HasInsufficientMaterial() bool {
	if p.Pieces(Pawn, White) != 0 || p.Pieces(Pawn, Black) != 0 {
		return false
	}
	if p.Pieces(Rook, White) != 0 || p.Pieces(Rook, Black) != 0 {
		return false
	}
	if p.Pieces(Queen, White) != 0 || p.Pieces(Queen, Black) != 0 {
		return false
	}
	minor := p.Pieces(Knight, White).PopCount() + p.Pieces(Bishop, White).PopCount() +
		p.Pieces(Knight, Black).PopCount() + p.Pieces(Bishop, Black).PopCount()
	return minor <= 1
}

// Clone returns an independent copy of p: the search launcher forks the live position
// onto its own goroutine so the UCI-facing board is never mutated by a running search.
func (p *Position) Clone() *Position {
	c := &Position{
		zt:       p.zt,
		squares:  p.squares,
		occupied: p.occupied,
		side:     p.side,
		ply:      p.ply,
		pinned:   p.pinned,
	}
	c.sideOccupied = p.sideOccupied
	c.pieceBB = p.pieceBB
	c.states = append([]state(nil), p.states...)
	return c
}

func (p *Position) String() string {
	var sb strings.Builder
	for r := ZeroRank; r < NumRanks; r++ {
		for f := ZeroFile; f < NumFiles; f++ {
			if pc := p.squares[NewSquare(f, r)]; pc != NoPiece {
				sb.WriteString(pc.String())
			} else {
				sb.WriteRune('-')
			}
		}
		if r != NumRanks-1 {
			sb.WriteRune('/')
		}
	}
	ep := "-"
	if e, ok := p.EnPassantSquare(); ok {
		ep = e.String()
	}
	return fmt.Sprintf("%v %v %v(%v)", sb.String(), p.side, p.CastlingRights(), ep)
}
