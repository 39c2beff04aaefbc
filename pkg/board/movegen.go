package board

// MaxLegalMoves bounds the longest legal move list seen in any reachable chess
// position (§4.E: "bounded by 218"); callers can preallocate with this capacity.
const MaxLegalMoves = 218

// GenerateLegalMoves returns every legal move in p for the side to move, using the
// pin/check-resolution strategy of §4.E: king moves first, then (if not in double
// check) the rest, restricted to a pin's line and to squares that resolve a single
// check. Grounded step-by-step on
// _examples/original_source/src/move_generation/move_generation.rs.
func GenerateLegalMoves(p *Position) []Move {
	moves := make([]Move, 0, MaxLegalMoves)

	side := p.SideToMove()
	opp := side.Opponent()
	friendly := p.OccupiedBy(side)
	enemy := p.OccupiedBy(opp)
	king := p.KingSquare(side)

	checkers := p.Checkers(side)
	numCheckers := checkers.PopCount()

	// King moves are always generated, in or out of check.
	for targets := KingAttackboard(king) &^ friendly; targets != 0; {
		to := targets.PopLSB()
		if !p.IsAttackedExcluding(opp, to, king) {
			moves = append(moves, NewMove(king, to, Normal))
		}
	}

	if numCheckers >= 2 {
		return moves // double check: only the king can move
	}

	// resolveMask is the set of squares a non-king move must land on (or, for
	// sliders, pass through as a capture) to resolve the check. With no check it
	// is unrestricted.
	resolveMask := FullBitboard
	if numCheckers == 1 {
		checkerSq := checkers.LSB()
		resolveMask = BitMask(checkerSq)
		if p.PieceAt(checkerSq).Type().IsSlider() {
			resolveMask |= Between[king][checkerSq]
		}
	}

	pinned := p.Pinned()

	addSliderLike := func(from Square, targets Bitboard) {
		targets &^= friendly
		targets &= resolveMask
		if pinned.IsSet(from) {
			targets &= Line[from][king]
		}
		for t := targets; t != 0; {
			moves = append(moves, NewMove(from, t.PopLSB(), Normal))
		}
	}

	for bb := p.Pieces(Knight, side); bb != 0; {
		from := bb.PopLSB()
		if pinned.IsSet(from) {
			continue // a pinned knight has no legal destination that stays on the pin line
		}
		addSliderLike(from, KnightAttackboard(from))
	}
	for bb := p.Pieces(Bishop, side); bb != 0; {
		from := bb.PopLSB()
		addSliderLike(from, BishopAttackboard(p.Occupied(), from))
	}
	for bb := p.Pieces(Rook, side); bb != 0; {
		from := bb.PopLSB()
		addSliderLike(from, RookAttackboard(p.Occupied(), from))
	}
	for bb := p.Pieces(Queen, side); bb != 0; {
		from := bb.PopLSB()
		addSliderLike(from, BishopAttackboard(p.Occupied(), from)|RookAttackboard(p.Occupied(), from))
	}

	generatePawnMoves(p, &moves, side, opp, friendly, enemy, king, resolveMask, pinned, checkers, numCheckers)

	if numCheckers == 0 {
		generateCastling(p, &moves, side)
	}

	return moves
}

func addPawnMove(moves *[]Move, from, to Square, promoRank Bitboard, t MoveType) {
	if promoRank.IsSet(to) && t == Normal {
		*moves = append(*moves,
			NewMove(from, to, KnightPromotion),
			NewMove(from, to, BishopPromotion),
			NewMove(from, to, RookPromotion),
			NewMove(from, to, QueenPromotion),
		)
		return
	}
	*moves = append(*moves, NewMove(from, to, t))
}

func generatePawnMoves(p *Position, moves *[]Move, side, opp Color, friendly, enemy Bitboard, king Square, resolveMask, pinned, checkers Bitboard, numCheckers int) {
	promoRank := PawnPromotionRank(side)
	jumpRank := PawnJumpRank(side)
	occupied := p.Occupied()

	for bb := p.Pieces(Pawn, side); bb != 0; {
		from := bb.PopLSB()

		var push Square
		if side == White {
			push = from - 8
		} else {
			push = from + 8
		}

		pinLine := FullBitboard
		if pinned.IsSet(from) {
			pinLine = Line[from][king]
		}

		if push.IsValid() && !occupied.IsSet(push) {
			if resolveMask.IsSet(push) && pinLine.IsSet(push) {
				addPawnMove(moves, from, push, promoRank, Normal)
			}
			if PawnHomeRank(side).IsSet(from) {
				var jump Square
				if side == White {
					jump = push - 8
				} else {
					jump = push + 8
				}
				if jumpRank.IsSet(jump) && !occupied.IsSet(jump) && resolveMask.IsSet(jump) && pinLine.IsSet(jump) {
					*moves = append(*moves, NewMove(from, jump, DoublePush))
				}
			}
		}

		for targets := PawnAttackboard(side, from) & enemy & resolveMask & pinLine; targets != 0; {
			to := targets.PopLSB()
			addPawnMove(moves, from, to, promoRank, Normal)
		}

		if ep, ok := p.EnPassantSquare(); ok && PawnAttackboard(side, from).IsSet(ep) {
			var capSq Square
			if side == White {
				capSq = ep + 8
			} else {
				capSq = ep - 8
			}

			resolves := numCheckers == 0 || resolveMask.IsSet(ep) || checkers.IsSet(capSq)
			onPinLine := !pinned.IsSet(from) || pinLine.IsSet(ep)

			if resolves && onPinLine && !epExposesCheck(p, side, opp, from, capSq, ep, king) {
				*moves = append(*moves, NewMove(from, ep, EnPassant))
			}
		}
	}
}

// epExposesCheck simulates the en-passant double removal (capturing pawn's origin AND
// the captured pawn's square both vacate at once, and the target square fills) and
// tests whether that leaves the king attacked by an enemy slider on any rank, file or
// diagonal — which covers the two-pawns-on-the-king's-rank discovered check that
// neither the ordinary pin mask nor the resolveMask catches (§4.E).
func epExposesCheck(p *Position, side, opp Color, from, capSq, to, king Square) bool {
	occ := (p.Occupied() &^ BitMask(from) &^ BitMask(capSq)) | BitMask(to)
	orth := p.Pieces(Rook, opp) | p.Pieces(Queen, opp)
	if orth != 0 && RookAttackboard(occ, king)&orth != 0 {
		return true
	}
	diag := p.Pieces(Bishop, opp) | p.Pieces(Queen, opp)
	return diag != 0 && BishopAttackboard(occ, king)&diag != 0
}

type castlingSpec struct {
	right            Castling
	kingFrom, kingTo Square
	rookFrom, rookTo Square
	emptyMask        Bitboard
	kingPath         [3]Square
	moveType         MoveType
}

func castlingSpecs(side Color) [2]castlingSpec {
	if side == White {
		return [2]castlingSpec{
			{WhiteKingSideCastle, E1, G1, H1, F1, BitMask(F1) | BitMask(G1), [3]Square{E1, F1, G1}, KingsideCastle},
			{WhiteQueenSideCastle, E1, C1, A1, D1, BitMask(B1) | BitMask(C1) | BitMask(D1), [3]Square{E1, D1, C1}, QueensideCastle},
		}
	}
	return [2]castlingSpec{
		{BlackKingSideCastle, E8, G8, H8, F8, BitMask(F8) | BitMask(G8), [3]Square{E8, F8, G8}, KingsideCastle},
		{BlackQueenSideCastle, E8, C8, A8, D8, BitMask(B8) | BitMask(C8) | BitMask(D8), [3]Square{E8, D8, C8}, QueensideCastle},
	}
}

func generateCastling(p *Position, moves *[]Move, side Color) {
	opp := side.Opponent()
	rights := p.CastlingRights()
	occupied := p.Occupied()

	for _, spec := range castlingSpecs(side) {
		if !rights.IsAllowed(spec.right) {
			continue
		}
		if occupied&spec.emptyMask != 0 {
			continue
		}
		attacked := false
		for _, sq := range spec.kingPath {
			if p.IsAttacked(opp, sq) {
				attacked = true
				break
			}
		}
		if attacked {
			continue
		}
		*moves = append(*moves, NewMove(spec.kingFrom, spec.kingTo, spec.moveType))
	}
}
