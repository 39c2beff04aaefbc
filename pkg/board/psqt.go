package board

// Piece-square tables and the king-corner mop-up table (§4.F), grounded on
// original_source/src/evaluation/piece_square_tables.rs (PeSTO-style tables). The
// tables are written White-relative with index 0 = a8 (this board's own numbering, §3
// rank 0 = 8th rank), so White looks them up directly by square; Black mirrors across
// the horizontal midline the same way the original's `actual_rank = 7 - rank` does.

var midgamePSQT = [NumPieceTypes][NumSquares]int32{
	Pawn - Pawn: {
		0, 0, 0, 0, 0, 0, 0, 0,
		50, 50, 50, 50, 50, 50, 50, 50,
		10, 10, 20, 30, 30, 20, 10, 10,
		5, 5, 10, 25, 25, 10, 5, 5,
		0, 0, 0, 20, 20, 0, 0, 0,
		5, -5, -10, 0, 0, -10, -5, 5,
		5, 10, 10, -20, -20, 10, 10, 5,
		0, 0, 0, 0, 0, 0, 0, 0,
	},
	Knight - Pawn: {
		-50, -40, -30, -30, -30, -30, -40, -50,
		-40, -20, 0, 0, 0, 0, -20, -40,
		-30, 0, 10, 15, 15, 10, 0, -30,
		-30, 5, 15, 20, 20, 15, 5, -30,
		-30, 0, 15, 20, 20, 15, 0, -30,
		-30, 5, 10, 15, 15, 10, 5, -30,
		-40, -20, 0, 5, 5, 0, -20, -40,
		-50, -40, -30, -30, -30, -30, -40, -50,
	},
	Bishop - Pawn: {
		-20, -10, -10, -10, -10, -10, -10, -20,
		-10, 0, 0, 0, 0, 0, 0, -10,
		-10, 0, 5, 10, 10, 5, 0, -10,
		-10, 5, 5, 10, 10, 5, 5, -10,
		-10, 0, 10, 10, 10, 10, 0, -10,
		-10, 10, 10, 10, 10, 10, 10, -10,
		-10, 5, 0, 0, 0, 0, 5, -10,
		-20, -10, -10, -10, -10, -10, -10, -20,
	},
	Rook - Pawn: {
		0, 0, 0, 0, 0, 0, 0, 0,
		5, 10, 10, 10, 10, 10, 10, 5,
		-5, 0, 0, 0, 0, 0, 0, -5,
		-5, 0, 0, 0, 0, 0, 0, -5,
		-5, 0, 0, 0, 0, 0, 0, -5,
		-5, 0, 0, 0, 0, 0, 0, -5,
		-5, 0, 0, 0, 0, 0, 0, -5,
		0, 0, 0, 5, 5, 0, 0, 0,
	},
	Queen - Pawn: {
		-20, -10, -10, -5, -5, -10, -10, -20,
		-10, 0, 0, 0, 0, 0, 0, -10,
		-10, 0, 5, 5, 5, 5, 0, -10,
		-5, 0, 5, 5, 5, 5, 0, -5,
		0, 0, 5, 5, 5, 5, 0, -5,
		-10, 5, 5, 5, 5, 5, 0, -10,
		-10, 0, 5, 0, 0, 0, 0, -10,
		-20, -10, -10, -5, -5, -10, -10, -20,
	},
	King - Pawn: {
		-80, -70, -70, -70, -70, -70, -70, -80,
		-60, -60, -60, -60, -60, -60, -60, -60,
		-40, -50, -50, -60, -60, -50, -50, -40,
		-30, -40, -40, -50, -50, -40, -40, -30,
		-20, -30, -30, -40, -40, -30, -30, -20,
		-10, -20, -20, -20, -20, -20, -20, -10,
		20, 20, -5, -5, -5, -5, 20, 20,
		20, 30, 10, 0, 0, 10, 30, 20,
	},
}

var endgamePSQT = [NumPieceTypes][NumSquares]int32{
	Pawn - Pawn: {
		0, 0, 0, 0, 0, 0, 0, 0,
		80, 80, 80, 80, 80, 80, 80, 80,
		50, 50, 50, 50, 50, 50, 50, 50,
		30, 30, 30, 30, 30, 30, 30, 30,
		20, 20, 20, 20, 20, 20, 20, 20,
		10, 10, 10, 10, 10, 10, 10, 10,
		10, 10, 10, 10, 10, 10, 10, 10,
		0, 0, 0, 0, 0, 0, 0, 0,
	},
	Knight - Pawn: midgamePSQT[Knight-Pawn],
	Bishop - Pawn: midgamePSQT[Bishop-Pawn],
	Rook - Pawn:   midgamePSQT[Rook-Pawn],
	Queen - Pawn:  midgamePSQT[Queen-Pawn],
	King - Pawn: {
		-20, -10, -10, -10, -10, -10, -10, -20,
		-5, 0, 5, 5, 5, 5, 0, -5,
		-10, -5, 20, 30, 30, 20, -5, -10,
		-15, -10, 35, 45, 45, 35, -10, -15,
		-20, -15, 30, 40, 40, 30, -15, -20,
		-25, -20, 20, 25, 25, 20, -20, -25,
		-30, -25, 0, 0, 0, 0, -25, -30,
		-50, -30, -30, -30, -30, -30, -30, -50,
	},
}

// CenterDistanceTable measures a square's Chebyshev-ish distance from the board's
// center, used by the king-corner mop-up term to drive a losing king to the rim.
var CenterDistanceTable = [NumSquares]int32{
	6, 5, 4, 3, 3, 4, 5, 6,
	5, 4, 3, 2, 2, 3, 4, 5,
	4, 3, 2, 1, 1, 2, 3, 4,
	3, 2, 1, 0, 0, 1, 2, 3,
	3, 2, 1, 0, 0, 1, 2, 3,
	4, 3, 2, 1, 1, 2, 3, 4,
	5, 4, 3, 2, 2, 3, 4, 5,
	6, 5, 4, 3, 3, 4, 5, 6,
}

// PSQT returns the (midgame, endgame) piece-square value of placing piece pc on sq,
// from pc's own side's perspective (always "good" is positive); the caller folds in
// the White/Black sign when accumulating into a single balance.
func PSQT(pc Piece, sq Square) (int32, int32) {
	idx := sq
	if pc.Color() == Black {
		idx = sq.Mirror()
	}
	i := pc.Type() - Pawn
	return midgamePSQT[i][idx], endgamePSQT[i][idx]
}
