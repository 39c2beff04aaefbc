package board

import (
	"fmt"
	"strings"
)

// MoveType distinguishes the handful of move kinds that need special-case handling in
// make/unmake (the rest — ordinary quiet moves and captures — are "Normal"). Packed
// into 4 bits alongside the from/to squares, a Move carries no captured-piece payload:
// that is recovered from the per-ply state stack on unmake (§3, §4.D).
type MoveType uint8

const (
	Normal MoveType = iota
	DoublePush
	EnPassant
	KingsideCastle
	QueensideCastle
	KnightPromotion
	BishopPromotion
	RookPromotion
	QueenPromotion
)

func (t MoveType) IsPromotion() bool {
	return t == KnightPromotion || t == BishopPromotion || t == RookPromotion || t == QueenPromotion
}

// PromotionType returns the piece type a promotion move type promotes to.
func (t MoveType) PromotionType() PieceType {
	switch t {
	case KnightPromotion:
		return Knight
	case BishopPromotion:
		return Bishop
	case RookPromotion:
		return Rook
	case QueenPromotion:
		return Queen
	default:
		return NoPieceType
	}
}

func promotionMoveType(pt PieceType) MoveType {
	switch pt {
	case Knight:
		return KnightPromotion
	case Bishop:
		return BishopPromotion
	case Rook:
		return RookPromotion
	case Queen:
		return QueenPromotion
	default:
		panic("invalid promotion piece type")
	}
}

// Move packs (from:6, to:6, type:4) into a 16-bit word, per §3. Whether a move is a
// capture is not stored in the move itself; it's read off the board (or inferred from
// the EnPassant type, for the one case a capture isn't on the `to` square).
type Move uint16

const NoMove Move = 0xFFFF

func NewMove(from, to Square, t MoveType) Move {
	return Move(from) | Move(to)<<6 | Move(t)<<12
}

func NewPromotion(from, to Square, promo PieceType) Move {
	return NewMove(from, to, promotionMoveType(promo))
}

func (m Move) From() Square   { return Square(m & 0x3f) }
func (m Move) To() Square     { return Square((m >> 6) & 0x3f) }
func (m Move) Type() MoveType { return MoveType((m >> 12) & 0xf) }

func (m Move) IsPromotion() bool { return m.Type().IsPromotion() }

// ParseMove parses pure algebraic coordinate notation, such as "a2a4" or "a7a8q". The
// parsed move carries no type information beyond a bare promotion tag; the move
// generator's legal list is what supplies the real MoveType (double push, en passant,
// castling) when matching a UCI move string against generated moves.
func ParseMove(str string) (Move, error) {
	runes := []rune(str)
	if len(runes) < 4 || len(runes) > 5 {
		return NoMove, fmt.Errorf("invalid move: '%v'", str)
	}

	from, err := ParseSquare(runes[0], runes[1])
	if err != nil {
		return NoMove, fmt.Errorf("invalid from: '%v': %w", str, err)
	}
	to, err := ParseSquare(runes[2], runes[3])
	if err != nil {
		return NoMove, fmt.Errorf("invalid to: '%v': %w", str, err)
	}

	if len(runes) == 5 {
		pt, ok := ParsePieceType(runes[4])
		if !ok || pt == Pawn || pt == King {
			return NoMove, fmt.Errorf("invalid promotion: '%v'", str)
		}
		return NewPromotion(from, to, pt), nil
	}
	return NewMove(from, to, Normal), nil
}

func (m Move) String() string {
	if m.IsPromotion() {
		return fmt.Sprintf("%v%v%v", m.From(), m.To(), m.Type().PromotionType())
	}
	return fmt.Sprintf("%v%v", m.From(), m.To())
}

// FormatMoves renders a sequence of moves as a space-separated long-algebraic string,
// the shape a "pv" field in a UCI info line (or log line) wants.
func FormatMoves(moves []Move) string {
	parts := make([]string, len(moves))
	for i, m := range moves {
		parts[i] = m.String()
	}
	return strings.Join(parts, " ")
}
