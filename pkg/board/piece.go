package board

// PieceType identifies a kind of chess piece, independent of color. Each carries a
// centipawn value, a material weight used for game-phase estimation, and whether it
// slides along rays (Bishop/Rook/Queen).
type PieceType uint8

const (
	NoPieceType PieceType = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

const NumPieceTypes = 6

// Value is the static centipawn value used in material_balance and MVV-LVA ordering.
func (pt PieceType) Value() int32 {
	switch pt {
	case Pawn:
		return 100
	case Knight:
		return 320
	case Bishop:
		return 330
	case Rook:
		return 500
	case Queen:
		return 900
	case King:
		return 20000
	default:
		return 0
	}
}

// PhaseWeight is the material weight used to estimate game phase; King and Pawn don't
// contribute (the King is always on the board, and pawn count alone isn't a reliable
// phase proxy).
func (pt PieceType) PhaseWeight() int32 {
	switch pt {
	case Knight, Bishop:
		return 1
	case Rook:
		return 2
	case Queen:
		return 4
	default:
		return 0
	}
}

// IsSlider reports whether the piece type attacks along rays (Bishop, Rook, Queen).
func (pt PieceType) IsSlider() bool {
	return pt == Bishop || pt == Rook || pt == Queen
}

func ParsePieceType(r rune) (PieceType, bool) {
	switch r {
	case 'p', 'P':
		return Pawn, true
	case 'n', 'N':
		return Knight, true
	case 'b', 'B':
		return Bishop, true
	case 'r', 'R':
		return Rook, true
	case 'q', 'Q':
		return Queen, true
	case 'k', 'K':
		return King, true
	default:
		return NoPieceType, false
	}
}

func (pt PieceType) IsValid() bool {
	return Pawn <= pt && pt <= King
}

func (pt PieceType) String() string {
	switch pt {
	case NoPieceType:
		return " "
	case Pawn:
		return "p"
	case Knight:
		return "n"
	case Bishop:
		return "b"
	case Rook:
		return "r"
	case Queen:
		return "q"
	case King:
		return "k"
	default:
		return "?"
	}
}

// Piece is a (PieceType, Color) pair, encoded as a 12-valued tag (0..11) so it indexes
// directly into per-piece bitboards and piece-square tables: White pieces are 0..5,
// Black pieces are 6..11, in PieceType order (Pawn..King).
type Piece uint8

const (
	NoPiece Piece = 12
	NumPieces Piece = 12
)

// NewPiece builds the 12-valued tag from a type and color.
func NewPiece(pt PieceType, c Color) Piece {
	if c == White {
		return Piece(pt - Pawn)
	}
	return Piece(pt-Pawn) + 6
}

func (p Piece) IsValid() bool {
	return p < NumPieces
}

func (p Piece) Type() PieceType {
	return Pawn + PieceType(p%6)
}

func (p Piece) Color() Color {
	if p < 6 {
		return White
	}
	return Black
}

func ParsePiece(r rune) (Piece, bool) {
	pt, ok := ParsePieceType(r)
	if !ok {
		return NoPiece, false
	}
	if r >= 'a' && r <= 'z' {
		return NewPiece(pt, Black), true
	}
	return NewPiece(pt, White), true
}

func (p Piece) String() string {
	if !p.IsValid() {
		return " "
	}
	s := p.Type().String()
	if p.Color() == White {
		return upper(s)
	}
	return s
}

func upper(s string) string {
	r := []rune(s)
	if r[0] >= 'a' && r[0] <= 'z' {
		r[0] -= 'a' - 'A'
	}
	return string(r)
}
