// Package fen reads and writes chess positions in Forsyth-Edwards Notation.
package fen

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/corvidchess/corvid/pkg/board"
)

const Initial = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// Decode parses a FEN string and returns a Position together with the side to move,
// halfmove clock and fullmove number (§6: "parser tolerates absence of halfmove and
// fullmove fields").
func Decode(zt *board.ZobristTable, s string) (*board.Position, board.Color, int, int, error) {
	parts := strings.Fields(strings.TrimSpace(s))
	if len(parts) < 4 {
		return nil, 0, 0, 0, fmt.Errorf("invalid FEN, too few fields: %q", s)
	}

	pos := board.NewPosition(zt)

	// (1) Piece placement, rank 8 down to rank 1, file a through h: in this board's
	// numbering (rank 0 = 8th rank, square = rank*8+file, §3) that is simply
	// increasing Square order, so no direction bookkeeping is needed.
	sq := board.A8
	for _, r := range parts[0] {
		switch {
		case r == '/':
			// cosmetic rank separator
		case unicode.IsDigit(r):
			sq += board.Square(r - '0')
		case unicode.IsLetter(r):
			pc, ok := board.ParsePiece(r)
			if !ok {
				return nil, 0, 0, 0, fmt.Errorf("invalid piece %q in FEN: %q", string(r), s)
			}
			pos.Place(sq, pc)
			sq++
		default:
			return nil, 0, 0, 0, fmt.Errorf("invalid character %q in FEN: %q", string(r), s)
		}
	}
	if sq != board.NoSquare {
		return nil, 0, 0, 0, fmt.Errorf("invalid number of squares in FEN: %q", s)
	}

	// (2) Active color.
	active, ok := parseColor(parts[1])
	if !ok {
		return nil, 0, 0, 0, fmt.Errorf("invalid active color in FEN: %q", s)
	}
	pos.SetSideToMove(active)

	// (3) Castling availability.
	castling, ok := parseCastling(parts[2])
	if !ok {
		return nil, 0, 0, 0, fmt.Errorf("invalid castling in FEN: %q", s)
	}
	pos.SetCastlingRights(castling)

	// (4) En-passant target square.
	ep := board.NoSquare
	if parts[3] != "-" {
		s2, err := board.ParseSquareStr(parts[3])
		if err != nil {
			return nil, 0, 0, 0, fmt.Errorf("invalid en passant in FEN: %q: %w", s, err)
		}
		ep = s2
	}
	pos.SetEnPassant(ep)

	// (5) Halfmove clock, tolerated as absent.
	np := 0
	if len(parts) > 4 {
		n, err := strconv.Atoi(parts[4])
		if err != nil || n < 0 {
			return nil, 0, 0, 0, fmt.Errorf("invalid halfmove clock in FEN: %q", s)
		}
		np = n
	}
	pos.SetHalfmoveClock(np)

	// (6) Fullmove number, tolerated as absent.
	fm := 1
	if len(parts) > 5 {
		n, err := strconv.Atoi(parts[5])
		if err != nil || n < 1 {
			return nil, 0, 0, 0, fmt.Errorf("invalid fullmove number in FEN: %q", s)
		}
		fm = n
	}

	pos.RecomputeDerived()
	return pos, active, np, fm, nil
}

// Encode writes the position and game metadata in canonical FEN form.
func Encode(pos *board.Position, c board.Color, noprogress, fullmoves int) string {
	var sb strings.Builder
	for r := board.ZeroRank; r < board.NumRanks; r++ {
		blanks := 0
		for f := board.ZeroFile; f < board.NumFiles; f++ {
			pc := pos.PieceAt(board.NewSquare(f, r))
			if pc == board.NoPiece {
				blanks++
				continue
			}
			if blanks > 0 {
				sb.WriteString(strconv.Itoa(blanks))
				blanks = 0
			}
			sb.WriteString(pc.String())
		}
		if blanks > 0 {
			sb.WriteString(strconv.Itoa(blanks))
		}
		if r < board.NumRanks-1 {
			sb.WriteRune('/')
		}
	}

	turn := "w"
	if c == board.Black {
		turn = "b"
	}

	ep := "-"
	if sq, ok := pos.EnPassantSquare(); ok {
		ep = sq.String()
	}

	return fmt.Sprintf("%v %v %v %v %v %v", sb.String(), turn, printCastling(pos.CastlingRights()), ep, noprogress, fullmoves)
}

func parseColor(s string) (board.Color, bool) {
	switch s {
	case "w", "W":
		return board.White, true
	case "b", "B":
		return board.Black, true
	default:
		return 0, false
	}
}

func parseCastling(s string) (board.Castling, bool) {
	var ret board.Castling
	if s == "-" {
		return ret, true
	}
	for _, r := range s {
		switch r {
		case 'K':
			ret |= board.WhiteKingSideCastle
		case 'Q':
			ret |= board.WhiteQueenSideCastle
		case 'k':
			ret |= board.BlackKingSideCastle
		case 'q':
			ret |= board.BlackQueenSideCastle
		default:
			return 0, false
		}
	}
	return ret, true
}

// printCastling emits White's rights then Black's independently (§9: the original's
// writer duplicates the Black-kingside flag when asked for queenside; not reproduced).
func printCastling(c board.Castling) string {
	if c == 0 {
		return "-"
	}
	var sb strings.Builder
	if c.IsAllowed(board.WhiteKingSideCastle) {
		sb.WriteRune('K')
	}
	if c.IsAllowed(board.WhiteQueenSideCastle) {
		sb.WriteRune('Q')
	}
	if c.IsAllowed(board.BlackKingSideCastle) {
		sb.WriteRune('k')
	}
	if c.IsAllowed(board.BlackQueenSideCastle) {
		sb.WriteRune('q')
	}
	return sb.String()
}
