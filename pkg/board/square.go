package board

import "fmt"

// Square identifies one of the 64 squares on the board. Square 0 is a8 and square 63
// is h1: rank 0 is the 8th rank (Black's back rank) and file 0 is the a-file, so
// Square = rank*8 + file. This numbering is load-bearing: move generation, the
// piece-square tables and the attack tables all assume it.
type Square uint8

const (
	ZeroSquare Square = 0
	NumSquares Square = 64
	NoSquare   Square = 64
)

// Named squares for the four corners and the castling-relevant squares, used by
// move generation and tests. Named from White's perspective (rank 8 = row 0).
const (
	A8 Square = 8*0 + 0
	E8 Square = 8*0 + 4
	H8 Square = 8*0 + 7
	A1 Square = 8*7 + 0
	E1 Square = 8*7 + 4
	H1 Square = 8*7 + 7
	C1 Square = 8*7 + 2
	D1 Square = 8*7 + 3
	F1 Square = 8*7 + 5
	G1 Square = 8*7 + 6
	C8 Square = 8*0 + 2
	D8 Square = 8*0 + 3
	F8 Square = 8*0 + 5
	G8 Square = 8*0 + 6
	B1 Square = 8*7 + 1
	B8 Square = 8*0 + 1
)

// NewSquare builds a square from a file and rank.
func NewSquare(f File, r Rank) Square {
	return Square(r)*8 + Square(f)
}

func (s Square) IsValid() bool {
	return s < NumSquares
}

func (s Square) File() File {
	return File(s % 8)
}

func (s Square) Rank() Rank {
	return Rank(s / 8)
}

// Mirror returns the square reflected across the board's horizontal midline, i.e.
// the square a piece-square table would use for the opposite color.
func (s Square) Mirror() Square {
	return NewSquare(s.File(), Rank(7-s.Rank()))
}

func (s Square) String() string {
	return fmt.Sprintf("%v%v", s.File(), s.Rank())
}

func ParseSquare(f, r rune) (Square, error) {
	file, ok := ParseFile(f)
	if !ok {
		return 0, fmt.Errorf("invalid file: %v", string(f))
	}
	rank, ok := ParseRank(r)
	if !ok {
		return 0, fmt.Errorf("invalid rank: %v", string(r))
	}
	return NewSquare(file, rank), nil
}

func ParseSquareStr(str string) (Square, error) {
	runes := []rune(str)
	if len(runes) != 2 {
		return 0, fmt.Errorf("invalid square: %v", str)
	}
	return ParseSquare(runes[0], runes[1])
}

// Rank is a board rank. Rank 0 is the 8th rank (Black's back rank), Rank 7 is the 1st rank.
type Rank uint8

const (
	ZeroRank Rank = 0
	NumRanks Rank = 8
)

func ParseRank(r rune) (Rank, bool) {
	if r < '1' || r > '8' {
		return 0, false
	}
	// '8' -> rank 0, '1' -> rank 7.
	return Rank('8' - r), true
}

func (r Rank) IsValid() bool {
	return r < NumRanks
}

// V returns the conventional 1-indexed rank number (1..8).
func (r Rank) V() int {
	return 8 - int(r)
}

func (r Rank) String() string {
	return fmt.Sprintf("%d", r.V())
}

// File is a board file. File 0 is the a-file, File 7 is the h-file.
type File uint8

const (
	FileA File = iota
	FileB
	FileC
	FileD
	FileE
	FileF
	FileG
	FileH
)

const (
	ZeroFile File = 0
	NumFiles File = 8
)

func ParseFile(r rune) (File, bool) {
	switch r {
	case 'a', 'A':
		return FileA, true
	case 'b', 'B':
		return FileB, true
	case 'c', 'C':
		return FileC, true
	case 'd', 'D':
		return FileD, true
	case 'e', 'E':
		return FileE, true
	case 'f', 'F':
		return FileF, true
	case 'g', 'G':
		return FileG, true
	case 'h', 'H':
		return FileH, true
	default:
		return 0, false
	}
}

func (f File) IsValid() bool {
	return f < NumFiles
}

func (f File) V() int {
	return int(f)
}

func (f File) String() string {
	return string(rune('a' + f))
}
