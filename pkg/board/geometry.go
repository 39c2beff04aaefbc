package board

// Between[a][b] is the set of squares strictly between a and b if they share a rank,
// file or diagonal, else empty. Line[a][b] is the full line through a and b (both
// endpoints included) if they share a rank/file/diagonal, else empty. Both are used
// by the legal move generator to restrict a pinned piece to its pin ray and to find
// the squares a check can be blocked on.
var Between [NumSquares][NumSquares]Bitboard
var Line [NumSquares][NumSquares]Bitboard

var directions = [8][2]int{
	{0, -1}, {0, 1}, {-1, 0}, {1, 0}, // N, S, W, E
	{-1, -1}, {1, -1}, {-1, 1}, {1, 1}, // NW, NE, SW, SE
}

func init() {
	for a := ZeroSquare; a < NumSquares; a++ {
		af, ar := int(a.File()), int(a.Rank())
		for _, d := range directions {
			var ray []Square
			f, r := af+d[0], ar+d[1]
			for f >= 0 && f < 8 && r >= 0 && r < 8 {
				ray = append(ray, NewSquare(File(f), Rank(r)))
				f, r = f+d[0], r+d[1]
			}
			line := BitMask(a)
			for _, s := range ray {
				line |= BitMask(s)
			}
			for f, r := af-d[0], ar-d[1]; f >= 0 && f < 8 && r >= 0 && r < 8; f, r = f-d[0], r-d[1] {
				line |= BitMask(NewSquare(File(f), Rank(r)))
			}
			for i, b := range ray {
				var between Bitboard
				for _, s := range ray[:i] {
					between |= BitMask(s)
				}
				Between[a][b] = between
				Line[a][b] = line
			}
		}
	}
}
