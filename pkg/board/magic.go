package board

import "math/bits"

// Fancy magic bitboards for Bishop/Rook (Queen = OR of both) sliding attacks.
// Grounded on _examples/hailam-chessplay/internal/board/magic.go: a Magic{Mask,Magic,
// Shift,Offset} per square, attack tables filled once at init by enumerating every
// subset of the relevant-occupancy mask and ray-casting the slow way.
//
// The public magic-number tables below are indexed by, and were derived against, the
// "conventional" CPW square numbering (a1=0, b1=1, ..., h8=63) and its corresponding
// bit layout: one byte per rank, rank 1 in the low byte. This board's Square numbering
// runs the other way (a8=0 ... h1=63, §3): one byte per rank, rank 8 in the low byte.
// Picking the right magic constant per square (magicIndex) is not enough on its own —
// a magic number is a perfect hash for a specific bit *layout*, not merely a square
// identity, so the mask/occupancy bits multiplied against it must be in that same CPW
// layout too. Since this board's layout is the CPW layout with its 8 rank-bytes in
// reverse order, toMagicOrientation (a per-rank byte swap) converts a native-oriented
// occupancy into the CPW orientation the published constants expect before every
// multiply; the attack tables themselves stay in native orientation (bishopAttacksSlow/
// rookAttacksSlow already compute them natively), only the index math is reoriented.

type magic struct {
	Mask   Bitboard
	Magic  uint64
	Shift  uint8
	Offset uint32
}

var (
	bishopMagics [NumSquares]magic
	rookMagics   [NumSquares]magic

	bishopTable [5248]Bitboard
	rookTable   [102400]Bitboard
)

// magicIndex maps this package's Square (a8=0..h1=63) to the conventional a1=0..h8=63
// numbering used by the published magic-number tables.
func magicIndex(sq Square) int {
	return (7-int(sq.Rank()))*8 + int(sq.File())
}

// toMagicOrientation reorients a native-oriented (a8=0) occupancy bitboard into the
// CPW (a1=0) layout the published magic numbers were derived against: both layouts
// pack one rank into each byte, in opposite rank order, so the conversion is a plain
// per-rank byte reversal. Bishop and rook attack geometry is symmetric under a rank
// reflection, so this is exactly the transform magicIndex applies at the square level.
func toMagicOrientation(occ Bitboard) uint64 {
	return bits.ReverseBytes64(uint64(occ))
}

var bishopMagicNumbers = [64]uint64{
	0x0002020202020200, 0x0002020202020000, 0x0004010202000000, 0x0004040080000000,
	0x0001104000000000, 0x0000821040000000, 0x0000410410400000, 0x0000104104104000,
	0x0000040404040400, 0x0000020202020200, 0x0000040102020000, 0x0000040400800000,
	0x0000011040000000, 0x0000008210400000, 0x0000004104104000, 0x0000002082082000,
	0x0004000808080800, 0x0002000404040400, 0x0001000202020200, 0x0000800802004000,
	0x0000800400A00000, 0x0000200100884000, 0x0000400082082000, 0x0000200041041000,
	0x0002080010101000, 0x0001040008080800, 0x0000208004010400, 0x0000404004010200,
	0x0000840000802000, 0x0000404002011000, 0x0000808001041000, 0x0000404000820800,
	0x0001041000202000, 0x0000820800101000, 0x0000104400080800, 0x0000020080080080,
	0x0000404040040100, 0x0000808100020100, 0x0001010100020800, 0x0000808080010400,
	0x0000820820004000, 0x0000410410002000, 0x0000082088001000, 0x0000002011000800,
	0x0000080100400400, 0x0001010101000200, 0x0002020202000400, 0x0001010101000200,
	0x0000410410400000, 0x0000208208200000, 0x0000002084100000, 0x0000000020880000,
	0x0000001002020000, 0x0000040408020000, 0x0004040404040000, 0x0002020202020000,
	0x0000104104104000, 0x0000002082082000, 0x0000000020841000, 0x0000000000208800,
	0x0000000010020200, 0x0000000404080200, 0x0000040404040400, 0x0002020202020200,
}

var rookMagicNumbers = [64]uint64{
	0x0080001020400080, 0x0040001000200040, 0x0080081000200080, 0x0080040800100080,
	0x0080020400080080, 0x0080010200040080, 0x0080008001000200, 0x0080002040800100,
	0x0000800020400080, 0x0000400020005000, 0x0000801000200080, 0x0000800800100080,
	0x0000800400080080, 0x0000800200040080, 0x0000800100020080, 0x0000800040800100,
	0x0000208000400080, 0x0000404000201000, 0x0000808010002000, 0x0000808008001000,
	0x0000808004000800, 0x0000808002000400, 0x0000010100020004, 0x0000020000408104,
	0x0000208080004000, 0x0000200040005000, 0x0000100080200080, 0x0000080080100080,
	0x0000040080080080, 0x0000020080040080, 0x0000010080800200, 0x0000800080004100,
	0x0000204000800080, 0x0000200040401000, 0x0000100080802000, 0x0000080080801000,
	0x0000040080800800, 0x0000020080800400, 0x0000020001010004, 0x0000800040800100,
	0x0000204000808000, 0x0000200040008080, 0x0000100020008080, 0x0000080010008080,
	0x0000040008008080, 0x0000020004008080, 0x0000010002008080, 0x0000004081020004,
	0x0000204000800080, 0x0000200040008080, 0x0000100020008080, 0x0000080010008080,
	0x0000040008008080, 0x0000020004008080, 0x0000800100020080, 0x0000800041000080,
	0x00FFFCDDFCED714A, 0x007FFCDDFCED714A, 0x003FFFCDFFD88096, 0x0000040810002101,
	0x0001000204080011, 0x0001000204000801, 0x0001000082000401, 0x0001FFFAABFAD1A2,
}

func init() {
	initBishopMagics()
	initRookMagics()
}

func initBishopMagics() {
	var offset uint32
	for sq := ZeroSquare; sq < NumSquares; sq++ {
		mask := bishopMask(sq)
		n := mask.PopCount()

		bishopMagics[sq] = magic{
			Mask:   mask,
			Magic:  bishopMagicNumbers[magicIndex(sq)],
			Shift:  uint8(64 - n),
			Offset: offset,
		}

		entries := 1 << n
		for i := 0; i < entries; i++ {
			occ := indexToOccupancy(i, n, mask)
			idx := (toMagicOrientation(occ) * bishopMagicNumbers[magicIndex(sq)]) >> (64 - n)
			bishopTable[offset+uint32(idx)] = bishopAttacksSlow(sq, occ)
		}
		offset += uint32(entries)
	}
}

func initRookMagics() {
	var offset uint32
	for sq := ZeroSquare; sq < NumSquares; sq++ {
		mask := rookMask(sq)
		n := mask.PopCount()

		rookMagics[sq] = magic{
			Mask:   mask,
			Magic:  rookMagicNumbers[magicIndex(sq)],
			Shift:  uint8(64 - n),
			Offset: offset,
		}

		entries := 1 << n
		for i := 0; i < entries; i++ {
			occ := indexToOccupancy(i, n, mask)
			idx := (toMagicOrientation(occ) * rookMagicNumbers[magicIndex(sq)]) >> (64 - n)
			rookTable[offset+uint32(idx)] = rookAttacksSlow(sq, occ)
		}
		offset += uint32(entries)
	}
}

// bishopMask is the relevant-occupancy mask: bishop rays with the board edge cropped,
// since an edge blocker never changes the attack set.
func bishopMask(sq Square) Bitboard {
	return bishopAttacksSlow(sq, EmptyBitboard) &^ (Rank1Bits | Rank8Bits | FileABits | FileHBits)
}

func rookMask(sq Square) Bitboard {
	f, r := sq.File(), sq.Rank()
	var mask Bitboard
	for i := 1; i < 7; i++ {
		if File(i) != f {
			mask |= BitMask(NewSquare(File(i), r))
		}
	}
	for i := 1; i < 7; i++ {
		if Rank(i) != r {
			mask |= BitMask(NewSquare(f, Rank(i)))
		}
	}
	return mask
}

func indexToOccupancy(index, n int, mask Bitboard) Bitboard {
	var occ Bitboard
	for i := 0; i < n; i++ {
		sq := mask.LSB()
		mask &= mask - 1
		if index&(1<<i) != 0 {
			occ |= BitMask(sq)
		}
	}
	return occ
}

func bishopAttacksSlow(sq Square, occupied Bitboard) Bitboard {
	var attacks Bitboard
	f, r := int(sq.File()), int(sq.Rank())
	for _, d := range [4][2]int{{1, 1}, {-1, 1}, {1, -1}, {-1, -1}} {
		for nf, nr := f+d[0], r+d[1]; nf >= 0 && nf < 8 && nr >= 0 && nr < 8; nf, nr = nf+d[0], nr+d[1] {
			s := NewSquare(File(nf), Rank(nr))
			attacks |= BitMask(s)
			if occupied.IsSet(s) {
				break
			}
		}
	}
	return attacks
}

func rookAttacksSlow(sq Square, occupied Bitboard) Bitboard {
	var attacks Bitboard
	f, r := int(sq.File()), int(sq.Rank())
	for _, d := range [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}} {
		for nf, nr := f+d[0], r+d[1]; nf >= 0 && nf < 8 && nr >= 0 && nr < 8; nf, nr = nf+d[0], nr+d[1] {
			s := NewSquare(File(nf), Rank(nr))
			attacks |= BitMask(s)
			if occupied.IsSet(s) {
				break
			}
		}
	}
	return attacks
}

// BishopAttackboard returns Bishop sliding attacks from sq given full board occupancy.
func BishopAttackboard(occupied Bitboard, sq Square) Bitboard {
	m := &bishopMagics[sq]
	idx := (toMagicOrientation(occupied&m.Mask) * m.Magic) >> m.Shift
	return bishopTable[m.Offset+uint32(idx)]
}

// RookAttackboard returns Rook sliding attacks from sq given full board occupancy.
func RookAttackboard(occupied Bitboard, sq Square) Bitboard {
	m := &rookMagics[sq]
	idx := (toMagicOrientation(occupied&m.Mask) * m.Magic) >> m.Shift
	return rookTable[m.Offset+uint32(idx)]
}
