package board

import "math/rand"

// ZobristHash is a position hash used for transposition-table indexing and threefold-
// repetition detection (§4.C). Two positions that are "the same" under the repetition
// rule (same piece placement, side to move, castling rights, en-passant file) hash to
// the same value.
type ZobristHash uint64

// ZobristTable is a table of pseudo-random keys, one per (piece, square), plus side,
// castling-rights and en-passant-file keys. Seeded deterministically (not from system
// entropy) so positions hash identically across runs, matching the teacher's
// math/rand-seeded construction in zobrist.go.
type ZobristTable struct {
	sq       [NumPieces][NumSquares]ZobristHash
	side     ZobristHash
	castling [16]ZobristHash
	epFile   [NumFiles]ZobristHash
}

// DefaultZobristSeed is the fixed seed used by NewDefaultZobristTable, so that two
// engine processes (or two runs of the same process) produce identical hashes.
const DefaultZobristSeed = 0x5A6C0B157

func NewZobristTable(seed int64) *ZobristTable {
	r := rand.New(rand.NewSource(seed))

	t := &ZobristTable{}
	for p := Piece(0); p < NumPieces; p++ {
		for sq := ZeroSquare; sq < NumSquares; sq++ {
			t.sq[p][sq] = ZobristHash(r.Uint64())
		}
	}
	t.side = ZobristHash(r.Uint64())
	for i := range t.castling {
		t.castling[i] = ZobristHash(r.Uint64())
	}
	for f := ZeroFile; f < NumFiles; f++ {
		t.epFile[f] = ZobristHash(r.Uint64())
	}
	return t
}

func NewDefaultZobristTable() *ZobristTable {
	return NewZobristTable(DefaultZobristSeed)
}

// PieceKey returns the XOR key for placing/removing piece p on sq.
func (t *ZobristTable) PieceKey(p Piece, sq Square) ZobristHash {
	return t.sq[p][sq]
}

// SideKey returns the XOR key toggled every time the side to move changes.
func (t *ZobristTable) SideKey() ZobristHash {
	return t.side
}

// CastlingKey returns the XOR key for a given castling-rights nibble.
func (t *ZobristTable) CastlingKey(c Castling) ZobristHash {
	return t.castling[c]
}

// EnPassantKey returns the XOR key for the en-passant-target file. There is one key
// per file, not per square (§4.C): the target's rank is implied by the side to move,
// so the file alone identifies the en-passant target.
func (t *ZobristTable) EnPassantKey(f File) ZobristHash {
	return t.epFile[f]
}

// Hash computes the zobrist hash for a position from scratch, for cross-checking the
// incrementally maintained hash. Nothing in the engine calls it: FEN loading rebuilds
// the hash with Position.RecomputeDerived, and make/unmake updates it incrementally
// (§4.C, §4.D).
func (t *ZobristTable) Hash(pos *Position) ZobristHash {
	var h ZobristHash
	for sq := ZeroSquare; sq < NumSquares; sq++ {
		if p := pos.PieceAt(sq); p != NoPiece {
			h ^= t.PieceKey(p, sq)
		}
	}
	if pos.SideToMove() == Black {
		h ^= t.SideKey()
	}
	h ^= t.CastlingKey(pos.CastlingRights())
	if ep, ok := pos.EnPassantSquare(); ok {
		h ^= t.EnPassantKey(ep.File())
	}
	return h
}
