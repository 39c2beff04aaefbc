package engine

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"sort"
	"strings"

	"github.com/corvidchess/corvid/pkg/board"
	"github.com/corvidchess/corvid/pkg/board/fen"
)

// WeightedMove is one opening-book candidate together with how often it was played in
// the training lines that built the book.
type WeightedMove struct {
	Move        board.Move
	TimesPlayed uint32
}

// Book represents an opening book, keyed by the three-field FEN prefix (board, side to
// move, castling rights) as in spec.md §6 and the original's get_book_move.
type Book interface {
	// Find returns a list -- potentially empty -- of weighted candidate moves given a
	// position. Once an empty list is returned, the book should not be consulted again
	// for the game.
	Find(ctx context.Context, fen string) ([]WeightedMove, error)
}

// Line represents an opening line: e2e4 d7d5.
type Line []string

func (l Line) String() string {
	return strings.Join(l, " ")
}

// NoBook is an empty opening book.
var NoBook Book = &book{moves: map[string]map[board.Move]uint32{}}

// NewBook creates an opening book from a set of training lines, counting how many
// lines play each move from each position reached -- the in-memory equivalent of the
// original's "pos <fen>" / "<move> <times_played>" book file.
func NewBook(lines []Line) (Book, error) {
	m := map[string]map[board.Move]uint32{}
	for _, line := range lines {
		key := fen.Initial
		zt := board.NewDefaultZobristTable()
		for _, str := range line {
			next, err := board.ParseMove(str)
			if err != nil {
				return nil, fmt.Errorf("invalid line '%v': %v", line, err)
			}

			pos, turn, _, _, err := fen.Decode(zt, key)
			if err != nil {
				return nil, fmt.Errorf("invalid line '%v': %w", line, err)
			}

			found := false
			for _, candidate := range board.GenerateLegalMoves(pos) {
				if candidate.From() != next.From() || candidate.To() != next.To() {
					continue
				}
				if next.IsPromotion() && candidate.Type() != next.Type() {
					continue
				}

				found = true

				k := fenKey(key)
				if m[k] == nil {
					m[k] = map[board.Move]uint32{}
				}
				m[k][candidate]++

				pos.MakeMove(candidate)
				key = fen.Encode(pos, turn.Opponent(), 0, 1)
				break
			}

			if !found {
				return nil, fmt.Errorf("invalid line '%v': move %v not found", line, next)
			}
		}
	}

	return &book{moves: m}, nil
}

type book struct {
	moves map[string]map[board.Move]uint32 // cropped fen -> move -> times played
}

func (b *book) Find(ctx context.Context, fenStr string) ([]WeightedMove, error) {
	counts := b.moves[fenKey(fenStr)]
	if len(counts) == 0 {
		return nil, nil
	}

	list := make([]WeightedMove, 0, len(counts))
	for m, n := range counts {
		list = append(list, WeightedMove{Move: m, TimesPlayed: n})
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Move < list[j].Move })
	return list, nil
}

// Pick performs a weighted random choice among candidates, weighting each move by
// TimesPlayed^weight (spec.md §6 "count^w weighted pick"). weight 0 reduces to a
// uniform choice; weight 1 plays the most-trodden line proportionally more often.
func Pick(r *rand.Rand, candidates []WeightedMove, weight float64) board.Move {
	if len(candidates) == 0 {
		return board.NoMove
	}
	if len(candidates) == 1 {
		return candidates[0].Move
	}

	weights := make([]float64, len(candidates))
	var total float64
	for i, c := range candidates {
		w := math.Pow(float64(c.TimesPlayed), weight)
		weights[i] = w
		total += w
	}
	if total <= 0 {
		return candidates[r.Intn(len(candidates))].Move
	}

	target := r.Float64() * total
	var acc float64
	for i, w := range weights {
		acc += w
		if acc >= target {
			return candidates[i].Move
		}
	}
	return candidates[len(candidates)-1].Move
}

func fenKey(pos string) string {
	parts := strings.Split(pos, " ")
	n := 3
	if len(parts) < n {
		n = len(parts)
	}
	return strings.Join(parts[:n], " ")
}
