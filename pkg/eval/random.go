package eval

import (
	"context"
	"math/rand"

	"github.com/corvidchess/corvid/pkg/board"
)

// Random adds a small amount of deterministic noise to an evaluation, in centipawns,
// so that otherwise-tied lines don't always collapse to the same PV. Results fall in
// [-limit/2, limit-limit/2) (integer halves); a limit of zero always returns zero.
type Random struct {
	rand  *rand.Rand
	limit int
}

func NewRandom(limit int, seed int64) Random {
	return Random{
		limit: limit,
		rand:  rand.New(rand.NewSource(seed)),
	}
}

func (n Random) Evaluate(ctx context.Context, pos *board.Position) board.Score {
	if n.limit <= 0 {
		return 0
	}
	return board.Score(n.rand.Intn(n.limit) - n.limit/2)
}

// Combined sums one or more evaluators, e.g. Tapered plus a small Random jitter.
type Combined []Evaluator

func (c Combined) Evaluate(ctx context.Context, pos *board.Position) board.Score {
	var total board.Score
	for _, e := range c {
		total += e.Evaluate(ctx, pos)
	}
	return total
}
