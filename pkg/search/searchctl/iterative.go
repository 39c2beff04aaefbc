package searchctl

import (
	"context"
	"sync"
	"time"

	"github.com/corvidchess/corvid/pkg/board"
	"github.com/corvidchess/corvid/pkg/search"
	"github.com/seekerror/logw"
	"go.uber.org/atomic"
)

// iterative is the one-goroutine-per-search harness described in §5: a single search
// worker, a shared atomic quit flag polled by the searcher, no locks beyond the one
// protecting the last-published PV.
type iterative struct {
	searcher *search.Searcher
}

// NewIterative returns a Launcher that runs iterative deepening via searcher.
func NewIterative(searcher *search.Searcher) Launcher {
	return &iterative{searcher: searcher}
}

func (l *iterative) Launch(ctx context.Context, pos *board.Position, ancestors []board.ZobristHash, opt Options) (Handle, <-chan search.PV) {
	out := make(chan search.PV, 1)
	h := &handle{quit: atomic.NewBool(false), init: make(chan struct{})}

	go h.process(ctx, l.searcher, pos, ancestors, opt, out)
	return h, out
}

type handle struct {
	quit     *atomic.Bool
	init     chan struct{}
	initOnce sync.Once

	mu sync.Mutex
	pv search.PV
}

func (h *handle) process(ctx context.Context, searcher *search.Searcher, pos *board.Position, ancestors []board.ZobristHash, opt Options, out chan search.PV) {
	defer h.markInitialized()
	defer close(out)

	maxDepth := 0
	if v, ok := opt.DepthLimit.V(); ok {
		maxDepth = int(v)
	}

	var softDeadline time.Time
	if tc, ok := opt.TimeControl.V(); ok {
		material := MaterialPawns(pos)
		if soft, hard, enforced := tc.Budget(material); enforced {
			softDeadline = time.Now().Add(soft)
			timer := time.AfterFunc(hard, func() { h.Halt() })
			defer timer.Stop()

			logw.Debugf(ctx, "Time control %v for %v material: soft=%v hard=%v", tc, material, soft, hard)
		}
	}

	searcher.RunIterativeDeepening(ctx, pos, ancestors, maxDepth, h.quit, func(pv search.PV) {
		h.mu.Lock()
		h.pv = pv
		h.mu.Unlock()

		select {
		case <-out:
		default:
		}
		out <- pv

		h.markInitialized()

		if pv.Score.IsMateScore() {
			h.quit.Store(true) // halt: forced mate found, exact result
			return
		}
		if !softDeadline.IsZero() && time.Now().After(softDeadline) {
			h.quit.Store(true) // halt: exceeded soft time limit, don't start a new iteration
		}
	})
}

func (h *handle) Halt() search.PV {
	<-h.init
	h.quit.Store(true)

	h.mu.Lock()
	defer h.mu.Unlock()
	return h.pv
}

func (h *handle) markInitialized() {
	h.initOnce.Do(func() { close(h.init) })
}
