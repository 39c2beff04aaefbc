// Package engine is the game-playing facade around pkg/board/pkg/search: it owns the
// live Board, the transposition table and evaluator the current Options ask for, and
// hands off one search at a time to a searchctl.Launcher.
package engine

import (
	"context"
	"fmt"
	"sync"

	"github.com/corvidchess/corvid/pkg/board"
	"github.com/corvidchess/corvid/pkg/board/fen"
	"github.com/corvidchess/corvid/pkg/eval"
	"github.com/corvidchess/corvid/pkg/search"
	"github.com/corvidchess/corvid/pkg/search/searchctl"
	"github.com/corvidchess/corvid/pkg/tablebase"
	"github.com/seekerror/build"
	"github.com/seekerror/logw"
	"github.com/seekerror/stdlib/pkg/lang"
)

var version = build.NewVersion(0, 1, 0)

// Options are search creation options (§4.H, §6 "setoption").
type Options struct {
	// Depth is the default search depth limit used when Analyze isn't given one
	// explicitly. If zero, there is no limit.
	Depth uint
	// Hash is the transposition table size in MB. If zero, no table is used.
	Hash uint
	// Noise adds deterministic millipawn randomness to leaf evaluations, to avoid
	// collapsing ties to the same line every game.
	Noise uint
}

func (o Options) String() string {
	return fmt.Sprintf("{depth=%v, hash=%v, noise=%v}", o.Depth, o.Hash, o.Noise)
}

// Engine encapsulates game-playing logic, search and evaluation for one game at a time.
type Engine struct {
	name, author string

	factory search.TranspositionTableFactory
	oracle  tablebase.Oracle
	zt      *board.ZobristTable
	seed    int64
	opts    Options

	b        *board.Board
	tt       search.TranspositionTable
	launcher searchctl.Launcher
	active   searchctl.Handle
	mu       sync.Mutex
}

// Option is an engine creation option.
type Option func(*Engine)

// WithTable configures the engine to use the given transposition table factory.
func WithTable(factory search.TranspositionTableFactory) Option {
	return func(e *Engine) {
		e.factory = factory
	}
}

// WithOracle configures the engine to consult the given endgame tablebase oracle (§6).
func WithOracle(oracle tablebase.Oracle) Option {
	return func(e *Engine) {
		e.oracle = oracle
	}
}

// WithOptions sets default runtime options.
func WithOptions(opts Options) Option {
	return func(e *Engine) {
		e.opts = opts
	}
}

// WithZobrist configures the engine to use the given random seed instead of the
// default seed of zero.
func WithZobrist(seed int64) Option {
	return func(e *Engine) {
		e.seed = seed
	}
}

// New creates an engine at the initial position.
func New(ctx context.Context, name, author string, opts ...Option) *Engine {
	e := &Engine{
		name:    name,
		author:  author,
		factory: search.NewTranspositionTable,
		oracle:  tablebase.NoOracle{},
	}
	for _, fn := range opts {
		fn(e)
	}
	e.zt = board.NewZobristTable(e.seed)

	_ = e.Reset(ctx, fen.Initial)

	logw.Infof(ctx, "Initialized engine: %v, options=%v", e.Name(), e.opts)
	return e
}

// Name returns the engine name and version.
func (e *Engine) Name() string {
	return fmt.Sprintf("%v %v", e.name, version)
}

// Author returns the author.
func (e *Engine) Author() string {
	return e.author
}

func (e *Engine) Options() Options {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.opts
}

func (e *Engine) SetDepth(depth uint) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.opts.Depth = depth
}

func (e *Engine) SetHash(sizeMB uint) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.opts.Hash = sizeMB
	e.rebuildLauncher(context.Background())
}

func (e *Engine) SetNoise(millipawns uint) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.opts.Noise = millipawns
	e.rebuildLauncher(context.Background())
}

// Board returns a forked position, safe for the caller to inspect without racing a
// concurrent search or further moves.
func (e *Engine) Board() *board.Position {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.b.Fork()
}

// Position returns the current position in FEN format. Convenience function.
func (e *Engine) Position() string {
	e.mu.Lock()
	defer e.mu.Unlock()

	return fen.Encode(e.b.Position(), e.b.Turn(), e.b.Position().HalfmoveClock(), e.b.FullMoves())
}

// Reset resets the engine to a new starting position in FEN format.
func (e *Engine) Reset(ctx context.Context, position string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	logw.Infof(ctx, "Reset %v, depth=%v, TT=%vMB, noise=%vcp", position, e.opts.Depth, e.opts.Hash, e.opts.Noise/10)

	_, _ = e.haltSearchIfActive(ctx)

	pos, _, _, fullmoves, err := fen.Decode(e.zt, position)
	if err != nil {
		return err
	}

	e.b = board.NewBoard(pos, fullmoves)
	e.rebuildLauncher(ctx)

	logw.Infof(ctx, "New board: %v", e.b)
	return nil
}

// rebuildLauncher re-creates the transposition table, evaluator and launcher from the
// current Options. Must be called with e.mu held.
func (e *Engine) rebuildLauncher(ctx context.Context) {
	e.tt = search.NoTranspositionTable{}
	if e.opts.Hash > 0 {
		e.tt = e.factory(ctx, uint64(e.opts.Hash)<<20)
	}

	var ev eval.Evaluator = eval.Tapered{}
	if e.opts.Noise > 0 {
		ev = eval.Combined{eval.Tapered{}, eval.NewRandom(int(e.opts.Noise)/10, e.seed)}
	}

	searcher := search.NewSearcher(e.tt, ev, e.oracle)
	e.launcher = searchctl.NewIterative(searcher)
}

// Move plays the given move, usually an opponent move.
func (e *Engine) Move(ctx context.Context, move string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	logw.Infof(ctx, "Move %v", move)

	candidate, err := board.ParseMove(move)
	if err != nil {
		return fmt.Errorf("invalid move: %v", err)
	}

	_, _ = e.haltSearchIfActive(ctx)

	if !e.b.PushMove(candidate) {
		return fmt.Errorf("illegal move: %v", candidate)
	}

	logw.Infof(ctx, "Move %v: %v", candidate, e.b)
	return nil
}

// TakeBack undoes the latest move.
func (e *Engine) TakeBack(ctx context.Context) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	_, _ = e.haltSearchIfActive(ctx)

	m, ok := e.b.PopMove()
	if !ok {
		return fmt.Errorf("no move to take back")
	}

	logw.Infof(ctx, "Takeback %v", m)
	return nil
}

// Analyze analyzes the current position, publishing one PV per completed
// iterative-deepening iteration on the returned channel.
func (e *Engine) Analyze(ctx context.Context, opt searchctl.Options) (<-chan search.PV, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if _, ok := opt.DepthLimit.V(); !ok {
		opt.DepthLimit = lang.Some(e.opts.Depth)
	}

	logw.Infof(ctx, "Analyze %v, opt=%v", e.b, opt)

	if e.active != nil {
		return nil, fmt.Errorf("search already active")
	}

	handle, out := e.launcher.Launch(ctx, e.b.Fork(), e.b.History(), opt)
	e.active = handle
	return out, nil
}

// Halt halts the active search and returns the principal variation, if any.
func (e *Engine) Halt(ctx context.Context) (search.PV, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	logw.Infof(ctx, "Halt")

	pv, ok := e.haltSearchIfActive(ctx)
	if !ok {
		return search.PV{}, fmt.Errorf("no active search")
	}
	return pv, nil
}

func (e *Engine) haltSearchIfActive(ctx context.Context) (search.PV, bool) {
	if e.active != nil {
		pv := e.active.Halt()
		logw.Infof(ctx, "Search %v halted: %v", e.b, pv)

		e.active = nil
		return pv, true
	}
	return search.PV{}, false
}
