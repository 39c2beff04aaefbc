// Package uci contains a driver for using the engine under the UCI protocol.
//
// See: http://wbec-ridderkerk.nl/html/UCIProtocol.html
// See: https://en.wikipedia.org/wiki/Universal_Chess_Interface
package uci

import (
	"context"
	"fmt"
	"math/rand"
	"strconv"
	"strings"
	"time"

	"github.com/corvidchess/corvid/pkg/board"
	"github.com/corvidchess/corvid/pkg/board/fen"
	"github.com/corvidchess/corvid/pkg/engine"
	"github.com/corvidchess/corvid/pkg/search"
	"github.com/corvidchess/corvid/pkg/search/searchctl"
	"github.com/seekerror/logw"
	"github.com/seekerror/stdlib/pkg/lang"
	"go.uber.org/atomic"
)

const ProtocolName = "uci"

// Option is an UCI driver option.
type Option func(*options)

type options struct {
	useBook    bool
	book       engine.Book
	bookWeight float64
	rand       *rand.Rand
}

// UseBook instructs the driver to use the given opening book, picking among candidates
// with a §6 "count^w" weighted choice.
func UseBook(book engine.Book, seed int64, weight float64) Option {
	return func(opt *options) {
		opt.useBook = true
		opt.book = book
		opt.bookWeight = weight
		opt.rand = rand.New(rand.NewSource(seed))
	}
}

// Driver implements a UCI driver for an engine. It is activated if sent "uci".
type Driver struct {
	e   *engine.Engine
	opt options

	out chan<- string

	active       atomic.Bool    // user is waiting for engine to move
	ponder       chan search.PV // chan for intermediate search information
	lastPosition string         // last position line (empty if no last position)

	quit   chan struct{}
	closed atomic.Bool
}

func NewDriver(ctx context.Context, e *engine.Engine, in <-chan string, opts ...Option) (*Driver, <-chan string) {
	var opt options
	for _, fn := range opts {
		fn(&opt)
	}

	out := make(chan string, 100)
	d := &Driver{
		e:      e,
		opt:    opt,
		out:    out,
		ponder: make(chan search.PV, 400),
		quit:   make(chan struct{}),
	}
	go d.process(ctx, in)

	return d, out
}

func (d *Driver) Close() {
	if d.closed.CAS(false, true) {
		close(d.quit)
	}
}

func (d *Driver) Closed() <-chan struct{} {
	return d.quit
}

func (d *Driver) process(ctx context.Context, in <-chan string) {
	defer d.Close()
	defer close(d.out)

	logw.Infof(ctx, "UCI protocol initialized")

	d.out <- fmt.Sprintf("id name %v", d.e.Name())
	d.out <- fmt.Sprintf("id author %v", d.e.Author())

	d.out <- "option name Hash type spin default 0 min 0 max 4096"
	d.out <- "option name Noise type spin default 0 min 0 max 1000"
	if d.opt.book != nil {
		d.out <- fmt.Sprintf("option name OwnBook type check default %v", d.opt.useBook)
	}

	d.out <- "uciok"

loop:
	for {
		select {
		case line, ok := <-in:
			if !ok {
				logw.Infof(ctx, "Input stream broken. Exiting")
				return
			}

			parts := strings.Split(strings.TrimSpace(line), " ")
			if len(parts) == 0 {
				break
			}

			cmd := parts[0]
			args := parts[1:]

			switch strings.ToLower(cmd) {
			case "isready":
				d.out <- "readyok"

			case "debug":
				// switches verbose logging; not modeled as a distinct engine knob here.

			case "setoption":
				// setoption name <id> [value <x>]
				var name, value string
				if len(args) > 1 {
					name = args[1]
				}
				if len(args) > 3 {
					value = args[3]
				}

				switch name {
				case "OwnBook":
					d.opt.useBook, _ = strconv.ParseBool(value)
				case "Hash":
					if n, err := strconv.Atoi(value); err == nil && n >= 0 {
						d.e.SetHash(uint(n))
					}
				case "Noise":
					if n, err := strconv.Atoi(value); err == nil && n >= 0 {
						d.e.SetNoise(uint(n))
					}
				}

			case "register":
				// no registration scheme to enforce.

			case "ucinewgame":
				d.ensureInactive(ctx)
				d.lastPosition = ""

			case "position":
				d.ensureInactive(ctx)

				if d.lastPosition != "" && strings.HasPrefix(line, d.lastPosition) {
					// Continuation of game.

					moves := strings.TrimSpace(strings.TrimPrefix(line, d.lastPosition))
					for _, arg := range strings.Split(moves, " ") {
						if arg == "" || arg == "moves" {
							continue
						}

						if err := d.e.Move(ctx, arg); err != nil {
							logw.Errorf(ctx, "Invalid position move '%v': %v: %v", arg, line, err)
							d.lastPosition = ""
							continue loop
						}
					}

					d.lastPosition = line
					break
				}

				// New position.

				position := fen.Initial
				if len(args) >= 7 && args[0] == "fen" {
					position = strings.Join(args[1:7], " ")
				}

				if err := d.e.Reset(ctx, position); err != nil {
					logw.Errorf(ctx, "Invalid position: %v", line)
					continue loop
				}

				move := false
				for _, arg := range args {
					if arg == "moves" {
						move = true
						continue
					}
					if !move {
						continue
					}

					if err := d.e.Move(ctx, arg); err != nil {
						logw.Errorf(ctx, "Invalid position move '%v': %v: %v", arg, line, err)
						d.lastPosition = ""
						continue loop
					}
				}
				d.lastPosition = line

			case "go":
				d.ensureInactive(ctx)

				var opt searchctl.Options
				var tc searchctl.TimeControl
				hasTC := false
				infinite := false
				var moveTime time.Duration

				for i := 0; i < len(args); i++ {
					cmd := args[i]
					switch cmd {
					case "wtime", "btime", "winc", "binc", "movestogo", "depth", "movetime":
						i++
						if i == len(args) {
							logw.Errorf(ctx, "No argument for %v: %v", cmd, line)
							continue loop
						}
						n, err := strconv.Atoi(args[i])
						if err != nil {
							logw.Errorf(ctx, "Invalid argument for %v: %v", line, err)
							continue loop
						}

						switch cmd {
						case "depth":
							opt.DepthLimit = lang.Some(uint(n))
						case "wtime":
							if d.e.Board().SideToMove() == board.White {
								tc.Mode, tc.TimeLeft, hasTC = searchctl.Clock, time.Duration(n)*time.Millisecond, true
							}
						case "btime":
							if d.e.Board().SideToMove() == board.Black {
								tc.Mode, tc.TimeLeft, hasTC = searchctl.Clock, time.Duration(n)*time.Millisecond, true
							}
						case "winc":
							if d.e.Board().SideToMove() == board.White {
								tc.Increment = time.Duration(n) * time.Millisecond
							}
						case "binc":
							if d.e.Board().SideToMove() == board.Black {
								tc.Increment = time.Duration(n) * time.Millisecond
							}
						case "movestogo":
							// movestogo doesn't bear on the H(material) clock model; ignored.
						case "movetime":
							moveTime = time.Duration(n) * time.Millisecond
						}

					case "infinite":
						infinite = true

					default:
						// silently ignore anything not handled (searchmoves, ponder, mate, nodes).
					}
				}

				if moveTime > 0 {
					tc.Mode, tc.MoveTimeBudget, hasTC = searchctl.MoveTime, moveTime, true
				}
				if hasTC && !infinite {
					opt.TimeControl = lang.Some(tc)
				}

				if d.opt.useBook && d.opt.book != nil {
					// Use opening book if possible.

					candidates, err := d.opt.book.Find(ctx, d.e.Position())
					if err != nil {
						logw.Errorf(ctx, "Failed to find book move for %v: %v", d.e.Position(), err)
						continue loop
					}

					if len(candidates) > 0 {
						winner := engine.Pick(d.opt.rand, candidates, d.opt.bookWeight)
						pv := search.PV{Moves: []board.Move{winner}}

						d.active.Store(true)
						d.searchCompleted(ctx, pv)
						break
					} // else: no book move
				}

				out, err := d.e.Analyze(ctx, opt)
				if err != nil {
					logw.Errorf(ctx, "Analyze failed: %v", err)
					continue loop
				}
				d.active.Store(true)

				// Forward ponder info. Complete search if it ends, unless infinite.

				go func() {
					var last search.PV
					for pv := range out {
						last = pv
						d.ponder <- pv
					}
					if !infinite {
						d.searchCompleted(ctx, last)
					}
				}()

			case "stop":
				pv, err := d.e.Halt(ctx)
				if err == nil {
					d.searchCompleted(ctx, pv)
				}

			case "ponderhit":
				// engine doesn't distinguish a pondering search from a normal one.

			case "quit":
				return

			default:
				logw.Warningf(ctx, "Unknown command '%v': %v", cmd, args)
			}

		case pv := <-d.ponder:
			if d.active.Load() {
				d.out <- printPV(pv)
			}

		case <-d.quit:
			d.ensureInactive(ctx)

			logw.Infof(ctx, "Driver closed")
			return
		}
	}
}

func (d *Driver) ensureInactive(ctx context.Context) {
	d.active.Store(false)
	_, _ = d.e.Halt(ctx)
}

func (d *Driver) searchCompleted(ctx context.Context, pv search.PV) {
	if d.active.CAS(true, false) {
		if len(pv.Moves) > 0 {
			d.out <- printPV(pv)
			d.out <- fmt.Sprintf("bestmove %v", pv.Moves[0])
		} else {
			// No PV. Position is checkmate or stalemate.
			d.out <- "bestmove 0000"
		}
	} // else: stale or duplicate result
}

func printPV(pv search.PV) string {
	// "info depth 2 score cp 214 time 1242 nodes 2124 nps 34928 pv e2e4 e7e5 g1f3"

	parts := []string{"info"}
	parts = append(parts, fmt.Sprintf("depth %v", pv.Depth))
	if pv.Score.IsMateScore() {
		parts = append(parts, fmt.Sprintf("score mate %v", pv.Score.MateIn()))
	} else {
		parts = append(parts, fmt.Sprintf("score cp %v", int(pv.Score)))
	}
	if pv.Time > 0 {
		parts = append(parts, fmt.Sprintf("time %v", pv.Time.Milliseconds()))
	}
	if pv.Nodes > 0 {
		parts = append(parts, fmt.Sprintf("nodes %v", pv.Nodes))
	}
	if pv.Nodes > 0 && pv.Time > 0 {
		parts = append(parts, fmt.Sprintf("nps %v", uint64(time.Second)*pv.Nodes/uint64(pv.Time)))
	}
	if len(pv.Moves) > 0 {
		parts = append(parts, "pv")
		parts = append(parts, board.FormatMoves(pv.Moves))
	}

	return strings.Join(parts, " ")
}
