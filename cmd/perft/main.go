// perft is a movegen debugging tool. See: https://www.chessprogramming.org/Perft_Results.
package main

import (
	"context"
	"flag"
	"fmt"
	"time"

	"github.com/corvidchess/corvid/pkg/board"
	"github.com/corvidchess/corvid/pkg/board/fen"
	"github.com/seekerror/logw"
)

var (
	depth    = flag.Int("depth", 4, "Search depth")
	position = flag.String("fen", "", "Start position (default to standard)")
	divide   = flag.Bool("divide", false, "Divide counts by initial move")
)

func main() {
	ctx := context.Background()
	flag.Parse()

	if *position == "" {
		*position = fen.Initial
	}

	zt := board.NewDefaultZobristTable()
	pos, _, _, _, err := fen.Decode(zt, *position)
	if err != nil {
		logw.Exitf(ctx, "Invalid fen '%v': %v", *position, err)
	}

	for i := 1; i <= *depth; i++ {
		start := time.Now()
		nodes := perft(pos, i, *divide && i == *depth)
		duration := time.Since(start)

		fmt.Printf("perft,%v,%v,%v,%v\n", *position, i, nodes, duration.Microseconds())
	}
}

func perft(pos *board.Position, depth int, d bool) int64 {
	if depth == 0 {
		return 1
	}

	var nodes int64
	for _, m := range board.GenerateLegalMoves(pos) {
		pos.MakeMove(m)
		count := perft(pos, depth-1, false)
		pos.UnmakeMove(m)

		if d {
			fmt.Printf("%v: %v\n", m, count)
		}
		nodes += count
	}
	return nodes
}
