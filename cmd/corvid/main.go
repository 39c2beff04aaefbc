package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/corvidchess/corvid/pkg/engine"
	"github.com/corvidchess/corvid/pkg/engine/uci"
	"github.com/seekerror/logw"
)

var (
	depth      = flag.Uint("depth", 0, "Search depth limit (zero for no limit)")
	hash       = flag.Uint("hash", 64, "Transposition table size in MB (zero to disable)")
	noise      = flag.Uint("noise", 0, "Evaluation noise in millipawns (zero if deterministic)")
	bookPath   = flag.String("book", "", "Opening book file of whitespace-separated move lines, one per line")
	bookWeight = flag.Float64("book-weight", 1.0, "Opening book times-played weighting exponent")
)

func init() {
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, `usage: corvid [options]

corvid is a UCI chess engine.
Options:
`)
		flag.PrintDefaults()
	}
}

func main() {
	flag.Parse()
	ctx := context.Background()

	e := engine.New(ctx, "corvid", "corvidchess", engine.WithOptions(engine.Options{
		Depth: *depth,
		Hash:  *hash,
		Noise: *noise,
	}))

	var uciOpts []uci.Option
	if *bookPath != "" {
		book, err := loadBook(*bookPath)
		if err != nil {
			logw.Exitf(ctx, "Invalid book '%v': %v", *bookPath, err)
		}
		uciOpts = append(uciOpts, uci.UseBook(book, time.Now().UnixNano(), *bookWeight))
	}

	in := engine.ReadStdinLines(ctx)
	switch <-in {
	case uci.ProtocolName:
		driver, out := uci.NewDriver(ctx, e, in, uciOpts...)
		go engine.WriteStdoutLines(ctx, out)

		<-driver.Closed()

	default:
		flag.Usage()
		logw.Exitf(ctx, "Protocol not supported")
	}
}

// loadBook reads a book file of one opening line per line, each line a sequence of
// whitespace-separated UCI moves (e.g. "e2e4 e7e5 g1f3").
func loadBook(path string) (engine.Book, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var lines []engine.Line
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		lines = append(lines, strings.Fields(text))
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return engine.NewBook(lines)
}
