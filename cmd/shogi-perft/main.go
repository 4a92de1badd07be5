package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/pkg/profile"
	"golang.org/x/exp/slices"

	"github.com/jiro/shogi/internal/game"
	"github.com/jiro/shogi/internal/sfen"
	"github.com/jiro/shogi/internal/suite"
)

var (
	position   = flag.String("sfen", sfen.StartPosition, "SFEN string (defaults to the starting position)")
	depth      = flag.Int("depth", 0, "perft depth (required unless -moves; caps -suite depths)")
	divide     = flag.Bool("divide", false, "print per-move node counts at the root")
	workers    = flag.Int("workers", 0, "goroutines used by -divide (0 = one per CPU)")
	suitePath  = flag.String("suite", "", "run every position of a perft suite file")
	listMoves  = flag.Bool("moves", false, "print the board and its legal moves")
	cpuprofile = flag.String("cpuprofile", "", "write a CPU profile into this directory")
)

func main() {
	flag.Parse()
	os.Exit(run())
}

func run() int {
	// Start CPU profiling if requested (via flag or environment variable)
	profileDir := *cpuprofile
	if profileDir == "" {
		profileDir = os.Getenv("CPUPROFILE")
	}
	if profileDir != "" {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(profileDir)).Stop()
		log.Printf("CPU profiling enabled, writing to %s", profileDir)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if *suitePath != "" {
		failures, err := runSuite(ctx, *suitePath)
		if errors.Is(err, context.Canceled) {
			log.Print("interrupted")
			return 130
		}
		if err != nil {
			log.Printf("suite: %v", err)
			return 2
		}
		if failures > 0 {
			log.Printf("%d suite failures", failures)
			return 1
		}
		return 0
	}

	pos, ok := sfen.Parse(*position)
	if !ok {
		log.Printf("invalid SFEN: %q", *position)
		return 2
	}
	g := pos.Game()

	if *listMoves {
		printMoves(g)
		return 0
	}

	if *depth < 1 {
		log.Print("-depth must be at least 1")
		return 2
	}

	if *divide {
		if err := runDivide(ctx, g); err != nil {
			log.Printf("perft divide: %v", err)
			if errors.Is(err, context.Canceled) {
				return 130
			}
			return 1
		}
		return 0
	}

	start := time.Now()
	nodes, err := game.PerftContext(ctx, g, *depth)
	if err != nil {
		log.Printf("perft: %v", err)
		return 130
	}
	elapsed := time.Since(start)
	fmt.Printf("depth %d nodes %d time %s nps %.0f\n", *depth, nodes, elapsed, float64(nodes)/elapsed.Seconds())
	return 0
}

func printMoves(g *game.Game) {
	fmt.Print(g.Board())
	fmt.Printf("Side to move: %s\n", g.Color())
	fmt.Printf("SFEN: %s\n", sfen.Format(g, 0))
	if g.InCheck() {
		fmt.Println("In check")
	}
	moves := g.ValidMoves()
	fmt.Printf("%d legal moves:\n", len(moves))
	for _, m := range moves {
		fmt.Println(" ", m)
	}
}

func runDivide(ctx context.Context, g *game.Game) error {
	div, err := game.PerftDivide(ctx, g, *depth, *workers)
	if err != nil {
		return err
	}

	// Sort moves for stable output
	moves := make([]game.Move, 0, len(div))
	var total uint64
	for m, n := range div {
		moves = append(moves, m)
		total += n
	}
	slices.SortFunc(moves, func(a, b game.Move) int { return strings.Compare(a.String(), b.String()) })
	for _, m := range moves {
		fmt.Printf("%s: %d\n", m, div[m])
	}
	fmt.Printf("Total: %d\n", total)
	return nil
}

func runSuite(ctx context.Context, path string) (int, error) {
	cases, err := suite.Load(path)
	if err != nil {
		return 0, err
	}

	failures := 0
	for _, c := range cases {
		g := c.Position.Game()
		for _, e := range c.Expected {
			if *depth > 0 && e.Depth > *depth {
				continue
			}
			got, err := game.PerftContext(ctx, g, e.Depth)
			if err != nil {
				return failures, err
			}
			if got != e.Nodes {
				failures++
				log.Printf("line %d depth %d: got %d, want %d (%s)", c.Line, e.Depth, got, e.Nodes, c.SFEN)
				continue
			}
			log.Printf("line %d depth %d: %d ok", c.Line, e.Depth, got)
		}
	}
	return failures, nil
}
