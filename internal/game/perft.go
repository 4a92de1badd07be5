package game

import (
	"context"
	"fmt"
	"runtime"
	"sync"

	"golang.org/x/sync/errgroup"
)

// Perft counts the leaf nodes of the legal move tree at the given depth.
// A depth of zero or less counts the position itself.
func Perft(g *Game, depth int) uint64 {
	nodes, _ := perft(context.Background(), g, depth)
	return nodes
}

// PerftContext is Perft that stops early with ctx's error once ctx is done.
func PerftContext(ctx context.Context, g *Game, depth int) (uint64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	return perft(ctx, g, depth)
}

func perft(ctx context.Context, g *Game, depth int) (uint64, error) {
	if depth <= 0 {
		return 1, nil
	}

	moves := g.ValidMoves()
	if depth == 1 {
		return uint64(len(moves)), nil
	}

	if err := ctx.Err(); err != nil {
		return 0, err
	}

	var nodes uint64
	for _, m := range moves {
		child := g.Copy()
		child.apply(m)
		n, err := perft(ctx, child, depth-1)
		if err != nil {
			return 0, err
		}
		nodes += n
	}
	return nodes, nil
}

// PerftDivide returns the perft count below each legal root move. Root moves
// are searched concurrently by up to workers goroutines, each on its own copy
// of the game; workers <= 0 uses one per CPU.
func PerftDivide(ctx context.Context, g *Game, depth, workers int) (map[Move]uint64, error) {
	if depth < 1 {
		return nil, fmt.Errorf("perft divide: depth must be at least 1, got %d", depth)
	}
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	var (
		mu     sync.Mutex
		result = make(map[Move]uint64)
	)

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)
	for _, m := range g.ValidMoves() {
		m := m
		child := g.Copy()
		eg.Go(func() error {
			child.apply(m)
			n, err := perft(ctx, child, depth-1)
			if err != nil {
				return err
			}
			mu.Lock()
			result[m] = n
			mu.Unlock()
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return result, nil
}
