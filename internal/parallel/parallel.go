// Package parallel splits loops over linear tensor offsets across goroutines.
package parallel

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Config controls parallel execution behavior.
type Config struct {
	Enabled      bool // Whether parallel execution is enabled.
	NumWorkers   int  // Maximum number of concurrent goroutines.
	MinChunkSize int  // Minimum offsets per goroutine to avoid overhead.
}

// DefaultConfig returns sensible defaults based on CPU count.
func DefaultConfig() Config {
	n := runtime.NumCPU()
	return Config{
		Enabled:      n > 1,
		NumWorkers:   n,
		MinChunkSize: 4096, // Elementwise float32 work is cheap per offset.
	}
}

// Sequential returns a configuration that never spawns goroutines.
func Sequential() Config {
	return Config{Enabled: false, NumWorkers: 1, MinChunkSize: 1}
}

// chunkSize returns the per-goroutine span for n offsets, or 0 when the
// loop should run sequentially.
func (cfg Config) chunkSize(n int) int {
	if !cfg.Enabled || cfg.NumWorkers < 2 || n < 2*max(cfg.MinChunkSize, 1) {
		return 0
	}
	return max((n+cfg.NumWorkers-1)/cfg.NumWorkers, cfg.MinChunkSize, 1)
}

// ForRange calls f on disjoint half-open ranges [start, end) covering [0, n).
// Falls back to a single f(0, n) call if parallelism is disabled or n is too small.
func ForRange(n int, f func(start, end int), cfg Config) {
	if n <= 0 {
		return
	}
	chunk := cfg.chunkSize(n)
	if chunk == 0 {
		f(0, n)
		return
	}

	var g errgroup.Group
	g.SetLimit(cfg.NumWorkers)
	for start := 0; start < n; start += chunk {
		start := start // per-iteration copy (go 1.21 loop semantics)
		end := min(start+chunk, n)
		g.Go(func() error {
			f(start, end)
			return nil
		})
	}
	_ = g.Wait() // f cannot fail
}

// ForRangeErr calls f on disjoint half-open ranges [start, end) covering
// [0, n) and returns the first error. Each call receives a context that is
// canceled once any range fails or ctx is canceled; ranges not yet started
// are skipped.
func ForRangeErr(ctx context.Context, n int, f func(ctx context.Context, start, end int) error, cfg Config) error {
	if n <= 0 {
		return ctx.Err()
	}
	chunk := cfg.chunkSize(n)
	if chunk == 0 {
		if err := ctx.Err(); err != nil {
			return err
		}
		return f(ctx, 0, n)
	}

	g, gctx := errgroup.WithContext(ctx)
	if cfg.NumWorkers > 0 {
		g.SetLimit(cfg.NumWorkers)
	}
	for start := 0; start < n; start += chunk {
		start := start // per-iteration copy (go 1.21 loop semantics)
		end := min(start+chunk, n)
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			return f(gctx, start, end)
		})
	}
	return g.Wait()
}
