// Package parallel provides bounded fan-out over index ranges.
package parallel

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Config controls parallel execution behavior.
type Config struct {
	Enabled      bool // Whether parallel execution is enabled.
	NumWorkers   int  // Maximum goroutines running at once.
	MinChunkSize int  // Minimum items per goroutine to avoid overhead.
}

// DefaultConfig returns sensible defaults based on CPU count.
func DefaultConfig() Config {
	n := runtime.NumCPU()
	return Config{
		Enabled:      n > 1,
		NumWorkers:   n,
		MinChunkSize: 64,
	}
}

// Chunks splits [0, n) into contiguous [start, end) ranges, one per worker.
// It returns a single range when parallelism is disabled or n is too small.
func Chunks(n int, cfg Config) [][2]int {
	if n <= 0 {
		return nil
	}
	if !cfg.Enabled || cfg.NumWorkers <= 1 || n < cfg.MinChunkSize {
		return [][2]int{{0, n}}
	}

	chunkSize := max((n+cfg.NumWorkers-1)/cfg.NumWorkers, cfg.MinChunkSize, 1)
	chunks := make([][2]int, 0, (n+chunkSize-1)/chunkSize)
	for start := 0; start < n; start += chunkSize {
		chunks = append(chunks, [2]int{start, min(start+chunkSize, n)})
	}
	return chunks
}

// ForChunks calls f once per chunk of [0, n), running at most NumWorkers at a
// time. chunk is the index of [start, end) in Chunks(n, cfg), so callers can
// store per-chunk results and combine them in a fixed order afterwards.
//
// The first error cancels the context passed to the remaining calls and is
// returned.
func ForChunks(ctx context.Context, n int, cfg Config, f func(ctx context.Context, chunk, start, end int) error) error {
	chunks := Chunks(n, cfg)
	if len(chunks) <= 1 {
		// Sequential fallback.
		for i, c := range chunks {
			if err := f(ctx, i, c[0], c[1]); err != nil {
				return err
			}
		}
		return nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.NumWorkers)
	for i, c := range chunks {
		i, c := i, c
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			return f(gctx, i, c[0], c[1])
		})
	}
	return g.Wait()
}

// For executes f(i) for i in [0, n) with optional parallelism.
// Falls back to sequential execution if parallelism is disabled or n is too small.
func For(n int, f func(i int), cfg Config) {
	_ = ForChunks(context.Background(), n, cfg, func(_ context.Context, _, start, end int) error {
		for i := start; i < end; i++ {
			f(i)
		}
		return nil
	})
}
