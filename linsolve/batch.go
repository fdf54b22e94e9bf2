package linsolve

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/lvlnum/matrix"
)

// ErrNoSolver reports a nil Solver handed to SolveBatch.
var ErrNoSolver = errors.New("linsolve: nil solver")

// System pairs one coefficient matrix with its right-hand side.
type System struct {
	A matrix.Matrix
	B []float64
}

// BatchOptions configures SolveBatch. The zero value is ready to use.
type BatchOptions struct {
	// Workers bounds the number of systems solved concurrently.
	// Zero or negative means runtime.GOMAXPROCS(0).
	Workers int

	// Logger receives per-system Debug records and one Info summary.
	// nil means no logging.
	Logger *slog.Logger
}

// SolveBatch solves every system with the same Solver on a bounded pool
// of goroutines and returns the solutions index-aligned with the input:
// results[i] solves systems[i], whatever order the workers finished in.
//
// The batch fails fast. The first error cancels the group's context,
// pending systems drain without solving, and the error comes back
// wrapped with the index of the system that caused it. On failure the
// results slice is nil; partial output is never handed out.
//
// Cancellation of ctx aborts the batch the same way, with ctx.Err() as
// the cause.
//
// Complexity: the sum of the individual solves, divided by Workers.
func SolveBatch(ctx context.Context, s Solver, systems []System, opts *BatchOptions) ([][]float64, error) {
	if s == nil {
		return nil, ErrNoSolver
	}

	workers := runtime.GOMAXPROCS(0)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	if opts != nil {
		if opts.Workers > 0 {
			workers = opts.Workers
		}
		if opts.Logger != nil {
			logger = opts.Logger
		}
	}

	start := time.Now()
	results := make([][]float64, len(systems))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, sys := range systems {
		i, sys := i, sys
		g.Go(func() error {
			// Drain instead of solving once the batch is doomed.
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			x, err := s.Solve(sys.A, sys.B)
			if err != nil {
				logger.Debug("system failed", "index", i, "err", err)

				return fmt.Errorf("linsolve: system %d: %w", i, err)
			}
			results[i] = x
			logger.Debug("system solved", "index", i, "size", len(x))

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	logger.Info("batch solved",
		"systems", len(systems),
		"workers", workers,
		"elapsed", time.Since(start),
	)

	return results, nil
}
