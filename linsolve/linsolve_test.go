package linsolve_test

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlnum/linsolve"
	"github.com/katalvlaran/lvlnum/matrix"
	"github.com/katalvlaran/lvlnum/stationary"
)

// tridiag is SPD and diagonally dominant, so every adapter in the
// package can solve it. Exact solution of tridiag·x = {15,10,10}:
// (1/56)·{275,260,205}.
var (
	tridiag = [][]float64{
		{4, -1, 0},
		{-1, 4, -1},
		{0, -1, 4},
	}
	tridiagRHS = []float64{15, 10, 10}
	tridiagX   = []float64{275.0 / 56, 260.0 / 56, 205.0 / 56}
)

// dense builds a *matrix.Dense from rows or fails the test.
func dense(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()

	d, err := matrix.NewDenseFrom(rows)
	require.NoError(t, err)

	return d
}

// TestAdapters_AgreeOnSPD runs every adapter against the same system and
// expects the same answer: the facade must not change the semantics.
func TestAdapters_AgreeOnSPD(t *testing.T) {
	solvers := map[string]linsolve.Solver{
		"Elimination":       linsolve.Elimination{},
		"LU":                linsolve.LU{},
		"Jacobi":            linsolve.Jacobi{},
		"GaussSeidel":       linsolve.GaussSeidel{},
		"SOR":               linsolve.SOR{Options: &stationary.Options{Omega: 1.1}},
		"ConjugateGradient": linsolve.ConjugateGradient{},
		"Refinement":        linsolve.Refinement{},
	}
	for name, s := range solvers {
		name, s := name, s
		t.Run(name, func(t *testing.T) {
			x, err := s.Solve(dense(t, tridiag), tridiagRHS)
			require.NoError(t, err)
			assert.InDeltaSlice(t, tridiagX, x, 1e-7)
		})
	}
}

// TestIterativeAdapter_KeepsBestIterate checks the best-effort contract
// through the facade: non-convergence returns the last iterate next to
// the tagged error, not instead of it.
func TestIterativeAdapter_KeepsBestIterate(t *testing.T) {
	x, err := linsolve.Jacobi{}.Solve(dense(t, [][]float64{{1, 2}, {2, 4}}), []float64{1, 2})

	require.ErrorIs(t, err, matrix.ErrDidNotConverge)
	assert.Len(t, x, 2)
}

// TestSolveBatch_IndexAligned solves twenty identity systems whose
// solutions encode their own index, on four workers, and expects every
// result at its own slot regardless of completion order.
func TestSolveBatch_IndexAligned(t *testing.T) {
	identity := [][]float64{{1, 0}, {0, 1}}
	systems := make([]linsolve.System, 20)
	for i := range systems {
		systems[i] = linsolve.System{
			A: dense(t, identity),
			B: []float64{float64(i), float64(2 * i)},
		}
	}

	results, err := linsolve.SolveBatch(context.Background(), linsolve.Elimination{}, systems,
		&linsolve.BatchOptions{Workers: 4})
	require.NoError(t, err)
	require.Len(t, results, 20)

	for i, x := range results {
		assert.Equal(t, []float64{float64(i), float64(2 * i)}, x, "system %d", i)
	}
}

// TestSolveBatch_SingleWorker degenerates the pool to sequential
// execution, which must change nothing about the results.
func TestSolveBatch_SingleWorker(t *testing.T) {
	systems := []linsolve.System{
		{A: dense(t, tridiag), B: tridiagRHS},
		{A: dense(t, [][]float64{{2, 1}, {1, 2}}), B: []float64{1, 2}},
	}

	results, err := linsolve.SolveBatch(context.Background(), linsolve.Elimination{}, systems,
		&linsolve.BatchOptions{Workers: 1})
	require.NoError(t, err)
	require.Len(t, results, 2)

	assert.InDeltaSlice(t, tridiagX, results[0], 1e-10)
	assert.InDeltaSlice(t, []float64{0, 1}, results[1], 1e-15)
}

// TestSolveBatch_FailFast plants a singular system in the middle and
// expects the whole batch to fail with the culprit's index in the error
// and no partial results.
func TestSolveBatch_FailFast(t *testing.T) {
	systems := []linsolve.System{
		{A: dense(t, tridiag), B: tridiagRHS},
		{A: dense(t, [][]float64{{1, 2}, {2, 4}}), B: []float64{1, 2}},
		{A: dense(t, tridiag), B: tridiagRHS},
	}

	results, err := linsolve.SolveBatch(context.Background(), linsolve.Elimination{}, systems, nil)
	require.Error(t, err)

	assert.ErrorIs(t, err, matrix.ErrSingular)
	assert.Contains(t, err.Error(), "system 1")
	assert.Nil(t, results)
}

// TestSolveBatch_ContextCanceled hands in an already-canceled context;
// nothing should be solved.
func TestSolveBatch_ContextCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	systems := []linsolve.System{{A: dense(t, tridiag), B: tridiagRHS}}
	results, err := linsolve.SolveBatch(ctx, linsolve.Elimination{}, systems, nil)

	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, results)
}

// TestSolveBatch_NilSolver rejects the obvious misuse.
func TestSolveBatch_NilSolver(t *testing.T) {
	_, err := linsolve.SolveBatch(context.Background(), nil, nil, nil)
	assert.ErrorIs(t, err, linsolve.ErrNoSolver)
}

// TestSolveBatch_EmptyBatch is a no-op that must succeed.
func TestSolveBatch_EmptyBatch(t *testing.T) {
	results, err := linsolve.SolveBatch(context.Background(), linsolve.LU{}, nil, nil)

	assert.NoError(t, err)
	assert.Empty(t, results)
}

// TestSolveBatch_Logging wires a real slog handler at Debug level and
// checks both the per-system records and the summary line.
func TestSolveBatch_Logging(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	systems := []linsolve.System{
		{A: dense(t, tridiag), B: tridiagRHS},
		{A: dense(t, tridiag), B: tridiagRHS},
	}
	_, err := linsolve.SolveBatch(context.Background(), linsolve.Refinement{}, systems,
		&linsolve.BatchOptions{Workers: 2, Logger: logger})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "system solved")
	assert.Contains(t, out, "batch solved")
	assert.Contains(t, out, "systems=2")
}

// TestSolver_InterfaceSatisfaction pins every adapter to the interface
// at compile time; the runtime body only documents the intent.
func TestSolver_InterfaceSatisfaction(t *testing.T) {
	for _, s := range []linsolve.Solver{
		linsolve.Elimination{},
		linsolve.LU{},
		linsolve.Jacobi{},
		linsolve.GaussSeidel{},
		linsolve.SOR{},
		linsolve.ConjugateGradient{},
		linsolve.Refinement{},
	} {
		assert.NotNil(t, s, fmt.Sprintf("%T", s))
	}
}
