package linsolve

import (
	"github.com/katalvlaran/lvlnum/gauss"
	"github.com/katalvlaran/lvlnum/krylov"
	"github.com/katalvlaran/lvlnum/lu"
	"github.com/katalvlaran/lvlnum/matrix"
	"github.com/katalvlaran/lvlnum/stationary"
)

// Solver is the one-shot contract the rest of the module's entry points
// are adapted to: solve A·x = b, return the solution vector.
//
// Iterative adapters keep the module's best-effort convention: when the
// underlying method exhausts its budget, Solve returns the last iterate
// TOGETHER with an error matching matrix.ErrDidNotConverge, so callers
// that can tolerate an approximate answer still get one.
type Solver interface {
	Solve(a matrix.Matrix, b []float64) ([]float64, error)
}

// Elimination adapts gauss.Solve. A nil Options means partial pivoting.
type Elimination struct {
	Options *gauss.Options
}

// Solve implements Solver via Gaussian elimination.
func (e Elimination) Solve(a matrix.Matrix, b []float64) ([]float64, error) {
	return gauss.Solve(a, b, e.Options)
}

// LU adapts lu.Solve: Doolittle factorization plus substitution.
type LU struct{}

// Solve implements Solver via an L·U factorization.
func (LU) Solve(a matrix.Matrix, b []float64) ([]float64, error) {
	return lu.Solve(a, b)
}

// Jacobi adapts stationary.Jacobi. A nil Options means the stationary
// defaults: tolerance 1e-9, 100 sweeps.
type Jacobi struct {
	Options *stationary.Options
}

// Solve implements Solver via Jacobi iteration.
func (j Jacobi) Solve(a matrix.Matrix, b []float64) ([]float64, error) {
	res, err := stationary.Jacobi(a, b, j.Options)

	return res.X, err
}

// GaussSeidel adapts stationary.GaussSeidel.
type GaussSeidel struct {
	Options *stationary.Options
}

// Solve implements Solver via Gauss-Seidel iteration.
func (g GaussSeidel) Solve(a matrix.Matrix, b []float64) ([]float64, error) {
	res, err := stationary.GaussSeidel(a, b, g.Options)

	return res.X, err
}

// SOR adapts stationary.SOR; set the relaxation factor through
// Options.Omega.
type SOR struct {
	Options *stationary.Options
}

// Solve implements Solver via successive over-relaxation.
func (s SOR) Solve(a matrix.Matrix, b []float64) ([]float64, error) {
	res, err := stationary.SOR(a, b, s.Options)

	return res.X, err
}

// ConjugateGradient adapts krylov.CG for symmetric positive-definite
// systems.
type ConjugateGradient struct {
	Options *krylov.Options
}

// Solve implements Solver via conjugate gradients.
func (c ConjugateGradient) Solve(a matrix.Matrix, b []float64) ([]float64, error) {
	res, err := krylov.CG(a, b, c.Options)

	return res.X, err
}

// Refinement adapts krylov.Refine: a direct solve polished by residual
// correction.
type Refinement struct {
	Options *krylov.Options
}

// Solve implements Solver via iterative refinement.
func (r Refinement) Solve(a matrix.Matrix, b []float64) ([]float64, error) {
	res, err := krylov.Refine(a, b, r.Options)

	return res.X, err
}
