package stationary

import (
	"math"

	"github.com/katalvlaran/lvlnum/matrix"
)

// SOR solves A·x = b by successive over-relaxation: a Gauss-Seidel sweep
// whose update is blended with the previous value by the relaxation
// factor ω from Options.Omega.
//
//	x[i] ← (1−ω)·x[i] + ω·x̂[i]
//
// where x̂[i] is the Gauss-Seidel candidate. ω ∈ (1, 2) accelerates
// convergence on many systems, ω ∈ (0, 1) damps a divergent iteration,
// and ω = 1 reproduces Gauss-Seidel exactly. Values outside (0, 2) make
// the iteration matrix's spectral radius exceed one, so they are
// rejected with ErrInvalidOmega.
//
// A nil opts selects DefaultOptions (ω = 1). Inputs are never mutated.
//
// Returns:
//   - Result with the final iterate, sweep count and last measure
//   - matrix.ErrNonSquare / ErrDimensionMismatch on shape problems
//   - ErrZeroPivot when any diagonal entry is exactly zero
//   - ErrInvalidOmega when ω lies outside (0, 2)
//   - matrix.ErrDidNotConverge when the budget runs out; Result.X still
//     holds the last iterate
//
// Complexity: O(n²) per sweep, O(n) extra memory.
func SOR(a matrix.Matrix, b []float64, opts *Options) (Result, error) {
	s, err := newSolver("SOR", a, b, opts)
	if err != nil {
		return Result{}, err
	}

	n := s.a.Rows()
	omega := s.o.Omega

	var (
		iters, i, j int
		sum, v, d   float64
		delta, m    float64
		row         []float64
	)
	for iters < s.o.MaxIterations {
		iters++
		delta = 0
		for i = 0; i < n; i++ {
			row, _ = s.a.RowView(i)
			sum = s.b[i]
			for j = 0; j < n; j++ {
				if j != i {
					sum -= row[j] * s.x[j]
				}
			}
			v = (1-omega)*s.x[i] + omega*(sum/row[i])
			if d = math.Abs(v - s.x[i]); d > delta {
				delta = d
			}
			s.x[i] = v
		}

		if m = s.measure(delta); m < s.o.Tolerance {
			break
		}
	}

	return s.finish("SOR", iters, m)
}
