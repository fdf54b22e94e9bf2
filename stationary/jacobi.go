package stationary

import (
	"math"

	"github.com/katalvlaran/lvlnum/matrix"
)

// Jacobi solves A·x = b by simultaneous displacement: every component of
// the new iterate is computed from the previous iterate only, so the
// update order is irrelevant and the sweep parallelizes trivially.
//
//	xᵏ⁺¹[i] = (b[i] − Σ_{j≠i} A[i][j]·xᵏ[j]) / A[i][i]
//
// The two iterates live in separate buffers; fresh values never leak
// into the current sweep. That makes Jacobi the slowest of the three
// methods to converge, and the most predictable.
//
// A nil opts selects DefaultOptions. Inputs are never mutated.
//
// Returns:
//   - Result with the final iterate, sweep count and last measure
//   - matrix.ErrNonSquare / ErrDimensionMismatch on shape problems
//   - ErrZeroPivot when any diagonal entry is exactly zero
//   - ErrInvalidOmega / ErrBadOptions on nonsensical options
//   - matrix.ErrDidNotConverge when the budget runs out; Result.X still
//     holds the last iterate
//
// Complexity: O(n²) per sweep, O(n) extra memory.
func Jacobi(a matrix.Matrix, b []float64, opts *Options) (Result, error) {
	s, err := newSolver("Jacobi", a, b, opts)
	if err != nil {
		return Result{}, err
	}

	n := s.a.Rows()
	next := make([]float64, n)

	var (
		iters, i, j int
		sum, d      float64
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
			sum /= row[i]
			if d = math.Abs(sum - s.x[i]); d > delta {
				delta = d
			}
			next[i] = sum
		}

		// Publish the sweep; the old iterate becomes next sweep's scratch.
		s.x, next = next, s.x

		if m = s.measure(delta); m < s.o.Tolerance {
			break
		}
	}

	return s.finish("Jacobi", iters, m)
}
