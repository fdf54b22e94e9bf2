package stationary

import (
	"math"

	"github.com/katalvlaran/lvlnum/matrix"
)

// GaussSeidel solves A·x = b by successive displacement: the sweep
// updates the iterate in place, so component i already sees the fresh
// values of components 0..i-1 from the same sweep.
//
//	x[i] ← (b[i] − Σ_{j<i} A[i][j]·x[j]ⁿᵉʷ − Σ_{j>i} A[i][j]·x[j]ᵒˡᵈ) / A[i][i]
//
// Reusing fresh values typically halves the sweep count of Jacobi on the
// same system, at the price of a fixed update order.
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
func GaussSeidel(a matrix.Matrix, b []float64, opts *Options) (Result, error) {
	s, err := newSolver("GaussSeidel", a, b, opts)
	if err != nil {
		return Result{}, err
	}

	n := s.a.Rows()

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
			// In-place update: entries below i are already this sweep's.
			for j = 0; j < n; j++ {
				if j != i {
					sum -= row[j] * s.x[j]
				}
			}
			sum /= row[i]
			if d = math.Abs(sum - s.x[i]); d > delta {
				delta = d
			}
			s.x[i] = sum
		}

		if m = s.measure(delta); m < s.o.Tolerance {
			break
		}
	}

	return s.finish("GaussSeidel", iters, m)
}
