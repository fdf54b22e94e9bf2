package lu

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvlnum/matrix"
)

// Cholesky factors a symmetric positive-definite matrix into A = L·Lᵗ.
//
// Only the lower triangle of a is ever read; the strict upper triangle is
// ignored, so symmetry is the caller's guarantee and is deliberately not
// verified here. Callers that want the check can run
// matrix.ValidateSymmetric first.
//
// Row by row, for j ≤ i:
//
//	s = A[i][j] − Σₖ L[i][k]·L[j][k]   (k < j)
//	L[i][i] = √s          when j == i (requires s > 0)
//	L[i][j] = s / L[j][j]  when j < i
//
// Returns:
//   - L: freshly allocated lower-triangular factor
//   - matrix.ErrNonSquare / ErrNilMatrix when a is not a square matrix
//   - matrix.ErrNotPositiveDefinite when a diagonal sum is zero, negative
//     or non-finite — the defining test of positive definiteness
//
// Complexity: O(n³) time (half the multiplies of Doolittle), O(n²) memory.
func Cholesky(a matrix.Matrix) (l *matrix.Dense, err error) {
	if err = matrix.ValidateSquare(a); err != nil {
		return nil, fmt.Errorf("lu: Cholesky: %w", err)
	}
	n := a.Rows()

	// Shape is validated, so construction and element access cannot fail.
	l, _ = matrix.NewDense(n, n)

	var (
		i, j, k int
		sum     float64
		li, lj  float64
		av      float64
	)
	for i = 0; i < n; i++ {
		for j = 0; j <= i; j++ {
			av, _ = a.At(i, j)
			sum = av
			for k = 0; k < j; k++ {
				li, _ = l.At(i, k)
				lj, _ = l.At(j, k)
				sum -= li * lj
			}

			if j == i {
				if sum <= 0 || math.IsNaN(sum) || math.IsInf(sum, 0) {
					return nil, fmt.Errorf("lu: Cholesky: diagonal %d: %w", i, matrix.ErrNotPositiveDefinite)
				}
				_ = l.Set(i, i, math.Sqrt(sum))
			} else {
				lj, _ = l.At(j, j)
				_ = l.Set(i, j, sum/lj)
			}
		}
	}

	return l, nil
}
