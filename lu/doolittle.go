package lu

import (
	"fmt"

	"github.com/katalvlaran/lvlnum/matrix"
)

// Doolittle factors a square matrix into A = L·U where L carries a unit
// diagonal and U holds the pivots.
//
// The classic interleaved recurrence fills row i of U, then column i of L,
// for each pivot index i:
//
//	U[i][j] = A[i][j] − Σₖ L[i][k]·U[k][j]   (j ≥ i, k < i)
//	L[j][i] = (A[j][i] − Σₖ L[j][k]·U[k][i]) / U[i][i]   (j > i, k < i)
//
// The input is read through the matrix.Matrix interface and never mutated.
//
// Returns:
//   - L, U: freshly allocated factors, L unit-lower, U upper
//   - matrix.ErrNonSquare / ErrNilMatrix when a is not a square matrix
//   - matrix.ErrSingular when a pivot U[i][i] computes to exactly zero;
//     such matrices may still factor after row exchange (see package gauss)
//
// Complexity: O(n³) time, O(n²) extra memory.
func Doolittle(a matrix.Matrix) (l, u *matrix.Dense, err error) {
	if err = matrix.ValidateSquare(a); err != nil {
		return nil, nil, fmt.Errorf("lu: Doolittle: %w", err)
	}
	n := a.Rows()

	// Shape is validated, so construction and element access cannot fail.
	l, _ = matrix.NewDense(n, n)
	u, _ = matrix.NewDense(n, n)

	var (
		i, j, k    int
		sum, pivot float64
		lv, uv, av float64
	)
	for i = 0; i < n; i++ {
		_ = l.Set(i, i, 1)

		// Row i of U.
		for j = i; j < n; j++ {
			sum = 0
			for k = 0; k < i; k++ {
				lv, _ = l.At(i, k)
				uv, _ = u.At(k, j)
				sum += lv * uv
			}
			av, _ = a.At(i, j)
			_ = u.Set(i, j, av-sum)
		}

		pivot, _ = u.At(i, i)
		if pivot == 0 {
			return nil, nil, fmt.Errorf("lu: Doolittle: zero pivot at index %d: %w", i, matrix.ErrSingular)
		}

		// Column i of L, below the diagonal.
		for j = i + 1; j < n; j++ {
			sum = 0
			for k = 0; k < i; k++ {
				lv, _ = l.At(j, k)
				uv, _ = u.At(k, i)
				sum += lv * uv
			}
			av, _ = a.At(j, i)
			_ = l.Set(j, i, (av-sum)/pivot)
		}
	}

	return l, u, nil
}
