package lu

import (
	"fmt"

	"github.com/katalvlaran/lvlnum/matrix"
)

// Crout factors a square matrix into A = L·U where L holds the pivots and
// U carries a unit diagonal — the mirror image of Doolittle.
//
// The recurrence fills column i of L, then row i of U, for each pivot
// index i:
//
//	L[j][i] = A[j][i] − Σₖ L[j][k]·U[k][i]   (j ≥ i, k < i)
//	U[i][j] = (A[i][j] − Σₖ L[i][k]·U[k][j]) / L[i][i]   (j > i, k < i)
//
// Crout is computed directly from this recurrence rather than by
// transposing the input and reusing Doolittle; the direct form touches
// each source element exactly once and keeps error positions meaningful.
//
// Returns:
//   - L, U: freshly allocated factors, L lower, U unit-upper
//   - matrix.ErrNonSquare / ErrNilMatrix when a is not a square matrix
//   - matrix.ErrSingular when a pivot L[i][i] computes to exactly zero
//
// Complexity: O(n³) time, O(n²) extra memory.
func Crout(a matrix.Matrix) (l, u *matrix.Dense, err error) {
	if err = matrix.ValidateSquare(a); err != nil {
		return nil, nil, fmt.Errorf("lu: Crout: %w", err)
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
		// Column i of L, diagonal included.
		for j = i; j < n; j++ {
			sum = 0
			for k = 0; k < i; k++ {
				lv, _ = l.At(j, k)
				uv, _ = u.At(k, i)
				sum += lv * uv
			}
			av, _ = a.At(j, i)
			_ = l.Set(j, i, av-sum)
		}

		pivot, _ = l.At(i, i)
		if pivot == 0 {
			return nil, nil, fmt.Errorf("lu: Crout: zero pivot at index %d: %w", i, matrix.ErrSingular)
		}

		// Row i of U, unit diagonal then the tail.
		_ = u.Set(i, i, 1)
		for j = i + 1; j < n; j++ {
			sum = 0
			for k = 0; k < i; k++ {
				lv, _ = l.At(i, k)
				uv, _ = u.At(k, j)
				sum += lv * uv
			}
			av, _ = a.At(i, j)
			_ = u.Set(i, j, (av-sum)/pivot)
		}
	}

	return l, u, nil
}
