package gauss

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvlnum/matrix"
)

// Solve solves A·x = b by Gaussian elimination under the configured pivot
// policy. A nil opts selects DefaultOptions.
//
// The caller's matrix and vector are copied into an n×(n+1) augmented
// working matrix first; nothing the caller owns is mutated.
//
// Returns:
//   - x: the solution vector, length n
//   - matrix.ErrNonSquare / ErrDimensionMismatch on shape problems
//   - ErrUnknownPivot when opts names a policy that does not exist
//   - matrix.ErrSingular when elimination meets an exact-zero pivot after
//     row selection
//
// Complexity: O(n³) time, O(n²) working memory.
func Solve(a matrix.Matrix, b []float64, opts *Options) ([]float64, error) {
	if err := matrix.ValidateSystem(a, b); err != nil {
		return nil, fmt.Errorf("gauss: Solve: %w", err)
	}
	o := resolve(opts)
	if err := o.Validate(); err != nil {
		return nil, fmt.Errorf("gauss: Solve: %w", err)
	}

	n := a.Rows()
	aug, err := augment(a, b)
	if err != nil {
		return nil, fmt.Errorf("gauss: Solve: %w", err)
	}
	if _, err = eliminate(aug, n, o.Pivot); err != nil {
		return nil, fmt.Errorf("gauss: Solve: %w", err)
	}

	return backSubstitute(aug, n), nil
}

// augment copies a and b side by side into a fresh n×(n+1) working matrix.
func augment(a matrix.Matrix, b []float64) (*matrix.Dense, error) {
	n := a.Rows()
	aug, err := matrix.NewDense(n, n+1)
	if err != nil {
		return nil, err
	}

	var (
		i, j int
		v    float64
	)
	for i = 0; i < n; i++ {
		row, _ := aug.RowView(i)
		for j = 0; j < n; j++ {
			if v, err = a.At(i, j); err != nil {
				return nil, err
			}
			row[j] = v
		}
		row[n] = b[i]
	}

	return aug, nil
}

// rowScales computes, per row, the largest absolute value among the first
// n columns. A row of all zeros is already proof of singularity.
func rowScales(m *matrix.Dense, n int) ([]float64, error) {
	scale := make([]float64, n)
	for i := 0; i < n; i++ {
		row, _ := m.RowView(i)
		s := 0.0
		for j := 0; j < n; j++ {
			if v := math.Abs(row[j]); v > s {
				s = v
			}
		}
		if s == 0 {
			return nil, fmt.Errorf("gauss: row %d is entirely zero: %w", i, matrix.ErrSingular)
		}
		scale[i] = s
	}

	return scale, nil
}

// selectPivot picks the row that supplies the pivot for column j among
// rows j..n-1. Comparison is strictly greater-than, so ties resolve to
// the lowest row index.
func selectPivot(m *matrix.Dense, n, j int, policy PivotPolicy, scale []float64) int {
	if policy == PivotNone {
		return j
	}

	best := j
	bestVal := math.Inf(-1)
	for r := j; r < n; r++ {
		v, _ := m.At(r, j)
		v = math.Abs(v)
		if policy == PivotScaled {
			v /= scale[r]
		}
		if v > bestVal {
			best, bestVal = r, v
		}
	}

	return best
}

// eliminate reduces the first n columns of the working matrix to upper
// triangular form, applying every row operation across the full width so
// augmented columns stay consistent. It reports the number of row
// exchanges performed, which Det needs for the sign of the determinant.
func eliminate(m *matrix.Dense, n int, policy PivotPolicy) (int, error) {
	var (
		scale []float64
		err   error
	)
	if policy == PivotScaled {
		if scale, err = rowScales(m, n); err != nil {
			return 0, err
		}
	}

	swaps := 0
	width := m.Cols()
	var (
		i, j, k int
		factor  float64
	)
	for j = 0; j < n; j++ {
		if p := selectPivot(m, n, j, policy, scale); p != j {
			_ = m.SwapRows(p, j)
			if scale != nil {
				scale[p], scale[j] = scale[j], scale[p]
			}
			swaps++
		}

		pivRow, _ := m.RowView(j)
		pivot := pivRow[j]
		if pivot == 0 {
			return swaps, fmt.Errorf("gauss: zero pivot in column %d: %w", j, matrix.ErrSingular)
		}

		for i = j + 1; i < n; i++ {
			row, _ := m.RowView(i)
			if row[j] == 0 {
				continue // nothing to eliminate
			}
			factor = row[j] / pivot
			row[j] = 0
			for k = j + 1; k < width; k++ {
				row[k] -= factor * pivRow[k]
			}
		}
	}

	return swaps, nil
}

// backSubstitute unwinds an upper-triangular augmented system whose
// right-hand side sits in column n. eliminate has already guaranteed a
// nonzero diagonal.
func backSubstitute(m *matrix.Dense, n int) []float64 {
	x := make([]float64, n)

	var (
		i, k int
		sum  float64
	)
	for i = n - 1; i >= 0; i-- {
		row, _ := m.RowView(i)
		sum = row[n]
		for k = i + 1; k < n; k++ {
			sum -= row[k] * x[k]
		}
		x[i] = sum / row[i]
	}

	return x
}
