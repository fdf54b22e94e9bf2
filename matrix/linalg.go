// SPDX-License-Identifier: MIT

// Package matrix: working-copy and vector primitives shared by the solver
// packages. ToDense is the single documented entry through which solvers
// obtain a private mutable copy of caller data; MulVec carries residual
// computation (b − A·x) for the iterative and refinement methods.
package matrix

import "fmt"

// Operation tags used in wrapped error context.
const (
	opToDense = "ToDense"
	opMulVec  = "MulVec"
)

// ToDense returns a freshly allocated *Dense copy of m.
// Implementation:
//   - Stage 1: validate m is non-nil with positive dimensions.
//   - Stage 2: fast path — a *Dense source is copied slice-to-slice.
//   - Stage 3: fallback — read element-wise through the Matrix interface.
//
// Behavior highlights:
//   - The result never aliases the source; mutating it leaves m untouched.
//     This is what lets every solver honor the "caller data is never
//     mutated" contract with one call.
//
// Returns:
//   - *Dense: independent copy.
//   - error: ErrNilMatrix or ErrBadShape (wrapped with operation context).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
//
// AI-Hints:
//   - Call once at solver entry, after shape validation, then mutate the
//     copy freely (RowView/SwapRows) without touching caller state.
func ToDense(m Matrix) (*Dense, error) {
	if m == nil {
		return nil, fmt.Errorf("matrix: %s: %w", opToDense, ErrNilMatrix)
	}
	r, c := m.Rows(), m.Cols()
	if r <= 0 || c <= 0 {
		return nil, fmt.Errorf("matrix: %s: %dx%d: %w", opToDense, r, c, ErrBadShape)
	}

	// Fast path: copy the backing slice of a Dense source.
	if d, ok := m.(*Dense); ok {
		out := &Dense{r: d.r, c: d.c, data: make([]float64, len(d.data))}
		copy(out.data, d.data)

		return out, nil
	}

	// Fallback: element-wise read through the interface.
	out := &Dense{r: r, c: c, data: make([]float64, r*c)}
	var (
		i, j int
		v    float64
		err  error
	)
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, fmt.Errorf("matrix: %s: %w", opToDense, err)
			}
			out.data[i*c+j] = v
		}
	}

	return out, nil
}

// MulVec computes the product A·x and returns it as a new vector.
// Implementation:
//   - Stage 1: validate A is non-nil and len(x) == A.Cols().
//   - Stage 2: fast path — row-slice dot products for *Dense.
//   - Stage 3: fallback — element-wise reads through the Matrix interface.
//
// Returns:
//   - []float64 of length A.Rows().
//   - error: ErrNilMatrix or ErrDimensionMismatch (wrapped).
//
// Complexity:
//   - Time O(r*c), Space O(r).
func MulVec(m Matrix, x []float64) ([]float64, error) {
	if m == nil {
		return nil, fmt.Errorf("matrix: %s: %w", opMulVec, ErrNilMatrix)
	}
	r, c := m.Rows(), m.Cols()
	if len(x) != c {
		return nil, fmt.Errorf("matrix: %s: vector length %d, matrix has %d columns: %w", opMulVec, len(x), c, ErrDimensionMismatch)
	}

	out := make([]float64, r)

	// Fast path: iterate the flat backing slice row by row.
	if d, ok := m.(*Dense); ok {
		var i, j int
		var sum float64
		for i = 0; i < r; i++ {
			sum = 0
			row := d.data[i*c : (i+1)*c]
			for j = 0; j < c; j++ {
				sum += row[j] * x[j]
			}
			out[i] = sum
		}

		return out, nil
	}

	// Fallback: interface reads.
	var (
		i, j int
		v    float64
		sum  float64
		err  error
	)
	for i = 0; i < r; i++ {
		sum = 0
		for j = 0; j < c; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, fmt.Errorf("matrix: %s: %w", opMulVec, err)
			}
			sum += v * x[j]
		}
		out[i] = sum
	}

	return out, nil
}

// CloneVec returns an independent copy of x; nil input yields nil.
// Complexity: O(n).
func CloneVec(x []float64) []float64 {
	if x == nil {
		return nil
	}
	out := make([]float64, len(x))
	copy(out, x)

	return out
}
