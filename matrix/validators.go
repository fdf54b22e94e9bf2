// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep solver entry points minimal by delegating shape/nil/symmetry checks here.
//  - Run eagerly: every check completes before a solver allocates or mutates
//    anything, so failures leave caller state untouched.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing.
//  - Symmetry check runs O(n²) on the upper triangle only.
//
// AI-Hints:
//  - Use ValidateSystem as the first line of every solve(A, b) entry point.
//  - Use ValidateSymmetric before conjugate gradient to fail fast on
//    asymmetric input; definiteness is detected during iteration instead.
//  - Use ValidateFinite on ingested vectors; Dense ingestion (NewDenseFrom)
//    already enforces the finite policy for matrices.
//
// Note:
//  - Each composite validator follows a fixed sequence (NotNil → Shape → Length).
//  - Each validator describes what it validates and what it assumes.

package matrix

import (
	"fmt"
	"math"
)

// DefaultEpsilon is the non-negative tolerance used by structural checks
// (symmetry) when the caller does not supply one.
const DefaultEpsilon = 1e-9

// validatorErrorf wraps an underlying error with the given validator tag.
// Used internally to maintain consistent labeling of sentinel violations.
func validatorErrorf(tag string, err error) error {
	// Provides consistent error tagging for all validation errors.
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil – Ensures the matrix reference is non-nil.
//
// Inputs: Matrix interface value.
// Returns ErrNilMatrix if m == nil.
// Complexity: O(1).
// AI-Hints: Use as the first step in composite validations.
func ValidateNotNil(m Matrix) error {
	// If the matrix is nil, fail with the unified sentinel.
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix) // single source of truth for "nil argument"
	}

	// Otherwise accept.
	return nil
}

// ValidateSquare checks that m is non-nil and square with dimension >= 1.
//
// Inputs: Matrix value.
// Errors: ErrNilMatrix if nil, ErrBadShape if a dimension is < 1,
// ErrNonSquare if Rows != Cols.
// Complexity: O(1).
// AI-Hints: Use before any factorization or elimination entry.
func ValidateSquare(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	// Reject degenerate shapes before the squareness comparison.
	if m.Rows() < 1 || m.Cols() < 1 {
		return validatorErrorf("ValidateSquare", ErrBadShape)
	}
	// Check the square condition explicitly.
	if m.Rows() != m.Cols() {
		return validatorErrorf("ValidateSquare", ErrNonSquare)
	}

	return nil
}

// ValidateVecLen ensures the vector length matches the required size n.
// Time: O(1). Space: O(1).
func ValidateVecLen(x []float64, n int) error {
	// Disallow nil vectors to avoid subtle bugs in MatVec-like routines.
	if x == nil {
		return validatorErrorf("ValidateVecLen", ErrNilMatrix) // we reuse the existing sentinel for "nil argument"
	}
	// Check the exact expected length.
	if len(x) != n {
		return validatorErrorf("ValidateVecLen", ErrDimensionMismatch) // vector length must match the matrix dimension
	}

	return nil
}

// ValidateSystem is the composite entry check for a linear system (A, b):
// A non-nil and square, b index-aligned with A's rows.
//
// Errors: ErrNilMatrix, ErrBadShape, ErrNonSquare, ErrDimensionMismatch.
// Complexity: O(1).
// AI-Hints: The canonical first call of every solve(A, b) entry point.
func ValidateSystem(m Matrix, b []float64) error {
	if err := ValidateSquare(m); err != nil {
		return err
	}

	return ValidateVecLen(b, m.Rows())
}

// ValidateSymmetric checks |m[i][j] − m[j][i]| <= eps for all i < j.
// A non-positive or NaN eps falls back to DefaultEpsilon.
//
// Errors: ErrNilMatrix, ErrBadShape, ErrNonSquare, ErrAsymmetry.
// Complexity: O(n²) over the upper triangle.
func ValidateSymmetric(m Matrix, eps float64) error {
	if err := ValidateSquare(m); err != nil {
		return err
	}
	if eps <= 0 || math.IsNaN(eps) {
		eps = DefaultEpsilon
	}

	n := m.Rows()
	var (
		i, j     int
		vij, vji float64
	)
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			vij, _ = m.At(i, j) // shape validated above
			vji, _ = m.At(j, i)
			if math.Abs(vij-vji) > eps {
				return validatorErrorf(fmt.Sprintf("ValidateSymmetric: entries (%d,%d)/(%d,%d)", i, j, j, i), ErrAsymmetry)
			}
		}
	}

	return nil
}

// ValidateFinite rejects NaN and ±Inf entries in a vector.
//
// Errors: ErrNaNInf with the offending index in the wrapped context.
// Complexity: O(n).
func ValidateFinite(x []float64) error {
	for i, v := range x {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return validatorErrorf(fmt.Sprintf("ValidateFinite: entry %d", i), ErrNaNInf)
		}
	}

	return nil
}
