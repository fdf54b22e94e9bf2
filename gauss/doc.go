// Package gauss solves dense linear systems by Gaussian elimination with
// configurable pivoting, and derives determinants and inverses from the
// same elimination core.
//
// 🚀 What is Gaussian elimination?
//
//	Row operations reduce A·x = b to an upper-triangular system, which back
//	substitution then unwinds in O(n²). The pivot policy decides which row
//	supplies each pivot:
//	  • PivotPartial — largest |candidate| in the column (the default)
//	  • PivotScaled  — largest |candidate| relative to its row's magnitude
//	  • PivotNone    — take the diagonal as-is and fail on an exact zero
//
// ✨ Key properties:
//   - the input matrix and right-hand side are never mutated; elimination
//     runs on working copies
//   - ties between pivot candidates go to the lowest row index, so results
//     are bit-for-bit reproducible
//   - an exact-zero pivot after row selection fails with matrix.ErrSingular
//   - Det always pivots, because under partial pivoting a zero pivot is
//     proof of singularity and the determinant is exactly zero
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/lvlnum/gauss"
//
//	x, err := gauss.Solve(a, b, nil)                       // partial pivoting
//	x, err := gauss.Solve(a, b, &gauss.Options{Pivot: gauss.PivotScaled})
//	d, err := gauss.Det(a)
//	inv, err := gauss.Inverse(a, nil)
//
// Performance:
//
//   - Solve / Det: O(n³) time, O(n²) working memory
//   - Inverse:     O(n³) time on an n×2n augmented working matrix
//
// See example_test.go for runnable scenarios.
package gauss
