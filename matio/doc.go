// Package matio reads and writes matrices in the MatrixMarket array
// format, the plain-text interchange format understood by numpy, SciPy,
// MATLAB and virtually every solver toolkit.
//
// 🚀 What does a file look like?
//
//	%%MatrixMarket matrix array real general
//	% optional comment lines
//	2 2
//	1
//	3
//	2
//	4
//
//	A banner, optional %-comments, a "rows cols" size line, then one
//	value per line in column-major order. The package supports the
//	array/real/general variant; coordinate (sparse) files, complex,
//	integer and pattern fields, and symmetric storage are recognized and
//	reported with matrix.ErrNotImplemented rather than misread.
//
// ✨ Key properties:
//   - values are written with the shortest representation that survives
//     a parse round trip, so Write→Read reproduces matrices exactly
//   - WriteFile/ReadFile transparently gzip paths ending in .gz
//   - vectors travel as n×1 matrices; ReadVector also accepts 1×n
//   - malformed input fails with ErrBadHeader or ErrBadPayload, naming
//     the offending line or value
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/lvlnum/matio"
//
//	err := matio.WriteFile("system.mtx.gz", a)
//	a, err := matio.ReadFile("system.mtx.gz")
//
//	var buf bytes.Buffer
//	err = matio.WriteVector(&buf, b)
//	b, err = matio.ReadVector(&buf)
//
// See example_test.go for runnable scenarios.
package matio
