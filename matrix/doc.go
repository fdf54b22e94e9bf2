// Package matrix provides the dense data model shared by every lvlnum
// solver: a minimal Matrix interface, the row-major Dense implementation,
// vector helpers, and the validators and sentinel errors that give all
// solver packages one consistent failure taxonomy.
//
// The matrix package provides:
//
//   - Matrix — the read/write accessor contract: Rows, Cols, At, Set, Clone.
//   - Dense — flat row-major float64 storage, the shipped implementation.
//   - ToDense — the canonical working-copy entry point used by solvers.
//   - MulVec — A·x with a fast path for Dense, feeding residual computation.
//   - Validate* — eager shape/symmetry/finiteness checks returning sentinels.
//
// Conventions:
//
//   - Indexers never panic: At/Set return ErrOutOfRange on bad indices.
//   - Solvers never mutate caller data: they copy via ToDense/CloneVec and
//     work on the copies.
//   - Finite-value policy is enforced at ingestion (NewDenseFrom, readers),
//     not on every Set; ValidateFinite is available for vectors.
//   - All failures are package-level sentinels matched with errors.Is;
//     callers may see them wrapped with solver-package context.
//
// Every accessor is O(1); Clone, ToDense, String and MulVec are O(r·c).
//
// See the examples in this package and the solver packages for usage
// patterns.
package matrix
