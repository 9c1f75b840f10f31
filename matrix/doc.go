// Package matrix offers a generic, row-major dense matrix and the kernels
// built on it.
//
// The matrix package provides:
//
//   - Dense[T], a rectangular container over any integer or floating-point
//     element type. Shape is fixed at construction, so ragged grids are
//     rejected once (NewFromRows) instead of on every call.
//   - Mul and MulRows: the standard triple-loop product for the container and
//     for raw sequence-of-rows grids. Both validate completely before
//     allocating and never return partial results.
//   - MatVec, Transpose, Chain, Equal and AllClose.
//   - Fprint/Sprint: a labelled, fixed-width pretty-printer.
//
// Every failure is an invalid-argument error: the precise sentinels
// (ErrEmptyMatrix, ErrDimensionMismatch, ErrInconsistentRows, ...) all match
// ErrInvalidArgument via errors.Is.
//
// Functions are pure: inputs are never mutated and results are fresh
// allocations, so concurrent calls on independent operands need no locking.
package matrix
