// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// Every failure in this package is an invalid-argument failure: each sentinel
// below wraps ErrInvalidArgument, so callers may match either the precise
// condition or the single error kind via errors.Is.
// No exported function panics on user-triggered conditions; Must* helpers and
// option constructors panic on programmer error only.

package matrix

import (
	"errors"
	"fmt"
)

// Every message is prefixed with "matrix: ...". Operations wrap these with an
// op tag through matrixErrorf; dimension failures additionally carry the
// offending counts, still matching via errors.Is.
//
// ERROR PRIORITY (enforced in tests):
// nil -> empty -> dimension mismatch -> inconsistent rows.

var (
	// ErrInvalidArgument is the single error kind of the package.
	ErrInvalidArgument = errors.New("matrix: invalid argument")

	// ErrEmptyMatrix is returned when a matrix has zero rows or a zero-length first row.
	ErrEmptyMatrix = fmt.Errorf("%w: matrices cannot be empty", ErrInvalidArgument)

	// ErrDimensionMismatch indicates incompatible operand shapes,
	// e.g. Mul where a.Cols != b.Rows.
	ErrDimensionMismatch = fmt.Errorf("%w: dimension mismatch", ErrInvalidArgument)

	// ErrInconsistentRows indicates a ragged grid: some row length differs from row 0.
	ErrInconsistentRows = fmt.Errorf("%w: inconsistent row sizes", ErrInvalidArgument)

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	ErrOutOfRange = fmt.Errorf("%w: index out of range", ErrInvalidArgument)

	// ErrNilMatrix indicates that a nil *Dense was passed where a matrix is required.
	ErrNilMatrix = fmt.Errorf("%w: nil matrix", ErrInvalidArgument)
)

// DimensionError reports an inner-dimension mismatch in a product with both
// offending counts. It matches ErrDimensionMismatch (and so
// ErrInvalidArgument) via errors.Is; use errors.As to reach the counts or the
// bare sentence without operation tags.
type DimensionError struct {
	Cols int // columns of the first operand
	Rows int // rows of the second operand
}

func (e *DimensionError) Error() string {
	return fmt.Sprintf("columns of first matrix (%d) must equal rows of second matrix (%d)", e.Cols, e.Rows)
}

// Unwrap links the error to ErrDimensionMismatch.
func (e *DimensionError) Unwrap() error { return ErrDimensionMismatch }

// mulMismatchError reports an inner-dimension mismatch with both counts.
func mulMismatchError(colsA, rowsB int) error {
	return &DimensionError{Cols: colsA, Rows: rowsB}
}

// raggedError names which operand ("first" or "second") is ragged.
func raggedError(which string) error {
	return fmt.Errorf("%w: %s matrix has inconsistent row sizes", ErrInconsistentRows, which)
}
