// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for shape checks.
//  - Keep kernels minimal by delegating nil/empty/shape/ragged checks here.
//  - Return sentinel errors wrapped with a validator tag so call sites can wrap uniformly.
//
// Determinism & Performance:
//  - All checks are pure and allocate nothing on success.
//  - ValidateRectangular is O(rows); everything else is O(1).
//  - No validator panics, whatever the input.
//
// Note:
//  - Composite validators follow a fixed sequence (NotNil -> NotEmpty -> Shape -> Rows).

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
// Returns ErrNilMatrix if m == nil.
func ValidateNotNil[T Number](m *Dense[T]) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateNotEmpty rejects a grid with no rows or with a zero-length first row.
// Only row 0 is inspected; raggedness is ValidateRectangular's job.
func ValidateNotEmpty[T Number](rows [][]T) error {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return validatorErrorf("ValidateNotEmpty", ErrEmptyMatrix)
	}

	return nil
}

// ValidateRectangular ensures every row has the length of row 0.
// A grid with no rows yields ErrEmptyMatrix.
// Complexity: O(len(rows)).
func ValidateRectangular[T Number](rows [][]T) error {
	if len(rows) == 0 {
		return validatorErrorf("ValidateRectangular", ErrEmptyMatrix)
	}
	want := len(rows[0])
	for _, row := range rows {
		if len(row) != want {
			return validatorErrorf("ValidateRectangular", ErrInconsistentRows)
		}
	}

	return nil
}

// ValidateDenseNotEmpty rejects a matrix with zero rows or zero columns.
// NewDense never builds one, but the zero value Dense[T]{} is 0×0.
// Assumes m is not nil.
func ValidateDenseNotEmpty[T Number](m *Dense[T]) error {
	if m.r == 0 || m.c == 0 {
		return validatorErrorf("ValidateDenseNotEmpty", ErrEmptyMatrix)
	}

	return nil
}

// ValidateSameShape ensures a and b have equal dimensions.
// Assumes a and b are not nil.
func ValidateSameShape[T Number](a, b *Dense[T]) error {
	if a.r != b.r {
		return validatorErrorf("ValidateSameShape: Rows", ErrDimensionMismatch)
	}
	if a.c != b.c {
		return validatorErrorf("ValidateSameShape: Columns", ErrDimensionMismatch)
	}

	return nil
}

// ValidateVecLen ensures the vector length matches the required size n.
func ValidateVecLen[T Number](x []T, n int) error {
	if len(x) == 0 {
		return validatorErrorf("ValidateVecLen", ErrEmptyMatrix)
	}
	if len(x) != n {
		return validatorErrorf("ValidateVecLen", ErrDimensionMismatch)
	}

	return nil
}

// ValidateMulCompatible ensures both operands are non-nil and non-empty and
// that a.Cols == b.Rows, in that order. The mismatch error is a *DimensionError.
func ValidateMulCompatible[T Number](a, b *Dense[T]) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if err := ValidateDenseNotEmpty(a); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if err := ValidateDenseNotEmpty(b); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if a.c != b.r {
		return validatorErrorf("ValidateMulCompatible", mulMismatchError(a.c, b.r))
	}

	return nil
}

// ValidateMulRows runs the full multiply precondition sequence on raw grids:
// empty operands, then inner dimensions, then ragged rows in a, then in b.
// Nothing is allocated before every check has passed.
//
// Errors: ErrEmptyMatrix, ErrDimensionMismatch, ErrInconsistentRows.
// Complexity: O(len(a) + len(b)).
func ValidateMulRows[T Number](a, b [][]T) error {
	if len(a) == 0 || len(b) == 0 || len(a[0]) == 0 || len(b[0]) == 0 {
		return validatorErrorf("ValidateMulRows", ErrEmptyMatrix)
	}
	if len(a[0]) != len(b) {
		return validatorErrorf("ValidateMulRows", mulMismatchError(len(a[0]), len(b)))
	}
	if ValidateRectangular(a) != nil {
		return validatorErrorf("ValidateMulRows", raggedError("first"))
	}
	if ValidateRectangular(b) != nil {
		return validatorErrorf("ValidateMulRows", raggedError("second"))
	}

	return nil
}
