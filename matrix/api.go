// SPDX-License-Identifier: MIT
// Package matrix — public API facades and comparisons.
//
// Purpose:
//   - Provide thin entry points for common tasks; each facade delegates to a
//     canonical kernel.
//   - Provide exact (Equal) and tolerance-based (AllClose) comparison for tests
//     and callers that need to check results of floating-point products.

package matrix

import (
	"fmt"
	"math"
)

const opAllClose = "AllClose"

// NewZeros returns a new zero-initialized rows×cols matrix.
// Thin alias of NewDense with an intention-revealing name.
func NewZeros[T Number](rows, cols int) (*Dense[T], error) { return NewDense[T](rows, cols) }

// Product is an alias for Mul: a × b.
func Product[T Number](a, b *Dense[T]) (*Dense[T], error) { return Mul(a, b) }

// Equal reports whether a and b have the same shape and identical elements.
// Two nil matrices are equal; nil never equals non-nil.
func Equal[T Number](a, b *Dense[T]) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.r != b.r || a.c != b.c {
		return false
	}
	for idx := range a.data {
		if a.data[idx] != b.data[idx] {
			return false
		}
	}

	return true
}

// AllClose reports whether |a-b| ≤ atol + rtol*|b| holds elementwise.
// Elements are compared in float64; negative tolerances are normalized to |tol|.
//
// Errors:
//   - ErrInvalidArgument for NaN/Inf tolerances.
//   - ErrNilMatrix, ErrEmptyMatrix, ErrDimensionMismatch from the validators.
//
// Complexity: O(r*c), early exit on the first violation.
func AllClose[T Number](a, b *Dense[T], rtol, atol float64) (bool, error) {
	if math.IsNaN(rtol) || math.IsNaN(atol) || math.IsInf(rtol, 0) || math.IsInf(atol, 0) {
		return false, matrixErrorf(opAllClose, fmt.Errorf("%w: tolerance must be finite", ErrInvalidArgument))
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)

	if err := ValidateNotNil(a); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	if err := ValidateDenseNotEmpty(a); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}

	var av, bv float64
	for idx := range a.data {
		av, bv = float64(a.data[idx]), float64(b.data[idx])
		if math.Abs(av-bv) > atol+rtol*math.Abs(bv) {
			return false, nil
		}
	}

	return true, nil
}
