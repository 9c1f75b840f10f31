// SPDX-License-Identifier: MIT
// Package matrix provides the multiplication kernels and their small family:
// matrix product (container and raw-grid forms), matrix-vector product,
// transpose and chained products. All functions perform strict fail-fast
// validation before allocating and return clear errors on shape violations.
//
// Notes:
//   - Kernels never mutate operands; every result is a fresh allocation.
//   - Accumulators start from T's zero value, so integer and floating-point
//     element types share one code path.

package matrix

import "fmt"

// Operation name constants for unified error wrapping.
const (
	opMul       = "Mul"
	opMulRows   = "MulRows"
	opMatVec    = "MatVec"
	opTranspose = "Transpose"
	opChain     = "Chain"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Mul performs standard matrix multiplication C = A × B.
//
// Implementation:
//   - Stage 1: ValidateMulCompatible (non-nil, A.Cols == B.Rows).
//   - Stage 2: i→j→k triple loop over the flat buffers; each cell starts
//     from T's zero value.
//
// Inputs:
//   - a: left matrix with shape (r × n).
//   - b: right matrix with shape (n × c).
//
// Returns:
//   - *Dense[T]: new matrix with shape (r × c).
//
// Errors:
//   - ErrNilMatrix, ErrEmptyMatrix (zero-value Dense), ErrDimensionMismatch
//     as a *DimensionError naming both counts.
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func Mul[T Number](a, b *Dense[T]) (*Dense[T], error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	rows, inner, cols := a.r, a.c, b.c
	res := &Dense[T]{r: rows, c: cols, data: make([]T, rows*cols)}

	var (
		i, j, k    int
		rowA, rowR int
		acc        T
	)
	for i = 0; i < rows; i++ {
		rowA = i * inner
		rowR = i * cols
		for j = 0; j < cols; j++ {
			var zero T
			acc = zero
			for k = 0; k < inner; k++ {
				acc += a.data[rowA+k] * b.data[k*cols+j]
			}
			res.data[rowR+j] = acc
		}
	}

	return res, nil
}

// MulRows multiplies two raw grids given as sequences of rows.
//
// Validation runs completely before any output is allocated, in this order:
// empty operands, inner dimensions, ragged rows of a, ragged rows of b.
// On failure no partial result is returned.
//
// Errors:
//   - ErrEmptyMatrix, ErrDimensionMismatch, ErrInconsistentRows.
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func MulRows[T Number](a, b [][]T) ([][]T, error) {
	if err := ValidateMulRows(a, b); err != nil {
		return nil, matrixErrorf(opMulRows, err)
	}

	rows, inner, cols := len(a), len(b), len(b[0])
	out := make([][]T, rows)
	for i := 0; i < rows; i++ {
		out[i] = make([]T, cols)
		for j := 0; j < cols; j++ {
			var acc T
			for k := 0; k < inner; k++ {
				acc += a[i][k] * b[k][j]
			}
			out[i][j] = acc
		}
	}

	return out, nil
}

// MatVec computes y = m * x for a column vector x.
//
// Contract: m non-nil and non-empty; len(x) == m.Cols().
// Complexity: Time O(r*c), Space O(r).
func MatVec[T Number](m *Dense[T], x []T) ([]T, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if err := ValidateDenseNotEmpty(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(x, m.c); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}

	y := make([]T, m.r)
	var base int
	for i := 0; i < m.r; i++ {
		base = i * m.c
		var acc T
		for j := 0; j < m.c; j++ {
			acc += m.data[base+j] * x[j]
		}
		y[i] = acc
	}

	return y, nil
}

// Transpose returns a new matrix with rows and columns swapped (mᵀ).
// The original matrix is never mutated.
func Transpose[T Number](m *Dense[T]) (*Dense[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	if err := ValidateDenseNotEmpty(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	res := &Dense[T]{r: m.c, c: m.r, data: make([]T, len(m.data))}
	for i := 0; i < m.r; i++ {
		for j := 0; j < m.c; j++ {
			res.data[j*m.r+i] = m.data[i*m.c+j]
		}
	}

	return res, nil
}

// Chain multiplies its operands left to right: ms[0] × ms[1] × … × ms[n-1].
// A single operand is returned as a clone. The first failing product aborts
// the chain; its error names the failing step.
//
// Errors:
//   - ErrEmptyMatrix when called with no operands or an empty first operand;
//     anything Mul returns.
func Chain[T Number](ms ...*Dense[T]) (*Dense[T], error) {
	if len(ms) == 0 {
		return nil, matrixErrorf(opChain, ErrEmptyMatrix)
	}
	if err := ValidateNotNil(ms[0]); err != nil {
		return nil, matrixErrorf(opChain, err)
	}
	if err := ValidateDenseNotEmpty(ms[0]); err != nil {
		return nil, matrixErrorf(opChain, err)
	}

	acc := ms[0].Clone()
	var err error
	for i := 1; i < len(ms); i++ {
		if acc, err = Mul(acc, ms[i]); err != nil {
			return nil, matrixErrorf(fmt.Sprintf("%s[%d]", opChain, i), err)
		}
	}

	return acc, nil
}
