// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a rectangular container whose shape is recorded once at construction,
//     so a ragged grid can never reach an operation.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep value semantics: constructors copy their input and no kernel mutates operands.
//
// Complexity quicksheet:
//   - NewDense/NewFromRows: O(r*c); At/Set: O(1); Clone/ToRows: O(r*c).

package matrix

import (
	"fmt"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt       = "At"
	ctxSet      = "Set"
	ctxNewDense = "NewDense"
	ctxFromRows = "NewFromRows"
	ctxIdentity = "Identity"
)

// ---------- Formatting literals ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix over any Number type.
//   - r,c hold dimensions (both >= 1 for every reachable value).
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
type Dense[T Number] struct {
	r, c int // row and column counts
	data []T // contiguous row-major storage (len == r*c)
}

var _ fmt.Stringer = (*Dense[float64])(nil)

// NewDense creates an r×c matrix filled with T's zero value.
//
// Implementation:
//   - Stage 1: validate rows>0 && cols>0; else ErrEmptyMatrix.
//   - Stage 2: allocate a zero-filled buffer.
//
// Errors:
//   - ErrEmptyMatrix (shape contract violation).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense[T Number](rows, cols int) (*Dense[T], error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%s(%d,%d): %w", ctxNewDense, rows, cols, ErrEmptyMatrix)
	}

	return &Dense[T]{r: rows, c: cols, data: make([]T, rows*cols)}, nil
}

// NewFromRows copies a literal grid into a Dense.
// The grid must be non-empty and rectangular; the input is not retained.
//
// Implementation:
//   - Stage 1: reject an empty grid or an empty first row (ErrEmptyMatrix).
//   - Stage 2: reject any row whose length differs from row 0 (ErrInconsistentRows).
//   - Stage 3: copy rows into the flat buffer in order.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewFromRows[T Number](rows [][]T) (*Dense[T], error) {
	if err := ValidateNotEmpty(rows); err != nil {
		return nil, matrixErrorf(ctxFromRows, err)
	}
	if err := ValidateRectangular(rows); err != nil {
		return nil, matrixErrorf(ctxFromRows, err)
	}

	r, c := len(rows), len(rows[0])
	data := make([]T, 0, r*c)
	for _, row := range rows {
		data = append(data, row...)
	}

	return &Dense[T]{r: r, c: c, data: data}, nil
}

// MustFromRows is like NewFromRows but panics if the grid is empty or ragged.
// It is meant for literal grids in programs and tests.
func MustFromRows[T Number](rows [][]T) *Dense[T] {
	m, err := NewFromRows(rows)
	if err != nil {
		panic(err)
	}

	return m
}

// Identity returns the n×n identity matrix.
func Identity[T Number](n int) (*Dense[T], error) {
	m, err := NewDense[T](n, n)
	if err != nil {
		return nil, matrixErrorf(ctxIdentity, err)
	}
	for i := 0; i < n; i++ {
		m.data[i*n+i] = 1
	}

	return m, nil
}

// Rows returns the row count.
func (m *Dense[T]) Rows() int { return m.r }

// Cols returns the column count.
func (m *Dense[T]) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call.
func (m *Dense[T]) Shape() (rows, cols int) { return m.r, m.c }

// indexOf bounds-checks (row,col) and returns the row-major offset.
// Returns the bare sentinel; At/Set wrap it with coordinates.
func (m *Dense[T]) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	return row*m.c + col, nil
}

// At returns the value at (row, col) or ErrOutOfRange.
// Complexity: O(1).
func (m *Dense[T]) At(row, col int) (T, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		var zero T
		return zero, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Set stores v at (row, col) or returns ErrOutOfRange.
// Complexity: O(1).
func (m *Dense[T]) Set(row, col int, v T) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	m.data[off] = v

	return nil
}

// Clone returns a deep copy; mutations of either side are not shared.
// Complexity: O(r*c).
func (m *Dense[T]) Clone() *Dense[T] {
	cp := make([]T, len(m.data))
	copy(cp, m.data)

	return &Dense[T]{r: m.r, c: m.c, data: cp}
}

// ToRows returns the matrix as a freshly allocated sequence of rows.
// Complexity: O(r*c).
func (m *Dense[T]) ToRows() [][]T {
	out := make([][]T, m.r)
	for i := 0; i < m.r; i++ {
		row := make([]T, m.c)
		copy(row, m.data[i*m.c:(i+1)*m.c])
		out[i] = row
	}

	return out
}

// String renders rows as "[a, b]\n" lines for diagnostics.
// Use Fprint for labelled, column-aligned output.
func (m *Dense[T]) String() string {
	var sb strings.Builder
	for i := 0; i < m.r; i++ {
		sb.WriteString(_fmtRowOpen)
		for j := 0; j < m.c; j++ {
			if j > 0 {
				sb.WriteString(_fmtSep)
			}
			fmt.Fprintf(&sb, "%v", m.data[i*m.c+j])
		}
		sb.WriteString(_fmtRowClose)
	}

	return sb.String()
}
