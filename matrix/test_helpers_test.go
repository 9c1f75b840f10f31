// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures for the Dense kernels.
//   • Keep integer fixtures small enough that products never overflow.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmatrix/matrix"
)

// Tolerances for float64 comparisons.
const (
	RtolTiny = 1e-12
	AtolTiny = 1e-12
)

// MustRows builds a Dense from a literal grid or fails the test.
func MustRows[T matrix.Number](t *testing.T, rows [][]T) *matrix.Dense[T] {
	t.Helper()
	m, err := matrix.NewFromRows(rows)
	require.NoError(t, err, "NewFromRows(%v)", rows)

	return m
}

// MustIdentity returns I_n or fails the test.
func MustIdentity[T matrix.Number](t *testing.T, n int) *matrix.Dense[T] {
	t.Helper()
	m, err := matrix.Identity[T](n)
	require.NoError(t, err, "Identity(%d)", n)

	return m
}

// CompareExact asserts m has exactly the shape and elements of want.
func CompareExact[T matrix.Number](t *testing.T, want [][]T, m *matrix.Dense[T]) {
	t.Helper()
	require.NotNil(t, m)
	require.Equal(t, want, m.ToRows())
}

// CompareClose asserts AllClose(a, b) under (rtol, atol).
func CompareClose[T matrix.Number](t *testing.T, a, b *matrix.Dense[T], rtol, atol float64) {
	t.Helper()
	ok, err := matrix.AllClose(a, b, rtol, atol)
	require.NoError(t, err)
	require.Truef(t, ok, "not close:\n%v\nvs\n%v", a, b)
}

// RandIntDense fills an r×c matrix with integers in [-9, 9] from a fixed seed.
func RandIntDense(t *testing.T, r, c int, seed int64) *matrix.Dense[int64] {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	m, err := matrix.NewDense[int64](r, c)
	require.NoError(t, err)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			require.NoError(t, m.Set(i, j, int64(rng.Intn(19)-9)))
		}
	}

	return m
}

// RandFloatDense fills an r×c matrix with floats in [-1, 1) from a fixed seed.
func RandFloatDense(t *testing.T, r, c int, seed int64) *matrix.Dense[float64] {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	m, err := matrix.NewDense[float64](r, c)
	require.NoError(t, err)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			require.NoError(t, m.Set(i, j, 2*rng.Float64()-1))
		}
	}

	return m
}

// failWriter rejects every write.
type failWriter struct{ err error }

func (w failWriter) Write([]byte) (int, error) { return 0, w.err }
