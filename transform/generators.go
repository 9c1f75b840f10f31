// SPDX-License-Identifier: MIT

package transform

import "github.com/katalvlaran/lvmatrix/matrix"

// Size is the dimension of every homogeneous transform.
const Size = 4

// fromGrid wraps a literal 4×4 grid. Literal grids are rectangular by
// construction, so MustFromRows cannot panic here.
func fromGrid[T matrix.Number](g [Size][Size]T) *matrix.Dense[T] {
	rows := make([][]T, Size)
	for i := range g {
		row := g[i]
		rows[i] = row[:]
	}

	return matrix.MustFromRows(rows)
}

// Identity returns the 4×4 identity transform.
func Identity[T matrix.Number]() *matrix.Dense[T] {
	return fromGrid([Size][Size]T{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	})
}

// Translation moves points by (tx, ty, tz).
func Translation[T matrix.Number](tx, ty, tz T) *matrix.Dense[T] {
	return fromGrid([Size][Size]T{
		{1, 0, 0, tx},
		{0, 1, 0, ty},
		{0, 0, 1, tz},
		{0, 0, 0, 1},
	})
}

// Scale scales about the origin by (sx, sy, sz).
func Scale[T matrix.Number](sx, sy, sz T) *matrix.Dense[T] {
	return fromGrid([Size][Size]T{
		{sx, 0, 0, 0},
		{0, sy, 0, 0},
		{0, 0, sz, 0},
		{0, 0, 0, 1},
	})
}

// ScaleAboutPoint scales by (sx, sy, sz) keeping (px, py, pz) fixed.
// It is the single-matrix form of Translation(p)·Scale(s)·Translation(-p):
// each row carries the offset p·(1-s) in its last column.
func ScaleAboutPoint[T matrix.Number](sx, sy, sz, px, py, pz T) *matrix.Dense[T] {
	return fromGrid([Size][Size]T{
		{sx, 0, 0, px * (1 - sx)},
		{0, sy, 0, py * (1 - sy)},
		{0, 0, sz, pz * (1 - sz)},
		{0, 0, 0, 1},
	})
}

// ReflectX mirrors across the plane x = 0.
func ReflectX[T matrix.Number]() *matrix.Dense[T] { return mirror[T](true, false, false) }

// ReflectY mirrors across the plane y = 0.
func ReflectY[T matrix.Number]() *matrix.Dense[T] { return mirror[T](false, true, false) }

// ReflectZ mirrors across the plane z = 0.
func ReflectZ[T matrix.Number]() *matrix.Dense[T] { return mirror[T](false, false, true) }

// ReflectOrigin is the point reflection through the origin.
func ReflectOrigin[T matrix.Number]() *matrix.Dense[T] { return mirror[T](true, true, true) }

// mirror negates the selected spatial diagonal entries of the identity.
// Unsigned element types wrap around on negation, as T's arithmetic dictates.
func mirror[T matrix.Number](x, y, z bool) *matrix.Dense[T] {
	var one T = 1
	diag := [3]T{one, one, one}
	for i, flip := range [3]bool{x, y, z} {
		if flip {
			diag[i] = -diag[i]
		}
	}

	return fromGrid([Size][Size]T{
		{diag[0], 0, 0, 0},
		{0, diag[1], 0, 0},
		{0, 0, diag[2], 0},
		{0, 0, 0, 1},
	})
}
