// SPDX-License-Identifier: MIT

package transform

import (
	"math"

	"github.com/katalvlaran/lvmatrix/matrix"
)

// Rotations are right-handed, angles in radians.

// RotateX rotates about the x axis (y toward z).
func RotateX(theta float64) *matrix.Dense[float64] {
	c, s := math.Cos(theta), math.Sin(theta)
	return fromGrid([Size][Size]float64{
		{1, 0, 0, 0},
		{0, c, -s, 0},
		{0, s, c, 0},
		{0, 0, 0, 1},
	})
}

// RotateY rotates about the y axis (z toward x).
func RotateY(theta float64) *matrix.Dense[float64] {
	c, s := math.Cos(theta), math.Sin(theta)
	return fromGrid([Size][Size]float64{
		{c, 0, s, 0},
		{0, 1, 0, 0},
		{-s, 0, c, 0},
		{0, 0, 0, 1},
	})
}

// RotateZ rotates about the z axis (x toward y).
func RotateZ(theta float64) *matrix.Dense[float64] {
	c, s := math.Cos(theta), math.Sin(theta)
	return fromGrid([Size][Size]float64{
		{c, -s, 0, 0},
		{s, c, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	})
}
