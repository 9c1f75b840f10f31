// SPDX-License-Identifier: MIT

package scene

import (
	"github.com/katalvlaran/lvmatrix/matrix"
	"github.com/katalvlaran/lvmatrix/transform"
)

// CubeEdges indexes the 12 edges of the vertex order returned by Cube.
var CubeEdges = [12][2]int{
	{0, 1}, {1, 3}, {3, 2}, {2, 0}, // z = -half face
	{4, 5}, {5, 7}, {7, 6}, {6, 4}, // z = +half face
	{0, 4}, {1, 5}, {2, 6}, {3, 7}, // connecting edges
}

// Cube returns the 8 corners of an axis-aligned cube as homogeneous points.
// Vertex i has bit 0 set for +x, bit 1 for +y and bit 2 for +z.
func Cube(center [3]float64, half float64) []*matrix.Dense[float64] {
	out := make([]*matrix.Dense[float64], 0, 8)
	for i := 0; i < 8; i++ {
		x, y, z := center[0]-half, center[1]-half, center[2]-half
		if i&1 != 0 {
			x = center[0] + half
		}
		if i&2 != 0 {
			y = center[1] + half
		}
		if i&4 != 0 {
			z = center[2] + half
		}
		out = append(out, transform.Point(x, y, z))
	}

	return out
}
