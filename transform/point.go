// SPDX-License-Identifier: MIT

package transform

import (
	"fmt"

	"github.com/katalvlaran/lvmatrix/matrix"
)

// Point returns the homogeneous column vector [x, y, z, 1] (shape 4×1).
func Point[T matrix.Number](x, y, z T) *matrix.Dense[T] {
	return matrix.MustFromRows([][]T{{x}, {y}, {z}, {1}})
}

// Coords unpacks a 4×1 homogeneous column into its components.
// Returns matrix.ErrDimensionMismatch for any other shape.
func Coords[T matrix.Number](p *matrix.Dense[T]) (x, y, z, w T, err error) {
	if err = matrix.ValidateNotNil(p); err != nil {
		return x, y, z, w, fmt.Errorf("Coords: %w", err)
	}
	if r, c := p.Shape(); r != Size || c != 1 {
		return x, y, z, w, fmt.Errorf("Coords: %dx%d is not a %dx1 point: %w", r, c, Size, matrix.ErrDimensionMismatch)
	}
	col := p.ToRows()

	return col[0][0], col[1][0], col[2][0], col[3][0], nil
}

// Apply transforms p by t (t·p). Errors are those of matrix.Mul.
func Apply[T matrix.Number](t, p *matrix.Dense[T]) (*matrix.Dense[T], error) {
	return matrix.Mul(t, p)
}

// ApplyAll transforms every point by t, stopping at the first failure.
func ApplyAll[T matrix.Number](t *matrix.Dense[T], pts []*matrix.Dense[T]) ([]*matrix.Dense[T], error) {
	out := make([]*matrix.Dense[T], len(pts))
	for i, p := range pts {
		q, err := matrix.Mul(t, p)
		if err != nil {
			return nil, fmt.Errorf("ApplyAll[%d]: %w", i, err)
		}
		out[i] = q
	}

	return out, nil
}

// Compose returns the transform that applies ts[0] first, then ts[1], and so
// on: ts[n-1]·…·ts[1]·ts[0]. With no arguments it returns the identity.
func Compose[T matrix.Number](ts ...*matrix.Dense[T]) (*matrix.Dense[T], error) {
	if len(ts) == 0 {
		return Identity[T](), nil
	}
	rev := make([]*matrix.Dense[T], len(ts))
	for i, t := range ts {
		rev[len(ts)-1-i] = t
	}
	m, err := matrix.Chain(rev...)
	if err != nil {
		return nil, fmt.Errorf("Compose: %w", err)
	}

	return m, nil
}
