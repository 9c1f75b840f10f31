// SPDX-License-Identifier: MIT

// Package matrix: element type constraint shared by Dense and every kernel.
package matrix

import "golang.org/x/exp/constraints"

// Number is the set of element types a Dense may hold: every built-in
// integer and floating-point type (and named types over them).
// Arithmetic follows T's native rules; no overflow checks, no promotion.
type Number interface {
	constraints.Integer | constraints.Float
}
