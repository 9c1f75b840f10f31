// SPDX-License-Identifier: MIT

// Package lvmatrix is a small toolkit for generic dense matrices and the
// homogeneous 3D transforms built on top of them.
//
// What is inside:
//
//	matrix/    — Dense[T] over any integer or float type, Mul / MulRows with
//	             fail-fast shape validation, MatVec, Transpose, Chain,
//	             Equal / AllClose and a labelled column-aligned printer
//	transform/ — 4×4 generators: Translation, Scale, ScaleAboutPoint,
//	             ReflectX/Y/Z/Origin, RotateX/Y/Z; Point, Apply, Compose
//	scene/     — headless viewer state: reflection modes, orbit camera,
//	             per-frame cube vertices in view space
//	examples/  — runnable walkthroughs (matmul, reflections)
//
// Every operation is pure: inputs are never mutated and results are fresh
// allocations. Shape violations come back as errors wrapping
// matrix.ErrInvalidArgument.
//
// Quick start:
//
//	a := matrix.MustFromRows([][]int{{1, 2}, {3, 4}, {5, 6}})
//	b := matrix.MustFromRows([][]int{{7, 8, 9}, {10, 11, 12}})
//	c, err := matrix.Mul(a, b) // 3×3
//
//	go get github.com/katalvlaran/lvmatrix
package lvmatrix
