// Package transform builds 4×4 affine transforms over homogeneous coordinates.
//
// Every generator returns a fresh *matrix.Dense[T] of shape 4×4, written as a
// literal coefficient grid. A point (x, y, z) is carried as the 4×1 column
// [x, y, z, 1]; applying a transform is a plain matrix.Mul with the transform as
// the left operand:
//
//	p := transform.Point(40.0, 30.0, 0.0)
//	q, _ := transform.Apply(transform.ReflectX[float64](), p) // (-40, 30, 0, 1)
//
// Generators take plain scalars and never fail. Composition (Compose) and
// application (Apply) inherit matrix.Mul's validation.
package transform
