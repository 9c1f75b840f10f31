package transform_test

import (
	"fmt"

	"github.com/katalvlaran/lvmatrix/transform"
)

// ExampleReflectX mirrors a point across the plane x = 0.
func ExampleReflectX() {
	p := transform.Point(40.0, 30, 0)
	q, err := transform.Apply(transform.ReflectX[float64](), p)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(transform.Coords(q))

	// Output:
	// -40 30 0 1 <nil>
}

// ExampleScaleAboutPoint doubles the distance from the pivot (1,1,1).
func ExampleScaleAboutPoint() {
	m := transform.ScaleAboutPoint(2, 2, 2, 1, 1, 1)
	q, _ := transform.Apply(m, transform.Point(2, 2, 2))
	x, y, z, w, _ := transform.Coords(q)
	fmt.Println(x, y, z, w)

	// Output:
	// 3 3 3 1
}
