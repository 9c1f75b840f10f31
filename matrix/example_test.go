package matrix_test

import (
	"errors"
	"fmt"
	"os"

	"github.com/katalvlaran/lvmatrix/matrix"
)

// ExampleMul multiplies a 3×2 by a 2×3 integer matrix.
func ExampleMul() {
	a := matrix.MustFromRows([][]int{{1, 2}, {3, 4}, {5, 6}})
	b := matrix.MustFromRows([][]int{{7, 8, 9}, {10, 11, 12}})

	c, err := matrix.Mul(a, b)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Print(c)

	// Output:
	// [27, 30, 33]
	// [61, 68, 75]
	// [95, 106, 117]
}

// ExampleMulRows shows the failure for incompatible shapes: no result, one error kind.
func ExampleMulRows() {
	a := [][]int{{1, 2, 3}, {4, 5, 6}}
	b := [][]int{{1, 2}, {3, 4}}

	c, err := matrix.MulRows(a, b)
	fmt.Println(c == nil, errors.Is(err, matrix.ErrInvalidArgument))
	fmt.Println(err)

	// Output:
	// true true
	// MulRows: ValidateMulRows: columns of first matrix (3) must equal rows of second matrix (2)
}

// ExampleFprint renders a labelled matrix with the default field width.
func ExampleFprint() {
	m := matrix.MustFromRows([][]float32{{19, 22}, {43, 50}})
	_ = matrix.Fprint(os.Stdout, "Result A4 * B4 (2x2)", m)

	// Output:
	// Result A4 * B4 (2x2):
	//       19       22
	//       43       50
}
