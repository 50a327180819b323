// SPDX-License-Identifier: MIT

package matrix_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/cofactor/matrix"
)

// ExampleDeterminant expands a 3×3 determinant along row 0.
func ExampleDeterminant() {
	a := matrix.MustFromRows([][]float64{
		{4, 7, 2},
		{3, 6, 1},
		{2, 5, 3},
	})
	d, err := matrix.Determinant(a)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("det =", d)
	// Output:
	// det = 9
}

// ExampleInverse shows adj(A)/det(A) and the singular case.
func ExampleInverse() {
	inv, err := matrix.Inverse(matrix.MustFromRows([][]float64{{4, 7}, {2, 6}}))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(inv)

	_, err = matrix.Inverse(matrix.MustFromRows([][]float64{{1, 2}, {2, 4}}))
	fmt.Println(errors.Is(err, matrix.ErrSingular))
	// Output:
	// [0.6, -0.7]
	// [-0.2, 0.4]
	// true
}

// ExampleMultiply multiplies two 2×2 matrices.
func ExampleMultiply() {
	a := matrix.MustFromRows([][]float64{{1, 2}, {3, 4}})
	b := matrix.MustFromRows([][]float64{{5, 6}, {7, 8}})
	p, _ := matrix.Multiply(a, b)
	fmt.Println(p)
	// Output:
	// [19, 22]
	// [43, 50]
}

// ExampleMinor removes row 0 and column 0.
func ExampleMinor() {
	m := matrix.MustFromRows([][]float64{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}})
	mi, _ := matrix.Minor(m, 0, 0)
	fmt.Println(mi)
	// Output:
	// [5, 6]
	// [8, 9]
}

// ExampleSumValues sums loosely typed rows, skipping what is not a number.
func ExampleSumValues() {
	fmt.Println(matrix.SumValues([][]any{{1, "x", 2.5}, {nil, 3}}))
	// Output:
	// 6.5
}
