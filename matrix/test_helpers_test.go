// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures and assertions shared by the kernel tests.
//   • Keep all data finite and small-integer so exact equality is meaningful.

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/cofactor/matrix"
	"github.com/stretchr/testify/require"
)

// Tolerance for round trips through Inverse.
const tolInverse = 1e-9

// M BUILDS a Matrix from literal rows or fails the test.
func M(t *testing.T, rows [][]float64) matrix.Matrix {
	t.Helper()
	m, err := matrix.FromRows(rows)
	require.NoError(t, err)

	return m
}

// RequireRows asserts got has exactly the given rows (shape and values).
func RequireRows(t *testing.T, want [][]float64, got matrix.Matrix) {
	t.Helper()
	require.Equal(t, want, got.Rows())
}

// RequireShape asserts got has shape (r, c).
func RequireShape(t *testing.T, r, c int, got matrix.Matrix) {
	t.Helper()
	gr, gc := got.Shape()
	require.Equal(t, [2]int{r, c}, [2]int{gr, gc})
}

// RequireClose asserts |want[i][j] − got[i,j]| ≤ tol for every cell.
func RequireClose(t *testing.T, want [][]float64, got matrix.Matrix, tol float64) {
	t.Helper()
	RequireShape(t, len(want), len(want[0]), got)
	for i := range want {
		for j := range want[i] {
			v, err := got.At(i, j)
			require.NoError(t, err)
			require.InDeltaf(t, want[i][j], v, tol, "cell [%d,%d]", i, j)
		}
	}
}

// squareFrom builds an n×n matrix from the first n*n values (zero-padded).
// Used by the property tests, whose generators hand over flat int slices.
func squareFrom(n int, vals []int) matrix.Matrix {
	return rectFrom(n, n, vals)
}

// rectFrom builds an r×c matrix from the first r*c values (zero-padded).
func rectFrom(r, c int, vals []int) matrix.Matrix {
	rows := make([][]float64, r)
	for i := 0; i < r; i++ {
		rows[i] = make([]float64, c)
		for j := 0; j < c; j++ {
			if k := i*c + j; k < len(vals) {
				rows[i][j] = float64(vals[k])
			}
		}
	}

	return matrix.MustFromRows(rows)
}
