// SPDX-License-Identifier: MIT

package matrix_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/cofactor/matrix"
)

// benchSquare returns a deterministic n×n matrix with U(-1,1) entries.
func benchSquare(b *testing.B, n int, seed int64) matrix.Matrix {
	b.Helper()
	rng := rand.New(rand.NewSource(seed))
	rows := make([][]float64, n)
	for i := range rows {
		rows[i] = make([]float64, n)
		for j := range rows[i] {
			rows[i][j] = rng.Float64()*2 - 1
		}
	}

	return matrix.MustFromRows(rows)
}

func BenchmarkDeterminant(b *testing.B) {
	for _, n := range []int{3, 5, 7, 9} {
		m := benchSquare(b, n, int64(n))
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				_, _ = matrix.Determinant(m)
			}
		})
	}
}

func BenchmarkInverse(b *testing.B) {
	for _, n := range []int{3, 5, 7} {
		m := benchSquare(b, n, 42)
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				_, _ = matrix.Inverse(m)
			}
		})
	}
}

func BenchmarkMultiply(b *testing.B) {
	for _, n := range []int{8, 32, 64} {
		x := benchSquare(b, n, 1)
		y := benchSquare(b, n, 2)
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				_, _ = matrix.Multiply(x, y)
			}
		})
	}
}
