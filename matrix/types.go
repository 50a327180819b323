// SPDX-License-Identifier: MIT

// Package matrix: domain types.
// This file contains ONLY the Matrix value type and the sign
// convention shared by the cofactor kernels. Errors and options live in
// dedicated files (errors.go, options.go).
package matrix

// Matrix is an immutable, row-major matrix of float64 values.
//
// Value semantics:
//   - No exported function or method mutates a Matrix; every operation
//     returns a fresh value that owns its own buffer.
//   - Accessors that expose elements (Row, Rows) return copies.
//   - The zero value Matrix{} is the empty matrix with shape (0, 0).
//
// Shape invariants:
//   - len(data) == r*c.
//   - r == 0 implies c == 0 (the empty matrix has no notion of width).
//   - r > 0, c == 0 is a matrix of r empty rows.
type Matrix struct {
	r, c int       // row and column counts (>= 0)
	data []float64 // contiguous row-major storage (offset = i*c + j)
}

// sign returns +1 for even k and -1 for odd k.
// Used with k = j for the row-0 expansion and k = i+j for cofactors.
func sign(k int) float64 {
	if k%2 == 0 {
		return 1
	}

	return -1
}
