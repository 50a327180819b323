// SPDX-License-Identifier: MIT
// Package matrix: public API facades.
//
// Purpose:
//   - Provide thin, well-documented entry points for common constructions.
//   - Each facade delegates to the canonical implementation.
//
// Determinism & Policy:
//   - Facades never change the loop orders or numeric policy of underlying kernels.
//   - Validation is performed in the kernels; facades only compose or forward.

package matrix

// Identity returns I_n (n×n; ones on the diagonal, zeros elsewhere).
// Determinism: fixed i-loop; single write per diagonal cell.
// Complexity: O(n^2) zeroing + O(n) diagonal writes.
//
// Errors: ErrInvalidDimension when n <= 0.
func Identity(n int) (Matrix, error) {
	if n <= 0 {
		return Matrix{}, matrixErrorf(opIdentity, ErrInvalidDimension)
	}
	// Allocate an n×n zero matrix.
	id := newMatrix(n, n)
	// Set the diagonal deterministically in a single loop.
	for i := 0; i < n; i++ {
		id.data[i*n+i] = 1.0
	}

	return id, nil
}

// ShapeOf is the free-function form of m.Shape().
func ShapeOf(m Matrix) (rows, cols int) { return m.Shape() }

// ZerosLike returns a new zero matrix with the same shape as m.
// Complexity: O(r*c).
func ZerosLike(m Matrix) Matrix {
	return newMatrix(m.r, m.c)
}

// IdentityLike returns I with dimension = rows(m); requires a non-empty square shape.
// Complexity: O(n^2).
//
// Errors: ErrNotSquare, ErrInvalidDimension (empty m).
func IdentityLike(m Matrix) (Matrix, error) {
	// Ensure the input is square using the centralized validator.
	if err := ValidateSquare(m); err != nil {
		return Matrix{}, matrixErrorf("IdentityLike", err)
	}

	return Identity(m.r)
}
