// SPDX-License-Identifier: MIT
// Package matrix provides value-semantic operations on Matrix: transpose and
// matrix multiplication live here; elementwise kernels live in
// ops_elementwise.go and the cofactor family in impl_cofactor.go.
// All functions perform strict fail-fast validation and return clear errors
// on shape mismatches.
//
// Purpose:
//   - Declare operation tags and shared constants for determinism and error reporting.
//   - Host the transpose and product kernels.
//
// Notes:
//   - All kernels use central validators and wrap errors via matrixErrorf at the facade.

package matrix

import "fmt"

// ZeroSum is the initial value for every accumulation (sums, dot products, expansions).
const ZeroSum = 0.0

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opAdd         = "Add"
	opMultiply    = "Multiply"
	opIdentity    = "Identity"
	opMinor       = "Minor"
	opCofactor    = "Cofactor"
	opDeterminant = "Determinant"
	opAdjugate    = "Adjugate"
	opInverse     = "Inverse"
	opAllClose    = "AllClose"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// The wrapper keeps a stable "Op: underlying" shape for uniform reporting across facades.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
//
// Complexity:
//   - Time O(1), Space O(1).
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Transpose returns a new matrix with rows and columns swapped (mᵀ).
// The original matrix is never mutated.
//
// Implementation:
//   - Stage 1: allocate (cols × rows).
//   - Stage 2: copy data[i*cols + j] → res.data[j*rows + i] in i→j order.
//
// Behavior highlights:
//   - Transpose(empty) == empty.
//   - A matrix of r>0 empty rows transposes to the empty matrix: there is no
//     column to turn into an output row.
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for the returned matrix.
func Transpose(m Matrix) Matrix {
	// Allocate result with flipped dimensions
	rows, cols := m.r, m.c
	res := newMatrix(cols, rows)

	// data[i*cols + j] → res.data[j*rows + i]
	var i, j, baseSrc int
	for i = 0; i < rows; i++ {
		baseSrc = i * cols
		for j = 0; j < cols; j++ {
			res.data[j*rows+i] = m.data[baseSrc+j]
		}
	}

	return res
}

// Multiply performs the matrix product C = A × B.
// Implementation:
//   - Stage 1: ValidateMulCompatible(A, B) once (A.cols == B.rows).
//   - Stage 2: Bᵀ turns B's columns into contiguous rows.
//   - Stage 3: C[i,j] = dot(A.row(i), Bᵀ.row(j)) in fixed i→j order.
//
// Inputs:
//   - A: left matrix with shape (r × n).
//   - B: right matrix with shape (n × c).
//
// Returns:
//   - Matrix: new C with shape (r × c).
//
// Errors:
//   - ErrShapeMismatch (inner mismatch).
//
// Determinism:
//   - Fixed loop orders; each dot product accumulates k = 0..n-1.
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c + n*c) (result plus Bᵀ).
//
// Notes:
//   - dot is never called with mismatched lengths once Stage 1 has passed;
//     the per-cell check is therefore omitted.
func Multiply(a, b Matrix) (Matrix, error) {
	// Validate inputs via canonical validator
	if err := ValidateMulCompatible(a, b); err != nil {
		return Matrix{}, matrixErrorf(opMultiply, err)
	}

	// Columns of B as rows.
	bt := Transpose(b)

	// Allocate result
	res := newMatrix(a.r, b.c)
	var i, j, base int
	for i = 0; i < a.r; i++ {
		base = i * b.c
		rowA := a.row(i)
		for j = 0; j < b.c; j++ {
			res.data[base+j] = dot(rowA, bt.row(j))
		}
	}

	return res, nil
}

// dot returns Σ x[k]*y[k]. Caller guarantees len(x) == len(y).
func dot(x, y []float64) float64 {
	s := ZeroSum
	for k := range x {
		s += x[k] * y[k]
	}

	return s
}
