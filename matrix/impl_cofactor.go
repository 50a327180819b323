// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - The cofactor family: Minor, Cofactor, Determinant, Adjugate, Inverse.
//   - Determinant is the classic Laplace (cofactor) expansion along row 0; it
//     is mutually recursive with the minor/cofactor helpers.
//
// Design:
//   - Public facades validate ONCE (square, order limit, indices) and then call
//     unexported recursive kernels (det, minor, adjugate) that assume valid input.
//   - No decomposition (LU/QR) is used anywhere; results follow the
//     expansion order term by term.
//
// Determinism & Resource model:
//   - Expansion terms are accumulated in column order j = 0..n-1.
//   - det(n) performs n!/2 leaf evaluations and recurses n-2 levels deep; the
//     MaxOrder option (DefaultMaxOrder) bounds both.

package matrix

import "math"

// minor copies m without row `row` and column `col`. Indices are pre-validated.
// Result shape is (r-1, c-1); r-1 == 0 yields the empty matrix.
func minor(m Matrix, row, col int) Matrix {
	res := newMatrix(m.r-1, m.c-1)
	var i, j, k int
	for i = 0; i < m.r; i++ { // fixed row-major order
		if i == row {
			continue
		}
		for j = 0; j < m.c; j++ {
			if j == col {
				continue
			}
			res.data[k] = m.at(i, j)
			k++
		}
	}

	return res
}

// det is the recursive expansion kernel. m is square; order already checked.
func det(m Matrix) float64 {
	switch m.r {
	case 0:
		return 1 // empty product
	case 1:
		return m.data[0]
	case 2:
		return m.data[0]*m.data[3] - m.data[1]*m.data[2]
	}

	// General case: expand along row 0.
	total := ZeroSum
	for j := 0; j < m.c; j++ {
		total += m.at(0, j) * sign(j) * det(minor(m, 0, j))
	}

	return total
}

// cofactor is sign(i+j) * det(minor(m, i, j)) on pre-validated input.
func cofactor(m Matrix, i, j int) float64 {
	return sign(i+j) * det(minor(m, i, j))
}

// adjugate builds the cofactor matrix and returns its transpose.
func adjugate(m Matrix) Matrix {
	n := m.r
	cof := newMatrix(n, n)
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			cof.data[i*n+j] = cofactor(m, i, j)
		}
	}

	return Transpose(cof)
}

// Minor returns m with row `row` removed, then column `col` removed from every
// remaining row.
//
// Errors:
//   - ErrOutOfRange when row ∉ [0, rows) or col ∉ [0, cols).
//
// Complexity: O(r*c).
//
// Notes:
//   - Works on any shape, not only square matrices.
func Minor(m Matrix, row, col int) (Matrix, error) {
	if err := ValidateIndex(m, row, col); err != nil {
		return Matrix{}, matrixErrorf(opMinor, err)
	}

	return minor(m, row, col), nil
}

// Cofactor returns sign(row+col) · det(minor(m, row, col)).
//
// Errors (in priority order):
//   - ErrOutOfRange    (index outside the shape).
//   - ErrNotSquare     (m not square).
//   - ErrOrderTooLarge (order above MaxOrder).
//
// Complexity: O((n-1)!).
func Cofactor(m Matrix, row, col int, opts ...Option) (float64, error) {
	if err := ValidateIndex(m, row, col); err != nil {
		return 0, matrixErrorf(opCofactor, err)
	}
	if err := validateSquareOrder(m, gatherOptions(opts...)); err != nil {
		return 0, matrixErrorf(opCofactor, err)
	}

	return cofactor(m, row, col), nil
}

// Determinant computes det(m) by recursive cofactor expansion along row 0.
// Implementation:
//   - Stage 1: validate square and order ≤ MaxOrder.
//   - Stage 2: base cases 0×0 → 1, 1×1 → a, 2×2 → a·d − b·c.
//   - Stage 3: n ≥ 3 → Σ_j m[0,j] · sign(j) · det(minor(m, 0, j)).
//
// Inputs:
//   - m   : square matrix.
//   - opts: WithMaxOrder bounds n.
//
// Errors:
//   - ErrNotSquare, ErrOrderTooLarge.
//
// Determinism:
//   - Terms are summed in column order at every level.
//
// Complexity:
//   - Time O(n!), recursion depth O(n), Space O(n²) live minors.
//
// Notes:
//   - 0×0 is defined as 1 (empty product). With that convention the 1×1
//     adjugate is [[1]] and Inverse([[a]]) == [[1/a]] without special cases.
func Determinant(m Matrix, opts ...Option) (float64, error) {
	if err := validateSquareOrder(m, gatherOptions(opts...)); err != nil {
		return 0, matrixErrorf(opDeterminant, err)
	}

	return det(m), nil
}

// Adjugate returns adj(m) = Cᵀ where C[i,j] = Cofactor(m, i, j).
//
// Errors:
//   - ErrNotSquare, ErrOrderTooLarge.
//
// Complexity:
//   - Time O(n² · (n-1)!), Space O(n²).
func Adjugate(m Matrix, opts ...Option) (Matrix, error) {
	if err := validateSquareOrder(m, gatherOptions(opts...)); err != nil {
		return Matrix{}, matrixErrorf(opAdjugate, err)
	}

	return adjugate(m), nil
}

// Inverse returns m⁻¹ = adj(m) / det(m).
// Implementation:
//   - Stage 1: validate square and order ≤ MaxOrder.
//   - Stage 2: d := det(m); |d| ≤ eps ⇒ ErrSingular (eps defaults to 0: exact zero test).
//   - Stage 3: divide every element of adj(m) by d.
//
// Errors:
//   - ErrNotSquare, ErrOrderTooLarge, ErrSingular.
//
// Determinism:
//   - Elementwise true division (x/d), not multiplication by 1/d.
//
// Complexity:
//   - Time O(n² · (n-1)! + n!), Space O(n²).
//
// Notes:
//   - Result elements may be non-integral even for integral input.
//   - Inverse(empty) == empty (det of 0×0 is 1).
func Inverse(m Matrix, opts ...Option) (Matrix, error) {
	o := gatherOptions(opts...)
	if err := validateSquareOrder(m, o); err != nil {
		return Matrix{}, matrixErrorf(opInverse, err)
	}

	d := det(m)
	if math.Abs(d) <= o.eps {
		return Matrix{}, matrixErrorf(opInverse, ErrSingular)
	}

	return divScalar(adjugate(m), d), nil
}
