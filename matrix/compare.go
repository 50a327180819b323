// SPDX-License-Identifier: MIT

package matrix

import "math"

// Equal reports structural equality: same shape and bitwise-equal elements
// (NaN never equals NaN, +0 equals -0, as with ==). Complexity: O(r*c).
func Equal(a, b Matrix) bool {
	if a.r != b.r || a.c != b.c {
		return false
	}
	for k := range a.data {
		if a.data[k] != b.data[k] {
			return false
		}
	}

	return true
}

// AllClose reports whether |a[i,j] − b[i,j]| ≤ tol for every cell.
//
// Errors:
//   - ErrShapeMismatch when the shapes differ.
//
// Notes:
//   - A negative tol is treated as |tol|; NaN cells never compare close.
func AllClose(a, b Matrix, tol float64) (bool, error) {
	if err := ValidateSameShape(a, b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	tol = math.Abs(tol)
	for k := range a.data {
		if !(math.Abs(a.data[k]-b.data[k]) <= tol) {
			return false, nil
		}
	}

	return true, nil
}
