// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Elementwise kernels: Sum (reduction), SumValues (untyped reduction),
//     Add (binary, same shape) and Scale (scalar broadcast).
//
// Determinism & Performance:
//   - Fixed flat loop order 0..r*c-1 (row-major), so floating sums are reproducible.
//   - Exactly one allocation for matrix-valued results; inputs are never mutated.

package matrix

import "encoding/json"

// Sum returns the sum of every element, row by row. The empty matrix sums to 0.
// Complexity: O(r*c).
func Sum(m Matrix) float64 {
	total := ZeroSum
	for _, v := range m.data { // row-major order
		total += v
	}

	return total
}

// SumValues sums untyped row data such as decoded JSON.
//
// Policy:
//   - Any element that is not numeric is silently skipped. A string, bool,
//     nil, nested slice or map contributes nothing and causes no error.
//   - Rows may be ragged: summation is not positional.
//
// Numeric kinds: every Go integer and float kind, plus json.Number values that
// parse as float64.
//
// Complexity: O(total elements).
func SumValues(rows [][]any) float64 {
	total := ZeroSum
	for _, row := range rows {
		for _, v := range row {
			if f, ok := numericValue(v); ok {
				total += f
			}
		}
	}

	return total
}

// numericValue converts v to float64 when v is one of the recognized numeric kinds.
func numericValue(v any) (float64, bool) {
	switch x := v.(type) {
	case float64:
		return x, true
	case float32:
		return float64(x), true
	case int:
		return float64(x), true
	case int8:
		return float64(x), true
	case int16:
		return float64(x), true
	case int32:
		return float64(x), true
	case int64:
		return float64(x), true
	case uint:
		return float64(x), true
	case uint8:
		return float64(x), true
	case uint16:
		return float64(x), true
	case uint32:
		return float64(x), true
	case uint64:
		return float64(x), true
	case json.Number:
		f, err := x.Float64()
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}

// Add computes elementwise out = a + b.
// Inputs must have identical shapes. A fresh Matrix is allocated; operands are not mutated.
//
// Implementation:
//   - Stage 1: ValidateSameShape(a, b), before any allocation.
//   - Stage 2: single flat loop 0..n-1 over both row-major buffers.
//
// Errors:
//   - ErrShapeMismatch (row counts or row lengths differ).
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for the new result.
func Add(a, b Matrix) (Matrix, error) {
	// Validate shapes match
	if err := ValidateSameShape(a, b); err != nil {
		return Matrix{}, matrixErrorf(opAdd, err)
	}

	// Allocate result
	res := newMatrix(a.r, a.c)
	for k := range res.data {
		res.data[k] = a.data[k] + b.data[k]
	}

	return res, nil
}

// Scale returns a new matrix whose elements are alpha * m[i,j].
// The original matrix is never mutated. alpha = 0 yields a zero matrix of the same shape.
// Complexity: O(r*c).
func Scale(m Matrix, alpha float64) Matrix {
	res := newMatrix(m.r, m.c)
	for k, v := range m.data {
		res.data[k] = alpha * v
	}

	return res
}

// divScalar returns m[i,j] / d elementwise; x/d and x*(1/d) round
// differently, so this is not Scale(m, 1/d). Caller guarantees d != 0.
func divScalar(m Matrix, d float64) Matrix {
	res := newMatrix(m.r, m.c)
	for k, v := range m.data {
		res.data[k] = v / d
	}

	return res
}
