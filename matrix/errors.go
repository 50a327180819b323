// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All kernels MUST return these sentinels and tests MUST check them
// via errors.Is. No kernel panics on user-triggered error conditions.
// Panics are reserved for programmer errors (Must* helpers, option constructors).

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Kernels wrap with matrixErrorf(op, ErrX) so the
// final message reads "Inverse: matrix: singular matrix" while errors.Is keeps
// matching the sentinel.
//
// ERROR PRIORITY (documented, enforced in tests):
// dimension -> index -> shape/square -> order limit -> singularity.

var (
	// ErrInvalidDimension is returned when a requested size is invalid:
	// negative rows/cols for New/NewFilled, or n <= 0 for Identity.
	ErrInvalidDimension = errors.New("matrix: invalid dimension")

	// ErrShapeMismatch indicates incompatible operand shapes, e.g. Add of
	// different shapes, Multiply where a.cols != b.rows, or ragged input rows.
	ErrShapeMismatch = errors.New("matrix: shape mismatch")

	// ErrNotSquare signals that a square matrix was required but the input wasn't.
	ErrNotSquare = errors.New("matrix: matrix is not square")

	// ErrOutOfRange indicates that a row or column index is outside the current shape.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrSingular is returned by Inverse when the determinant is zero
	// (or within the configured epsilon of zero).
	ErrSingular = errors.New("matrix: singular matrix")

	// ErrOrderTooLarge is returned when a cofactor-expansion kernel is asked
	// to work on a square matrix larger than the configured maximum order.
	// Expansion is O(n!) and recurses n levels deep; the limit keeps both bounded.
	ErrOrderTooLarge = errors.New("matrix: order exceeds configured maximum")
)
