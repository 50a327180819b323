// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for shape, index and order checks.
//  - Keep kernels minimal by delegating precondition checks here.
//  - Return tagged sentinels so call sites can wrap uniformly with matrixErrorf.
//
// Determinism & Performance:
//  - All checks are pure and allocate nothing (except the error on failure).
//  - Only ValidateRows is O(r); everything else is O(1).
//
// Note:
//  - Every kernel validates BEFORE doing any work: there is no partial result
//    and nothing to roll back on failure.

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
// Used internally to maintain consistent labeling of sentinel violations.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateRows ensures caller-supplied rows are well-formed (equal lengths).
//
// Inputs: raw rows; nil or empty is accepted (the empty matrix).
// Return: nil or wrapped ErrShapeMismatch naming the first offending row.
// Complexity: O(r).
func ValidateRows(rows [][]float64) error {
	if len(rows) == 0 {
		return nil
	}
	width := len(rows[0])
	for i := 1; i < len(rows); i++ {
		if len(rows[i]) != width {
			return validatorErrorf(fmt.Sprintf("ValidateRows: row %d has %d cols, want %d", i, len(rows[i]), width), ErrShapeMismatch)
		}
	}

	return nil
}

// ValidateSameShape – Ensures matrices a and b have equal dimensions.
//
// Return: nil or wrapped ErrShapeMismatch.
// Complexity: O(1).
// Use for Add and elementwise comparisons.
func ValidateSameShape(a, b Matrix) error {
	// Execute comparisons
	if a.r != b.r {
		return validatorErrorf("ValidateSameShape: Rows", ErrShapeMismatch)
	}
	if a.c != b.c {
		return validatorErrorf("ValidateSameShape: Columns", ErrShapeMismatch)
	}

	return nil
}

// ValidateMulCompatible ensures the inner dimensions agree (a.cols == b.rows).
//
// Return: nil or wrapped ErrShapeMismatch.
// Complexity: O(1).
func ValidateMulCompatible(a, b Matrix) error {
	if a.c != b.r {
		return validatorErrorf(fmt.Sprintf("ValidateMulCompatible: %dx%d * %dx%d", a.r, a.c, b.r, b.c), ErrShapeMismatch)
	}

	return nil
}

// ValidateSquare checks that m is square (Rows == Cols).
//
// Errors: ErrNotSquare if not square.
// Complexity: O(1).
func ValidateSquare(m Matrix) error {
	if m.r != m.c {
		return validatorErrorf(fmt.Sprintf("ValidateSquare: %dx%d", m.r, m.c), ErrNotSquare)
	}

	return nil
}

// ValidateIndex ensures (row, col) addresses a cell of m's current shape.
//
// Errors: ErrOutOfRange.
// Complexity: O(1).
func ValidateIndex(m Matrix, row, col int) error {
	if row < 0 || row >= m.r {
		return validatorErrorf(fmt.Sprintf("ValidateIndex: row %d not in [0,%d)", row, m.r), ErrOutOfRange)
	}
	if col < 0 || col >= m.c {
		return validatorErrorf(fmt.Sprintf("ValidateIndex: col %d not in [0,%d)", col, m.c), ErrOutOfRange)
	}

	return nil
}

// validateOrder checks a square order n against the configured maximum.
func validateOrder(n, maxOrder int) error {
	if n > maxOrder {
		return validatorErrorf(fmt.Sprintf("validateOrder: %d > %d", n, maxOrder), ErrOrderTooLarge)
	}

	return nil
}

// validateSquareOrder – Composite: Square → Order.
func validateSquareOrder(m Matrix, o Options) error {
	if err := ValidateSquare(m); err != nil {
		return err
	}

	return validateOrder(m.r, o.maxOrder)
}
