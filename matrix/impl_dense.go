// SPDX-License-Identifier: MIT

// Package matrix - row-major storage & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Row return errors instead of panicking.
//   - Guarantee value semantics: nothing handed out aliases the internal buffer.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//
// Complexity quicksheet:
//   - New/NewFilled/FromRows: O(r*c); At: O(1); Row: O(c); Rows: O(r*c).

package matrix

import (
	"fmt"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt       = "At"       // method tag used in error wrappers
	ctxRow      = "Row"      // method tag used in error wrappers
	ctxNew      = "New"      // ctor tag for New/NewFilled
	ctxFromRows = "FromRows" // ctor tag for FromRows
)

// ---------- Formatting literals  ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]"
	_fmtSep      = ", "
	_fmtRowBreak = "\n"
	_fmtEmpty    = "[]"
)

// denseErrorf wraps an error with the Matrix method and callsite indices,
// preserving the sentinel via %w.
// Complexity: O(1).
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Matrix.%s(%d,%d): %w", method, row, col, err)
}

// newMatrix allocates an r×c zero buffer and applies the shape normalization
// (r == 0 ⇒ c == 0). Callers have already validated r, c >= 0.
func newMatrix(r, c int) Matrix {
	if r == 0 {
		return Matrix{} // empty matrix has no width
	}

	return Matrix{r: r, c: c, data: make([]float64, r*c)}
}

// NewFilled creates a rows×cols matrix where every element equals fill.
// MAIN DESCRIPTION:
//   - Public constructor; the general form of New.
//
// Implementation:
//   - Stage 1: validate rows>=0 && cols>=0; else ErrInvalidDimension.
//   - Stage 2: allocate via newMatrix (normalizes rows==0 to the empty matrix).
//   - Stage 3: write fill into every cell in flat order.
//
// Behavior highlights:
//   - rows == 0 yields the empty matrix (shape (0,0)) whatever cols is.
//   - cols == 0, rows > 0 yields rows empty rows (shape (rows,0)).
//
// Errors:
//   - ErrInvalidDimension (negative rows or cols).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewFilled(rows, cols int, fill float64) (Matrix, error) {
	// Validate shape.
	if rows < 0 || cols < 0 {
		return Matrix{}, denseErrorf(ctxNew, rows, cols, ErrInvalidDimension)
	}

	// Allocate and fill.
	m := newMatrix(rows, cols)
	if fill != 0 {
		for k := range m.data { // flat row-major walk
			m.data[k] = fill
		}
	}

	return m, nil
}

// New creates a rows×cols zero matrix. It is NewFilled with fill = 0.
// Errors: ErrInvalidDimension on negative rows or cols.
func New(rows, cols int) (Matrix, error) {
	return NewFilled(rows, cols, 0)
}

// FromRows builds a Matrix by copying caller-supplied rows.
// The caller keeps ownership of rows; later edits to it do not leak in.
//
// Errors:
//   - ErrShapeMismatch when rows are ragged.
//
// Complexity: O(r*c).
func FromRows(rows [][]float64) (Matrix, error) {
	// Validate the well-formed invariant up front.
	if err := ValidateRows(rows); err != nil {
		return Matrix{}, matrixErrorf(ctxFromRows, err)
	}
	if len(rows) == 0 {
		return Matrix{}, nil
	}

	// Copy row by row into the flat buffer.
	m := newMatrix(len(rows), len(rows[0]))
	for i := range rows {
		copy(m.data[i*m.c:(i+1)*m.c], rows[i])
	}

	return m, nil
}

// MustFromRows is FromRows that panics on ragged input.
// Intended for literals in tests and examples.
func MustFromRows(rows [][]float64) Matrix {
	m, err := FromRows(rows)
	if err != nil {
		panic(err)
	}

	return m
}

// Shape returns (rows, cols). The empty matrix reports (0, 0).
func (m Matrix) Shape() (rows, cols int) { return m.r, m.c }

// RowCount returns the number of rows.
func (m Matrix) RowCount() int { return m.r }

// ColCount returns the number of columns.
func (m Matrix) ColCount() int { return m.c }

// IsEmpty reports whether m has no rows.
func (m Matrix) IsEmpty() bool { return m.r == 0 }

// IsSquare reports whether rows == cols. The empty matrix is square (0×0).
func (m Matrix) IsSquare() bool { return m.r == m.c }

// At retrieves the element at (row, col).
// Errors: ErrOutOfRange when either index is outside the shape.
// Complexity: O(1).
func (m Matrix) At(row, col int) (float64, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, denseErrorf(ctxAt, row, col, ErrOutOfRange)
	}

	return m.data[row*m.c+col], nil
}

// Row returns a copy of row i.
// Errors: ErrOutOfRange when i is outside [0, rows).
// Complexity: O(c).
func (m Matrix) Row(i int) ([]float64, error) {
	if i < 0 || i >= m.r {
		return nil, denseErrorf(ctxRow, i, 0, ErrOutOfRange)
	}
	out := make([]float64, m.c)
	copy(out, m.row(i))

	return out, nil
}

// Rows returns a deep copy of the matrix as a slice of rows.
// The empty matrix yields an empty, non-nil slice.
// Complexity: O(r*c).
func (m Matrix) Rows() [][]float64 {
	out := make([][]float64, m.r)
	for i := 0; i < m.r; i++ {
		out[i] = make([]float64, m.c)
		copy(out[i], m.row(i))
	}

	return out
}

// row returns the internal slice backing row i. Never hand it out.
func (m Matrix) row(i int) []float64 {
	return m.data[i*m.c : (i+1)*m.c]
}

// at is the unchecked accessor used by kernels after validation.
func (m Matrix) at(i, j int) float64 {
	return m.data[i*m.c+j]
}

// String HUMAN-READABLE dump of rows for diagnostics.
// Implementation:
//   - Stage 1: iterate rows/cols deterministically.
//   - Stage 2: write values into strings.Builder with standard delimiters.
//
// Returns:
//   - "[]" for the empty matrix, otherwise one "[a, b, ...]" line per row.
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for formatting.
func (m Matrix) String() string {
	if m.r == 0 {
		return _fmtEmpty
	}
	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.r; i++ { // iterate rows deterministically
		if i > 0 {
			b.WriteString(_fmtRowBreak)
		}
		b.WriteString(_fmtRowOpen) // open row
		base = i * m.c
		for j = 0; j < m.c; j++ { // iterate cols
			fmt.Fprintf(&b, "%g", m.data[base+j])
			if j+1 < m.c {
				b.WriteString(_fmtSep) // separate values with comma + space
			}
		}
		b.WriteString(_fmtRowClose) // close row
	}

	return b.String()
}
