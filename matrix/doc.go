// Package matrix is a small, value-semantic matrix algebra library built
// around the classic cofactor (Laplace) expansion.
//
// 🚀 What's inside?
//
//   - Construction: New, NewFilled, Identity, FromRows
//   - Shape & access: Shape, At, Row, Rows, Equal, AllClose
//   - Elementwise: Sum, SumValues, Add, Scale
//   - Products: Transpose, Multiply (via Bᵀ and row dot products)
//   - Cofactor family: Minor, Cofactor, Determinant, Adjugate, Inverse
//
// ✨ Guarantees:
//
//   - Matrices are immutable values. Every operation returns a new Matrix and
//     nothing handed out aliases internal storage, so values may be shared
//     across goroutines without locks.
//   - Every precondition is checked before work begins; failures return
//     package sentinels (ErrShapeMismatch, ErrNotSquare, ErrOutOfRange,
//     ErrSingular, ErrInvalidDimension, ErrOrderTooLarge) matched with errors.Is.
//   - The library performs no logging and no I/O.
//
// ⚙️ Usage:
//
//	a := matrix.MustFromRows([][]float64{{4, 7}, {2, 6}})
//	d, _ := matrix.Determinant(a)   // 10
//	inv, err := matrix.Inverse(a)   // [[0.6, -0.7], [-0.2, 0.4]]
//	if errors.Is(err, matrix.ErrSingular) {
//	  // handle
//	}
//
// Performance:
//
//   - Determinant: O(n!) time, recursion depth O(n). The expansion is
//     evaluated term by term with no LU/QR shortcut. Orders above DefaultMaxOrder (10) are
//     rejected with ErrOrderTooLarge unless raised via WithMaxOrder.
//   - Add, Sum, Transpose, Minor: O(r·c). Multiply: O(r·n·c).
//
// Note on SumValues: it accepts untyped rows (e.g. decoded JSON) and silently
// skips non-numeric elements.
package matrix
