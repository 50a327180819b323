// SPDX-License-Identifier: MIT

package matrix

// Test bridge: exposes unexported helpers to matrix_test only.
var (
	ExportedSign      = sign
	ExportedDivScalar = divScalar
)
