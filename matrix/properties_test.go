// SPDX-License-Identifier: MIT

package matrix_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/cofactor/matrix"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// maxPropOrder keeps generated square matrices small enough that the O(n!)
// expansion stays fast and small-integer arithmetic stays exact.
const maxPropOrder = 4

// cells is the flat backing length every generator hands over.
const cells = maxPropOrder * maxPropOrder

func propParams() *gopter.TestParameters {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	return parameters
}

// TestAlgebraicLaws_PropertyBased checks the identities the cofactor kernels
// must satisfy for arbitrary small-integer matrices. With entries in [-9, 9]
// and n ≤ 4 every intermediate product fits in a float64 mantissa, so the
// exact laws are checked with exact equality.
func TestAlgebraicLaws_PropertyBased(t *testing.T) {
	properties := gopter.NewProperties(propParams())
	order := gen.IntRange(1, maxPropOrder)
	values := gen.SliceOfN(cells, gen.IntRange(-9, 9))

	properties.Property("identity is neutral for Multiply", prop.ForAll(
		func(n int, vals []int) bool {
			m := squareFrom(n, vals)
			id, err := matrix.Identity(n)
			if err != nil {
				return false
			}
			left, err := matrix.Multiply(id, m)
			if err != nil {
				return false
			}
			right, err := matrix.Multiply(m, id)
			if err != nil {
				return false
			}
			return matrix.Equal(left, m) && matrix.Equal(right, m)
		},
		order, values,
	))

	properties.Property("transpose is an involution", prop.ForAll(
		func(r, c int, vals []int) bool {
			m := rectFrom(r, c, vals)
			return matrix.Equal(matrix.Transpose(matrix.Transpose(m)), m)
		},
		order, order, values,
	))

	properties.Property("det(I) == 1", prop.ForAll(
		func(n int) bool {
			id, err := matrix.Identity(n)
			if err != nil {
				return false
			}
			d, err := matrix.Determinant(id)
			return err == nil && d == 1
		},
		gen.IntRange(1, 8),
	))

	properties.Property("det(Mᵀ) == det(M)", prop.ForAll(
		func(n int, vals []int) bool {
			m := squareFrom(n, vals)
			d1, err1 := matrix.Determinant(m)
			d2, err2 := matrix.Determinant(matrix.Transpose(m))
			return err1 == nil && err2 == nil && d1 == d2
		},
		order, values,
	))

	properties.Property("row-0 expansion agrees with cofactors of any row", prop.ForAll(
		func(n int, row int, vals []int) bool {
			m := squareFrom(n, vals)
			row %= n
			d, err := matrix.Determinant(m)
			if err != nil {
				return false
			}
			sum := 0.0
			for j := 0; j < n; j++ {
				c, err := matrix.Cofactor(m, row, j)
				if err != nil {
					return false
				}
				v, _ := m.At(row, j)
				sum += v * c
			}
			return sum == d
		},
		order, gen.IntRange(0, maxPropOrder-1), values,
	))

	properties.Property("Add is commutative and Sum is additive", prop.ForAll(
		func(r, c int, a, b []int) bool {
			ma, mb := rectFrom(r, c, a), rectFrom(r, c, b)
			ab, err1 := matrix.Add(ma, mb)
			ba, err2 := matrix.Add(mb, ma)
			if err1 != nil || err2 != nil {
				return false
			}
			return matrix.Equal(ab, ba) && matrix.Sum(ab) == matrix.Sum(ma)+matrix.Sum(mb)
		},
		order, order, values, values,
	))

	properties.TestingRun(t)
}

// TestInverseRoundTrip_PropertyBased verifies inverse(M)·M ≈ I for invertible
// M, and that Inverse reports ErrSingular exactly when det(M) == 0.
func TestInverseRoundTrip_PropertyBased(t *testing.T) {
	properties := gopter.NewProperties(propParams())

	properties.Property("inverse(M)·M ≈ I", prop.ForAll(
		func(n int, vals []int) bool {
			m := squareFrom(n, vals)
			d, err := matrix.Determinant(m)
			if err != nil {
				return false
			}
			inv, err := matrix.Inverse(m)
			if d == 0 {
				return errors.Is(err, matrix.ErrSingular)
			}
			if err != nil {
				return false
			}
			prod, err := matrix.Multiply(inv, m)
			if err != nil {
				return false
			}
			id, _ := matrix.Identity(n)
			ok, err := matrix.AllClose(prod, id, tolInverse)
			return err == nil && ok
		},
		gen.IntRange(1, maxPropOrder), gen.SliceOfN(cells, gen.IntRange(-9, 9)),
	))

	properties.TestingRun(t)
}
