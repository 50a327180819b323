// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/cofactor/matrix"
	"github.com/stretchr/testify/require"
)

func TestOptions_Defaults(t *testing.T) {
	t.Parallel()
	o := matrix.NewOptions()
	require.Equal(t, matrix.DefaultMaxOrder, o.MaxOrder())
	require.Equal(t, matrix.DefaultEpsilon, o.Epsilon())
}

func TestOptions_LastWriteWins(t *testing.T) {
	t.Parallel()
	o := matrix.NewOptions(
		matrix.WithMaxOrder(3),
		matrix.WithEpsilon(1e-6),
		nil, // skipped
		matrix.WithMaxOrder(12),
	)
	require.Equal(t, 12, o.MaxOrder())
	require.Equal(t, 1e-6, o.Epsilon())
}

func TestWithMaxOrder_PanicsOnNonsense(t *testing.T) {
	t.Parallel()
	for _, n := range []int{0, -1, matrix.HardMaxOrder + 1} {
		n := n
		require.Panicsf(t, func() { matrix.WithMaxOrder(n) }, "n=%d", n)
	}
	require.NotPanics(t, func() { matrix.WithMaxOrder(matrix.HardMaxOrder) })
}

func TestWithEpsilon_PanicsOnNonsense(t *testing.T) {
	t.Parallel()
	for _, eps := range []float64{-1e-9, math.NaN(), math.Inf(1)} {
		eps := eps
		require.Panicsf(t, func() { matrix.WithEpsilon(eps) }, "eps=%v", eps)
	}
	require.NotPanics(t, func() { matrix.WithEpsilon(0) })
}
