// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"

	"github.com/katalvlaran/cofactor/matrix"
	"github.com/spf13/cobra"
)

// commands returns every subcommand bound to a.
func (a *app) commands() []*cobra.Command {
	var fill float64
	newCmd := &cobra.Command{
		Use:   "new ROWS COLS",
		Short: "Print a ROWS x COLS matrix filled with --fill",
		Args:  cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			r, err := intArg("rows", args[0])
			if err != nil {
				return err
			}
			c, err := intArg("cols", args[1])
			if err != nil {
				return err
			}
			m, err := matrix.NewFilled(r, c, fill)
			if err != nil {
				return err
			}

			return a.enc.matrix(m)
		},
	}
	newCmd.Flags().Float64Var(&fill, "fill", 0, "value of every element")

	return []*cobra.Command{
		newCmd,
		{
			Use:   "identity N",
			Short: "Print the N x N identity matrix",
			Args:  cobra.ExactArgs(1),
			RunE: func(_ *cobra.Command, args []string) error {
				n, err := intArg("order", args[0])
				if err != nil {
					return err
				}
				m, err := matrix.Identity(n)
				if err != nil {
					return err
				}

				return a.enc.matrix(m)
			},
		},
		{
			Use:   "shape M",
			Short: "Print [rows, cols] of M",
			Args:  cobra.ExactArgs(1),
			RunE: a.unary(func(m matrix.Matrix) error {
				r, c := matrix.ShapeOf(m)

				return a.enc.shape(r, c)
			}),
		},
		{
			Use:   "sum M",
			Short: "Print the sum of the numeric elements of M; other elements are skipped",
			Args:  cobra.ExactArgs(1),
			RunE: func(_ *cobra.Command, args []string) error {
				rows, err := a.src.values(args[0])
				if err != nil {
					return err
				}

				return a.enc.scalar(matrix.SumValues(rows))
			},
		},
		{
			Use:   "add A B",
			Short: "Print A + B",
			Args:  cobra.ExactArgs(2),
			RunE:  a.binary(matrix.Add),
		},
		{
			Use:   "transpose M",
			Short: "Print the transpose of M",
			Args:  cobra.ExactArgs(1),
			RunE: a.unary(func(m matrix.Matrix) error {
				return a.enc.matrix(matrix.Transpose(m))
			}),
		},
		{
			Use:   "multiply A B",
			Short: "Print the product A * B",
			Args:  cobra.ExactArgs(2),
			RunE:  a.binary(matrix.Multiply),
		},
		{
			Use:   "minor M ROW COL",
			Short: "Print M with row ROW and column COL removed",
			Args:  cobra.ExactArgs(3),
			RunE: a.indexed(func(m matrix.Matrix, i, j int) error {
				out, err := matrix.Minor(m, i, j)
				if err != nil {
					return err
				}

				return a.enc.matrix(out)
			}),
		},
		{
			Use:   "cofactor M ROW COL",
			Short: "Print the signed cofactor of M at (ROW, COL)",
			Args:  cobra.ExactArgs(3),
			RunE: a.indexed(func(m matrix.Matrix, i, j int) error {
				v, err := matrix.Cofactor(m, i, j, a.opts...)
				if err != nil {
					return err
				}

				return a.enc.scalar(v)
			}),
		},
		{
			Use:     "det M",
			Aliases: []string{"determinant"},
			Short:   "Print the determinant of square M",
			Args:    cobra.ExactArgs(1),
			RunE: a.unary(func(m matrix.Matrix) error {
				d, err := matrix.Determinant(m, a.opts...)
				if err != nil {
					return err
				}

				return a.enc.scalar(d)
			}),
		},
		{
			Use:     "adjugate M",
			Aliases: []string{"adj"},
			Short:   "Print the adjugate of square M",
			Args:    cobra.ExactArgs(1),
			RunE: a.unary(func(m matrix.Matrix) error {
				out, err := matrix.Adjugate(m, a.opts...)
				if err != nil {
					return err
				}

				return a.enc.matrix(out)
			}),
		},
		{
			Use:     "inverse M",
			Aliases: []string{"inv"},
			Short:   "Print the inverse of square M",
			Args:    cobra.ExactArgs(1),
			RunE: a.unary(func(m matrix.Matrix) error {
				out, err := matrix.Inverse(m, a.opts...)
				if err != nil {
					return err
				}

				return a.enc.matrix(out)
			}),
		},
	}
}

type runE func(*cobra.Command, []string) error

// unary decodes args[0] as a matrix and hands it to fn.
func (a *app) unary(fn func(matrix.Matrix) error) runE {
	return func(cmd *cobra.Command, args []string) error {
		m, err := a.src.matrix(args[0])
		if err != nil {
			return err
		}
		a.trace(cmd, m)

		return fn(m)
	}
}

// binary decodes args[0] and args[1] and prints op(a, b).
func (a *app) binary(op func(x, y matrix.Matrix) (matrix.Matrix, error)) runE {
	return func(cmd *cobra.Command, args []string) error {
		x, err := a.src.matrix(args[0])
		if err != nil {
			return err
		}
		y, err := a.src.matrix(args[1])
		if err != nil {
			return err
		}
		a.trace(cmd, x, y)
		out, err := op(x, y)
		if err != nil {
			return err
		}

		return a.enc.matrix(out)
	}
}

// indexed decodes a matrix followed by a row and a column index.
func (a *app) indexed(fn func(m matrix.Matrix, i, j int) error) runE {
	return func(cmd *cobra.Command, args []string) error {
		m, err := a.src.matrix(args[0])
		if err != nil {
			return err
		}
		i, err := intArg("row", args[1])
		if err != nil {
			return err
		}
		j, err := intArg("col", args[2])
		if err != nil {
			return err
		}
		a.trace(cmd, m)

		return fn(m, i, j)
	}
}

func (a *app) trace(cmd *cobra.Command, ms ...matrix.Matrix) {
	ev := a.log.Debug().Str("command", cmd.Name())
	if !ev.Enabled() {
		return
	}
	shapes := make([]string, len(ms))
	for k, m := range ms {
		r, c := m.Shape()
		shapes[k] = fmt.Sprintf("%dx%d", r, c)
	}
	ev.Strs("operands", shapes).Msg("evaluating")
}
