// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for the cofactor kernels.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that resolves defaults.
//
// Rules:
//   - No global state; panics only on invalid parameters (programmer error).
//   - Options fields are unexported; public APIs consume ...Option.
//
// Notes:
//   - Only Determinant, Cofactor, Adjugate and Inverse take options; every
//     other kernel is parameter-free.
//   - MaxOrder bounds the recursion depth and the O(n!) call count of the
//     expansion. Callers needing bounded latency lower it; HardMaxOrder caps it.
//   - Epsilon only affects the singularity test in Inverse. The default of 0
//     keeps the exact "det == 0" rule.
package matrix

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultMaxOrder is the largest square order accepted by the cofactor
	// kernels unless WithMaxOrder says otherwise. 10! ≈ 3.6M expansion leaves.
	DefaultMaxOrder = 10

	// HardMaxOrder is the ceiling WithMaxOrder accepts.
	HardMaxOrder = 16

	// DefaultEpsilon is the singularity tolerance for Inverse: |det| <= eps ⇒ singular.
	DefaultEpsilon = 0.0
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicMaxOrderInvalid = "matrix: WithMaxOrder: n must be in [1, HardMaxOrder]"
	panicEpsilonInvalid  = "matrix: WithEpsilon: eps must be finite, non-negative"
)

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported to prevent external mutation.
type Options struct {
	maxOrder int     // [1, HardMaxOrder]; DefaultMaxOrder
	eps      float64 // >= 0; DefaultEpsilon
}

// WithMaxOrder sets the largest square order the cofactor kernels accept.
// Implementation:
//   - Stage 1: validate 1 <= n <= HardMaxOrder.
//   - Stage 2: return a setter that writes n into Options.
//
// Errors:
//   - Panics with a stable message when n is out of bounds.
//
// Notes:
//   - Determinant/Adjugate/Inverse on larger inputs return ErrOrderTooLarge.
func WithMaxOrder(n int) Option {
	if n < 1 || n > HardMaxOrder {
		panic(panicMaxOrderInvalid)
	}

	return func(o *Options) { o.maxOrder = n }
}

// WithEpsilon sets the singularity tolerance used by Inverse.
// Implementation:
//   - Stage 1: validate eps is finite and ≥ 0.
//   - Stage 2: return a setter that writes eps into Options.
//
// Errors:
//   - Panics with a stable message when eps is invalid.
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// defaultOptions returns the documented defaults.
func defaultOptions() Options {
	return Options{
		maxOrder: DefaultMaxOrder,
		eps:      DefaultEpsilon,
	}
}

// gatherOptions applies opts over defaults in order; nil entries are skipped.
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// NewOptions resolves opts into an Options snapshot (defaults first).
// Handy for callers that want to inspect the effective configuration.
func NewOptions(opts ...Option) Options { return gatherOptions(opts...) }

// MaxOrder returns the effective maximum square order.
func (o Options) MaxOrder() int { return o.maxOrder }

// Epsilon returns the effective singularity tolerance.
func (o Options) Epsilon() float64 { return o.eps }
