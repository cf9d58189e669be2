// SPDX-License-Identifier: MIT

// Package linalg: functional configuration for comparisons and rendering.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal).
//
// Notes:
//   - No global state: each call resolves its own Options from defaults.
//   - Panics are reserved for invalid option parameters (programmer error).

package linalg

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultEpsilon is the absolute per-component tolerance used by ApproxEqual.
	DefaultEpsilon = 1e-9

	// DefaultPrecision is the number of fractional digits used by String.
	DefaultPrecision = 3

	// maxPrecision bounds WithPrecision; float64 carries at most 17 significant digits.
	maxPrecision = 17
)

// ---------- Internal panic messages ----------

const (
	panicEpsilonInvalid   = "linalg: WithEpsilon: eps must be finite, non-negative"
	panicPrecisionInvalid = "linalg: WithPrecision: digits must be in [0, 17]"
)

// Option mutates internal options. Safe to apply repeatedly.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept ...Option.
type Options struct {
	eps       float64 // >= 0; DefaultEpsilon
	precision int     // [0, maxPrecision]; DefaultPrecision
}

// defaultOptions returns Options filled with the documented defaults.
func defaultOptions() Options {
	return Options{
		eps:       DefaultEpsilon,
		precision: DefaultPrecision,
	}
}

// gatherOptions applies opts over the defaults in order; later options win.
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// NewOptions resolves opts into an Options value (useful for inspection in tests).
func NewOptions(opts ...Option) Options { return gatherOptions(opts...) }

// Epsilon returns the resolved comparison tolerance.
func (o Options) Epsilon() float64 { return o.eps }

// Precision returns the resolved number of fractional digits.
func (o Options) Precision() int { return o.precision }

// WithEpsilon sets the absolute tolerance for ApproxEqual.
// Panics if eps is negative, NaN or ±Inf.
func WithEpsilon(eps float64) Option {
	if eps < 0 || math.IsNaN(eps) || math.IsInf(eps, 0) {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// WithPrecision sets the number of fractional digits used by Render.
// Panics if digits is outside [0, 17].
func WithPrecision(digits int) Option {
	if digits < 0 || digits > maxPrecision {
		panic(panicPrecisionInvalid)
	}

	return func(o *Options) { o.precision = digits }
}
