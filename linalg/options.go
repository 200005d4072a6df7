// SPDX-License-Identifier: MIT

// Package linalg: functional configuration for numeric policy.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal).
//
// Design goals:
//   - Deterministic behavior: no global state.
//   - No dead switches: each option impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package linalg

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultEpsilon is the absolute tolerance used by ApproxEqual.
	DefaultEpsilon = 1e-9

	// DefaultParallelThreshold is the cosine above which Slerp treats two
	// rotations as parallel and falls back to normalized linear interpolation.
	DefaultParallelThreshold = 0.9995
)

// CofactorMaxDim is the largest square size for which Determinant and Inverse
// use recursive cofactor expansion (O(n!)). Larger matrices go through an LU
// factorization behind the same contract.
const CofactorMaxDim = 5

// ---------- Internal panic messages ----------

const (
	panicEpsilonInvalid   = "linalg: WithEpsilon: eps must be finite, non-negative"
	panicThresholdInvalid = "linalg: WithParallelThreshold: threshold must be in (0, 1]"
)

// Option mutates internal options.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept ...Option.
type Options struct {
	eps               float64 // >= 0; DefaultEpsilon
	parallelThreshold float64 // (0,1]; DefaultParallelThreshold
}

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{
		eps:               DefaultEpsilon,
		parallelThreshold: DefaultParallelThreshold,
	}
}

// Epsilon reports the configured comparison tolerance.
func (o Options) Epsilon() float64 { return o.eps }

// ParallelThreshold reports the configured slerp fallback threshold.
func (o Options) ParallelThreshold() float64 { return o.parallelThreshold }

// WithEpsilon sets the absolute tolerance used by ApproxEqual.
// Panics if eps is NaN, ±Inf or negative.
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// WithParallelThreshold sets the cosine above which Slerp switches to nlerp.
// A threshold of 1 disables the fallback except for exactly parallel inputs.
// Panics if th is outside (0, 1].
func WithParallelThreshold(th float64) Option {
	if math.IsNaN(th) || th <= 0 || th > 1 {
		panic(panicThresholdInvalid)
	}

	return func(o *Options) { o.parallelThreshold = th }
}

// gatherOptions resolves opts over the defaults. Nil options are skipped.
func gatherOptions(opts ...Option) Options {
	o := DefaultOptions()
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}

