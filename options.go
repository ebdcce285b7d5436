// SPDX-License-Identifier: MIT

// Package coomat: functional configuration for the numeric policy.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that resolves defaults.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).

package coomat

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultEpsilon is the near-zero threshold: values whose magnitude
	// falls below it are treated as zero and excluded from storage.
	DefaultEpsilon = 1e-3

	// DefaultMagnitudeThreshold controls how FromDense compares a dense
	// element against epsilon. The default is the signed compare
	// (v >= eps), which discards all negative values; see
	// WithMagnitudeThreshold for the |v| >= eps alternative.
	DefaultMagnitudeThreshold = false
)

// ---------- Internal panic messages (no magic strings) ----------

const panicEpsilonInvalid = "coomat: WithEpsilon: eps must be finite, non-negative"

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective numeric policy after applying Option
// setters. Fields are unexported to prevent external mutation; public
// entry points accept ...Option and resolve them via gatherOptions.
type Options struct {
	eps           float64 // >= 0; DefaultEpsilon
	magnitudeKeep bool    // DefaultMagnitudeThreshold
}

// WithEpsilon sets the near-zero threshold eps used by ingestion and
// pruning. Larger eps discards more entries; eps = 0 keeps every
// explicitly stored value.
//
// Panics with a stable message when eps is NaN, ±Inf or negative.
// Complexity: O(1).
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// WithMagnitudeThreshold makes FromDense retain an element when
// |v| >= eps, matching the test Prune applies. Without it, FromDense
// keeps an element only when v >= eps, so negative values are
// discarded regardless of magnitude.
// Complexity: O(1).
func WithMagnitudeThreshold() Option {
	return func(o *Options) { o.magnitudeKeep = true }
}

// WithSignedThreshold restores the default signed compare (v >= eps)
// for FromDense ingestion.
// Complexity: O(1).
func WithSignedThreshold() Option {
	return func(o *Options) { o.magnitudeKeep = false }
}

// ---------- Option resolution ----------

// gatherOptions applies user-provided setters on top of the documented
// defaults (last-writer-wins) and returns the effective configuration.
// Stable for a given sequence of setters. Time O(k) for k options.
func gatherOptions(user ...Option) Options {
	o := Options{
		eps:           DefaultEpsilon,
		magnitudeKeep: DefaultMagnitudeThreshold,
	}
	for _, set := range user {
		set(&o)
	}

	return o
}

// keeps reports whether a dense element v survives ingestion under the
// configured threshold policy.
func (o Options) keeps(v float64) bool {
	if o.magnitudeKeep {
		return math.Abs(v) >= o.eps
	}

	return v >= o.eps
}
