// SPDX-License-Identifier: MIT
// Package coomat: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the
// package. All kernels return these sentinels and tests check them via
// errors.Is. No kernel panics on user-triggered error conditions;
// panics are reserved for programmer errors in option constructors.

package coomat

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "coomat: ..." for consistency and to
// allow easy grepping across logs. Do not %w-wrap these sentinels when
// returning directly; if context is essential, wrap with
// fmt.Errorf("ctx: %w", ErrX) at the outer boundary so callers still
// match via errors.Is.
//
// ERROR PRIORITY (checking order inside kernels):
// nil references -> shape/index -> dimension mismatch -> aliasing
// -> capacity.

var (
	// ErrNilMatrix indicates that a nil *Matrix was passed where a valid
	// matrix reference is required.
	ErrNilMatrix = errors.New("coomat: nil matrix")

	// ErrNilDense indicates that a nil dense buffer was passed to
	// FromDense, ToDense or MulDense.
	ErrNilDense = errors.New("coomat: nil dense buffer")

	// ErrBadShape is returned when requested dimensions are invalid
	// (rows or cols <= 0, capacity < 0) or a dense buffer length does
	// not equal rows*cols.
	ErrBadShape = errors.New("coomat: invalid shape")

	// ErrDimensionMismatch indicates incompatible dimensions between
	// operands: Add/Sub with differing shapes, Mul/MulDense where
	// a.Cols != b.Rows, or ToDense with a shape other than the source's.
	ErrDimensionMismatch = errors.New("coomat: dimension mismatch")

	// ErrOutOfRange indicates that an entry position or a (row, col)
	// index is outside valid bounds.
	ErrOutOfRange = errors.New("coomat: index out of range")

	// ErrAliased is returned when a destination matrix is the same
	// object as one of the inputs. Non-in-place kernels require
	// disjoint storage.
	ErrAliased = errors.New("coomat: destination aliases an input")

	// ErrShapeOverflow signals that the discovered non-zero count
	// exceeds rows*cols during dense ingestion.
	ErrShapeOverflow = errors.New("coomat: entry count exceeds rows*cols")

	// ErrCapacityExceeded is returned when a result would require more
	// entries than the destination's fixed capacity can hold. Storage
	// is never grown implicitly.
	ErrCapacityExceeded = errors.New("coomat: capacity exceeded")
)
