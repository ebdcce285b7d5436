// SPDX-License-Identifier: MIT
// Package: coomat
//
// Purpose:
//   - Provide a single, canonical source of truth for common validation checks.
//   - Keep kernels minimal by delegating nil/shape/alias checks here.
//   - Return plain sentinel errors (no wrapping) so call sites can wrap uniformly.
//
// Determinism & Performance:
//   - All checks are pure, deterministic and allocate nothing.

package coomat

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
// Used internally to maintain consistent labeling of sentinel violations.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// validateNotNil ensures the matrix reference is non-nil.
// Complexity: O(1).
func validateNotNil(m *Matrix) error {
	if m == nil {
		return validatorErrorf("validateNotNil", ErrNilMatrix)
	}

	return nil
}

// validateNoAlias ensures dst is a distinct object from every input.
// Non-in-place kernels write into dst while reading the inputs, so
// shared storage would corrupt the result mid-flight.
// Complexity: O(len(ins)).
func validateNoAlias(dst *Matrix, ins ...*Matrix) error {
	for _, in := range ins {
		if dst == in {
			return validatorErrorf("validateNoAlias", ErrAliased)
		}
	}

	return nil
}

// validateSameShape ensures a and b have equal dimensions. A mismatch
// in either rows or cols fails (both must match).
// Complexity: O(1).
func validateSameShape(a, b *Matrix) error {
	if a.rows != b.rows || a.cols != b.cols {
		return validatorErrorf("validateSameShape", ErrDimensionMismatch)
	}

	return nil
}

// validateMulCompatible ensures a.Cols == b.Rows.
// Assumes a and b are non-nil (caller must ensure).
// Complexity: O(1).
func validateMulCompatible(a, b *Matrix) error {
	if a.cols != b.rows {
		return validatorErrorf("validateMulCompatible", ErrDimensionMismatch)
	}

	return nil
}

// validateDenseBuf ensures a dense buffer is non-nil, its declared
// dimensions are positive, and its length equals rows*cols.
// Complexity: O(1).
func validateDenseBuf(data []float64, rows, cols int) error {
	if data == nil {
		return validatorErrorf("validateDenseBuf", ErrNilDense)
	}
	if rows <= 0 || cols <= 0 {
		return validatorErrorf("validateDenseBuf", ErrBadShape)
	}
	if len(data) != rows*cols {
		return validatorErrorf("validateDenseBuf", ErrBadShape)
	}

	return nil
}

// validateBinary is the composite NotNil(dst) → NotNil(a) → NotNil(b) →
// NoAlias(dst; a, b). Shape compatibility is checked by the caller
// since it differs per kernel.
// Complexity: O(1).
func validateBinary(dst, a, b *Matrix) error {
	if err := validateNotNil(dst); err != nil {
		return validatorErrorf("validateBinary", err)
	}
	if err := validateNotNil(a); err != nil {
		return validatorErrorf("validateBinary", err)
	}
	if err := validateNotNil(b); err != nil {
		return validatorErrorf("validateBinary", err)
	}
	if err := validateNoAlias(dst, a, b); err != nil {
		return validatorErrorf("validateBinary", err)
	}

	return nil
}

// validateUnary is the composite NotNil(dst) → NotNil(src) → NoAlias.
// Complexity: O(1).
func validateUnary(dst, src *Matrix) error {
	if err := validateNotNil(dst); err != nil {
		return validatorErrorf("validateUnary", err)
	}
	if err := validateNotNil(src); err != nil {
		return validatorErrorf("validateUnary", err)
	}
	if err := validateNoAlias(dst, src); err != nil {
		return validatorErrorf("validateUnary", err)
	}

	return nil
}
