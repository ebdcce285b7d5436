// SPDX-License-Identifier: MIT
// Package coomat: in-place mutations. Transpose, Prune and Scale are
// the only operations that modify their receiver; they require
// exclusive access to it for the duration of the call.

package coomat

import "math"

// Transpose flips the matrix in place: the header dimensions are
// swapped and every stored entry swaps its Row and Col. Entry order is
// unchanged; only the coordinates change meaning. Applying Transpose
// twice restores the original content.
//
// Returns ErrNilMatrix for a nil receiver; no other failure mode.
// Complexity: Time O(nnz), Space O(1).
func (m *Matrix) Transpose() error {
	if m == nil {
		return ErrNilMatrix
	}

	m.rows, m.cols = m.cols, m.rows
	for k := range m.entries {
		m.entries[k].Row, m.entries[k].Col = m.entries[k].Col, m.entries[k].Row
	}

	return nil
}

// Prune removes every entry whose magnitude falls below eps
// (DefaultEpsilon unless overridden with WithEpsilon). Removal is
// swap-with-last-and-shrink, so no stable ordering survives a prune.
// Idempotent: a second call with the same eps removes nothing.
// Always succeeds; a nil receiver is a no-op.
// Complexity: Time O(nnz) amortized, Space O(1).
func (m *Matrix) Prune(opts ...Option) {
	if m == nil {
		return
	}
	m.prune(gatherOptions(opts...).eps)
}

// prune is the shared kernel behind Prune and the post-merge cleanup
// in Mul/MulDense/Add/Sub.
func (m *Matrix) prune(eps float64) {
	for k := 0; k < len(m.entries); {
		if math.Abs(m.entries[k].Val) < eps {
			last := len(m.entries) - 1
			m.entries[k] = m.entries[last]
			m.entries = m.entries[:last]
			// The swapped-in entry may itself be near-zero; re-examine
			// position k before advancing.
			continue
		}
		k++
	}
}

// Scale multiplies every stored value by alpha in place, then prunes:
// alpha = 0 empties the matrix, |alpha| < 1 may push small entries
// under the threshold.
//
// Returns ErrNilMatrix for a nil receiver.
// Complexity: Time O(nnz), Space O(1).
func (m *Matrix) Scale(alpha float64, opts ...Option) error {
	if m == nil {
		return ErrNilMatrix
	}

	for k := range m.entries {
		m.entries[k].Val *= alpha
	}
	m.prune(gatherOptions(opts...).eps)

	return nil
}
