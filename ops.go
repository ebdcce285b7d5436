// SPDX-License-Identifier: MIT
// Package coomat: destination-passing algebra kernels over the COO
// representation. All kernels perform strict fail-fast validation,
// reject aliased storage, honor the destination's fixed capacity, and
// prune near-zero results before returning.
//
// Notes:
//   - Duplicate-coordinate merging uses a linear search of the current
//     output entries; no hash index is kept.
//   - On any failure after writing into dst began, dst is Reset, so a
//     failed kernel leaves an empty destination, never a partial result.

package coomat

import "fmt"

// Operation name constants for unified error wrapping and reducing
// magic strings.
const (
	opFromDense = "FromDense"
	opToDense   = "ToDense"
	opMul       = "Mul"
	opMulDense  = "MulDense"
	opAdd       = "Add"
	opSub       = "Sub"
	opCopy      = "Copy"
)

// coomatErrorf wraps err with an operation tag, preserving the
// underlying sentinel via %w so callers can still use errors.Is.
// Call only when err != nil.
func coomatErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Copy deep-copies src into dst: header and all entries. dst keeps its
// own capacity, which must hold src's entries.
//
// Errors:
//   - ErrNilMatrix        (nil dst or src).
//   - ErrAliased          (dst == src).
//   - ErrCapacityExceeded (dst.Cap() < src.NNZ()); dst is untouched.
//
// Complexity: Time O(nnz), Space O(1).
func Copy(dst, src *Matrix) error {
	if err := validateUnary(dst, src); err != nil {
		return coomatErrorf(opCopy, err)
	}
	if src.NNZ() > dst.Cap() {
		return coomatErrorf(opCopy, ErrCapacityExceeded)
	}

	dst.rows, dst.cols = src.rows, src.cols
	dst.entries = dst.entries[:len(src.entries)]
	copy(dst.entries, src.entries)

	return nil
}

// Mul computes dst = a × b where a is (m×k) and b is (k×n), both in
// COO form.
//
// Implementation:
//   - Stage 1: validate non-nil operands, disjoint storage, and the
//     inner dimension (a.Cols == b.Rows).
//   - Stage 2: for each entry (i, k, v1) of a, scan b for entries with
//     Row == k; each match (k, j, v2) accumulates v1*v2 into the output
//     entry at (i, j), appending a new entry when the coordinate is not
//     yet present.
//   - Stage 3: prune accumulated entries whose magnitude fell below eps.
//
// Errors:
//   - ErrNilMatrix          (nil dst, a or b).
//   - ErrAliased            (dst shares storage with an input).
//   - ErrDimensionMismatch  (a.Cols != b.Rows).
//   - ErrCapacityExceeded   (distinct output coordinates exceed
//     dst.Cap()); dst is Reset.
//
// Determinism:
//   - Fixed entry-order scans; final values are order-independent sums.
//
// Complexity:
//   - Time O(nnz(a) * nnz(b)) for candidate terms, plus an O(nnz(dst))
//     linear search per term to locate the accumulator. Space O(1)
//     beyond dst.
//
// AI-Hints:
//   - Size dst.Cap() at min(a.Rows()*b.Cols(), nnz(a)*nnz(b)) when the
//     output density is unknown; the kernel fails fast rather than grow.
func Mul(dst, a, b *Matrix, opts ...Option) error {
	o := gatherOptions(opts...)
	if err := validateBinary(dst, a, b); err != nil {
		return coomatErrorf(opMul, err)
	}
	if err := validateMulCompatible(a, b); err != nil {
		return coomatErrorf(opMul, err)
	}

	dst.rows, dst.cols = a.rows, b.cols
	dst.entries = dst.entries[:0]
	for _, ea := range a.entries {
		for _, eb := range b.entries {
			if eb.Row != ea.Col {
				continue
			}
			if k := dst.find(ea.Row, eb.Col); k >= 0 {
				dst.entries[k].Val += ea.Val * eb.Val
				continue
			}
			if err := dst.push(Entry{Row: ea.Row, Col: eb.Col, Val: ea.Val * eb.Val}); err != nil {
				dst.Reset()
				return coomatErrorf(opMul, err)
			}
		}
	}
	dst.prune(o.eps)

	return nil
}

// MulDense computes dst = a × d where a is sparse (m×k) and d is a
// row-major dense buffer of shape rows×cols with rows == a.Cols().
// Zero dense elements contribute no term and no entry.
//
// Errors:
//   - ErrNilMatrix / ErrNilDense  (nil operands).
//   - ErrAliased                  (dst == a).
//   - ErrBadShape                 (rows/cols <= 0 or len(d) != rows*cols).
//   - ErrDimensionMismatch        (a.Cols != rows).
//   - ErrCapacityExceeded         (output coordinates exceed dst.Cap());
//     dst is Reset.
//
// Complexity: Time O(nnz(a) * cols) candidate terms plus the linear
// accumulator search, Space O(1) beyond dst.
func MulDense(dst, a *Matrix, d []float64, rows, cols int, opts ...Option) error {
	o := gatherOptions(opts...)
	if err := validateUnary(dst, a); err != nil {
		return coomatErrorf(opMulDense, err)
	}
	if err := validateDenseBuf(d, rows, cols); err != nil {
		return coomatErrorf(opMulDense, err)
	}
	if a.cols != rows {
		return coomatErrorf(opMulDense, ErrDimensionMismatch)
	}

	dst.rows, dst.cols = a.rows, cols
	dst.entries = dst.entries[:0]
	var j, base int
	var dv float64
	for _, ea := range a.entries {
		base = ea.Col * cols // row of d matching this entry's column
		for j = 0; j < cols; j++ {
			dv = d[base+j]
			if dv == 0 {
				continue
			}
			if k := dst.find(ea.Row, j); k >= 0 {
				dst.entries[k].Val += ea.Val * dv
				continue
			}
			if err := dst.push(Entry{Row: ea.Row, Col: j, Val: ea.Val * dv}); err != nil {
				dst.Reset()
				return coomatErrorf(opMulDense, err)
			}
		}
	}
	dst.prune(o.eps)

	return nil
}

// addSub computes dst = a + sign*b for sign ∈ {+1, -1}; internal
// helper shared by Add and Sub.
//
// Implementation:
//   - Stage 1: validate operands and shape; the operation fails when
//     rows OR cols differ.
//   - Stage 2: copy a into dst in full (capacity-checked before any
//     write), then merge each entry of b by linear search: matching
//     coordinates accumulate in place, new coordinates append.
//   - Stage 3: prune; coordinates that cancel below eps are removed.
func addSub(dst, a, b *Matrix, sign float64, tag string, opts ...Option) error {
	o := gatherOptions(opts...)
	if err := validateBinary(dst, a, b); err != nil {
		return coomatErrorf(tag, err)
	}
	if err := validateSameShape(a, b); err != nil {
		return coomatErrorf(tag, err)
	}
	if a.NNZ() > dst.Cap() {
		return coomatErrorf(tag, ErrCapacityExceeded)
	}

	dst.rows, dst.cols = a.rows, a.cols
	dst.entries = dst.entries[:len(a.entries)]
	copy(dst.entries, a.entries)
	for _, eb := range b.entries {
		if k := dst.find(eb.Row, eb.Col); k >= 0 {
			dst.entries[k].Val += sign * eb.Val
			continue
		}
		if err := dst.push(Entry{Row: eb.Row, Col: eb.Col, Val: sign * eb.Val}); err != nil {
			dst.Reset()
			return coomatErrorf(tag, err)
		}
	}
	dst.prune(o.eps)

	return nil
}

// Add computes the element-wise sum dst = a + b. Shapes must match in
// both dimensions. Entries that cancel to below eps do not appear in
// the result.
//
// Errors:
//   - ErrNilMatrix          (nil dst, a or b).
//   - ErrAliased            (dst shares storage with an input).
//   - ErrDimensionMismatch  (rows or cols differ).
//   - ErrCapacityExceeded   (merged coordinates exceed dst.Cap()).
//
// Complexity: Time O(nnz(a) + nnz(b) * nnz(dst)), Space O(1) beyond dst.
func Add(dst, a, b *Matrix, opts ...Option) error { return addSub(dst, a, b, +1, opAdd, opts...) }

// Sub computes the element-wise difference dst = a - b. Same contract
// as Add.
func Sub(dst, a, b *Matrix, opts ...Option) error { return addSub(dst, a, b, -1, opSub, opts...) }
