// SPDX-License-Identifier: MIT
// Package coomat: dense ↔ sparse conversion kernels. The dense side is
// a caller-owned row-major flat buffer of length rows*cols; element
// (i, j) lives at data[i*cols+j].

package coomat

// FromDense builds a sparse matrix from a row-major dense buffer,
// scanning in row-major order and retaining the elements that pass the
// epsilon threshold.
//
// Threshold policy: by default an element is retained iff v >= eps, so
// negative values are discarded regardless of magnitude. Pass
// WithMagnitudeThreshold to retain iff |v| >= eps instead (the same
// test Prune applies).
//
// Capacity is checked before dst is touched: the survivors are counted
// first, and only when they fit does the second pass populate dst.
// A failed call leaves dst unchanged.
//
// Errors:
//   - ErrNilMatrix / ErrNilDense  (nil destination or buffer).
//   - ErrBadShape                 (rows/cols <= 0 or len(data) != rows*cols).
//   - ErrShapeOverflow            (counted entries exceed rows*cols).
//   - ErrCapacityExceeded         (survivors exceed dst.Cap()).
//
// Complexity: Time O(rows*cols), Space O(1) beyond dst.
func FromDense(dst *Matrix, data []float64, rows, cols int, opts ...Option) error {
	o := gatherOptions(opts...)
	if err := validateNotNil(dst); err != nil {
		return coomatErrorf(opFromDense, err)
	}
	if err := validateDenseBuf(data, rows, cols); err != nil {
		return coomatErrorf(opFromDense, err)
	}

	// Pass 1: count survivors so the capacity bound is known before any
	// mutation of dst.
	nnz := 0
	for _, v := range data {
		if o.keeps(v) {
			nnz++
		}
	}
	if nnz > rows*cols {
		return coomatErrorf(opFromDense, ErrShapeOverflow)
	}
	if nnz > dst.Cap() {
		return coomatErrorf(opFromDense, ErrCapacityExceeded)
	}

	// Pass 2: populate in row-major order.
	dst.rows, dst.cols = rows, cols
	dst.entries = dst.entries[:0]
	var i, j, base int
	for i = 0; i < rows; i++ {
		base = i * cols
		for j = 0; j < cols; j++ {
			if v := data[base+j]; o.keeps(v) {
				dst.entries = append(dst.entries, Entry{Row: i, Col: j, Val: v})
			}
		}
	}

	return nil
}

// ToDense materializes src into a caller-owned row-major buffer of
// length rows*cols. The declared shape must equal the source's header
// exactly. The buffer is zero-filled, then each stored entry is
// scattered to dst[row*cols+col].
//
// Errors:
//   - ErrNilMatrix / ErrNilDense  (nil source or buffer).
//   - ErrBadShape                 (rows/cols <= 0 or len(dst) != rows*cols).
//   - ErrDimensionMismatch        (shape differs from src's header).
//
// Complexity: Time O(rows*cols + nnz), Space O(1).
func ToDense(dst []float64, rows, cols int, src *Matrix) error {
	if err := validateNotNil(src); err != nil {
		return coomatErrorf(opToDense, err)
	}
	if err := validateDenseBuf(dst, rows, cols); err != nil {
		return coomatErrorf(opToDense, err)
	}
	if rows != src.rows || cols != src.cols {
		return coomatErrorf(opToDense, ErrDimensionMismatch)
	}

	for k := range dst {
		dst[k] = 0
	}
	for _, e := range src.entries {
		dst[e.Row*cols+e.Col] = e.Val
	}

	return nil
}
