// Package coomat: the COO container itself. Matrix is a concrete,
// fixed-capacity coordinate-list representation storing each non-zero
// value alongside its row and column index in a flat entry slice.
package coomat

// Entry is one stored non-zero: the value at (Row, Col).
// Entries are semantically unordered; kernels give no ordering
// guarantee over the stored sequence.
type Entry struct {
	Row int
	Col int
	Val float64
}

// Matrix is a sparse matrix in coordinate (COO) form with a fixed
// entry capacity. The header (rows, cols) lives in explicit fields;
// entries holds the current non-zeros with len == NNZ() and
// cap == Cap(), fixed at allocation. No operation ever grows cap.
type Matrix struct {
	rows, cols int
	entries    []Entry
}

// New allocates a rows×cols sparse matrix able to hold at most
// capacity entries. Returns ErrBadShape when rows or cols is
// non-positive or capacity is negative.
// Complexity: O(1) time, O(capacity) memory.
func New(rows, cols, capacity int) (*Matrix, error) {
	if rows <= 0 || cols <= 0 || capacity < 0 {
		return nil, ErrBadShape
	}

	return &Matrix{rows: rows, cols: cols, entries: make([]Entry, 0, capacity)}, nil
}

// Rows returns the number of rows. Complexity: O(1).
func (m *Matrix) Rows() int { return m.rows }

// Cols returns the number of columns. Complexity: O(1).
func (m *Matrix) Cols() int { return m.cols }

// NNZ returns the number of stored non-zero entries. Complexity: O(1).
func (m *Matrix) NNZ() int { return len(m.entries) }

// Cap returns the fixed entry capacity of the backing storage.
// Complexity: O(1).
func (m *Matrix) Cap() int { return cap(m.entries) }

// Entry returns the k-th stored entry. Returns ErrOutOfRange when
// k < 0 or k >= NNZ(). The position of a given coordinate is not
// stable across mutating operations.
// Complexity: O(1).
func (m *Matrix) Entry(k int) (Entry, error) {
	if k < 0 || k >= len(m.entries) {
		return Entry{}, ErrOutOfRange
	}

	return m.entries[k], nil
}

// Entries returns a copy of the stored entries. The copy is
// independent of the matrix; mutating it has no effect on m.
// Complexity: O(nnz) time and memory.
func (m *Matrix) Entries() []Entry {
	out := make([]Entry, len(m.entries))
	copy(out, m.entries)

	return out
}

// At retrieves the value at (i, j), returning 0 when no entry is
// stored there. Returns ErrOutOfRange for indices outside the header
// dimensions.
// Complexity: O(nnz) linear scan; the coordinate format keeps no index.
func (m *Matrix) At(i, j int) (float64, error) {
	if i < 0 || i >= m.rows || j < 0 || j >= m.cols {
		return 0, ErrOutOfRange
	}
	if k := m.find(i, j); k >= 0 {
		return m.entries[k].Val, nil
	}

	return 0, nil
}

// Clone returns a deep copy of the matrix with the same dimensions,
// entries and capacity. The clone is fully independent of the
// original.
// Complexity: O(cap) memory, O(nnz) copy.
func (m *Matrix) Clone() *Matrix {
	out := &Matrix{
		rows:    m.rows,
		cols:    m.cols,
		entries: make([]Entry, len(m.entries), cap(m.entries)),
	}
	copy(out.entries, m.entries)

	return out
}

// Reset empties the matrix: zero entries, zero dimensions. Capacity is
// retained. Kernels call Reset on a destination when a failure occurs
// after writing began, so a failed operation never leaves a partial
// result behind.
// Complexity: O(1).
func (m *Matrix) Reset() {
	m.rows, m.cols = 0, 0
	m.entries = m.entries[:0]
}

// Delete removes the k-th stored entry by overwriting it with the
// current last entry and shrinking the count (swap-remove). Entry
// order is not preserved. Returns ErrOutOfRange for an invalid
// position.
// Complexity: O(1).
func (m *Matrix) Delete(k int) error {
	if k < 0 || k >= len(m.entries) {
		return ErrOutOfRange
	}
	last := len(m.entries) - 1
	m.entries[k] = m.entries[last]
	m.entries = m.entries[:last]

	return nil
}

// find returns the position of the entry at (i, j), or -1 when absent.
// Linear search: the coordinate format trades lookup speed for
// simplicity and zero auxiliary memory.
func (m *Matrix) find(i, j int) int {
	for k := range m.entries {
		if m.entries[k].Row == i && m.entries[k].Col == j {
			return k
		}
	}

	return -1
}

// push appends an entry, enforcing the fixed capacity.
// Returns ErrCapacityExceeded when the storage is full.
func (m *Matrix) push(e Entry) error {
	if len(m.entries) == cap(m.entries) {
		return ErrCapacityExceeded
	}
	m.entries = append(m.entries, e)

	return nil
}
