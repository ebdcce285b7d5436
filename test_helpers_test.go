// Package coomat_test contains shared test fixtures and helpers.
//
// Purpose:
//   - Provide small, deterministic fixtures for the kernels under test.
//   - Compare matrices as coordinate sets, since kernels guarantee no
//     entry ordering.
package coomat_test

import (
	"testing"

	"github.com/katalvlaran/coomat"
)

// coord keys entriesOf maps; one cell of a matrix.
type coord struct{ row, col int }

// mustNew allocates a rows×cols matrix with the given capacity or
// fails the test.
func mustNew(t *testing.T, rows, cols, capacity int) *coomat.Matrix {
	t.Helper()
	m, err := coomat.New(rows, cols, capacity)
	if err != nil {
		t.Fatalf("New(%d,%d,%d): %v", rows, cols, capacity, err)
	}

	return m
}

// mustFromDense builds a sparse matrix from a row-major flat slice,
// sized to hold every element, or fails the test.
func mustFromDense(t *testing.T, data []float64, rows, cols int, opts ...coomat.Option) *coomat.Matrix {
	t.Helper()
	m := mustNew(t, rows, cols, rows*cols)
	if err := coomat.FromDense(m, data, rows, cols, opts...); err != nil {
		t.Fatalf("FromDense(%dx%d): %v", rows, cols, err)
	}

	return m
}

// entriesOf flattens the stored entries into a coordinate→value map so
// tests can compare results independent of entry order.
func entriesOf(m *coomat.Matrix) map[coord]float64 {
	out := make(map[coord]float64, m.NNZ())
	for _, e := range m.Entries() {
		out[coord{e.Row, e.Col}] = e.Val
	}

	return out
}

// denseOf materializes m into a fresh row-major buffer or fails the test.
func denseOf(t *testing.T, m *coomat.Matrix) []float64 {
	t.Helper()
	buf := make([]float64, m.Rows()*m.Cols())
	if err := coomat.ToDense(buf, m.Rows(), m.Cols(), m); err != nil {
		t.Fatalf("ToDense(%dx%d): %v", m.Rows(), m.Cols(), err)
	}

	return buf
}
