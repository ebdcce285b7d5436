// Package coomat: diagnostic text form of a sparse matrix.
package coomat

import (
	"fmt"
	"io"
	"strings"
)

// String implements fmt.Stringer. The format is stable and relied upon
// by golden-output tests:
//
//	Sparse matrix {rows}x{cols}:
//	({row},{col}) = {value}
//
// with one line per stored entry and the value rendered as fixed-point
// decimal with six fractional digits. Entries appear in storage order.
// Complexity: O(nnz) for string construction.
func (m *Matrix) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Sparse matrix %dx%d:\n", m.rows, m.cols)
	for _, e := range m.entries {
		fmt.Fprintf(&sb, "(%d,%d) = %f\n", e.Row, e.Col, e.Val)
	}

	return sb.String()
}

// Dump writes the String() form of m to w.
// Returns ErrNilMatrix for a nil matrix, or the writer's error.
func Dump(w io.Writer, m *Matrix) error {
	if err := validateNotNil(m); err != nil {
		return err
	}
	_, err := io.WriteString(w, m.String())

	return err
}
