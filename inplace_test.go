// Package coomat_test: in-place mutation tests for Transpose, Prune
// and Scale.
package coomat_test

import (
	"testing"

	"github.com/katalvlaran/coomat"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestTranspose_SwapsHeaderAndCoordinates verifies a single transpose
// against the hand-flipped coordinate set.
func TestTranspose_SwapsHeaderAndCoordinates(t *testing.T) {
	m := mustFromDense(t, []float64{1, 0, 2, 0, 3, 0}, 2, 3)

	require.NoError(t, m.Transpose())
	assert.Equal(t, 3, m.Rows())
	assert.Equal(t, 2, m.Cols())
	want := map[coord]float64{
		{0, 0}: 1,
		{2, 0}: 2,
		{1, 1}: 3,
	}
	assert.Equal(t, want, entriesOf(m))
}

// TestTranspose_Involution: transposing twice restores rows, cols and
// the full coordinate/value set.
func TestTranspose_Involution(t *testing.T) {
	m := mustFromDense(t, []float64{1, 0, 2, 0, 3, 0, 0, 0, 4, 5, 0, 0}, 3, 4)
	before := entriesOf(m)

	require.NoError(t, m.Transpose())
	require.NoError(t, m.Transpose())
	assert.Equal(t, 3, m.Rows())
	assert.Equal(t, 4, m.Cols())
	assert.Equal(t, before, entriesOf(m))
}

// TestTranspose_NilReceiver is the only failure mode.
func TestTranspose_NilReceiver(t *testing.T) {
	var m *coomat.Matrix
	assert.ErrorIs(t, m.Transpose(), coomat.ErrNilMatrix)
}

// TestPrune_RemovesNearZero seeds sub-threshold entries (via a zero
// epsilon at ingestion) and checks they are all removed, including the
// case where the swapped-in last entry is itself near-zero.
func TestPrune_RemovesNearZero(t *testing.T) {
	data := []float64{
		0.0001, 5, -0.0002,
		3, 0.0004, -0.0003,
	}
	m := mustFromDense(t, data, 2, 3, coomat.WithEpsilon(0), coomat.WithMagnitudeThreshold())
	require.Equal(t, 6, m.NNZ(), "zero epsilon must ingest every element")

	m.Prune()
	want := map[coord]float64{
		{0, 1}: 5,
		{1, 0}: 3,
	}
	assert.Equal(t, want, entriesOf(m))
}

// TestPrune_Idempotent: a second prune changes nothing.
func TestPrune_Idempotent(t *testing.T) {
	data := []float64{0.0001, 5, 3, 0.0002}
	m := mustFromDense(t, data, 2, 2, coomat.WithEpsilon(0), coomat.WithMagnitudeThreshold())

	m.Prune()
	count := m.NNZ()
	set := entriesOf(m)

	m.Prune()
	assert.Equal(t, count, m.NNZ())
	assert.Equal(t, set, entriesOf(m))
}

// TestPrune_CustomEpsilon: a larger threshold removes more.
func TestPrune_CustomEpsilon(t *testing.T) {
	m := mustFromDense(t, []float64{0.5, 5, 3, 0.25}, 2, 2)
	require.Equal(t, 4, m.NNZ())

	m.Prune(coomat.WithEpsilon(1.0))
	want := map[coord]float64{
		{0, 1}: 5,
		{1, 0}: 3,
	}
	assert.Equal(t, want, entriesOf(m))
}

// TestScale covers plain scaling, threshold-crossing shrink and the
// alpha = 0 wipe.
func TestScale(t *testing.T) {
	t.Run("doubles values", func(t *testing.T) {
		m := mustFromDense(t, []float64{1, 0, 0, 4}, 2, 2)
		require.NoError(t, m.Scale(2))
		want := map[coord]float64{
			{0, 0}: 2,
			{1, 1}: 8,
		}
		assert.Equal(t, want, entriesOf(m))
	})

	t.Run("small alpha prunes", func(t *testing.T) {
		m := mustFromDense(t, []float64{0.01, 0, 0, 4}, 2, 2)
		require.NoError(t, m.Scale(0.01)) // 0.01*0.01 = 1e-4 < eps
		want := map[coord]float64{
			{1, 1}: 0.04,
		}
		assert.Equal(t, want, entriesOf(m))
	})

	t.Run("zero alpha empties", func(t *testing.T) {
		m := mustFromDense(t, []float64{1, 2, 3, 4}, 2, 2)
		require.NoError(t, m.Scale(0))
		assert.Equal(t, 0, m.NNZ())
	})

	t.Run("nil receiver", func(t *testing.T) {
		var m *coomat.Matrix
		assert.ErrorIs(t, m.Scale(2), coomat.ErrNilMatrix)
	})
}

// TestWithEpsilon_PanicsOnNonsense: option constructors guard
// programmer errors with panics.
func TestWithEpsilon_PanicsOnNonsense(t *testing.T) {
	assert.Panics(t, func() { coomat.WithEpsilon(-1) })
}
