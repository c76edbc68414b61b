package matrix_test

import (
	"testing"

	"github.com/katalvlaran/lvlath-sparse/matrix"
	"github.com/stretchr/testify/require"
)

// TestOptionsDefaults verifies documented defaults.
func TestOptionsDefaults(t *testing.T) {
	o := matrix.NewOptions()
	require.Equal(t, matrix.DefaultOverwrite, o.Overwrite())
	require.Equal(t, matrix.DefaultDegree, o.Degree())
}

// TestOptionsLastWriterWins verifies setters apply in order.
func TestOptionsLastWriterWins(t *testing.T) {
	o := matrix.NewOptions(matrix.WithOverwrite(), matrix.WithInsertOnly())
	require.False(t, o.Overwrite())

	o = matrix.NewOptions(matrix.WithInsertOnly(), matrix.WithOverwrite(), matrix.WithDegree(4), matrix.WithDegree(8))
	require.True(t, o.Overwrite())
	require.Equal(t, 8, o.Degree())
}

// TestWithDegreePanics ensures nonsensical degrees are rejected at construction.
func TestWithDegreePanics(t *testing.T) {
	require.PanicsWithValue(t, "matrix: WithDegree: degree must be >= 2", func() {
		matrix.WithDegree(1)
	})
	require.NotPanics(t, func() { matrix.WithDegree(2) })
}

// TestOptionsPropagate ensures derived matrices inherit the receiver's options.
func TestOptionsPropagate(t *testing.T) {
	m := matrix.New[int](matrix.WithOverwrite(), matrix.WithDegree(3))
	m.Set(0, 1, 1)

	for name, d := range map[string]*matrix.Sparse[int]{
		"clone":     m.Clone(),
		"transpose": m.Transpose(),
		"mul":       m.Mul(m.Transpose()),
	} {
		require.True(t, d.Options().Overwrite(), name)
		require.Equal(t, 3, d.Options().Degree(), name)
	}
}
