package field_test

import (
	"testing"

	"bitbucket.org/ctessum/sparse"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/vlevel/field"
)

// denseOf builds a dense array of the given shape filled with vals in
// row-major order. Fails the test on a count mismatch to keep fixtures honest.
func denseOf(t *testing.T, shape []int, vals ...float64) *sparse.DenseArray {
	t.Helper()
	arr := sparse.ZerosDense(shape...)
	require.Len(t, vals, len(arr.Elements), "fixture value count must match shape")
	copy(arr.Elements, vals)

	return arr
}

// axisOf builds a bounds-free axis or fails the test.
func axisOf(t *testing.T, name string, values ...float64) field.Axis {
	t.Helper()
	ax, err := field.NewAxis(name, values, field.WithBounds(field.BoundsOff))
	require.NoError(t, err)

	return ax
}

// fieldOf builds a Field over denseOf data with index axes named by names.
func fieldOf(t *testing.T, name string, shape []int, names []string, vals ...float64) *field.Field {
	t.Helper()
	axes := make([]field.Axis, len(shape))
	for d := range shape {
		ax, err := field.IndexAxis(names[d], shape[d], field.WithBounds(field.BoundsOff))
		require.NoError(t, err)
		axes[d] = ax
	}
	f, err := field.New(name, denseOf(t, shape, vals...), axes)
	require.NoError(t, err)

	return f
}
