package vinterp_test

import (
	"testing"

	"bitbucket.org/ctessum/sparse"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/vlevel/field"
)

// column builds a rank-1 field over a vertical axis named "z".
func column(t *testing.T, name string, vals []float64, opts ...field.Option) *field.Field {
	t.Helper()
	data := sparse.ZerosDense(len(vals))
	copy(data.Elements, vals)
	z, err := field.IndexAxis("z", len(vals), field.WithBounds(field.BoundsOff))
	require.NoError(t, err)
	f, err := field.New(name, data, []field.Axis{z}, opts...)
	require.NoError(t, err)

	return f
}

// buildField builds a field of the given shape with named index axes and
// row-major values.
func buildField(t *testing.T, name string, shape []int, axisNames []string, vals []float64, opts ...field.Option) *field.Field {
	t.Helper()
	data := sparse.ZerosDense(shape...)
	require.Len(t, vals, len(data.Elements), "fixture value count must match shape")
	copy(data.Elements, vals)
	axes := make([]field.Axis, len(shape))
	for d := range shape {
		ax, err := field.IndexAxis(axisNames[d], shape[d], field.WithBounds(field.BoundsOff))
		require.NoError(t, err)
		axes[d] = ax
	}
	f, err := field.New(name, data, axes, opts...)
	require.NoError(t, err)

	return f
}

// grid3 builds a (nt, nz, ny) field with axes (t, z, y) filled by fn.
func grid3(t *testing.T, name string, nt, nz, ny int, fn func(it, iz, iy int) float64) *field.Field {
	t.Helper()
	data := sparse.ZerosDense(nt, nz, ny)
	for it := 0; it < nt; it++ {
		for iz := 0; iz < nz; iz++ {
			for iy := 0; iy < ny; iy++ {
				data.Set(fn(it, iz, iy), it, iz, iy)
			}
		}
	}
	axes := make([]field.Axis, 3)
	for d, spec := range []struct {
		name string
		n    int
	}{{"t", nt}, {"z", nz}, {"y", ny}} {
		ax, err := field.IndexAxis(spec.name, spec.n, field.WithBounds(field.BoundsOff))
		require.NoError(t, err)
		axes[d] = ax
	}
	f, err := field.New(name, data, axes)
	require.NoError(t, err)

	return f
}
