package vinterp_test

import (
	"math"
	"sort"
	"testing"

	"bitbucket.org/ctessum/sparse"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/vlevel/field"
	"github.com/katalvlaran/vlevel/vinterp"
)

// messyGrid builds a (nt, nz, ny) data/coordinate pair with per-column
// coordinate offsets and scattered masks on both inputs, so the parallel
// equivalence test exercises every kernel branch.
func messyGrid(t *testing.T, nt, nz, ny int) (a, p *field.Field) {
	t.Helper()

	aData := sparse.ZerosDense(nt, nz, ny)
	pData := sparse.ZerosDense(nt, nz, ny)
	aMask := make([]bool, len(aData.Elements))
	pMask := make([]bool, len(pData.Elements))

	idx := 0
	for it := 0; it < nt; it++ {
		for iz := 0; iz < nz; iz++ {
			for iy := 0; iy < ny; iy++ {
				aData.Elements[idx] = math.Sin(float64(idx)) * 50
				pData.Elements[idx] = float64(iz+1)*1000 + float64((it*7+iy*13)%11)*37
				aMask[idx] = (it+iz+iy)%17 == 3
				pMask[idx] = (it*31+iz*5+iy)%23 == 7
				idx++
			}
		}
	}

	axes := func() []field.Axis {
		out := make([]field.Axis, 3)
		for d, spec := range []struct {
			name string
			n    int
		}{{"t", nt}, {"z", nz}, {"y", ny}} {
			ax, err := field.IndexAxis(spec.name, spec.n, field.WithBounds(field.BoundsOff))
			require.NoError(t, err)
			out[d] = ax
		}
		return out
	}

	a, err := field.New("ta", aData, axes(), field.WithMask(aMask))
	require.NoError(t, err)
	p, err = field.New("p", pData, axes(), field.WithMask(pMask))
	require.NoError(t, err)

	return a, p
}

// TestInterpolate_ParallelMatchesSequential: level workers write disjoint
// slices, so any worker count must produce bit-identical output.
func TestInterpolate_ParallelMatchesSequential(t *testing.T) {
	a, p := messyGrid(t, 3, 24, 10)
	levels := []float64{377, 1500, 5500, 12500, 23500, 50000}

	for _, kind := range []vinterp.Kind{vinterp.Linear, vinterp.LogLinear} {
		seq, err := vinterp.Interpolate(a, p,
			vinterp.WithKind(kind), vinterp.WithLevels(levels...),
			vinterp.WithWorkers(1))
		require.NoError(t, err)

		par, err := vinterp.Interpolate(a, p,
			vinterp.WithKind(kind), vinterp.WithLevels(levels...),
			vinterp.WithWorkers(8))
		require.NoError(t, err)

		assert.Equal(t, seq.Shape(), par.Shape(), "kind %s", kind)
		assert.Equal(t, seq.Data.Elements, par.Data.Elements, "kind %s", kind)
		assert.Equal(t, seq.Mask, par.Mask, "kind %s", kind)
	}
}

// TestInterpolate_ProgressCounts: the hook fires exactly once per level
// with the right total, at any worker count.
func TestInterpolate_ProgressCounts(t *testing.T) {
	a, p := messyGrid(t, 2, 12, 4)
	levels := []float64{1500, 2500, 4500, 6500, 8500, 11500}

	var calls [][2]int
	_, err := vinterp.Interpolate(a, p,
		vinterp.WithLevels(levels...),
		vinterp.WithWorkers(3),
		vinterp.WithProgress(func(level, total int) {
			calls = append(calls, [2]int{level, total})
		}))
	require.NoError(t, err)

	require.Len(t, calls, len(levels))
	seen := make([]int, 0, len(calls))
	for _, c := range calls {
		assert.Equal(t, len(levels), c[1])
		seen = append(seen, c[0])
	}
	sort.Ints(seen)
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5}, seen)
}

// TestInterpolate_ProgressSequentialOrder: one worker reports levels in
// declaration order.
func TestInterpolate_ProgressSequentialOrder(t *testing.T) {
	a, p := messyGrid(t, 1, 8, 2)

	var order []int
	_, err := vinterp.Interpolate(a, p,
		vinterp.WithLevels(2500, 4500, 6500),
		vinterp.WithWorkers(1),
		vinterp.WithProgress(func(level, _ int) {
			order = append(order, level)
		}))
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, order)
}

// TestInterpolate_InputsUntouched: the kernel must never write through to
// its inputs, whatever the worker count.
func TestInterpolate_InputsUntouched(t *testing.T) {
	a, p := messyGrid(t, 2, 10, 3)
	aBefore := append([]float64(nil), a.Data.Elements...)
	pBefore := append([]float64(nil), p.Data.Elements...)
	aMaskBefore := append([]bool(nil), a.Mask...)

	_, err := vinterp.Interpolate(a, p,
		vinterp.WithLevels(1500, 4500, 9500), vinterp.WithWorkers(4))
	require.NoError(t, err)

	assert.Equal(t, aBefore, a.Data.Elements)
	assert.Equal(t, pBefore, p.Data.Elements)
	assert.Equal(t, aMaskBefore, a.Mask)
}
