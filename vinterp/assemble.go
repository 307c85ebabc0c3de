package vinterp

import (
	"fmt"
	"sync"

	"bitbucket.org/ctessum/sparse"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/vlevel/field"
)

// Interpolate remaps field a from its source vertical levels onto the
// configured target levels, reading the per-cell vertical coordinate from
// coord (typically a pressure or depth field congruent with a).
//
// Algorithm outline:
//  1. Resolve options; locate the vertical dimension on both inputs (by
//     name, default "z", or by position via WithAxisIndex).
//  2. Orient both inputs vertical-first; after orientation the shapes must
//     agree exactly — the one fatal precondition.
//  3. For every target level, scan every column for the last bracketing
//     source pair and the last exact coordinate hit, then evaluate:
//     exact hit → source sample; valid pair → Kind formula; otherwise the
//     cell is missing. Levels run concurrently on disjoint output slices.
//  4. Assemble the output: a fresh vertical axis named DefaultLevelAxisName
//     carrying the target values and the coordinate's units (bounds
//     generation off, ambient bounds policy untouched), remaining axes
//     preserved, name and attributes taken from a (a's own units override
//     the coordinate's), dimensions restored to a's original order.
//
// The output mask is attached only when at least one cell is missing.
//
// Complexity: O(nlev·nsrc·ncolumns) time, O(output) memory.
func Interpolate(a, coord *field.Field, opts ...Option) (*field.Field, error) {
	cfg, err := resolve(opts)
	if err != nil {
		return nil, err
	}
	if a == nil || coord == nil {
		return nil, ErrNilField
	}

	// Stage 1: locate the vertical dimension on each input independently;
	// the two fields may store their dimensions in different orders.
	zA, zC := cfg.axisIndex, cfg.axisIndex
	if cfg.axisByIndex {
		if err = field.CheckAxisIndex(a, zA); err != nil {
			return nil, fmt.Errorf("vinterp: data: %w", err)
		}
		if err = field.CheckAxisIndex(coord, zC); err != nil {
			return nil, fmt.Errorf("vinterp: coordinate: %w", err)
		}
	} else {
		if zA, err = a.AxisIndex(cfg.axisName); err != nil {
			return nil, fmt.Errorf("vinterp: data: %w", err)
		}
		if zC, err = coord.AxisIndex(cfg.axisName); err != nil {
			return nil, fmt.Errorf("vinterp: coordinate: %w", err)
		}
	}

	// Stage 2: orient vertical-first. Each source level becomes one
	// contiguous block of `stride` cells; column r of level i lives at
	// flat offset i*stride + r.
	perm, err := field.FrontPermutation(a.Rank(), zA)
	if err != nil {
		return nil, fmt.Errorf("vinterp: %w", err)
	}
	av, err := a.Transpose(perm)
	if err != nil {
		return nil, fmt.Errorf("vinterp: %w", err)
	}
	permC, err := field.FrontPermutation(coord.Rank(), zC)
	if err != nil {
		return nil, fmt.Errorf("vinterp: %w", err)
	}
	cv, err := coord.Transpose(permC)
	if err != nil {
		return nil, fmt.Errorf("vinterp: %w", err)
	}
	if err = field.SameShape(av, cv); err != nil {
		return nil, fmt.Errorf("vinterp: %w", err)
	}

	nsrc := av.Shape()[0]
	if nsrc < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrEmptyVertical, nsrc)
	}
	stride := av.Len() / nsrc

	// Stage 3: allocate the output, target levels leading.
	nlev := len(cfg.levels)
	outShape := append([]int{nlev}, av.Shape()[1:]...)
	out := sparse.ZerosDense(outShape...)
	outMask := make([]bool, len(out.Elements))

	// Stage 4: one task per target level; level ilev owns the disjoint
	// slice [ilev*stride, (ilev+1)*stride), so workers never share a cell.
	var (
		g          errgroup.Group
		progressMu sync.Mutex
	)
	g.SetLimit(cfg.workers)
	for ilev := 0; ilev < nlev; ilev++ {
		g.Go(func() error {
			lev := cfg.levels[ilev]
			base := ilev * stride
			for r := 0; r < stride; r++ {
				br := scanColumn(av, cv, r, stride, nsrc, lev)
				if v, ok := evaluate(cfg.kind, lev, br); ok {
					out.Elements[base+r] = v
				} else {
					outMask[base+r] = true
				}
			}
			if cfg.progress != nil {
				progressMu.Lock()
				cfg.progress(ilev, nlev)
				progressMu.Unlock()
			}

			return nil
		})
	}
	if err = g.Wait(); err != nil {
		return nil, err
	}

	// Stage 5: assemble. The new vertical axis carries the target levels
	// and the coordinate's units; bounds generation is switched off for
	// this single call, leaving the ambient policy alone.
	axes := make([]field.Axis, av.Rank())
	axes[0], err = field.NewAxis(cfg.levelAxisName, cfg.levels,
		field.WithUnits(coord.Attrs.Units), field.WithBounds(field.BoundsOff))
	if err != nil {
		return nil, fmt.Errorf("vinterp: %w", err)
	}
	for d := 1; d < av.Rank(); d++ {
		axes[d] = av.Axes[d].Clone()
	}

	attrs := a.Attrs.Clone()
	if attrs.Units == "" {
		attrs.Units = coord.Attrs.Units
	}

	fieldOpts := []field.Option{field.WithAttrs(attrs)}
	if anyMissing(outMask) {
		fieldOpts = append(fieldOpts, field.WithMask(outMask))
	}
	res, err := field.New(a.Name, out, axes, fieldOpts...)
	if err != nil {
		return nil, fmt.Errorf("vinterp: %w", err)
	}

	// Stage 6: hand the result back in the caller's dimension order.
	inv, err := field.InversePermutation(perm)
	if err != nil {
		return nil, fmt.Errorf("vinterp: %w", err)
	}
	res, err = res.Transpose(inv)
	if err != nil {
		return nil, fmt.Errorf("vinterp: %w", err)
	}

	return res, nil
}

// SigmaToPressure remaps a onto pressure levels log-linearly in the supplied
// pressure field p — the climatology shorthand for
//
//	Interpolate(a, p, WithKind(LogLinear), ...)
//
// The log-linear kind is pinned: a WithKind among opts is overridden.
func SigmaToPressure(a, p *field.Field, opts ...Option) (*field.Field, error) {
	merged := make([]Option, 0, len(opts)+1)
	merged = append(merged, opts...)
	merged = append(merged, WithKind(LogLinear))

	return Interpolate(a, p, merged...)
}

// anyMissing reports whether the mask marks at least one cell.
func anyMissing(mask []bool) bool {
	for _, m := range mask {
		if m {
			return true
		}
	}

	return false
}
