package hybrid

import (
	"fmt"

	"bitbucket.org/ctessum/sparse"
	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/vlevel/field"
)

// OutputName is the variable name carried by every reconstructed field.
const OutputName = "P"

// DefaultLevelAxisName names the leading hybrid-level axis of the output.
const DefaultLevelAxisName = "lev"

// config collects ReconstructPressure options.
type config struct {
	levelAxisName string
	levelValues   []float64
}

// Option configures ReconstructPressure.
type Option func(*config)

// WithLevelAxisName renames the leading hybrid-level axis
// (default DefaultLevelAxisName, "lev").
func WithLevelAxisName(name string) Option {
	return func(c *config) { c.levelAxisName = name }
}

// WithLevelValues puts physical coordinate values on the hybrid-level axis
// instead of the default 0..nlev-1 level numbers. Values are copied; the
// length must equal the coefficient count.
func WithLevelValues(values ...float64) Option {
	return func(c *config) { c.levelValues = append([]float64(nil), values...) }
}

// ReconstructPressure builds the pressure field of nlev hybrid levels from
// surface pressure ps and the conversion coefficients, level k holding
//
//	P[k] = b[k]·ps + a[k]·po
//
// across the whole surface grid. The result has shape (nlev, ps shape...),
// is named OutputName, carries ps's units, and repeats ps's mask on every
// level. It slots directly into vinterp.Interpolate as the coordinate field
// once the data field's vertical axis matches the level axis name.
//
// Complexity: O(nlev·n) for n surface cells.
func ReconstructPressure(ps *field.Field, a, b []float64, po float64, opts ...Option) (*field.Field, error) {
	if ps == nil {
		return nil, ErrNilField
	}
	nlev := len(b)
	if nlev == 0 || len(a) != nlev {
		return nil, fmt.Errorf("%w: len(a)=%d len(b)=%d", ErrCoefficientLength, len(a), len(b))
	}

	cfg := config{levelAxisName: DefaultLevelAxisName}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.levelValues != nil && len(cfg.levelValues) != nlev {
		return nil, fmt.Errorf("%w: %d values for %d levels", ErrLevelValues, len(cfg.levelValues), nlev)
	}

	// Level k is the affine image of the whole surface grid.
	n := ps.Len()
	out := sparse.ZerosDense(append([]int{nlev}, ps.Shape()...)...)
	for k := 0; k < nlev; k++ {
		dst := out.Elements[k*n : (k+1)*n]
		copy(dst, ps.Data.Elements)
		floats.Scale(b[k], dst)
		floats.AddConst(a[k]*po, dst)
	}

	var mask []bool
	if ps.Mask != nil {
		mask = make([]bool, len(out.Elements))
		for k := 0; k < nlev; k++ {
			copy(mask[k*n:(k+1)*n], ps.Mask)
		}
	}

	var (
		levAxis field.Axis
		err     error
	)
	if cfg.levelValues != nil {
		levAxis, err = field.NewAxis(cfg.levelAxisName, cfg.levelValues,
			field.WithBounds(field.BoundsOff))
	} else {
		levAxis, err = field.IndexAxis(cfg.levelAxisName, nlev,
			field.WithBounds(field.BoundsOff))
	}
	if err != nil {
		return nil, fmt.Errorf("hybrid: %w", err)
	}

	axes := make([]field.Axis, 0, ps.Rank()+1)
	axes = append(axes, levAxis)
	for _, ax := range ps.Axes {
		axes = append(axes, ax.Clone())
	}

	fieldOpts := []field.Option{
		field.WithAttrs(field.Attributes{Units: ps.Attrs.Units}),
	}
	if mask != nil {
		fieldOpts = append(fieldOpts, field.WithMask(mask))
	}

	p, err := field.New(OutputName, out, axes, fieldOpts...)
	if err != nil {
		return nil, fmt.Errorf("hybrid: %w", err)
	}

	return p, nil
}
