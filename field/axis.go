package field

import (
	"fmt"
	"sync"
)

// BoundsMode selects how NewAxis fills Axis.Bounds.
type BoundsMode uint8

const (
	// BoundsMidpoint generates cell bounds halfway between neighbouring
	// coordinate values; the two end cells extend by half the edge spacing,
	// and a single-value axis gets a unit-width cell around its value.
	BoundsMidpoint BoundsMode = iota

	// BoundsOff leaves Axis.Bounds nil.
	BoundsOff
)

// String implements fmt.Stringer for diagnostics.
func (m BoundsMode) String() string {
	switch m {
	case BoundsMidpoint:
		return "midpoint"
	case BoundsOff:
		return "off"
	default:
		return fmt.Sprintf("BoundsMode(%d)", uint8(m))
	}
}

// autoBounds is the process-wide default bounds policy consulted by NewAxis
// when no explicit WithBounds option is given. Guarded by autoBoundsMu so
// concurrent axis construction observes a consistent value.
var (
	autoBoundsMu sync.RWMutex
	autoBounds   = BoundsMidpoint
)

// AutoBounds returns the current process-wide default bounds policy.
func AutoBounds() BoundsMode {
	autoBoundsMu.RLock()
	defer autoBoundsMu.RUnlock()

	return autoBounds
}

// SetAutoBounds installs mode as the process-wide default and returns a
// restore closure that reinstates the previous value. The closure is designed
// for defer, so the override stays scoped even on panic or early return:
//
//	defer field.SetAutoBounds(field.BoundsOff)()
//
// Prefer the explicit WithBounds option on NewAxis when only a single axis is
// affected; SetAutoBounds exists for callers that must bracket third-party
// code constructing axes on their behalf.
func SetAutoBounds(mode BoundsMode) (restore func()) {
	autoBoundsMu.Lock()
	prev := autoBounds
	autoBounds = mode
	autoBoundsMu.Unlock()

	return func() {
		autoBoundsMu.Lock()
		autoBounds = prev
		autoBoundsMu.Unlock()
	}
}

// Axis describes one dimension of a Field: a named sequence of physical
// coordinate values with optional units and optional cell bounds.
type Axis struct {
	// Name identifies the axis within a Field ("z", "lat", "plev", ...).
	Name string

	// Values holds one physical coordinate per index along the dimension.
	Values []float64

	// Units is the coordinate unit string; empty is tolerated everywhere.
	Units string

	// Bounds optionally holds the [lower, upper] cell interval per value.
	// nil when construction ran under BoundsOff.
	Bounds [][2]float64
}

// axisConfig collects NewAxis options before construction.
type axisConfig struct {
	units    string
	bounds   BoundsMode
	explicit bool // true once WithBounds was applied
}

// AxisOption configures NewAxis.
type AxisOption func(*axisConfig)

// WithUnits sets the units string on the constructed axis.
func WithUnits(units string) AxisOption {
	return func(c *axisConfig) { c.units = units }
}

// WithBounds overrides the process-wide bounds policy for this single call.
// This is the preferred way to suppress or force bounds generation; the
// ambient default is left untouched.
func WithBounds(mode BoundsMode) AxisOption {
	return func(c *axisConfig) {
		c.bounds = mode
		c.explicit = true
	}
}

// NewAxis builds an axis from a name and coordinate values. Values are copied,
// so the caller's slice stays independent. Bounds follow the explicit
// WithBounds option when present, otherwise the AutoBounds default.
//
// Returns ErrEmptyAxisName or ErrEmptyAxis on degenerate input.
// Complexity: O(len(values)).
func NewAxis(name string, values []float64, opts ...AxisOption) (Axis, error) {
	if name == "" {
		return Axis{}, ErrEmptyAxisName
	}
	if len(values) == 0 {
		return Axis{}, fmt.Errorf("axis %q: %w", name, ErrEmptyAxis)
	}

	cfg := axisConfig{bounds: BoundsOff}
	for _, opt := range opts {
		opt(&cfg)
	}
	if !cfg.explicit {
		cfg.bounds = AutoBounds()
	}

	ax := Axis{
		Name:   name,
		Values: append([]float64(nil), values...),
		Units:  cfg.units,
	}
	if cfg.bounds == BoundsMidpoint {
		ax.Bounds = midpointBounds(ax.Values)
	}

	return ax, nil
}

// IndexAxis builds an axis whose values are the indices 0..n-1. Handy for
// dimensions that carry no physical coordinate (ensemble member, hybrid
// level number, ...).
func IndexAxis(name string, n int, opts ...AxisOption) (Axis, error) {
	if n < 1 {
		return Axis{}, fmt.Errorf("axis %q: %w", name, ErrEmptyAxis)
	}
	values := make([]float64, n)
	for i := range values {
		values[i] = float64(i)
	}

	return NewAxis(name, values, opts...)
}

// Len returns the number of coordinate values on the axis.
func (ax Axis) Len() int { return len(ax.Values) }

// Clone returns a deep copy of the axis (values and bounds re-allocated).
// Complexity: O(len(Values)).
func (ax Axis) Clone() Axis {
	out := Axis{
		Name:   ax.Name,
		Values: append([]float64(nil), ax.Values...),
		Units:  ax.Units,
	}
	if ax.Bounds != nil {
		out.Bounds = append([][2]float64(nil), ax.Bounds...)
	}

	return out
}

// midpointBounds derives [lower, upper] intervals between neighbouring
// values; end cells extend by half the edge spacing. A single value gets a
// unit-width cell. Works for ascending and descending axes alike.
func midpointBounds(values []float64) [][2]float64 {
	n := len(values)
	bounds := make([][2]float64, n)
	if n == 1 {
		bounds[0] = [2]float64{values[0] - 0.5, values[0] + 0.5}

		return bounds
	}
	for i := 0; i < n; i++ {
		var lo, hi float64
		if i == 0 {
			lo = values[0] - (values[1]-values[0])/2
		} else {
			lo = (values[i-1] + values[i]) / 2
		}
		if i == n-1 {
			hi = values[n-1] + (values[n-1]-values[n-2])/2
		} else {
			hi = (values[i] + values[i+1]) / 2
		}
		bounds[i] = [2]float64{lo, hi}
	}

	return bounds
}
