package vinterp

import "fmt"

// Kind selects the interpolation formula applied inside a bracket.
type Kind uint8

const (
	// Linear interpolates proportionally to the coordinate difference:
	//
	//	value = (lev-Cbel)/(Cabv-Cbel) · (Aabv-Abel) + Abel
	Linear Kind = iota

	// LogLinear interpolates proportionally to the logarithm of the
	// coordinate ratio, the natural choice for pressure-like coordinates
	// that decay quasi-exponentially with height:
	//
	//	value = ln(lev/Cbel)/ln(Cabv/Cbel) · (Aabv-Abel) + Abel
	LogLinear
)

// String implements fmt.Stringer for diagnostics and CLI flags.
func (k Kind) String() string {
	switch k {
	case Linear:
		return "linear"
	case LogLinear:
		return "log-linear"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// ParseKind maps the String() forms (plus the bare "log" shorthand) back to
// a Kind, for flag and config parsing.
func ParseKind(s string) (Kind, error) {
	switch s {
	case "linear":
		return Linear, nil
	case "log-linear", "log":
		return LogLinear, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownKind, s)
	}
}

// Progress observes the level loop: it is invoked exactly once per target
// level, after that level's cells are written, with the completed level's
// index and the total level count. Invocations are serialized, so the hook
// needs no locking of its own; with more than one worker the indices arrive
// in completion order, not level order.
type Progress func(level, total int)

const (
	// DefaultAxisName is the vertical axis looked up on the inputs when no
	// WithAxisName / WithAxisIndex option is given.
	DefaultAxisName = "z"

	// DefaultLevelAxisName names the freshly built vertical axis of the
	// output field.
	DefaultLevelAxisName = "plev"
)

// defaultLevels are the 17 standard pressure levels (Pa) used when the
// caller does not pick target levels, surface to upper stratosphere.
var defaultLevels = []float64{
	100000, 92500, 85000, 70000, 60000, 50000, 40000, 30000, 25000,
	20000, 15000, 10000, 7000, 5000, 3000, 2000, 1000,
}

// DefaultLevels returns a fresh copy of the 17 standard pressure levels in
// pascals. Callers may reorder or mutate the returned slice freely.
func DefaultLevels() []float64 {
	return append([]float64(nil), defaultLevels...)
}
