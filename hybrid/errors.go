package hybrid

import "errors"

var (
	// ErrNilField indicates a nil surface-pressure field.
	ErrNilField = errors.New("hybrid: nil surface-pressure field")

	// ErrCoefficientLength indicates A and B coefficient slices that are
	// empty or of unequal length.
	ErrCoefficientLength = errors.New("hybrid: coefficient slices must be non-empty and of equal length")

	// ErrLevelValues indicates WithLevelValues supplied a slice whose length
	// differs from the coefficient count.
	ErrLevelValues = errors.New("hybrid: level values must match the coefficient count")
)
