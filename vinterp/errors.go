package vinterp

import "errors"

var (
	// ErrNilField is returned when the data field or the coordinate field
	// is nil.
	ErrNilField = errors.New("vinterp: nil field")

	// ErrUnknownKind is returned when an interpolation Kind outside the
	// declared enum reaches the kernel.
	ErrUnknownKind = errors.New("vinterp: unknown interpolation kind")

	// ErrNoLevels is returned when the caller supplies an explicitly empty
	// target level list. (Omitting WithLevels entirely selects the 17
	// standard pressure levels instead.)
	ErrNoLevels = errors.New("vinterp: no target levels")

	// ErrNonPositiveLevel is returned eagerly when a log-linear run is
	// asked for a target level ≤ 0, where the logarithm is undefined.
	ErrNonPositiveLevel = errors.New("vinterp: log-linear target level must be positive")

	// ErrEmptyVertical is returned when the vertical axis carries fewer
	// than two source levels, so no bracketing pair can ever exist.
	ErrEmptyVertical = errors.New("vinterp: vertical axis needs at least two source levels")

	// ErrBadWorkers is returned when WithWorkers is given a count below one.
	ErrBadWorkers = errors.New("vinterp: worker count must be positive")
)
