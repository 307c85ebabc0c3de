package field

import "errors"

// Sentinel errors for field construction and transforms.
// Callers match them with errors.Is; contextual detail (shapes, names) is
// added by wrapping with fmt.Errorf("...: %w", Err...) at the raising site.
var (
	// ErrNilField indicates a nil *Field was passed where a value is required.
	ErrNilField = errors.New("field: nil field")

	// ErrNilData indicates the Field was constructed without a data array.
	ErrNilData = errors.New("field: nil data array")

	// ErrEmptyShape indicates the data array has no dimensions at all.
	ErrEmptyShape = errors.New("field: data has no dimensions")

	// ErrRankMismatch indicates the number of axes differs from the data rank.
	ErrRankMismatch = errors.New("field: axis count does not match data rank")

	// ErrAxisLength indicates an axis whose value count differs from the
	// length of the dimension it describes.
	ErrAxisLength = errors.New("field: axis length does not match dimension")

	// ErrBadMaskLength indicates a mask whose length differs from the number
	// of data elements.
	ErrBadMaskLength = errors.New("field: mask length does not match element count")

	// ErrAxisNotFound indicates no axis carries the requested name.
	ErrAxisNotFound = errors.New("field: axis not found")

	// ErrAxisIndex indicates an axis position outside [0, rank).
	ErrAxisIndex = errors.New("field: axis index out of range")

	// ErrEmptyAxis indicates an axis constructed with no coordinate values.
	ErrEmptyAxis = errors.New("field: axis needs at least one value")

	// ErrEmptyAxisName indicates an axis constructed with an empty name.
	ErrEmptyAxisName = errors.New("field: axis name is empty")

	// ErrBadPermutation indicates Transpose received a slice that is not a
	// permutation of the dimension indices.
	ErrBadPermutation = errors.New("field: not a valid axis permutation")

	// ErrShapeMismatch indicates two fields whose shapes were required to be
	// identical but are not.
	ErrShapeMismatch = errors.New("field: shape mismatch")
)
