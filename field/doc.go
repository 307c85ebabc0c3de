// Package field defines the gridded-data model consumed by every vlevel
// kernel: an N-dimensional Field of float64 samples with an optional
// missing-value mask, one Axis descriptor per dimension, and a structured
// Attributes bag that travels with the data.
//
// What:
//
//   - Field wraps a *sparse.DenseArray (row-major, float64) together with
//     per-dimension Axis metadata and an explicit []bool mask, where true
//     marks a missing cell. A nil mask means "every cell is valid".
//   - Axis carries a name, physical coordinate values, units, and optional
//     cell bounds. Bounds are auto-generated (midpoints) or suppressed
//     according to an explicit per-call option, falling back to a
//     process-wide default policy.
//   - Attributes is a by-value metadata map (units + arbitrary key/values):
//     copying a Field copies its attributes; no reflection is involved.
//
// Why:
//
//   - Vertical remapping needs to reorder dimensions, flatten columns, and
//     rebuild axes without touching the numbers; keeping data, mask and
//     axes in one value makes those transforms total and testable.
//   - Masks as explicit state (instead of sentinel values inside the data)
//     mean a legitimate physical value can never be mistaken for "no data".
//
// Complexity:
//
//   - New / validation:   O(rank)
//   - Clone:              O(n) for n data cells
//   - Transpose:          O(n·rank) time, O(n) memory (single strided copy)
//   - Axis construction:  O(len(values))
//
// Errors:
//
//   - ErrNilData, ErrEmptyShape: data array absent or zero-dimensional.
//   - ErrRankMismatch, ErrAxisLength: axes disagree with the data shape.
//   - ErrBadMaskLength: mask length differs from the element count.
//   - ErrAxisNotFound, ErrAxisIndex: axis lookup by name or position failed.
//   - ErrEmptyAxis, ErrEmptyAxisName: axis constructed without values/name.
//   - ErrBadPermutation: Transpose called with a non-permutation.
//   - ErrShapeMismatch, ErrNilField: validator failures.
package field
