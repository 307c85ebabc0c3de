package field

import (
	"fmt"

	"bitbucket.org/ctessum/sparse"
)

// Field is an N-dimensional gridded variable: row-major float64 data, one
// axis per dimension, an optional missing-value mask, and attribute metadata.
//
// Data and Mask are indexed identically: the cell at flat offset i is missing
// when Mask != nil && Mask[i]. Field never encodes "missing" inside Data
// itself, so every float64 value — including -1 — is a legitimate sample.
type Field struct {
	// Name identifies the variable ("TMP", "P", ...). Preserved verbatim by
	// every transform in this module.
	Name string

	// Data holds the samples. Shape and row-major layout come from the
	// embedded dense array.
	Data *sparse.DenseArray

	// Mask marks missing cells (true = missing). nil means all cells valid.
	Mask []bool

	// Axes describes each dimension, in storage order.
	Axes []Axis

	// Attrs carries units and arbitrary metadata; copied by value between
	// fields, never shared by reference after Clone.
	Attrs Attributes
}

// Option configures New.
type Option func(*Field)

// WithMask attaches a missing-value mask. Length must equal the data element
// count; New validates that.
func WithMask(mask []bool) Option {
	return func(f *Field) { f.Mask = mask }
}

// WithAttrs attaches attribute metadata (stored as given; clone first if the
// caller keeps mutating its copy).
func WithAttrs(attrs Attributes) Option {
	return func(f *Field) { f.Attrs = attrs }
}

// New assembles a Field and validates that data, axes and mask agree.
//
// Returns:
//   - ErrNilData / ErrEmptyShape on a missing or zero-dimensional array,
//   - ErrRankMismatch when len(axes) != rank,
//   - ErrAxisLength when an axis disagrees with its dimension length,
//   - ErrBadMaskLength when a mask of the wrong size was attached.
//
// Complexity: O(rank) — no data is copied or scanned.
func New(name string, data *sparse.DenseArray, axes []Axis, opts ...Option) (*Field, error) {
	if data == nil {
		return nil, ErrNilData
	}
	if len(data.Shape) == 0 {
		return nil, ErrEmptyShape
	}

	f := &Field{Name: name, Data: data, Axes: axes}
	for _, opt := range opts {
		opt(f)
	}

	if len(axes) != len(data.Shape) {
		return nil, fmt.Errorf("%w: %d axes for rank %d", ErrRankMismatch, len(axes), len(data.Shape))
	}
	for d, ax := range axes {
		if ax.Len() != data.Shape[d] {
			return nil, fmt.Errorf("%w: axis %q has %d values, dimension %d has length %d",
				ErrAxisLength, ax.Name, ax.Len(), d, data.Shape[d])
		}
	}
	if f.Mask != nil && len(f.Mask) != len(data.Elements) {
		return nil, fmt.Errorf("%w: mask %d, elements %d", ErrBadMaskLength, len(f.Mask), len(data.Elements))
	}

	return f, nil
}

// Rank returns the number of dimensions.
func (f *Field) Rank() int { return len(f.Data.Shape) }

// Shape returns a copy of the dimension lengths.
func (f *Field) Shape() []int {
	return append([]int(nil), f.Data.Shape...)
}

// Len returns the total number of cells.
func (f *Field) Len() int { return len(f.Data.Elements) }

// AxisIndex resolves an axis position by name.
// Returns ErrAxisNotFound when no axis carries the name.
// Complexity: O(rank).
func (f *Field) AxisIndex(name string) (int, error) {
	for d, ax := range f.Axes {
		if ax.Name == name {
			return d, nil
		}
	}

	return 0, fmt.Errorf("%w: %q (have %s)", ErrAxisNotFound, name, axisNames(f.Axes))
}

// IsMissing reports whether the cell at flat offset i is masked out.
// Offsets outside the data range are reported missing rather than panicking,
// so scan loops can stay branch-light.
func (f *Field) IsMissing(i int) bool {
	if i < 0 || i >= len(f.Data.Elements) {
		return true
	}

	return f.Mask != nil && f.Mask[i]
}

// SetMissing masks the cell at flat offset i, allocating the mask lazily.
func (f *Field) SetMissing(i int) {
	if i < 0 || i >= len(f.Data.Elements) {
		return
	}
	if f.Mask == nil {
		f.Mask = make([]bool, len(f.Data.Elements))
	}
	f.Mask[i] = true
}

// MissingCount returns the number of masked cells.
// Complexity: O(n).
func (f *Field) MissingCount() int {
	count := 0
	for _, m := range f.Mask {
		if m {
			count++
		}
	}

	return count
}

// Clone returns a deep copy: data, mask, axes and attributes are all
// re-allocated, so the clone and the original never alias.
// Complexity: O(n).
func (f *Field) Clone() *Field {
	out := &Field{
		Name:  f.Name,
		Data:  f.Data.Copy(),
		Axes:  cloneAxes(f.Axes),
		Attrs: f.Attrs.Clone(),
	}
	if f.Mask != nil {
		out.Mask = append([]bool(nil), f.Mask...)
	}

	return out
}

// cloneAxes deep-copies an axis slice.
func cloneAxes(axes []Axis) []Axis {
	out := make([]Axis, len(axes))
	for d, ax := range axes {
		out[d] = ax.Clone()
	}

	return out
}

// axisNames renders the axis name list for error messages.
func axisNames(axes []Axis) string {
	names := "["
	for d, ax := range axes {
		if d > 0 {
			names += " "
		}
		names += ax.Name
	}

	return names + "]"
}
