package field

import "fmt"

// SameShape verifies that two fields have identical shapes in identical
// order. This is the single fatal precondition of the interpolation kernels:
// the data field and its coordinate field must be congruent cell for cell.
//
// The error message names both shapes so a caller can see at a glance which
// dimension disagrees.
// Complexity: O(rank).
func SameShape(a, b *Field) error {
	if a == nil || b == nil {
		return ErrNilField
	}
	if len(a.Data.Shape) != len(b.Data.Shape) {
		return fmt.Errorf("%w: %v vs %v", ErrShapeMismatch, a.Data.Shape, b.Data.Shape)
	}
	for d := range a.Data.Shape {
		if a.Data.Shape[d] != b.Data.Shape[d] {
			return fmt.Errorf("%w: %v vs %v (dimension %d)", ErrShapeMismatch, a.Data.Shape, b.Data.Shape, d)
		}
	}

	return nil
}

// CheckAxisIndex verifies that d addresses a dimension of f.
// Returns ErrAxisIndex otherwise.
func CheckAxisIndex(f *Field, d int) error {
	if f == nil {
		return ErrNilField
	}
	if d < 0 || d >= f.Rank() {
		return fmt.Errorf("%w: %d for rank %d", ErrAxisIndex, d, f.Rank())
	}

	return nil
}
