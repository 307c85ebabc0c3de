package field

import (
	"fmt"

	"bitbucket.org/ctessum/sparse"
)

// Transpose returns a new Field with dimensions reordered so that output
// dimension d is input dimension perm[d] (the numpy convention). Data, mask
// and axes are all permuted together; the receiver is left untouched.
//
// A vertical-remapping kernel uses this twice: once to bring the vertical
// axis to the front, and once with the inverse permutation to hand the result
// back in the caller's original dimension order.
//
// Returns ErrBadPermutation unless perm is a permutation of 0..rank-1.
// Complexity: O(n·rank) time, O(n) memory.
func (f *Field) Transpose(perm []int) (*Field, error) {
	if f == nil {
		return nil, ErrNilField
	}
	r := f.Rank()
	if err := checkPermutation(perm, r); err != nil {
		return nil, err
	}

	oldShape := f.Data.Shape
	newShape := make([]int, r)
	for d, p := range perm {
		newShape[d] = oldShape[p]
	}

	// Row-major strides of the source layout.
	oldStride := make([]int, r)
	stride := 1
	for d := r - 1; d >= 0; d-- {
		oldStride[d] = stride
		stride *= oldShape[d]
	}

	out := sparse.ZerosDense(newShape...)
	var mask []bool
	if f.Mask != nil {
		mask = make([]bool, len(f.Mask))
	}

	// Walk the destination in storage order with an odometer index and map
	// each cell back to its source offset through the permuted strides.
	idx := make([]int, r)
	for off := 0; off < len(out.Elements); off++ {
		src := 0
		for d := 0; d < r; d++ {
			src += idx[d] * oldStride[perm[d]]
		}
		out.Elements[off] = f.Data.Elements[src]
		if mask != nil {
			mask[off] = f.Mask[src]
		}
		for d := r - 1; d >= 0; d-- {
			idx[d]++
			if idx[d] < newShape[d] {
				break
			}
			idx[d] = 0
		}
	}

	axes := make([]Axis, r)
	for d, p := range perm {
		axes[d] = f.Axes[p].Clone()
	}

	return &Field{Name: f.Name, Data: out, Mask: mask, Axes: axes, Attrs: f.Attrs.Clone()}, nil
}

// FrontPermutation returns the permutation that moves dimension d to the
// front and keeps the remaining dimensions in their original relative order.
// Feed the result to Transpose; undo with InversePermutation.
//
// Returns ErrAxisIndex when d does not address a dimension of a rank-sized
// field.
func FrontPermutation(rank, d int) ([]int, error) {
	if rank < 1 {
		return nil, fmt.Errorf("%w: rank %d", ErrAxisIndex, rank)
	}
	if d < 0 || d >= rank {
		return nil, fmt.Errorf("%w: %d for rank %d", ErrAxisIndex, d, rank)
	}

	perm := make([]int, 0, rank)
	perm = append(perm, d)
	for p := 0; p < rank; p++ {
		if p != d {
			perm = append(perm, p)
		}
	}

	return perm, nil
}

// InversePermutation returns the permutation that undoes perm, so that
// f.Transpose(perm) followed by Transpose(InversePermutation(perm)) restores
// the original dimension order.
//
// Returns ErrBadPermutation unless perm is a permutation of 0..len(perm)-1.
func InversePermutation(perm []int) ([]int, error) {
	if err := checkPermutation(perm, len(perm)); err != nil {
		return nil, err
	}

	inv := make([]int, len(perm))
	for d, p := range perm {
		inv[p] = d
	}

	return inv, nil
}

// checkPermutation validates that perm is a permutation of 0..rank-1.
func checkPermutation(perm []int, rank int) error {
	if len(perm) != rank {
		return fmt.Errorf("%w: got %d entries for rank %d", ErrBadPermutation, len(perm), rank)
	}
	seen := make([]bool, rank)
	for _, p := range perm {
		if p < 0 || p >= rank || seen[p] {
			return fmt.Errorf("%w: %v", ErrBadPermutation, perm)
		}
		seen[p] = true
	}

	return nil
}
