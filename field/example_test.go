package field_test

import (
	"fmt"

	"bitbucket.org/ctessum/sparse"

	"github.com/katalvlaran/vlevel/field"
)

// ExampleNew — Scenario: wrap a 2x3 grid of air temperatures.
//
// A Field needs three ingredients: the dense data block, one axis per
// dimension, and (optionally) attributes. Nothing is copied, so building a
// Field over an existing array is cheap.
func ExampleNew() {
	data := sparse.ZerosDense(2, 3)
	for i := range data.Elements {
		data.Elements[i] = 273.15 + float64(i)
	}

	z, _ := field.NewAxis("z", []float64{1000, 500},
		field.WithUnits("hPa"), field.WithBounds(field.BoundsOff))
	y, _ := field.IndexAxis("y", 3, field.WithBounds(field.BoundsOff))

	ta, _ := field.New("ta", data, []field.Axis{z, y},
		field.WithAttrs(field.Attributes{Units: "K"}))

	fmt.Println(ta.Name, ta.Shape(), ta.Attrs.Units)
	// Output: ta [2 3] K
}

// ExampleField_Transpose — Scenario: bring the vertical axis to the front.
//
// Remapping kernels want the vertical dimension leading so each level is one
// contiguous slice. Transpose reorders data, mask and axes together.
func ExampleField_Transpose() {
	data := sparse.ZerosDense(2, 3)
	for i := range data.Elements {
		data.Elements[i] = float64(i)
	}
	y, _ := field.IndexAxis("y", 2, field.WithBounds(field.BoundsOff))
	z, _ := field.IndexAxis("z", 3, field.WithBounds(field.BoundsOff))
	f, _ := field.New("ta", data, []field.Axis{y, z})

	g, _ := f.Transpose([]int{1, 0}) // (y,z) -> (z,y)

	fmt.Println(g.Axes[0].Name, g.Shape())
	fmt.Println(g.Data.Get(2, 1))
	// Output:
	// z [3 2]
	// 5
}

// ExampleSetAutoBounds — Scenario: silence bounds generation for a scope.
//
// The returned restore closure is defer-friendly, so the override cannot
// leak past the calling function.
func ExampleSetAutoBounds() {
	restore := field.SetAutoBounds(field.BoundsOff)

	ax, _ := field.NewAxis("plev", []float64{100000, 85000, 50000})
	fmt.Println("bounds while off:", ax.Bounds == nil)

	restore()

	ax, _ = field.NewAxis("plev", []float64{100000, 85000, 50000})
	fmt.Println("bounds after restore:", len(ax.Bounds))
	// Output:
	// bounds while off: true
	// bounds after restore: 3
}
