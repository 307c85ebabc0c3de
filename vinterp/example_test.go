package vinterp_test

import (
	"fmt"

	"bitbucket.org/ctessum/sparse"

	"github.com/katalvlaran/vlevel/field"
	"github.com/katalvlaran/vlevel/vinterp"
)

// exampleColumn wraps one vertical column as a Field with axis "z".
func exampleColumn(name string, vals []float64) *field.Field {
	data := sparse.ZerosDense(len(vals))
	copy(data.Elements, vals)
	z, _ := field.IndexAxis("z", len(vals), field.WithBounds(field.BoundsOff))
	f, _ := field.New(name, data, []field.Axis{z})

	return f
}

// ExampleInterpolate — Scenario: one column, three target levels.
//
// 75000 Pa falls between the second and third source levels, 50000 Pa hits
// the second exactly, and 150000 Pa lies below the column entirely.
func ExampleInterpolate() {
	ta := exampleColumn("ta", []float64{1, 2, 3})
	p := exampleColumn("p", []float64{20000, 50000, 100000})

	out, err := vinterp.Interpolate(ta, p,
		vinterp.WithLevels(75000, 50000, 150000))
	if err != nil {
		fmt.Println("interpolate:", err)
		return
	}

	for i, lev := range out.Axes[0].Values {
		if out.IsMissing(i) {
			fmt.Printf("%.0f Pa -> missing\n", lev)
			continue
		}
		fmt.Printf("%.0f Pa -> %.3f\n", lev, out.Data.Elements[i])
	}
	// Output:
	// 75000 Pa -> 2.500
	// 50000 Pa -> 2.000
	// 150000 Pa -> missing
}

// ExampleSigmaToPressure — Scenario: the log-linear shorthand.
//
// Pressure decays quasi-exponentially with height, so climatology remaps
// temperature log-linearly in pressure.
func ExampleSigmaToPressure() {
	ta := exampleColumn("ta", []float64{1, 2, 3})
	p := exampleColumn("p", []float64{20000, 50000, 100000})

	out, err := vinterp.SigmaToPressure(ta, p, vinterp.WithLevel(75000))
	if err != nil {
		fmt.Println("remap:", err)
		return
	}

	fmt.Printf("%.3f\n", out.Data.Elements[0])
	// Output: 2.585
}

// ExampleWithProgress — Scenario: observing the level loop.
//
// A single worker reports levels in declaration order; more workers report
// in completion order.
func ExampleWithProgress() {
	ta := exampleColumn("ta", []float64{1, 2, 3})
	p := exampleColumn("p", []float64{20000, 50000, 100000})

	_, err := vinterp.Interpolate(ta, p,
		vinterp.WithLevels(85000, 70000, 50000),
		vinterp.WithWorkers(1),
		vinterp.WithProgress(func(level, total int) {
			fmt.Printf("level %d of %d done\n", level+1, total)
		}))
	if err != nil {
		fmt.Println("interpolate:", err)
	}
	// Output:
	// level 1 of 3 done
	// level 2 of 3 done
	// level 3 of 3 done
}
