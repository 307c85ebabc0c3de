// Package vinterp remaps gridded scalar fields between vertical level sets:
// given a field on model (sigma/hybrid) levels and the per-cell coordinate
// values of those levels, it produces the field on a fixed list of target
// levels, linearly or log-linearly in the coordinate.
//
// 🚀 What is vertical remapping?
//
//	Atmosphere and ocean models carry variables on terrain-following
//	"sigma" or hybrid levels: every grid column has its own pressure (or
//	depth) per level. Comparing runs, validating against observations, or
//	feeding diagnostics usually requires the data on a common set of
//	pressure levels instead. For each column and each target level the
//	kernel:
//	  • scans the column for the adjacent source pair whose coordinate
//	    values straddle the target (the bracket),
//	  • interpolates between the pair — linearly, or log-linearly for
//	    quasi-exponential coordinates such as pressure,
//	  • short-circuits exact coordinate hits to the source sample itself,
//	  • marks columns with no straddling pair as missing.
//
// ✨ Key behaviours:
//   - forward scan with overwrite: on non-monotonic columns the LAST
//     bracketing pair wins, deterministically
//   - exact matches override interpolation, so a zero-width bracket can
//     never divide by zero into a legitimate cell
//   - masked coordinate cells never form brackets or exact matches; masked
//     field samples at a bracket yield a missing output cell
//   - no-bracket columns (target outside the column's coordinate range)
//     come back masked, never as an error
//   - target levels are processed concurrently; each level owns a disjoint
//     output slice, so results are identical at any worker count
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/vlevel/vinterp"
//
//	// ta on model levels, p the matching 3-D pressure field (Pa).
//	plev, err := vinterp.Interpolate(ta, p,
//	    vinterp.WithKind(vinterp.LogLinear),
//	    vinterp.WithLevels(100000, 85000, 50000, 25000),
//	    vinterp.WithProgress(func(level, total int) {
//	        fmt.Printf("level %d/%d done\n", level+1, total)
//	    }),
//	)
//
//	// Or the climatology shorthand: log-linear onto the 17 standard
//	// pressure levels.
//	plev, err = vinterp.SigmaToPressure(ta, p)
//
// Performance:
//
//   - Time:   O(nlev · nsource · ncolumns) — every cell of every level scans
//     its column once; levels run in parallel (WithWorkers).
//   - Memory: O(output) plus two reoriented input copies.
//
// Errors:
//
//   - ErrNilField: a nil field or coordinate.
//   - ErrUnknownKind: Kind outside Linear/LogLinear.
//   - ErrNoLevels: explicitly empty target level list.
//   - ErrNonPositiveLevel: log-linear target level ≤ 0.
//   - ErrEmptyVertical: vertical axis shorter than two source levels.
//   - ErrBadWorkers: explicit worker count below one.
//   - field.ErrShapeMismatch, field.ErrAxisNotFound, field.ErrAxisIndex are
//     wrapped and surface via errors.Is.
package vinterp
