// Package vlevel remaps gridded scalar fields — temperature, humidity,
// anything sampled on model (sigma/hybrid) levels — onto fixed vertical
// levels such as the standard pressure levels.
//
// 🚀 What is vlevel?
//
//	An in-memory vertical-regridding toolkit that brings together:
//		• field/   — N-dimensional masked fields, axes and attribute metadata
//		• vinterp/ — per-column bracket search + linear / log-linear remapping
//		• hybrid/  — pressure reconstruction from hybrid coefficients (P = B·Ps + A·Po)
//		• builder/ — deterministic synthetic soundings for tests, demos, benchmarks
//
// ✨ Why choose vlevel?
//
//   - Column-exact semantics – every output cell depends only on its own
//     column's bracket at its own target level; no hidden smoothing
//   - Honest missing data – cells with no valid bracket come back masked,
//     never as a zero or an extrapolated guess
//   - Deterministic – fixed scan order, documented tie-breaks, no global state
//     mutated behind the caller's back
//   - Parallel where it is free – target levels own disjoint output slices,
//     so the assembler fans out across them without locks on the hot path
//
// Under the hood, everything is organized under four subpackages:
//
//	field/   — Field, Axis, Attributes: the data model every kernel consumes
//	vinterp/ — BracketSearch, interpolators, exact-match and masking rules
//	hybrid/  — the affine collaborator that builds pressure on model levels
//	builder/ — synthetic profiles (monotone columns, hybrid coefficients, T(p))
//
// Quick ASCII sketch of one column:
//
//	coord:  20000 ─ 50000 ─ 100000      (top → bottom, Pa)
//	value:      1 ─     2 ─      3
//	target: 75000  →  bracket (50000,100000) → linear 2.5, log-linear ≈ 2.585
//
// Dive into the package docs for contracts, complexity notes and edge-case
// rules, and into cmd/vlevel for a runnable demonstration.
//
//	go get github.com/katalvlaran/vlevel
package vlevel
