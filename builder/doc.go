// Package builder provides deterministic synthetic-profile generators for
// tests, benchmarks and demos of the vlevel kernels: pressure columns,
// hybrid conversion coefficients, and analytic temperature soundings.
//
// The package offers the following building blocks:
//
//   - Configuration primitives:
//     – BuilderOption:   a function that mutates builderConfig before use.
//     – builderConfig:   holds RNG, jitter, noise and profile constants.
//   - Profile constructors (impl_*.go):
//     – BuildPressureColumns: (nsigma, cols) grid of monotone top→bottom
//     pressure profiles, geometric in height, with optional per-column
//     surface-pressure jitter.
//     – BuildHybridCoefficients: plausible A/B hybrid-level profiles
//     (A: top offset plus mid-atmosphere bump, B: 0 at top → 1 at surface).
//     – BuildTemperature: analytic power-law sounding T = T₀·(p/p₀₀)^κ over
//     any pressure field, with optional Gaussian noise.
//
// Guarantees:
//
//   - Determinism: the same sizes, options and seed produce identical
//     fields; randomness only enters through an explicit seed or a shared
//     *rand.Rand supplied via WithRand.
//   - Fast-fail on invalid option parameters via panics in option
//     constructors; runtime build parameters surface as sentinel errors.
//   - Closed-form outputs when jitter and noise stay at their zero
//     defaults, so interpolation results can be verified analytically.
//
// See individual constructor documentation for contracts, parameter
// descriptions and complexity notes.
package builder
