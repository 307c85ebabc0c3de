// SPDX-License-Identifier: MIT
// Package: vlevel/builder
//
// config.go — internal configuration and deterministic defaults.
//
// Design:
//   • builderConfig is the single source of truth for all builder knobs.
//   • Defaults are deterministic and documented; no globals.
//   • newBuilderConfig applies options in-order (later overrides earlier).
//
// Deterministic defaults (no surprises):
//   • rng             = nil      (pure/deterministic unless WithRand)
//   • jitterFrac      = 0.0      (identical columns)
//   • noiseSigma      = 0.0      (analytic soundings)
//   • surfacePressure = 101325 Pa
//   • topPressure     = 2000 Pa
//   • surfaceTemp     = 288.15 K
//   • lapseExp        = 0.2854   (dry-air R/cp)

package builder

import (
	"math"
	"math/rand"
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors (immutable to callers).
type builderConfig struct {
	// RNG shared across composed calls; nil means "seed parameter only".
	rng *rand.Rand

	// Per-column multiplicative surface-pressure jitter fraction, in [0,1).
	jitterFrac float64

	// Gaussian noise sigma for soundings; 0 disables noise.
	noiseSigma float64

	// Profile constants.
	surfacePressure float64 // Pa, > topPressure
	topPressure     float64 // Pa, > 0
	surfaceTemp     float64 // K, > 0
	lapseExp        float64 // dimensionless, in (0,1]
}

// Deterministic defaults (named, no magic numbers).
const (
	defJitterFrac      = 0.0      // identical columns unless asked
	defNoiseSigma      = 0.0      // analytic by default
	defSurfacePressure = 101325.0 // standard atmosphere surface, Pa
	defTopPressure     = 2000.0   // model top, Pa
	defSurfaceTemp     = 288.15   // standard atmosphere surface, K
	defLapseExponent   = 0.2854   // dry-air R/cp power-law exponent

	// MinLevels is the smallest vertical size any constructor accepts;
	// one level cannot define a profile.
	MinLevels = 2
)

// Internal panic messages (no magic strings).
const (
	panicRandNil       = "builder: WithRand: rng must be non-nil"
	panicJitterInvalid = "builder: WithJitter: frac must be in [0,1)"
	panicNoiseInvalid  = "builder: WithNoise: sigma must be non-negative and finite"
	panicPressureBad   = "builder: pressure must be positive and finite"
	panicTemperatureLo = "builder: WithSurfaceTemperature: kelvin must be positive and finite"
	panicLapseInvalid  = "builder: WithLapseExponent: exponent must be in (0,1]"
)

// BuilderOption mutates internal options. Safe to apply repeatedly.
// Constructors MUST panic only on nonsensical values (programmer error).
type BuilderOption func(*builderConfig)

// WithRand installs a shared random stream used by every stochastic path,
// overriding per-call seeds; composition stays deterministic when the
// stream's own seed is fixed. Panics on nil.
func WithRand(rng *rand.Rand) BuilderOption {
	if rng == nil {
		panic(panicRandNil)
	}

	return func(c *builderConfig) { c.rng = rng }
}

// WithJitter sets the per-column surface-pressure jitter fraction: each
// column's surface pressure becomes sfc·(1 + u·frac) with u uniform in
// [-1,1). Panics unless 0 ≤ frac < 1.
func WithJitter(frac float64) BuilderOption {
	if math.IsNaN(frac) || frac < 0 || frac >= 1 {
		panic(panicJitterInvalid)
	}

	return func(c *builderConfig) { c.jitterFrac = frac }
}

// WithNoise sets the Gaussian noise sigma added to soundings.
// Panics on negative or non-finite values.
func WithNoise(sigma float64) BuilderOption {
	if math.IsNaN(sigma) || math.IsInf(sigma, 0) || sigma < 0 {
		panic(panicNoiseInvalid)
	}

	return func(c *builderConfig) { c.noiseSigma = sigma }
}

// WithSurfacePressure overrides the column surface pressure in pascals.
// Panics unless positive.
func WithSurfacePressure(pa float64) BuilderOption {
	if math.IsNaN(pa) || math.IsInf(pa, 0) || pa <= 0 {
		panic(panicPressureBad)
	}

	return func(c *builderConfig) { c.surfacePressure = pa }
}

// WithTopPressure overrides the model-top pressure in pascals.
// Panics unless positive; top ≥ surface is reported at build time as
// ErrOptionViolation, since it depends on two options.
func WithTopPressure(pa float64) BuilderOption {
	if math.IsNaN(pa) || math.IsInf(pa, 0) || pa <= 0 {
		panic(panicPressureBad)
	}

	return func(c *builderConfig) { c.topPressure = pa }
}

// WithSurfaceTemperature overrides the surface temperature in kelvin.
// Panics unless positive.
func WithSurfaceTemperature(kelvin float64) BuilderOption {
	if math.IsNaN(kelvin) || math.IsInf(kelvin, 0) || kelvin <= 0 {
		panic(panicTemperatureLo)
	}

	return func(c *builderConfig) { c.surfaceTemp = kelvin }
}

// WithLapseExponent overrides the power-law exponent of BuildTemperature.
// Panics unless in (0,1].
func WithLapseExponent(exp float64) BuilderOption {
	if math.IsNaN(exp) || exp <= 0 || exp > 1 {
		panic(panicLapseInvalid)
	}

	return func(c *builderConfig) { c.lapseExp = exp }
}

// newBuilderConfig constructs a config with deterministic defaults and
// applies all options in order.
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		rng:             nil,
		jitterFrac:      defJitterFrac,
		noiseSigma:      defNoiseSigma,
		surfacePressure: defSurfacePressure,
		topPressure:     defTopPressure,
		surfaceTemp:     defSurfaceTemp,
		lapseExp:        defLapseExponent,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// rngFrom returns cfg.rng if present (shared stream), else a local rand
// seeded by 'seed'. This keeps determinism across composed calls.
func rngFrom(cfg builderConfig, seed int64) *rand.Rand {
	if cfg.rng != nil {
		return cfg.rng
	}

	return rand.New(rand.NewSource(seed))
}
