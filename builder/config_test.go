// Package builder contains unit tests for the configuration primitives
// (builderConfig and BuilderOption) to ensure correct defaults, application
// order, and constructor-panic validation.
package builder

import (
	"math"
	"math/rand"
	"testing"
)

// TestConfigDefaults verifies the deterministic default configuration.
func TestConfigDefaults(t *testing.T) {
	t.Parallel()

	cfg := newBuilderConfig()

	// 1. No random stream unless injected.
	if cfg.rng != nil {
		t.Errorf("default rng: expected nil, got %v", cfg.rng)
	}
	// 2. Stochastic knobs off.
	if cfg.jitterFrac != defJitterFrac || cfg.noiseSigma != defNoiseSigma {
		t.Errorf("default jitter/noise: got %v/%v, want %v/%v",
			cfg.jitterFrac, cfg.noiseSigma, defJitterFrac, defNoiseSigma)
	}
	// 3. Standard-atmosphere profile constants.
	if cfg.surfacePressure != defSurfacePressure || cfg.topPressure != defTopPressure {
		t.Errorf("default pressures: got %v/%v, want %v/%v",
			cfg.surfacePressure, cfg.topPressure, defSurfacePressure, defTopPressure)
	}
	if cfg.surfaceTemp != defSurfaceTemp || cfg.lapseExp != defLapseExponent {
		t.Errorf("default sounding: got %v/%v, want %v/%v",
			cfg.surfaceTemp, cfg.lapseExp, defSurfaceTemp, defLapseExponent)
	}
}

// TestConfigApplication verifies that options apply in order with last-wins
// override semantics.
func TestConfigApplication(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(3))
	cfg := newBuilderConfig(
		WithRand(rng),
		WithJitter(0.25),
		WithNoise(1.5),
		WithSurfacePressure(95000),
		WithTopPressure(500),
		WithSurfaceTemperature(290),
		WithLapseExponent(0.3),
	)

	if cfg.rng != rng {
		t.Errorf("WithRand: rng not installed")
	}
	if cfg.jitterFrac != 0.25 || cfg.noiseSigma != 1.5 {
		t.Errorf("jitter/noise: got %v/%v", cfg.jitterFrac, cfg.noiseSigma)
	}
	if cfg.surfacePressure != 95000 || cfg.topPressure != 500 {
		t.Errorf("pressures: got %v/%v", cfg.surfacePressure, cfg.topPressure)
	}
	if cfg.surfaceTemp != 290 || cfg.lapseExp != 0.3 {
		t.Errorf("sounding: got %v/%v", cfg.surfaceTemp, cfg.lapseExp)
	}

	// Later options override earlier ones.
	override := newBuilderConfig(WithSurfacePressure(90000), WithSurfacePressure(80000))
	if override.surfacePressure != 80000 {
		t.Errorf("override order: got %v, want 80000", override.surfacePressure)
	}

	// Boundary values are legal: jitter 0, lapse exponent exactly 1.
	edge := newBuilderConfig(WithJitter(0), WithLapseExponent(1), WithNoise(0))
	if edge.jitterFrac != 0 || edge.lapseExp != 1 || edge.noiseSigma != 0 {
		t.Errorf("boundary values rejected: %+v", edge)
	}
}

// TestConfigPanics verifies that option constructors reject nonsensical
// values by panicking, per the builder error policy.
func TestConfigPanics(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		fn   func()
	}{
		{"RandNil", func() { WithRand(nil) }},
		{"JitterNegative", func() { WithJitter(-0.01) }},
		{"JitterOne", func() { WithJitter(1.0) }},
		{"JitterNaN", func() { WithJitter(math.NaN()) }},
		{"NoiseNegative", func() { WithNoise(-1) }},
		{"NoiseInf", func() { WithNoise(math.Inf(1)) }},
		{"SurfacePressureZero", func() { WithSurfacePressure(0) }},
		{"SurfacePressureNaN", func() { WithSurfacePressure(math.NaN()) }},
		{"TopPressureNegative", func() { WithTopPressure(-5) }},
		{"SurfaceTemperatureZero", func() { WithSurfaceTemperature(0) }},
		{"SurfaceTemperatureInf", func() { WithSurfaceTemperature(math.Inf(1)) }},
		{"LapseZero", func() { WithLapseExponent(0) }},
		{"LapseAboveOne", func() { WithLapseExponent(1.0001) }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			defer func() {
				if recover() == nil {
					t.Errorf("%s: expected panic", tc.name)
				}
			}()
			tc.fn()
		})
	}
}

// TestRngFrom verifies the shared-stream determinism policy.
func TestRngFrom(t *testing.T) {
	t.Parallel()

	// 1. Installed stream wins regardless of seed.
	shared := rand.New(rand.NewSource(11))
	cfg := newBuilderConfig(WithRand(shared))
	if got := rngFrom(cfg, 999); got != shared {
		t.Errorf("rngFrom with stream: expected the installed rng")
	}

	// 2. Without a stream, equal seeds yield equal sequences.
	a := rngFrom(newBuilderConfig(), 42)
	b := rngFrom(newBuilderConfig(), 42)
	for i := 0; i < 4; i++ {
		if av, bv := a.Int63(), b.Int63(); av != bv {
			t.Fatalf("seeded draw %d differs: %d vs %d", i, av, bv)
		}
	}
}
