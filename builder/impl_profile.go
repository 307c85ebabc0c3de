// SPDX-License-Identifier: MIT
// Package: vlevel/builder
//
// impl_profile.go — deterministic pressure-column generator.
//
// Purpose:
//   - Produce an (nsigma, cols) grid of top→bottom pressure profiles for
//     kernel tests and demos.
//   - Geometric spacing between top and surface pressure, the shape real
//     sigma coordinates take; optional per-column surface jitter stands in
//     for terrain.
//
// Contract:
//   - BuildPressureColumns(nsigma, cols, seed, opts...) returns a Field of
//     shape (nsigma, cols), axes ("z", "col"), name "p", units "Pa".
//   - Monotone ascending in z for every column, jitter included.
//   - O(nsigma·cols) time and memory. No panics. No global state.
//
// Determinism policy (aligned across builders):
//   - If cfg.rng != nil → use cfg.rng (shared stream via WithRand(...)).
//   - Else → rng := rand.New(rand.NewSource(seed)).

package builder

import (
	"math"

	"bitbucket.org/ctessum/sparse"
	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/vlevel/field"
)

// BuildPressureColumns returns an (nsigma, cols) pressure field whose every
// column runs geometrically from the configured top pressure down to a
// per-column surface pressure:
//
//	p(i, c) = ptop · (sfc_c/ptop)^(i/(nsigma-1))
//	sfc_c   = surface · (1 + u_c·jitter), u_c uniform in [-1, 1)
//
// With jitter at its zero default every column is identical and the profile
// is a pure closed form.
//
// Errors: ErrBadSize for nsigma < MinLevels or cols < 1; ErrOptionViolation
// when the resolved top pressure is not below the surface pressure.
// Complexity: O(nsigma·cols).
func BuildPressureColumns(nsigma, cols int, seed int64, opts ...BuilderOption) (*field.Field, error) {
	if nsigma < MinLevels {
		return nil, wrapf(MethodPressureColumns, ErrBadSize, "nsigma %d < %d", nsigma, MinLevels)
	}
	if cols < 1 {
		return nil, wrapf(MethodPressureColumns, ErrBadSize, "cols %d < 1", cols)
	}

	cfg := newBuilderConfig(opts...)
	if cfg.topPressure >= cfg.surfacePressure {
		return nil, wrapf(MethodPressureColumns, ErrOptionViolation,
			"top %v Pa must lie below surface %v Pa", cfg.topPressure, cfg.surfacePressure)
	}
	rng := rngFrom(cfg, seed)

	// Normalized level positions t ∈ [0,1], top to surface.
	t := make([]float64, nsigma)
	floats.Span(t, 0, 1)

	data := sparse.ZerosDense(nsigma, cols)
	for c := 0; c < cols; c++ {
		sfc := cfg.surfacePressure
		if cfg.jitterFrac > 0 {
			sfc *= 1 + cfg.jitterFrac*(2*rng.Float64()-1)
		}
		ratio := sfc / cfg.topPressure
		for i := 0; i < nsigma; i++ {
			data.Set(cfg.topPressure*math.Pow(ratio, t[i]), i, c)
		}
	}

	z, err := field.IndexAxis("z", nsigma, field.WithBounds(field.BoundsOff))
	if err != nil {
		return nil, wrapf(MethodPressureColumns, err, "z axis")
	}
	col, err := field.IndexAxis("col", cols, field.WithBounds(field.BoundsOff))
	if err != nil {
		return nil, wrapf(MethodPressureColumns, err, "col axis")
	}

	p, err := field.New("p", data, []field.Axis{z, col},
		field.WithAttrs(field.Attributes{Units: "Pa"}))
	if err != nil {
		return nil, wrapf(MethodPressureColumns, err, "assemble")
	}

	return p, nil
}
