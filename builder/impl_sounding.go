// SPDX-License-Identifier: MIT
// Package: vlevel/builder
//
// impl_sounding.go — temperature sounding derived from a pressure field.
//
// Purpose:
//   - Turn any pressure field into a physically plausible temperature field
//     so interpolation demos and benchmarks have realistic data to remap.
//
// Contract:
//   - BuildTemperature(p, opts...) returns a Field of p's exact shape and
//     axes, name "ta", units "K".
//   - Dry-adiabatic closed form: T = T₀·(p/p₀₀)^κ with p₀₀ = 100000 Pa.
//   - Cells where p is missing or non-positive come back masked, never NaN.
//   - Gaussian noise only when WithNoise(σ>0); that path demands an explicit
//     WithRand source (ErrNeedRandSource otherwise), so the default build is
//     bit-for-bit reproducible with no seed in sight.
//
// Determinism policy:
//   - noiseSigma == 0 → pure function of p and options.
//   - noiseSigma > 0  → stream order is row-major over p's storage, so the
//     same rng state always yields the same field.

package builder

import (
	"math"

	"bitbucket.org/ctessum/sparse"

	"github.com/katalvlaran/vlevel/field"
)

// referencePressure anchors the potential-temperature power law (p₀₀).
const referencePressure = 100000.0 // Pa

// BuildTemperature derives a temperature field from pressure cell by cell:
//
//	T(p) = surfaceTemp · (p/100000)^lapseExp
//
// optionally perturbed by WithNoise Gaussian noise. Shape, axes and mask
// layout follow p; cells with missing or non-positive pressure are masked in
// the result.
//
// Errors: ErrNilField for nil p; ErrNeedRandSource when noise is requested
// without WithRand. Complexity: O(p.Len()).
func BuildTemperature(p *field.Field, opts ...BuilderOption) (*field.Field, error) {
	if p == nil || p.Data == nil {
		return nil, wrapf(MethodTemperature, ErrNilField, "pressure field")
	}

	cfg := newBuilderConfig(opts...)
	if cfg.noiseSigma > 0 && cfg.rng == nil {
		return nil, wrapf(MethodTemperature, ErrNeedRandSource, "noise sigma %v", cfg.noiseSigma)
	}

	n := p.Len()
	data := sparse.ZerosDense(p.Shape()...)
	var mask []bool

	for i := 0; i < n; i++ {
		pv := p.Data.Elements[i]
		if p.IsMissing(i) || pv <= 0 {
			if mask == nil {
				mask = make([]bool, n)
			}
			mask[i] = true

			continue
		}
		tv := cfg.surfaceTemp * math.Pow(pv/referencePressure, cfg.lapseExp)
		if cfg.noiseSigma > 0 {
			tv += cfg.noiseSigma * cfg.rng.NormFloat64()
		}
		data.Elements[i] = tv
	}

	fieldOpts := []field.Option{field.WithAttrs(field.Attributes{Units: "K"})}
	if mask != nil {
		fieldOpts = append(fieldOpts, field.WithMask(mask))
	}

	ta, err := field.New("ta", data, cloneAxes(p), fieldOpts...)
	if err != nil {
		return nil, wrapf(MethodTemperature, err, "assemble")
	}

	return ta, nil
}

// cloneAxes deep-copies a field's axes for reuse on a derived field.
func cloneAxes(f *field.Field) []field.Axis {
	out := make([]field.Axis, len(f.Axes))
	for i, ax := range f.Axes {
		out[i] = ax.Clone()
	}

	return out
}
