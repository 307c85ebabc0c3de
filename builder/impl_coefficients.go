// SPDX-License-Identifier: MIT
// Package: vlevel/builder
//
// impl_coefficients.go — hybrid sigma-pressure coefficient tables.
//
// Purpose:
//   - Provide well-formed A/B coefficient pairs for hybrid.ReconstructPressure
//     without hauling a real model's coefficient file into tests.
//
// Contract:
//   - BuildHybridCoefficients(nsigma) returns slices of length nsigma,
//     ordered top → surface.
//   - B rises monotonically from 0 to exactly 1 (pure pressure at the top,
//     pure terrain-following at the surface).
//   - A is 0 at the surface, so reconstructed surface pressure equals Ps
//     exactly; aloft it bulges mid-column the way real coefficient tables do.
//   - Closed form, no randomness, no options. O(nsigma).

package builder

import "gonum.org/v1/gonum/floats"

// Shape parameters of the analytic coefficient profile. With a reference
// pressure of 100000 Pa the top level sits at 200 Pa and the hybrid bulge
// peaks mid-column at 0.051.
const (
	defTopFraction  = 0.002 // A at the model top
	defPeakFraction = 0.05  // strength of the mid-column bulge
)

// BuildHybridCoefficients returns analytic A and B coefficient slices for an
// nsigma-level hybrid vertical coordinate, top first:
//
//	t    = i/(nsigma-1)
//	B(t) = t²
//	A(t) = topFraction·(1-t) + 4·peakFraction·t·(1-t)
//
// so P = B·Ps + A·Po runs from A(0)·Po at the top down to Ps at the surface.
//
// Errors: ErrBadSize when nsigma < MinLevels.
func BuildHybridCoefficients(nsigma int) (a, b []float64, err error) {
	if nsigma < MinLevels {
		return nil, nil, wrapf(MethodHybridCoefficients, ErrBadSize, "nsigma %d < %d", nsigma, MinLevels)
	}

	t := make([]float64, nsigma)
	floats.Span(t, 0, 1)

	a = make([]float64, nsigma)
	b = make([]float64, nsigma)
	for i, ti := range t {
		b[i] = ti * ti
		a[i] = defTopFraction*(1-ti) + 4*defPeakFraction*ti*(1-ti)
	}

	return a, b, nil
}
