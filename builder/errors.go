// SPDX-License-Identifier: MIT
// Package: vlevel/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy (explicit and strict):
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Sentinels are NEVER wrapped with formatted strings at definition site.
//   • Implementations attach context via wrapf, preserving %w chains.
//   • Constructors MUST NOT panic at runtime; validation panics are confined
//     to option constructor functions (WithX...).

package builder

import (
	"errors"
	"fmt"
)

// ErrBadSize indicates a level or column count below the constructor's
// minimum (nsigma < 2, cols < 1).
// Usage: if errors.Is(err, ErrBadSize) { /* fix nsigma/cols */ }.
var ErrBadSize = errors.New("builder: invalid size/length")

// ErrNilField indicates a constructor that derives from an existing field
// (BuildTemperature) received nil.
// Usage: if errors.Is(err, ErrNilField) { /* supply a pressure field */ }.
var ErrNilField = errors.New("builder: nil input field")

// ErrNeedRandSource indicates a stochastic path (noise) was requested
// without any randomness source: no explicit seed applies and no shared
// *rand.Rand was supplied via WithRand.
// Usage: if errors.Is(err, ErrNeedRandSource) { /* add WithRand(...) */ }.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrOptionViolation indicates a combination of resolved options that is
// individually valid but mutually inconsistent at build time (e.g. top
// pressure at or above surface pressure). Nonsensical single values panic
// in their WithX constructor instead.
// Usage: if errors.Is(err, ErrOptionViolation) { /* correct option values */ }.
var ErrOptionViolation = errors.New("builder: invalid option value")

// Method tokens for error context. Stable, used by wrapf.
const (
	MethodPressureColumns    = "PressureColumns"
	MethodHybridCoefficients = "HybridCoefficients"
	MethodTemperature        = "Temperature"
)

// wrapf prefixes err with the constructor name and a formatted detail while
// preserving the sentinel for errors.Is:
//
//	wrapf(MethodTemperature, ErrNilField, "pressure field")
//	→ "Temperature: pressure field: builder: nil input field"
func wrapf(method string, err error, format string, args ...any) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), err)
}
