package vinterp

import "math"

// evaluate turns a column's bracket state into an output cell.
//
// Resolution order:
//  1. A valid exact hit wins outright, so a zero-width bracket can never
//     divide its way into a legitimate cell.
//  2. No pair, or a pair with masked field samples, yields a missing cell.
//  3. Otherwise the Kind formula applies. Degenerate geometry the formula
//     cannot express — a zero coordinate span, or non-positive coordinates
//     under LogLinear — also yields a missing cell rather than NaN/Inf.
//
// Returns the cell value and whether it is valid.
func evaluate(kind Kind, lev float64, br bracket) (float64, bool) {
	if br.eqOK {
		return br.eq, true
	}
	if !br.found || !br.valsOK {
		return 0, false
	}

	switch kind {
	case Linear:
		span := br.cAbv - br.cBel
		if span == 0 {
			return 0, false
		}
		frac := (lev - br.cBel) / span

		return frac*(br.aAbv-br.aBel) + br.aBel, true

	case LogLinear:
		if br.cBel <= 0 || br.cAbv <= 0 {
			return 0, false
		}
		span := math.Log(br.cAbv / br.cBel)
		if span == 0 {
			return 0, false
		}
		frac := math.Log(lev/br.cBel) / span

		return frac*(br.aAbv-br.aBel) + br.aBel, true

	default:
		// resolve rejects unknown kinds before any column is scanned.
		return 0, false
	}
}
