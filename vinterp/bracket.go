package vinterp

import "github.com/katalvlaran/vlevel/field"

// bracket is the per-column scan result for one target level: the last
// bracketing source pair, the last exact coordinate match, and explicit
// validity flags. No sentinel values — a coordinate of -1 is as legitimate
// as any other.
type bracket struct {
	cBel, cAbv float64 // coordinate at the pair below/above the target
	aBel, aAbv float64 // field samples at the same pair
	found      bool    // a bracketing pair was seen
	valsOK     bool    // both field samples of that pair are valid

	eq   float64 // field sample at the last exact coordinate hit
	eqOK bool    // eq carries a valid sample
}

// scanColumn walks one grid column from the second source level to the last
// and records, for target value lev, the last pair satisfying
//
//	coord[i] >= lev && coord[i-1] <= lev
//
// Overwrite semantics are deliberate: on a non-monotonic column every
// matching pair is visited and the final one wins, which keeps the result
// deterministic without a monotonicity precondition. Exact hits
// (coord[i] == lev) are tracked independently of the pair condition; an
// exact hit records the field sample together with its validity, so a later
// masked hit supersedes an earlier valid one just as a later pair supersedes
// an earlier pair.
//
// Masked coordinate cells take no part: a masked coord[i] can neither form
// a pair nor register an exact hit, and a masked coord[i-1] only blocks the
// pair. Neither resets state already recorded.
//
// a and coord must be oriented vertical-first; r addresses the column among
// stride flattened columns, nsrc is the vertical length.
// Complexity: O(nsrc), zero allocations.
func scanColumn(a, coord *field.Field, r, stride, nsrc int, lev float64) bracket {
	var br bracket
	for i := 1; i < nsrc; i++ {
		hi := i*stride + r
		lo := hi - stride

		hiMasked := coord.IsMissing(hi)
		if !hiMasked && coord.Data.Elements[hi] == lev {
			br.eq = a.Data.Elements[hi]
			br.eqOK = !a.IsMissing(hi)
		}
		if hiMasked || coord.IsMissing(lo) {
			continue
		}

		cAbv := coord.Data.Elements[hi]
		cBel := coord.Data.Elements[lo]
		if cAbv >= lev && cBel <= lev {
			br.found = true
			br.cAbv, br.cBel = cAbv, cBel
			br.aAbv, br.aBel = a.Data.Elements[hi], a.Data.Elements[lo]
			br.valsOK = !a.IsMissing(hi) && !a.IsMissing(lo)
		}
	}

	return br
}
