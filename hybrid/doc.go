// Package hybrid reconstructs the 3-D pressure of hybrid sigma-pressure
// model levels from a surface-pressure field and the per-level conversion
// coefficients, producing the coordinate field that vertical remapping
// consumes.
//
// What:
//
//   - ReconstructPressure evaluates P = B·Ps + A·Po level by level: every
//     hybrid level k contributes the affine image b[k]·ps + a[k]·po of the
//     whole surface-pressure grid.
//   - The output gains one leading "lev" axis (hybrid level number by
//     default; physical values via WithLevelValues), keeps the surface
//     grid's axes, carries the surface field's units, and replicates its
//     missing-value mask onto every level.
//
// Why:
//
//   - Hybrid-coordinate model output stores no per-cell pressure; archives
//     ship A, B, Po and the surface pressure instead. Rebuilding P is the
//     standard preprocessing step before any pressure-level diagnostic.
//
// Complexity:
//
//   - ReconstructPressure: O(nlev · n) time and memory for n surface cells.
//
// Errors:
//
//   - ErrNilField: nil surface-pressure field.
//   - ErrCoefficientLength: A and B differ in length, or are empty.
//   - ErrLevelValues: WithLevelValues length differs from the level count.
//
// A and Po must share the surface pressure's units; that convention is the
// caller's to uphold, as it is in the archives themselves.
package hybrid
