// Package field evaluates the micromagnetic effective field on a 2D spin
// lattice: the negative variational derivative of the total energy
// (exchange + Zeeman + DMI + PMA + DDI) with respect to each unit spin.
//
// Two evaluation contracts are exposed through one Evaluator:
//
//   - Site     — the field at a single site, written into a caller-supplied
//     buffer. Used by relaxation algorithms that probe localized
//     fields without materializing a whole-lattice array.
//     Excludes DDI (a whole-lattice convolution cannot be
//     evaluated per-site at useful cost) and pinning.
//   - Assemble — the field at every site in one pass: directional sweeps
//     over contiguous component planes, conditional wrap passes
//     along the boundary rows/columns under periodic boundaries,
//     the dipolar term when Ed ≠ 0, and finally the pinning
//     field at exactly the pinning site.
//
// The sweep decomposition is an optimization, not a semantic change: away
// from the DDI and pinning terms, Assemble agrees with Site at every site
// up to floating-point summation order (a few ULPs).
//
// An Evaluator is built once per run by New, which validates the parameter
// bundle and precomputes the defect bond-weight planes; it is then shared,
// read-only, by every step of the integration loop. Evaluation is purely
// sequential and deterministic and never retains a reference to the spin
// lattice beyond a call.
package field
