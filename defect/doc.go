// SPDX-License-Identifier: MIT
// Package defect models localized modifications of the exchange coupling on
// a 2D spin lattice.
//
// Exchange coupling lives on the bonds between neighboring sites, not on
// the sites themselves. A Defect therefore rescales individual bonds:
//
//   - Point    — the four bonds incident on the defect site carry 1+aJ.
//   - Gaussian — every bond carries 1 + aJ·exp(−r²/dJ²), with r measured
//     from the defect center to the bond midpoint (site coordinate offset
//     by ±0.5 along the bond axis).
//
// Two evaluation paths exist and must agree:
//
//	BondWeight — one bond, computed on the fly; used by per-site field
//	             evaluation.
//	Build      — four full per-bond weight planes (left/right/top/bottom),
//	             computed once at setup and read-only thereafter; used by
//	             whole-lattice sweeps. The Gaussian is transcendental, so
//	             re-deriving the planes every integration step would
//	             dominate the cost of field assembly.
//
// The Gaussian builder inherits a geometric restriction from its sizing
// convention: the weight planes span (2·jx)×(2·jy) entries around an
// integer center (jx,jy), which only tiles the lattice when the defect sits
// at the midpoint of an even-sized grid. Off-center Gaussians are rejected
// with ErrGeometryUnsupported rather than silently mis-sized.
package defect
