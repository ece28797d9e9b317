// SPDX-License-Identifier: MIT
// Package dipole adapts an external dipole-dipole convolution operator into
// the effective-field assembly.
//
// The dipole-dipole interaction (DDI) is long-range: the field at one site
// depends on every spin of the lattice through a dense convolution with
// precomputed demagnetizing kernel matrices (the "V matrices"). That
// convolution is an external collaborator — typically a fast
// transform-based dense convolution — and this package treats it as an
// opaque Convolver. The adapter contributes exactly two things:
//
//   - shape validation of the kernel blocks and of the convolver's output,
//   - scaling of the returned field by the dipolar constant Ed, accumulated
//     into the caller's field buffer.
//
// When Ed is zero the dipolar path is skipped entirely at zero cost.
package dipole
