// Package field: parameter bundle and sentinel errors.
package field

import (
	"errors"

	"github.com/katalvlaran/spinfield/defect"
	"github.com/katalvlaran/spinfield/dipole"
)

// Sentinel errors for field evaluation.
var (
	// ErrBadParams indicates an invalid parameter bundle (dimensions,
	// pinning site, or dipolar wiring). Fatal at setup.
	ErrBadParams = errors.New("field: invalid parameter bundle")

	// ErrShapeMismatch indicates a spin or output lattice whose dimensions
	// disagree with the declared Nx×Ny. Rejected before any stencil pass.
	ErrShapeMismatch = errors.New("field: lattice shape inconsistent with parameters")

	// ErrSiteOutOfBounds indicates per-site coordinates outside the grid.
	// This signals a caller bug, not a recoverable condition.
	ErrSiteOutOfBounds = errors.New("field: site coordinates outside the lattice")

	// ErrAliasedOutput indicates the spin lattice was also passed as the
	// output buffer; Assemble zeroes the output first, so aliasing would
	// silently destroy the input.
	ErrAliasedOutput = errors.New("field: output buffer aliases the spin lattice")
)

// Params is the flat, immutable material-parameter bundle consumed by the
// evaluator. It is assembled and range-validated by an upstream
// configuration layer; New re-checks only what field assembly itself
// depends on (shape, defect geometry, dipolar wiring).
//
// Fields:
//   - J          — exchange constant (uniform nearest-neighbor coupling).
//   - H          — Zeeman field, applied along z.
//   - A          — Bloch-type DMI constant; 0 disables the DMI pass.
//   - Dz         — perpendicular anisotropy; 0 disables the PMA pass.
//   - Ed         — dipolar constant; 0 skips the convolution entirely.
//   - Nx, Ny     — lattice dimensions.
//   - Nz         — retained for bundle parity with the upstream layer; the
//     2D stencil ignores it.
//   - PBC        — periodic boundaries: edge sites gain a wrap-around
//     neighbor in addition to their interior-direction one.
//   - Defect     — localized exchange modification descriptor.
//   - PinX, PinY — pinning site (the initial-condition position).
//   - HPin       — pinning field strength, added to the z-component at the
//     pinning site only, after all other terms.
//   - Kernel     — precomputed demagnetizing matrices; required iff Ed ≠ 0.
//   - Convolver  — external dipolar convolution; required iff Ed ≠ 0.
type Params struct {
	J  float64
	H  float64
	A  float64
	Dz float64
	Ed float64

	Nx, Ny, Nz int
	PBC        bool

	Defect defect.Defect

	PinX, PinY int
	HPin       float64

	Kernel    *dipole.Kernel
	Convolver dipole.Convolver
}

// DefaultParams returns a Params for an nx×ny lattice with unit exchange,
// periodic boundaries, and every other interaction switched off.
func DefaultParams(nx, ny int) Params {
	return Params{J: 1, Nx: nx, Ny: ny, Nz: 1, PBC: true}
}
