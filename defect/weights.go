// SPDX-License-Identifier: MIT
package defect

import (
	"math"

	"github.com/katalvlaran/spinfield/lattice"
)

// BondWeight returns the multiplicative coupling weight of the bond leading
// from site (x,y) one step along axis ax in direction d. For None it is
// always 1; for Gaussian it evaluates the profile at the bond midpoint on
// the fly (no cache access). The weight is symmetric: the same physical
// bond yields the same value seen from either endpoint.
// Complexity: O(1), one Exp for Gaussian.
func (d Defect) BondWeight(x, y int, ax lattice.Axis, dir lattice.Dir) float64 {
	switch d.Kind {
	case None:
		return 1
	case Point:
		px, py := x, y
		if ax == lattice.AxisX {
			px += int(dir)
		} else {
			py += int(dir)
		}
		if (x == d.CX && y == d.CY) || (px == d.CX && py == d.CY) {
			return 1 + d.Strength
		}

		return 1
	case Gaussian:
		// Bond midpoint: site coordinate shifted half a step along the axis.
		fx, fy := float64(x), float64(y)
		if ax == lattice.AxisX {
			fx += 0.5 * float64(dir)
		} else {
			fy += 0.5 * float64(dir)
		}
		dx, dy := fx-float64(d.CX), fy-float64(d.CY)

		return 1 + d.Strength*math.Exp(-(dx*dx+dy*dy)/(d.Width*d.Width))
	}

	return 1
}

// Build validates d against an nx×ny lattice and precomputes the four
// per-bond weight planes. For Kind None it returns (nil, nil): the uniform
// coupling path needs no planes. The planes are filled through BondWeight
// so the cached and on-the-fly paths cannot drift apart.
//
// Errors:
//   - ErrUnknownKind         — Kind outside the declared variants.
//   - ErrBadStrength         — NaN/Inf strength.
//   - ErrBadWidth            — Gaussian width ≤ 0 or non-finite.
//   - ErrGeometryUnsupported — Gaussian center off the lattice midpoint or
//     odd nx/ny; Point center off the grid.
//
// Complexity: O(Nx·Ny) time with 4 Exp per site (Gaussian), O(Nx·Ny) memory.
func Build(d Defect, nx, ny int) (*Weights, error) {
	switch d.Kind {
	case None:
		return nil, nil
	case Point, Gaussian:
		// validated below
	default:
		return nil, ErrUnknownKind
	}
	if math.IsNaN(d.Strength) || math.IsInf(d.Strength, 0) {
		return nil, ErrBadStrength
	}
	if d.Kind == Gaussian {
		if d.Width <= 0 || math.IsNaN(d.Width) || math.IsInf(d.Width, 0) {
			return nil, ErrBadWidth
		}
		// The (2·jx)×(2·jy) plane sizing only tiles the lattice when the
		// center is the midpoint of an even-sized grid.
		if nx%2 != 0 || ny%2 != 0 || d.CX != nx/2 || d.CY != ny/2 {
			return nil, ErrGeometryUnsupported
		}
	}
	if d.Kind == Point {
		if d.CX < 0 || d.CX >= nx || d.CY < 0 || d.CY >= ny {
			return nil, ErrGeometryUnsupported
		}
	}

	n := nx * ny
	w := &Weights{
		Left:   make([]float64, n),
		Right:  make([]float64, n),
		Top:    make([]float64, n),
		Bottom: make([]float64, n),
	}
	for y := 0; y < ny; y++ {
		for x := 0; x < nx; x++ {
			i := y*nx + x
			w.Left[i] = d.BondWeight(x, y, lattice.AxisX, lattice.Minus)
			w.Right[i] = d.BondWeight(x, y, lattice.AxisX, lattice.Plus)
			w.Top[i] = d.BondWeight(x, y, lattice.AxisY, lattice.Plus)
			w.Bottom[i] = d.BondWeight(x, y, lattice.AxisY, lattice.Minus)
		}
	}

	return w, nil
}
