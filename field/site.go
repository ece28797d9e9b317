package field

import (
	"fmt"

	"github.com/katalvlaran/spinfield/defect"
	"github.com/katalvlaran/spinfield/lattice"
)

// axes and dirs fix the stencil iteration order shared by the per-site
// contributions below.
var (
	axes = [2]lattice.Axis{lattice.AxisX, lattice.AxisY}
	dirs = [2]lattice.Dir{lattice.Minus, lattice.Plus}
)

// Site computes the effective field at site (x,y) of s, writing the three
// components into the caller-supplied h. It never allocates.
//
// Contribution order: Zeeman (0,0,H) → exchange (uniform, or defect-aware
// with on-the-fly bond weights) → DMI if A ≠ 0 → PMA if Dz ≠ 0. The DDI and
// pinning terms are intentionally absent: the dipolar field is a
// whole-lattice convolution, and callers needing it must use Assemble.
//
// Errors: ErrShapeMismatch if s disagrees with the bundle's Nx×Ny,
// ErrSiteOutOfBounds for coordinates off the grid.
// Complexity: O(1).
func (e *Evaluator) Site(s *lattice.Field, x, y int, h *lattice.Vec3) error {
	if s == nil || s.Nx != e.p.Nx || s.Ny != e.p.Ny {
		return ErrShapeMismatch
	}
	if !s.InBounds(x, y) {
		return fmt.Errorf("site (%d,%d): %w", x, y, ErrSiteOutOfBounds)
	}

	h[lattice.X], h[lattice.Y], h[lattice.Z] = 0, 0, e.p.H
	e.exchangeAt(s, x, y, h)
	if e.p.A != 0 {
		e.dmiAt(s, x, y, h)
	}
	if e.p.Dz != 0 {
		h[lattice.Z] += e.p.Dz * s.C[lattice.Z][s.Idx(x, y)]
	}

	return nil
}

// exchangeAt accumulates J·Σ s(neighbor) over the axis-neighbors that
// exist, each scaled by the bond weight when a defect is configured.
// Missing open-boundary neighbors contribute nothing; under periodic
// boundaries lattice.Neighbor substitutes the wrapped opposite site.
func (e *Evaluator) exchangeAt(s *lattice.Field, x, y int, h *lattice.Vec3) {
	defected := e.p.Defect.Kind != defect.None
	for _, ax := range axes {
		for _, d := range dirs {
			j, ok := s.Neighbor(x, y, ax, d, e.p.PBC)
			if !ok {
				continue
			}
			c := e.p.J
			if defected {
				c *= e.p.Defect.BondWeight(x, y, ax, d)
			}
			h[lattice.X] += c * s.C[lattice.X][j]
			h[lattice.Y] += c * s.C[lattice.Y][j]
			h[lattice.Z] += c * s.C[lattice.Z][j]
		}
	}
}

// dmiAt accumulates the Bloch-type DMI field A·Σ r̂ × s(neighbor), with r̂
// the unit vector toward each existing neighbor:
//
//	±x neighbor: (0, ∓A·sz, ±A·sy)
//	±y neighbor: (±A·sz, 0, ∓A·sx)
//
// A missing open-boundary neighbor is simply absent — the surviving
// neighbor keeps its own sign, it is not mirrored.
func (e *Evaluator) dmiAt(s *lattice.Field, x, y int, h *lattice.Vec3) {
	for _, d := range dirs {
		if j, ok := s.Neighbor(x, y, lattice.AxisX, d, e.p.PBC); ok {
			f := e.p.A * float64(d)
			h[lattice.Y] -= f * s.C[lattice.Z][j]
			h[lattice.Z] += f * s.C[lattice.Y][j]
		}
		if j, ok := s.Neighbor(x, y, lattice.AxisY, d, e.p.PBC); ok {
			f := e.p.A * float64(d)
			h[lattice.X] += f * s.C[lattice.Z][j]
			h[lattice.Z] -= f * s.C[lattice.X][j]
		}
	}
}
