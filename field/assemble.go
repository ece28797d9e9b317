package field

import (
	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/spinfield/dipole"
	"github.com/katalvlaran/spinfield/lattice"
)

// Assemble computes the effective field at every site of s into dst, which
// must be a distinct Field of the same shape. This is the hot path called
// once per integration step.
//
// Instead of looping Site over the grid, each interaction runs as
// directional sweeps over the contiguous component planes: four passes for
// the +x/−x/+y/−y exchange neighbors, a conditional pair of wrap passes
// along the boundary rows/columns under periodic boundaries, then DMI and
// PMA passes with the same branch structure, the Ed-scaled dipolar
// convolution when Ed ≠ 0, and finally HPin added to the z-component at
// exactly the pinning site.
//
// Errors: ErrShapeMismatch for inconsistent lattices, ErrAliasedOutput if
// dst is the spin lattice itself; dipole sentinels if the convolver
// misbehaves.
// Complexity: O(Nx·Ny) plus the convolver's cost.
func (e *Evaluator) Assemble(s, dst *lattice.Field) error {
	if s == nil || s.Nx != e.p.Nx || s.Ny != e.p.Ny || !lattice.SameShape(s, dst) {
		return ErrShapeMismatch
	}
	if s == dst {
		return ErrAliasedOutput
	}

	dst.Zero()
	// Zeeman: every site starts at (0, 0, H).
	if e.p.H != 0 {
		floats.AddConst(e.p.H, dst.C[lattice.Z])
	}

	if e.w != nil {
		e.exchangeWeighted(s, dst)
	} else {
		e.exchangeUniform(s, dst)
	}
	if e.p.A != 0 {
		e.dmiSweep(s, dst)
	}
	if e.p.Dz != 0 {
		floats.AddScaled(dst.C[lattice.Z], e.p.Dz, s.C[lattice.Z])
	}
	if e.p.Ed != 0 {
		if err := dipole.Accumulate(e.p.Convolver, s, e.p.Kernel, e.p.Ed, e.p.PBC, dst); err != nil {
			return err
		}
	}

	dst.C[lattice.Z][dst.Idx(e.p.PinX, e.p.PinY)] += e.p.HPin

	return nil
}

// exchangeUniform runs the four directional exchange passes with uniform
// coupling J. The ±x passes go row by row (row boundaries break slice
// contiguity); the ±y passes cover the whole plane in two shifted sweeps.
// Wrap passes touch only the boundary rows/columns.
func (e *Evaluator) exchangeUniform(s, dst *lattice.Field) {
	nx, ny, j := e.p.Nx, e.p.Ny, e.p.J
	n := nx * ny
	for c := range dst.C {
		sp, dp := s.C[c], dst.C[c]
		if nx > 1 {
			for y := 0; y < ny; y++ {
				row := y * nx
				floats.AddScaled(dp[row:row+nx-1], j, sp[row+1:row+nx]) // +x neighbor
				floats.AddScaled(dp[row+1:row+nx], j, sp[row:row+nx-1]) // −x neighbor
			}
		}
		if ny > 1 {
			floats.AddScaled(dp[:n-nx], j, sp[nx:]) // +y neighbor
			floats.AddScaled(dp[nx:], j, sp[:n-nx]) // −y neighbor
		}
		if e.p.PBC {
			for y := 0; y < ny; y++ {
				row := y * nx
				dp[row+nx-1] += j * sp[row] // wrap: last column's +x neighbor
				dp[row] += j * sp[row+nx-1] // wrap: first column's −x neighbor
			}
			floats.AddScaled(dp[n-nx:], j, sp[:nx]) // wrap: top row's +y neighbor
			floats.AddScaled(dp[:nx], j, sp[n-nx:]) // wrap: bottom row's −y neighbor
		}
	}
}

// exchangeWeighted mirrors exchangeUniform but scales every neighbor term
// by the precomputed per-bond weight plane for its direction. Each pass
// stages weight·spin in the scratch buffer, then accumulates it with one
// AddScaled.
func (e *Evaluator) exchangeWeighted(s, dst *lattice.Field) {
	nx, ny, j := e.p.Nx, e.p.Ny, e.p.J
	n := nx * ny
	w := e.w
	for c := range dst.C {
		sp, dp := s.C[c], dst.C[c]
		if nx > 1 {
			for y := 0; y < ny; y++ {
				row := y * nx
				t := e.buf[:nx-1]
				copy(t, sp[row+1:row+nx]) // +x neighbor, right-bond weights
				floats.Mul(t, w.Right[row:row+nx-1])
				floats.AddScaled(dp[row:row+nx-1], j, t)
				copy(t, sp[row:row+nx-1]) // −x neighbor, left-bond weights
				floats.Mul(t, w.Left[row+1:row+nx])
				floats.AddScaled(dp[row+1:row+nx], j, t)
			}
		}
		if ny > 1 {
			t := e.buf[:n-nx]
			copy(t, sp[nx:]) // +y neighbor, top-bond weights
			floats.Mul(t, w.Top[:n-nx])
			floats.AddScaled(dp[:n-nx], j, t)
			copy(t, sp[:n-nx]) // −y neighbor, bottom-bond weights
			floats.Mul(t, w.Bottom[nx:])
			floats.AddScaled(dp[nx:], j, t)
		}
		if e.p.PBC {
			for y := 0; y < ny; y++ {
				row, last := y*nx, y*nx+nx-1
				dp[last] += j * w.Right[last] * sp[row]
				dp[row] += j * w.Left[row] * sp[last]
			}
			for x := 0; x < nx; x++ {
				top, bot := n-nx+x, x
				dp[top] += j * w.Top[top] * sp[bot]
				dp[bot] += j * w.Bottom[bot] * sp[top]
			}
		}
	}
}

// dmiSweep runs the Bloch-DMI passes, A·(r̂ × s) per neighbor direction:
// the ±x neighbors feed the y and z field components, the ±y neighbors the
// x and z components, with the antisymmetric sign flip between directions.
// Boundary handling mirrors the exchange passes.
func (e *Evaluator) dmiSweep(s, dst *lattice.Field) {
	nx, ny, a := e.p.Nx, e.p.Ny, e.p.A
	n := nx * ny
	sx, sy, sz := s.C[lattice.X], s.C[lattice.Y], s.C[lattice.Z]
	hx, hy, hz := dst.C[lattice.X], dst.C[lattice.Y], dst.C[lattice.Z]

	if nx > 1 {
		for y := 0; y < ny; y++ {
			row := y * nx
			floats.AddScaled(hy[row:row+nx-1], -a, sz[row+1:row+nx]) // +x neighbor
			floats.AddScaled(hz[row:row+nx-1], a, sy[row+1:row+nx])
			floats.AddScaled(hy[row+1:row+nx], a, sz[row:row+nx-1]) // −x neighbor
			floats.AddScaled(hz[row+1:row+nx], -a, sy[row:row+nx-1])
		}
	}
	if ny > 1 {
		floats.AddScaled(hx[:n-nx], a, sz[nx:]) // +y neighbor
		floats.AddScaled(hz[:n-nx], -a, sx[nx:])
		floats.AddScaled(hx[nx:], -a, sz[:n-nx]) // −y neighbor
		floats.AddScaled(hz[nx:], a, sx[:n-nx])
	}
	if e.p.PBC {
		for y := 0; y < ny; y++ {
			row, last := y*nx, y*nx+nx-1
			hy[last] -= a * sz[row] // wrap: +x neighbor of the last column
			hz[last] += a * sy[row]
			hy[row] += a * sz[last] // wrap: −x neighbor of the first column
			hz[row] -= a * sy[last]
		}
		floats.AddScaled(hx[n-nx:], a, sz[:nx]) // wrap: +y neighbor of the top row
		floats.AddScaled(hz[n-nx:], -a, sx[:nx])
		floats.AddScaled(hx[:nx], -a, sz[n-nx:]) // wrap: −y neighbor of the bottom row
		floats.AddScaled(hz[:nx], a, sx[n-nx:])
	}
}
