package field_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/spinfield/defect"
	"github.com/katalvlaran/spinfield/dipole"
	"github.com/katalvlaran/spinfield/field"
	"github.com/katalvlaran/spinfield/lattice"
)

//----------------------------------------------------------------------------//
// Whole-lattice vs per-site agreement
//----------------------------------------------------------------------------//

// TestAssemble_MatchesSite: the sweep decomposition must be numerically
// identical to per-site evaluation (up to summation order) at every site,
// for every boundary/defect combination. Pinning and DDI are off — they
// are assembler-only terms by contract.
func TestAssemble_MatchesSite(t *testing.T) {
	const nx, ny = 8, 6
	cases := []struct {
		name string
		pbc  bool
		d    defect.Defect
	}{
		{"OpenUniform", false, defect.Defect{}},
		{"PeriodicUniform", true, defect.Defect{}},
		{"OpenGaussian", false, defect.Defect{Kind: defect.Gaussian, Strength: -0.6, Width: 1.8, CX: 4, CY: 3}},
		{"PeriodicGaussian", true, defect.Defect{Kind: defect.Gaussian, Strength: -0.6, Width: 1.8, CX: 4, CY: 3}},
		{"PeriodicPoint", true, defect.Defect{Kind: defect.Point, Strength: 0.9, CX: 2, CY: 2}},
	}
	s := randomSpins(t, nx, ny, 7)
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := field.Params{J: 1.3, H: 0.2, A: 0.7, Dz: 0.4, Nx: nx, Ny: ny, PBC: tc.pbc, Defect: tc.d}
			e, err := field.New(p)
			require.NoError(t, err)

			dst, err := lattice.New(nx, ny)
			require.NoError(t, err)
			require.NoError(t, e.Assemble(s, dst))

			var h lattice.Vec3
			for y := 0; y < ny; y++ {
				for x := 0; x < nx; x++ {
					require.NoError(t, e.Site(s, x, y, &h))
					got := dst.At(x, y)
					for c := 0; c < 3; c++ {
						assert.InDelta(t, h[c], got[c], 1e-12, "site (%d,%d) component %d", x, y, c)
					}
				}
			}
		})
	}
}

//----------------------------------------------------------------------------//
// Concrete scenarios
//----------------------------------------------------------------------------//

// TestAssemble_Uniform4x4: the three reference scenarios on a 4×4 lattice
// with all spins along +z.
func TestAssemble_Uniform4x4(t *testing.T) {
	s, err := lattice.Uniform(4, 4, lattice.Vec3{0, 0, 1})
	require.NoError(t, err)
	dst, err := lattice.New(4, 4)
	require.NoError(t, err)

	// PBC on: (0,0,4) everywhere.
	e, err := field.New(field.DefaultParams(4, 4))
	require.NoError(t, err)
	require.NoError(t, e.Assemble(s, dst))
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			assert.Equal(t, lattice.Vec3{0, 0, 4}, dst.At(x, y), "site (%d,%d)", x, y)
		}
	}

	// PBC off: corners (0,0,2), edges (0,0,3), interior (0,0,4).
	p := field.DefaultParams(4, 4)
	p.PBC = false
	e, err = field.New(p)
	require.NoError(t, err)
	require.NoError(t, e.Assemble(s, dst))
	assert.Equal(t, lattice.Vec3{0, 0, 2}, dst.At(0, 0))
	assert.Equal(t, lattice.Vec3{0, 0, 3}, dst.At(1, 0))
	assert.Equal(t, lattice.Vec3{0, 0, 4}, dst.At(1, 1))
	assert.Equal(t, lattice.Vec3{0, 0, 2}, dst.At(3, 3))

	// H=0.5, PBC on: interior field (0,0,4.5).
	p = field.DefaultParams(4, 4)
	p.H = 0.5
	e, err = field.New(p)
	require.NoError(t, err)
	require.NoError(t, e.Assemble(s, dst))
	assert.Equal(t, lattice.Vec3{0, 0, 4.5}, dst.At(2, 2))
}

// TestAssemble_Pinning: HPin lands on the z-component of exactly the
// pinning site and nowhere else.
func TestAssemble_Pinning(t *testing.T) {
	const nx, ny = 5, 4
	s, err := lattice.Uniform(nx, ny, lattice.Vec3{0, 0, 1})
	require.NoError(t, err)
	p := field.Params{Nx: nx, Ny: ny, PBC: true, PinX: 1, PinY: 2, HPin: 0.25}
	e, err := field.New(p)
	require.NoError(t, err)

	dst, err := lattice.New(nx, ny)
	require.NoError(t, err)
	require.NoError(t, e.Assemble(s, dst))
	for y := 0; y < ny; y++ {
		for x := 0; x < nx; x++ {
			want := lattice.Vec3{}
			if x == 1 && y == 2 {
				want[lattice.Z] = 0.25
			}
			assert.Equal(t, want, dst.At(x, y), "site (%d,%d)", x, y)
		}
	}
}

//----------------------------------------------------------------------------//
// DMI symmetry
//----------------------------------------------------------------------------//

// TestAssemble_DMIInversionAntisymmetry: on a torus, spatially inverting
// the spin configuration through the lattice center negates and inverts
// the DMI field: H'[r] = −H[inv(r)]. Only the DMI term is active.
func TestAssemble_DMIInversionAntisymmetry(t *testing.T) {
	const nx, ny = 6, 4
	s := randomSpins(t, nx, ny, 3)
	inv, err := lattice.New(nx, ny)
	require.NoError(t, err)
	for y := 0; y < ny; y++ {
		for x := 0; x < nx; x++ {
			inv.Set(x, y, s.At(nx-1-x, ny-1-y))
		}
	}

	e, err := field.New(field.Params{A: 0.9, Nx: nx, Ny: ny, PBC: true})
	require.NoError(t, err)
	h, err := lattice.New(nx, ny)
	require.NoError(t, err)
	hInv, err := lattice.New(nx, ny)
	require.NoError(t, err)
	require.NoError(t, e.Assemble(s, h))
	require.NoError(t, e.Assemble(inv, hInv))

	for y := 0; y < ny; y++ {
		for x := 0; x < nx; x++ {
			got := hInv.At(x, y)
			want := h.At(nx-1-x, ny-1-y)
			for c := 0; c < 3; c++ {
				assert.InDelta(t, -want[c], got[c], 1e-12, "site (%d,%d) component %d", x, y, c)
			}
		}
	}
}

//----------------------------------------------------------------------------//
// Dipolar integration and errors
//----------------------------------------------------------------------------//

// TestAssemble_Dipolar wires an identity convolver through Params and
// checks the Ed-scaled contribution lands on top of the exchange term.
func TestAssemble_Dipolar(t *testing.T) {
	const nx, ny = 4, 4
	blk := func() *mat.Dense { return mat.NewDense(ny, nx, nil) }
	p := field.DefaultParams(nx, ny)
	p.Ed = 0.5
	p.Kernel = &dipole.Kernel{XX: blk(), XY: blk(), XZ: blk(), YY: blk(), YZ: blk(), ZZ: blk()}
	p.Convolver = func(s *lattice.Field, k *dipole.Kernel, pbc bool) (*lattice.Field, error) {
		return s.Clone(), nil
	}
	e, err := field.New(p)
	require.NoError(t, err)

	s, err := lattice.Uniform(nx, ny, lattice.Vec3{0, 0, 1})
	require.NoError(t, err)
	dst, err := lattice.New(nx, ny)
	require.NoError(t, err)
	require.NoError(t, e.Assemble(s, dst))
	// exchange (0,0,4) + Ed·identity (0,0,0.5)
	assert.Equal(t, lattice.Vec3{0, 0, 4.5}, dst.At(2, 1))
}

func TestAssemble_ShapeErrors(t *testing.T) {
	e, err := field.New(field.DefaultParams(4, 4))
	require.NoError(t, err)

	s, err := lattice.Uniform(4, 4, lattice.Vec3{0, 0, 1})
	require.NoError(t, err)
	small, err := lattice.New(3, 3)
	require.NoError(t, err)

	assert.ErrorIs(t, e.Assemble(small, small.Clone()), field.ErrShapeMismatch)
	assert.ErrorIs(t, e.Assemble(s, small), field.ErrShapeMismatch)
	assert.ErrorIs(t, e.Assemble(s, s), field.ErrAliasedOutput)
}
