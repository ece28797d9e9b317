package lattice

// Field is a dense 3-component vector field over an Nx×Ny grid.
// C holds the three component planes (C[X], C[Y], C[Z]), each of length
// Nx·Ny in row-major order. The planes are exposed so stencil code can run
// contiguous sweeps over them; stencil packages treat them as read-only
// input and write only into their own output Field.
type Field struct {
	Nx, Ny int
	C      [3][]float64
}

// New allocates a zeroed Field of the given dimensions.
// Returns ErrBadDimensions if nx or ny is smaller than 1.
// Complexity: O(Nx·Ny) time and memory.
func New(nx, ny int) (*Field, error) {
	if nx < 1 || ny < 1 {
		return nil, ErrBadDimensions
	}
	f := &Field{Nx: nx, Ny: ny}
	for c := range f.C {
		f.C[c] = make([]float64, nx*ny)
	}

	return f, nil
}

// Uniform allocates a Field with every site set to v.
// Complexity: O(Nx·Ny).
func Uniform(nx, ny int, v Vec3) (*Field, error) {
	f, err := New(nx, ny)
	if err != nil {
		return nil, err
	}
	for c := range f.C {
		for i := range f.C[c] {
			f.C[c][i] = v[c]
		}
	}

	return f, nil
}

// Sites returns the number of lattice sites, Nx·Ny.
func (f *Field) Sites() int { return f.Nx * f.Ny }

// Idx maps (x,y) to the row-major plane index y·Nx + x.
// Complexity: O(1).
func (f *Field) Idx(x, y int) int { return y*f.Nx + x }

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (f *Field) InBounds(x, y int) bool {
	return x >= 0 && x < f.Nx && y >= 0 && y < f.Ny
}

// At returns the vector stored at site (x,y). The caller must ensure the
// site is in bounds (see InBounds).
func (f *Field) At(x, y int) Vec3 {
	i := f.Idx(x, y)

	return Vec3{f.C[X][i], f.C[Y][i], f.C[Z][i]}
}

// Set stores v at site (x,y). The caller must ensure the site is in bounds.
func (f *Field) Set(x, y int, v Vec3) {
	i := f.Idx(x, y)
	f.C[X][i], f.C[Y][i], f.C[Z][i] = v[X], v[Y], v[Z]
}

// Zero resets every component of every site to 0 in place.
func (f *Field) Zero() {
	for c := range f.C {
		clear(f.C[c])
	}
}

// Clone returns a deep copy sharing no memory with f.
func (f *Field) Clone() *Field {
	out := &Field{Nx: f.Nx, Ny: f.Ny}
	for c := range f.C {
		out.C[c] = make([]float64, len(f.C[c]))
		copy(out.C[c], f.C[c])
	}

	return out
}

// SameShape reports whether a and b cover identical grids.
func SameShape(a, b *Field) bool {
	return a != nil && b != nil && a.Nx == b.Nx && a.Ny == b.Ny
}

// Neighbor resolves the stencil neighbor of (x,y) one step along axis ax in
// direction d. Under periodic boundaries a step off the grid wraps to the
// lattice-opposite site; under open boundaries ok=false marks the neighbor
// absent. This is the single place boundary branching lives — both the
// per-site and the whole-lattice field paths resolve edges through it.
// Complexity: O(1).
func (f *Field) Neighbor(x, y int, ax Axis, d Dir, pbc bool) (idx int, ok bool) {
	if ax == AxisX {
		x += int(d)
		if x < 0 || x >= f.Nx {
			if !pbc {
				return 0, false
			}
			x = ((x % f.Nx) + f.Nx) % f.Nx
		}
	} else {
		y += int(d)
		if y < 0 || y >= f.Ny {
			if !pbc {
				return 0, false
			}
			y = ((y % f.Ny) + f.Ny) % f.Ny
		}
	}

	return y*f.Nx + x, true
}
