// Package lattice provides dense 3-component vector fields over a 2D grid.
//
// A Field stores one 3-vector per site of an Nx×Ny lattice. Both the spin
// configuration and the effective field produced from it are Fields; the
// package itself attaches no physical meaning to the components.
//
//   - Storage is component-major: three flat planes of length Nx·Ny, so
//     whole-lattice passes can run as contiguous slice sweeps.
//   - Sites are addressed 0-based, row-major: index = y·Nx + x.
//   - Neighbor resolution is boundary-aware: under periodic boundaries a
//     missing neighbor wraps to the lattice-opposite site, under open
//     boundaries it is reported absent.
//
// Fields never alias caller memory and are safe for concurrent reads.
package lattice
