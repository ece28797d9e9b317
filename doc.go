// Package spinfield computes the micromagnetic effective field acting on a
// two-dimensional lattice of unit spins — the driving term of skyrmion
// dynamics.
//
// 🧲 What is spinfield?
//
//	A pure-Go numerical kernel that assembles, for every spin of an Nx×Ny
//	lattice, the negative energy derivative composed of:
//		• Exchange — nearest-neighbor coupling of strength J
//		• Zeeman   — uniform out-of-plane field H
//		• DMI      — Bloch-type Dzyaloshinskii–Moriya coupling A
//		• PMA      — perpendicular anisotropy Dz
//		• DDI      — dipole-dipole term, delegated to an external convolver
//		• Pinning  — a localized field fixing a skyrmion's position
//
// The engine is the inner loop of time integrators (LLG, field-alignment
// relaxation); those integrators live outside this module and call in through
// two contracts: a per-site evaluation and a whole-lattice assembly.
//
// Everything is organized under four subpackages:
//
//	lattice/ — dense 3-component vector fields over the grid, index math,
//	           boundary-aware neighbor resolution (open or periodic)
//	defect/  — localized exchange-coupling modifications (point, Gaussian)
//	           and their precomputed per-bond weight planes
//	dipole/  — the demagnetizing-kernel pass-through to the external
//	           dipolar convolution operator
//	field/   — the per-site evaluator and the vectorized whole-lattice
//	           assembler, sharing one boundary-branch helper
//
// Field evaluation is sequential and deterministic: no goroutines, no
// blocking, no retained references to caller state. Parameter sweeps
// parallelize one level up by running independent evaluators.
//
// Dive into the package docs and examples/ for walkthroughs.
package spinfield
