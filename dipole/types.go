// SPDX-License-Identifier: MIT
// Package dipole: kernel/convolver types and sentinel errors.
package dipole

import (
	"errors"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/spinfield/lattice"
)

// Sentinel errors for the dipolar adapter.
var (
	// ErrNilKernel indicates the kernel matrices are absent although the
	// dipolar constant is non-zero.
	ErrNilKernel = errors.New("dipole: kernel matrices required when Ed is non-zero")

	// ErrBadKernel indicates a missing or mis-shaped kernel block.
	ErrBadKernel = errors.New("dipole: kernel block missing or mis-shaped")

	// ErrNilConvolver indicates no convolution operator was supplied.
	ErrNilConvolver = errors.New("dipole: convolver is nil")

	// ErrShapeMismatch indicates the convolver returned a field whose
	// shape differs from the input lattice.
	ErrShapeMismatch = errors.New("dipole: convolver returned wrong field shape")
)

// Kernel bundles the six precomputed demagnetizing kernel matrices, one per
// independent component of the symmetric dipolar tensor. Each block is an
// Ny×Nx dense matrix (rows follow lattice rows). The blocks are opaque to
// this core beyond shape checks: they are produced by the same external
// provider that performs the convolution, and passed through untouched.
type Kernel struct {
	XX, XY, XZ, YY, YZ, ZZ *mat.Dense
}

// Convolver is the external dense dipolar-convolution operator. Given the
// spin lattice, the kernel, and the periodic-boundary flag it returns the
// unscaled dipolar field, one 3-vector per site, matching the input shape.
// Implementations must not retain or mutate s.
type Convolver func(s *lattice.Field, k *Kernel, pbc bool) (*lattice.Field, error)
