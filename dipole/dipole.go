// SPDX-License-Identifier: MIT
package dipole

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/spinfield/lattice"
)

// Validate checks that all six kernel blocks are present and shaped Ny×Nx
// for an nx×ny lattice. Returns ErrNilKernel on a nil receiver and
// ErrBadKernel naming the first offending block otherwise.
// Complexity: O(1).
func (k *Kernel) Validate(nx, ny int) error {
	if k == nil {
		return ErrNilKernel
	}
	blocks := []struct {
		name string
		m    *mat.Dense
	}{
		{"XX", k.XX}, {"XY", k.XY}, {"XZ", k.XZ},
		{"YY", k.YY}, {"YZ", k.YZ}, {"ZZ", k.ZZ},
	}
	for _, b := range blocks {
		if b.m == nil {
			return fmt.Errorf("block %s: %w", b.name, ErrBadKernel)
		}
		if r, c := b.m.Dims(); r != ny || c != nx {
			return fmt.Errorf("block %s is %dx%d, want %dx%d: %w", b.name, r, c, ny, nx, ErrBadKernel)
		}
	}

	return nil
}

// Accumulate invokes the convolver on s and adds the returned field, scaled
// by the dipolar constant ed, into dst. With ed == 0 it returns immediately
// without calling the convolver (the non-dipolar dummy path). dst must
// match the shape of s.
//
// Errors: ErrNilConvolver, ErrShapeMismatch, or the convolver's own error
// wrapped for errors.Is matching.
// Complexity: O(Nx·Ny) on top of the convolver's cost.
func Accumulate(conv Convolver, s *lattice.Field, k *Kernel, ed float64, pbc bool, dst *lattice.Field) error {
	if ed == 0 {
		return nil
	}
	if conv == nil {
		return ErrNilConvolver
	}
	h, err := conv(s, k, pbc)
	if err != nil {
		return fmt.Errorf("dipole: convolver failed: %w", err)
	}
	if !lattice.SameShape(h, dst) {
		return ErrShapeMismatch
	}
	for c := range dst.C {
		floats.AddScaled(dst.C[c], ed, h.C[c])
	}

	return nil
}
