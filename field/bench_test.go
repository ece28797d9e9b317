package field_test

import (
	"testing"

	"github.com/katalvlaran/spinfield/defect"
	"github.com/katalvlaran/spinfield/field"
	"github.com/katalvlaran/spinfield/lattice"
)

// benchAssemble measures one full field assembly on an n×n lattice with
// every interaction except DDI active. This is the per-step cost an
// integrator pays.
func benchAssemble(b *testing.B, n int, d defect.Defect) {
	s := randomSpins(b, n, n, 42)
	p := field.Params{J: 1, H: 0.1, A: 0.5, Dz: 0.2, Nx: n, Ny: n, PBC: true, Defect: d}
	e, err := field.New(p)
	if err != nil {
		b.Fatalf("setup: %v", err)
	}
	dst, err := lattice.New(n, n)
	if err != nil {
		b.Fatalf("setup: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err = e.Assemble(s, dst); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkAssemble64(b *testing.B)  { benchAssemble(b, 64, defect.Defect{}) }
func BenchmarkAssemble256(b *testing.B) { benchAssemble(b, 256, defect.Defect{}) }

func BenchmarkAssembleGaussian256(b *testing.B) {
	benchAssemble(b, 256, defect.Defect{Kind: defect.Gaussian, Strength: -0.5, Width: 5, CX: 128, CY: 128})
}

// BenchmarkSite measures the localized evaluation used by relaxation
// algorithms that probe single sites.
func BenchmarkSite(b *testing.B) {
	const n = 64
	s := randomSpins(b, n, n, 42)
	e, err := field.New(field.Params{J: 1, A: 0.5, Dz: 0.2, Nx: n, Ny: n, PBC: true})
	if err != nil {
		b.Fatalf("setup: %v", err)
	}

	var h lattice.Vec3
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err = e.Site(s, (i%(n-2))+1, 32, &h); err != nil {
			b.Fatal(err)
		}
	}
}
