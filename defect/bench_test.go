package defect_test

import (
	"testing"

	"github.com/katalvlaran/spinfield/defect"
)

// BenchmarkBuildGaussian measures the one-time weight-plane construction
// on a 256×256 lattice (4 Exp per site). This cost is paid once per run
// and amortized over every integration step.
func BenchmarkBuildGaussian(b *testing.B) {
	d := defect.Defect{Kind: defect.Gaussian, Strength: -0.5, Width: 8, CX: 128, CY: 128}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := defect.Build(d, 256, 256); err != nil {
			b.Fatal(err)
		}
	}
}
