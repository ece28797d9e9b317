package field_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/spinfield/lattice"
)

// randomSpins builds a deterministic pseudo-random unit-spin configuration.
func randomSpins(t testing.TB, nx, ny int, seed int64) *lattice.Field {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	s, err := lattice.New(nx, ny)
	if err != nil {
		t.Fatalf("lattice.New: %v", err)
	}
	for y := 0; y < ny; y++ {
		for x := 0; x < nx; x++ {
			// Uniform direction on the sphere.
			z := 2*rng.Float64() - 1
			phi := 2 * math.Pi * rng.Float64()
			r := math.Sqrt(1 - z*z)
			s.Set(x, y, lattice.Vec3{r * math.Cos(phi), r * math.Sin(phi), z})
		}
	}

	return s
}
