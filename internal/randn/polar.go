// Package randn draws standard-normal doubles from a *rand.Rand using the
// Marsaglia polar method, independently of math/rand's own NormFloat64.
//
// The projection family (see package projection) must draw identical
// matrices bit-for-bit for a fixed seed across runs of this implementation.
// NormFloat64 uses the ziggurat algorithm and consumes an undocumented,
// data-dependent number of underlying uniform draws per sample, which
// would make the draw order impossible to pin down. The polar method
// consumes exactly one rejection-sampling loop of two uniforms per
// accepted pair and is simple enough to fix as part of the contract.
package randn

import (
	"math"
	"math/rand"
)

// Polar draws two independent N(0,1) samples from r using the Marsaglia
// polar method: draw (u1, u2) uniformly on (-1,1), reject if the point
// falls outside the unit circle or at the origin, then scale by the
// Box-Muller radius term.
//
// Complexity: O(1) expected iterations (~4/π ≈ 1.27 on average).
func Polar(r *rand.Rand) (z0, z1 float64) {
	for {
		u1 := 2*r.Float64() - 1 // uniform on (-1,1)
		u2 := 2*r.Float64() - 1
		s := u1*u1 + u2*u2
		if s >= 1 || s == 0 {
			continue
		}
		factor := math.Sqrt(-2 * math.Log(s) / s)
		return u1 * factor, u2 * factor
	}
}
