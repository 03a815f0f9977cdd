package randn

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPolar_Deterministic(t *testing.T) {
	r1 := rand.New(rand.NewSource(7))
	r2 := rand.New(rand.NewSource(7))

	for i := 0; i < 100; i++ {
		a0, a1 := Polar(r1)
		b0, b1 := Polar(r2)
		require.Equal(t, a0, b0)
		require.Equal(t, a1, b1)
	}
}

func TestPolar_FiniteAndRoughlyNormal(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	const n = 20000
	var sum, sumSq float64
	for i := 0; i < n; i += 2 {
		z0, z1 := Polar(r)
		require.False(t, math.IsNaN(z0))
		require.False(t, math.IsNaN(z1))
		require.False(t, math.IsInf(z0, 0))
		require.False(t, math.IsInf(z1, 0))
		sum += z0 + z1
		sumSq += z0*z0 + z1*z1
	}
	mean := sum / n
	variance := sumSq/n - mean*mean
	require.InDelta(t, 0.0, mean, 0.05)
	require.InDelta(t, 1.0, variance, 0.1)
}
