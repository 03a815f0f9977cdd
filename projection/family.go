package projection

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/dblsh/internal/randn"
)

// Family holds L independent K×D random projection matrices.
//
// A[l][k][d] is the coefficient of hash row k, table l, for input
// dimension d. Family is immutable after Initialize returns; callers
// may share one *Family across arbitrarily many concurrent Project
// calls.
type Family struct {
	d, k, l int
	a       [][][]float64 // [table][row][col]
}

// D returns the configured input dimension.
func (f *Family) D() int { return f.d }

// K returns the configured projected dimension.
func (f *Family) K() int { return f.k }

// L returns the number of tables.
func (f *Family) L() int { return f.l }

// Initialize draws an L-table, K×D projection family seeded
// deterministically from seed.
//
// Draw order is table-major, row-major, column-major: for l in
// 0..L, for k in 0..K, for d in 0..D, draw one N(0,1) sample. Two
// Initialize calls with identical (d, k, l, seed) produce bit-for-bit
// identical matrices.
//
// Complexity: O(L*K*D) time and space.
func Initialize(d, k, l int, seed uint32) (*Family, error) {
	if d < 1 || k < 1 || l < 1 {
		return nil, fmt.Errorf("projection: Initialize(d=%d,k=%d,l=%d): %w", d, k, l, ErrInvalidParam)
	}

	src := rand.New(rand.NewSource(int64(seed)))
	a := make([][][]float64, l)
	// pendingZ1 buffers the second Marsaglia-polar output so that a stream
	// of single draws (total count L*K*D may be odd) never discards a
	// sample, which would perturb the deterministic draw order.
	var pendingZ1 float64
	havePending := false
	draw := func() float64 {
		if havePending {
			havePending = false
			return pendingZ1
		}
		z0, z1 := randn.Polar(src)
		pendingZ1 = z1
		havePending = true
		return z0
	}

	for table := 0; table < l; table++ {
		rows := make([][]float64, k)
		for row := 0; row < k; row++ {
			cols := make([]float64, d)
			for col := 0; col < d; col++ {
				cols[col] = draw()
			}
			rows[row] = cols
		}
		a[table] = rows
	}

	return &Family{d: d, k: k, l: l, a: a}, nil
}

// FromMatrices builds a Family directly from caller-supplied projection
// matrices, bypassing the seeded draw. This supports injecting learned
// or precomputed projections (spec.md §9 design note (b)). Every
// a[table] must be a k×d matrix; a must have exactly l tables.
func FromMatrices(d, k, l int, a [][][]float64) (*Family, error) {
	if d < 1 || k < 1 || l < 1 {
		return nil, fmt.Errorf("projection: FromMatrices(d=%d,k=%d,l=%d): %w", d, k, l, ErrInvalidParam)
	}
	if len(a) != l {
		return nil, fmt.Errorf("projection: FromMatrices: got %d tables, want %d: %w", len(a), l, ErrInvalidParam)
	}
	for t, rows := range a {
		if len(rows) != k {
			return nil, fmt.Errorf("projection: FromMatrices: table %d has %d rows, want %d: %w", t, len(rows), k, ErrInvalidParam)
		}
		for r, cols := range rows {
			if len(cols) != d {
				return nil, fmt.Errorf("projection: FromMatrices: table %d row %d has %d cols, want %d: %w", t, r, len(cols), d, ErrInvalidParam)
			}
		}
	}
	return &Family{d: d, k: k, l: l, a: a}, nil
}

// Project maps x (length D) into K-dimensional space through table l's
// matrix: y[row] = Σ_d A[l][row][d] * x[d].
//
// Complexity: O(K*D) time, O(K) space for the result.
func (f *Family) Project(l int, x []float64) ([]float64, error) {
	if l < 0 || l >= f.l {
		return nil, fmt.Errorf("projection: Project(l=%d): %w", l, ErrTableIndex)
	}
	if len(x) != f.d {
		return nil, fmt.Errorf("projection: Project: len(x)=%d, want %d: %w", len(x), f.d, ErrDimensionMismatch)
	}

	rows := f.a[l]
	y := make([]float64, f.k)
	for row := 0; row < f.k; row++ {
		coeffs := rows[row]
		var sum float64
		for col := 0; col < f.d; col++ {
			sum += coeffs[col] * x[col]
		}
		y[row] = sum
	}
	return y, nil
}
