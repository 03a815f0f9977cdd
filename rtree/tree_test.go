package rtree

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewTree_InvalidParams(t *testing.T) {
	_, err := NewTree(0, 16)
	require.ErrorIs(t, err, ErrInvalidParam)
	_, err = NewTree(2, 1)
	require.ErrorIs(t, err, ErrInvalidParam)
}

func TestBulkLoad_Empty(t *testing.T) {
	tr, err := NewTree(2, 16)
	require.NoError(t, err)
	require.NoError(t, tr.BulkLoad(nil))
	require.Equal(t, 0, tr.Size())

	res, err := tr.WindowQuery([]float64{-1, -1}, []float64{1, 1})
	require.NoError(t, err)
	require.Empty(t, res)
}

func TestBulkLoad_DimensionMismatch(t *testing.T) {
	tr, err := NewTree(2, 16)
	require.NoError(t, err)
	err = tr.BulkLoad([]Entry{{Point: []float64{1, 2, 3}, ID: 0}})
	require.ErrorIs(t, err, ErrDimensionMismatch)
}

func TestBulkLoad_DuplicateID(t *testing.T) {
	tr, err := NewTree(2, 16)
	require.NoError(t, err)
	err = tr.BulkLoad([]Entry{
		{Point: []float64{0, 0}, ID: 5},
		{Point: []float64{1, 1}, ID: 5},
	})
	require.ErrorIs(t, err, ErrDuplicateID)
}

func TestWindowQuery_MatchesBruteForce(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	const n = 500
	const k = 3
	entries := make([]Entry, n)
	for i := 0; i < n; i++ {
		p := make([]float64, k)
		for d := 0; d < k; d++ {
			p[d] = rng.Float64() * 100
		}
		entries[i] = Entry{Point: p, ID: i}
	}

	tr, err := NewTree(k, 16)
	require.NoError(t, err)
	require.NoError(t, tr.BulkLoad(entries))
	require.Equal(t, n, tr.Size())

	for trial := 0; trial < 20; trial++ {
		mins := make([]float64, k)
		maxs := make([]float64, k)
		for d := 0; d < k; d++ {
			a := rng.Float64() * 100
			b := rng.Float64() * 100
			if a > b {
				a, b = b, a
			}
			mins[d], maxs[d] = a, b
		}

		got, err := tr.WindowQuery(mins, maxs)
		require.NoError(t, err)

		want := []int{}
		for _, e := range entries {
			if boxContains(mins, maxs, e.Point) {
				want = append(want, e.ID)
			}
		}

		gotIDs := make([]int, len(got))
		for i, e := range got {
			gotIDs[i] = e.ID
		}
		sort.Ints(gotIDs)
		sort.Ints(want)
		require.Equal(t, want, gotIDs)
	}
}

func boxContains(mins, maxs, p []float64) bool {
	for i := range p {
		if p[i] < mins[i] || p[i] > maxs[i] {
			return false
		}
	}
	return true
}

func TestStats_ReflectsMaxEntries(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	entries := make([]Entry, 200)
	for i := range entries {
		entries[i] = Entry{Point: []float64{rng.Float64(), rng.Float64()}, ID: i}
	}
	tr, err := NewTree(2, 16)
	require.NoError(t, err)
	require.NoError(t, tr.BulkLoad(entries))

	st := tr.Stats()
	require.Equal(t, 200, st.Entries)
	require.Equal(t, 16, st.MaxEntries)
	require.Greater(t, st.Nodes, 0)
	require.Greater(t, st.Leaves, 0)
	require.GreaterOrEqual(t, st.Height, 1)
}

func TestClear(t *testing.T) {
	tr, err := NewTree(2, 16)
	require.NoError(t, err)
	require.NoError(t, tr.BulkLoad([]Entry{{Point: []float64{0, 0}, ID: 0}}))
	require.Equal(t, 1, tr.Size())
	tr.Clear()
	require.Equal(t, 0, tr.Size())
	res, err := tr.WindowQuery([]float64{-1, -1}, []float64{1, 1})
	require.NoError(t, err)
	require.Empty(t, res)
}
