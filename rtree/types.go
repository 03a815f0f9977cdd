package rtree

import "golang.org/x/exp/constraints"

// DefaultMaxEntries is the R*-tree node branching factor mandated by
// spec.md §3 ("node-capacity-16 R*-tree").
const DefaultMaxEntries = 16

// Entry pairs a K-dimensional point with the integer id of the
// original-space vector it was projected from. Entries are read-only
// once bulk-loaded.
type Entry struct {
	Point []float64
	ID    int
}

// box is an axis-aligned K-dimensional hyper-rectangle: Min[k] <= Max[k]
// for every axis k. A point box has Min == Max.
type box struct {
	Min, Max []float64
}

func pointBox(p []float64) box {
	minC := make([]float64, len(p))
	maxC := make([]float64, len(p))
	copy(minC, p)
	copy(maxC, p)
	return box{Min: minC, Max: maxC}
}

// expand grows b in place to the smallest box containing both b and o.
func (b *box) expand(o box) {
	for i := range b.Min {
		b.Min[i] = min(b.Min[i], o.Min[i])
		b.Max[i] = max(b.Max[i], o.Max[i])
	}
}

// union returns the smallest box containing every box in bs.
func union(bs []box) box {
	out := box{
		Min: append([]float64(nil), bs[0].Min...),
		Max: append([]float64(nil), bs[0].Max...),
	}
	for _, b := range bs[1:] {
		out.expand(b)
	}
	return out
}

// intersects reports whether b and q overlap on every axis (inclusive).
func (b box) intersects(q box) bool {
	for i := range b.Min {
		if b.Max[i] < q.Min[i] || b.Min[i] > q.Max[i] {
			return false
		}
	}
	return true
}

// containsPoint reports whether point p (length len(b.Min)) lies within b,
// inclusive on both ends.
func (b box) containsPoint(p []float64) bool {
	for i, v := range p {
		if v < b.Min[i] || v > b.Max[i] {
			return false
		}
	}
	return true
}

func min[T constraints.Ordered](a, b T) T {
	if a < b {
		return a
	}
	return b
}

func max[T constraints.Ordered](a, b T) T {
	if a > b {
		return a
	}
	return b
}
