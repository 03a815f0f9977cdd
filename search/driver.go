package search

import (
	"fmt"

	"github.com/katalvlaran/dblsh/projection"
	"github.com/katalvlaran/dblsh/rtree"
)

// Driver answers (r,c)-NN, c-ANN and c-k-ANN queries over a fixed,
// already-built DB-LSH index: one projection family, one R*-tree per
// hash table, and the original points keyed by id.
//
// A Driver is read-only after construction: every query method may be
// called concurrently from multiple goroutines.
type Driver struct {
	family *projection.Family
	trees  []*rtree.Tree
	points [][]float64

	c    float64 // approximation ratio
	w0   float64 // base LSH window width
	rMin float64 // minimum radius, floor of the radius-expansion loop
	t    int     // budget multiplier; per-round (r,c)-NN budget is 2*t*L + k

	opts Options
}

// NewDriver builds a Driver over a pre-built index. len(trees) must
// equal family.L(), and points[id] must be the original-space vector
// whose projections were bulk-loaded into trees[*] under id. t is the
// budget multiplier used internally by CANN/CKNN to size each round's
// (r,c)-NN budget (spec.md §4.4.2: T = 2*t*L + k).
func NewDriver(family *projection.Family, trees []*rtree.Tree, points [][]float64, c, w0, rMin float64, t int, opts ...Option) (*Driver, error) {
	if family == nil {
		return nil, fmt.Errorf("search: NewDriver: nil family: %w", ErrInvalidParam)
	}
	if len(trees) != family.L() {
		return nil, fmt.Errorf("search: NewDriver: %d trees, want %d: %w", len(trees), family.L(), ErrInvalidParam)
	}
	if c <= 1 {
		return nil, fmt.Errorf("search: NewDriver: c=%v must be > 1: %w", c, ErrInvalidParam)
	}
	if w0 <= 0 || rMin <= 0 {
		return nil, fmt.Errorf("search: NewDriver: w0=%v rMin=%v must be > 0: %w", w0, rMin, ErrInvalidParam)
	}
	if t < 1 {
		return nil, fmt.Errorf("search: NewDriver: t=%d must be >= 1: %w", t, ErrInvalidParam)
	}

	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.SafetyCeiling <= 0 {
		return nil, fmt.Errorf("search: NewDriver: SafetyCeiling=%v must be > 0: %w", o.SafetyCeiling, ErrInvalidParam)
	}

	return &Driver{
		family: family,
		trees:  trees,
		points: points,
		c:      c,
		w0:     w0,
		rMin:   rMin,
		t:      t,
		opts:   o,
	}, nil
}
