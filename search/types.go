package search

import "math"

// Result is one admissible neighbor returned by a query: a point within
// the accepted distance of the query, together with its id and exact
// Euclidean distance.
type Result struct {
	ID       int
	Point    []float64
	Distance float64
}

// RoundStats reports how much work a single (r,c)-NN call did, for the
// caller to fold into its own metrics.
type RoundStats struct {
	// CandidatesScanned is the number of distinct points examined (after
	// dedup across the L tables), not the number of table probes.
	CandidatesScanned int
	// BudgetHit is true if the call stopped early because
	// CandidatesScanned reached the caller's budget rather than because
	// it collected k admissible results.
	BudgetHit bool
}

// QueryStats reports how many radius-expansion rounds a c-ANN or
// c-k-ANN call needed, and whether it gave up at the safety ceiling.
type QueryStats struct {
	Rounds            int
	CandidatesScanned int
	GaveUp            bool
}

// Options configures a Driver beyond its required geometry.
//
// SafetyCeiling – multiple of RMin past which the radius-expansion
// loop gives up rather than keep growing the radius (spec.md §4.4.3:
// "r > R_min * 10^6"). Must be > 0. Default 1e6.
type Options struct {
	SafetyCeiling float64
}

// Option is a functional option for NewDriver.
type Option func(*Options)

// WithSafetyCeiling overrides the default 10^6 safety-ceiling multiple.
func WithSafetyCeiling(multiple float64) Option {
	return func(o *Options) {
		o.SafetyCeiling = multiple
	}
}

// DefaultOptions returns the driver defaults.
func DefaultOptions() Options {
	return Options{SafetyCeiling: 1e6}
}

func euclidean(a, b []float64) float64 {
	var sum float64
	for i := range a {
		d := a[i] - b[i]
		sum += d * d
	}
	return math.Sqrt(sum)
}
