package search

import (
	"fmt"
	"sort"
)

// CKNN answers a c-k-ANN query: repeatedly call RCNN at a growing
// radius, starting at RMin and multiplying by c each round, accumulating
// distinct candidates across rounds, until k have been found or the
// next radius would exceed the safety ceiling.
//
// State machine per round (spec.md §4.4.2-4.4.3):
//
//	SEARCH(r)   -> k candidates accumulated so far: DONE, return top-k
//	            -> otherwise, c*r > RMin*ceiling: GIVE_UP, return what we have
//	            -> otherwise: SEARCH(c*r), try again
//
// Grounded on original_source/main_k.cpp's C_ANN_K.
//
// Complexity: O(rounds * L) window queries, rounds bounded by
// log_c(ceiling).
func (d *Driver) CKNN(q []float64, k int) ([]Result, QueryStats, error) {
	if len(q) != d.family.D() {
		return nil, QueryStats{}, fmt.Errorf("search: CKNN: len(q)=%d, want %d: %w", len(q), d.family.D(), ErrDimensionMismatch)
	}
	if k <= 0 {
		return nil, QueryStats{}, fmt.Errorf("search: CKNN(k=%d): %w", k, ErrInvalidParam)
	}

	budget := 2*d.t*d.family.L() + k
	ceiling := d.rMin * d.opts.SafetyCeiling

	var (
		stats QueryStats
		seen  = make(map[int]struct{})
		acc   []Result
	)

	for r := d.rMin; ; r *= d.c {
		stats.Rounds++

		round, rs, err := d.RCNN(q, r, k, budget)
		if err != nil {
			return nil, stats, err
		}
		stats.CandidatesScanned += rs.CandidatesScanned

		for _, res := range round {
			if _, dup := seen[res.ID]; dup {
				continue
			}
			seen[res.ID] = struct{}{}
			acc = append(acc, res)
		}

		if len(acc) >= k {
			sortByDistance(acc)
			return acc[:k], stats, nil
		}

		if r*d.c > ceiling {
			stats.GaveUp = true
			sortByDistance(acc)
			return acc, stats, nil
		}
	}
}

// CANN answers a c-ANN query: the single nearest admissible neighbor
// found by CKNN(q, 1), or nil if the radius-expansion loop gave up
// without finding one.
func (d *Driver) CANN(q []float64) (*Result, QueryStats, error) {
	results, stats, err := d.CKNN(q, 1)
	if err != nil {
		return nil, stats, err
	}
	if len(results) == 0 {
		return nil, stats, nil
	}
	return &results[0], stats, nil
}

func sortByDistance(rs []Result) {
	sort.SliceStable(rs, func(i, j int) bool {
		return rs[i].Distance < rs[j].Distance
	})
}
