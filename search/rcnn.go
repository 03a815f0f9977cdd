package search

import "fmt"

// RCNN answers a single (r,c)-NN call: scan every hash table's window
// query at radius r, deduplicate candidates across tables, and accept
// any candidate whose true Euclidean distance is within c*r. Stops as
// soon as k admissible results have been found, or once budget distinct
// candidates have been examined, whichever comes first.
//
// Grounded on original_source/main_k.cpp's RC_NN_K: candidates are
// deduplicated *before* the budget counter is incremented, so a point
// that collides across several tables is only charged once against
// budget — getting this ordering backwards would make budget a probe
// count instead of a distinct-candidate count.
//
// Complexity: O(L) window queries plus O(budget) distance evaluations.
func (d *Driver) RCNN(q []float64, r float64, k, budget int) ([]Result, RoundStats, error) {
	if len(q) != d.family.D() {
		return nil, RoundStats{}, fmt.Errorf("search: RCNN: len(q)=%d, want %d: %w", len(q), d.family.D(), ErrDimensionMismatch)
	}
	if r <= 0 || k <= 0 || budget <= 0 {
		return nil, RoundStats{}, fmt.Errorf("search: RCNN(r=%v,k=%d,budget=%d): %w", r, k, budget, ErrInvalidParam)
	}

	var (
		results []Result
		stats   RoundStats
		seen    = make(map[int]struct{})
		half    = d.w0 * r / 2
		accept  = d.c * r
	)

	for l := 0; l < d.family.L(); l++ {
		h, err := d.family.Project(l, q)
		if err != nil {
			return nil, stats, fmt.Errorf("search: RCNN: %w", err)
		}

		mins := make([]float64, len(h))
		maxs := make([]float64, len(h))
		for i, v := range h {
			mins[i] = v - half
			maxs[i] = v + half
		}

		entries, err := d.trees[l].WindowQuery(mins, maxs)
		if err != nil {
			return nil, stats, fmt.Errorf("search: RCNN: %w", err)
		}

		for _, e := range entries {
			if _, dup := seen[e.ID]; dup {
				continue
			}
			seen[e.ID] = struct{}{}
			stats.CandidatesScanned++

			if dist := euclidean(q, d.points[e.ID]); dist <= accept {
				results = append(results, Result{ID: e.ID, Point: d.points[e.ID], Distance: dist})
				if len(results) >= k {
					return results, stats, nil
				}
			}

			if stats.CandidatesScanned >= budget {
				stats.BudgetHit = true
				return results, stats, nil
			}
		}
	}

	return results, stats, nil
}
