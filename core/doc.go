// Package core is the central package of a DB-LSH approximate
// nearest-neighbor engine: it owns the Engine type, the Params
// construction contract, the sentinel error taxonomy, and Build, the
// engine's sole constructor. core composes projection, rtree, and
// search but never exposes their internals directly — callers see
// only Engine, Params, Stats, and search.Result.
//
// Complexity:
//
//   - Build: O(N*L*K*D) to project every point through every table, plus
//     O(N*L*log N) to bulk-load the L R*-trees.
//   - Query: see search.Driver's RCNN/CKNN/CANN doc comments.
//
// Concurrency: once Build returns, every query method is safe to call
// from multiple goroutines without external synchronization; Clear is
// the one exception and takes an exclusive lock.
//
// Example usage:
//
//	points := [][]float64{{1, 1}, {2, 2}, {4, 2}, {5, 5}, {7, 8}}
//	eng, err := core.Build(points, core.Params{
//	    D: 2, K: 2, L: 1,
//	    C: 1.5, T: 1, RMin: 1, Seed: 42,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	nearest, err := eng.QueryCANN([]float64{6, 6})
package core
