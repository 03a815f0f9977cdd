// Package projection implements the DB-LSH projection family: L
// independent K×D matrices of i.i.d. standard-normal coefficients that
// map a D-dimensional point into K-dimensional "hash" space for one
// table each.
//
// Determinism is the whole contract here: for a fixed (seed, D, K, L)
// the draw must reproduce the exact same matrices, in the exact same
// order, on every run of this implementation. The draw order is
// table-major, then row-major: table ℓ first, then hash row k, then
// input column d. See Initialize for the draw loop and package randn
// for why the sampler is a hand-rolled Marsaglia polar transform rather
// than math/rand.NormFloat64.
//
// Example:
//
//	fam, err := projection.Initialize(784, 68, 18, 42)
//	if err != nil { ... }
//	y, err := fam.Project(0, point) // project point through table 0
package projection
