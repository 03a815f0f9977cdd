// Package dblsh is a DB-LSH approximate nearest-neighbor search engine for
// high-dimensional points under Euclidean distance.
//
// The engine indexes a static set of D-dimensional vectors and answers
// (r,c)-near-neighbor, c-approximate nearest-neighbor, and c-approximate
// k-NN queries. Each of L hash tables projects the dataset through an
// independent K-dimensional random linear map and indexes the projection
// with an R*-tree; queries widen an axis-aligned window search across the
// L trees until enough candidates within the approximation ratio are
// found or the radius passes a safety ceiling, with each round's scan
// capped by a candidate budget.
//
// Everything under this root is documentation. The actual surface lives
// in subpackages, mirroring how the algorithm naturally decomposes:
//
//	core/       — Params/Stats/Engine, the public Build/Query façade, sentinel errors
//	projection/ — the L seeded K×D random projection matrices
//	rtree/      — the per-table R*-tree spatial index (bulk load + window query)
//	search/     — the (r,c)-NN and radius-expansion c-ANN / c-k-NN driver
//	metrics/    — build/query counters (opt-in, zero-cost when unused)
//	config/     — environment-driven configuration for the bench CLI only
//
// Quick start:
//
//	eng, err := core.Build(points, core.Params{D: 784, K: 68, L: 18, C: 1.01, T: 500, RMin: 1, Seed: 42})
//	if err != nil { ... }
//	results, err := eng.QueryCKNN(query, 10)
//
// See package core for the Params fields (types.go) and the sentinel
// error taxonomy (errors.go).
package dblsh
