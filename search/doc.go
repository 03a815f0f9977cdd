// Package search implements the DB-LSH query driver: (r,c)-NN over all
// L hash tables with candidate deduplication and a hard access budget,
// and the radius-doubling loop that turns repeated (r,c)-NN calls into
// c-ANN and c-k-ANN answers.
//
// Grounded on original_source/main_k.cpp's RC_NN_K and C_ANN_K for the
// exact control flow (dedup before the budget check, early return once
// k admissible candidates are found, radius multiplied by c each
// round), and on the teacher's tsp/dijkstra package shape (a types.go
// holding the driver's request/result types, doc.go carrying
// complexity notes, one file per algorithm).
package search
