// Package metrics holds lightweight, allocation-free counters for a
// DB-LSH engine: builds performed, queries answered, candidates
// scanned, and budget/ceiling terminations. Counters are safe for
// concurrent use from multiple query goroutines.
//
// A Collector is optional; an Engine built without one simply skips
// every increment, so the counters never bias the measurements they
// report on.
package metrics
