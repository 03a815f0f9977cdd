package search

import "errors"

// Sentinel errors for the search package.
var (
	// ErrDimensionMismatch indicates a query point's length differs from
	// the driver's configured input dimension.
	ErrDimensionMismatch = errors.New("search: dimension mismatch")

	// ErrInvalidParam indicates a driver constructor or query argument is
	// out of its valid domain (e.g. k <= 0, r <= 0, budget <= 0).
	ErrInvalidParam = errors.New("search: invalid parameter")
)
