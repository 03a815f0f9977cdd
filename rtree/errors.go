package rtree

import "errors"

// Sentinel errors for the rtree package.
var (
	// ErrDimensionMismatch indicates an entry or query box does not have
	// the tree's configured dimension K.
	ErrDimensionMismatch = errors.New("rtree: dimension mismatch")

	// ErrInvalidParam indicates an out-of-range constructor parameter
	// (K < 1 or MaxEntries < 2).
	ErrInvalidParam = errors.New("rtree: invalid parameter")

	// ErrDuplicateID indicates BulkLoad was given two entries sharing an id.
	ErrDuplicateID = errors.New("rtree: duplicate id")
)
