package projection

import "errors"

// Sentinel errors for the projection package.
var (
	// ErrDimensionMismatch indicates a point's length differs from the
	// family's configured input dimension D.
	// Usage: if errors.Is(err, ErrDimensionMismatch) { ... }
	ErrDimensionMismatch = errors.New("projection: dimension mismatch")

	// ErrInvalidParam indicates D, K, or L is out of its valid domain (< 1).
	ErrInvalidParam = errors.New("projection: invalid parameter")

	// ErrTableIndex indicates a table index outside [0, L).
	ErrTableIndex = errors.New("projection: table index out of range")
)
