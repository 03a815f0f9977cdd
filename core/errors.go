package core

import "errors"

// Sentinel errors returned by the core package. Wrapped with a method
// prefix (fmt.Errorf("core: Build: %w", ...)); callers branch with
// errors.Is.
var (
	// ErrDimensionMismatch indicates a point (in the build dataset or a
	// query) does not have the engine's configured dimension D.
	ErrDimensionMismatch = errors.New("core: dimension mismatch")

	// ErrInvalidParam indicates a Params field or Option argument is
	// outside its valid domain (e.g. D/K/L < 1, C <= 1, RMin <= 0).
	ErrInvalidParam = errors.New("core: invalid parameter")

	// ErrResourceExhaustion represents the fatal, unrecoverable class of
	// failure spec.md §7 reserves for allocation/resource exhaustion.
	// Go already turns true out-of-memory conditions into a runtime
	// crash rather than a recoverable error, so no code path in this
	// package raises ErrResourceExhaustion; it exists for API
	// completeness only, and no Option installs an allocator hook.
	ErrResourceExhaustion = errors.New("core: resource exhaustion")
)
