package core

import (
	"github.com/katalvlaran/dblsh/metrics"
	"github.com/katalvlaran/dblsh/projection"
)

// engineConfig collects every Option's effect before Build validates it.
type engineConfig struct {
	logger        Logger
	safetyCeiling float64
	projection    *projection.Family
	metrics       *metrics.Collector
}

func defaultEngineConfig() engineConfig {
	return engineConfig{
		logger:        noopLogger{},
		safetyCeiling: 1e6,
	}
}

// Option configures Build. Following the teacher's functional-options
// convention, an Option constructor panics only on a programmer error
// (a nil pointer where a value is required); data-dependent values
// (like an out-of-range safety ceiling) are validated by Build itself
// and reported as ErrInvalidParam, since their validity depends on the
// caller's dataset and parameters rather than on misuse of the API.
type Option func(*engineConfig)

// WithLogger attaches a structured logger used only for Build's
// completion message and Clear's message. Panics on a nil logger; pass a Logger that matches
// internal/logging's zerolog adapter, or any other implementation.
func WithLogger(l Logger) Option {
	if l == nil {
		panic("core: WithLogger(nil)")
	}
	return func(c *engineConfig) {
		c.logger = l
	}
}

// WithSafetyCeiling overrides the default 10^6 multiple of RMin past
// which c-ANN/c-k-ANN queries give up rather than keep multiplying the
// search radius by c (spec.md §4.4.3). Build rejects a value <= 0 with
// ErrInvalidParam.
func WithSafetyCeiling(multiple float64) Option {
	return func(c *engineConfig) {
		c.safetyCeiling = multiple
	}
}

// WithProjection injects a caller-supplied projection family instead of
// the seeded draw Build would otherwise perform (spec.md §9 design
// note (b): pluggable/learned projections). The family's D, K, L must
// match Params exactly; Build validates this and returns
// ErrInvalidParam on mismatch. Panics on a nil family.
func WithProjection(f *projection.Family) Option {
	if f == nil {
		panic("core: WithProjection(nil)")
	}
	return func(c *engineConfig) {
		c.projection = f
	}
}

// WithMetrics attaches a Collector that Build and every query method
// report counters into. Panics on a nil collector.
func WithMetrics(m *metrics.Collector) Option {
	if m == nil {
		panic("core: WithMetrics(nil)")
	}
	return func(c *engineConfig) {
		c.metrics = m
	}
}
