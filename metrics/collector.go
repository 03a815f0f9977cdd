package metrics

import "sync/atomic"

// Collector accumulates counters across the lifetime of one Engine.
// The zero value is ready to use.
type Collector struct {
	builds            atomic.Uint64
	queries           atomic.Uint64
	candidatesScanned atomic.Uint64
	budgetHits        atomic.Uint64
	giveUps           atomic.Uint64
	rounds            atomic.Uint64
}

// NewCollector returns a ready-to-use Collector.
func NewCollector() *Collector { return &Collector{} }

// RecordBuild increments the number of completed Build calls.
func (c *Collector) RecordBuild() { c.builds.Add(1) }

// RecordQuery folds one query's worth of round/budget/candidate
// activity into the collector.
func (c *Collector) RecordQuery(rounds int, candidatesScanned int, budgetHit, gaveUp bool) {
	c.queries.Add(1)
	c.rounds.Add(uint64(rounds))
	c.candidatesScanned.Add(uint64(candidatesScanned))
	if budgetHit {
		c.budgetHits.Add(1)
	}
	if gaveUp {
		c.giveUps.Add(1)
	}
}

// Snapshot is a point-in-time, non-atomic copy of a Collector's counters.
type Snapshot struct {
	Builds            uint64
	Queries           uint64
	CandidatesScanned uint64
	BudgetHits        uint64
	GiveUps           uint64
	Rounds            uint64
}

// Snapshot reads every counter into a plain struct.
func (c *Collector) Snapshot() Snapshot {
	return Snapshot{
		Builds:            c.builds.Load(),
		Queries:           c.queries.Load(),
		CandidatesScanned: c.candidatesScanned.Load(),
		BudgetHits:        c.budgetHits.Load(),
		GiveUps:           c.giveUps.Load(),
		Rounds:            c.rounds.Load(),
	}
}
