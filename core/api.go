package core

import (
	"fmt"
	"sync"

	"github.com/hashicorp/go-multierror"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/dblsh/metrics"
	"github.com/katalvlaran/dblsh/projection"
	"github.com/katalvlaran/dblsh/rtree"
	"github.com/katalvlaran/dblsh/search"
)

// Engine is a built, read-only DB-LSH index: one projection family, L
// R*-trees, and the original points. Build is its only constructor.
//
// Once Build returns, every query method may be called concurrently
// from multiple goroutines without external locking; Clear is the one
// mutator after construction and takes an exclusive lock against
// concurrent queries.
type Engine struct {
	mu sync.RWMutex

	params Params
	points [][]float64
	family *projection.Family
	trees  []*rtree.Tree
	driver *search.Driver

	logger  Logger
	metrics *metrics.Collector
}

// Build validates points and p, draws (or adopts, via WithProjection)
// the projection family, and bulk-loads L R*-trees from it, producing
// a search-ready Engine.
//
// Dimension mismatches across the whole dataset are collected and
// returned together (via go-multierror) rather than failing on the
// first offending point, so a caller debugging a bad ingestion batch
// sees every bad row at once.
func Build(points [][]float64, p Params, opts ...Option) (*Engine, error) {
	if err := validateParams(p); err != nil {
		return nil, err
	}

	cfg := defaultEngineConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.safetyCeiling <= 0 {
		return nil, fmt.Errorf("core: Build: safety ceiling=%v must be > 0: %w", cfg.safetyCeiling, ErrInvalidParam)
	}

	if err := validateDataset(points, p.D); err != nil {
		return nil, err
	}

	fam := cfg.projection
	if fam == nil {
		var err error
		fam, err = projection.Initialize(p.D, p.K, p.L, p.Seed)
		if err != nil {
			return nil, fmt.Errorf("core: Build: %w", err)
		}
	} else if fam.D() != p.D || fam.K() != p.K || fam.L() != p.L {
		return nil, fmt.Errorf("core: Build: injected projection has (D=%d,K=%d,L=%d), want (%d,%d,%d): %w",
			fam.D(), fam.K(), fam.L(), p.D, p.K, p.L, ErrInvalidParam)
	}

	owned := make([][]float64, len(points))
	for i, pt := range points {
		owned[i] = append([]float64(nil), pt...)
	}

	trees, err := bulkLoadTrees(fam, owned, p.K, p.L)
	if err != nil {
		return nil, fmt.Errorf("core: Build: %w", err)
	}

	w0 := 4 * p.C * p.C * p.RMin
	drv, err := search.NewDriver(fam, trees, owned, p.C, w0, p.RMin, p.T, search.WithSafetyCeiling(cfg.safetyCeiling))
	if err != nil {
		return nil, fmt.Errorf("core: Build: %w", err)
	}

	cfg.logger.Info("engine built", "n", len(owned), "d", p.D, "k", p.K, "l", p.L)
	if cfg.metrics != nil {
		cfg.metrics.RecordBuild()
	}

	return &Engine{
		params:  p,
		points:  owned,
		family:  fam,
		trees:   trees,
		driver:  drv,
		logger:  cfg.logger,
		metrics: cfg.metrics,
	}, nil
}

// bulkLoadTrees projects owned through each of the L tables and
// bulk-loads one R*-tree per table concurrently via errgroup: each
// goroutine only touches its own table's slice of entries and its own
// *rtree.Tree, so there is no shared mutable state between them, and
// the deterministic draw order of the projection family (already fixed
// by Initialize) is unaffected by the order in which tables finish.
func bulkLoadTrees(fam *projection.Family, points [][]float64, k, l int) ([]*rtree.Tree, error) {
	trees := make([]*rtree.Tree, l)
	var g errgroup.Group

	for table := 0; table < l; table++ {
		table := table
		g.Go(func() error {
			tr, err := rtree.NewTree(k, rtree.DefaultMaxEntries)
			if err != nil {
				return err
			}

			entries := make([]rtree.Entry, len(points))
			for i, pt := range points {
				h, err := fam.Project(table, pt)
				if err != nil {
					return err
				}
				entries[i] = rtree.Entry{Point: h, ID: i}
			}
			if err := tr.BulkLoad(entries); err != nil {
				return err
			}

			trees[table] = tr
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return trees, nil
}

func validateParams(p Params) error {
	if p.D < 1 || p.K < 1 || p.L < 1 {
		return fmt.Errorf("core: Build: D=%d K=%d L=%d must each be >= 1: %w", p.D, p.K, p.L, ErrInvalidParam)
	}
	if p.C <= 1 {
		return fmt.Errorf("core: Build: C=%v must be > 1: %w", p.C, ErrInvalidParam)
	}
	if p.T < 1 {
		return fmt.Errorf("core: Build: T=%d must be >= 1: %w", p.T, ErrInvalidParam)
	}
	if p.RMin <= 0 {
		return fmt.Errorf("core: Build: RMin=%v must be > 0: %w", p.RMin, ErrInvalidParam)
	}
	return nil
}

// validateDataset checks every point's dimension, collecting every
// offending index into one error via go-multierror instead of failing
// on the first.
func validateDataset(points [][]float64, d int) error {
	var merr *multierror.Error
	for i, p := range points {
		if len(p) != d {
			merr = multierror.Append(merr, fmt.Errorf("point %d has %d dims, want %d: %w", i, len(p), d, ErrDimensionMismatch))
		}
	}
	if merr != nil {
		return fmt.Errorf("core: Build: %w", merr.ErrorOrNil())
	}
	return nil
}

// QueryRCNN answers a single (r,c)-NN call at the engine's configured
// approximation ratio c: see search.Driver.RCNN for the exact contract.
func (e *Engine) QueryRCNN(q []float64, r float64, k int, budget int) ([]search.Result, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	if e.driver == nil {
		return nil, nil
	}

	results, stats, err := e.driver.RCNN(q, r, k, budget)
	if err != nil {
		return nil, fmt.Errorf("core: QueryRCNN: %w", err)
	}
	e.recordQuery(1, stats.CandidatesScanned, stats.BudgetHit, false)
	return results, nil
}

// QueryCANN answers a c-ANN query: the single nearest admissible
// neighbor, or nil if none was found before the safety ceiling.
func (e *Engine) QueryCANN(q []float64) (*search.Result, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	if e.driver == nil {
		return nil, nil
	}

	result, stats, err := e.driver.CANN(q)
	if err != nil {
		return nil, fmt.Errorf("core: QueryCANN: %w", err)
	}
	e.recordQuery(stats.Rounds, stats.CandidatesScanned, false, stats.GaveUp)
	return result, nil
}

// QueryCKNN answers a c-k-ANN query: up to k admissible neighbors,
// sorted by ascending distance.
func (e *Engine) QueryCKNN(q []float64, k int) ([]search.Result, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	if e.driver == nil {
		return nil, nil
	}

	results, stats, err := e.driver.CKNN(q, k)
	if err != nil {
		return nil, fmt.Errorf("core: QueryCKNN: %w", err)
	}
	e.recordQuery(stats.Rounds, stats.CandidatesScanned, false, stats.GaveUp)
	return results, nil
}

func (e *Engine) recordQuery(rounds, candidatesScanned int, budgetHit, gaveUp bool) {
	if e.metrics != nil {
		e.metrics.RecordQuery(rounds, candidatesScanned, budgetHit, gaveUp)
	}
}

// Stats reports the engine's current shape and accumulated query
// activity. BudgetHits/TotalQueries are zero unless the engine was
// built WithMetrics.
func (e *Engine) Stats() Stats {
	e.mu.RLock()
	defer e.mu.RUnlock()

	st := Stats{
		N: len(e.points),
		D: e.params.D,
		K: e.params.K,
		L: e.params.L,
	}
	st.PerTreeSize = make([]int, len(e.trees))
	for i, tr := range e.trees {
		st.PerTreeSize[i] = tr.Size()
	}
	if e.metrics != nil {
		snap := e.metrics.Snapshot()
		st.TotalQueries = snap.Queries
		st.BudgetHits = snap.BudgetHits
	}
	return st
}

// Clear empties the engine: every tree is cleared and the point
// storage is released. A cleared Engine answers every query as if it
// indexed zero points, matching spec.md §4.2's "bulk_load on an empty
// sequence yields an empty tree" failure model.
func (e *Engine) Clear() {
	e.mu.Lock()
	defer e.mu.Unlock()

	for _, tr := range e.trees {
		tr.Clear()
	}
	e.points = nil
	e.driver = nil
	e.logger.Info("engine cleared")
}
