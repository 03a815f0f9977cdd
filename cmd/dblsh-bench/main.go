// Command dblsh-bench loads a CSV of vectors, builds a DB-LSH engine,
// runs a batch of c-k-NN queries from a second CSV, and prints a
// timing report. It is a thin caller: it never reaches into core,
// projection, rtree, or search internals, only the public core.Engine
// API (grounded on nornicdb's cmd/nornicdb cobra entrypoint shape).
package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/dblsh/config"
	"github.com/katalvlaran/dblsh/core"
	"github.com/katalvlaran/dblsh/internal/logging"
	"github.com/katalvlaran/dblsh/metrics"
)

var (
	flagDataset string
	flagQueries string
	flagK       int // query k (c-k-ANN target count)
	flagHashK   int // projected dimension
	flagL       int
	flagC       float64
	flagT       int
	flagRMin    float64
	flagSeed    uint32
	flagLogLvl  string
)

func main() {
	root := &cobra.Command{
		Use:   "dblsh-bench",
		Short: "Build a DB-LSH index from a CSV dataset and benchmark c-k-ANN queries",
		RunE:  runBench,
	}

	root.Flags().StringVar(&flagDataset, "dataset", "", "path to a CSV file of vectors, one row per point (required)")
	root.Flags().StringVar(&flagQueries, "queries", "", "path to a CSV file of query vectors (overrides DBLSH_QUERIES; defaults to --dataset)")
	root.Flags().IntVar(&flagK, "k", 10, "number of neighbors to request per query")
	root.Flags().IntVar(&flagHashK, "hash-k", 16, "projected (hash) dimension per table")
	root.Flags().IntVar(&flagL, "tables", 8, "number of hash tables")
	root.Flags().Float64Var(&flagC, "c", 1.5, "approximation ratio, must be > 1")
	root.Flags().IntVar(&flagT, "budget-multiplier", 4, "budget multiplier t")
	root.Flags().Float64Var(&flagRMin, "r-min", 1.0, "initial search radius")
	root.Flags().Uint32Var(&flagSeed, "seed", 42, "projection family seed")
	root.Flags().StringVar(&flagLogLvl, "log-level", "", "debug|info|warn|error (overrides DBLSH_LOG_LEVEL)")

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runBench(cmd *cobra.Command, args []string) error {
	cfg := config.LoadFromEnv()
	if flagDataset != "" {
		cfg.DatasetPath = flagDataset
	}
	if flagLogLvl != "" {
		cfg.LogLevel = flagLogLvl
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	if flagQueries != "" {
		cfg.QueriesPath = flagQueries
	}
	queriesPath := cfg.QueriesPath
	if queriesPath == "" {
		queriesPath = cfg.DatasetPath
	}

	points, err := loadCSV(cfg.DatasetPath)
	if err != nil {
		return fmt.Errorf("dblsh-bench: loading dataset: %w", err)
	}
	if len(points) == 0 {
		return fmt.Errorf("dblsh-bench: dataset %q has no rows", cfg.DatasetPath)
	}

	queries, err := loadCSV(queriesPath)
	if err != nil {
		return fmt.Errorf("dblsh-bench: loading queries: %w", err)
	}

	logger := logging.NewZerologAdapter(zerolog.New(os.Stderr).Level(parseLevel(cfg.LogLevel)).With().Timestamp().Logger())
	coll := metrics.NewCollector()

	params := core.Params{
		D: len(points[0]), K: flagHashK, L: flagL,
		C: flagC, T: flagT, RMin: flagRMin, Seed: flagSeed,
	}

	buildStart := time.Now()
	eng, err := core.Build(points, params,
		core.WithLogger(logger),
		core.WithMetrics(coll),
		core.WithSafetyCeiling(cfg.SafetyCeilingMultiple),
	)
	if err != nil {
		return fmt.Errorf("dblsh-bench: build: %w", err)
	}
	buildElapsed := time.Since(buildStart)

	queryStart := time.Now()
	for _, q := range queries {
		if _, err := eng.QueryCKNN(q, flagK); err != nil {
			return fmt.Errorf("dblsh-bench: query: %w", err)
		}
	}
	queryElapsed := time.Since(queryStart)

	st := eng.Stats()
	snap := coll.Snapshot()
	fmt.Printf("indexed %d points (D=%d, K=%d, L=%d) in %s\n", st.N, st.D, st.K, st.L, buildElapsed)
	fmt.Printf("ran %d queries in %s (%.2f queries/sec)\n", len(queries), queryElapsed, float64(len(queries))/queryElapsed.Seconds())
	fmt.Printf("candidates scanned: %d, budget hits: %d, give-ups: %d, rounds: %d\n",
		snap.CandidatesScanned, snap.BudgetHits, snap.GiveUps, snap.Rounds)
	return nil
}

// loadCSV reads a flat numeric matrix: one row per point, comma-separated
// float64 coordinates, no header.
func loadCSV(path string) ([][]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	var points [][]float64
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		row := make([]float64, len(record))
		for i, field := range record {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, fmt.Errorf("parsing field %d: %w", i, err)
			}
			row[i] = v
		}
		points = append(points, row)
	}
	return points, nil
}

func parseLevel(level string) zerolog.Level {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.InfoLevel
	}
	return lvl
}
