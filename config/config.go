// Package config loads process-level configuration for cmd/dblsh-bench
// from environment variables. Nothing in core, projection, rtree, or
// search reads process-global state; every algorithm takes its
// parameters as explicit constructor or option arguments, and this
// package exists solely so the benchmark CLI has somewhere to put its
// own knobs (grounded on nornicdb's pkg/config env-var-driven
// LoadFromEnv/Validate shape, scoped down to one flat struct since the
// CLI here has a single responsibility).
//
// Example:
//
//	cfg := config.LoadFromEnv()
//	if err := cfg.Validate(); err != nil {
//	    log.Fatal(err)
//	}
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Config holds cmd/dblsh-bench's environment-driven defaults. CLI flags
// (see cmd/dblsh-bench) override these when explicitly set.
type Config struct {
	// DatasetPath is the CSV file of vectors to index.
	DatasetPath string
	// QueriesPath is the CSV file of query vectors to run.
	QueriesPath string
	// LogLevel is one of "debug", "info", "warn", "error".
	LogLevel string
	// SafetyCeilingMultiple overrides core.WithSafetyCeiling's default.
	SafetyCeilingMultiple float64
}

// LoadFromEnv reads DBLSH_DATASET, DBLSH_QUERIES, DBLSH_LOG_LEVEL, and
// DBLSH_SAFETY_CEILING, falling back to sensible defaults for any that
// are unset or unparsable.
func LoadFromEnv() *Config {
	return &Config{
		DatasetPath:           getEnv("DBLSH_DATASET", ""),
		QueriesPath:           getEnv("DBLSH_QUERIES", ""),
		LogLevel:              strings.ToLower(getEnv("DBLSH_LOG_LEVEL", "info")),
		SafetyCeilingMultiple: getEnvFloat("DBLSH_SAFETY_CEILING", 1e6),
	}
}

// Validate checks field values that LoadFromEnv cannot guarantee are
// sane (an empty dataset path, an unrecognized log level, a
// non-positive ceiling multiple).
func (c *Config) Validate() error {
	if c.DatasetPath == "" {
		return fmt.Errorf("config: DatasetPath is required (set DBLSH_DATASET or --dataset)")
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("config: LogLevel=%q must be one of debug/info/warn/error", c.LogLevel)
	}
	if c.SafetyCeilingMultiple <= 0 {
		return fmt.Errorf("config: SafetyCeilingMultiple=%v must be > 0", c.SafetyCeilingMultiple)
	}
	return nil
}

func getEnv(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func getEnvFloat(key string, defaultVal float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return defaultVal
}
