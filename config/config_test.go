package config_test

import (
	"os"
	"testing"

	"github.com/katalvlaran/dblsh/config"
	"github.com/stretchr/testify/require"
)

func TestLoadFromEnv_Defaults(t *testing.T) {
	os.Unsetenv("DBLSH_DATASET")
	os.Unsetenv("DBLSH_LOG_LEVEL")
	os.Unsetenv("DBLSH_SAFETY_CEILING")

	cfg := config.LoadFromEnv()
	require.Equal(t, "info", cfg.LogLevel)
	require.Equal(t, 1e6, cfg.SafetyCeilingMultiple)
	require.Error(t, cfg.Validate())
}

func TestLoadFromEnv_Overrides(t *testing.T) {
	t.Setenv("DBLSH_DATASET", "points.csv")
	t.Setenv("DBLSH_LOG_LEVEL", "DEBUG")
	t.Setenv("DBLSH_SAFETY_CEILING", "1000")

	cfg := config.LoadFromEnv()
	require.Equal(t, "points.csv", cfg.DatasetPath)
	require.Equal(t, "debug", cfg.LogLevel)
	require.Equal(t, 1000.0, cfg.SafetyCeilingMultiple)
	require.NoError(t, cfg.Validate())
}

func TestValidate_RejectsBadLogLevel(t *testing.T) {
	cfg := &config.Config{DatasetPath: "x.csv", LogLevel: "verbose", SafetyCeilingMultiple: 1}
	require.Error(t, cfg.Validate())
}

func TestValidate_RejectsNonPositiveCeiling(t *testing.T) {
	cfg := &config.Config{DatasetPath: "x.csv", LogLevel: "info", SafetyCeilingMultiple: 0}
	require.Error(t, cfg.Validate())
}
