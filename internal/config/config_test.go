package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, 100_000_000, cfg.Benchmark.WorkloadSize)
	assert.Equal(t, 2048, cfg.Benchmark.ChunkSize)
	assert.Equal(t, 10, cfg.Benchmark.Trials)
	assert.Equal(t, 1024, cfg.Benchmark.MaxWorkers)
	assert.Equal(t, "mutex", cfg.Benchmark.Cursor)
	assert.Equal(t, "stderr", cfg.Logging.Output)
	assert.NoError(t, cfg.Validate())
}

func TestLoader_File(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "minbench.yaml")

	configContent := `
benchmark:
  workload_size: 1000000
  chunk_size: 512
  trials: 3
  cursor: atomic

logging:
  level: debug
  format: json
`
	require.NoError(t, os.WriteFile(configPath, []byte(configContent), 0644))

	cfg, err := NewLoader().WithConfigPath(configPath).Load()
	require.NoError(t, err)

	assert.Equal(t, 1_000_000, cfg.Benchmark.WorkloadSize)
	assert.Equal(t, 512, cfg.Benchmark.ChunkSize)
	assert.Equal(t, 3, cfg.Benchmark.Trials)
	assert.Equal(t, "atomic", cfg.Benchmark.Cursor)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)

	// Untouched fields keep their defaults.
	assert.Equal(t, 1024, cfg.Benchmark.MaxWorkers)
	assert.Equal(t, "stderr", cfg.Logging.Output)
}

func TestLoader_FileMissing(t *testing.T) {
	_, err := NewLoader().WithConfigPath(filepath.Join(t.TempDir(), "absent.yaml")).Load()
	assert.Error(t, err)
}

func TestLoader_FileMalformed(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("benchmark: [1, 2"), 0644))

	_, err := NewLoader().WithConfigPath(configPath).Load()
	assert.Error(t, err)
}

func TestLoader_EnvOverrides(t *testing.T) {
	t.Setenv("MB_TRIALS", "4")
	t.Setenv("MB_SEED", "99")
	t.Setenv("MB_LOG_LEVEL", "warn")

	cfg, err := NewLoader().Load()
	require.NoError(t, err)

	assert.Equal(t, 4, cfg.Benchmark.Trials)
	assert.Equal(t, int64(99), cfg.Benchmark.Seed)
	assert.Equal(t, "warn", cfg.Logging.Level)
}

func TestLoader_EnvInvalid(t *testing.T) {
	t.Setenv("MB_CHUNK_SIZE", "big")

	_, err := NewLoader().Load()
	assert.Error(t, err)
}

func TestLoader_CmdOverridesWin(t *testing.T) {
	t.Setenv("MB_CHUNK_SIZE", "1024")

	cfg, err := NewLoader().WithCmdArgs(map[string]string{
		"benchmark.chunk_size":    "4096",
		"benchmark.workload_size": "1_000",
		"logging.format":          "json",
	}).Load()
	require.NoError(t, err)

	assert.Equal(t, 4096, cfg.Benchmark.ChunkSize)
	assert.Equal(t, 1000, cfg.Benchmark.WorkloadSize)
	assert.Equal(t, "json", cfg.Logging.Format)
}

func TestLoader_UnknownCmdPath(t *testing.T) {
	_, err := NewLoader().WithCmdArgs(map[string]string{"benchmark.threads": "4"}).Load()
	assert.Error(t, err)

	_, err = NewLoader().WithCmdArgs(map[string]string{"benchmark.trials.count": "4"}).Load()
	assert.Error(t, err)
}

func TestSerializeRoundTrip(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Benchmark.Seed = 7

	data, err := cfg.Serialize()
	require.NoError(t, err)

	configPath := filepath.Join(t.TempDir(), "minbench.yaml")
	require.NoError(t, os.WriteFile(configPath, data, 0644))

	loaded, err := NewLoader().WithConfigPath(configPath).Load()
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestLoggerConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Logging.FilePath = "/tmp/minbench.log"

	lc := cfg.LoggerConfig()
	assert.Equal(t, "info", lc.Level)
	assert.Equal(t, "/tmp/minbench.log", lc.FilePath)
	assert.Equal(t, 100, lc.MaxSize)
}
