package harness

import (
	"errors"
	"fmt"

	"yqhp/minbench/internal/config"
	"yqhp/minbench/pkg/types"
)

// DefaultMaxWorkers bounds the worker count when Config.MaxWorkers is zero.
const DefaultMaxWorkers = types.MaxWorkers

// Config describes one benchmark invocation.
type Config struct {
	Strategy  types.Strategy
	Workers   int
	Migration int // opaque tag echoed into the report

	WorkloadSize int
	ChunkSize    int
	Trials       int
	MaxWorkers   int
	Seed         int64 // 0 seeds from the clock
	MaxValue     int
	Cursor       types.CursorKind
}

// FromConfig builds a harness configuration from the loaded file/env/flag
// configuration and the per-invocation parameters.
func FromConfig(cfg *config.Config, strategy types.Strategy, workers, migration int) Config {
	return Config{
		Strategy:     strategy,
		Workers:      workers,
		Migration:    migration,
		WorkloadSize: cfg.Benchmark.WorkloadSize,
		ChunkSize:    cfg.Benchmark.ChunkSize,
		Trials:       cfg.Benchmark.Trials,
		MaxWorkers:   cfg.Benchmark.MaxWorkers,
		Seed:         cfg.Benchmark.Seed,
		MaxValue:     cfg.Benchmark.MaxValue,
		Cursor:       types.CursorKind(cfg.Benchmark.Cursor),
	}
}

// Validate reports every problem with c.
func (c Config) Validate() error {
	maxWorkers := c.MaxWorkers
	if maxWorkers <= 0 {
		maxWorkers = DefaultMaxWorkers
	}

	var errs []error
	if maxWorkers > types.MaxWorkers {
		errs = append(errs, fmt.Errorf("%w: max workers %d exceeds %d", ErrInvalidConfig, maxWorkers, types.MaxWorkers))
		maxWorkers = types.MaxWorkers
	}
	if !c.Strategy.Valid() {
		errs = append(errs, fmt.Errorf("%w: %d (0: cyclic, 1: block-cyclic, 2: farming)", ErrInvalidStrategy, int(c.Strategy)))
	}
	if c.Workers < 1 || c.Workers > maxWorkers {
		errs = append(errs, fmt.Errorf("%w: %d, must be between 1 and %d", ErrInvalidWorkers, c.Workers, maxWorkers))
	}
	if c.WorkloadSize <= 0 {
		errs = append(errs, fmt.Errorf("%w: workload size %d", ErrInvalidConfig, c.WorkloadSize))
	}
	if c.ChunkSize <= 0 {
		errs = append(errs, fmt.Errorf("%w: chunk size %d", ErrInvalidConfig, c.ChunkSize))
	}
	if c.Trials <= 0 {
		errs = append(errs, fmt.Errorf("%w: trial count %d", ErrInvalidConfig, c.Trials))
	}
	if c.Cursor != "" && !c.Cursor.Valid() {
		errs = append(errs, fmt.Errorf("%w: cursor %q", ErrInvalidConfig, c.Cursor))
	}
	return errors.Join(errs...)
}
