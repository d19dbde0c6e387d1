package config

import (
	"fmt"
	"strings"

	"yqhp/minbench/pkg/types"
)

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors is a collection of validation errors.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	var msgs []string
	for _, err := range e {
		msgs = append(msgs, err.Error())
	}
	return fmt.Sprintf("configuration validation failed:\n  - %s", strings.Join(msgs, "\n  - "))
}

// HasErrors returns true if there are any validation errors.
func (e ValidationErrors) HasErrors() bool {
	return len(e) > 0
}

// Validator validates configuration values.
type Validator struct {
	errors ValidationErrors
}

// NewValidator creates a new configuration validator.
func NewValidator() *Validator {
	return &Validator{
		errors: make(ValidationErrors, 0),
	}
}

func (v *Validator) addError(field, message string) {
	v.errors = append(v.errors, ValidationError{Field: field, Message: message})
}

func (v *Validator) result() error {
	if v.errors.HasErrors() {
		return v.errors
	}
	return nil
}

// Validate validates the entire configuration and returns any errors.
func (v *Validator) Validate(cfg *Config) error {
	v.errors = make(ValidationErrors, 0)

	v.validateBenchmarkConfig(&cfg.Benchmark)
	v.validateLoggingConfig(&cfg.Logging)

	return v.result()
}

// ValidateRun checks the per-invocation parameters against the configuration.
// It runs before any workload memory is allocated.
func (v *Validator) ValidateRun(cfg *Config, strategy types.Strategy, workers int) error {
	v.errors = make(ValidationErrors, 0)

	if !strategy.Valid() {
		v.addError("method", fmt.Sprintf("invalid partition method %d (0: cyclic, 1: block-cyclic, 2: farming)", int(strategy)))
	}
	maxWorkers := min(cfg.Benchmark.MaxWorkers, types.MaxWorkers)
	if workers < 1 || workers > maxWorkers {
		v.addError("threads", fmt.Sprintf("invalid worker count %d, must be between 1 and %d", workers, maxWorkers))
	}
	// stdout carries the result lines
	if cfg.Logging.Output == "stdout" {
		v.addError("logging.output", "stdout is reserved for benchmark results, use stderr, file or both")
	}

	return v.result()
}

func (v *Validator) validateBenchmarkConfig(cfg *BenchmarkConfig) {
	if cfg.WorkloadSize <= 0 {
		v.addError("benchmark.workload_size", "workload size must be positive")
	}
	if cfg.ChunkSize <= 0 {
		v.addError("benchmark.chunk_size", "chunk size must be positive")
	}
	if cfg.Trials <= 0 {
		v.addError("benchmark.trials", "trial count must be positive")
	}
	if cfg.MaxWorkers <= 0 || cfg.MaxWorkers > types.MaxWorkers {
		v.addError("benchmark.max_workers", fmt.Sprintf("max workers must be between 1 and %d", types.MaxWorkers))
	}
	if cfg.MaxValue <= 0 {
		v.addError("benchmark.max_value", "max value must be positive")
	}
	if !types.CursorKind(cfg.Cursor).Valid() {
		v.addError("benchmark.cursor", fmt.Sprintf("invalid cursor '%s', must be one of: mutex, atomic", cfg.Cursor))
	}
}

func (v *Validator) validateLoggingConfig(cfg *LoggingConfig) {
	validLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if cfg.Level == "" {
		v.addError("logging.level", "log level is required")
	} else if !validLevels[strings.ToLower(cfg.Level)] {
		v.addError("logging.level", fmt.Sprintf("invalid log level '%s', must be one of: debug, info, warn, error", cfg.Level))
	}

	validFormats := map[string]bool{
		"json":    true,
		"console": true,
	}
	if !validFormats[cfg.Format] {
		v.addError("logging.format", fmt.Sprintf("invalid log format '%s', must be one of: json, console", cfg.Format))
	}

	validOutputs := map[string]bool{
		"stderr": true,
		"stdout": true,
		"file":   true,
		"both":   true,
	}
	if !validOutputs[cfg.Output] {
		v.addError("logging.output", fmt.Sprintf("invalid log output '%s', must be one of: stderr, stdout, file, both", cfg.Output))
	}
	if (cfg.Output == "file" || cfg.Output == "both") && cfg.FilePath == "" {
		v.addError("logging.file_path", "file path is required for file output")
	}
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	return NewValidator().Validate(c)
}

// ValidateRun validates the per-invocation method and worker count.
func (c *Config) ValidateRun(strategy types.Strategy, workers int) error {
	return NewValidator().ValidateRun(c, strategy, workers)
}
