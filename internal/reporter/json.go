package reporter

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/bytedance/sonic"

	"yqhp/minbench/internal/harness"
)

// JSONConfig holds configuration for the JSON reporter.
type JSONConfig struct {
	// FilePath is the output file path.
	FilePath string `yaml:"file_path"`
	// Pretty enables indented output.
	Pretty bool `yaml:"pretty"`
}

// JSONReporter writes the full result, including per-trial timings and the
// timing distribution, to a JSON file.
type JSONReporter struct {
	config *JSONConfig
}

// NewJSONReporter creates a JSON reporter.
func NewJSONReporter(config *JSONConfig) *JSONReporter {
	if config == nil {
		config = &JSONConfig{FilePath: "result.json", Pretty: true}
	}
	return &JSONReporter{config: config}
}

// Name returns the reporter name.
func (r *JSONReporter) Name() string {
	return "json"
}

// Report encodes the result and writes it to the configured file.
func (r *JSONReporter) Report(_ context.Context, result *harness.Result) error {
	var (
		data []byte
		err  error
	)
	if r.config.Pretty {
		data, err = sonic.MarshalIndent(result, "", "  ")
	} else {
		data, err = sonic.Marshal(result)
	}
	if err != nil {
		return fmt.Errorf("failed to marshal result: %w", err)
	}

	if dir := filepath.Dir(r.config.FilePath); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	if err := os.WriteFile(r.config.FilePath, data, 0644); err != nil {
		return fmt.Errorf("failed to write result file: %w", err)
	}
	return nil
}

// Close is a no-op; the file is written in one step by Report.
func (r *JSONReporter) Close() error {
	return nil
}
