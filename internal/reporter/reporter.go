// Package reporter writes benchmark results to their output targets.
package reporter

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"yqhp/minbench/internal/harness"
)

// Reporter is an output target for run results.
type Reporter interface {
	// Name returns the reporter name.
	Name() string

	// Report writes the result of one run.
	Report(ctx context.Context, result *harness.Result) error

	// Close releases the reporter's resources.
	Close() error
}

// Manager fans a result out to several reporters.
type Manager struct {
	reporters []Reporter
	mu        sync.Mutex
}

// NewManager creates a manager for the given reporters.
func NewManager(reporters ...Reporter) *Manager {
	return &Manager{reporters: reporters}
}

// Add appends a reporter.
func (m *Manager) Add(r Reporter) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.reporters = append(m.reporters, r)
}

// Report calls every reporter in order and stops at the first failure.
func (m *Manager) Report(ctx context.Context, result *harness.Result) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, r := range m.reporters {
		if err := r.Report(ctx, result); err != nil {
			return fmt.Errorf("reporter %s: %w", r.Name(), err)
		}
	}
	return nil
}

// Close closes every reporter and joins their errors.
func (m *Manager) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	var errs []error
	for _, r := range m.reporters {
		if err := r.Close(); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", r.Name(), err))
		}
	}
	return errors.Join(errs...)
}
