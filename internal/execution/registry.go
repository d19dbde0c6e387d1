package execution

import (
	"fmt"
	"sort"
	"sync"

	"yqhp/minbench/pkg/types"
)

// Factory builds a partitioner for the given chunk size.
type Factory func(chunkSize int) (Partitioner, error)

// Registry maps strategies to partitioner factories.
type Registry struct {
	factories map[types.Strategy]Factory
	mu        sync.RWMutex
}

// NewRegistry creates a registry with the three built-in strategies.
func NewRegistry() *Registry {
	r := &Registry{
		factories: make(map[types.Strategy]Factory),
	}

	r.Register(types.StrategyCyclic, func(int) (Partitioner, error) {
		return NewCyclicPartitioner(), nil
	})
	r.Register(types.StrategyBlockCyclic, func(chunkSize int) (Partitioner, error) {
		return NewBlockCyclicPartitioner(chunkSize)
	})
	r.Register(types.StrategyFarming, func(chunkSize int) (Partitioner, error) {
		return NewFarmingPartitioner(chunkSize)
	})

	return r
}

// Register registers a factory, replacing any previous one for the strategy.
func (r *Registry) Register(strategy types.Strategy, factory Factory) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.factories[strategy] = factory
}

// Get returns a partitioner for the strategy.
func (r *Registry) Get(strategy types.Strategy, chunkSize int) (Partitioner, error) {
	r.mu.RLock()
	factory, ok := r.factories[strategy]
	r.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownStrategy, strategy)
	}
	return factory(chunkSize)
}

// List returns the registered strategies in selector order.
func (r *Registry) List() []types.Strategy {
	r.mu.RLock()
	defer r.mu.RUnlock()

	strategies := make([]types.Strategy, 0, len(r.factories))
	for s := range r.factories {
		strategies = append(strategies, s)
	}
	sort.Slice(strategies, func(i, j int) bool { return strategies[i] < strategies[j] })
	return strategies
}

// DefaultRegistry is the registry used by the harness unless another is injected.
var DefaultRegistry = NewRegistry()
