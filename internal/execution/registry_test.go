package execution

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"yqhp/minbench/pkg/types"
)

func TestNewRegistry(t *testing.T) {
	r := NewRegistry()
	assert.Equal(t, types.Strategies(), r.List())
}

func TestRegistry_Get(t *testing.T) {
	r := NewRegistry()

	for _, s := range types.Strategies() {
		t.Run(s.String(), func(t *testing.T) {
			p, err := r.Get(s, 2048)
			require.NoError(t, err)
			assert.Equal(t, s, p.Strategy())
		})
	}
}

func TestRegistry_Get_UnknownStrategy(t *testing.T) {
	p, err := NewRegistry().Get(types.Strategy(5), 2048)
	assert.ErrorIs(t, err, ErrUnknownStrategy)
	assert.Nil(t, p)
}

func TestRegistry_Get_InvalidChunkSize(t *testing.T) {
	r := NewRegistry()

	_, err := r.Get(types.StrategyBlockCyclic, 0)
	assert.ErrorIs(t, err, ErrInvalidChunkSize)

	// Cyclic ignores the chunk size.
	_, err = r.Get(types.StrategyCyclic, 0)
	assert.NoError(t, err)
}

func TestRegistry_Register(t *testing.T) {
	r := NewRegistry()
	r.Register(types.StrategyCyclic, func(chunkSize int) (Partitioner, error) {
		return NewBlockCyclicPartitioner(chunkSize)
	})

	p, err := r.Get(types.StrategyCyclic, 16)
	require.NoError(t, err)
	assert.Equal(t, types.StrategyBlockCyclic, p.Strategy())
}
