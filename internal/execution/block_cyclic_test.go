package execution

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"yqhp/minbench/pkg/types"
)

func TestNewBlockCyclicPartitioner_InvalidChunk(t *testing.T) {
	p, err := NewBlockCyclicPartitioner(0)
	assert.ErrorIs(t, err, ErrInvalidChunkSize)
	assert.Nil(t, p)
}

func TestBlockCyclicPartitioner_Walk(t *testing.T) {
	p, err := NewBlockCyclicPartitioner(4)
	require.NoError(t, err)
	assert.Equal(t, types.StrategyBlockCyclic, p.Strategy())
	assert.Equal(t, 4, p.ChunkSize())

	type span struct{ start, end int }
	var spans []span
	blocks := p.Walk(&Worker{ID: 1, Count: 2}, 22, func(start, end, stride int) {
		assert.Equal(t, 1, stride)
		spans = append(spans, span{start, end})
	})

	// Chunks 1, 3 and 5; chunk 5 is partial.
	assert.Equal(t, []span{{4, 8}, {12, 16}, {20, 22}}, spans)
	assert.Equal(t, 3, blocks)
}

func TestBlockCyclicPartitioner_PartialLastChunk(t *testing.T) {
	p, err := NewBlockCyclicPartitioner(2048)
	require.NoError(t, err)

	counts, blocks := visitCounts(p, 5000, 2, nil)
	for i, c := range counts {
		assert.Equal(t, int32(1), c, "index %d", i)
	}
	assert.Equal(t, []int{2, 1}, blocks)
}

func TestBlockCyclicPartitioner_MoreWorkersThanChunks(t *testing.T) {
	p, err := NewBlockCyclicPartitioner(4)
	require.NoError(t, err)

	counts, blocks := visitCounts(p, 10, 50, nil)
	for i, c := range counts {
		assert.Equal(t, int32(1), c, "index %d", i)
	}
	assert.Equal(t, 1, blocks[0])
	assert.Equal(t, 1, blocks[2])
	assert.Equal(t, 0, blocks[3])
	assert.Equal(t, 0, blocks[49])
}

func TestBlockCyclicPartitioner_HugeChunk(t *testing.T) {
	p, err := NewBlockCyclicPartitioner(math.MaxInt/2 + 1)
	require.NoError(t, err)

	counts, blocks := visitCounts(p, 10, 3, nil)
	for i, c := range counts {
		assert.Equal(t, int32(1), c, "index %d", i)
	}
	assert.Equal(t, []int{1, 0, 0}, blocks)
}
