package execution

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"yqhp/minbench/pkg/types"
)

func TestCyclicPartitioner_Strategy(t *testing.T) {
	assert.Equal(t, types.StrategyCyclic, NewCyclicPartitioner().Strategy())
}

func TestCyclicPartitioner_Walk(t *testing.T) {
	p := NewCyclicPartitioner()

	var visited []int
	w := &Worker{ID: 1, Count: 3}
	blocks := p.Walk(w, 10, func(start, end, stride int) {
		for i := start; i < end; i += stride {
			visited = append(visited, i)
		}
	})

	assert.Equal(t, []int{1, 4, 7}, visited)
	assert.Equal(t, 0, blocks)
}

func TestCyclicPartitioner_MoreWorkersThanElements(t *testing.T) {
	counts, _ := visitCounts(NewCyclicPartitioner(), 10, 50, nil)
	for i, c := range counts {
		assert.Equal(t, int32(1), c, "index %d", i)
	}

	called := false
	NewCyclicPartitioner().Walk(&Worker{ID: 30, Count: 50}, 10, func(int, int, int) { called = true })
	assert.False(t, called)
}
