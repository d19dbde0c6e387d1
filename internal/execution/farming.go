package execution

import (
	"fmt"

	"yqhp/minbench/pkg/types"
)

// FarmingPartitioner implements dynamic self-scheduling. Workers repeatedly
// claim the next chunk from the shared cursor in their descriptor and stop
// once a claim starts at or past the end of the workload.
type FarmingPartitioner struct {
	chunkSize int
}

// NewFarmingPartitioner creates a farming partitioner.
func NewFarmingPartitioner(chunkSize int) (*FarmingPartitioner, error) {
	if chunkSize <= 0 {
		return nil, ErrInvalidChunkSize
	}
	return &FarmingPartitioner{chunkSize: chunkSize}, nil
}

// Strategy returns StrategyFarming.
func (p *FarmingPartitioner) Strategy() types.Strategy {
	return types.StrategyFarming
}

// ChunkSize returns the number of elements claimed per step.
func (p *FarmingPartitioner) ChunkSize() int {
	return p.chunkSize
}

// Walk claims and visits chunks until the cursor is exhausted. Only the
// claim touches shared state; the visit runs outside it.
func (p *FarmingPartitioner) Walk(w *Worker, size int, visit Visitor) int {
	if w.Cursor == nil {
		panic(fmt.Sprintf("farming worker %d has no cursor", w.ID))
	}

	blocks := 0
	for {
		start := w.Cursor.Claim(p.chunkSize, size)
		if start >= size {
			return blocks
		}
		visit(start, start+min(p.chunkSize, size-start), 1)
		blocks++
	}
}
