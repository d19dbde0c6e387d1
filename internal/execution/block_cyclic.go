package execution

import "yqhp/minbench/pkg/types"

// BlockCyclicPartitioner splits the workload into contiguous chunks and
// deals them round-robin: worker id takes chunks id, id+T, id+2T, ...
type BlockCyclicPartitioner struct {
	chunkSize int
}

// NewBlockCyclicPartitioner creates a block-cyclic partitioner.
func NewBlockCyclicPartitioner(chunkSize int) (*BlockCyclicPartitioner, error) {
	if chunkSize <= 0 {
		return nil, ErrInvalidChunkSize
	}
	return &BlockCyclicPartitioner{chunkSize: chunkSize}, nil
}

// Strategy returns StrategyBlockCyclic.
func (p *BlockCyclicPartitioner) Strategy() types.Strategy {
	return types.StrategyBlockCyclic
}

// ChunkSize returns the number of elements per chunk.
func (p *BlockCyclicPartitioner) ChunkSize() int {
	return p.chunkSize
}

// Walk visits each chunk owned by w in order. The last chunk of the
// workload may be partial. Iterating over chunk numbers keeps every start
// index below size, whatever the chunk size.
func (p *BlockCyclicPartitioner) Walk(w *Worker, size int, visit Visitor) int {
	chunks := size / p.chunkSize
	if size%p.chunkSize != 0 {
		chunks++
	}

	blocks := 0
	for c := w.ID; c < chunks; c += w.Count {
		start := c * p.chunkSize
		visit(start, start+min(p.chunkSize, size-start), 1)
		blocks++
	}
	return blocks
}
