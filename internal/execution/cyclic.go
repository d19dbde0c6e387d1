package execution

import "yqhp/minbench/pkg/types"

// CyclicPartitioner gives worker id the indices id, id+T, id+2T, ...
// where T is the worker count.
type CyclicPartitioner struct{}

// NewCyclicPartitioner creates a cyclic partitioner.
func NewCyclicPartitioner() *CyclicPartitioner {
	return &CyclicPartitioner{}
}

// Strategy returns StrategyCyclic.
func (p *CyclicPartitioner) Strategy() types.Strategy {
	return types.StrategyCyclic
}

// Walk visits the single strided range owned by w. Workers whose ID is past
// the end of the workload get nothing.
func (p *CyclicPartitioner) Walk(w *Worker, size int, visit Visitor) int {
	if w.ID < size {
		visit(w.ID, size, w.Count)
	}
	return 0
}
