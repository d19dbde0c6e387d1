package execution

import (
	"yqhp/minbench/internal/workload"
	"yqhp/minbench/pkg/types"
)

// Visitor receives one assigned index range: start, start+stride, ... below end.
type Visitor func(start, end, stride int)

// Partitioner decides which indices a worker processes.
type Partitioner interface {
	// Strategy returns the strategy the partitioner implements.
	Strategy() types.Strategy

	// Walk visits every range assigned to w in a workload of size elements
	// and returns the number of chunks processed. Strategies without chunks
	// return 0.
	Walk(w *Worker, size int, visit Visitor) int
}

// Worker describes one worker of a trial. The coordinator builds a fresh
// descriptor per worker and per trial; the worker only reads it, apart from
// the Blocks cell which it alone writes.
type Worker struct {
	// ID is the worker identity in [0, Count).
	ID int

	// Count is the number of workers in the trial.
	Count int

	// Cursor is the shared claim cursor, set for farming only.
	Cursor Cursor

	// Blocks receives the number of chunks this worker processed. Farming only.
	Blocks *int
}

// Run walks the worker's assignment to completion, applying the minimum
// kernel to every selected index.
func (w *Worker) Run(p Partitioner, wl *workload.Workload) {
	blocks := p.Walk(w, wl.Len(), wl.MinStride)
	if w.Blocks != nil {
		*w.Blocks = blocks
	}
}
