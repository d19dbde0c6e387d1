package execution

import (
	"sync"
	"sync/atomic"

	"yqhp/minbench/pkg/types"
)

// visitCounts runs every worker of one trial concurrently and returns how
// many times each index was visited, plus the per-worker chunk counts.
func visitCounts(p Partitioner, size, workers int, cursor Cursor) ([]int32, []int) {
	counts := make([]int32, size)
	blocks := make([]int, workers)

	var wg sync.WaitGroup
	for id := 0; id < workers; id++ {
		w := &Worker{ID: id, Count: workers, Cursor: cursor}
		wg.Add(1)
		go func(w *Worker) {
			defer wg.Done()
			blocks[w.ID] = p.Walk(w, size, func(start, end, stride int) {
				for i := start; i < end; i += stride {
					atomic.AddInt32(&counts[i], 1)
				}
			})
		}(w)
	}
	wg.Wait()

	return counts, blocks
}

func newPartitioner(strategy types.Strategy, chunkSize int) Partitioner {
	p, err := NewRegistry().Get(strategy, chunkSize)
	if err != nil {
		panic(err)
	}
	return p
}
