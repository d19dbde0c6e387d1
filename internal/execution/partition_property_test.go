package execution

import (
	"testing"

	"github.com/duke-git/lancet/v2/mathutil"
	"pgregory.net/rapid"

	"yqhp/minbench/pkg/types"
)

// TestDisjointCoverProperty: for every strategy, worker count and workload
// size, each index is visited by exactly one worker.
func TestDisjointCoverProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		strategy := rapid.SampledFrom(types.Strategies()).Draw(t, "strategy")
		workers := rapid.IntRange(1, 1024).Draw(t, "workers")
		size := rapid.IntRange(0, 20_000).Draw(t, "size")
		chunk := rapid.IntRange(1, 4096).Draw(t, "chunk")
		kind := rapid.SampledFrom([]types.CursorKind{types.CursorMutex, types.CursorAtomic}).Draw(t, "cursor")

		cursor, err := NewCursor(kind)
		if err != nil {
			t.Fatal(err)
		}

		counts, blocks := visitCounts(newPartitioner(strategy, chunk), size, workers, cursor)
		for i, c := range counts {
			if c != 1 {
				t.Fatalf("index %d visited %d times", i, c)
			}
		}

		if strategy == types.StrategyFarming {
			total := mathutil.Sum(blocks...)
			if total*chunk < size || total*chunk >= size+chunk {
				t.Fatalf("blocks*chunk = %d outside [%d, %d)", total*chunk, size, size+chunk)
			}
		}
	})
}

// TestBlockCyclicAssignmentProperty: a chunk belongs to worker chunk mod T.
func TestBlockCyclicAssignmentProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		workers := rapid.IntRange(1, 64).Draw(t, "workers")
		size := rapid.IntRange(1, 5000).Draw(t, "size")
		chunk := rapid.IntRange(1, 300).Draw(t, "chunk")
		id := rapid.IntRange(0, workers-1).Draw(t, "id")

		p, err := NewBlockCyclicPartitioner(chunk)
		if err != nil {
			t.Fatal(err)
		}

		p.Walk(&Worker{ID: id, Count: workers}, size, func(start, end, stride int) {
			if start%chunk != 0 {
				t.Fatalf("range starts mid-chunk at %d", start)
			}
			if (start/chunk)%workers != id {
				t.Fatalf("chunk %d assigned to worker %d", start/chunk, id)
			}
			if end-start > chunk || end > size {
				t.Fatalf("range [%d, %d) exceeds chunk or workload", start, end)
			}
		})
	})
}
