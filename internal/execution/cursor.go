package execution

import (
	"fmt"
	"sync"
	"sync/atomic"

	"yqhp/minbench/pkg/types"
)

// Cursor is the shared "next unassigned index" used by farming.
// The coordinator owns it and resets it before every trial.
type Cursor interface {
	// Claim returns the current position and, if it is below limit, advances
	// it by n as one atomic step. The position never moves past limit.
	Claim(n, limit int) int

	// Reset moves the cursor back to zero. Not safe while workers are running.
	Reset()

	// Position returns the current position.
	Position() int
}

// NewCursor creates a cursor of the given kind. An empty kind means mutex.
func NewCursor(kind types.CursorKind) (Cursor, error) {
	switch kind {
	case types.CursorMutex, "":
		return &LockedCursor{}, nil
	case types.CursorAtomic:
		return &AtomicCursor{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownCursor, kind)
	}
}

// LockedCursor holds its mutex only across the read-and-advance step.
type LockedCursor struct {
	mu   sync.Mutex
	next int
}

// Claim returns the current position and advances it by up to n.
func (c *LockedCursor) Claim(n, limit int) int {
	c.mu.Lock()
	start := c.next
	if start < limit {
		c.next += min(n, limit-start)
	}
	c.mu.Unlock()
	return start
}

// Reset moves the cursor back to zero.
func (c *LockedCursor) Reset() {
	c.mu.Lock()
	c.next = 0
	c.mu.Unlock()
}

// Position returns the current position.
func (c *LockedCursor) Position() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.next
}

// AtomicCursor advances with a compare-and-swap loop instead of a lock.
type AtomicCursor struct {
	next atomic.Int64
}

// Claim returns the current position and advances it by up to n.
func (c *AtomicCursor) Claim(n, limit int) int {
	for {
		start := c.next.Load()
		if start >= int64(limit) {
			return int(start)
		}
		if c.next.CompareAndSwap(start, start+int64(min(n, limit-int(start)))) {
			return int(start)
		}
	}
}

// Reset moves the cursor back to zero.
func (c *AtomicCursor) Reset() {
	c.next.Store(0)
}

// Position returns the current position.
func (c *AtomicCursor) Position() int {
	return int(c.next.Load())
}
