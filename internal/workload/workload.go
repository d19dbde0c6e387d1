// Package workload holds the three arrays the benchmark operates on and the
// element-wise minimum kernel applied to them.
package workload

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"runtime"
)

var (
	// ErrInvalidSize is returned when the requested element count is not positive.
	ErrInvalidSize = errors.New("workload size must be positive")

	// ErrAllocation is returned when the arrays cannot be allocated.
	ErrAllocation = errors.New("workload allocation failed")

	// ErrLengthMismatch is returned when input slices differ in length.
	ErrLengthMismatch = errors.New("input slices differ in length")
)

// arrays is the number of float64 arrays backing a workload.
const arrays = 3

// Workload is the input pair A, B and the output C. A and B are read-only
// once filled; C is written at disjoint positions by the workers of a trial.
type Workload struct {
	A []float64
	B []float64
	C []float64
}

// New allocates a workload of size elements. A, B and C are zeroed.
func New(size int) (w *Workload, err error) {
	if size <= 0 {
		return nil, ErrInvalidSize
	}
	if size > math.MaxInt/(arrays*8) {
		return nil, fmt.Errorf("%w: %d elements exceed the addressable size", ErrAllocation, size)
	}

	defer func() {
		if r := recover(); r != nil {
			rerr, ok := r.(runtime.Error)
			if !ok {
				panic(r)
			}
			w, err = nil, fmt.Errorf("%w: %v", ErrAllocation, rerr)
		}
	}()

	return &Workload{
		A: make([]float64, size),
		B: make([]float64, size),
		C: make([]float64, size),
	}, nil
}

// FromSlices builds a workload over caller-owned inputs. C is freshly allocated.
func FromSlices(a, b []float64) (*Workload, error) {
	if len(a) != len(b) {
		return nil, fmt.Errorf("%w: len(a)=%d len(b)=%d", ErrLengthMismatch, len(a), len(b))
	}
	return &Workload{A: a, B: b, C: make([]float64, len(a))}, nil
}

// Len returns the number of elements.
func (w *Workload) Len() int {
	return len(w.C)
}

// Fill populates A and B with integers drawn uniformly from [0, maxValue).
// The same seed always yields the same inputs.
func (w *Workload) Fill(seed int64, maxValue int) {
	if maxValue <= 0 {
		maxValue = 1
	}
	r := rand.New(rand.NewSource(seed))
	for i := range w.A {
		w.A[i] = float64(r.Intn(maxValue))
		w.B[i] = float64(r.Intn(maxValue))
	}
}

// ResetOutput zeroes C.
func (w *Workload) ResetOutput() {
	clear(w.C)
}

// Min returns a when a < b and b otherwise, so ties resolve to b.
func Min(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

// MinStride writes Min(A[i], B[i]) into C[i] for i = start, start+stride, ...
// below end. end is clipped to the workload length.
func (w *Workload) MinStride(start, end, stride int) {
	a, b, c := w.A, w.B, w.C
	if end > len(c) {
		end = len(c)
	}
	if stride == 1 {
		for i := start; i < end; i++ {
			if a[i] < b[i] {
				c[i] = a[i]
			} else {
				c[i] = b[i]
			}
		}
		return
	}
	for i := start; i < end; i += stride {
		if a[i] < b[i] {
			c[i] = a[i]
		} else {
			c[i] = b[i]
		}
	}
}

// Sequential computes the expected output on a single goroutine without touching C.
func (w *Workload) Sequential() []float64 {
	out := make([]float64, len(w.A))
	for i := range out {
		out[i] = Min(w.A[i], w.B[i])
	}
	return out
}
