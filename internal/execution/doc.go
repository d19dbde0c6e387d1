// Package execution provides the partition strategies that split the
// workload across workers, the shared cursor used by farming, and the
// per-worker execution unit.
//
// Three strategies are supported: cyclic (stride T), block-cyclic
// (fixed-size chunks dealt round-robin) and farming (workers claim chunks
// from a shared cursor until it passes the end of the workload).
package execution
