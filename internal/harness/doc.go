// Package harness implements the coordinator that times repeated trials of
// one partition strategy.
//
// A Coordinator validates its configuration before touching memory, then
// allocates and fills the workload once. Each trial resets the farming
// cursor and counters, spawns the configured number of workers, waits for
// all of them and records the elapsed time. Trials always run to
// completion; the context is only consulted between trials.
package harness
