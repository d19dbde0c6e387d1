// Package types defines the shared types used across the benchmark:
// the partition strategy selector and the farming cursor kind.
package types
