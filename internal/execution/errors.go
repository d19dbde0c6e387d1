package execution

import "errors"

var (
	// ErrUnknownStrategy is returned when no partitioner is registered for a strategy.
	ErrUnknownStrategy = errors.New("unknown partition strategy")

	// ErrInvalidChunkSize is returned when a chunked strategy is given a non-positive chunk size.
	ErrInvalidChunkSize = errors.New("invalid chunk size: must be positive")

	// ErrUnknownCursor is returned when the cursor kind is not recognised.
	ErrUnknownCursor = errors.New("unknown cursor kind")
)
