package harness

import "errors"

var (
	// ErrInvalidStrategy is returned when the strategy selector is out of range.
	ErrInvalidStrategy = errors.New("invalid partition strategy")

	// ErrInvalidWorkers is returned when the worker count is out of range.
	ErrInvalidWorkers = errors.New("invalid worker count")

	// ErrInvalidConfig is returned for any other bad tunable.
	ErrInvalidConfig = errors.New("invalid harness configuration")

	// ErrWorkerPanic is returned when a worker dies during a trial.
	ErrWorkerPanic = errors.New("worker terminated abnormally")
)
