package radar

import "errors"

var (
	// ErrConfiguration reports degenerate layout parameters. Nothing is drawn.
	ErrConfiguration = errors.New("radar: invalid configuration")

	// ErrAllocation reports that the surface could not create a primitive.
	ErrAllocation = errors.New("radar: primitive allocation failed")

	// ErrSweepStopped is returned when ticking a sweep after Stop.
	ErrSweepStopped = errors.New("radar: sweep stopped")
)
