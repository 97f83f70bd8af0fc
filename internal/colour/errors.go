package colour

import "errors"

var (
	// ErrEmptyInput is returned when there are no pixels to cluster.
	ErrEmptyInput = errors.New("no pixels supplied")

	// ErrInvalidConfig is returned when a Config cannot be used for generation.
	ErrInvalidConfig = errors.New("invalid configuration")
)
