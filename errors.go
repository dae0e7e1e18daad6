package castor

import "errors"

var (
	// ErrInvalidCapacity is returned when a negative initial capacity is requested.
	ErrInvalidCapacity = errors.New("capacity must not be negative")
)
