// Copyright 2019, LightStep Inc.

package reservoir

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument is matched by every construction error.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrIncompatibleMerge is returned by Merge when the result
	// would not be a valid weighted sample of both streams.
	ErrIncompatibleMerge = errors.New("incompatible reservoir merge")
)

// CapacityError reports a non-positive reservoir capacity.
type CapacityError struct {
	Capacity int
}

func (e *CapacityError) Error() string {
	return fmt.Sprint("Maximum number of samples must be positive: ", e.Capacity)
}

func (e *CapacityError) Unwrap() error {
	return ErrInvalidArgument
}
