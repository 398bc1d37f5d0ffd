package ttlcache

import "fmt"

type constError string

const (
	// ErrInvalidCapacity may be returned from [New]
	// when given a negative [WithCapacity] hint.
	ErrInvalidCapacity = constError("invalid capacity")
	// ErrNilClock may be returned from [New]
	// when [WithClock] is passed nil.
	ErrNilClock = constError("nil clock")
)

func (errStr constError) Error() string { return string(errStr) }

func negativeCapacityError(capacity int) error {
	return fmt.Errorf(
		"%w: must be >=0 but %d was requested",
		ErrInvalidCapacity, capacity)
}
