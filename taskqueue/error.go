package taskqueue

import "fmt"

type constError string

// ErrInvalidCapacity may be returned from [New]
// when given a negative [WithCapacity] hint.
const ErrInvalidCapacity = constError("invalid capacity")

func (errStr constError) Error() string { return string(errStr) }

func negativeCapacityError(capacity int) error {
	return fmt.Errorf(
		"%w: must be >=0 but %d was requested",
		ErrInvalidCapacity, capacity)
}
