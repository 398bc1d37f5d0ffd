package taskqueue

type (
	// Option configures a [Queue] during [New].
	Option   func(*settings) error
	settings struct {
		capacity int
	}
)

func newSettings(options []Option) (*settings, error) {
	set := new(settings)
	for _, apply := range options {
		if err := apply(set); err != nil {
			return nil, err
		}
	}
	return set, nil
}

// WithCapacity preallocates space for capacity tasks.
// It is a hint, not a limit; the queue grows as needed.
func WithCapacity(capacity int) Option {
	return func(set *settings) error {
		if capacity < 0 {
			return negativeCapacityError(capacity)
		}
		set.capacity = capacity
		return nil
	}
}
