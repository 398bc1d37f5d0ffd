package ttlcache

import (
	"time"

	"github.com/benbjohnson/clock"
)

type (
	// Clock is the time source consulted by a [Cache].
	// It is read at the start of every operation that
	// depends on the current time, and never cached.
	Clock interface {
		Now() time.Time
	}
	// Option configures a [Cache] during [New].
	Option   func(*settings) error
	settings struct {
		clock    Clock
		capacity int
	}
)

func newSettings(options []Option) (*settings, error) {
	set := &settings{
		clock: clock.New(),
	}
	for _, apply := range options {
		if err := apply(set); err != nil {
			return nil, err
		}
	}
	return set, nil
}

// WithClock sets the time source used to compute
// and check entry expiry. The default is the wall clock.
func WithClock(source Clock) Option {
	return func(set *settings) error {
		if source == nil {
			return ErrNilClock
		}
		set.clock = source
		return nil
	}
}

// WithCapacity limits the cache to capacity entries.
// Zero, the default, leaves the cache unbounded.
func WithCapacity(capacity int) Option {
	return func(set *settings) error {
		if capacity < 0 {
			return negativeCapacityError(capacity)
		}
		set.capacity = capacity
		return nil
	}
}
