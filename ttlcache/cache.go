package ttlcache

import (
	"iter"
	"time"

	"github.com/djdv/go-tracked/internal/assert"
	"github.com/djdv/go-tracked/internal/ring"
)

type (
	entry[Key comparable, Value any] struct {
		value   Value
		expiry  time.Time
		recency *ring.Ring[Key]
	}
	// Cache maps keys to values that expire after a per-entry duration.
	// If constructed with a capacity, it holds at most that many entries,
	// making room by sweeping expired entries and then
	// evicting the least recently used ones.
	// Concurrent access must be guarded by the caller.
	// Constructed by [New].
	Cache[Key comparable, Value any] struct {
		clock   Clock
		entries map[Key]*entry[Key, Value]
		lru     *ring.Ring[Key] // Most recently used; lru.Next() is least.
		// earliest is at or before every stored expiry.
		// Nothing can be expired before it passes.
		earliest time.Time
		capacity int
	}
)

// New creates an empty [Cache].
func New[Key comparable, Value any](options ...Option) (*Cache[Key, Value], error) {
	set, err := newSettings(options)
	if err != nil {
		return nil, err
	}
	return &Cache[Key, Value]{
		clock:    set.clock,
		entries:  make(map[Key]*entry[Key, Value], set.capacity),
		capacity: set.capacity,
	}, nil
}

// Put stores value under key until ttl has elapsed,
// replacing any previous entry for key.
// A ttl <= 0 produces an entry that is expired
// as soon as the clock advances past the time of the call.
// Adding a new key to a full cache evicts another entry.
func (c *Cache[Key, Value]) Put(key Key, value Value, ttl time.Duration) {
	var (
		now    = c.clock.Now()
		expiry = now.Add(ttl)
	)
	if existing, ok := c.entries[key]; ok {
		existing.value = value
		existing.expiry = expiry
		c.lowerEarliest(expiry)
		c.touch(existing)
		return
	}
	if c.atCapacity() {
		c.makeRoom(now)
	}
	if len(c.entries) == 0 {
		c.earliest = expiry
	} else {
		c.lowerEarliest(expiry)
	}
	added := &entry[Key, Value]{
		value:   value,
		expiry:  expiry,
		recency: ring.Of(key),
	}
	c.addToRecency(added.recency)
	c.entries[key] = added
}

// Get returns the value stored under key if it has not expired,
// and marks it as most recently used.
// An expired entry is deleted and reported as a miss.
// Misses return the zero value and false.
func (c *Cache[Key, Value]) Get(key Key) (Value, bool) {
	entry, ok := c.entries[key]
	if !ok {
		var zero Value
		return zero, false
	}
	if c.clock.Now().After(entry.expiry) {
		c.drop(key, entry)
		var zero Value
		return zero, false
	}
	c.touch(entry)
	return entry.value, true
}

// Load returns the live value for key. Otherwise, it calls fetch,
// stores the result for ttl and returns it on success.
// If fetch returns an error, the value is not cached.
func (c *Cache[Key, Value]) Load(key Key, ttl time.Duration, fetch func() (Value, error)) (Value, error) {
	if value, ok := c.Get(key); ok {
		return value, nil
	}
	value, err := fetch()
	if err != nil {
		return value, err
	}
	c.Put(key, value, ttl)
	return value, nil
}

// Remove deletes the entry for key, if any.
func (c *Cache[Key, _]) Remove(key Key) {
	if entry, ok := c.entries[key]; ok {
		c.drop(key, entry)
	}
}

// ClearExpired deletes every entry that has expired
// as of the moment it is called, and returns how many were deleted.
func (c *Cache[_, _]) ClearExpired() int {
	return c.sweep(c.clock.Now())
}

// Len returns the number of stored entries,
// including expired entries that have not been swept yet.
func (c *Cache[_, _]) Len() int {
	return len(c.entries)
}

// Keys returns an iterator over the (unordered) keys
// of entries that are live when iteration begins.
// The cache must not be modified during iteration.
func (c *Cache[Key, _]) Keys() iter.Seq[Key] {
	return func(yield func(Key) bool) {
		now := c.clock.Now()
		for key, entry := range c.entries {
			if now.After(entry.expiry) {
				continue
			}
			if !yield(key) {
				return
			}
		}
	}
}

func (c *Cache[_, _]) atCapacity() bool {
	return c.capacity > 0 &&
		len(c.entries) >= c.capacity
}

// makeRoom frees at least one slot,
// preferring expired entries over live ones.
func (c *Cache[_, _]) makeRoom(now time.Time) {
	if now.After(c.earliest) {
		c.sweep(now)
	}
	for c.atCapacity() {
		c.evictLRU()
	}
}

func (c *Cache[_, _]) sweep(now time.Time) int {
	if len(c.entries) == 0 ||
		!now.After(c.earliest) {
		return 0
	}
	var (
		cleared  int
		earliest time.Time
		first    = true
	)
	for key, entry := range c.entries {
		if now.After(entry.expiry) {
			c.drop(key, entry)
			cleared++
			continue
		}
		if first || entry.expiry.Before(earliest) {
			earliest, first = entry.expiry, false
		}
	}
	c.earliest = earliest
	return cleared
}

func (c *Cache[_, _]) evictLRU() {
	key := c.lru.Next().Value
	c.drop(key, c.entries[key])
}

func (c *Cache[Key, Value]) drop(key Key, stored *entry[Key, Value]) {
	c.removeFromRecency(stored.recency)
	delete(c.entries, key)
	if assert.Enabled {
		assert.That(c.lru.Len() == len(c.entries),
			"recency ring disagrees with entry count")
	}
}

func (c *Cache[_, _]) lowerEarliest(expiry time.Time) {
	if expiry.Before(c.earliest) {
		c.earliest = expiry
	}
}

func (c *Cache[Key, Value]) touch(stored *entry[Key, Value]) {
	if stored.recency == c.lru {
		return
	}
	c.removeFromRecency(stored.recency)
	c.addToRecency(stored.recency)
}

func (c *Cache[Key, _]) addToRecency(element *ring.Ring[Key]) {
	if c.lru != nil {
		c.lru.Link(element)
	}
	c.lru = element
}

func (c *Cache[Key, _]) removeFromRecency(element *ring.Ring[Key]) {
	if element.Next() == element {
		c.lru = nil
		return
	}
	if element == c.lru {
		c.lru = element.Prev()
	}
	element.Prev().UnlinkNext()
}
