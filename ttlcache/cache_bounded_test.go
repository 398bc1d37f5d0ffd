package ttlcache_test

import (
	"fmt"
	"math/rand"
	"slices"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func evictsLeastRecentlyUsed(t *testing.T) {
	t.Parallel()
	cache, _ := newBoundedCache[string, string](t, 2)
	cache.Put("A", "Value A", time.Hour)
	cache.Put("B", "Value B", time.Hour)
	checkGet(t, cache, "A", "Value A", "before eviction")
	cache.Put("C", "Value C", time.Hour)
	mustMiss(t, cache, "B", "least recently used")
	checkGet(t, cache, "A", "Value A", "recently read")
	checkGet(t, cache, "C", "Value C", "just added")
	checkSize(t, cache, 2, "after eviction")
}

func prefersExpired(t *testing.T) {
	t.Parallel()
	cache, mock := newBoundedCache[string, int](t, 3)
	cache.Put("old", 1, time.Hour)
	cache.Put("short", 2, time.Second)
	cache.Put("new", 3, time.Hour)
	mock.Add(2 * time.Second)
	// "old" is least recently used, but "short" has expired.
	cache.Put("next", 4, time.Hour)
	checkSize(t, cache, 3, "after making room")
	checkGet(t, cache, "old", 1, "live entries are kept while expired ones exist")
	mustMiss(t, cache, "short", "expired")
	cache.Put("last", 5, time.Hour)
	mustMiss(t, cache, "new", "least recently used once nothing has expired")
}

func overwriteAtCapacity(t *testing.T) {
	t.Parallel()
	cache, _ := newBoundedCache[string, int](t, 2)
	cache.Put("A", 1, time.Hour)
	cache.Put("B", 2, time.Hour)
	cache.Put("A", 10, time.Hour)
	checkSize(t, cache, 2, "overwrite must not evict")
	checkGet(t, cache, "B", 2, "after overwrite")
	// The overwrite made A recent, then reading B made it more recent.
	cache.Put("C", 3, time.Hour)
	mustMiss(t, cache, "A", "least recently used")
}

func singleSlot(t *testing.T) {
	t.Parallel()
	cache, _ := newBoundedCache[int, int](t, 1)
	for i := range 4 {
		cache.Put(i, i, time.Hour)
		checkGet(t, cache, i, i, "latest entry")
		checkSize(t, cache, 1, "single slot")
	}
}

func removeFreesSlot(t *testing.T) {
	t.Parallel()
	cache, _ := newBoundedCache[string, int](t, 2)
	cache.Put("A", 1, time.Hour)
	cache.Put("B", 2, time.Hour)
	cache.Remove("A")
	cache.Put("C", 3, time.Hour)
	checkGet(t, cache, "B", 2, "a free slot must not evict")
	checkGet(t, cache, "C", 3, "after remove")
}

// randomBoundedOperations checks the cache against a brute-force
// recency list, with every entry long lived so only capacity evicts.
func randomBoundedOperations(t *testing.T) {
	t.Parallel()
	const (
		capacity   = 8
		keyRange   = 24
		operations = 10_000
	)
	var (
		rng      = rand.New(rand.NewSource(rngSeed))
		cache, _ = newBoundedCache[string, int](t, capacity)
		recency  []string // Least recently used first.
		values   = make(map[string]int)
	)
	use := func(key string) {
		if index := slices.Index(recency, key); index >= 0 {
			recency = slices.Delete(recency, index, index+1)
		}
		recency = append(recency, key)
	}
	for step := range operations {
		key := fmt.Sprintf("key-%d", rng.Intn(keyRange))
		switch rng.Intn(3) {
		case 0:
			if _, ok := values[key]; !ok && len(values) == capacity {
				victim := recency[0]
				recency = recency[1:]
				delete(values, victim)
			}
			values[key] = step
			use(key)
			cache.Put(key, step, time.Hour)
		case 1:
			want, wantOK := values[key]
			got, gotOK := cache.Get(key)
			require.Equal(t, wantOK, gotOK, "step %d key %s", step, key)
			require.Equal(t, want, got, "step %d key %s", step, key)
			if wantOK {
				use(key)
			}
		case 2:
			if index := slices.Index(recency, key); index >= 0 {
				recency = slices.Delete(recency, index, index+1)
			}
			delete(values, key)
			cache.Remove(key)
		}
		require.Equal(t, len(values), cache.Len(), "step %d", step)
	}
	assert.ElementsMatch(t, recency, slices.Collect(cache.Keys()))
}
