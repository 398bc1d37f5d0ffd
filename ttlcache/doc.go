// Package ttlcache implements a key-value [Cache]
// whose entries each carry an absolute expiry instant.
//
// Expiry is lazy: an entry whose expiry is strictly before
// the current time is logically absent, even while it remains stored.
// [Cache.Get] deletes such an entry when it encounters one,
// and [Cache.ClearExpired] sweeps all of them on demand.
// No background goroutine or timer is involved.
//
// Boundary: an entry is expired when now > expiry.
// An entry read at exactly its expiry instant is still live,
// for both Get and ClearExpired.
//
// A cache built with [WithCapacity] is bounded.
// When a new key is added to a full cache, expired entries are swept first;
// if that frees nothing, the least recently used entry is evicted.
// [Cache.Get] and [Cache.Put] count as uses; [Cache.Keys] does not.
// The sweep is skipped while no stored expiry can have passed,
// so a full cache of long-lived entries evicts in constant time.
package ttlcache
