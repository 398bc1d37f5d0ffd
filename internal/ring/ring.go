// Package ring is a trimmed, generic adaption of `container/ring`.
// avgqueue uses it as FIFO storage, and ttlcache as its recency order.
package ring

import "iter"

// A Ring is an element of a circular list.
// Any element serves as a reference to the entire ring,
// and empty rings are represented as nil pointers.
// The zero value is a one-element ring holding the zero Value.
type Ring[Value any] struct {
	next, prev *Ring[Value]
	Value      Value
}

// Of returns a one-element ring holding value.
func Of[Value any](value Value) *Ring[Value] {
	r := &Ring[Value]{Value: value}
	return r.init()
}

func (r *Ring[Value]) init() *Ring[Value] {
	r.next = r
	r.prev = r
	return r
}

// Next returns the next ring element. r must not be empty.
func (r *Ring[Value]) Next() *Ring[Value] {
	if r.next == nil {
		return r.init()
	}
	return r.next
}

// Prev returns the previous ring element. r must not be empty.
func (r *Ring[Value]) Prev() *Ring[Value] {
	if r.next == nil {
		return r.init()
	}
	return r.prev
}

// Link splices ring s in directly after r,
// and returns the element that followed r before the splice.
// r must not be empty; s must not already be part of r.
func (r *Ring[Value]) Link(s *Ring[Value]) *Ring[Value] {
	n := r.Next()
	if s != nil {
		p := s.Prev()
		// Note: Cannot use multiple assignment because
		// evaluation order of LHS is not specified.
		r.next = s
		s.prev = r
		n.prev = p
		p.next = n
	}
	return n
}

// UnlinkNext removes the element following r and returns it
// as a one-element ring. If r is the only element, it returns nil
// and r is unchanged.
func (r *Ring[Value]) UnlinkNext() *Ring[Value] {
	n := r.Next()
	if n == r {
		return nil
	}
	r.next = n.next
	n.next.prev = r
	return n.init()
}

// Len computes the number of elements in ring r.
// It executes in time proportional to the number of elements.
func (r *Ring[Value]) Len() int {
	n := 0
	if r != nil {
		n = 1
		for p := r.Next(); p != r; p = p.next {
			n++
		}
	}
	return n
}

// Values returns an iterator over the ring's values in forward order,
// starting at r. The ring must not change during iteration.
func (r *Ring[Value]) Values() iter.Seq[Value] {
	return func(yield func(Value) bool) {
		if r == nil ||
			!yield(r.Value) {
			return
		}
		for p := r.Next(); p != r; p = p.next {
			if !yield(p.Value) {
				return
			}
		}
	}
}
