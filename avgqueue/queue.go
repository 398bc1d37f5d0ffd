// Package avgqueue implements a FIFO [Queue] that reports
// the arithmetic mean of its contents in constant time.
package avgqueue

import (
	"iter"

	"github.com/djdv/go-tracked/internal/assert"
	"github.com/djdv/go-tracked/internal/ring"
	"golang.org/x/exp/constraints"
)

type (
	// Number is the set of element types a [Queue] may average.
	Number interface {
		constraints.Integer | constraints.Float
	}
	// Queue is a FIFO queue that keeps a running sum and count
	// of its elements, adjusted by exactly the values that enter and leave.
	// The running sum is reset to zero whenever the queue empties.
	// Integer sums are exact but may overflow T; choose T accordingly.
	// The zero value is an empty queue ready to use.
	// Concurrent access must be guarded by the caller.
	Queue[T Number] struct {
		tail  *ring.Ring[T] // tail.Next() is the front.
		sum   T
		count int
	}
)

// New creates an empty [Queue].
func New[T Number]() *Queue[T] {
	return new(Queue[T])
}

// Enqueue adds value to the back of the queue.
func (q *Queue[T]) Enqueue(value T) {
	element := ring.Of(value)
	if q.tail != nil {
		q.tail.Link(element)
	}
	q.tail = element
	q.sum += value
	q.count++
}

// Dequeue removes and returns the front value of the queue.
// If the queue is empty it returns the zero value and false.
func (q *Queue[T]) Dequeue() (T, bool) {
	if q.tail == nil {
		var zero T
		return zero, false
	}
	front := q.tail.UnlinkNext()
	if front == nil { // Last element.
		front, q.tail = q.tail, nil
	}
	value := front.Value
	q.count--
	if q.count == 0 {
		q.sum = 0
	} else {
		q.sum -= value
	}
	if assert.Enabled {
		assert.That(q.count >= 0, "negative queue count")
		assert.That(q.tail.Len() == q.count,
			"queue storage disagrees with count")
	}
	return value, true
}

// Front returns the front value without removing it.
func (q *Queue[T]) Front() (T, bool) {
	if q.tail == nil {
		var zero T
		return zero, false
	}
	return q.tail.Next().Value, true
}

// Average returns the mean of the values currently in the queue.
// The average of an empty queue is undefined;
// in that case it returns 0 and false.
func (q *Queue[T]) Average() (float64, bool) {
	if q.count == 0 {
		return 0, false
	}
	return float64(q.sum) / float64(q.count), true
}

// Sum returns the running total of the values in the queue.
func (q *Queue[T]) Sum() T { return q.sum }

// Len returns the number of values in the queue.
func (q *Queue[T]) Len() int { return q.count }

// Values returns an iterator over the queue's values, front to back.
// The queue must not be modified during iteration.
func (q *Queue[T]) Values() iter.Seq[T] {
	if q.tail == nil {
		return func(func(T) bool) {}
	}
	return q.tail.Next().Values()
}
