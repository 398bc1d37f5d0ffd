package maxstack

import (
	"cmp"

	"github.com/djdv/go-tracked/internal/assert"
)

// Stack is a LIFO stack that tracks its maximum value.
// Values are ordered by [cmp.Compare], so a floating-point NaN
// sorts below every other value.
// The zero value is an empty stack ready to use.
// Concurrent access must be guarded by the caller.
type Stack[T cmp.Ordered] struct {
	values, maxima []T
}

// New creates an empty [Stack].
func New[T cmp.Ordered]() *Stack[T] {
	return new(Stack[T])
}

// Push places value on top of the stack.
func (s *Stack[T]) Push(value T) {
	s.values = append(s.values, value)
	if top, ok := last(s.maxima); !ok ||
		cmp.Compare(value, top) >= 0 {
		s.maxima = append(s.maxima, value)
	}
}

// Pop removes and returns the top value of the stack.
// If the stack is empty it returns the zero value and false.
func (s *Stack[T]) Pop() (T, bool) {
	value, ok := last(s.values)
	if !ok {
		return value, false
	}
	s.values = shrink(s.values)
	if top, _ := last(s.maxima); cmp.Compare(value, top) == 0 {
		s.maxima = shrink(s.maxima)
	}
	if assert.Enabled {
		assert.That((len(s.values) == 0) == (len(s.maxima) == 0),
			"maxima must be empty only when the stack is empty")
	}
	return value, true
}

// Peek returns the top value without removing it.
func (s *Stack[T]) Peek() (T, bool) { return last(s.values) }

// Max returns the largest value currently on the stack.
// If the stack is empty it returns the zero value and false.
func (s *Stack[T]) Max() (T, bool) { return last(s.maxima) }

// IsEmpty reports whether the stack holds no values.
func (s *Stack[T]) IsEmpty() bool { return len(s.values) == 0 }

// Len returns the number of values on the stack.
func (s *Stack[T]) Len() int { return len(s.values) }

func last[T any](values []T) (T, bool) {
	if end := len(values); end != 0 {
		return values[end-1], true
	}
	var zero T
	return zero, false
}

// shrink drops the last element, clearing its slot
// so popped values are not retained by the backing array.
func shrink[T any](values []T) []T {
	end := len(values) - 1
	var zero T
	values[end] = zero
	return values[:end]
}
