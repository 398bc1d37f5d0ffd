// Package maxstack implements a LIFO [Stack] that reports
// its current maximum in constant time.
//
// Alongside the stacked values, a monotonic stack of "running maxima" is kept:
// a value is pushed onto it when it is greater than or equal to
// the current maximum, and popped from it when that same value
// leaves the primary stack.
// Equal values are tracked individually, so duplicates of the maximum
// may be popped one at a time without losing the maximum early.
//
// Invariant: the top of the maxima stack equals the maximum
// of all values on the primary stack; both are empty together.
package maxstack
