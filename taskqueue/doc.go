// Package taskqueue implements an indexable priority [Queue] of named tasks,
// supporting priority changes and removal by name.
//
// Removal is lazy. Removing or re-prioritizing a task marks its heap entry
// as a tombstone and forgets it in the name index; the entry stays in the heap
// until a later [Queue.Pop] or [Queue.Peek] reaches it and discards it.
// This avoids tracking heap positions through every sift.
//
// Ordering: the larger priority value is served first.
// Equal priorities are served in the order their entries were created,
// and a priority update creates a fresh entry, moving the task
// behind existing tasks of its new priority.
//
// Invariants:
//
//   - A name has at most one live entry, and the index points to it.
//   - Every entry reachable from the index is in the heap and not a tombstone.
//   - Sequence numbers are unique and strictly increasing in creation order.
package taskqueue
