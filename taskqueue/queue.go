package taskqueue

import (
	"cmp"
	"container/heap"

	"github.com/djdv/go-tracked/internal/assert"
)

// Queue serves named tasks in descending priority order,
// breaking ties by insertion order.
// Priorities are ordered by [cmp.Compare], so a floating-point NaN
// is served after every other priority.
// Concurrent access must be guarded by the caller.
// Constructed by [New].
type Queue[Name comparable, Priority cmp.Ordered] struct {
	index    map[Name]*entry[Name, Priority]
	entries  entries[Name, Priority]
	sequence uint64
}

// New creates an empty [Queue].
func New[Name comparable, Priority cmp.Ordered](options ...Option) (*Queue[Name, Priority], error) {
	set, err := newSettings(options)
	if err != nil {
		return nil, err
	}
	return &Queue[Name, Priority]{
		index:   make(map[Name]*entry[Name, Priority], set.capacity),
		entries: make(entries[Name, Priority], 0, set.capacity),
	}, nil
}

// Add queues name with priority.
// If name is already queued, its previous entry is discarded
// and name is queued again as if it were new.
func (q *Queue[Name, Priority]) Add(name Name, priority Priority) {
	q.Remove(name)
	live := &entry[Name, Priority]{
		name:     name,
		priority: priority,
		sequence: q.sequence,
	}
	q.sequence++
	heap.Push(&q.entries, live)
	q.index[name] = live
}

// Update changes the priority of name.
// The task is placed behind any other tasks with the same priority.
// If name is not queued, Update is equivalent to [Queue.Add].
func (q *Queue[Name, Priority]) Update(name Name, priority Priority) {
	q.Add(name, priority) // Add tombstones the current entry.
}

// Remove withdraws name from the queue, if present.
func (q *Queue[Name, _]) Remove(name Name) {
	live, ok := q.index[name]
	if !ok {
		return
	}
	live.removed = true
	delete(q.index, name)
}

// Pop removes and returns the name of the highest priority task.
// If the queue is empty it returns the zero value and false.
func (q *Queue[Name, Priority]) Pop() (Name, bool) {
	for len(q.entries) > 0 {
		top := heap.Pop(&q.entries).(*entry[Name, Priority])
		if top.removed {
			continue
		}
		if assert.Enabled {
			assert.That(q.index[top.name] == top,
				"live entry is not indexed")
		}
		delete(q.index, top.name)
		return top.name, true
	}
	if assert.Enabled {
		assert.That(len(q.index) == 0,
			"index holds entries missing from the heap")
	}
	var zero Name
	return zero, false
}

// Peek returns the name of the highest priority task without removing it.
// Tombstones encountered at the top of the queue are discarded.
func (q *Queue[Name, Priority]) Peek() (Name, bool) {
	for len(q.entries) > 0 {
		if top := q.entries[0]; !top.removed {
			return top.name, true
		}
		heap.Pop(&q.entries)
	}
	var zero Name
	return zero, false
}

// Priority returns the current priority of name, if it is queued.
func (q *Queue[Name, Rank]) Priority(name Name) (Rank, bool) {
	if live, ok := q.index[name]; ok {
		return live.priority, true
	}
	var zero Rank
	return zero, false
}

// Contains reports whether name is queued.
func (q *Queue[Name, _]) Contains(name Name) bool {
	_, ok := q.index[name]
	return ok
}

// Len returns the number of queued tasks, excluding tombstones.
func (q *Queue[_, _]) Len() int {
	return len(q.index)
}
