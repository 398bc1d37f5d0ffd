package taskqueue

import "cmp"

type (
	entry[Name comparable, Priority cmp.Ordered] struct {
		name     Name
		priority Priority
		sequence uint64
		removed  bool // Tombstone.
	}
	// entries implements [container/heap.Interface];
	// the root is the entry to be served next.
	entries[Name comparable, Priority cmp.Ordered] []*entry[Name, Priority]
)

func (h entries[_, _]) Len() int { return len(h) }

func (h entries[_, _]) Less(i, j int) bool {
	a, b := h[i], h[j]
	if order := cmp.Compare(a.priority, b.priority); order != 0 {
		return order > 0
	}
	return a.sequence < b.sequence
}

func (h entries[_, _]) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *entries[Name, Priority]) Push(x any) {
	*h = append(*h, x.(*entry[Name, Priority]))
}

func (h *entries[_, _]) Pop() any {
	var (
		old  = *h
		end  = len(old) - 1
		item = old[end]
	)
	old[end] = nil
	*h = old[:end]
	return item
}
