package ring_test

import (
	"slices"
	"testing"

	"github.com/djdv/go-tracked/internal/ring"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRing(t *testing.T) {
	t.Run("nil", emptyRing)
	t.Run("zero value", zeroValue)
	t.Run("link order", linkOrder)
	t.Run("unlink", unlinkNext)
	t.Run("values stop", valuesStop)
}

func emptyRing(t *testing.T) {
	t.Parallel()
	var r *ring.Ring[int]
	assert.Zero(t, r.Len())
	assert.Empty(t, slices.Collect(r.Values()))
}

func zeroValue(t *testing.T) {
	t.Parallel()
	var r ring.Ring[string]
	assert.Same(t, &r, r.Next())
	assert.Same(t, &r, r.Prev())
	assert.Equal(t, 1, r.Len())
}

func linkOrder(t *testing.T) {
	t.Parallel()
	tail := appendInts(3)
	require.Equal(t, 3, tail.Len())
	// The element after the tail is the head.
	assert.Equal(t, []int{1, 2, 3}, slices.Collect(tail.Next().Values()))
	assert.Equal(t, 2, tail.Prev().Value)
}

func unlinkNext(t *testing.T) {
	t.Parallel()
	tail := appendInts(3)
	head := tail.UnlinkNext()
	require.NotNil(t, head)
	assert.Equal(t, 1, head.Value)
	assert.Equal(t, 1, head.Len(), "removed element should be detached")
	assert.Equal(t, []int{2, 3}, slices.Collect(tail.Next().Values()))

	single := ring.Of(7)
	assert.Nil(t, single.UnlinkNext(), "a lone element has nothing to unlink")
	assert.Equal(t, 1, single.Len())
}

func valuesStop(t *testing.T) {
	t.Parallel()
	tail := appendInts(5)
	var got []int
	for value := range tail.Next().Values() {
		got = append(got, value)
		if value == 2 {
			break
		}
	}
	assert.Equal(t, []int{1, 2}, got)
}

func appendInts(end int) *ring.Ring[int] {
	var tail *ring.Ring[int]
	for i := range end {
		element := ring.Of(i + 1)
		if tail != nil {
			tail.Link(element)
		}
		tail = element
	}
	return tail
}
