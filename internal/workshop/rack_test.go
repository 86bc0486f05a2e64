package workshop

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRack_NewRack(t *testing.T) {
	r := NewRack(3)
	assert.Equal(t, 3, r.Cap())
	assert.Equal(t, 0, r.Len())
	assert.True(t, r.Empty())
	assert.False(t, r.Full())
}

func TestRack_NewRack_InvalidCapacity(t *testing.T) {
	assert.Panics(t, func() { NewRack(0) }, "zero capacity is a programming fault")
	assert.Panics(t, func() { NewRack(-1) })
}

func TestRack_Put_NoEvictionUntilFull(t *testing.T) {
	r := NewRack(2)

	_, evicted := r.Put(10)
	assert.False(t, evicted, "first put should not evict")

	_, evicted = r.Put(20)
	assert.False(t, evicted, "rack has room for two")

	assert.True(t, r.Full())
	assert.Equal(t, []Item{20, 10}, r.Items(), "most recent first")
}

func TestRack_Put_EvictsOldest(t *testing.T) {
	r := NewRack(2)
	r.Put(10)
	r.Put(20)

	old, evicted := r.Put(30)
	require.True(t, evicted, "full rack must evict")
	assert.Equal(t, Item(10), old, "least-recently-inserted entry is evicted")
	assert.Equal(t, []Item{30, 20}, r.Items())
}

func TestRack_Find_AfterPut(t *testing.T) {
	r := NewRack(4)
	r.Put(7)

	assert.True(t, r.Find(7), "find after put must locate the item")
	assert.False(t, r.Find(8))
}

func TestRack_Remove(t *testing.T) {
	r := NewRack(3)
	r.Put(1)
	r.Put(2)
	r.Put(3)

	require.True(t, r.Remove(2), "middle removal")
	assert.Equal(t, []Item{3, 1}, r.Items(), "recency order preserved")
	assert.False(t, r.Remove(2), "already removed")
	assert.False(t, r.Find(2))
}

func TestRack_TakeOldest(t *testing.T) {
	r := NewRack(3)
	r.Put(1)
	r.Put(2)

	assert.Equal(t, Item(1), r.TakeOldest())
	assert.Equal(t, Item(2), r.TakeOldest())
	assert.True(t, r.Empty())
}

func TestRack_TakeOldest_EmptyPanics(t *testing.T) {
	r := NewRack(1)
	assert.Panics(t, func() { r.TakeOldest() }, "empty take is an orchestration bug")
}

func TestRack_NeverExceedsCapacity(t *testing.T) {
	r := NewRack(5)
	for i := 0; i < 100; i++ {
		r.Put(Item(i))
		assert.LessOrEqual(t, r.Len(), r.Cap())
	}
	assert.Equal(t, 5, r.Len())
}

func TestRack_CapacityBoundary(t *testing.T) {
	// Max legal rack size with one more distinct item than fits; exactly
	// the least-recently-inserted of the first batch must be evicted.
	const capacity = 1023
	r := NewRack(capacity)

	for i := 1; i <= capacity; i++ {
		_, evicted := r.Put(Item(i))
		require.False(t, evicted, "item %d should fit", i)
	}
	require.True(t, r.Full())

	old, evicted := r.Put(Item(capacity + 1))
	require.True(t, evicted)
	assert.Equal(t, Item(1), old, "first inserted item is the oldest")
	assert.Equal(t, capacity, r.Len())
}

func TestRack_Items_IsACopy(t *testing.T) {
	r := NewRack(2)
	r.Put(1)

	items := r.Items()
	items[0] = 99

	assert.True(t, r.Find(1), "mutating the copy must not affect the rack")
	assert.False(t, r.Find(99))
}

func TestYard_Put_NeverEvicts(t *testing.T) {
	y := NewYard()
	for i := 0; i < 2000; i++ {
		y.Put(Item(i))
	}
	assert.Equal(t, 2000, y.Len())
	assert.Equal(t, Item(1999), y.Items()[0], "most recent first")
}

func TestYard_RemoveAndFind(t *testing.T) {
	y := NewYard()
	y.Put(5)
	y.Put(6)

	assert.True(t, y.Find(5))
	require.True(t, y.Remove(5))
	assert.False(t, y.Find(5))
	assert.False(t, y.Remove(5))
	assert.Equal(t, 1, y.Len())
}

func TestYard_Empty(t *testing.T) {
	y := NewYard()
	assert.True(t, y.Empty())
	y.Put(1)
	assert.False(t, y.Empty())
}
