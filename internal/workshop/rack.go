package workshop

// Item is an opaque comparable token identifying a unit of material.
//
// int64 matches the input collaborator's numeric domain and avoids any
// reserved sentinel value: absence is always expressed through an explicit
// ok bool, never through a magic Item.
type Item int64

// Rack is a fixed-capacity, recency-ordered store of items.
//
// Entries are kept most-recently-inserted first. Put on a full rack trades
// the incoming item for the oldest entry, so len never exceeds capacity.
// Lookup is a linear scan: capacities are bounded well below 1024 and there
// are at most 64 racks per workshop, so O(cap) search keeps the structure a
// plain deque with no cached positions.
//
// Not safe for concurrent use; the owning workshop is strictly sequential.
type Rack struct {
	capacity int
	// items[0] is the most recent entry, items[len-1] the oldest.
	items []Item
}

// NewRack creates an empty rack with the given capacity.
// Panics if capacity < 1: rack sizes are validated before construction,
// so a non-positive capacity is a programming fault.
func NewRack(capacity int) *Rack {
	if capacity < 1 {
		panic("workshop: rack capacity must be >= 1")
	}
	return &Rack{
		capacity: capacity,
		items:    make([]Item, 0, capacity),
	}
}

// Put inserts item as the most recent entry.
//
// If the rack is full, the oldest entry is evicted to make room and
// returned with ok=true. Otherwise ok=false and evicted is meaningless.
//
// Precondition: item is not already present (uniqueness across all stores
// is a precondition on the input stream; a duplicate makes later Find
// results undefined).
func (r *Rack) Put(item Item) (evicted Item, ok bool) {
	if len(r.items) < r.capacity {
		r.pushFront(item)
		return 0, false
	}
	evicted = r.TakeOldest()
	r.pushFront(item)
	return evicted, true
}

// Remove deletes item from the rack, preserving the recency order of the
// remaining entries. Returns false if item is not present.
func (r *Rack) Remove(item Item) bool {
	for i, held := range r.items {
		if held == item {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return true
		}
	}
	return false
}

// TakeOldest removes and returns the least-recently-inserted entry.
// Panics if the rack is empty: callers check occupancy first, so an empty
// take is an orchestration bug.
func (r *Rack) TakeOldest() Item {
	if len(r.items) == 0 {
		panic("workshop: TakeOldest on empty rack")
	}
	last := len(r.items) - 1
	item := r.items[last]
	r.items = r.items[:last]
	return item
}

// Find reports whether item is currently held.
// First match by linear scan; uniqueness makes tie-breaking moot.
func (r *Rack) Find(item Item) bool {
	for _, held := range r.items {
		if held == item {
			return true
		}
	}
	return false
}

// Full reports whether the rack is at capacity.
func (r *Rack) Full() bool { return len(r.items) == r.capacity }

// Empty reports whether the rack holds no items.
func (r *Rack) Empty() bool { return len(r.items) == 0 }

// Len returns the current number of held items.
func (r *Rack) Len() int { return len(r.items) }

// Cap returns the fixed capacity.
func (r *Rack) Cap() int { return r.capacity }

// Items returns the held items, most recent first.
// The returned slice is a copy; mutating it does not affect the rack.
func (r *Rack) Items() []Item {
	out := make([]Item, len(r.items))
	copy(out, r.items)
	return out
}

func (r *Rack) pushFront(item Item) {
	r.items = append(r.items, 0)
	copy(r.items[1:], r.items)
	r.items[0] = item
}

// Yard is the unbounded terminal store for items displaced past the last
// rack. It shares the Rack's recency ordering but never evicts: Put always
// absorbs. A distinct type rather than a huge-capacity Rack, because
// "terminal sink, never evicts" is an invariant worth encoding structurally
// instead of through a magic capacity value.
type Yard struct {
	items []Item
}

// NewYard creates an empty overflow yard.
func NewYard() *Yard {
	return &Yard{}
}

// Put inserts item as the most recent entry. Never evicts.
func (y *Yard) Put(item Item) {
	y.items = append(y.items, 0)
	copy(y.items[1:], y.items)
	y.items[0] = item
}

// Remove deletes item from the yard. Returns false if item is not present.
func (y *Yard) Remove(item Item) bool {
	for i, held := range y.items {
		if held == item {
			y.items = append(y.items[:i], y.items[i+1:]...)
			return true
		}
	}
	return false
}

// Find reports whether item is currently held.
func (y *Yard) Find(item Item) bool {
	for _, held := range y.items {
		if held == item {
			return true
		}
	}
	return false
}

// Empty reports whether the yard holds no items.
func (y *Yard) Empty() bool { return len(y.items) == 0 }

// Len returns the current number of held items.
func (y *Yard) Len() int { return len(y.items) }

// Items returns the held items, most recent first.
// The returned slice is a copy.
func (y *Yard) Items() []Item {
	out := make([]Item, len(y.items))
	copy(out, y.items)
	return out
}
