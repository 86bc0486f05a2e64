package workshop

import "fmt"

// Workshop owns one capacity-1 workbench, an ordered list of racks, and
// one overflow yard, and implements the cascade-placement policy.
//
// Between Process calls every item ever seen resides in exactly one of
// {workbench, rack 1..N, overflow}; items are never duplicated or silently
// dropped. The workbench always holds the single most-recently-touched
// item, each rack holds progressively older items bounded by its own
// capacity, and anything displaced past the last rack accumulates in the
// overflow yard, from which a later Process call can retrieve it.
//
// Not safe for concurrent use. Process calls must be strictly sequential:
// cascade placement of step n mutates rack occupancy read by step n+1.
type Workshop struct {
	workbench *Rack
	racks     []*Rack
	overflow  *Yard
	clock     *Clock
}

// Step is one processed item together with its step number and outcome.
type Step struct {
	Seq        int64
	Item       Item
	Provenance Provenance
}

// New creates a workshop with one rack per entry of capacities, in order.
// An empty capacities list is legal: with zero racks, anything drained
// from the workbench goes directly to overflow.
//
// Capacities are validated by the input collaborator before construction;
// a non-positive capacity here panics via NewRack.
func New(capacities []int) *Workshop {
	racks := make([]*Rack, 0, len(capacities))
	for _, c := range capacities {
		racks = append(racks, NewRack(c))
	}
	return &Workshop{
		workbench: NewRack(1),
		racks:     racks,
		overflow:  NewYard(),
		clock:     NewClock(),
	}
}

// Process moves item onto the workbench and reports where it came from.
//
// The previous workbench occupant (if any) is first cascade-placed through
// the racks. Then item is located - overflow yard first, then racks in
// ascending order - removed from wherever it was found, and placed on the
// now-empty workbench. Items found nowhere are new.
func (w *Workshop) Process(item Item) Provenance {
	_, prov := w.step(item)
	return prov
}

// ProcessStep is Process plus the step number stamped by the logical
// clock, for callers feeding a trace log.
func (w *Workshop) ProcessStep(item Item) Step {
	seq, prov := w.step(item)
	return Step{Seq: seq, Item: item, Provenance: prov}
}

// Run processes a full input stream in order and returns the complete
// provenance sequence, one entry per item.
func (w *Workshop) Run(items []Item) []Provenance {
	out := make([]Provenance, len(items))
	for i, item := range items {
		out[i] = w.Process(item)
	}
	return out
}

func (w *Workshop) step(item Item) (int64, Provenance) {
	seq := w.clock.Next()
	w.drainWorkbench()
	prov := w.take(item)
	if _, evicted := w.workbench.Put(item); evicted {
		// drainWorkbench just emptied the bench.
		panic("workshop: workbench occupied after drain")
	}
	return seq, prov
}

// drainWorkbench moves the current workbench occupant, if any, into the
// rack chain. The workbench is guaranteed empty afterwards.
func (w *Workshop) drainWorkbench() {
	if w.workbench.Empty() {
		return
	}
	w.cascade(w.workbench.TakeOldest())
}

// cascade places item into rack 1, carrying each eviction into the next
// rack. An iterative fold over the ordered rack list: the carry either
// gets absorbed, terminating the fold, or reaches past the last rack and
// lands in the overflow yard, which never evicts.
func (w *Workshop) cascade(item Item) {
	carry := item
	for _, rack := range w.racks {
		evicted, ok := rack.Put(carry)
		if !ok {
			return
		}
		carry = evicted
	}
	w.overflow.Put(carry)
}

// take removes item from wherever it currently resides and reports that
// location. Overflow is searched before the racks: overflow membership is
// checked cheaply first in the reference ordering.
func (w *Workshop) take(item Item) Provenance {
	if w.overflow.Remove(item) {
		return OverflowProvenance()
	}
	for i, rack := range w.racks {
		if rack.Remove(item) {
			return TierProvenance(i + 1)
		}
	}
	return NewProvenance()
}

// RackCount returns the number of racks.
func (w *Workshop) RackCount() int { return len(w.racks) }

// Holdings returns every item currently held anywhere in the workshop:
// workbench first, then racks in order, then overflow, each most recent
// first. Conservation checks walk this to assert nothing is lost.
func (w *Workshop) Holdings() []Item {
	out := w.workbench.Items()
	for _, rack := range w.racks {
		out = append(out, rack.Items()...)
	}
	return append(out, w.overflow.Items()...)
}

// Locate reports where item currently resides without moving it:
// "workbench", "overflow", the 1-based rack index as a string, or "" if
// the item is unknown. Read-only diagnostic.
func (w *Workshop) Locate(item Item) string {
	if w.workbench.Find(item) {
		return "workbench"
	}
	if w.overflow.Find(item) {
		return "overflow"
	}
	for i, rack := range w.racks {
		if rack.Find(item) {
			return fmt.Sprintf("%d", i+1)
		}
	}
	return ""
}
