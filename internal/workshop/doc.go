// Package workshop implements the shopfloor placement simulation.
//
// The workshop is the heart of shopfloor - it receives a stream of item
// tokens, moves each one onto the single-slot workbench, and pushes the
// item it displaces through a cascade of fixed-capacity racks into an
// unbounded overflow yard.
//
// ARCHITECTURE:
//
// Single-Writer Sequential Loop:
// The workshop processes all items in strict input order on one goroutine.
// This ensures:
// - Predictable rack occupancy at every step
// - Reproducible provenance sequence on replay
// - Simple reasoning about where every item lives
//
// Item Processing Flow:
// 1. Drain the workbench; cascade-place the drained item through the racks
// 2. Locate the incoming item (overflow yard first, then racks in order)
// 3. Remove it from where it was found and place it on the workbench
// 4. Report the prior location as the step's Provenance
//
// Cascade placement is an iterative fold over the ordered rack list: each
// rack either absorbs the carried item or trades it for its oldest entry,
// and anything displaced past the last rack lands in the overflow yard,
// which never evicts. With zero racks the drained item goes directly to
// overflow.
//
// CRITICAL PATTERNS:
//
// Logical Step Clock:
// Every Process call is stamped with a monotonic step number from
// Clock.Next(). Ordering never uses wall-clock time.
//
// Deterministic Placement:
// Racks are searched and cascaded in ascending index order, the overflow
// yard is always checked before any rack, and stores are recency-ordered
// with most-recently-inserted first. No randomness, no concurrency.
//
// Item uniqueness across all stores is a precondition on the input stream,
// not something the workshop enforces; the first match by linear scan wins.
// Violated internal invariants (removing from an empty store, an occupied
// workbench after a drain) are programming faults and panic rather than
// surfacing as recoverable errors.
package workshop
