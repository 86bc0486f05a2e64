package workshop

import "sync/atomic"

// Clock issues the step numbers that stamp each Process call. Steps are
// pure sequence positions; wall time never enters, so a recorded run
// replays with the identical numbering. Safe for concurrent use, though
// the workshop's sequential contract means a single caller in practice.
type Clock struct {
	seq atomic.Int64
}

// NewClock creates a clock whose first Next call returns 1.
func NewClock() *Clock {
	return &Clock{}
}

// NewClockAt creates a clock resuming after a known step number.
func NewClockAt(start int64) *Clock {
	c := &Clock{}
	c.seq.Store(start)
	return c
}

// Next consumes and returns the next step number, strictly increasing.
func (c *Clock) Next() int64 {
	return c.seq.Add(1)
}

// Current returns the last issued step number without consuming one.
func (c *Clock) Current() int64 {
	return c.seq.Load()
}
