package harness

import (
	"fmt"

	"shopfloor/internal/workshop"
)

// TraceEvent is one executed step in a scenario trace.
type TraceEvent struct {
	Seq        int64
	Item       int64
	Provenance string
}

// Result is the outcome of executing a scenario.
type Result struct {
	// Pass is true when every step produced its expected provenance.
	Pass bool

	// Failures describes each step whose provenance disagreed.
	Failures []string

	// Trace is the full step sequence, one event per item, in order.
	Trace []TraceEvent
}

// Run executes a scenario through a fresh workshop and checks every
// step's provenance against the expectation list.
//
// The scenario must already be valid (LoadScenario validates); Run does
// not re-validate shape, only behavior.
func Run(scenario *Scenario) *Result {
	w := workshop.New(scenario.Capacities)
	result := &Result{Pass: true}

	for i, item := range scenario.Items {
		step := w.ProcessStep(workshop.Item(item))
		got := step.Provenance.String()

		result.Trace = append(result.Trace, TraceEvent{
			Seq:        step.Seq,
			Item:       item,
			Provenance: got,
		})

		if got != scenario.Expect[i] {
			result.Pass = false
			result.Failures = append(result.Failures, fmt.Sprintf(
				"step %d (item %d): expected %s, got %s",
				step.Seq, item, scenario.Expect[i], got,
			))
		}
	}
	return result
}
