package harness

import (
	"testing"

	"github.com/sebdah/goldie/v2"

	"shopfloor/internal/canonical"
)

// TraceSnapshot captures the complete trace for a scenario execution.
// Serialized as canonical JSON for byte-stable golden comparison.
type TraceSnapshot struct {
	ScenarioName string
	Trace        []TraceEvent
}

// toCanonicalMap converts a TraceSnapshot to the map/slice shapes the
// canonical marshaler accepts.
func (s *TraceSnapshot) toCanonicalMap() map[string]any {
	traceList := make([]any, len(s.Trace))
	for i, event := range s.Trace {
		traceList[i] = map[string]any{
			"seq":        event.Seq,
			"item":       event.Item,
			"provenance": event.Provenance,
		}
	}
	return map[string]any{
		"scenario_name": s.ScenarioName,
		"trace":         traceList,
	}
}

// RunWithGolden executes a scenario and compares its trace against a
// golden file in testdata/golden/{scenario.Name}.golden. Golden files are
// the source of truth for expected trace behavior; regenerate with:
//
//	go test ./internal/harness -update
//
// The scenario's expect list is still enforced first, so a golden file
// can never silently drift away from the scenario's own expectations.
func RunWithGolden(t *testing.T, scenario *Scenario) *Result {
	t.Helper()

	result := Run(scenario)
	for _, failure := range result.Failures {
		t.Error(failure)
	}

	snapshot := TraceSnapshot{
		ScenarioName: scenario.Name,
		Trace:        result.Trace,
	}
	traceJSON, err := canonical.Marshal(snapshot.toCanonicalMap())
	if err != nil {
		t.Fatalf("marshal trace snapshot: %v", err)
	}

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, scenario.Name, traceJSON)

	return result
}
