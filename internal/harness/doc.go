// Package harness provides conformance testing for shopfloor simulations.
//
// The harness loads run scenarios, executes them through a fresh workshop,
// and validates the provenance sequence as an executable contract test.
//
// # Scenario Format
//
// Scenarios are defined in YAML files with the following structure:
//
//	name: scenario_name
//	description: "What this scenario validates"
//	capacities: [1, 1]
//	items: [1, 2, 3, 1]
//	expect: ["NEW", "NEW", "NEW", "OUTSIDE"]
//
// expect lists one provenance token per item, in the reference output
// vocabulary: "NEW", "OUTSIDE", or a 1-based tier index.
//
// # Deterministic Testing
//
// The simulation is a pure function of its inputs, so a scenario's trace
// is identical on every run. The harness exploits this two ways:
//
//   - Run compares the produced provenances against the expect list.
//   - RunWithGolden snapshots the full step trace as canonical JSON and
//     compares it against a golden file via goldie. Regenerate with:
//
//	go test ./internal/harness -update
//
// # Usage
//
//	scenario, err := harness.LoadScenario("testdata/scenarios/cascade.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	result := harness.Run(scenario)
//	if !result.Pass {
//	    for _, failure := range result.Failures {
//	        log.Println(failure)
//	    }
//	}
package harness
