package harness

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"shopfloor/internal/config"
	"shopfloor/internal/workshop"
)

// Scenario defines a conformance test scenario: a run configuration plus
// the expected provenance of every step.
type Scenario struct {
	// Name uniquely identifies this scenario. Also names the golden file.
	Name string `yaml:"name"`

	// Description explains what this scenario validates.
	Description string `yaml:"description"`

	// Capacities lists the rack sizes in tier order. May be empty.
	Capacities []int `yaml:"capacities"`

	// Items is the ordered input stream.
	Items []int64 `yaml:"items"`

	// Expect lists the expected provenance token per item, in order:
	// "NEW", "OUTSIDE", or a 1-based tier index.
	Expect []string `yaml:"expect"`
}

// LoadScenario reads and parses a scenario YAML file.
// Returns an error if the file doesn't exist, is malformed, contains
// unknown fields (typos), or is missing required fields.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}

	// Strict field validation catches typos like "expects:" vs "expect:".
	var scenario Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&scenario); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := validateScenario(&scenario); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}
	return &scenario, nil
}

// validateScenario checks that required fields are present and coherent.
// The numeric input bounds are delegated to the config collaborator so a
// scenario can never describe a run the CLI would reject.
func validateScenario(s *Scenario) error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}
	if s.Description == "" {
		return fmt.Errorf("description is required")
	}
	if len(s.Items) == 0 {
		return fmt.Errorf("items list is required and must be non-empty")
	}
	if len(s.Expect) != len(s.Items) {
		return fmt.Errorf("expect lists %d tokens for %d items", len(s.Expect), len(s.Items))
	}
	for i, token := range s.Expect {
		if _, err := workshop.ParseProvenance(token); err != nil {
			return fmt.Errorf("expect[%d]: %w", i, err)
		}
	}

	cfg := s.configuration()
	if err := cfg.Validate(); err != nil {
		return err
	}
	return nil
}

// configuration converts the scenario into a validated-shape run config.
func (s *Scenario) configuration() *config.Config {
	items := make([]workshop.Item, len(s.Items))
	for i, v := range s.Items {
		items[i] = workshop.Item(v)
	}
	return &config.Config{Capacities: s.Capacities, Items: items}
}
