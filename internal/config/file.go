package config

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"gopkg.in/yaml.v3"

	"shopfloor/internal/workshop"
)

//go:embed schema.cue
var schemaCUE string

// runFile mirrors the YAML run file shape.
type runFile struct {
	Capacities []int   `yaml:"capacities" json:"capacities"`
	Items      []int64 `yaml:"items" json:"items"`
}

// LoadFile reads and validates a YAML run file.
//
// Decoding is strict (unknown fields are rejected, catching typos like
// "capacitys:"), then the document is unified with the embedded CUE
// schema before the shared bounds checks run. Validation failures carry
// a stable code in a *ValidationError.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, newError(ErrCodeNotFound, "run file not found: %s", path)
		}
		return nil, fmt.Errorf("read run file: %w", err)
	}
	return parseFile(data)
}

func parseFile(data []byte) (*Config, error) {
	var rf runFile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&rf); err != nil {
		return nil, newError(ErrCodeMalformed, "parse run file: %v", err)
	}

	if err := validateSchema(rf); err != nil {
		return nil, err
	}

	items := make([]workshop.Item, len(rf.Items))
	for i, v := range rf.Items {
		items[i] = workshop.Item(v)
	}

	cfg := &Config{Capacities: rf.Capacities, Items: items}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// validateSchema unifies the decoded run file with the #Run definition
// from the embedded schema and requires a fully concrete result.
func validateSchema(rf runFile) error {
	ctx := cuecontext.New()

	schema := ctx.CompileString(schemaCUE, cue.Filename("schema.cue"))
	if err := schema.Err(); err != nil {
		// The schema is embedded at build time; failing to compile it is
		// a programming fault, not an input error.
		panic(fmt.Sprintf("config: embedded schema invalid: %v", err))
	}

	def := schema.LookupPath(cue.ParsePath("#Run"))
	if !def.Exists() {
		panic("config: embedded schema has no #Run definition")
	}

	doc := ctx.Encode(rf)
	if err := doc.Err(); err != nil {
		return newError(ErrCodeMalformed, "encode run file: %v", err)
	}

	if err := def.Unify(doc).Validate(cue.Concrete(true)); err != nil {
		return newError(ErrCodeSchema, "run file violates schema: %v", err)
	}
	return nil
}
