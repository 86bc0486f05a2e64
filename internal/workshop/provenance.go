package workshop

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// ProvenanceKind categorizes where an item was found before being moved to
// the workbench.
type ProvenanceKind int

const (
	// ProvenanceNew means the item had never been seen before.
	ProvenanceNew ProvenanceKind = iota + 1
	// ProvenanceTier means the item was found in a rack (1-based index).
	ProvenanceTier
	// ProvenanceOverflow means the item was found in the overflow yard.
	ProvenanceOverflow
)

// Textual forms matching the reference output vocabulary.
const (
	tokenNew      = "NEW"
	tokenOverflow = "OUTSIDE"
)

// Provenance is the outcome of a single Process call: the location the
// item was removed from immediately before being placed on the workbench.
//
// A Provenance is created fresh per step and has no persistent identity.
// Tier is only meaningful when Kind == ProvenanceTier.
type Provenance struct {
	Kind ProvenanceKind
	Tier int // 1-based rack index
}

// NewProvenance reports an item never seen before.
func NewProvenance() Provenance {
	return Provenance{Kind: ProvenanceNew}
}

// TierProvenance reports an item found in rack tier (1-based).
// Panics on a non-positive tier: the workshop only reports racks it owns.
func TierProvenance(tier int) Provenance {
	if tier < 1 {
		panic("workshop: tier provenance must be 1-based")
	}
	return Provenance{Kind: ProvenanceTier, Tier: tier}
}

// OverflowProvenance reports an item found in the overflow yard.
func OverflowProvenance() Provenance {
	return Provenance{Kind: ProvenanceOverflow}
}

// String renders the reference vocabulary: the 1-based tier index for rack
// hits, "OUTSIDE" for overflow hits, "NEW" for unseen items.
func (p Provenance) String() string {
	switch p.Kind {
	case ProvenanceTier:
		return strconv.Itoa(p.Tier)
	case ProvenanceOverflow:
		return tokenOverflow
	case ProvenanceNew:
		return tokenNew
	default:
		panic(fmt.Sprintf("workshop: invalid provenance kind %d", p.Kind))
	}
}

// ParseProvenance converts a reference-vocabulary token back into a
// Provenance. Accepts "NEW", "OUTSIDE", or a positive decimal tier index.
func ParseProvenance(s string) (Provenance, error) {
	switch s {
	case tokenNew:
		return NewProvenance(), nil
	case tokenOverflow:
		return OverflowProvenance(), nil
	}
	tier, err := strconv.Atoi(s)
	if err != nil || tier < 1 {
		return Provenance{}, fmt.Errorf("invalid provenance token %q", s)
	}
	return TierProvenance(tier), nil
}

// MarshalJSON encodes the provenance as its reference token, so JSON
// output and golden snapshots share one vocabulary with the text format.
func (p Provenance) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.String())
}

// UnmarshalJSON decodes a reference token produced by MarshalJSON.
func (p *Provenance) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseProvenance(s)
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}
