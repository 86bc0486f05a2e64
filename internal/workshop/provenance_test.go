package workshop

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProvenance_String(t *testing.T) {
	tests := []struct {
		name string
		prov Provenance
		want string
	}{
		{"new", NewProvenance(), "NEW"},
		{"overflow", OverflowProvenance(), "OUTSIDE"},
		{"tier 1", TierProvenance(1), "1"},
		{"tier 64", TierProvenance(64), "64"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.prov.String())
		})
	}
}

func TestProvenance_String_InvalidKindPanics(t *testing.T) {
	assert.Panics(t, func() { _ = Provenance{}.String() })
}

func TestTierProvenance_NonPositivePanics(t *testing.T) {
	assert.Panics(t, func() { TierProvenance(0) })
}

func TestParseProvenance(t *testing.T) {
	tests := []struct {
		token   string
		want    Provenance
		wantErr bool
	}{
		{token: "NEW", want: NewProvenance()},
		{token: "OUTSIDE", want: OverflowProvenance()},
		{token: "3", want: TierProvenance(3)},
		{token: "0", wantErr: true},
		{token: "-1", wantErr: true},
		{token: "new", wantErr: true},
		{token: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			got, err := ParseProvenance(tt.token)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestProvenance_JSONRoundTrip(t *testing.T) {
	for _, prov := range []Provenance{NewProvenance(), OverflowProvenance(), TierProvenance(7)} {
		data, err := json.Marshal(prov)
		require.NoError(t, err)

		var got Provenance
		require.NoError(t, json.Unmarshal(data, &got))
		assert.Equal(t, prov, got, "token %s", string(data))
	}
}

func TestProvenance_JSONUsesReferenceTokens(t *testing.T) {
	data, err := json.Marshal(OverflowProvenance())
	require.NoError(t, err)
	assert.Equal(t, `"OUTSIDE"`, string(data))
}
