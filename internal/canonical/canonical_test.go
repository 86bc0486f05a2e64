package canonical

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarshal_Primitives(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want string
	}{
		{"string", "rack", `"rack"`},
		{"int", 42, "42"},
		{"int64", int64(-7), "-7"},
		{"bool true", true, "true"},
		{"bool false", false, "false"},
		{"no html escaping", "a<b>&c", `"a<b>&c"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Marshal(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(got))
		})
	}
}

func TestMarshal_ObjectKeysSorted(t *testing.T) {
	got, err := Marshal(map[string]any{
		"zeta":  1,
		"alpha": 2,
		"mid":   []any{"a", 3},
	})
	require.NoError(t, err)
	assert.Equal(t, `{"alpha":2,"mid":["a",3],"zeta":1}`, string(got))
}

func TestMarshal_Deterministic(t *testing.T) {
	in := map[string]any{"b": 1, "a": map[string]any{"d": true, "c": "x"}}

	first, err := Marshal(in)
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		again, err := Marshal(in)
		require.NoError(t, err)
		assert.Equal(t, string(first), string(again))
	}
}

func TestMarshal_NFCNormalization(t *testing.T) {
	// U+0065 U+0301 (e + combining acute) normalizes to U+00E9.
	decomposed := "caf" + "é"
	composed := "café"

	a, err := Marshal(decomposed)
	require.NoError(t, err)
	b, err := Marshal(composed)
	require.NoError(t, err)
	assert.Equal(t, string(b), string(a), "NFC forms must serialize identically")
}

func TestMarshal_Rejections(t *testing.T) {
	for _, in := range []any{nil, 1.5, float32(2), struct{}{}, map[string]any{"k": nil}} {
		_, err := Marshal(in)
		assert.Error(t, err, "%T must be rejected", in)
	}
}
