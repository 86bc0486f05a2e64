package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFixedTokenGenerator(t *testing.T) {
	gen := NewFixedTokenGenerator("run-abc")
	assert.Equal(t, "run-abc", gen.Generate())
	assert.Equal(t, "run-abc", gen.Generate())
}

func TestFixedTokenGenerator_DefaultToken(t *testing.T) {
	gen := NewFixedTokenGenerator("")
	assert.Equal(t, "test-run-default", gen.Generate())
}

func TestSequenceTokenGenerator(t *testing.T) {
	gen := NewSequenceTokenGenerator("")

	assert.Equal(t, "test-run-1", gen.Generate())
	assert.Equal(t, "test-run-2", gen.Generate())
	assert.Equal(t, "test-run-3", gen.Generate())
}

func TestSequenceTokenGenerator_CustomPrefix(t *testing.T) {
	gen := NewSequenceTokenGenerator("replay")
	assert.Equal(t, "replay-1", gen.Generate())
}
