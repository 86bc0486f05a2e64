// Package testutil provides deterministic helpers shared by tests.
package testutil

import (
	"fmt"
	"sync"
)

// FixedTokenGenerator returns the same run token every time.
//
// This enables deterministic trace databases and golden snapshot
// comparison: the same run recorded with the same FixedTokenGenerator
// produces byte-identical step logs.
//
// Thread-safety: stateless after construction, safe for concurrent use.
type FixedTokenGenerator struct {
	token string
}

// NewFixedTokenGenerator creates a fixed run token generator.
// If token is empty, Generate returns "test-run-default".
func NewFixedTokenGenerator(token string) *FixedTokenGenerator {
	if token == "" {
		token = "test-run-default"
	}
	return &FixedTokenGenerator{token: token}
}

// Generate returns the fixed run token.
// Implements tracelog.TokenGenerator.
func (g *FixedTokenGenerator) Generate() string {
	return g.token
}

// SequenceTokenGenerator returns numbered tokens in order: "test-run-1",
// "test-run-2", and so on. Useful when a test records several runs into
// one database and needs them distinguishable but still deterministic.
//
// Thread-safety: safe for concurrent use via internal mutex.
type SequenceTokenGenerator struct {
	mu     sync.Mutex
	prefix string
	n      int
}

// NewSequenceTokenGenerator creates a numbered token generator.
// If prefix is empty, "test-run" is used.
func NewSequenceTokenGenerator(prefix string) *SequenceTokenGenerator {
	if prefix == "" {
		prefix = "test-run"
	}
	return &SequenceTokenGenerator{prefix: prefix}
}

// Generate returns the next numbered token.
func (g *SequenceTokenGenerator) Generate() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.n++
	return fmt.Sprintf("%s-%d", g.prefix, g.n)
}
