package tracelog

import "github.com/google/uuid"

// TokenGenerator produces run tokens.
// The production generator is UUIDv7; tests substitute a fixed sequence
// (see internal/testutil) for stable trace databases.
type TokenGenerator interface {
	Generate() string
}

// UUIDv7Generator generates time-sortable UUIDv7 run tokens.
//
// UUIDv7 embeds a timestamp in the most significant bits, so listing runs
// by token also lists them by creation time - helpful when browsing a
// trace database by hand.
//
// Stateless and safe for concurrent use.
type UUIDv7Generator struct{}

// Generate creates a new UUIDv7 as a hyphenated string.
// Panics if UUID generation fails (should never happen in practice).
func (g UUIDv7Generator) Generate() string {
	return uuid.Must(uuid.NewV7()).String()
}
