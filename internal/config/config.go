package config

import (
	"fmt"

	"shopfloor/internal/workshop"
)

// Input bounds. Capacities strictly below 1024 and at most 64 racks keep
// the core's linear-scan stores cheap.
const (
	MaxRacks    = 64
	MaxCapacity = 1023
)

// Validation error codes. Stable identifiers for JSON output and tests;
// the reference-compatible text surface collapses all of them into a
// single INPUT_ERROR token.
const (
	ErrCodeMalformed    = "MALFORMED_INPUT"
	ErrCodeCapacity     = "CAPACITY_OUT_OF_RANGE"
	ErrCodeTooManyRacks = "TOO_MANY_RACKS"
	ErrCodeItemCount    = "BAD_ITEM_COUNT"
	ErrCodeSchema       = "SCHEMA_VIOLATION"
	ErrCodeNotFound     = "FILE_NOT_FOUND"
)

// ValidationError is a rejected run configuration.
type ValidationError struct {
	Code    string // one of the ErrCode constants
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func newError(code, format string, args ...any) *ValidationError {
	return &ValidationError{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Config is a fully validated run configuration.
type Config struct {
	// Capacities lists the rack sizes in tier order. May be empty.
	Capacities []int
	// Items is the ordered input stream, one Process call per entry.
	Items []workshop.Item
}

// Validate checks the bounds shared by every input source.
func (c *Config) Validate() error {
	if len(c.Capacities) > MaxRacks {
		return newError(ErrCodeTooManyRacks, "%d rack capacities given, at most %d allowed", len(c.Capacities), MaxRacks)
	}
	for i, capacity := range c.Capacities {
		if capacity < 1 || capacity > MaxCapacity {
			return newError(ErrCodeCapacity, "capacity %d at position %d out of range 1..%d", capacity, i+1, MaxCapacity)
		}
	}
	if len(c.Items) == 0 {
		return newError(ErrCodeItemCount, "item stream is empty")
	}
	return nil
}
