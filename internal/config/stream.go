package config

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"shopfloor/internal/workshop"
)

// ParseStream reads a run configuration in the reference line protocol:
//
//	line 1: space-separated rack capacities (digits and spaces only)
//	line 2: item count
//	then:   one item token per line, exactly count of them
//
// Everything is validated here; the returned Config is safe to hand to
// workshop.New. The first violation stops parsing.
func ParseStream(r io.Reader) (*Config, error) {
	sc := bufio.NewScanner(r)

	capacities, err := parseCapacityLine(readLine(sc))
	if err != nil {
		return nil, err
	}

	count, err := parseCount(readLine(sc))
	if err != nil {
		return nil, err
	}

	// No capacity hint: count is still untrusted here, and an absurd
	// value must fall through to the short-read error, not makeslice.
	var items []workshop.Item
	for i := int64(0); i < count; i++ {
		token, err := parseToken(readLine(sc))
		if err != nil {
			return nil, err
		}
		items = append(items, token)
	}

	cfg := &Config{Capacities: capacities, Items: items}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// readLine returns the next line, or ok=false at end of input. A missing
// line is reported by the caller as a malformed token, matching the
// reference behavior of failing on a short read.
func readLine(sc *bufio.Scanner) (line string, ok bool) {
	if !sc.Scan() {
		return "", false
	}
	return sc.Text(), true
}

// parseCapacityLine parses the first protocol line. Only digits and
// spaces are legal; each value must pass the shared bounds (checked later
// by Config.Validate, but the textual form is rejected here).
func parseCapacityLine(line string, ok bool) ([]int, error) {
	if !ok {
		return nil, newError(ErrCodeMalformed, "missing capacities line")
	}
	for _, r := range line {
		if r != ' ' && (r < '0' || r > '9') {
			return nil, newError(ErrCodeMalformed, "capacities line contains %q, only digits and spaces allowed", r)
		}
	}
	fields := strings.Fields(line)
	capacities := make([]int, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, newError(ErrCodeMalformed, "bad capacity %q", f)
		}
		capacities = append(capacities, v)
	}
	return capacities, nil
}

func parseCount(line string, ok bool) (int64, error) {
	if !ok {
		return 0, newError(ErrCodeMalformed, "missing item count line")
	}
	count, err := strconv.ParseInt(strings.TrimSpace(line), 10, 64)
	if err != nil {
		return 0, newError(ErrCodeMalformed, "bad item count %q", line)
	}
	if count <= 0 {
		return 0, newError(ErrCodeItemCount, "item count must be positive, got %d", count)
	}
	return count, nil
}

func parseToken(line string, ok bool) (workshop.Item, error) {
	if !ok {
		return 0, newError(ErrCodeMalformed, "item stream ended early")
	}
	v, err := strconv.ParseInt(strings.TrimSpace(line), 10, 64)
	if err != nil {
		return 0, newError(ErrCodeMalformed, "bad item token %q", line)
	}
	return workshop.Item(v), nil
}
