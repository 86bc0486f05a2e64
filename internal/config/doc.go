// Package config is the input collaborator for shopfloor runs.
//
// A run configuration names the rack capacities and the ordered item
// stream. It can arrive in two forms:
//
//   - Stream form: the reference line protocol (capacities line, item
//     count line, one item token per line), parsed by ParseStream.
//   - File form: a YAML run file decoded with strict field checking and
//     validated against the embedded CUE schema, loaded by LoadFile.
//
// Either way the contract is the same: every violation is rejected before
// a workshop is constructed, surfaced as a *ValidationError with a stable
// code. Nothing in this package terminates the process; the caller decides
// how to report and exit.
//
// Bounds enforced on every source:
//   - at most 64 rack capacities, each in 1..1023
//   - a positive item count, with exactly that many item tokens
package config
