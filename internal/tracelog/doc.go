// Package tracelog provides SQLite-backed storage for recorded runs.
//
// The log is append-only with two tables:
//   - Runs: one row per simulation run (token, rack capacities, item count)
//   - Steps: one row per processed item (step seq, item token, provenance)
//
// # Critical Patterns
//
// Logical Time Only
//   - All ordering uses the workshop's step seq, never timestamps
//   - Enables deterministic replay regardless of wall time
//
// Deterministic Query Results
//   - Step reads always ORDER BY seq ASC
//   - Identical results across replays
//
// Write Idempotency
//   - INSERT ... ON CONFLICT DO NOTHING on both tables
//   - Re-recording a run or step is a silent no-op
//
// # Database Configuration
//
//   - WAL mode: concurrent reads during writes
//   - synchronous=NORMAL: balance durability/performance
//   - busy_timeout=5000: wait for locks up to 5 seconds
//   - foreign_keys=ON: steps require their run row
//
// Replay re-simulates a recorded run from its stored configuration and
// reports any divergence between recorded and recomputed provenances -
// the simulation is deterministic, so a divergence means the database was
// edited or the recording was cut short.
package tracelog
