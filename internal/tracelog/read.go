package tracelog

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"shopfloor/internal/workshop"
)

// ErrRunNotFound is returned when a run token has no record.
var ErrRunNotFound = errors.New("run not found")

// ReadRun returns the run record for a token.
// Returns ErrRunNotFound (wrapped) if the token is unknown.
func (s *Store) ReadRun(ctx context.Context, id string) (Run, error) {
	var (
		run      Run
		capsJSON string
	)
	err := s.db.QueryRowContext(ctx, `
		SELECT id, capacities, item_count
		FROM runs
		WHERE id = ?
	`, id).Scan(&run.ID, &capsJSON, &run.ItemCount)
	if errors.Is(err, sql.ErrNoRows) {
		return Run{}, fmt.Errorf("read run %q: %w", id, ErrRunNotFound)
	}
	if err != nil {
		return Run{}, fmt.Errorf("read run %q: %w", id, err)
	}

	if err := json.Unmarshal([]byte(capsJSON), &run.Capacities); err != nil {
		return Run{}, fmt.Errorf("read run %q: decode capacities: %w", id, err)
	}
	return run, nil
}

// ReadSteps returns the recorded steps of a run in logical order.
// ORDER BY seq ASC: step reads are deterministic.
func (s *Store) ReadSteps(ctx context.Context, runID string) ([]StepRecord, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT run_id, seq, item, provenance
		FROM steps
		WHERE run_id = ?
		ORDER BY seq ASC
	`, runID)
	if err != nil {
		return nil, fmt.Errorf("read steps for %q: %w", runID, err)
	}
	defer rows.Close()

	var steps []StepRecord
	for rows.Next() {
		var (
			step  StepRecord
			item  int64
			token string
		)
		if err := rows.Scan(&step.RunID, &step.Seq, &item, &token); err != nil {
			return nil, fmt.Errorf("read steps for %q: %w", runID, err)
		}
		step.Item = workshop.Item(item)
		step.Provenance, err = workshop.ParseProvenance(token)
		if err != nil {
			return nil, fmt.Errorf("read steps for %q: seq %d: %w", runID, step.Seq, err)
		}
		steps = append(steps, step)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read steps for %q: %w", runID, err)
	}
	return steps, nil
}

// ListRuns returns every recorded run token in lexical order.
// UUIDv7 tokens sort by creation time, so this is also chronological for
// production databases.
func (s *Store) ListRuns(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id FROM runs ORDER BY id ASC`)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("list runs: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	return ids, nil
}
