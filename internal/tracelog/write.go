package tracelog

import (
	"context"
	"encoding/json"
	"fmt"

	"shopfloor/internal/workshop"
)

// Run is one recorded simulation run.
type Run struct {
	// ID is the run token.
	ID string
	// Capacities lists the rack sizes in tier order.
	Capacities []int
	// ItemCount is the number of recorded steps the run should have.
	ItemCount int
}

// StepRecord is one recorded Process call.
type StepRecord struct {
	RunID      string
	Seq        int64
	Item       workshop.Item
	Provenance workshop.Provenance
}

// WriteRun inserts a run record.
// ON CONFLICT(id) DO NOTHING: re-recording a run token is a silent no-op.
func (s *Store) WriteRun(ctx context.Context, run Run) error {
	capsJSON, err := json.Marshal(run.Capacities)
	if err != nil {
		return fmt.Errorf("write run: %w", err)
	}
	if run.Capacities == nil {
		capsJSON = []byte("[]")
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO runs (id, capacities, item_count)
		VALUES (?, ?, ?)
		ON CONFLICT(id) DO NOTHING
	`, run.ID, string(capsJSON), run.ItemCount)
	if err != nil {
		return fmt.Errorf("write run: %w", err)
	}
	return nil
}

// WriteStep inserts a step record.
// ON CONFLICT DO NOTHING: the (run_id, seq) primary key makes duplicate
// writes idempotent. The run referenced by RunID must exist (foreign key).
func (s *Store) WriteStep(ctx context.Context, step StepRecord) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO steps (run_id, seq, item, provenance)
		VALUES (?, ?, ?, ?)
		ON CONFLICT DO NOTHING
	`, step.RunID, step.Seq, int64(step.Item), step.Provenance.String())
	if err != nil {
		return fmt.Errorf("write step: %w", err)
	}
	return nil
}
