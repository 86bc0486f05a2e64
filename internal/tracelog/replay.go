package tracelog

import (
	"context"
	"fmt"

	"shopfloor/internal/workshop"
)

// Divergence is one step whose recomputed provenance differs from the
// recorded one. The simulation is deterministic, so any divergence means
// the trace database was edited or the recording is incomplete.
type Divergence struct {
	Seq      int64
	Item     workshop.Item
	Recorded workshop.Provenance
	Replayed workshop.Provenance
}

func (d Divergence) String() string {
	return fmt.Sprintf("seq %d item %d: recorded %s, replayed %s",
		d.Seq, d.Item, d.Recorded, d.Replayed)
}

// ReplayResult summarizes a replay verification.
type ReplayResult struct {
	Run Run
	// Steps is the number of recorded steps replayed.
	Steps int
	// Divergences lists every step that disagreed. Empty means the
	// recording is faithful.
	Divergences []Divergence
	// Truncated is true when fewer steps were recorded than the run's
	// item count claims.
	Truncated bool
}

// Deterministic reports whether the replay matched the recording exactly.
func (r ReplayResult) Deterministic() bool {
	return len(r.Divergences) == 0 && !r.Truncated
}

// Replay re-simulates a recorded run from its stored capacities and item
// stream, comparing the recomputed provenance of every step against the
// recorded one.
func (s *Store) Replay(ctx context.Context, runID string) (ReplayResult, error) {
	run, err := s.ReadRun(ctx, runID)
	if err != nil {
		return ReplayResult{}, err
	}
	steps, err := s.ReadSteps(ctx, runID)
	if err != nil {
		return ReplayResult{}, err
	}

	result := ReplayResult{
		Run:       run,
		Steps:     len(steps),
		Truncated: len(steps) < run.ItemCount,
	}

	w := workshop.New(run.Capacities)
	for _, recorded := range steps {
		replayed := w.Process(recorded.Item)
		if replayed != recorded.Provenance {
			result.Divergences = append(result.Divergences, Divergence{
				Seq:      recorded.Seq,
				Item:     recorded.Item,
				Recorded: recorded.Provenance,
				Replayed: replayed,
			})
		}
	}
	return result, nil
}
