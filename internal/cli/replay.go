package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"shopfloor/internal/tracelog"
)

// ReplayOptions holds flags for the replay command.
type ReplayOptions struct {
	*RootOptions
	Database string
}

// ReplayReport is the replay command's JSON payload.
type ReplayReport struct {
	RunID         string   `json:"run_id"`
	Steps         int      `json:"steps"`
	Deterministic bool     `json:"deterministic"`
	Truncated     bool     `json:"truncated,omitempty"`
	Divergences   []string `json:"divergences,omitempty"`
}

// NewReplayCommand creates the replay command.
func NewReplayCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ReplayOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "replay <run-id>",
		Short: "Re-simulate a recorded run and verify determinism",
		Long: `Re-simulate a recorded run from its stored configuration and compare
the recomputed provenance of every step against the recording.

The simulation is deterministic, so any divergence means the trace
database was edited or the recording was cut short. Exit code 1 signals a
divergent or truncated recording.

Example:
  shopfloor replay --db ./trace.db 0190cafe-...-0001`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReplay(opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Database, "db", "", "path to trace database (required)")
	_ = cmd.MarkFlagRequired("db")

	return cmd
}

func runReplay(opts *ReplayOptions, runID string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	store, err := tracelog.Open(opts.Database)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to open trace database", err)
	}
	defer store.Close()

	result, err := store.Replay(cmd.Context(), runID)
	if err != nil {
		if errors.Is(err, tracelog.ErrRunNotFound) {
			return WrapExitError(ExitCommandError, fmt.Sprintf("run %q not recorded", runID), err)
		}
		return WrapExitError(ExitCommandError, "replay failed", err)
	}

	report := ReplayReport{
		RunID:         runID,
		Steps:         result.Steps,
		Deterministic: result.Deterministic(),
		Truncated:     result.Truncated,
	}
	for _, div := range result.Divergences {
		report.Divergences = append(report.Divergences, div.String())
	}

	if err := outputReplayReport(formatter, report); err != nil {
		return err
	}

	if !report.Deterministic {
		return NewExitError(ExitFailure, "recording did not replay deterministically")
	}
	return nil
}

func outputReplayReport(f *OutputFormatter, report ReplayReport) error {
	if f.Format == "json" {
		return f.Success(report)
	}

	if report.Deterministic {
		fmt.Fprintf(f.Writer, "run %s: %d step(s) replayed deterministically\n", report.RunID, report.Steps)
		return nil
	}

	fmt.Fprintf(f.Writer, "run %s: replay diverged\n", report.RunID)
	if report.Truncated {
		fmt.Fprintln(f.Writer, "  recording is truncated")
	}
	for _, div := range report.Divergences {
		fmt.Fprintf(f.Writer, "  %s\n", div)
	}
	return nil
}
