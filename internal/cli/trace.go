package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"shopfloor/internal/tracelog"
)

// TraceOptions holds flags for the trace command.
type TraceOptions struct {
	*RootOptions
	Database string
}

// TraceStep is one recorded step in the trace command's output.
type TraceStep struct {
	Seq        int64  `json:"seq"`
	Item       int64  `json:"item"`
	Provenance string `json:"provenance"`
}

// TraceReport is the trace command's JSON payload.
type TraceReport struct {
	RunID      string      `json:"run_id"`
	Capacities []int       `json:"capacities"`
	ItemCount  int         `json:"item_count"`
	Steps      []TraceStep `json:"steps"`
}

// NewTraceCommand creates the trace command.
func NewTraceCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &TraceOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "trace <run-id>",
		Short: "Print the recorded step log of a run",
		Long: `Print the recorded step log of a run in logical order: one line per
processed item with its step number and provenance.

With no run-id argument the recorded run tokens are listed instead.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTrace(opts, args, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Database, "db", "", "path to trace database (required)")
	_ = cmd.MarkFlagRequired("db")

	return cmd
}

func runTrace(opts *TraceOptions, args []string, cmd *cobra.Command) error {
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

	ctx := cmd.Context()

	// No run token: list what the database holds.
	if len(args) == 0 {
		ids, err := store.ListRuns(ctx)
		if err != nil {
			return WrapExitError(ExitCommandError, "failed to list runs", err)
		}
		if formatter.Format == "json" {
			return formatter.Success(map[string]any{"runs": ids})
		}
		for _, id := range ids {
			fmt.Fprintln(formatter.Writer, id)
		}
		return nil
	}

	runID := args[0]
	run, err := store.ReadRun(ctx, runID)
	if err != nil {
		if errors.Is(err, tracelog.ErrRunNotFound) {
			return WrapExitError(ExitCommandError, fmt.Sprintf("run %q not recorded", runID), err)
		}
		return WrapExitError(ExitCommandError, "failed to read run", err)
	}
	steps, err := store.ReadSteps(ctx, runID)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to read steps", err)
	}

	report := TraceReport{
		RunID:      run.ID,
		Capacities: run.Capacities,
		ItemCount:  run.ItemCount,
	}
	for _, step := range steps {
		report.Steps = append(report.Steps, TraceStep{
			Seq:        step.Seq,
			Item:       int64(step.Item),
			Provenance: step.Provenance.String(),
		})
	}

	if formatter.Format == "json" {
		return formatter.Success(report)
	}

	fmt.Fprintf(formatter.Writer, "run %s: racks %v, %d item(s)\n", report.RunID, report.Capacities, report.ItemCount)
	for _, step := range report.Steps {
		fmt.Fprintf(formatter.Writer, "%6d  item %-12d %s\n", step.Seq, step.Item, step.Provenance)
	}
	return nil
}
