package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"shopfloor/internal/config"
	"shopfloor/internal/tracelog"
	"shopfloor/internal/workshop"
)

// RunOptions holds flags for the run command.
type RunOptions struct {
	*RootOptions
	Database string
	All      bool

	// TokenGen allows overriding the run token generator (for testing).
	// If nil, defaults to tracelog.UUIDv7Generator.
	TokenGen tracelog.TokenGenerator
}

// RunResult is the run command's JSON payload.
type RunResult struct {
	RunID       string                `json:"run_id,omitempty"`
	Capacities  []int                 `json:"capacities"`
	Provenances []workshop.Provenance `json:"provenances"`
	Final       workshop.Provenance   `json:"final"`
}

// NewRunCommand creates the run command.
func NewRunCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &RunOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "run [run-file.yaml]",
		Short: "Run a simulation",
		Long: `Run a tiered placement simulation.

With a file argument the run configuration is loaded from YAML and
validated against the embedded schema. With no argument the reference
line protocol is read from stdin: a capacities line, an item count line,
then one item token per line.

By default only the final item's provenance is printed, matching the
reference program. Use --all for the full provenance sequence and --db to
record every step to a trace database for later replay.

Example:
  shopfloor run run.yaml
  shopfloor run --db ./trace.db --all run.yaml
  printf '1\n2\n10\n20\n' | shopfloor run`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSimulation(opts, args, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Database, "db", "", "record the run to this trace database")
	cmd.Flags().BoolVar(&opts.All, "all", false, "print every provenance, not just the final one")

	return cmd
}

func runSimulation(opts *RunOptions, args []string, cmd *cobra.Command) error {
	configureLogging(opts.Verbose)

	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	streamMode := len(args) == 0
	cfg, err := loadRunConfig(args, cmd)
	if err != nil {
		return reportInputError(formatter, err, streamMode)
	}
	slog.Info("configuration loaded", "racks", len(cfg.Capacities), "items", len(cfg.Items))

	var recorder *tracelog.Store
	if opts.Database != "" {
		recorder, err = tracelog.Open(opts.Database)
		if err != nil {
			return WrapExitError(ExitCommandError, "failed to open trace database", err)
		}
		defer func() {
			if closeErr := recorder.Close(); closeErr != nil {
				slog.Error("error closing trace database", "error", closeErr)
			}
		}()
	}

	result, err := simulate(cmd.Context(), cfg, recorder, opts.tokenGenerator())
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to record run", err)
	}
	if result.RunID != "" {
		slog.Info("run recorded", "run_id", result.RunID, "db", opts.Database)
	}

	return outputRunResult(formatter, result, opts.All)
}

// loadRunConfig resolves the two input forms: a YAML run file argument or
// the reference stream protocol on stdin.
func loadRunConfig(args []string, cmd *cobra.Command) (*config.Config, error) {
	if len(args) == 1 {
		return config.LoadFile(args[0])
	}
	return config.ParseStream(cmd.InOrStdin())
}

// simulate runs the full item stream, recording each step when a trace
// store is provided. Recording failures abort the run: a half-recorded
// trace would replay as truncated.
func simulate(ctx context.Context, cfg *config.Config, recorder *tracelog.Store, tokens tracelog.TokenGenerator) (*RunResult, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	runID := ""
	if recorder != nil {
		runID = tokens.Generate()
		err := recorder.WriteRun(ctx, tracelog.Run{
			ID:         runID,
			Capacities: cfg.Capacities,
			ItemCount:  len(cfg.Items),
		})
		if err != nil {
			return nil, err
		}
	}

	w := workshop.New(cfg.Capacities)
	provenances := make([]workshop.Provenance, 0, len(cfg.Items))
	for _, item := range cfg.Items {
		step := w.ProcessStep(item)
		provenances = append(provenances, step.Provenance)

		if recorder != nil {
			err := recorder.WriteStep(ctx, tracelog.StepRecord{
				RunID:      runID,
				Seq:        step.Seq,
				Item:       step.Item,
				Provenance: step.Provenance,
			})
			if err != nil {
				return nil, err
			}
		}
	}

	capacities := cfg.Capacities
	if capacities == nil {
		capacities = []int{}
	}
	return &RunResult{
		RunID:       runID,
		Capacities:  capacities,
		Provenances: provenances,
		Final:       provenances[len(provenances)-1],
	}, nil
}

func outputRunResult(f *OutputFormatter, result *RunResult, all bool) error {
	if f.Format == "json" {
		return f.Success(result)
	}

	if all {
		for _, prov := range result.Provenances {
			fmt.Fprintln(f.Writer, prov)
		}
		return nil
	}
	fmt.Fprintln(f.Writer, result.Final)
	return nil
}

// reportInputError surfaces a rejected configuration.
//
// In stream mode the reference program's contract applies: the single
// token INPUT_ERROR on stdout and a zero exit. File mode returns exit
// code 2 with the structured error. JSON output always carries the
// structured code.
func reportInputError(f *OutputFormatter, err error, streamMode bool) error {
	var verr *config.ValidationError
	if !errors.As(err, &verr) {
		return WrapExitError(ExitCommandError, "failed to load configuration", err)
	}

	if f.Format == "json" {
		if outErr := f.Error(verr.Code, verr.Message, nil); outErr != nil {
			return outErr
		}
	} else {
		fmt.Fprintln(f.Writer, "INPUT_ERROR")
		f.VerboseLog("rejected: %s", verr)
	}

	if streamMode {
		return nil
	}
	return WrapExitError(ExitCommandError, "invalid run configuration", verr)
}

func (opts *RunOptions) tokenGenerator() tracelog.TokenGenerator {
	if opts.TokenGen != nil {
		return opts.TokenGen
	}
	return tracelog.UUIDv7Generator{}
}

// configureLogging points slog at stderr with the level driven by the
// verbose flag. All diagnostics log; stdout stays reserved for results.
func configureLogging(verbose bool) {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(handler))
}
