package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"shopfloor/internal/config"
)

// ValidationResult holds the validate command's JSON payload. Failures
// are reported through the formatter's error envelope instead.
type ValidationResult struct {
	Valid bool `json:"valid"`
	Racks int  `json:"racks,omitempty"`
	Items int  `json:"items,omitempty"`
}

// NewValidateCommand creates the validate command.
func NewValidateCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <run-file.yaml>",
		Short: "Validate a run file without simulating",
		Long: `Validate a YAML run file without running the simulation.

Performs strict decoding, schema validation against the embedded CUE
schema, and the shared numeric bounds checks. Faster feedback than a full
run when editing configurations.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(rootOpts, args[0], cmd)
		},
	}

	return cmd
}

func runValidate(opts *RootOptions, path string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	cfg, err := config.LoadFile(path)
	if err != nil {
		var verr *config.ValidationError
		if !errors.As(err, &verr) {
			return WrapExitError(ExitCommandError, "failed to load run file", err)
		}

		if formatter.Format == "json" {
			if outErr := formatter.Error(verr.Code, verr.Message, nil); outErr != nil {
				return outErr
			}
		} else {
			fmt.Fprintf(formatter.Writer, "invalid: %s\n", verr)
		}
		return WrapExitError(ExitFailure, "run file is invalid", verr)
	}

	if formatter.Format == "json" {
		return formatter.Success(ValidationResult{
			Valid: true,
			Racks: len(cfg.Capacities),
			Items: len(cfg.Items),
		})
	}

	fmt.Fprintf(formatter.Writer, "valid: %d rack(s), %d item(s)\n", len(cfg.Capacities), len(cfg.Items))
	return nil
}
