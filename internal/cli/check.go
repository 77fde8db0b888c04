package cli

import (
	"errors"
	"log/slog"

	"github.com/spf13/cobra"

	"pmlogd/internal/conf"
)

// CheckResult holds validation results for one configuration file.
type CheckResult struct {
	Valid    bool `json:"valid" yaml:"valid"`
	Outputs  int  `json:"outputs" yaml:"outputs"`
	Contexts int  `json:"contexts" yaml:"contexts"`
}

// NewCheckCommand creates the check command.
func NewCheckCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check <conf-file>",
		Short: "Validate a routing configuration file",
		Long: `Validate a routing configuration file without loading it into a daemon.

Builds the full routing table the way the daemon would: every output and
context group is parsed, every rule compiled and cross-referenced. The first
rejected value is reported with its group, key, and offending value.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true, // Don't print usage on errors
		SilenceErrors: true, // Don't print errors - we handle our own error output
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(rootOpts, args[0], cmd)
		},
	}

	return cmd
}

func runCheck(opts *RootOptions, confPath string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	loader := conf.NewLoader(slog.Default())
	table, err := loader.LoadFile(confPath)
	if err != nil {
		return outputConfError(formatter, err)
	}

	result := CheckResult{
		Valid:    true,
		Outputs:  len(table.Outputs),
		Contexts: len(table.Contexts),
	}
	return formatter.Success(result, "configuration valid")
}

// outputConfError renders a load failure and converts it to the right exit
// code: command error for unreadable sources, validation failure for
// rejected content.
func outputConfError(formatter *OutputFormatter, err error) error {
	code := "ERROR"
	exitCode := ExitFailure

	var ce *conf.Error
	if errors.As(err, &ce) {
		code = string(ce.Code)
		if ce.Code == conf.CodeIO {
			exitCode = ExitCommandError
		}
	}

	if outErr := formatter.Error(code, err.Error()); outErr != nil {
		return WrapExitError(ExitCommandError, "writing output", outErr)
	}
	return WrapExitError(exitCode, "configuration rejected", err)
}
