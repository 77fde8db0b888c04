package cli

import (
	"github.com/spf13/cobra"

	"pmlogd/internal/conf"
)

// NewDefaultsCommand creates the defaults command.
func NewDefaultsCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "defaults",
		Short: "Print the built-in fallback routing table",
		Long: `Print the built-in fallback routing table.

This is the table the daemon falls back to whenever a configuration load
fails: one stdlog output and one catch-all "<global>" context.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDefaults(rootOpts, cmd)
		},
	}

	return cmd
}

func runDefaults(opts *RootOptions, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	table := conf.Defaults()
	return formatter.Success(table, renderTable(table))
}
