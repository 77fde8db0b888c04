package cli

import (
	"log/slog"

	"github.com/spf13/cobra"

	"pmlogd/internal/conf"
)

// NewDumpCommand creates the dump command.
func NewDumpCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dump <conf-file>",
		Short: "Load a configuration file and print the resolved routing table",
		Long: `Load a routing configuration file and print the fully resolved table.

Shows every value after defaulting and clamping: the table printed here is
exactly what the router would consult at runtime.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDump(rootOpts, args[0], cmd)
		},
	}

	return cmd
}

func runDump(opts *RootOptions, confPath string, cmd *cobra.Command) error {
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

	return formatter.Success(table, renderTable(table))
}
