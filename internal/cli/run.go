package cli

import (
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"pmlogd/internal/conf"
	"pmlogd/internal/pidlock"
)

// RunOptions holds flags for the run command.
type RunOptions struct {
	LockDir string
}

// NewRunCommand creates the run command.
func NewRunCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &RunOptions{}

	cmd := &cobra.Command{
		Use:   "run <conf-file>",
		Short: "Load the configuration and hold it as the live routing table",
		Long: `Acquire the process lock, load the routing configuration, and publish it
as the live table.

A load failure is not fatal: the built-in default table is published
instead, so the daemon always runs with some usable configuration.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDaemon(rootOpts, opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVar(&opts.LockDir, "lock-dir", pidlock.DefaultDir, "directory for the pid lock file")

	return cmd
}

func runDaemon(rootOpts *RootOptions, opts *RunOptions, confPath string, cmd *cobra.Command) error {
	lock, err := pidlock.Acquire(opts.LockDir, "pmlogd")
	if err != nil {
		return WrapExitError(ExitCommandError, "acquiring process lock", err)
	}
	defer func() {
		if releaseErr := lock.Release(); releaseErr != nil {
			slog.Error("releasing process lock", "error", releaseErr)
		}
	}()

	loader := conf.NewLoader(slog.Default())
	table, err := loader.LoadFile(confPath)
	if err != nil {
		slog.Error("configuration rejected, falling back to defaults",
			"path", confPath, "error", err)
		table = conf.Defaults()
	}

	holder := conf.NewHolder(table)
	live := holder.Current()
	slog.Info("routing table published",
		"outputs", len(live.Outputs), "contexts", len(live.Contexts))

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	slog.Info("shutting down")
	return nil
}
