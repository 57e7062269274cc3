package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/linostar/supercron/internal/crontab"
	"github.com/linostar/supercron/internal/ops"
	"github.com/linostar/supercron/internal/repetition"
	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"

	quiet    bool // suppress all output, errors included
	debugLog bool // emit debug logging on stderr
)

var rootCmd = &cobra.Command{
	Use:   "supercron",
	Short: "supercron - manage cron jobs with plain-English schedules and triggers",
	Long: `supercron translates repetition sentences like "every 2 hours on saturdays
in april" into crontab entries, addresses them by name, and lets jobs react
to each other's lifecycle through triggers.

Examples:
  supercron add -c "backup.sh" -r "midnight every 2 days" backup
  supercron trigger -t "off if backup is disabled" report
  supercron search @supercron`,
	Version:      fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		setupLogging()
		if quiet {
			cmd.Root().SetOut(io.Discard)
			cmd.Root().SetErr(io.Discard)
		}
	},
	Run: func(cmd *cobra.Command, args []string) {
		// Default behavior when no subcommand is specified
		_ = cmd.Help()
	},
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Global flags - these apply to all subcommands
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "do not print any output or error messages")
	rootCmd.PersistentFlags().BoolVar(&debugLog, "debug", false, "emit debug logging on stderr")
}

// setupLogging configures the process logger from the --debug flag. Debug
// logging is separate from --quiet, which only silences user-facing output.
func setupLogging() {
	level := slog.LevelWarn
	if debugLog {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})))
}

// newFacade builds the operations facade over the real crontab binary.
// Tests swap this to run against an in-memory backend.
var newFacade = func() *ops.Facade {
	return ops.New(crontab.ExecBackend{}, repetition.NewParser(), slog.With("module", "ops"))
}

// SetOutput sets the output and error writers for the root command
func SetOutput(out, err io.Writer) {
	rootCmd.SetOut(out)
	rootCmd.SetErr(err)
}

// printCount reports how many jobs an operation touched, e.g.
// "1 job named 'backup' has been enabled."
func printCount(cmd *cobra.Command, count int, name, action string) {
	if count == 1 {
		cmd.Printf("1 job named '%s' has been %s.\n", name, action)
		return
	}
	cmd.Printf("%d jobs named '%s' have been %s.\n", count, name, action)
}
