package cmd

import (
	"github.com/linostar/supercron/internal/ops"
	"github.com/spf13/cobra"
)

var enableCmd = &cobra.Command{
	Use:   "enable NAME",
	Short: "Enable every job with that name",
	Long: `Enable every managed job with that name. The Toggled event fires for the
invocation even when no job changed state.

Example:
  supercron enable backup`,
	Args: cobra.ExactArgs(1),
	RunE: runEnable,
}

var disableCmd = &cobra.Command{
	Use:   "disable NAME",
	Short: "Disable every job with that name",
	Long: `Disable every managed job with that name. The job stays in the table but
is commented out so cron ignores it.

Example:
  supercron disable backup`,
	Args: cobra.ExactArgs(1),
	RunE: runDisable,
}

func init() {
	rootCmd.AddCommand(enableCmd)
	rootCmd.AddCommand(disableCmd)
}

// newEnableCommand creates a fresh enable command instance for testing
func newEnableCommand() *cobra.Command {
	return &cobra.Command{
		Use:  "enable NAME",
		Args: cobra.ExactArgs(1),
		RunE: runEnable,
	}
}

// newDisableCommand creates a fresh disable command instance for testing
func newDisableCommand() *cobra.Command {
	return &cobra.Command{
		Use:  "disable NAME",
		Args: cobra.ExactArgs(1),
		RunE: runDisable,
	}
}

func runEnable(cmd *cobra.Command, args []string) error {
	count, err := newFacade().Enable(ops.EnableRequest{Name: args[0]})
	if err != nil {
		return err
	}
	printCount(cmd, count, args[0], "enabled")
	return nil
}

func runDisable(cmd *cobra.Command, args []string) error {
	count, err := newFacade().Disable(ops.DisableRequest{Name: args[0]})
	if err != nil {
		return err
	}
	printCount(cmd, count, args[0], "disabled")
	return nil
}
