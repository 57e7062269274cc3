package cmd

import (
	"github.com/linostar/supercron/internal/ops"
	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:   "delete NAME",
	Short: "Delete every job with that exact name",
	Long: `Remove every managed job whose name matches exactly. Jobs triggered on
the deleted name react before the table is written.

Example:
  supercron delete backup`,
	Args: cobra.ExactArgs(1),
	RunE: runDelete,
}

func init() {
	rootCmd.AddCommand(deleteCmd)
}

// newDeleteCommand creates a fresh delete command instance for testing
func newDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:  "delete NAME",
		Args: cobra.ExactArgs(1),
		RunE: runDelete,
	}
}

func runDelete(cmd *cobra.Command, args []string) error {
	count, err := newFacade().Delete(ops.DeleteRequest{Name: args[0]})
	if err != nil {
		return err
	}
	printCount(cmd, count, args[0], "deleted")
	return nil
}
