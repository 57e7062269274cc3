package cmd

import (
	"github.com/linostar/supercron/internal/ops"
	"github.com/spf13/cobra"
)

var renameCmd = &cobra.Command{
	Use:   "rename OLD NEW",
	Short: "Rename every job with the old name",
	Long: `Rename every managed job called OLD to NEW. For triggering purposes a
rename deletes the old name and adds the new one.

Example:
  supercron rename backup nightly_backup`,
	Args: cobra.ExactArgs(2),
	RunE: runRename,
}

func init() {
	rootCmd.AddCommand(renameCmd)
}

// newRenameCommand creates a fresh rename command instance for testing
func newRenameCommand() *cobra.Command {
	return &cobra.Command{
		Use:  "rename OLD NEW",
		Args: cobra.ExactArgs(2),
		RunE: runRename,
	}
}

func runRename(cmd *cobra.Command, args []string) error {
	old, newName := args[0], args[1]
	count, err := newFacade().Rename(ops.RenameRequest{Old: old, New: newName})
	if err != nil {
		return err
	}
	printCount(cmd, count, old, "renamed to '"+newName+"'")
	return nil
}
