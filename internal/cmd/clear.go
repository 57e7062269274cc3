package cmd

import (
	"bufio"
	"strings"

	"github.com/linostar/supercron/internal/ops"
	"github.com/spf13/cobra"
)

var clearForce bool

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove every supercron job from the crontab",
	Long: `Remove every managed job. Crontab entries not added by supercron are left
untouched. Asks for confirmation unless --force is given.

Example:
  supercron clear -f`,
	Args: cobra.NoArgs,
	RunE: runClear,
}

func init() {
	rootCmd.AddCommand(clearCmd)

	clearCmd.Flags().BoolVarP(&clearForce, "force", "f", false, "clear without asking for confirmation")
}

// newClearCommand creates a fresh clear command instance for testing
func newClearCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:  "clear",
		Args: cobra.NoArgs,
		RunE: runClear,
	}
	cmd.Flags().BoolVarP(&clearForce, "force", "f", false, "clear without asking for confirmation")
	return cmd
}

func runClear(cmd *cobra.Command, args []string) error {
	// The prompt happens before the transaction so that load and write run
	// back to back.
	if !clearForce {
		cmd.Println("Note: this will not affect crontab entries not added by SuperCron.")
		cmd.Print("Are you sure you want to clear all your SuperCron jobs? [y/n]: ")
		reply, _ := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
		if strings.TrimRight(reply, "\r\n") != "y" {
			cmd.Println("Cancelled.")
			return nil
		}
	}

	count, err := newFacade().Clear(ops.ClearRequest{})
	if err != nil {
		return err
	}
	if count == 1 {
		cmd.Println("1 job has been removed from your crontab.")
	} else {
		cmd.Printf("%d jobs have been removed from your crontab.\n", count)
	}
	return nil
}
