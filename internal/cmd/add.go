package cmd

import (
	"github.com/linostar/supercron/internal/ops"
	"github.com/spf13/cobra"
)

var (
	addCommand    string
	addRepetition string
)

var addCmd = &cobra.Command{
	Use:   "add -c COMMAND -r SENTENCE NAME",
	Short: "Add a named cron job from a repetition sentence",
	Long: `Create a managed cron job. The repetition sentence is free-form English;
minute and hour default to the current time when the sentence leaves them
open, so "every wednesday" fires once a week at a fixed instant.

Examples:
  supercron add -c "date +%j" -r "every 2 hours" log_dates
  supercron add -c backup.sh -r "midnight every 2 days from monday to friday" backup
  supercron add -c reindex.sh -r "at reboot" reindex`,
	Args: cobra.ExactArgs(1),
	RunE: runAdd,
}

func init() {
	rootCmd.AddCommand(addCmd)

	addCmd.Flags().StringVarP(&addCommand, "command", "c", "", "command to be executed by the job")
	addCmd.Flags().StringVarP(&addRepetition, "repetition", "r", "", "repetition sentence describing when the job runs")
	_ = addCmd.MarkFlagRequired("command")
	_ = addCmd.MarkFlagRequired("repetition")
}

// newAddCommand creates a fresh add command instance for testing
func newAddCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:  "add -c COMMAND -r SENTENCE NAME",
		Args: cobra.ExactArgs(1),
		RunE: runAdd,
	}
	cmd.Flags().StringVarP(&addCommand, "command", "c", "", "command to be executed by the job")
	cmd.Flags().StringVarP(&addRepetition, "repetition", "r", "", "repetition sentence describing when the job runs")
	_ = cmd.MarkFlagRequired("command")
	_ = cmd.MarkFlagRequired("repetition")
	return cmd
}

func runAdd(cmd *cobra.Command, args []string) error {
	name := args[0]
	err := newFacade().Add(ops.AddRequest{
		Name:     name,
		Command:  addCommand,
		Sentence: addRepetition,
	})
	if err != nil {
		return err
	}
	cmd.Printf("Job named '%s' has been successfully added.\n", name)
	return nil
}
