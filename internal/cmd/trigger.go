package cmd

import (
	"github.com/linostar/supercron/internal/ops"
	"github.com/spf13/cobra"
)

var triggerSentence string

var triggerCmd = &cobra.Command{
	Use:   "trigger -t SENTENCE NAME",
	Short: "Attach a trigger to a job, or clear it with \"none\"",
	Long: `Make the named job react to another job's lifecycle. The sentence has the
form "<on|off|toggle> if <source> is <enabled|disabled|toggled|added|deleted>"
and is parsed case-insensitively. "none" removes the trigger.

Examples:
  supercron trigger -t "on if backup is enabled" report
  supercron trigger -t "off if backup is deleted" report
  supercron trigger -t none report`,
	Args: cobra.ExactArgs(1),
	RunE: runTrigger,
}

func init() {
	rootCmd.AddCommand(triggerCmd)

	triggerCmd.Flags().StringVarP(&triggerSentence, "trigger", "t", "", "trigger sentence, or \"none\" to clear")
	_ = triggerCmd.MarkFlagRequired("trigger")
}

// newTriggerCommand creates a fresh trigger command instance for testing
func newTriggerCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:  "trigger -t SENTENCE NAME",
		Args: cobra.ExactArgs(1),
		RunE: runTrigger,
	}
	cmd.Flags().StringVarP(&triggerSentence, "trigger", "t", "", "trigger sentence, or \"none\" to clear")
	_ = cmd.MarkFlagRequired("trigger")
	return cmd
}

func runTrigger(cmd *cobra.Command, args []string) error {
	count, err := newFacade().Trigger(ops.TriggerRequest{Name: args[0], Sentence: triggerSentence})
	if err != nil {
		return err
	}
	printCount(cmd, count, args[0], "updated")
	return nil
}
