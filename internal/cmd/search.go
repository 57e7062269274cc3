package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/linostar/supercron/internal/ops"
	"github.com/spf13/cobra"
)

var searchJSON bool

var (
	headerStyle   = lipgloss.NewStyle().Bold(true)
	disabledStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	enabledStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
)

var searchCmd = &cobra.Command{
	Use:   "search NAME",
	Short: "List jobs by name, or @supercron / @all",
	Long: `List managed jobs matching a name. Two names are special: @supercron
lists every managed job, @all lists every line of the cron table including
entries not managed by supercron. Search never mutates the table.

Examples:
  supercron search backup
  supercron search @supercron
  supercron search @all --json`,
	Args: cobra.ExactArgs(1),
	RunE: runSearch,
}

func init() {
	rootCmd.AddCommand(searchCmd)

	searchCmd.Flags().BoolVarP(&searchJSON, "json", "j", false, "output as JSON")
}

// newSearchCommand creates a fresh search command instance for testing
func newSearchCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:  "search NAME",
		Args: cobra.ExactArgs(1),
		RunE: runSearch,
	}
	cmd.Flags().BoolVarP(&searchJSON, "json", "j", false, "output as JSON")
	return cmd
}

func runSearch(cmd *cobra.Command, args []string) error {
	rows, err := newFacade().Search(ops.SearchRequest{Name: args[0]})
	if err != nil {
		return err
	}

	if searchJSON {
		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		return encoder.Encode(map[string]any{"jobs": rows})
	}

	if len(rows) == 0 {
		cmd.Println("No jobs found")
		return nil
	}
	renderRows(cmd, rows)
	return nil
}

func renderRows(cmd *cobra.Command, rows []ops.Row) {
	headers := []string{"NAME", "STATE", "TRIGGER", "SCHEDULE", "NEXT", "COMMAND"}
	cells := make([][]string, 0, len(rows))
	for _, row := range rows {
		state := "enabled"
		if !row.Enabled {
			state = "disabled"
		}
		cells = append(cells, []string{row.Name, state, row.Trigger, row.Spec, row.Next, row.Command})
	}

	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}
	for _, row := range cells {
		for i, cell := range row {
			if len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	cmd.Println(headerStyle.Render(formatRow(headers, widths)))
	for i, row := range cells {
		style := enabledStyle
		if !rows[i].Enabled {
			style = disabledStyle
		}
		cmd.Println(style.Render(formatRow(row, widths)))
	}
}

func formatRow(cells []string, widths []int) string {
	padded := make([]string, len(cells))
	for i, cell := range cells {
		padded[i] = fmt.Sprintf("%-*s", widths[i], cell)
	}
	return strings.TrimRight(strings.Join(padded, "  "), " ")
}
