package ops

import (
	"strings"

	"github.com/linostar/supercron/internal/crontab"
)

// Row is one line of search output, ready for presentation.
type Row struct {
	Name    string `json:"name"`
	Enabled bool   `json:"enabled"`
	Trigger string `json:"trigger"`
	Spec    string `json:"spec"`
	Command string `json:"command"`
	Next    string `json:"next,omitempty"`
}

const nextTimeLayout = "2006-01-02 15:04"

// Search lists jobs without mutating the table. NameSupercron lists every
// managed job, NameAll every non-blank line of the table, anything else
// the exact-name matches. Zero results is an empty slice, not an error.
func (f *Facade) Search(req SearchRequest) ([]Row, error) {
	store, err := f.load()
	if err != nil {
		return nil, err
	}

	rows := []Row{}
	switch req.Name {
	case NameAll:
		for _, line := range store.Lines() {
			if line.Managed() {
				rows = append(rows, f.jobRow(line.Job))
				continue
			}
			if strings.TrimSpace(line.Raw) == "" {
				continue
			}
			rows = append(rows, Row{
				Name:    "-",
				Enabled: !strings.HasPrefix(strings.TrimSpace(line.Raw), "#"),
				Trigger: "-",
				Spec:    "-",
				Command: line.Raw,
			})
		}
	case NameSupercron:
		for _, job := range store.Jobs() {
			rows = append(rows, f.jobRow(job))
		}
	default:
		for _, job := range store.FindByName(req.Name) {
			rows = append(rows, f.jobRow(job))
		}
	}
	return rows, nil
}

func (f *Facade) jobRow(job *crontab.Job) Row {
	row := Row{
		Name:    job.Name,
		Enabled: job.Enabled,
		Trigger: "-",
		Spec:    job.Schedule.Spec(),
		Command: job.Command,
		Next:    "-",
	}
	if job.Trigger != nil {
		row.Trigger = job.Trigger.String()
	}
	if times, err := job.Schedule.Next(f.now(), 1); err == nil && len(times) == 1 {
		row.Next = times[0].Format(nextTimeLayout)
	}
	return row
}
