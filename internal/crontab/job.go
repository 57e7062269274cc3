package crontab

import (
	"github.com/linostar/supercron/internal/comment"
	"github.com/linostar/supercron/internal/schedule"
	"github.com/linostar/supercron/internal/trigger"
)

// Job is a managed cron entry addressable by a user-chosen name. Its name
// and trigger live in the trailing line comment; a disabled job is kept in
// the table but commented out so cron ignores it.
type Job struct {
	Name     string
	Command  string
	Schedule schedule.Schedule
	Enabled  bool
	Trigger  *trigger.Trigger
}

// Render serializes the job to its crontab line.
func (j *Job) Render() string {
	line := j.Schedule.Spec() + " " + j.Command + " # " + comment.Encode(j.Name, j.Trigger)
	if !j.Enabled {
		line = "# " + line
	}
	return line
}

// Line is one line of the cron table: either a managed job or a verbatim
// pass-through (blank lines, comments, entries this system did not create).
type Line struct {
	Raw string // original bytes, authoritative for unmanaged lines
	Job *Job   // non-nil only for managed jobs
}

// Managed returns true if the line carries a job created by this system.
func (l *Line) Managed() bool {
	return l.Job != nil
}

// Render returns the line as it is written back to the cron table.
// Unmanaged lines are reproduced byte for byte.
func (l *Line) Render() string {
	if l.Job != nil {
		return l.Job.Render()
	}
	return l.Raw
}
