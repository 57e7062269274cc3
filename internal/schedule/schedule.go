package schedule

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/robfig/cron/v3"
)

// Schedule is the structured representation of when a job runs, prior to
// cron-text rendering. It is either the special reboot form or five fields.
type Schedule struct {
	Reboot     bool
	Minute     Field
	Hour       Field
	DayOfMonth Field
	Month      Field
	DayOfWeek  Field
}

// Spec renders the schedule into the time specification accepted by cron:
// either "@reboot" or the five space-joined fields.
func (s Schedule) Spec() string {
	if s.Reboot {
		return "@reboot"
	}
	return strings.Join([]string{
		s.Minute.String(),
		s.Hour.String(),
		s.DayOfMonth.String(),
		s.Month.String(),
		s.DayOfWeek.String(),
	}, " ")
}

// Equal reports whether two schedules render to the same specification.
func (s Schedule) Equal(o Schedule) bool {
	if s.Reboot || o.Reboot {
		return s.Reboot == o.Reboot
	}
	return s.Minute.Equal(o.Minute) &&
		s.Hour.Equal(o.Hour) &&
		s.DayOfMonth.Equal(o.DayOfMonth) &&
		s.Month.Equal(o.Month) &&
		s.DayOfWeek.Equal(o.DayOfWeek)
}

// Validate checks the rendered specification against a standard cron parser.
// @reboot is exempt: it is a vixie extension that standard parsers reject
// but every crontab implementation we target accepts.
func (s Schedule) Validate() error {
	if s.Reboot {
		return nil
	}
	// BOUNDARY: the only place robfig/cron validates our rendered output
	if _, err := cron.ParseStandard(s.Spec()); err != nil {
		return fmt.Errorf("invalid time specification %q: %w", s.Spec(), err)
	}
	return nil
}

// Next returns the next count occurrences of the schedule strictly after
// from. Reboot schedules have no computable occurrences.
func (s Schedule) Next(from time.Time, count int) ([]time.Time, error) {
	if s.Reboot {
		return nil, errors.New("@reboot schedules have no computable occurrences")
	}
	// BOUNDARY: the only place robfig/cron's Schedule.Next is called
	sched, err := cron.ParseStandard(s.Spec())
	if err != nil {
		return nil, fmt.Errorf("invalid time specification %q: %w", s.Spec(), err)
	}
	times := make([]time.Time, 0, count)
	current := from
	for i := 0; i < count; i++ {
		current = sched.Next(current)
		times = append(times, current)
	}
	return times, nil
}
