package crontab

import (
	"fmt"
	"strings"

	"github.com/linostar/supercron/internal/trigger"
)

// Store is an in-memory snapshot of the user's cron table. One
// load / mutate / write cycle forms a single transaction: cascades observe
// the same snapshot as the originating edit and land in the same write.
type Store struct {
	backend Backend
	lines   []*Line
}

// NewStore creates an empty store over the given backend.
func NewStore(backend Backend) *Store {
	return &Store{backend: backend}
}

// Load reads and parses the cron table.
func (s *Store) Load() error {
	content, err := s.backend.Read()
	if err != nil {
		return fmt.Errorf("failed to read crontab: %w", err)
	}
	s.lines = nil
	if content == "" {
		return nil
	}
	raw := strings.Split(content, "\n")
	if raw[len(raw)-1] == "" {
		raw = raw[:len(raw)-1]
	}
	for _, line := range raw {
		s.lines = append(s.lines, ParseLine(line))
	}
	return nil
}

// Lines returns every line in file order.
func (s *Store) Lines() []*Line {
	return s.lines
}

// Jobs returns every managed job in file order.
func (s *Store) Jobs() []*Job {
	var jobs []*Job
	for _, line := range s.lines {
		if line.Managed() {
			jobs = append(jobs, line.Job)
		}
	}
	return jobs
}

// FindByName returns every managed job with the given name.
func (s *Store) FindByName(name string) []*Job {
	var jobs []*Job
	for _, job := range s.Jobs() {
		if job.Name == name {
			jobs = append(jobs, job)
		}
	}
	return jobs
}

// FindByTrigger returns every managed job carrying exactly that trigger.
func (s *Store) FindByTrigger(action trigger.Action, source string, event trigger.Event) []*Job {
	var jobs []*Job
	for _, job := range s.Jobs() {
		t := job.Trigger
		if t != nil && t.Action == action && t.Source == source && t.Event == event {
			jobs = append(jobs, job)
		}
	}
	return jobs
}

// Insert appends a managed job to the table.
func (s *Store) Insert(job *Job) {
	s.lines = append(s.lines, &Line{Job: job})
}

// Remove drops the line holding the given job.
func (s *Store) Remove(job *Job) {
	for i, line := range s.lines {
		if line.Job == job {
			s.lines = append(s.lines[:i], s.lines[i+1:]...)
			return
		}
	}
}

// Render serializes the table. Unmanaged lines come back byte-identical.
func (s *Store) Render() string {
	if len(s.lines) == 0 {
		return ""
	}
	var b strings.Builder
	for _, line := range s.lines {
		b.WriteString(line.Render())
		b.WriteByte('\n')
	}
	return b.String()
}

// Write replaces the user's cron table with the store's contents.
func (s *Store) Write() error {
	if err := s.backend.Write(s.Render()); err != nil {
		return fmt.Errorf("failed to write crontab: %w", err)
	}
	return nil
}
