package crontab

import (
	"fmt"
	"strings"

	"github.com/linostar/supercron/internal/comment"
	"github.com/linostar/supercron/internal/schedule"
)

// ParseLine classifies a single line from the cron table. Managed jobs are
// recognized by the comment marker; everything else (blank lines, plain
// comments, foreign cron entries) passes through untouched.
func ParseLine(raw string) *Line {
	if job := parseJob(raw); job != nil {
		return &Line{Raw: raw, Job: job}
	}
	return &Line{Raw: raw}
}

// parseJob attempts to decode a managed job from a line. A disabled job is
// a "# "-prefixed line whose remainder is a valid managed cron line.
// Returns nil if the line is not a managed job.
func parseJob(raw string) *Job {
	enabled := true
	body := strings.TrimSpace(raw)
	if strings.HasPrefix(body, "#") {
		enabled = false
		body = strings.TrimSpace(strings.TrimPrefix(body, "#"))
	}

	// The identity comment is appended last, so the last "#" starts it
	// even when the command itself contains one.
	hash := strings.LastIndex(body, "#")
	if hash <= 0 {
		return nil
	}
	name, trig, ok := comment.Decode(strings.TrimSpace(body[hash+1:]))
	if !ok {
		return nil
	}

	spec, command, err := splitSpec(strings.TrimSpace(body[:hash]))
	if err != nil || command == "" {
		return nil
	}
	sched, err := schedule.ParseSpec(spec)
	if err != nil {
		return nil
	}

	return &Job{
		Name:     name,
		Command:  command,
		Schedule: sched,
		Enabled:  enabled,
		Trigger:  trig,
	}
}

// splitSpec splits a cron line body into its time specification and the
// command, preserving the command's inner spacing.
func splitSpec(body string) (spec, command string, err error) {
	if strings.HasPrefix(body, "@") {
		alias := body
		rest := ""
		if i := strings.IndexAny(body, " \t"); i != -1 {
			alias, rest = body[:i], strings.TrimSpace(body[i:])
		}
		return alias, rest, nil
	}

	// Find where the sixth whitespace-separated field starts; the first
	// five are the time specification.
	count := 0
	for i := 0; i < len(body); i++ {
		if isWhitespace(body[i]) {
			continue
		}
		if i == 0 || isWhitespace(body[i-1]) {
			count++
			if count == 6 {
				fields := strings.Fields(body[:i])
				return strings.Join(fields, " "), strings.TrimRight(body[i:], " \t"), nil
			}
		}
	}
	return "", "", fmt.Errorf("expected a time specification followed by a command")
}

// isWhitespace checks if a byte is whitespace (space or tab)
func isWhitespace(b byte) bool {
	return b == ' ' || b == '\t'
}
