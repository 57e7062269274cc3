// Package comment encodes job identity into crontab line comments. The
// comment is the sole persistence medium for a job's name and trigger.
package comment

import (
	"strings"

	"github.com/linostar/supercron/internal/trigger"
)

// Marker prefixes the comment of every managed job.
const Marker = "SuperCron__"

// Separator splits the job name from its trigger inside the comment. Job
// names therefore must not contain it.
const Separator = "%"

// Encode builds the comment carrying a job's name and optional trigger.
func Encode(name string, t *trigger.Trigger) string {
	if t == nil {
		return Marker + name
	}
	return Marker + name + Separator + t.String()
}

// Decode extracts the name and optional trigger from a crontab comment.
// ok is false when the comment does not denote a managed job. A malformed
// trigger tail decodes as "no trigger" so that newer encodings degrade
// gracefully instead of failing the whole line.
func Decode(c string) (name string, t *trigger.Trigger, ok bool) {
	if !strings.HasPrefix(c, Marker) {
		return "", nil, false
	}
	rest := c[len(Marker):]

	name = rest
	var tail string
	if i := strings.Index(rest, Separator); i != -1 {
		name, tail = rest[:i], rest[i+1:]
	}
	// An empty name is never valid, so a separator at position 0 cannot
	// occur on a well-formed line.
	if name == "" {
		return "", nil, false
	}
	return name, decodeTrigger(tail), true
}

func decodeTrigger(tail string) *trigger.Trigger {
	if tail == "" {
		return nil
	}
	parts := strings.Split(tail, ":")
	if len(parts) != 3 || parts[1] == "" {
		return nil
	}
	action, ok := trigger.ParseAction(parts[0])
	if !ok {
		return nil
	}
	event, ok := trigger.ParseEvent(parts[2])
	if !ok {
		return nil
	}
	return &trigger.Trigger{Action: action, Source: parts[1], Event: event}
}
