// Package cascade applies trigger reactions to job lifecycle events.
package cascade

import (
	"log/slog"

	"github.com/linostar/supercron/internal/crontab"
	"github.com/linostar/supercron/internal/trigger"
)

// Engine resolves trigger cascades within one crontab transaction. Cascade
// depth is exactly one: jobs flipped by a cascade do not emit events of
// their own, so trigger graphs may contain cycles without consequence.
type Engine struct {
	store *crontab.Store
	log   *slog.Logger
}

// New creates an engine over the transaction's store.
func New(store *crontab.Store, log *slog.Logger) *Engine {
	return &Engine{store: store, log: log}
}

// Fire reports the lifecycle events observed for the named job and flips
// the enabled state of every job whose trigger listens for one of them.
func (e *Engine) Fire(name string, events ...trigger.Event) {
	for _, event := range events {
		for _, action := range trigger.Actions() {
			for _, job := range e.store.FindByTrigger(action, name, event) {
				switch action {
				case trigger.ActionOn:
					job.Enabled = true
				case trigger.ActionOff:
					job.Enabled = false
				case trigger.ActionToggle:
					job.Enabled = !job.Enabled
				}
				e.log.Debug("cascade applied",
					"job", job.Name,
					"action", action,
					"source", name,
					"event", event,
					"enabled", job.Enabled)
			}
		}
	}
}
