// Package ops orchestrates parsing, the crontab transaction and trigger
// cascades for every user-facing operation.
package ops

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/linostar/supercron/internal/cascade"
	"github.com/linostar/supercron/internal/crontab"
	"github.com/linostar/supercron/internal/repetition"
	"github.com/linostar/supercron/internal/trigger"
)

// Reserved names carry special meaning on the command line and must never
// be stored in a job.
const (
	NameAll       = "@all"
	NameSupercron = "@supercron"

	// nameToBeDeleted marks jobs for removal during clear.
	nameToBeDeleted = "@tobedeleted"
)

// ErrInvalidName is returned for reserved job names or names containing
// the trigger separator.
var ErrInvalidName = errors.New("invalid job name")

// ValidateName rejects names that cannot be stored in a job.
func ValidateName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: name must not be empty", ErrInvalidName)
	}
	switch name {
	case NameAll, NameSupercron, nameToBeDeleted:
		return fmt.Errorf("%w: %q is reserved", ErrInvalidName, name)
	}
	if strings.Contains(name, "%") {
		return fmt.Errorf("%w: %q must not contain '%%'", ErrInvalidName, name)
	}
	return nil
}

// Facade exposes the job operations. Each operation is one transaction:
// load, mutate in memory, resolve cascades, write. Verbosity is carried
// explicitly through the logger; there is no process-wide state.
type Facade struct {
	backend crontab.Backend
	parser  *repetition.Parser
	log     *slog.Logger
	now     func() time.Time
}

// New creates a facade over the given crontab backend.
func New(backend crontab.Backend, parser *repetition.Parser, log *slog.Logger) *Facade {
	return &Facade{backend: backend, parser: parser, log: log, now: time.Now}
}

// NewAt is New with an injected clock, used by tests to pin next-run rows.
func NewAt(backend crontab.Backend, parser *repetition.Parser, log *slog.Logger, now func() time.Time) *Facade {
	f := New(backend, parser, log)
	f.now = now
	return f
}

func (f *Facade) load() (*crontab.Store, error) {
	store := crontab.NewStore(f.backend)
	if err := store.Load(); err != nil {
		return nil, err
	}
	return store, nil
}

// Add validates the name, parses the sentence and inserts one enabled job
// with no trigger, firing Added for the name.
func (f *Facade) Add(req AddRequest) error {
	if err := ValidateName(req.Name); err != nil {
		return err
	}
	if req.Command == "" {
		return errors.New("command must not be empty")
	}
	sched, err := f.parser.Parse(req.Sentence)
	if err != nil {
		return err
	}
	if err := sched.Validate(); err != nil {
		return err
	}

	store, err := f.load()
	if err != nil {
		return err
	}
	store.Insert(&crontab.Job{
		Name:     req.Name,
		Command:  req.Command,
		Schedule: sched,
		Enabled:  true,
	})
	cascade.New(store, f.log).Fire(req.Name, trigger.EventAdded)
	f.log.Debug("job added", "name", req.Name, "spec", sched.Spec())
	return store.Write()
}

// Rename renames every managed job called Old, firing Deleted for the old
// name and Added for the new one once per operation.
func (f *Facade) Rename(req RenameRequest) (int, error) {
	if err := ValidateName(req.New); err != nil {
		return 0, err
	}
	store, err := f.load()
	if err != nil {
		return 0, err
	}
	jobs := store.FindByName(req.Old)
	for _, job := range jobs {
		job.Name = req.New
	}
	engine := cascade.New(store, f.log)
	engine.Fire(req.Old, trigger.EventDeleted)
	engine.Fire(req.New, trigger.EventAdded)
	return len(jobs), store.Write()
}

// Delete removes every managed job with that exact name, firing Deleted
// once.
func (f *Facade) Delete(req DeleteRequest) (int, error) {
	store, err := f.load()
	if err != nil {
		return 0, err
	}
	jobs := store.FindByName(req.Name)
	for _, job := range jobs {
		store.Remove(job)
	}
	cascade.New(store, f.log).Fire(req.Name, trigger.EventDeleted)
	return len(jobs), store.Write()
}

// Enable enables every matched job. Enabled fires only when at least one
// job changed state; Toggled fires for the invocation regardless.
func (f *Facade) Enable(req EnableRequest) (int, error) {
	return f.setEnabled(req.Name, true)
}

// Disable disables every matched job. Disabled fires only when at least
// one job changed state; Toggled fires for the invocation regardless.
func (f *Facade) Disable(req DisableRequest) (int, error) {
	return f.setEnabled(req.Name, false)
}

func (f *Facade) setEnabled(name string, enable bool) (int, error) {
	store, err := f.load()
	if err != nil {
		return 0, err
	}
	jobs := store.FindByName(name)
	changed := false
	for _, job := range jobs {
		if job.Enabled != enable {
			job.Enabled = enable
			changed = true
		}
	}
	engine := cascade.New(store, f.log)
	if changed {
		if enable {
			engine.Fire(name, trigger.EventEnabled, trigger.EventToggled)
		} else {
			engine.Fire(name, trigger.EventDisabled, trigger.EventToggled)
		}
	} else {
		engine.Fire(name, trigger.EventToggled)
	}
	return len(jobs), store.Write()
}

// Trigger sets the trigger on every matched job, or clears it when the
// sentence is "none".
func (f *Facade) Trigger(req TriggerRequest) (int, error) {
	var parsed *trigger.Trigger
	if !strings.EqualFold(strings.TrimSpace(req.Sentence), "none") {
		var err error
		parsed, err = trigger.ParseSentence(req.Sentence)
		if err != nil {
			return 0, err
		}
	}

	store, err := f.load()
	if err != nil {
		return 0, err
	}
	jobs := store.FindByName(req.Name)
	for _, job := range jobs {
		if parsed == nil {
			job.Trigger = nil
		} else {
			t := *parsed
			job.Trigger = &t
		}
	}
	return len(jobs), store.Write()
}

// Clear removes every managed job, leaving unmanaged lines untouched. The
// jobs are first marked with the reserved sentinel name, then every marked
// line is dropped.
func (f *Facade) Clear(ClearRequest) (int, error) {
	store, err := f.load()
	if err != nil {
		return 0, err
	}
	for _, job := range store.Jobs() {
		job.Name = nameToBeDeleted
		job.Trigger = nil
	}
	count := 0
	for _, job := range store.Jobs() {
		if job.Name == nameToBeDeleted {
			store.Remove(job)
			count++
		}
	}
	return count, store.Write()
}
