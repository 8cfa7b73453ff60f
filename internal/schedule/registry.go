package schedule

import (
	"time"

	"github.com/samber/lo"

	"timeplan/pkg/logx"
)

// Registry owns an ordered set of non-overlapping tasks.
//
// A registry starts empty. Tasks are appended one at a time, each validated
// against the full current set before acceptance, so the no-overlap
// invariant holds between any two stored tasks at all times.
type Registry struct {
	log   logx.Logger
	tasks []Task
}

func New() *Registry {
	return &Registry{log: logx.Nop()}
}

// SetLogger installs a logger for mutation diagnostics. Optional; the
// registry stays silent without one.
func (r *Registry) SetLogger(log logx.Logger) {
	if log.IsZero() {
		log = logx.Nop()
	}
	r.log = log
}

// Add validates the candidate interval and appends it on success.
//
// Failure modes:
//   - ErrNonPositiveDuration when end does not strictly exceed start
//   - ConflictError (unwraps to ErrConflict) when [start, end) overlaps a
//     stored task
//
// A failed Add leaves the registry unchanged.
func (r *Registry) Add(name string, start, end time.Time) error {
	if !end.After(start) {
		return ErrNonPositiveDuration
	}
	for _, t := range r.tasks {
		if t.Overlaps(start, end) {
			return Conflict(t)
		}
	}
	added := Task{Name: name, Start: start, End: end}
	r.tasks = append(r.tasks, added)
	if r.log.Enabled(logx.LevelDebug) {
		r.log.Debug("task added",
			logx.String("name", name),
			logx.Time("start", start),
			logx.Time("end", end),
			logx.Duration("length", added.Duration()),
			logx.Int("total", len(r.tasks)))
	}
	return nil
}

// List returns a snapshot of the stored tasks in insertion order. The
// returned slice is the caller's to mutate.
func (r *Registry) List() []Task {
	out := make([]Task, len(r.tasks))
	copy(out, r.tasks)
	return out
}

// Remove drops every task whose name matches exactly (case-sensitive) and
// returns how many were dropped. Removing an unknown name is a no-op, not
// an error. Relative order of the remaining tasks is preserved.
func (r *Registry) Remove(name string) int {
	before := len(r.tasks)
	r.tasks = lo.Filter(r.tasks, func(t Task, _ int) bool {
		return t.Name != name
	})
	removed := before - len(r.tasks)
	if removed > 0 {
		r.log.Debug("task removed",
			logx.String("name", name),
			logx.Int("count", removed),
			logx.Int("total", len(r.tasks)))
	}
	return removed
}

// HasConflict reports whether [start, end) overlaps any stored task. Pure
// query; Add uses the same predicate.
func (r *Registry) HasConflict(start, end time.Time) bool {
	return lo.SomeBy(r.tasks, func(t Task) bool {
		return t.Overlaps(start, end)
	})
}

// Len reports the number of stored tasks.
func (r *Registry) Len() int { return len(r.tasks) }
