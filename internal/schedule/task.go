package schedule

import "time"

// Task is a named, time-bounded unit of work.
//
// Names are the removal key but are not required to be unique; the registry
// accepts any string, including empty.
type Task struct {
	Name  string
	Start time.Time
	End   time.Time
}

// Overlaps reports whether the half-open interval [start, end) intersects
// the task's own [Start, End). Touching intervals (one's end equals the
// other's start) do not overlap, so back-to-back tasks are allowed.
func (t Task) Overlaps(start, end time.Time) bool {
	return start.Before(t.End) && t.Start.Before(end)
}

// Duration returns End - Start. Accepted tasks always have a positive duration.
func (t Task) Duration() time.Duration {
	return t.End.Sub(t.Start)
}
