// Package schedule holds the task registry: a set of named, time-bounded
// tasks with a no-overlap guarantee.
//
// The registry is responsible only for:
//   - validating candidate intervals (duration, conflicts)
//   - storing accepted tasks in insertion order
//   - removing tasks by name
//
// It performs no I/O and holds no locks; callers in concurrent settings
// must serialize access themselves.
package schedule
