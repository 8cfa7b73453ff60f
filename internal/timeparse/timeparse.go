// Package timeparse converts between the CLI's ISO-8601-style local
// date-time strings and time.Time.
//
// No timezone handling: all values are interpreted in the process-local
// zone, matching how the commands are meant to be used (one person's own
// calendar on one machine).
package timeparse

import (
	"fmt"
	"strings"
	"time"
)

// Accepted input forms, tried in order. A space may stand in for the 'T'
// separator, and a bare date means midnight.
var layouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
}

// Parse parses a local date-time like "2024-05-01T09:00".
func Parse(raw string) (time.Time, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return time.Time{}, fmt.Errorf("date-time required")
	}

	for _, layout := range layouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf(
		"invalid date-time %q (use '2006-01-02T15:04', optionally with seconds, a space instead of 'T', or a bare date)",
		raw,
	)
}

// Format renders a timestamp the way list output shows it: minute
// resolution, with seconds appended only when they carry information.
func Format(t time.Time) string {
	if t.Second() != 0 || t.Nanosecond() != 0 {
		return t.Format("2006-01-02T15:04:05")
	}
	return t.Format("2006-01-02T15:04")
}
