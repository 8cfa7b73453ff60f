package schedule

import (
	"errors"
	"fmt"
)

var (
	ErrNonPositiveDuration = errors.New("end time must be after start time")
	ErrConflict            = errors.New("task conflicts with existing schedule")
)

// Conflict wraps ErrConflict with the stored task the candidate collided with.
//
// Callers that only care about the kind can keep using
// errors.Is(err, ErrConflict); callers rendering a message can errors.As
// into ConflictError to name the offender.
func Conflict(existing Task) error {
	return ConflictError{Existing: existing}
}

type ConflictError struct {
	Existing Task
}

func (e ConflictError) Error() string {
	return fmt.Sprintf("%v: overlaps %q", ErrConflict, e.Existing.Name)
}

func (e ConflictError) Unwrap() error { return ErrConflict }
