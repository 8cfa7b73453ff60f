package shell

import (
	"errors"
	"fmt"
	"strings"

	"github.com/samber/lo"

	"timeplan/internal/schedule"
	"timeplan/internal/timeparse"
)

// UsageError marks calls with an unknown command or the wrong arguments,
// as opposed to inputs the registry rejected.
type UsageError struct{ msg string }

func usagef(format string, args ...any) error {
	return UsageError{msg: fmt.Sprintf(format, args...)}
}

func (e UsageError) Error() string { return e.msg }

// IsUsage reports whether err is a UsageError.
func IsUsage(err error) bool {
	var u UsageError
	return errors.As(err, &u)
}

// Execute runs one registry command and returns its printable output.
//
// Commands:
//
//	add NAME START END
//	list
//	remove NAME
//	conflict START END
//
// The same dispatch backs both the one-shot CLI and the interactive shell.
func Execute(reg *schedule.Registry, args []string) (string, error) {
	if len(args) == 0 {
		return "", usagef("command required (add, list, remove, conflict)")
	}

	cmd, rest := args[0], args[1:]
	switch cmd {
	case "add":
		if len(rest) != 3 {
			return "", usagef("add requires NAME START END")
		}
		start, err := timeparse.Parse(rest[1])
		if err != nil {
			return "", fmt.Errorf("start: %w", err)
		}
		end, err := timeparse.Parse(rest[2])
		if err != nil {
			return "", fmt.Errorf("end: %w", err)
		}
		if err := reg.Add(rest[0], start, end); err != nil {
			return "", err
		}
		return "task added", nil

	case "list":
		lines := lo.Map(reg.List(), func(t schedule.Task, _ int) string {
			return fmt.Sprintf("%s: %s -> %s", t.Name, timeparse.Format(t.Start), timeparse.Format(t.End))
		})
		return strings.Join(lines, "\n"), nil

	case "remove":
		if len(rest) != 1 {
			return "", usagef("remove requires NAME")
		}
		n := reg.Remove(rest[0])
		return fmt.Sprintf("task removed (%d matched)", n), nil

	case "conflict":
		if len(rest) != 2 {
			return "", usagef("conflict requires START END")
		}
		start, err := timeparse.Parse(rest[0])
		if err != nil {
			return "", fmt.Errorf("start: %w", err)
		}
		end, err := timeparse.Parse(rest[1])
		if err != nil {
			return "", fmt.Errorf("end: %w", err)
		}
		if reg.HasConflict(start, end) {
			return "conflict", nil
		}
		return "no conflict", nil

	default:
		return "", usagef("unknown command %q (try: add, list, remove, conflict)", cmd)
	}
}

func helpText() string {
	return strings.Join([]string{
		"commands:",
		`  add NAME START END    schedule a task (quote names with spaces)`,
		`  list                  show tasks as NAME: START -> END`,
		`  remove NAME           drop every task with that exact name`,
		`  conflict START END    check an interval without scheduling it`,
		`  help                  this text`,
		`  exit                  leave the shell`,
		"",
		"times are local date-times like 2024-05-01T09:00",
	}, "\n")
}
