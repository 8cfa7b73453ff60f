// Package shell runs an interactive planning session. The registry is
// purely in-memory, so the shell is the mode where a schedule actually
// accumulates: tasks live as long as the session.
package shell

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"timeplan/internal/schedule"
	"timeplan/pkg/logx"
)

// Session drives one registry from a line-oriented input stream. In and
// Out default to the process's stdio but are plain interfaces so tests can
// substitute buffers.
type Session struct {
	Registry *schedule.Registry
	Prompt   string
	Greeting bool
	Log      logx.Logger

	In  io.Reader
	Out io.Writer
}

// Run reads commands until EOF, an exit command, or ctx cancellation.
func (s *Session) Run(ctx context.Context) error {
	if s.Registry == nil {
		s.Registry = schedule.New()
	}
	log := s.Log
	if log.IsZero() {
		log = logx.Nop()
	}

	if s.Greeting {
		fmt.Fprintln(s.Out, "timeplan shell. Type help for commands, exit to quit.")
	}

	scanner := bufio.NewScanner(s.In)
	for {
		if err := ctx.Err(); err != nil {
			return nil
		}
		fmt.Fprint(s.Out, s.Prompt)
		if !scanner.Scan() {
			fmt.Fprintln(s.Out)
			return scanner.Err()
		}

		args := tokenize(scanner.Text())
		if len(args) == 0 {
			continue
		}

		switch args[0] {
		case "help":
			fmt.Fprintln(s.Out, helpText())
			continue
		case "exit", "quit":
			return nil
		}

		out, err := Execute(s.Registry, args)
		if err != nil {
			log.Debug("command failed", logx.String("cmd", args[0]), logx.Err(err))
			fmt.Fprintf(s.Out, "error: %v\n", err)
			continue
		}
		if out != "" {
			fmt.Fprintln(s.Out, out)
		}
	}
}
