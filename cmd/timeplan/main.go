package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/pflag"

	"timeplan/internal/config"
	"timeplan/internal/schedule"
	"timeplan/internal/shell"
	"timeplan/pkg/logx"
)

const (
	exitOK    = 0
	exitError = 1 // validation or input errors
	exitUsage = 2 // unknown command / missing arguments
)

func main() {
	flags := pflag.NewFlagSet("timeplan", pflag.ContinueOnError)
	cfgPath := flags.StringP("config", "c", "./timeplan.yaml", "path to config file (yaml or json)")
	flags.Usage = func() {
		fmt.Fprintln(os.Stderr, "usage: timeplan [flags] COMMAND [args]")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "commands:")
		fmt.Fprintln(os.Stderr, "  add NAME START END    schedule a task")
		fmt.Fprintln(os.Stderr, "  list                  show scheduled tasks")
		fmt.Fprintln(os.Stderr, "  remove NAME           remove tasks by name")
		fmt.Fprintln(os.Stderr, "  conflict START END    check an interval for conflicts")
		fmt.Fprintln(os.Stderr, "  shell                 interactive session")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "flags:")
		fmt.Fprint(os.Stderr, flags.FlagUsages())
	}

	if err := flags.Parse(os.Args[1:]); err != nil {
		if err == pflag.ErrHelp {
			os.Exit(exitOK)
		}
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(exitUsage)
	}

	os.Exit(run(*cfgPath, flags.Args(), flags.Usage))
}

func run(cfgPath string, args []string, usage func()) int {
	mgr := config.NewManager(cfgPath)
	cfg, err := mgr.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "error: config:", err)
		return exitError
	}

	svc, log := logx.New(cfg.Logging)
	defer svc.Close()
	mgr.SetLogger(log)

	if len(args) == 0 {
		usage()
		return exitUsage
	}

	if args[0] == "shell" {
		return runShell(mgr, cfg, svc, log)
	}

	// One-shot commands get a fresh registry; the schedule lives for the
	// duration of the process only.
	out, err := shell.Execute(schedule.New(), args)
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		if shell.IsUsage(err) {
			usage()
			return exitUsage
		}
		return exitError
	}
	if out != "" {
		fmt.Println(out)
	}
	return exitOK
}

func runShell(mgr *config.Manager, cfg *config.Config, svc *logx.Service, log logx.Logger) int {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// Watch the config so a level change in timeplan.yaml re-levels the
	// logger mid-session.
	go func() {
		if err := mgr.Watch(ctx); err != nil {
			log.Warn("config watch unavailable", logx.Err(err))
		}
	}()
	updates := mgr.Subscribe(1)
	defer mgr.Unsubscribe(updates)
	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case next, ok := <-updates:
				if !ok {
					return
				}
				svc.Apply(next.Logging)
				log.Debug("config reloaded")
			}
		}
	}()

	slog := log.With(logx.String("mode", "shell"))
	slog.Debug("session starting", logx.Bool("greeting", cfg.GreetingEnabled()))

	reg := schedule.New()
	reg.SetLogger(slog)

	sess := &shell.Session{
		Registry: reg,
		Prompt:   cfg.Shell.Prompt,
		Greeting: cfg.GreetingEnabled(),
		Log:      slog,
		In:       os.Stdin,
		Out:      os.Stdout,
	}
	if err := sess.Run(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		return exitError
	}
	return exitOK
}
