package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestParseYAML(t *testing.T) {
	t.Parallel()
	path := writeFile(t, "config.yaml", `
logging:
  level: debug
  console: true
shell:
  prompt: ">> "
  greeting: false
`)

	cfg, err := NewManager(path).Parse()
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if cfg.Logging.Level != "debug" {
		t.Fatalf("Level = %s, want debug", cfg.Logging.Level)
	}
	if cfg.Shell.Prompt != ">> " {
		t.Fatalf("Prompt = %q, want %q", cfg.Shell.Prompt, ">> ")
	}
	if cfg.GreetingEnabled() {
		t.Fatal("greeting should be disabled")
	}
}

func TestParseJSON(t *testing.T) {
	t.Parallel()
	path := writeFile(t, "config.json", `{"logging":{"level":"info","console":true}}`)

	cfg, err := NewManager(path).Parse()
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if cfg.Logging.Level != "info" {
		t.Fatalf("Level = %s, want info", cfg.Logging.Level)
	}
	// Normalize fills shell defaults for files that omit the section.
	if cfg.Shell.Prompt == "" {
		t.Fatal("expected default prompt")
	}
}

func TestParseRejectsUnknownKeys(t *testing.T) {
	t.Parallel()
	path := writeFile(t, "config.yaml", `
logging:
  level: info
  verbosity: high
`)

	if _, err := NewManager(path).Parse(); err == nil {
		t.Fatal("expected error for unknown key")
	}
}

func TestParseRejectsTrailingData(t *testing.T) {
	t.Parallel()
	path := writeFile(t, "config.json", `{"logging":{"console":true}}{"extra":1}`)

	if _, err := NewManager(path).Parse(); err == nil {
		t.Fatal("expected error for trailing data")
	}
}

func TestParseMissingFileYieldsDefaults(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "nope.yaml")

	cfg, err := NewManager(path).Parse()
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if cfg.Logging.Level != "warn" {
		t.Fatalf("Level = %s, want warn", cfg.Logging.Level)
	}
	if !cfg.GreetingEnabled() {
		t.Fatal("greeting should default to enabled")
	}
}

func TestLoadCommits(t *testing.T) {
	t.Parallel()
	path := writeFile(t, "config.yaml", "logging:\n  level: debug\n  console: true\n")

	m := NewManager(path)
	cfg, err := m.Load()
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if m.Get() != cfg {
		t.Fatal("Load must commit the parsed config")
	}
}

func TestWatchPublishesOnChange(t *testing.T) {
	t.Parallel()
	const (
		initial = "logging:\n  level: warn\n  console: true\n"
		changed = "logging:\n  level: debug\n  console: true\n"
	)
	path := writeFile(t, "config.yaml", initial)

	m := NewManager(path)
	if _, err := m.Load(); err != nil {
		t.Fatalf("Load error: %v", err)
	}

	ch := m.Subscribe(1)
	defer m.Unsubscribe(ch)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan error, 1)
	go func() { done <- m.Watch(ctx) }()

	// Let the watcher install before touching the file.
	time.Sleep(2 * reloadDebounce)

	if err := os.WriteFile(path, []byte(changed), 0o644); err != nil {
		t.Fatalf("rewrite config: %v", err)
	}

	select {
	case cfg := <-ch:
		if cfg.Logging.Level != "debug" {
			t.Fatalf("published Level = %s, want debug", cfg.Logging.Level)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("no config published after file change")
	}

	// Rewriting identical content must not republish: the content hash is
	// unchanged even though the file was written again.
	if err := os.WriteFile(path, []byte(changed), 0o644); err != nil {
		t.Fatalf("rewrite config: %v", err)
	}
	select {
	case cfg := <-ch:
		t.Fatalf("unchanged content republished: %+v", cfg)
	case <-time.After(4 * reloadDebounce):
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Watch error: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Watch did not stop on cancellation")
	}
}

func TestSubscribePublish(t *testing.T) {
	t.Parallel()
	m := NewManager("")
	ch := m.Subscribe(1)
	defer m.Unsubscribe(ch)

	cfg := Default()
	m.Commit(cfg)
	m.publish(cfg)

	select {
	case got := <-ch:
		if got != cfg {
			t.Fatal("subscriber got a different config")
		}
	default:
		t.Fatal("expected a published config")
	}
}
