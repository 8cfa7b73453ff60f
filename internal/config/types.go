package config

import (
	"strings"

	"timeplan/pkg/logx"
)

// Config is the on-disk configuration. YAML and JSON are both accepted;
// unknown keys are rejected so typos surface instead of silently doing
// nothing.
type Config struct {
	Logging logx.Config `json:"logging"`
	Shell   ShellConfig `json:"shell,omitempty"`
}

// ShellConfig controls the interactive session mode.
type ShellConfig struct {
	Prompt string `json:"prompt,omitempty"`

	// Greeting is a pointer so an explicit false can be told apart from
	// "omitted" (which defaults to true).
	Greeting *bool `json:"greeting,omitempty"`
}

// Default returns the configuration used when no config file exists.
func Default() *Config {
	cfg := &Config{
		Logging: logx.Config{Level: "warn", Console: true},
	}
	cfg.Normalize()
	return cfg
}

// Normalize fills zero-value fields with their defaults.
func (c *Config) Normalize() {
	if strings.TrimSpace(c.Logging.Level) == "" {
		c.Logging.Level = "warn"
	}
	if strings.TrimSpace(c.Shell.Prompt) == "" {
		c.Shell.Prompt = "plan> "
	}
	if c.Shell.Greeting == nil {
		on := true
		c.Shell.Greeting = &on
	}
}

// GreetingEnabled reports whether the shell prints its banner.
func (c *Config) GreetingEnabled() bool {
	return c.Shell.Greeting == nil || *c.Shell.Greeting
}
