// Copyright 2026 The Taskdeck Authors
// SPDX-License-Identifier: Apache-2.0

// Package config provides configuration loading for taskdeck.
//
// Configuration comes from a single YAML file specified by the
// TASKDECK_CONFIG environment variable or the --config flag. The file
// is optional: when neither is set, the built-in defaults apply (a
// local orchestrator on port 8000). Environment variables never
// override file values — the file is the single source of truth, which
// keeps configuration deterministic and auditable.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Duration wraps time.Duration so YAML values can use Go duration
// syntax ("5s", "1m30s").
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	parsed, err := time.ParseDuration(node.Value)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", node.Value, err)
	}
	*d = Duration(parsed)
	return nil
}

// Std returns the wrapped time.Duration.
func (d Duration) Std() time.Duration { return time.Duration(d) }

// Config holds the panel's runtime configuration.
type Config struct {
	// APIBaseURL is the orchestrator's REST base URL, including the
	// API prefix. Resolved once at startup and constant afterwards.
	APIBaseURL string `yaml:"api_base_url"`

	// PollInterval is the cadence of the background refresh cycle.
	PollInterval Duration `yaml:"poll_interval"`

	// RequestTimeout bounds every orchestrator request. A request that
	// exceeds it is treated as a transport failure, so a hung server
	// can never leave an in-flight guard stuck.
	RequestTimeout Duration `yaml:"request_timeout"`

	// TaskLimit is how many recent tasks each refresh requests.
	TaskLimit int `yaml:"task_limit"`

	// UserID is the originating-user identifier attached to submitted
	// commands.
	UserID int `yaml:"user_id"`
}

// Default returns the built-in configuration: a local orchestrator with
// the reference polling cadence.
func Default() *Config {
	return &Config{
		APIBaseURL:     "http://localhost:8000/api/v1",
		PollInterval:   Duration(5 * time.Second),
		RequestTimeout: Duration(10 * time.Second),
		TaskLimit:      10,
		UserID:         1,
	}
}

// Load resolves the configuration. An explicit path (from --config)
// wins; otherwise the TASKDECK_CONFIG environment variable is
// consulted; otherwise the defaults are returned unchanged.
func Load(path string) (*Config, error) {
	if path == "" {
		path = os.Getenv("TASKDECK_CONFIG")
	}

	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	var errs []error

	if c.APIBaseURL == "" {
		errs = append(errs, fmt.Errorf("api_base_url is required"))
	}
	if c.PollInterval <= 0 {
		errs = append(errs, fmt.Errorf("poll_interval must be positive, got %v", c.PollInterval.Std()))
	}
	if c.RequestTimeout <= 0 {
		errs = append(errs, fmt.Errorf("request_timeout must be positive, got %v", c.RequestTimeout.Std()))
	}
	if c.TaskLimit <= 0 {
		errs = append(errs, fmt.Errorf("task_limit must be positive, got %d", c.TaskLimit))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}
