// Copyright 2026 The Taskdeck Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("TASKDECK_CONFIG", "")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.APIBaseURL != "http://localhost:8000/api/v1" {
		t.Errorf("APIBaseURL = %q", cfg.APIBaseURL)
	}
	if cfg.PollInterval.Std() != 5*time.Second {
		t.Errorf("PollInterval = %v, want 5s", cfg.PollInterval.Std())
	}
	if cfg.TaskLimit != 10 {
		t.Errorf("TaskLimit = %d, want 10", cfg.TaskLimit)
	}
	if cfg.UserID != 1 {
		t.Errorf("UserID = %d, want 1", cfg.UserID)
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "taskdeck.yaml")
	content := `
api_base_url: https://orchestrator.internal/api/v1
poll_interval: 2s
task_limit: 25
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.APIBaseURL != "https://orchestrator.internal/api/v1" {
		t.Errorf("APIBaseURL = %q", cfg.APIBaseURL)
	}
	if cfg.PollInterval.Std() != 2*time.Second {
		t.Errorf("PollInterval = %v, want 2s", cfg.PollInterval.Std())
	}
	if cfg.TaskLimit != 25 {
		t.Errorf("TaskLimit = %d, want 25", cfg.TaskLimit)
	}
	// Unset fields keep their defaults.
	if cfg.RequestTimeout.Std() != 10*time.Second {
		t.Errorf("RequestTimeout = %v, want default 10s", cfg.RequestTimeout.Std())
	}
}

func TestLoadEnvVariable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "taskdeck.yaml")
	if err := os.WriteFile(path, []byte("task_limit: 3\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("TASKDECK_CONFIG", path)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.TaskLimit != 3 {
		t.Errorf("TaskLimit = %d, want 3", cfg.TaskLimit)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatal("expected error for missing explicit config file")
	}
}

func TestLoadBadDuration(t *testing.T) {
	path := filepath.Join(t.TempDir(), "taskdeck.yaml")
	if err := os.WriteFile(path, []byte("poll_interval: soon\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected error for unparseable duration")
	}
}

func TestValidate(t *testing.T) {
	cfg := Default()
	cfg.APIBaseURL = ""
	cfg.PollInterval = 0

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !strings.Contains(err.Error(), "api_base_url") {
		t.Errorf("error should mention api_base_url: %v", err)
	}
	if !strings.Contains(err.Error(), "poll_interval") {
		t.Errorf("error should mention poll_interval: %v", err)
	}
}
