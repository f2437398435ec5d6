// Copyright 2026 The Taskdeck Authors
// SPDX-License-Identifier: Apache-2.0

package netutil

import (
	"strings"
	"testing"
)

func TestDecodeResponse(t *testing.T) {
	var result struct {
		TaskID int `json:"task_id"`
	}
	if err := DecodeResponse(strings.NewReader(`{"task_id": 42}`), &result); err != nil {
		t.Fatalf("DecodeResponse: %v", err)
	}
	if result.TaskID != 42 {
		t.Errorf("TaskID = %d, want 42", result.TaskID)
	}
}

func TestDecodeResponseMalformed(t *testing.T) {
	var result map[string]any
	if err := DecodeResponse(strings.NewReader(`{"task_id":`), &result); err == nil {
		t.Fatal("expected error for truncated JSON")
	}
}

func TestDetailMessage(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"detail envelope", `{"detail": "queue is full"}`, "queue is full"},
		{"empty detail falls back to raw", `{"detail": ""}`, `{"detail": ""}`},
		{"plain text", "upstream timed out\n", "upstream timed out"},
		{"empty body", "", ""},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := DetailMessage(strings.NewReader(test.body))
			if got != test.want {
				t.Errorf("DetailMessage(%q) = %q, want %q", test.body, got, test.want)
			}
		})
	}
}
