// Copyright 2026 The Taskdeck Authors
// SPDX-License-Identifier: Apache-2.0

package orchestrator

import "encoding/json"

// Status is a task's lifecycle state. The lifecycle is linear with one
// branch point: pending → processing → completed or failed, plus
// pending → cancelled while the task has not started. All of completed,
// failed, and cancelled are terminal.
type Status string

const (
	StatusPending    Status = "pending"
	StatusProcessing Status = "processing"
	StatusCompleted  Status = "completed"
	StatusFailed     Status = "failed"
	StatusCancelled  Status = "cancelled"
)

// Terminal reports whether no further transitions leave this status.
func (s Status) Terminal() bool {
	return s == StatusCompleted || s == StatusFailed || s == StatusCancelled
}

// Cancellable reports whether the orchestrator accepts a cancellation
// for a task in this status. Only pending tasks can be cancelled; the
// orchestrator rejects cancellation once processing has begun, so the
// panel never offers the action for any other status.
func (s Status) Cancellable() bool {
	return s == StatusPending
}

// Task is one orchestrator job as known to the client. Tasks exist
// locally only as projections of server responses; the server is the
// sole source of truth.
//
// The timestamp fields are ISO-8601 strings exactly as the orchestrator
// sends them; absent timestamps are empty. In a terminal state at most
// one of Result and ErrorMessage is populated (completed may carry a
// result, failed may carry an error message); non-terminal states carry
// neither.
type Task struct {
	ID           int             `json:"task_id"`
	Title        string          `json:"title"`
	Status       Status          `json:"status"`
	CreatedAt    string          `json:"created_at,omitempty"`
	StartedAt    string          `json:"started_at,omitempty"`
	CompletedAt  string          `json:"completed_at,omitempty"`
	Result       json.RawMessage `json:"result,omitempty"`
	ErrorMessage string          `json:"error_message,omitempty"`
}

// QueueStatus is a snapshot of orchestrator-wide queue metrics. The
// four per-status totals are independent counters; they are not
// required to sum to any other displayed figure.
type QueueStatus struct {
	QueueSize          int `json:"queue_size"`
	ActiveTasks        int `json:"active_tasks"`
	MaxConcurrentTasks int `json:"max_concurrent_tasks"`
	TotalPending       int `json:"total_pending"`
	TotalProcessing    int `json:"total_processing"`
	TotalCompleted     int `json:"total_completed"`
	TotalFailed        int `json:"total_failed"`
}

// ServiceHealth maps service keys to health flags. The key set is
// server-determined and may change between polls; the client never
// assumes a fixed set.
type ServiceHealth struct {
	Services map[string]bool `json:"services"`
}

// CommandRequest is the body for POST /command.
type CommandRequest struct {
	Command        string         `json:"command"`
	UserID         int            `json:"user_id,omitempty"`
	ConversationID int            `json:"conversation_id,omitempty"`
	Context        map[string]any `json:"context"`
}

// CommandResponse is the orchestrator's acknowledgement of a submitted
// command.
type CommandResponse struct {
	TaskID              int    `json:"task_id"`
	Status              Status `json:"status"`
	Message             string `json:"message"`
	EstimatedCompletion string `json:"estimated_completion,omitempty"`
}
