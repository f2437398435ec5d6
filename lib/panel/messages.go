// Copyright 2026 The Taskdeck Authors
// SPDX-License-Identifier: Apache-2.0

package panel

import (
	"log/slog"

	"github.com/taskdeck/taskdeck/lib/orchestrator"
)

// tickMsg drives one step of the polling cycle. Delivered whenever the
// poll ticker fires.
type tickMsg struct{}

// probeResultMsg reports the outcome of a connectivity probe against
// the orchestrator's health endpoint.
type probeResultMsg struct {
	err error
}

// tasksResultMsg delivers a task list response. sequence identifies the
// request that produced it; stale sequences are discarded.
type tasksResultMsg struct {
	sequence uint64
	tasks    []orchestrator.Task
	err      error
}

// queueResultMsg delivers a queue snapshot response.
type queueResultMsg struct {
	sequence uint64
	status   orchestrator.QueueStatus
	err      error
}

// servicesResultMsg delivers a service health response.
type servicesResultMsg struct {
	sequence uint64
	services map[string]bool
	err      error
}

// submitResultMsg reports the outcome of a command submission.
type submitResultMsg struct {
	response *orchestrator.CommandResponse
	err      error
}

// cancelResultMsg reports the outcome of a task cancellation.
type cancelResultMsg struct {
	taskID int
	err    error
}

// toastExpireMsg clears the toast notice, but only when its sequence
// still matches the currently displayed toast. A toast shown after this
// expiry was scheduled keeps its own full display window.
type toastExpireMsg struct {
	sequence uint64
}

// logRecordMsg delivers a slog record to the panel for display in the
// interaction log.
type logRecordMsg struct {
	summary string
	level   slog.Level
}
