// Copyright 2026 The Taskdeck Authors
// SPDX-License-Identifier: Apache-2.0

// Package metrics derives display figures from queue snapshots.
package metrics

import (
	"math"

	"github.com/taskdeck/taskdeck/lib/orchestrator"
)

// Summary holds the figures derived from one queue snapshot. Derived
// values are never stored alongside the snapshot; they are recomputed
// from whichever snapshot is current so they can never drift from it.
type Summary struct {
	// TotalTasks is the sum of the four per-status totals.
	TotalTasks int

	// CompletionRate is the share of total tasks that have finished,
	// successfully or not, as a percentage rounded to one decimal
	// place. Zero when no tasks exist.
	CompletionRate float64
}

// Summarize computes the Summary for a queue snapshot.
func Summarize(status orchestrator.QueueStatus) Summary {
	total := status.TotalPending + status.TotalProcessing + status.TotalCompleted + status.TotalFailed
	if total == 0 {
		return Summary{}
	}
	finished := status.TotalCompleted + status.TotalFailed
	rate := float64(finished) / float64(total) * 100
	return Summary{
		TotalTasks:     total,
		CompletionRate: math.Round(rate*10) / 10,
	}
}
