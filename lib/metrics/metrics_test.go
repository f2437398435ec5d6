// Copyright 2026 The Taskdeck Authors
// SPDX-License-Identifier: Apache-2.0

package metrics

import (
	"testing"

	"github.com/taskdeck/taskdeck/lib/orchestrator"
)

func TestSummarize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		status    orchestrator.QueueStatus
		wantTotal int
		wantRate  float64
	}{
		{
			name:      "empty queue",
			status:    orchestrator.QueueStatus{},
			wantTotal: 0,
			wantRate:  0,
		},
		{
			name: "mixed statuses",
			status: orchestrator.QueueStatus{
				TotalPending:    2,
				TotalProcessing: 1,
				TotalCompleted:  5,
				TotalFailed:     2,
			},
			wantTotal: 10,
			wantRate:  70.0,
		},
		{
			name: "failed tasks count as finished",
			status: orchestrator.QueueStatus{
				TotalFailed: 4,
			},
			wantTotal: 4,
			wantRate:  100.0,
		},
		{
			name: "nothing finished",
			status: orchestrator.QueueStatus{
				TotalPending:    3,
				TotalProcessing: 2,
			},
			wantTotal: 5,
			wantRate:  0,
		},
		{
			name: "rounds to one decimal",
			status: orchestrator.QueueStatus{
				TotalPending:   2,
				TotalCompleted: 1,
			},
			wantTotal: 3,
			wantRate:  33.3,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			summary := Summarize(test.status)
			if summary.TotalTasks != test.wantTotal {
				t.Errorf("TotalTasks = %d, want %d", summary.TotalTasks, test.wantTotal)
			}
			if summary.CompletionRate != test.wantRate {
				t.Errorf("CompletionRate = %v, want %v", summary.CompletionRate, test.wantRate)
			}
		})
	}
}
