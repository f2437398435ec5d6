// Copyright 2026 The Taskdeck Authors
// SPDX-License-Identifier: Apache-2.0

package panel

import (
	"encoding/json"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"github.com/taskdeck/taskdeck/lib/orchestrator"
)

// sizedModel returns a connected model with terminal dimensions set so
// View renders the full layout.
func sizedModel(t *testing.T) Model {
	t.Helper()
	model, _ := connectedModel(t)
	updated, _ := model.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return updated.(Model)
}

func TestViewBeforeWindowSize(t *testing.T) {
	t.Parallel()

	model, _ := connectedModel(t)
	if model.View() != "Initializing..." {
		t.Errorf("View before WindowSizeMsg = %q", model.View())
	}
}

func TestViewShowsLoadingPlaceholders(t *testing.T) {
	t.Parallel()

	view := ansi.Strip(sizedModel(t).View())
	if !strings.Contains(view, "Loading tasks...") {
		t.Error("unloaded task pane should show a loading placeholder")
	}
	if !strings.Contains(view, "connected") {
		t.Error("header should show the connection badge")
	}
}

func TestViewRendersTasks(t *testing.T) {
	t.Parallel()

	model := sizedModel(t)
	updated, _ := model.Update(tasksResultMsg{
		sequence: model.tasks.sequence,
		tasks: []orchestrator.Task{
			{ID: 7, Title: "Generate invoice", Status: orchestrator.StatusCompleted},
			{ID: 8, Title: "Send reminder", Status: orchestrator.StatusPending},
		},
	})
	view := ansi.Strip(updated.(Model).View())

	if !strings.Contains(view, "Generate invoice") {
		t.Error("task titles should render")
	}
	if !strings.Contains(view, "pending") {
		t.Error("task statuses should render")
	}
}

func TestViewRendersQueueSummary(t *testing.T) {
	t.Parallel()

	model := sizedModel(t)
	updated, _ := model.Update(queueResultMsg{
		sequence: model.queue.sequence,
		status: orchestrator.QueueStatus{
			TotalPending:    2,
			TotalProcessing: 1,
			TotalCompleted:  5,
			TotalFailed:     2,
		},
	})
	view := ansi.Strip(updated.(Model).View())

	if !strings.Contains(view, "Total       10") {
		t.Error("queue pane should show the derived total")
	}
	if !strings.Contains(view, "70.0%") {
		t.Error("queue pane should show the completion rate to one decimal")
	}
}

func TestViewRendersServicesWithFallback(t *testing.T) {
	t.Parallel()

	model := sizedModel(t)
	updated, _ := model.Update(servicesResultMsg{
		sequence: model.services.sequence,
		services: map[string]bool{
			"browser_service": true,
			"quantum_service": false,
		},
	})
	view := ansi.Strip(updated.(Model).View())

	if !strings.Contains(view, "Browser") {
		t.Error("known services should render their display name")
	}
	if !strings.Contains(view, "quantum_service") {
		t.Error("unknown services should render their raw key")
	}
}

func TestViewShowsFailedTaskError(t *testing.T) {
	t.Parallel()

	model := sizedModel(t)
	updated, _ := model.Update(tasksResultMsg{
		sequence: model.tasks.sequence,
		tasks: []orchestrator.Task{
			{ID: 7, Title: "Send reminder", Status: orchestrator.StatusFailed, ErrorMessage: "upstream timeout"},
		},
	})
	result := updated.(Model)
	result.focusRegion = FocusTasks

	view := ansi.Strip(result.View())
	if !strings.Contains(view, "upstream timeout") {
		t.Error("the selected failed task's error should render in the detail pane")
	}
}

func TestViewToastReplacesHelp(t *testing.T) {
	t.Parallel()

	model := sizedModel(t)
	updated, _ := model.showToast(toastError, "Please enter a command")
	view := ansi.Strip(updated.(Model).View())

	if !strings.Contains(view, "Please enter a command") {
		t.Error("an active toast should render in the status bar")
	}
}

func TestToastKindsRenderDistinctly(t *testing.T) {
	t.Parallel()

	model := sizedModel(t)

	render := func(kind toastKind) string {
		updated, _ := model.showToast(kind, "same text")
		return updated.(Model).renderStatusBar()
	}

	errorBar := render(toastError)
	successBar := render(toastSuccess)
	infoBar := render(toastInfo)

	if errorBar == successBar {
		t.Error("error and success toasts must not render identically")
	}
	if errorBar == infoBar || successBar == infoBar {
		t.Error("info toasts must render distinctly from the other kinds")
	}
	if !strings.Contains(ansi.Strip(errorBar), "✗") {
		t.Error("error toasts should carry the error marker")
	}
	if !strings.Contains(ansi.Strip(successBar), "✓") {
		t.Error("success toasts should carry the success marker")
	}
}

func TestStatusBarHelpFromKeyBindings(t *testing.T) {
	t.Parallel()

	bar := ansi.Strip(sizedModel(t).renderStatusBar())
	for _, want := range []string{"cancel task", "refresh", "quit"} {
		if !strings.Contains(bar, want) {
			t.Errorf("help line should mention %q, got %q", want, bar)
		}
	}
}

func TestHighlightResultFallsBackOnInvalidJSON(t *testing.T) {
	t.Parallel()

	raw := json.RawMessage("not json at all")
	if highlightResult(raw) != "not json at all" {
		t.Error("invalid JSON should render as raw text")
	}
}

func TestFormatTimestamp(t *testing.T) {
	t.Parallel()

	if formatTimestamp("") != "" {
		t.Error("empty timestamps render as empty")
	}
	if formatTimestamp("yesterday") != "" {
		t.Error("unparseable timestamps render as empty")
	}
	if formatTimestamp("2026-03-01T12:30:45Z") == "" {
		t.Error("valid timestamps should render")
	}
}
