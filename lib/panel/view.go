// Copyright 2026 The Taskdeck Authors
// SPDX-License-Identifier: Apache-2.0

package panel

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/alecthomas/chroma/v2/quick"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"

	"github.com/taskdeck/taskdeck/lib/metrics"
	"github.com/taskdeck/taskdeck/lib/orchestrator"
)

// styleRenderer forces the ANSI256 color profile: panel output is
// always for terminal display, so auto-detection (which produces
// uncolored output in test environments with no TTY) is bypassed.
// SetColorProfile is required because lipgloss.Renderer re-detects from
// the environment unless an explicit profile is set.
var styleRenderer = func() *lipgloss.Renderer {
	renderer := lipgloss.NewRenderer(os.Stderr, termenv.WithProfile(termenv.ANSI256))
	renderer.SetColorProfile(termenv.ANSI256)
	return renderer
}()

// logPaneLines is how many interaction log entries the activity pane
// shows. The full capped log stays in memory; only the tail renders.
const logPaneLines = 8

// detailResultLines bounds the rendered task result so a large result
// payload cannot push the rest of the panel off screen.
const detailResultLines = 8

// View implements tea.Model.
func (model Model) View() string {
	if !model.ready {
		return "Initializing..."
	}

	leftWidth := model.width * 3 / 5
	rightWidth := model.width - leftWidth

	sections := []string{
		model.renderHeader(),
		lipgloss.JoinHorizontal(
			lipgloss.Top,
			model.renderTasks(leftWidth),
			lipgloss.JoinVertical(
				lipgloss.Left,
				model.renderQueue(rightWidth),
				model.renderServices(rightWidth),
			),
		),
	}

	if detail := model.renderDetail(model.width); detail != "" {
		sections = append(sections, detail)
	}

	sections = append(sections,
		model.renderLog(model.width),
		model.input.View(),
		model.renderStatusBar(),
	)

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderHeader draws the title line with the connection badge.
func (model Model) renderHeader() string {
	title := styleRenderer.NewStyle().
		Foreground(model.theme.HeaderForeground).
		Bold(true).
		Render("taskdeck")

	var badge string
	switch model.connState {
	case ConnConnected:
		badge = styleRenderer.NewStyle().Foreground(model.theme.Connected).Render("● connected")
	case ConnConnecting:
		badge = styleRenderer.NewStyle().Foreground(model.theme.Connecting).Render("● connecting")
	case ConnError:
		text := "● disconnected"
		if model.connError != "" {
			text += " (" + model.connError + ")"
		}
		badge = styleRenderer.NewStyle().Foreground(model.theme.Disconnected).Render(text)
	}

	url := styleRenderer.NewStyle().
		Foreground(model.theme.FaintText).
		Render(model.cfg.APIBaseURL)

	return ansi.Truncate(title+"  "+badge+"  "+url, model.width, "…")
}

// renderTasks draws the recent task list with the selection cursor.
func (model Model) renderTasks(width int) string {
	inner := width - 4

	var lines []string
	switch {
	case !model.tasks.loaded:
		lines = append(lines, styleRenderer.NewStyle().Foreground(model.theme.FaintText).Render("Loading tasks..."))
	case len(model.tasks.value) == 0:
		lines = append(lines, styleRenderer.NewStyle().Foreground(model.theme.FaintText).Render("No tasks yet"))
	default:
		for index, task := range model.tasks.value {
			lines = append(lines, model.renderTaskRow(task, index == model.cursor, inner))
		}
	}

	return model.pane("Recent Tasks", strings.Join(lines, "\n"), width)
}

// renderTaskRow draws one task: ID, status, title, and timestamp.
func (model Model) renderTaskRow(task orchestrator.Task, selected bool, width int) string {
	status := styleRenderer.NewStyle().
		Foreground(model.theme.StatusColor(task.Status)).
		Render(fmt.Sprintf("%-10s", task.Status))

	suffix := ""
	switch {
	case model.cancelling[task.ID]:
		suffix = " [cancelling]"
	case selected && model.focusRegion == FocusTasks && task.Status.Cancellable():
		suffix = " [c: cancel]"
	}

	row := fmt.Sprintf("#%-4d %s %s%s", task.ID, status, task.Title, suffix)
	if stamp := formatTimestamp(task.CreatedAt); stamp != "" {
		row += styleRenderer.NewStyle().Foreground(model.theme.FaintText).Render("  " + stamp)
	}
	row = ansi.Truncate(row, width, "…")

	if selected && model.focusRegion == FocusTasks {
		return styleRenderer.NewStyle().
			Background(model.theme.SelectedBackground).
			Foreground(model.theme.SelectedForeground).
			Render(ansi.Strip(row))
	}
	return row
}

// renderQueue draws queue metrics plus the derived summary figures.
func (model Model) renderQueue(width int) string {
	if !model.queue.loaded {
		return model.pane("Queue", styleRenderer.NewStyle().Foreground(model.theme.FaintText).Render("Loading..."), width)
	}

	queue := model.queue.value
	summary := metrics.Summarize(queue)

	lines := []string{
		fmt.Sprintf("Queued      %d", queue.QueueSize),
		fmt.Sprintf("Active      %d / %d", queue.ActiveTasks, queue.MaxConcurrentTasks),
		"",
		fmt.Sprintf("Pending     %d", queue.TotalPending),
		fmt.Sprintf("Processing  %d", queue.TotalProcessing),
		fmt.Sprintf("Completed   %d", queue.TotalCompleted),
		fmt.Sprintf("Failed      %d", queue.TotalFailed),
		"",
		fmt.Sprintf("Total       %d", summary.TotalTasks),
		fmt.Sprintf("Done        %.1f%%", summary.CompletionRate),
	}
	return model.pane("Queue", strings.Join(lines, "\n"), width)
}

// renderServices draws per-service health markers: catalog services in
// display order first, then any unknown keys the server reported,
// sorted for stable output.
func (model Model) renderServices(width int) string {
	if !model.services.loaded {
		return model.pane("Services", styleRenderer.NewStyle().Foreground(model.theme.FaintText).Render("Loading..."), width)
	}

	services := model.services.value
	seen := make(map[string]bool, len(services))

	var lines []string
	appendService := func(key string) {
		info := describeService(key)
		color := model.theme.Unhealthy
		if services[key] {
			color = model.theme.Healthy
		}
		marker := styleRenderer.NewStyle().Foreground(color).Render("●")
		lines = append(lines, ansi.Truncate(marker+" "+info.displayName, width-4, "…"))
	}

	for _, info := range serviceCatalog {
		if _, ok := services[info.key]; ok {
			appendService(info.key)
			seen[info.key] = true
		}
	}

	var unknown []string
	for key := range services {
		if !seen[key] {
			unknown = append(unknown, key)
		}
	}
	sort.Strings(unknown)
	for _, key := range unknown {
		appendService(key)
	}

	if len(lines) == 0 {
		lines = append(lines, styleRenderer.NewStyle().Foreground(model.theme.FaintText).Render("No services reported"))
	}
	return model.pane("Services", strings.Join(lines, "\n"), width)
}

// renderDetail draws the outcome of the selected task: the result
// payload for completed tasks, the error message for failed ones.
// Returns "" when the selection has nothing to show.
func (model Model) renderDetail(width int) string {
	if model.focusRegion != FocusTasks || model.cursor >= len(model.tasks.value) {
		return ""
	}
	task := model.tasks.value[model.cursor]

	var body string
	switch {
	case task.ErrorMessage != "":
		body = styleRenderer.NewStyle().Foreground(model.theme.StatusFailed).Render(task.ErrorMessage)
	case len(task.Result) > 0:
		body = highlightResult(task.Result)
	default:
		return ""
	}

	lines := strings.Split(body, "\n")
	if len(lines) > detailResultLines {
		lines = append(lines[:detailResultLines], styleRenderer.NewStyle().Foreground(model.theme.FaintText).Render("…"))
	}
	for index, line := range lines {
		lines[index] = ansi.Truncate(line, width-4, "…")
	}

	return model.pane(fmt.Sprintf("Task #%d", task.ID), strings.Join(lines, "\n"), width)
}

// highlightResult pretty-prints and syntax-highlights a task result
// payload. Falls back to the raw text when the payload is not valid
// JSON or Chroma fails.
func highlightResult(raw json.RawMessage) string {
	var indented bytes.Buffer
	if err := json.Indent(&indented, raw, "", "  "); err != nil {
		return string(raw)
	}
	var buffer strings.Builder
	if err := quick.Highlight(&buffer, indented.String(), "json", "terminal256", "monokai"); err != nil {
		return indented.String()
	}
	return strings.TrimRight(buffer.String(), "\n")
}

// renderLog draws the tail of the interaction log.
func (model Model) renderLog(width int) string {
	entries := model.log.entries
	if len(entries) > logPaneLines {
		entries = entries[len(entries)-logPaneLines:]
	}

	var lines []string
	for _, entry := range entries {
		stamp := styleRenderer.NewStyle().
			Foreground(model.theme.FaintText).
			Render(entry.Time.Format("15:04:05"))
		text := entry.Text
		if entry.Level >= slog.LevelError {
			text = styleRenderer.NewStyle().Foreground(model.theme.StatusFailed).Render(text)
		} else if entry.Level >= slog.LevelWarn {
			text = styleRenderer.NewStyle().Foreground(model.theme.StatusPending).Render(text)
		}
		lines = append(lines, ansi.Truncate(stamp+" "+text, width-4, "…"))
	}
	if len(lines) == 0 {
		lines = append(lines, styleRenderer.NewStyle().Foreground(model.theme.FaintText).Render("No activity yet"))
	}
	return model.pane("Activity", strings.Join(lines, "\n"), width)
}

// renderStatusBar draws the help line, replaced by the toast notice
// while one is visible. Each toast kind carries its own marker and
// color so errors and successes read differently at a glance.
func (model Model) renderStatusBar() string {
	if model.toast.text != "" {
		var marker string
		var color lipgloss.Color
		switch model.toast.kind {
		case toastSuccess:
			marker, color = "✓", model.theme.ToastSuccess
		case toastError:
			marker, color = "✗", model.theme.ToastError
		default:
			marker, color = "ℹ", model.theme.ToastInfo
		}
		return styleRenderer.NewStyle().
			Foreground(color).
			Background(model.theme.ToastBackground).
			Padding(0, 1).
			Render(ansi.Truncate(marker+" "+model.toast.text, model.width-2, "…"))
	}

	return styleRenderer.NewStyle().
		Foreground(model.theme.HelpText).
		Render(ansi.Truncate(model.helpLine(), model.width, "…"))
}

// helpLine assembles the key help from the bindings themselves, so the
// hints can never drift from the actual key map.
func (model Model) helpLine() string {
	bindings := []key.Binding{
		model.keys.FocusToggle,
		model.keys.Submit,
		model.keys.Up,
		model.keys.Down,
		model.keys.Cancel,
		model.keys.Refresh,
		model.keys.ClearLog,
		model.keys.Quit,
	}

	parts := make([]string, 0, len(bindings))
	for _, binding := range bindings {
		help := binding.Help()
		parts = append(parts, help.Key+" "+help.Desc)
	}
	return strings.Join(parts, " · ")
}

// pane wraps content in a bordered box with a title.
func (model Model) pane(title, content string, width int) string {
	titled := styleRenderer.NewStyle().
		Foreground(model.theme.HeaderForeground).
		Render(title)

	return styleRenderer.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(model.theme.BorderColor).
		Width(width - 2).
		Padding(0, 1).
		Render(titled + "\n" + content)
}

// formatTimestamp renders an orchestrator ISO-8601 timestamp as a local
// clock time. Unparseable or empty values render as empty.
func formatTimestamp(value string) string {
	if value == "" {
		return ""
	}
	parsed, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return ""
	}
	return parsed.Local().Format("15:04:05")
}
