// Copyright 2026 The Taskdeck Authors
// SPDX-License-Identifier: Apache-2.0

package panel

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/taskdeck/taskdeck/lib/clock"
	"github.com/taskdeck/taskdeck/lib/config"
	"github.com/taskdeck/taskdeck/lib/orchestrator"
)

// ConnState is the panel's view of orchestrator reachability.
type ConnState int

const (
	// ConnConnecting means the initial probe has not resolved yet.
	ConnConnecting ConnState = iota
	// ConnConnected means the last probe or refresh succeeded at the
	// transport level. Polling runs only in this state.
	ConnConnected
	// ConnError means the orchestrator is unreachable. The panel keeps
	// probing on the poll cadence and recovers automatically.
	ConnError
)

// FocusRegion identifies which element has keyboard focus.
type FocusRegion int

const (
	// FocusInput means keystrokes go to the command input.
	FocusInput FocusRegion = iota
	// FocusTasks means navigation keys move the task list cursor.
	FocusTasks
)

// Model is the top-level bubbletea model for the panel. All fields are
// owned by the Update loop; nothing in this struct needs locking.
type Model struct {
	client *orchestrator.Client
	cfg    *config.Config
	clock  clock.Clock
	theme  Theme
	keys   KeyMap

	// Terminal dimensions (set by WindowSizeMsg).
	width  int
	height int
	ready  bool

	// Connection state. connError holds the last failure's message for
	// the header badge; meaningful only in ConnError.
	connState ConnState
	connError string
	probing   bool

	// Refresh targets. Each slot carries its own sequence bookkeeping
	// so overlapping responses resolve to the newest snapshot.
	tasks    slot[[]orchestrator.Task]
	queue    slot[orchestrator.QueueStatus]
	services slot[map[string]bool]

	// Command input and submission guard. At most one submission is in
	// flight; further submits are ignored until it resolves.
	focusRegion FocusRegion
	input       textinput.Model
	submitting  bool

	// Task IDs with a cancellation in flight. Guards against repeated
	// cancel requests for the same task.
	cancelling map[int]bool

	// Task list cursor (index into tasks.value).
	cursor int

	log   interactionLog
	toast toastState

	// Poll ticker. Created in NewModel, armed by Init, stopped on quit
	// so no timer outlives the program.
	ticker *clock.Ticker
}

// NewModel creates a Model connected to the given orchestrator client.
// The clock is injectable for tests; production callers pass
// clock.Real().
func NewModel(client *orchestrator.Client, cfg *config.Config, clk clock.Clock) Model {
	input := textinput.New()
	input.Placeholder = "Enter a command for the orchestrator..."
	input.Prompt = "> "
	input.CharLimit = 500
	input.Focus()

	return Model{
		client:     client,
		cfg:        cfg,
		clock:      clk,
		theme:      DefaultTheme,
		keys:       DefaultKeyMap,
		connState:  ConnConnecting,
		probing:    true, // Init issues the first probe.
		input:      input,
		cancelling: make(map[int]bool),
		ticker:     clk.NewTicker(cfg.PollInterval.Std()),
	}
}

// Init implements tea.Model. Issues the initial connectivity probe and
// starts listening for poll ticks.
func (model Model) Init() tea.Cmd {
	return tea.Batch(
		model.probeCmd(),
		listenForTick(model.ticker),
		textinput.Blink,
	)
}

// Update implements tea.Model.
func (model Model) Update(message tea.Msg) (tea.Model, tea.Cmd) {
	switch message := message.(type) {
	case tea.WindowSizeMsg:
		model.width = message.Width
		model.height = message.Height
		model.ready = true
		model.input.Width = max(20, model.width-4)
		return model, nil

	case tickMsg:
		return model.handleTick()

	case probeResultMsg:
		return model.handleProbeResult(message)

	case tasksResultMsg:
		return model.handleTasksResult(message)

	case queueResultMsg:
		return model.handleQueueResult(message)

	case servicesResultMsg:
		return model.handleServicesResult(message)

	case submitResultMsg:
		return model.handleSubmitResult(message)

	case cancelResultMsg:
		return model.handleCancelResult(message)

	case toastExpireMsg:
		model.toast.expire(message.sequence)
		return model, nil

	case logRecordMsg:
		model.log.append(model.clock.Now(), message.level, message.summary)
		return model, nil

	case tea.KeyMsg:
		return model.handleKey(message)
	}

	return model, nil
}

// handleTick runs one step of the polling cycle and re-arms the tick
// listener. Every tick issues a probe (under its own in-flight guard),
// so a degraded health endpoint demotes the connection even while the
// data endpoints still answer. While connected, the tick additionally
// refreshes every target that has no request in flight.
func (model Model) handleTick() (tea.Model, tea.Cmd) {
	cmds := []tea.Cmd{listenForTick(model.ticker)}

	if !model.probing {
		model.probing = true
		cmds = append(cmds, model.probeCmd())
	}

	if model.connState == ConnConnected {
		cmds = append(cmds, model.refreshTargets(false)...)
	}
	return model, tea.Batch(cmds...)
}

// refreshTargets issues fetches for the three refresh targets. When
// force is false, targets with a request already in flight are skipped
// (the poll cycle never stacks requests). When force is true, every
// target gets a fresh request regardless; the new sequence numbers make
// any outstanding responses stale on arrival.
func (model *Model) refreshTargets(force bool) []tea.Cmd {
	var cmds []tea.Cmd
	if force || !model.tasks.inFlight {
		cmds = append(cmds, model.fetchTasksCmd(model.tasks.begin()))
	}
	if force || !model.queue.inFlight {
		cmds = append(cmds, model.fetchQueueCmd(model.queue.begin()))
	}
	if force || !model.services.inFlight {
		cmds = append(cmds, model.fetchServicesCmd(model.services.begin()))
	}
	return cmds
}

// handleProbeResult applies a connectivity probe outcome. Transitions
// are logged once, not on every repeated failure or success.
func (model Model) handleProbeResult(message probeResultMsg) (tea.Model, tea.Cmd) {
	model.probing = false

	if message.err != nil {
		if model.connState == ConnConnected {
			model.log.append(model.clock.Now(), slog.LevelError,
				"Lost connection to API: "+errorText(message.err))
		}
		model.connState = ConnError
		model.connError = errorText(message.err)
		return model, nil
	}

	if model.connState != ConnConnected {
		model.log.append(model.clock.Now(), slog.LevelInfo, "Connected to API")
	}
	model.connState = ConnConnected
	model.connError = ""

	// Populate the panel immediately instead of waiting for the next
	// poll tick.
	cmds := model.refreshTargets(false)
	return model, tea.Batch(cmds...)
}

// handleTasksResult applies a task list response, discarding stale
// sequences.
func (model Model) handleTasksResult(message tasksResultMsg) (tea.Model, tea.Cmd) {
	if message.err != nil {
		if model.tasks.settle(message.sequence) {
			model.noteRefreshFailure("task list", message.err)
		}
		return model, nil
	}
	if model.tasks.apply(message.sequence, message.tasks) {
		model.clampCursor()
	}
	return model, nil
}

// handleQueueResult applies a queue snapshot response.
func (model Model) handleQueueResult(message queueResultMsg) (tea.Model, tea.Cmd) {
	if message.err != nil {
		if model.queue.settle(message.sequence) {
			model.noteRefreshFailure("queue status", message.err)
		}
		return model, nil
	}
	model.queue.apply(message.sequence, message.status)
	return model, nil
}

// handleServicesResult applies a service health response.
func (model Model) handleServicesResult(message servicesResultMsg) (tea.Model, tea.Cmd) {
	if message.err != nil {
		if model.services.settle(message.sequence) {
			model.noteRefreshFailure("service health", message.err)
		}
		return model, nil
	}
	model.services.apply(message.sequence, message.services)
	return model, nil
}

// noteRefreshFailure records a failed refresh. A transport-level
// failure (no HTTP response at all) demotes the connection to ConnError
// so polling switches back to probing; a server error response keeps
// the connection up and is only logged.
func (model *Model) noteRefreshFailure(target string, err error) {
	var statusErr *orchestrator.StatusError
	if !errors.As(err, &statusErr) && model.connState == ConnConnected {
		model.connState = ConnError
		model.connError = errorText(err)
		model.log.append(model.clock.Now(), slog.LevelError,
			"Lost connection to API: "+errorText(err))
		return
	}
	model.log.append(model.clock.Now(), slog.LevelError,
		fmt.Sprintf("Failed to refresh %s: %s", target, errorText(err)))
}

// handleSubmitResult applies a command submission outcome.
func (model Model) handleSubmitResult(message submitResultMsg) (tea.Model, tea.Cmd) {
	model.submitting = false

	if message.err != nil {
		model.log.append(model.clock.Now(), slog.LevelError,
			"Command submission failed: "+errorText(message.err))
		return model.showToast(toastError, "Submission failed: "+errorText(message.err))
	}

	model.log.append(model.clock.Now(), slog.LevelInfo,
		fmt.Sprintf("Command submitted successfully: Task ID: %d", message.response.TaskID))
	model.input.Reset()

	toastModel, toastCmd := model.showToast(toastSuccess, fmt.Sprintf("Task %d submitted", message.response.TaskID))
	model = toastModel.(Model)

	// Pull the new task into view right away rather than waiting for
	// the next poll tick.
	cmds := append(model.refreshTargets(true), toastCmd)
	return model, tea.Batch(cmds...)
}

// handleCancelResult applies a task cancellation outcome.
func (model Model) handleCancelResult(message cancelResultMsg) (tea.Model, tea.Cmd) {
	delete(model.cancelling, message.taskID)

	if message.err != nil {
		model.log.append(model.clock.Now(), slog.LevelError,
			fmt.Sprintf("Failed to cancel task %d: %s", message.taskID, errorText(message.err)))
		return model.showToast(toastError, "Cancel failed: "+errorText(message.err))
	}

	model.log.append(model.clock.Now(), slog.LevelInfo,
		fmt.Sprintf("Task %d cancelled", message.taskID))

	toastModel, toastCmd := model.showToast(toastSuccess, fmt.Sprintf("Task %d cancelled", message.taskID))
	model = toastModel.(Model)

	cmds := append(model.refreshTargets(true), toastCmd)
	return model, tea.Batch(cmds...)
}

// handleKey routes keyboard input based on the current focus region.
func (model Model) handleKey(message tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Ctrl+C quits from anywhere, including while typing.
	if message.Type == tea.KeyCtrlC {
		model.ticker.Stop()
		return model, tea.Quit
	}

	switch {
	case key.Matches(message, model.keys.FocusToggle):
		if model.focusRegion == FocusInput {
			model.focusRegion = FocusTasks
			model.input.Blur()
			return model, nil
		}
		model.focusRegion = FocusInput
		return model, model.input.Focus()

	case key.Matches(message, model.keys.ClearLog):
		model.log.clear()
		return model, nil
	}

	if model.focusRegion == FocusInput {
		if key.Matches(message, model.keys.Submit) {
			return model.submitCommand()
		}
		var cmd tea.Cmd
		model.input, cmd = model.input.Update(message)
		return model, cmd
	}

	switch {
	case key.Matches(message, model.keys.Quit):
		model.ticker.Stop()
		return model, tea.Quit

	case key.Matches(message, model.keys.Up):
		if model.cursor > 0 {
			model.cursor--
		}
		return model, nil

	case key.Matches(message, model.keys.Down):
		if model.cursor < len(model.tasks.value)-1 {
			model.cursor++
		}
		return model, nil

	case key.Matches(message, model.keys.Cancel):
		return model.cancelSelected()

	case key.Matches(message, model.keys.Refresh):
		if model.connState != ConnConnected {
			return model.showToast(toastError, "Not connected to API")
		}
		cmds := model.refreshTargets(true)
		return model, tea.Batch(cmds...)
	}

	return model, nil
}

// submitCommand validates the input and submits it. Validation
// failures surface as toasts and never reach the network.
func (model Model) submitCommand() (tea.Model, tea.Cmd) {
	command := strings.TrimSpace(model.input.Value())
	if command == "" {
		return model.showToast(toastError, "Please enter a command")
	}
	if model.connState != ConnConnected {
		return model.showToast(toastError, "Not connected to API")
	}
	if model.submitting {
		return model, nil
	}

	model.submitting = true
	return model, model.submitCmd(command)
}

// cancelSelected requests cancellation of the task under the cursor.
// Only pending tasks are cancellable; anything else is rejected locally
// without a network call.
func (model Model) cancelSelected() (tea.Model, tea.Cmd) {
	if model.cursor >= len(model.tasks.value) {
		return model, nil
	}
	task := model.tasks.value[model.cursor]

	if !task.Status.Cancellable() {
		return model.showToast(toastError, "Only pending tasks can be cancelled")
	}
	if model.cancelling[task.ID] {
		return model, nil
	}

	model.cancelling[task.ID] = true
	return model, model.cancelCmd(task.ID)
}

// showToast displays a toast notice of the given kind and schedules
// its expiry.
func (model Model) showToast(kind toastKind, text string) (tea.Model, tea.Cmd) {
	sequence := model.toast.show(kind, text)
	return model, expireToast(model.clock, sequence)
}

// clampCursor keeps the task cursor within the current task list after
// a snapshot replace shrinks it.
func (model *Model) clampCursor() {
	if model.cursor >= len(model.tasks.value) {
		model.cursor = len(model.tasks.value) - 1
	}
	if model.cursor < 0 {
		model.cursor = 0
	}
}

// errorText produces the display form of an error: the server's detail
// message when the orchestrator answered, the plain error string
// otherwise.
func errorText(err error) string {
	var statusErr *orchestrator.StatusError
	if errors.As(err, &statusErr) && statusErr.Detail != "" {
		return statusErr.Detail
	}
	return err.Error()
}
