// Copyright 2026 The Taskdeck Authors
// SPDX-License-Identifier: Apache-2.0

package panel

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/taskdeck/taskdeck/lib/clock"
	"github.com/taskdeck/taskdeck/lib/orchestrator"
)

// listenForTick returns a tea.Cmd that blocks until the poll ticker
// fires, then delivers a tickMsg. Update re-arms it after every tick so
// exactly one listener is outstanding at a time.
func listenForTick(ticker *clock.Ticker) tea.Cmd {
	return func() tea.Msg {
		<-ticker.C
		return tickMsg{}
	}
}

// expireToast returns a tea.Cmd that waits out the toast display window
// and delivers the sequence-stamped expiry message.
func expireToast(clk clock.Clock, sequence uint64) tea.Cmd {
	return func() tea.Msg {
		<-clk.After(toastDuration)
		return toastExpireMsg{sequence: sequence}
	}
}

// probeCmd checks orchestrator liveness.
func (model Model) probeCmd() tea.Cmd {
	client := model.client
	return func() tea.Msg {
		return probeResultMsg{err: client.Health(context.Background())}
	}
}

// fetchTasksCmd requests the recent task list under the given sequence.
func (model Model) fetchTasksCmd(sequence uint64) tea.Cmd {
	client := model.client
	limit := model.cfg.TaskLimit
	return func() tea.Msg {
		tasks, err := client.RecentTasks(context.Background(), limit)
		return tasksResultMsg{sequence: sequence, tasks: tasks, err: err}
	}
}

// fetchQueueCmd requests the queue snapshot under the given sequence.
func (model Model) fetchQueueCmd(sequence uint64) tea.Cmd {
	client := model.client
	return func() tea.Msg {
		status, err := client.QueueStatus(context.Background())
		if err != nil {
			return queueResultMsg{sequence: sequence, err: err}
		}
		return queueResultMsg{sequence: sequence, status: *status}
	}
}

// fetchServicesCmd requests the service health map under the given
// sequence.
func (model Model) fetchServicesCmd(sequence uint64) tea.Cmd {
	client := model.client
	return func() tea.Msg {
		health, err := client.ServicesHealth(context.Background())
		if err != nil {
			return servicesResultMsg{sequence: sequence, err: err}
		}
		return servicesResultMsg{sequence: sequence, services: health.Services}
	}
}

// submitCmd submits a command for orchestration.
func (model Model) submitCmd(command string) tea.Cmd {
	client := model.client
	request := orchestrator.CommandRequest{
		Command: command,
		UserID:  model.cfg.UserID,
		Context: map[string]any{},
	}
	return func() tea.Msg {
		response, err := client.SubmitCommand(context.Background(), request)
		return submitResultMsg{response: response, err: err}
	}
}

// cancelCmd asks the orchestrator to cancel a task.
func (model Model) cancelCmd(taskID int) tea.Cmd {
	client := model.client
	return func() tea.Msg {
		return cancelResultMsg{taskID: taskID, err: client.CancelTask(context.Background(), taskID)}
	}
}
