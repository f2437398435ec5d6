// Copyright 2026 The Taskdeck Authors
// SPDX-License-Identifier: Apache-2.0

package panel

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all key bindings for the panel.
type KeyMap struct {
	// Task list navigation (active when the task list has focus).
	Up   key.Binding
	Down key.Binding

	// Focus switching between the command input and the task list.
	FocusToggle key.Binding

	// Submit the command input (input focus) or no-op (list focus).
	Submit key.Binding

	// Cancel the selected task. Only offered for pending tasks.
	Cancel key.Binding

	// Refresh all data immediately, outside the polling cycle.
	Refresh key.Binding

	// Clear the interaction log.
	ClearLog key.Binding

	Quit key.Binding
}

// DefaultKeyMap is the built-in key binding set.
var DefaultKeyMap = KeyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "down"),
	),
	FocusToggle: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("Tab", "switch focus"),
	),
	Submit: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("Enter", "submit"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("c"),
		key.WithHelp("c", "cancel task"),
	),
	Refresh: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "refresh"),
	),
	ClearLog: key.NewBinding(
		key.WithKeys("ctrl+l"),
		key.WithHelp("C-l", "clear log"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}
