// Copyright 2026 The Taskdeck Authors
// SPDX-License-Identifier: Apache-2.0

package panel

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/taskdeck/taskdeck/lib/orchestrator"
)

// Theme defines the color palette for the panel. All colors use
// lipgloss ANSI 256-color codes for broad terminal compatibility.
type Theme struct {
	// Text colors.
	NormalText lipgloss.Color
	FaintText  lipgloss.Color

	// Selected task row.
	SelectedBackground lipgloss.Color
	SelectedForeground lipgloss.Color

	// Task status colors.
	StatusPending    lipgloss.Color
	StatusProcessing lipgloss.Color
	StatusCompleted  lipgloss.Color
	StatusFailed     lipgloss.Color
	StatusCancelled  lipgloss.Color

	// Connection indicator.
	Connected    lipgloss.Color
	Connecting   lipgloss.Color
	Disconnected lipgloss.Color

	// Service health markers.
	Healthy   lipgloss.Color
	Unhealthy lipgloss.Color

	// UI chrome.
	HeaderForeground lipgloss.Color
	BorderColor      lipgloss.Color
	HelpText         lipgloss.Color

	// Toast notice. The foreground varies per toast kind; the
	// background is shared.
	ToastInfo       lipgloss.Color
	ToastSuccess    lipgloss.Color
	ToastError      lipgloss.Color
	ToastBackground lipgloss.Color
}

// StatusColor returns the color for a task status. Unknown values
// render as FaintText.
func (theme Theme) StatusColor(status orchestrator.Status) lipgloss.Color {
	switch status {
	case orchestrator.StatusPending:
		return theme.StatusPending
	case orchestrator.StatusProcessing:
		return theme.StatusProcessing
	case orchestrator.StatusCompleted:
		return theme.StatusCompleted
	case orchestrator.StatusFailed:
		return theme.StatusFailed
	case orchestrator.StatusCancelled:
		return theme.StatusCancelled
	default:
		return theme.FaintText
	}
}

// DefaultTheme is the built-in dark-terminal color scheme.
var DefaultTheme = Theme{
	NormalText: lipgloss.Color("252"),
	FaintText:  lipgloss.Color("245"),

	SelectedBackground: lipgloss.Color("236"),
	SelectedForeground: lipgloss.Color("255"),

	StatusPending:    lipgloss.Color("220"), // yellow/amber
	StatusProcessing: lipgloss.Color("75"),  // blue
	StatusCompleted:  lipgloss.Color("114"), // green
	StatusFailed:     lipgloss.Color("196"), // red
	StatusCancelled:  lipgloss.Color("245"), // gray

	Connected:    lipgloss.Color("114"),
	Connecting:   lipgloss.Color("220"),
	Disconnected: lipgloss.Color("196"),

	Healthy:   lipgloss.Color("114"),
	Unhealthy: lipgloss.Color("196"),

	HeaderForeground: lipgloss.Color("255"),
	BorderColor:      lipgloss.Color("240"),
	HelpText:         lipgloss.Color("241"),

	ToastInfo:       lipgloss.Color("255"),
	ToastSuccess:    lipgloss.Color("114"),
	ToastError:      lipgloss.Color("196"),
	ToastBackground: lipgloss.Color("237"),
}
