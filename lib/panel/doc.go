// Copyright 2026 The Taskdeck Authors
// SPDX-License-Identifier: Apache-2.0

// Package panel implements the taskdeck terminal UI: a live control
// panel for a remote task-orchestration service.
//
// The panel is a bubbletea program. All state lives in the Model and
// every mutation happens inside Update, so there is no locking anywhere
// in this package: network calls run as tea.Cmd closures and deliver
// their results back into Update as typed messages. Each refresh target
// (task list, queue snapshot, service health) carries a sequence number
// so a response that was overtaken by a newer request is discarded
// instead of clobbering fresher data.
package panel
