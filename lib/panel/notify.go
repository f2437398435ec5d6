// Copyright 2026 The Taskdeck Authors
// SPDX-License-Identifier: Apache-2.0

package panel

import (
	"log/slog"
	"time"
)

// maxLogEntries caps the interaction log. When the cap is reached the
// oldest entries are dropped; memory stays bounded over arbitrarily
// long sessions.
const maxLogEntries = 200

// toastDuration is how long a toast notice stays visible. Showing a new
// toast restarts the window from zero.
const toastDuration = 5 * time.Second

// LogEntry is one line of the interaction log.
type LogEntry struct {
	Time  time.Time
	Level slog.Level
	Text  string
}

// interactionLog is the append-only, capped record of noteworthy events
// (submissions, cancellations, connection transitions, errors). Entries
// are never reordered or edited after append.
type interactionLog struct {
	entries []LogEntry
}

// append adds an entry, evicting the oldest entries beyond the cap.
func (log *interactionLog) append(now time.Time, level slog.Level, text string) {
	log.entries = append(log.entries, LogEntry{Time: now, Level: level, Text: text})
	if overflow := len(log.entries) - maxLogEntries; overflow > 0 {
		log.entries = log.entries[overflow:]
	}
}

// clear empties the log. Clearing an empty log is a no-op.
func (log *interactionLog) clear() {
	log.entries = nil
}

// toastKind selects the toast's presentation: each kind renders with
// its own marker and color so an error is never mistakable for a
// success at a glance.
type toastKind int

const (
	toastInfo toastKind = iota
	toastSuccess
	toastError
)

// toastState is the single-slot toast notice. At most one toast is
// visible at a time: showing a new one replaces the text and kind and
// restarts the expiry window. Expiry is sequence-checked so a timer
// belonging to a replaced toast cannot clear its successor early.
type toastState struct {
	text     string
	kind     toastKind
	sequence uint64
}

// show replaces the toast content and returns the sequence the
// matching expiry timer must carry.
func (toast *toastState) show(kind toastKind, text string) uint64 {
	toast.sequence++
	toast.text = text
	toast.kind = kind
	return toast.sequence
}

// expire clears the toast if sequence identifies the currently shown
// one. Reports whether anything changed.
func (toast *toastState) expire(sequence uint64) bool {
	if sequence != toast.sequence || toast.text == "" {
		return false
	}
	toast.text = ""
	return true
}
