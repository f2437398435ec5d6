// Copyright 2026 The Taskdeck Authors
// SPDX-License-Identifier: Apache-2.0

package panel

import (
	"context"
	"log/slog"
	"testing"
	"time"
)

func TestLogHandlerEnabled(t *testing.T) {
	t.Parallel()

	handler := NewLogHandler(slog.LevelWarn)
	if handler.Enabled(context.Background(), slog.LevelInfo) {
		t.Error("info should be filtered below a warn threshold")
	}
	if !handler.Enabled(context.Background(), slog.LevelError) {
		t.Error("error should pass a warn threshold")
	}
}

func TestLogHandlerDropsRecordsWithoutProgram(t *testing.T) {
	t.Parallel()

	handler := NewLogHandler(slog.LevelInfo)
	record := slog.NewRecord(time.Now(), slog.LevelInfo, "early record", 0)
	if err := handler.Handle(context.Background(), record); err != nil {
		t.Fatalf("Handle before SetProgram should silently drop: %v", err)
	}
}

func TestLogHandlerDerivedHandlersShareProgram(t *testing.T) {
	t.Parallel()

	root := NewLogHandler(slog.LevelInfo)
	derived := root.WithAttrs([]slog.Attr{slog.String("component", "panel")}).(*LogHandler)

	if derived.program != root.program {
		t.Error("derived handlers must share the program pointer")
	}
	if grouped := derived.WithGroup("request"); grouped != derived {
		t.Error("groups are flattened; WithGroup returns the handler unchanged")
	}
}
