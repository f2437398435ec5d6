// Copyright 2026 The Taskdeck Authors
// SPDX-License-Identifier: Apache-2.0

// Package netutil provides HTTP response helpers for the orchestrator
// client.
//
// All body reads are bounded at MaxResponseSize so a misbehaving server
// cannot exhaust memory. These helpers are for JSON API responses, not
// streaming bodies.
package netutil

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// MaxResponseSize is the bound on API response body reads: 8 MB. The
// orchestrator's largest legitimate response is a page of tasks with
// embedded result payloads, orders of magnitude below this; the limit
// exists only to bound a pathological response.
const MaxResponseSize int64 = 8 << 20

// ReadResponse reads a JSON API response body up to MaxResponseSize
// bytes. Use instead of io.ReadAll when reading HTTP response bodies.
func ReadResponse(body io.Reader) ([]byte, error) {
	return io.ReadAll(io.LimitReader(body, MaxResponseSize))
}

// DecodeResponse reads a JSON API response body (up to MaxResponseSize
// bytes) and JSON-decodes it into v.
func DecodeResponse(body io.Reader, v any) error {
	data, err := io.ReadAll(io.LimitReader(body, MaxResponseSize))
	if err != nil {
		return fmt.Errorf("reading response body: %w", err)
	}
	return json.Unmarshal(data, v)
}

// DetailMessage extracts the human-readable error detail from an
// orchestrator error response body. The orchestrator reports errors as
// {"detail": "..."}; when the body is not that shape (HTML error page,
// empty body, plain text), the trimmed raw body is returned instead.
// Read errors are ignored — a partial body is still useful in an error
// message.
func DetailMessage(body io.Reader) string {
	data, _ := io.ReadAll(io.LimitReader(body, MaxResponseSize))

	var envelope struct {
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(data, &envelope); err == nil && envelope.Detail != "" {
		return envelope.Detail
	}
	return strings.TrimSpace(string(data))
}
