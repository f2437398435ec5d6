// Copyright 2026 The Taskdeck Authors
// SPDX-License-Identifier: Apache-2.0

// Package orchestrator provides a typed HTTP client for the remote
// task-orchestration service's REST API, plus the wire types it speaks.
//
// The client mirrors the orchestrator's wire format with its own types
// so the panel never depends on server internals; the JSON shapes are
// the contract. Every call is bounded by the configured request
// timeout — a hung server surfaces as a transport failure instead of a
// permanently stuck request.
package orchestrator

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/taskdeck/taskdeck/lib/netutil"
)

// Client is a typed HTTP client for the orchestrator REST API.
type Client struct {
	httpClient *http.Client
	baseURL    string
	timeout    time.Duration
}

// New creates a Client for the orchestrator at baseURL (including the
// API prefix, e.g. "http://localhost:8000/api/v1"). Every request is
// bounded by timeout.
func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		httpClient: &http.Client{},
		baseURL:    strings.TrimRight(baseURL, "/"),
		timeout:    timeout,
	}
}

// StatusError describes a non-success HTTP response from the
// orchestrator. Detail carries the server's human-readable message when
// the body had one.
type StatusError struct {
	StatusCode int
	Detail     string
}

func (e *StatusError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("HTTP %d", e.StatusCode)
	}
	return fmt.Sprintf("HTTP %d: %s", e.StatusCode, e.Detail)
}

// Health probes orchestrator liveness. Any 2xx response counts as
// healthy; everything else is an error.
func (client *Client) Health(ctx context.Context) error {
	response, err := client.get(ctx, "/health")
	if err != nil {
		return fmt.Errorf("health: %w", err)
	}
	defer response.Body.Close()

	if !success(response.StatusCode) {
		return fmt.Errorf("health: %w", statusError(response))
	}
	return nil
}

// SubmitCommand submits a natural-language command for orchestration.
func (client *Client) SubmitCommand(ctx context.Context, request CommandRequest) (*CommandResponse, error) {
	response, err := client.post(ctx, "/command", request)
	if err != nil {
		return nil, fmt.Errorf("submit command: %w", err)
	}
	defer response.Body.Close()

	if !success(response.StatusCode) {
		return nil, fmt.Errorf("submit command: %w", statusError(response))
	}

	var result CommandResponse
	if err := netutil.DecodeResponse(response.Body, &result); err != nil {
		return nil, fmt.Errorf("submit command: %w", err)
	}
	return &result, nil
}

// RecentTasks returns the most recent tasks, newest first, bounded to
// limit entries.
func (client *Client) RecentTasks(ctx context.Context, limit int) ([]Task, error) {
	response, err := client.get(ctx, "/tasks?limit="+strconv.Itoa(limit))
	if err != nil {
		return nil, fmt.Errorf("recent tasks: %w", err)
	}
	defer response.Body.Close()

	if !success(response.StatusCode) {
		return nil, fmt.Errorf("recent tasks: %w", statusError(response))
	}

	var result []Task
	if err := netutil.DecodeResponse(response.Body, &result); err != nil {
		return nil, fmt.Errorf("recent tasks: %w", err)
	}
	return result, nil
}

// QueueStatus returns the orchestrator's queue metrics snapshot.
func (client *Client) QueueStatus(ctx context.Context) (*QueueStatus, error) {
	response, err := client.get(ctx, "/queue/status")
	if err != nil {
		return nil, fmt.Errorf("queue status: %w", err)
	}
	defer response.Body.Close()

	if !success(response.StatusCode) {
		return nil, fmt.Errorf("queue status: %w", statusError(response))
	}

	var result QueueStatus
	if err := netutil.DecodeResponse(response.Body, &result); err != nil {
		return nil, fmt.Errorf("queue status: %w", err)
	}
	return &result, nil
}

// ServicesHealth returns the per-service health map.
func (client *Client) ServicesHealth(ctx context.Context) (*ServiceHealth, error) {
	response, err := client.get(ctx, "/services/health")
	if err != nil {
		return nil, fmt.Errorf("services health: %w", err)
	}
	defer response.Body.Close()

	if !success(response.StatusCode) {
		return nil, fmt.Errorf("services health: %w", statusError(response))
	}

	var result ServiceHealth
	if err := netutil.DecodeResponse(response.Body, &result); err != nil {
		return nil, fmt.Errorf("services health: %w", err)
	}
	return &result, nil
}

// CancelTask asks the orchestrator to cancel a pending task. The
// orchestrator rejects cancellation once the task has started.
func (client *Client) CancelTask(ctx context.Context, taskID int) error {
	response, err := client.delete(ctx, "/task/"+strconv.Itoa(taskID))
	if err != nil {
		return fmt.Errorf("cancel task %d: %w", taskID, err)
	}
	defer response.Body.Close()

	if !success(response.StatusCode) {
		return fmt.Errorf("cancel task %d: %w", taskID, statusError(response))
	}
	return nil
}

// success reports whether code is a 2xx status.
func success(code int) bool {
	return code >= 200 && code < 300
}

// statusError builds a *StatusError from a non-success response,
// extracting the server's detail message when present.
func statusError(response *http.Response) *StatusError {
	return &StatusError{
		StatusCode: response.StatusCode,
		Detail:     netutil.DetailMessage(response.Body),
	}
}

// get makes a GET request to the orchestrator.
func (client *Client) get(ctx context.Context, path string) (*http.Response, error) {
	return client.do(ctx, http.MethodGet, path, nil)
}

// delete makes a DELETE request to the orchestrator.
func (client *Client) delete(ctx context.Context, path string) (*http.Response, error) {
	return client.do(ctx, http.MethodDelete, path, nil)
}

// post makes a POST request with a JSON body.
func (client *Client) post(ctx context.Context, path string, body any) (*http.Response, error) {
	encoded, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("encoding request body: %w", err)
	}
	return client.do(ctx, http.MethodPost, path, encoded)
}

// do issues one request with the client's timeout applied and a fresh
// request ID for server-side correlation.
func (client *Client) do(ctx context.Context, method, path string, body []byte) (*http.Response, error) {
	ctx, cancel := context.WithTimeout(ctx, client.timeout)

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	request, err := http.NewRequestWithContext(ctx, method, client.baseURL+path, reader)
	if err != nil {
		cancel()
		return nil, err
	}
	if body != nil {
		request.Header.Set("Content-Type", "application/json")
	}
	request.Header.Set("X-Request-ID", uuid.NewString())

	response, err := client.httpClient.Do(request)
	if err != nil {
		cancel()
		return nil, err
	}

	// The timeout must outlive Do so the caller can read the body; tie
	// it to body close instead.
	response.Body = &cancelOnClose{ReadCloser: response.Body, cancel: cancel}
	return response, nil
}

// cancelOnClose releases the request's timeout context when the
// response body is closed.
type cancelOnClose struct {
	io.ReadCloser
	cancel context.CancelFunc
}

func (c *cancelOnClose) Close() error {
	c.cancel()
	return c.ReadCloser.Close()
}
