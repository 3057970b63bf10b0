// Copyright (c) 2025-2026 Eduree Education Co.
// SPDX-License-Identifier: GPL-3.0-or-later

// Package relay forwards contact-form submissions to an external
// form-relay endpoint (Formspree-style JSON POST).
package relay

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/eduree/metaon/internal/model"
)

const (
	requestTimeout = 30 * time.Second
	maxResponseLen = 10 * 1024
	userAgent      = "MetaOn/1.0"
)

// Result is the outcome of one relay attempt. The caller decides what to
// do with a failure; the client itself never retries.
type Result struct {
	Success    bool
	StatusCode int
	Err        error
}

// Client posts inquiry payloads to a single configured endpoint.
type Client struct {
	endpoint   string
	httpClient *http.Client
}

// New creates a relay client for the given endpoint.
func New(endpoint string) *Client {
	return &Client{
		endpoint: endpoint,
		httpClient: &http.Client{
			Timeout: requestTimeout,
		},
	}
}

// payload is the wire shape: the six inquiry fields, nothing else.
type payload struct {
	Name    string `json:"name"`
	Company string `json:"company"`
	Role    string `json:"role"`
	Email   string `json:"email"`
	Country string `json:"country"`
	Message string `json:"message"`
}

// Submit posts the inquiry. Any 2xx response counts as success.
func (c *Client) Submit(ctx context.Context, inq model.Inquiry) Result {
	body, err := json.Marshal(payload{
		Name:    inq.Name,
		Company: inq.Company,
		Role:    inq.Role,
		Email:   inq.Email,
		Country: inq.Country,
		Message: inq.Message,
	})
	if err != nil {
		return Result{Err: fmt.Errorf("encoding inquiry: %w", err)}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return Result{Err: fmt.Errorf("building relay request: %w", err)}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Result{Err: fmt.Errorf("relay call: %w", err)}
	}
	defer func() { _ = resp.Body.Close() }()

	// Drain a bounded amount so the connection can be reused.
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxResponseLen))

	ok := resp.StatusCode >= 200 && resp.StatusCode < 300
	res := Result{Success: ok, StatusCode: resp.StatusCode}
	if !ok {
		res.Err = fmt.Errorf("relay: status %d", resp.StatusCode)
	}
	return res
}
