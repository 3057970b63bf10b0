// Copyright (c) 2025-2026 Eduree Education Co.
// SPDX-License-Identifier: GPL-3.0-or-later

// Package assistant answers site-visitor questions through an external
// generative-text API. Each message is a single-turn request carrying a
// fixed system instruction and the latest user message only; no
// conversation history crosses the API boundary. The transcript lives in
// the visitor's browser widget.
package assistant

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"
)

// SystemInstruction is the fixed instruction sent with every request.
const SystemInstruction = `You are MetaOn AI, a professional and friendly assistant for MetaOn (메타온).
MetaOn is a next-generation AI and metaverse English learning platform for kindergarten and elementary students.
Key Platform Components:
1. Study Zone: 50+ game-based activities for daily learning.
2. Meta Planet (Metaverse): Review lessons by conversing with NPCs and earning rewards.
3. Battle Zone: Master content through real-time quiz battles.
4. AI Tutor System (MetaOn II): Automatically measures levels and corrects weaknesses naturally.

Your mission:
- Answer questions accurately using MetaOn's platform details.
- Be professional, confident, and encouraging.
- Respond in the language the user is using (Korean or English).
- If you don't know the answer, politely ask them to use the contact form or email webmaster@eduree.com.`

// Fixed widget strings.
const (
	Greeting      = "Hello! I am MetaOn AI. How can I help you explore the future of education today?"
	FallbackReply = "I'm sorry, I couldn't process that. Please try again."
	ErrorReply    = "Connection error. Please check your network or try again later."
)

// requestTimeout bounds each provider call so a stalled upstream never
// leaves the widget pending forever.
const requestTimeout = 60 * time.Second

const temperature = 0.7

// Provider is a single-turn text completion backend.
type Provider interface {
	Name() string
	Complete(ctx context.Context, system, user string) (string, error)
}

// Assistant wraps a Provider with the MetaOn instruction and timeouts.
type Assistant struct {
	provider Provider
	logger   *slog.Logger
	timeout  time.Duration
}

// New creates an Assistant over the given provider.
func New(provider Provider, logger *slog.Logger) *Assistant {
	return &Assistant{
		provider: provider,
		logger:   logger,
		timeout:  requestTimeout,
	}
}

// Reply sends one user message and returns the assistant's answer. An
// empty answer from the provider is replaced with the fixed fallback
// string. Errors are returned to the caller, which decides what the
// visitor sees; no retry happens here.
func (a *Assistant) Reply(ctx context.Context, userMessage string) (string, error) {
	userMessage = strings.TrimSpace(userMessage)
	if userMessage == "" {
		return "", fmt.Errorf("assistant: empty message")
	}

	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	start := time.Now()
	text, err := a.provider.Complete(ctx, SystemInstruction, userMessage)
	if err != nil {
		a.logger.Warn("assistant request failed",
			"provider", a.provider.Name(), "error", err)
		return "", err
	}

	a.logger.Debug("assistant reply",
		"provider", a.provider.Name(),
		"duration", time.Since(start),
		"chars", len(text))

	if strings.TrimSpace(text) == "" {
		return FallbackReply, nil
	}
	return text, nil
}
